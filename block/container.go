// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import "github.com/cardano-go/corvid/cbor"

// Block is a full block: its header, its body, and a trailing
// free-form "extra" value every block carries regardless of variant.
// Both the boundary and main variants share this fixed 3-array shape;
// only the header/body pairing differs.
type Block struct {
	Header BlockHeader
	// BoundaryBody holds the boundary body's opaque payload (a
	// boundary block's body has never needed anything beyond a
	// shared-seed commitment this module does not interpret). Exactly
	// one of BoundaryBody/MainBody is set, matching Header's variant.
	BoundaryBody cbor.RawValue
	MainBody     Body
	Extra        cbor.RawValue
}

// NewBoundaryBlock builds a boundary Block.
func NewBoundaryBlock(header BoundaryHeader, body cbor.RawValue, extra cbor.RawValue) Block {
	return Block{Header: NewBoundaryHeader(header), BoundaryBody: body, Extra: extra}
}

// NewMainBlock builds a main Block.
func NewMainBlock(header MainHeader, body Body, extra cbor.RawValue) Block {
	return Block{Header: NewMainHeader(header), MainBody: body, Extra: extra}
}

func (b Block) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(3))
	if err := b.Header.encode(ser); err != nil {
		return err
	}
	if b.Header.IsBoundary() {
		if b.BoundaryBody.Bytes() == nil {
			ser.WriteMapLen(cbor.Definite(0))
		} else {
			b.BoundaryBody.EncodeInto(ser)
		}
	} else if err := b.MainBody.encode(ser); err != nil {
		return err
	}
	if b.Extra.Bytes() == nil {
		ser.WriteMapLen(cbor.Definite(0))
	} else {
		b.Extra.EncodeInto(ser)
	}
	return nil
}

func decodeBlock(d *cbor.Deserializer) (Block, error) {
	if err := d.Tuple(3, "Block"); err != nil {
		return Block{}, err
	}
	header, err := decodeBlockHeader(d)
	if err != nil {
		return Block{}, err
	}
	var out Block
	out.Header = header
	if header.IsBoundary() {
		body, err := cbor.DecodeRawValueInline(d)
		if err != nil {
			return Block{}, err
		}
		out.BoundaryBody = body
	} else {
		body, err := decodeBody(d)
		if err != nil {
			return Block{}, err
		}
		out.MainBody = body
	}
	extra, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return Block{}, err
	}
	out.Extra = extra
	return out, nil
}

// Bytes returns b's canonical CBOR encoding.
func (b Block) Bytes() ([]byte, error) {
	ser := cbor.NewSerializer()
	if err := b.encode(ser); err != nil {
		return nil, err
	}
	return ser.Bytes(), nil
}

// DecodeBlock decodes a Block from its canonical CBOR encoding.
func DecodeBlock(buf []byte) (Block, error) {
	d := cbor.NewDeserializer(buf)
	var b Block
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		var err error
		b, err = decodeBlock(d)
		return err
	})
	return b, err
}
