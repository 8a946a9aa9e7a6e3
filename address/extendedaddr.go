// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/cardano-go/corvid/base58"
	"github.com/cardano-go/corvid/cbor"
)

// ExtendedAddr is the full wire form of a Cardano address: an Addr digest
// plus the AddrType and Attributes it was computed from, wrapped in the
// CBOR-in-CBOR/CRC32 envelope and base58-rendered for text transport.
type ExtendedAddr struct {
	Addr       Addr
	Attributes Attributes
	AddrType   AddrType
}

// NewExtendedAddr builds an ExtendedAddr for the given type, spending
// data, and attributes.
func NewExtendedAddr(addrType AddrType, sd SpendingData, attrs Attributes) (ExtendedAddr, error) {
	addr, err := NewAddr(addrType, sd, attrs)
	if err != nil {
		return ExtendedAddr{}, err
	}
	return ExtendedAddr{Addr: addr, Attributes: attrs, AddrType: addrType}, nil
}

// Bytes encodes ea as its CRC32-checked CBOR envelope.
func (ea ExtendedAddr) Bytes() []byte {
	return cbor.EncodeEnvelope(func(s *cbor.Serializer) { ea.encodeEnveloped(s) })
}

// EncodeInline writes ea's CRC32 envelope directly into s, for callers
// (such as transaction.TxOut) that embed an ExtendedAddr as a field of a
// larger CBOR structure rather than as a standalone blob.
func (ea ExtendedAddr) EncodeInline(s *cbor.Serializer) {
	s.WriteRaw(ea.Bytes())
}

func (ea ExtendedAddr) encodeEnveloped(s *cbor.Serializer) {
	s.WriteArrayLen(cbor.Definite(3))
	ea.Addr.encode(s)
	// Attributes.encode never actually fails; the error return exists
	// for symmetry with SpendingData.encode.
	_ = ea.Attributes.encode(s)
	ea.AddrType.encode(s)
}

func decodeExtendedAddrBody(d *cbor.Deserializer) (ExtendedAddr, error) {
	if err := d.Tuple(3, "ExtendedAddr"); err != nil {
		return ExtendedAddr{}, err
	}
	addr, err := decodeAddr(d)
	if err != nil {
		return ExtendedAddr{}, err
	}
	attrs, err := decodeAttributes(d)
	if err != nil {
		return ExtendedAddr{}, err
	}
	addrType, err := decodeAddrType(d)
	if err != nil {
		return ExtendedAddr{}, err
	}
	return ExtendedAddr{Addr: addr, Attributes: attrs, AddrType: addrType}, nil
}

// ExtendedAddrFromBytes decodes an ExtendedAddr from its CRC32-checked
// CBOR envelope.
func ExtendedAddrFromBytes(buf []byte) (ExtendedAddr, error) {
	var ea ExtendedAddr
	err := cbor.DecodeEnvelope(buf, func(d *cbor.Deserializer) error {
		var err error
		ea, err = decodeExtendedAddrBody(d)
		return err
	})
	if err != nil {
		return ExtendedAddr{}, err
	}
	return ea, nil
}

// DecodeExtendedAddrInline decodes an ExtendedAddr's CRC32 envelope
// starting at d's current position, leaving any following data in d for
// the caller to continue decoding.
func DecodeExtendedAddrInline(d *cbor.Deserializer) (ExtendedAddr, error) {
	var ea ExtendedAddr
	err := cbor.DecodeEnvelopeInline(d, func(d *cbor.Deserializer) error {
		var err error
		ea, err = decodeExtendedAddrBody(d)
		return err
	})
	if err != nil {
		return ExtendedAddr{}, err
	}
	return ea, nil
}

// String renders ea as base58, the textual form wallets display.
func (ea ExtendedAddr) String() string {
	return base58.Encode(ea.Bytes())
}

// ParseExtendedAddr decodes a base58-rendered address.
func ParseExtendedAddr(s string) (ExtendedAddr, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return ExtendedAddr{}, err
	}
	return ExtendedAddrFromBytes(buf)
}
