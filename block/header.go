// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/transaction"
)

// BoundaryConsensus is the consensus data of an epoch-boundary header:
// just which epoch it opens and the chain's cumulative difficulty,
// since a boundary block has no slot leader of its own.
type BoundaryConsensus struct {
	Epoch           EpochId
	ChainDifficulty ChainDifficulty
}

func (c BoundaryConsensus) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(c.Epoch))
	c.ChainDifficulty.encode(ser)
}

func decodeBoundaryConsensus(d *cbor.Deserializer) (BoundaryConsensus, error) {
	if err := d.Tuple(2, "BoundaryConsensus"); err != nil {
		return BoundaryConsensus{}, err
	}
	epoch, err := d.ReadUnsignedInteger()
	if err != nil {
		return BoundaryConsensus{}, err
	}
	diff, err := decodeChainDifficulty(d)
	if err != nil {
		return BoundaryConsensus{}, err
	}
	return BoundaryConsensus{Epoch: EpochId(epoch), ChainDifficulty: diff}, nil
}

// BoundaryExtraData carries a boundary header's free-form attributes
// (a single-element array wrapping the attributes map, matching the
// reference's encoding of every boundary-era "extra" field).
type BoundaryExtraData struct {
	Attributes cbor.RawValue
}

func (e BoundaryExtraData) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(1))
	if e.Attributes.Bytes() == nil {
		ser.WriteMapLen(cbor.Definite(0))
	} else {
		e.Attributes.EncodeInto(ser)
	}
}

func decodeBoundaryExtraData(d *cbor.Deserializer) (BoundaryExtraData, error) {
	if err := d.Tuple(1, "BoundaryExtraData"); err != nil {
		return BoundaryExtraData{}, err
	}
	attrs, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return BoundaryExtraData{}, err
	}
	return BoundaryExtraData{Attributes: attrs}, nil
}

// BoundaryHeader is the header of the block that opens each epoch. Its
// BodyProof is a bare hash of the boundary body's CBOR encoding, with
// no sub-proof structure since a boundary body carries no
// transactions or SSC data.
type BoundaryHeader struct {
	ProtocolMagic    int32
	PreviousHeader   HeaderHash
	BodyProof        chainhash.Hash256
	Consensus        BoundaryConsensus
	ExtraData        BoundaryExtraData
}

func (h BoundaryHeader) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(5))
	transaction.EncodeProtocolMagicInto(ser, h.ProtocolMagic)
	ser.WriteBytes(h.PreviousHeader[:])
	ser.WriteBytes(h.BodyProof[:])
	h.Consensus.encode(ser)
	h.ExtraData.encode(ser)
}

func decodeBoundaryHeader(d *cbor.Deserializer) (BoundaryHeader, error) {
	if err := d.Tuple(5, "BoundaryHeader"); err != nil {
		return BoundaryHeader{}, err
	}
	magic, err := transaction.DecodeProtocolMagic(d)
	if err != nil {
		return BoundaryHeader{}, err
	}
	prev, err := readHash256(d, "BoundaryHeader.PreviousHeader")
	if err != nil {
		return BoundaryHeader{}, err
	}
	bodyProof, err := readHash256(d, "BoundaryHeader.BodyProof")
	if err != nil {
		return BoundaryHeader{}, err
	}
	consensus, err := decodeBoundaryConsensus(d)
	if err != nil {
		return BoundaryHeader{}, err
	}
	extra, err := decodeBoundaryExtraData(d)
	if err != nil {
		return BoundaryHeader{}, err
	}
	return BoundaryHeader{
		ProtocolMagic: magic, PreviousHeader: prev, BodyProof: bodyProof,
		Consensus: consensus, ExtraData: extra,
	}, nil
}

// MainConsensus is the consensus data of a main (non-boundary) header:
// the slot it was minted in, its leader's key, the chain's cumulative
// difficulty, and the proof that it was produced validly.
type MainConsensus struct {
	SlotId          SlotId
	LeaderKey       hdkeychain.XPub
	ChainDifficulty ChainDifficulty
	BlockSignature  BlockSignature
}

func (c MainConsensus) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(4))
	c.SlotId.encode(ser)
	ser.WriteBytes(c.LeaderKey[:])
	c.ChainDifficulty.encode(ser)
	return c.BlockSignature.encode(ser)
}

func decodeMainConsensus(d *cbor.Deserializer) (MainConsensus, error) {
	if err := d.Tuple(4, "MainConsensus"); err != nil {
		return MainConsensus{}, err
	}
	slotId, err := decodeSlotId(d)
	if err != nil {
		return MainConsensus{}, err
	}
	leaderBytes, err := d.ReadBytes()
	if err != nil {
		return MainConsensus{}, err
	}
	leader, err := hdkeychain.XPubFromSlice(leaderBytes)
	if err != nil {
		return MainConsensus{}, err
	}
	diff, err := decodeChainDifficulty(d)
	if err != nil {
		return MainConsensus{}, err
	}
	sig, err := decodeBlockSignature(d)
	if err != nil {
		return MainConsensus{}, err
	}
	return MainConsensus{SlotId: slotId, LeaderKey: leader, ChainDifficulty: diff, BlockSignature: sig}, nil
}

// MainHeader is the header of an ordinary (non-boundary) block.
type MainHeader struct {
	ProtocolMagic  int32
	PreviousHeader HeaderHash
	BodyProof      BodyProof
	Consensus      MainConsensus
	ExtraData      HeaderExtraData
}

func (h MainHeader) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(5))
	transaction.EncodeProtocolMagicInto(ser, h.ProtocolMagic)
	ser.WriteBytes(h.PreviousHeader[:])
	h.BodyProof.encode(ser)
	if err := h.Consensus.encode(ser); err != nil {
		return err
	}
	h.ExtraData.encode(ser)
	return nil
}

func decodeMainHeader(d *cbor.Deserializer) (MainHeader, error) {
	if err := d.Tuple(5, "MainHeader"); err != nil {
		return MainHeader{}, err
	}
	magic, err := transaction.DecodeProtocolMagic(d)
	if err != nil {
		return MainHeader{}, err
	}
	prev, err := readHash256(d, "MainHeader.PreviousHeader")
	if err != nil {
		return MainHeader{}, err
	}
	bodyProof, err := decodeBodyProof(d)
	if err != nil {
		return MainHeader{}, err
	}
	consensus, err := decodeMainConsensus(d)
	if err != nil {
		return MainHeader{}, err
	}
	extra, err := decodeHeaderExtraData(d)
	if err != nil {
		return MainHeader{}, err
	}
	return MainHeader{
		ProtocolMagic: magic, PreviousHeader: prev, BodyProof: bodyProof,
		Consensus: consensus, ExtraData: extra,
	}, nil
}

// BlockHeader is the sum of a boundary header (the block that opens an
// epoch) and a main header (every other block): [0, boundary] |
// [1, main].
type BlockHeader struct {
	tag      uint8
	boundary BoundaryHeader
	main     MainHeader
}

// NewBoundaryHeader wraps h as a BlockHeader.
func NewBoundaryHeader(h BoundaryHeader) BlockHeader {
	return BlockHeader{tag: blockTagBoundary, boundary: h}
}

// NewMainHeader wraps h as a BlockHeader.
func NewMainHeader(h MainHeader) BlockHeader {
	return BlockHeader{tag: blockTagMain, main: h}
}

// Boundary returns hdr's BoundaryHeader, if that is the variant it holds.
func (hdr BlockHeader) Boundary() (BoundaryHeader, bool) {
	if hdr.tag != blockTagBoundary {
		return BoundaryHeader{}, false
	}
	return hdr.boundary, true
}

// Main returns hdr's MainHeader, if that is the variant it holds.
func (hdr BlockHeader) Main() (MainHeader, bool) {
	if hdr.tag != blockTagMain {
		return MainHeader{}, false
	}
	return hdr.main, true
}

// IsBoundary reports whether hdr is a boundary (epoch-opening) header.
func (hdr BlockHeader) IsBoundary() bool { return hdr.tag == blockTagBoundary }

func (hdr BlockHeader) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(hdr.tag))
	switch hdr.tag {
	case blockTagBoundary:
		hdr.boundary.encode(ser)
		return nil
	case blockTagMain:
		return hdr.main.encode(ser)
	default:
		return ErrUnknownBlockVariant
	}
}

func decodeBlockHeader(d *cbor.Deserializer) (BlockHeader, error) {
	if err := d.Tuple(2, "BlockHeader"); err != nil {
		return BlockHeader{}, err
	}
	tag, err := d.ReadUnsignedInteger()
	if err != nil {
		return BlockHeader{}, err
	}
	switch tag {
	case blockTagBoundary:
		h, err := decodeBoundaryHeader(d)
		if err != nil {
			return BlockHeader{}, err
		}
		return NewBoundaryHeader(h), nil
	case blockTagMain:
		h, err := decodeMainHeader(d)
		if err != nil {
			return BlockHeader{}, err
		}
		return NewMainHeader(h), nil
	default:
		return BlockHeader{}, ErrUnknownBlockVariant
	}
}

// Bytes returns hdr's canonical CBOR encoding.
func (hdr BlockHeader) Bytes() ([]byte, error) {
	ser := cbor.NewSerializer()
	if err := hdr.encode(ser); err != nil {
		return nil, err
	}
	return ser.Bytes(), nil
}

// DecodeBlockHeader decodes a BlockHeader from its canonical CBOR
// encoding.
func DecodeBlockHeader(buf []byte) (BlockHeader, error) {
	d := cbor.NewDeserializer(buf)
	var hdr BlockHeader
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		var err error
		hdr, err = decodeBlockHeader(d)
		return err
	})
	return hdr, err
}

// ComputeHash returns hdr's HeaderHash: the Blake2b-256 digest of its
// canonical CBOR encoding.
func (hdr BlockHeader) ComputeHash() (HeaderHash, error) {
	b, err := hdr.Bytes()
	if err != nil {
		return HeaderHash{}, err
	}
	return chainhash.Hash256B(b), nil
}
