// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block implements the Byron-era block and header types: the
// boundary (epoch-genesis) form and the main form, their CBOR wire
// encoding, and the header hash used to identify a block.
package block

import (
	"errors"
	"fmt"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
)

// blockTag distinguishes a boundary block/header from a main one in
// their shared 2-element sum-type encoding.
const (
	blockTagBoundary = 0
	blockTagMain     = 1
)

// ErrUnknownBlockVariant is returned when a BlockHeader or Block's
// leading discriminator is neither 0 (boundary) nor 1 (main).
var ErrUnknownBlockVariant = errors.New("block: unknown block/header variant")

// HeaderHash identifies a block by the hash of its header.
type HeaderHash = chainhash.Hash256

// EpochId numbers an epoch, starting at 0.
type EpochId uint64

// SlotId locates a slot within an epoch.
type SlotId struct {
	Epoch EpochId
	Slot  uint16
}

func (s SlotId) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(s.Epoch))
	ser.WriteUnsignedInteger(uint64(s.Slot))
}

func decodeSlotId(d *cbor.Deserializer) (SlotId, error) {
	if err := d.Tuple(2, "SlotId"); err != nil {
		return SlotId{}, err
	}
	epoch, err := d.ReadUnsignedInteger()
	if err != nil {
		return SlotId{}, err
	}
	slot, err := d.ReadUint16()
	if err != nil {
		return SlotId{}, err
	}
	return SlotId{Epoch: EpochId(epoch), Slot: slot}, nil
}

// ChainDifficulty is the chain's cumulative slot-leader count, encoded
// as a single-element array wrapping the value (Byron's generic
// newtype-number convention).
type ChainDifficulty uint64

func (c ChainDifficulty) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(1))
	ser.WriteUnsignedInteger(uint64(c))
}

func decodeChainDifficulty(d *cbor.Deserializer) (ChainDifficulty, error) {
	if err := d.Tuple(1, "ChainDifficulty"); err != nil {
		return 0, err
	}
	v, err := d.ReadUnsignedInteger()
	return ChainDifficulty(v), err
}

// BlockVersion is the protocol version a block declares support for.
type BlockVersion struct {
	Major uint16
	Minor uint16
	Alt   uint8
}

func (v BlockVersion) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(3))
	ser.WriteUnsignedInteger(uint64(v.Major))
	ser.WriteUnsignedInteger(uint64(v.Minor))
	ser.WriteUnsignedInteger(uint64(v.Alt))
}

func decodeBlockVersion(d *cbor.Deserializer) (BlockVersion, error) {
	if err := d.Tuple(3, "BlockVersion"); err != nil {
		return BlockVersion{}, err
	}
	major, err := d.ReadUint16()
	if err != nil {
		return BlockVersion{}, err
	}
	minor, err := d.ReadUint16()
	if err != nil {
		return BlockVersion{}, err
	}
	alt, err := d.ReadUint8()
	if err != nil {
		return BlockVersion{}, err
	}
	return BlockVersion{Major: major, Minor: minor, Alt: alt}, nil
}

// maxSystemTagLen and maxSoftwareAppNameLen bound SystemTag and the
// application-name half of SoftwareVersion: the reference panics on a
// SystemTag or app name longer than 10 ASCII characters.
const (
	maxSystemTagLen       = 10
	maxSoftwareAppNameLen = 10
)

// ErrInvalidSystemTag is returned for a SystemTag longer than 10
// characters or containing a non-ASCII byte.
var ErrInvalidSystemTag = errors.New("block: system tag must be 1-10 ASCII characters")

// ErrInvalidSoftwareAppName is returned for a SoftwareVersion
// application name longer than 10 characters or containing a
// non-ASCII byte.
var ErrInvalidSoftwareAppName = errors.New("block: software application name must be 1-10 ASCII characters")

// SystemTag names an operating system a software update targets, e.g.
// "linux" or "win64".
type SystemTag string

// NewSystemTag validates and builds a SystemTag.
func NewSystemTag(s string) (SystemTag, error) {
	if !isValidTagString(s, maxSystemTagLen) {
		return "", ErrInvalidSystemTag
	}
	return SystemTag(s), nil
}

func isValidTagString(s string, maxLen int) bool {
	if len(s) == 0 || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// SoftwareVersion names a piece of software and its numeric version.
type SoftwareVersion struct {
	AppName string
	Number  uint32
}

// NewSoftwareVersion validates and builds a SoftwareVersion.
func NewSoftwareVersion(appName string, number uint32) (SoftwareVersion, error) {
	if !isValidTagString(appName, maxSoftwareAppNameLen) {
		return SoftwareVersion{}, ErrInvalidSoftwareAppName
	}
	return SoftwareVersion{AppName: appName, Number: number}, nil
}

func (v SoftwareVersion) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteText(v.AppName)
	ser.WriteUnsignedInteger(uint64(v.Number))
}

func decodeSoftwareVersion(d *cbor.Deserializer) (SoftwareVersion, error) {
	if err := d.Tuple(2, "SoftwareVersion"); err != nil {
		return SoftwareVersion{}, err
	}
	appName, err := d.ReadText()
	if err != nil {
		return SoftwareVersion{}, err
	}
	number, err := d.ReadUint32()
	if err != nil {
		return SoftwareVersion{}, err
	}
	return SoftwareVersion{AppName: appName, Number: number}, nil
}

// maxCoinPortion bounds CoinPortion: the reference panics above
// 10^15, which in CoinPortion's 10^-15 units is the whole (1.0).
const maxCoinPortion = 1_000_000_000_000_000

// ErrCoinPortionOutOfRange is returned for a CoinPortion above
// maxCoinPortion.
var ErrCoinPortionOutOfRange = errors.New("block: coin portion out of range")

// CoinPortion is a fraction of a coin amount used by on-chain update
// policy parameters (fee and stake thresholds), expressed in units of
// 10^-15.
type CoinPortion uint64

// NewCoinPortion validates and builds a CoinPortion.
func NewCoinPortion(v uint64) (CoinPortion, error) {
	if v > maxCoinPortion {
		return 0, ErrCoinPortionOutOfRange
	}
	return CoinPortion(v), nil
}

func (c CoinPortion) encode(ser *cbor.Serializer) { ser.WriteUnsignedInteger(uint64(c)) }

func decodeCoinPortion(d *cbor.Deserializer) (CoinPortion, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	if v > maxCoinPortion {
		return 0, ErrCoinPortionOutOfRange
	}
	return CoinPortion(v), nil
}

// HeaderExtraData carries a main header's declared protocol/software
// version, free-form attributes, and the proof binding the header to
// the block's extra payload.
type HeaderExtraData struct {
	BlockVersion    BlockVersion
	SoftwareVersion SoftwareVersion
	Attributes      cbor.RawValue
	ExtraDataProof  chainhash.Hash256
}

func (e HeaderExtraData) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(4))
	e.BlockVersion.encode(ser)
	e.SoftwareVersion.encode(ser)
	if e.Attributes.Bytes() == nil {
		ser.WriteMapLen(cbor.Definite(0))
	} else {
		e.Attributes.EncodeInto(ser)
	}
	ser.WriteBytes(e.ExtraDataProof[:])
}

func decodeHeaderExtraData(d *cbor.Deserializer) (HeaderExtraData, error) {
	if err := d.Tuple(4, "HeaderExtraData"); err != nil {
		return HeaderExtraData{}, err
	}
	bv, err := decodeBlockVersion(d)
	if err != nil {
		return HeaderExtraData{}, err
	}
	sv, err := decodeSoftwareVersion(d)
	if err != nil {
		return HeaderExtraData{}, err
	}
	attrs, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return HeaderExtraData{}, err
	}
	proofBytes, err := d.ReadBytes()
	if err != nil {
		return HeaderExtraData{}, err
	}
	if len(proofBytes) != chainhash.HashSize256 {
		return HeaderExtraData{}, &cbor.NotEnoughError{Have: len(proofBytes), Need: chainhash.HashSize256}
	}
	var proof chainhash.Hash256
	copy(proof[:], proofBytes)
	return HeaderExtraData{BlockVersion: bv, SoftwareVersion: sv, Attributes: attrs, ExtraDataProof: proof}, nil
}

func readHash256(d *cbor.Deserializer, label string) (chainhash.Hash256, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return chainhash.Hash256{}, err
	}
	if len(b) != chainhash.HashSize256 {
		return chainhash.Hash256{}, fmt.Errorf("block: %s: %w", label, &cbor.NotEnoughError{Have: len(b), Need: chainhash.HashSize256})
	}
	var h chainhash.Hash256
	copy(h[:], b)
	return h, nil
}
