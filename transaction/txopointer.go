// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
)

// TxId identifies a transaction: the Blake2b-256 digest of its canonical
// CBOR encoding.
type TxId = chainhash.Hash256

// TxoPointer addresses a specific output of a transaction: the id of the
// transaction that created it and the index of the output within it.
type TxoPointer struct {
	Id    TxId
	Index uint32
}

// NewTxoPointer builds a TxoPointer.
func NewTxoPointer(id TxId, index uint32) TxoPointer {
	return TxoPointer{Id: id, Index: index}
}

func (p TxoPointer) String() string {
	return fmt.Sprintf("%s@%d", p.Id, p.Index)
}

// encode writes p as `[0, tag24(bytes(cbor([id, index])))]`, matching the
// reference's sum-type encoding (tag 0 is the only TxoPointer variant
// this wire format defines).
func (p TxoPointer) encode(s *cbor.Serializer) {
	s.WriteArrayLen(cbor.Definite(2))
	s.WriteUnsignedInteger(0)
	s.WriteTag(cbor.TagCBORInCBOR)

	inner := cbor.NewSerializer()
	inner.WriteArrayLen(cbor.Definite(2))
	inner.WriteBytes(p.Id[:])
	inner.WriteUnsignedInteger(uint64(p.Index))
	s.WriteBytes(inner.Bytes())
}

func decodeTxoPointer(d *cbor.Deserializer) (TxoPointer, error) {
	if err := d.Tuple(2, "TxoPointer"); err != nil {
		return TxoPointer{}, err
	}
	sumTypeIdx, err := d.ReadUnsignedInteger()
	if err != nil {
		return TxoPointer{}, err
	}
	if sumTypeIdx != 0 {
		return TxoPointer{}, fmt.Errorf("transaction: unsupported TxoPointer variant %d", sumTypeIdx)
	}
	tag, err := d.ReadTag()
	if err != nil {
		return TxoPointer{}, err
	}
	if tag != cbor.TagCBORInCBOR {
		return TxoPointer{}, fmt.Errorf("transaction: invalid tag %d, want %d", tag, cbor.TagCBORInCBOR)
	}
	var out TxoPointer
	err = d.BytesInBytes(func(inner *cbor.Deserializer) error {
		if err := inner.Tuple(2, "TxoPointer"); err != nil {
			return err
		}
		idBytes, err := inner.ReadBytes()
		if err != nil {
			return err
		}
		if len(idBytes) != chainhash.HashSize256 {
			return &cbor.NotEnoughError{Have: len(idBytes), Need: chainhash.HashSize256}
		}
		copy(out.Id[:], idBytes)
		index, err := inner.ReadUnsignedInteger()
		if err != nil {
			return err
		}
		out.Index = uint32(index)
		return nil
	})
	return out, err
}
