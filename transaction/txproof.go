// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
)

// TxProof summarises a block's transaction list: how many there are, the
// Merkle root of their canonical CBOR, and the hash of every
// transaction's witness list.
type TxProof struct {
	Number        uint32
	Root          chainhash.Hash256
	WitnessesHash chainhash.Hash256
}

func (p TxProof) String() string {
	return fmt.Sprintf("number: %d, root: %s, witnesses: %s", p.Number, p.Root, p.WitnessesHash)
}

// GenerateTxProof computes the TxProof over a block body's transactions.
func GenerateTxProof(auxes []TxAux) (TxProof, error) {
	txItems := make([][]byte, len(auxes))
	for i, aux := range auxes {
		txItems[i] = aux.Tx.Bytes()
	}

	ws := cbor.NewSerializer()
	ws.WriteIndefiniteArray(len(auxes), func(i int, s *cbor.Serializer) {
		_ = encodeWitnesses(s, auxes[i].Witnesses)
	})

	return TxProof{
		Number:        uint32(len(auxes)),
		Root:          MerkleRoot(txItems),
		WitnessesHash: chainhash.Hash256B(ws.Bytes()),
	}, nil
}

// EncodeInto writes p's CBOR encoding directly into s, for callers (such
// as block.BodyProof) that embed a TxProof as a field of a larger
// structure.
func (p TxProof) EncodeInto(s *cbor.Serializer) { p.encode(s) }

// DecodeTxProofInline decodes a TxProof starting at d's current
// position, leaving any following data in d for the caller to continue
// decoding.
func DecodeTxProofInline(d *cbor.Deserializer) (TxProof, error) { return decodeTxProof(d) }

func (p TxProof) encode(s *cbor.Serializer) {
	s.WriteArrayLen(cbor.Definite(3))
	s.WriteUnsignedInteger(uint64(p.Number))
	s.WriteBytes(p.Root[:])
	s.WriteBytes(p.WitnessesHash[:])
}

func decodeTxProof(d *cbor.Deserializer) (TxProof, error) {
	if err := d.Tuple(3, "TxProof"); err != nil {
		return TxProof{}, err
	}
	number, err := d.ReadUint32()
	if err != nil {
		return TxProof{}, err
	}
	rootBytes, err := d.ReadBytes()
	if err != nil {
		return TxProof{}, err
	}
	if len(rootBytes) != chainhash.HashSize256 {
		return TxProof{}, &cbor.NotEnoughError{Have: len(rootBytes), Need: chainhash.HashSize256}
	}
	witBytes, err := d.ReadBytes()
	if err != nil {
		return TxProof{}, err
	}
	if len(witBytes) != chainhash.HashSize256 {
		return TxProof{}, &cbor.NotEnoughError{Have: len(witBytes), Need: chainhash.HashSize256}
	}
	var p TxProof
	p.Number = number
	copy(p.Root[:], rootBytes)
	copy(p.WitnessesHash[:], witBytes)
	return p, nil
}

// DecodeTxProof decodes a TxProof from its canonical CBOR encoding.
func DecodeTxProof(buf []byte) (TxProof, error) {
	d := cbor.NewDeserializer(buf)
	var p TxProof
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		var err error
		p, err = decodeTxProof(d)
		return err
	})
	return p, err
}
