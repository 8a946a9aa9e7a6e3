// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"errors"
	"strings"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
)

// ErrTxExtraData is returned when a decoded Tx carries a non-empty
// attributes map; this wire format defines none.
var ErrTxExtraData = errors.New("transaction: tx attributes not supported")

// Tx is a transaction: a list of inputs spent and a list of outputs
// created. It carries no attributes of its own.
type Tx struct {
	Inputs  []TxoPointer
	Outputs []TxOut
}

// NewTx builds a Tx from its inputs and outputs.
func NewTx(inputs []TxoPointer, outputs []TxOut) Tx {
	return Tx{Inputs: inputs, Outputs: outputs}
}

func (tx Tx) String() string {
	var b strings.Builder
	for _, in := range tx.Inputs {
		b.WriteString("-> ")
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	for _, out := range tx.Outputs {
		b.WriteString("   ")
		b.WriteString(out.String())
		b.WriteString(" ->\n")
	}
	return b.String()
}

// Bytes returns tx's canonical CBOR encoding.
func (tx Tx) Bytes() []byte {
	s := cbor.NewSerializer()
	tx.encode(s)
	return s.Bytes()
}

// Id returns tx's TxId: the Blake2b-256 digest of its canonical CBOR
// encoding.
func (tx Tx) Id() TxId {
	return chainhash.Hash256B(tx.Bytes())
}

// OutputTotal sums tx's output values, rejecting totals above MaxCoin.
func (tx Tx) OutputTotal() (Coin, error) {
	total := ZeroCoin
	var err error
	for _, out := range tx.Outputs {
		total, err = total.Add(out.Value)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// EncodeInto writes tx's CBOR encoding directly into s, for callers that
// embed a Tx as a field of a larger structure.
func (tx Tx) EncodeInto(s *cbor.Serializer) { tx.encode(s) }

// DecodeTxInline decodes a Tx starting at d's current position, leaving
// any following data in d for the caller to continue decoding.
func DecodeTxInline(d *cbor.Deserializer) (Tx, error) { return decodeTx(d) }

func (tx Tx) encode(s *cbor.Serializer) {
	s.WriteArrayLen(cbor.Definite(3))
	s.WriteIndefiniteArray(len(tx.Inputs), func(i int, s *cbor.Serializer) {
		tx.Inputs[i].encode(s)
	})
	s.WriteIndefiniteArray(len(tx.Outputs), func(i int, s *cbor.Serializer) {
		tx.Outputs[i].encode(s)
	})
	s.WriteMapLen(cbor.Definite(0))
}

func decodeTx(d *cbor.Deserializer) (Tx, error) {
	if err := d.Tuple(3, "Tx"); err != nil {
		return Tx{}, err
	}
	var inputs []TxoPointer
	if err := d.ReadIndefiniteArray(func(i int) error {
		in, err := decodeTxoPointer(d)
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
		return nil
	}); err != nil {
		return Tx{}, err
	}
	var outputs []TxOut
	if err := d.ReadIndefiniteArray(func(i int) error {
		out, err := decodeTxOut(d)
		if err != nil {
			return err
		}
		outputs = append(outputs, out)
		return nil
	}); err != nil {
		return Tx{}, err
	}
	attrLen, err := d.ReadMapLen()
	if err != nil {
		return Tx{}, err
	}
	if attrLen.Indefinite || attrLen.Value != 0 {
		return Tx{}, ErrTxExtraData
	}
	return Tx{Inputs: inputs, Outputs: outputs}, nil
}

// DecodeTx decodes a Tx from its canonical CBOR encoding.
func DecodeTx(buf []byte) (Tx, error) {
	d := cbor.NewDeserializer(buf)
	var tx Tx
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		var err error
		tx, err = decodeTx(d)
		return err
	})
	return tx, err
}
