// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/transaction"
)

// BodyProof summarises a main block's Body, one sub-proof per payload:
// the transaction proof, the SSC (shared-seed-computation) proof, the
// hash of the delegation payload, and the hash of the update payload.
// A header's BodyProof must match the proof regenerated from its own
// Body, binding header to body without re-transmitting the body twice.
type BodyProof struct {
	Tx        transaction.TxProof
	Mpc       sscProof
	ProxySk   chainhash.Hash256
	Update    chainhash.Hash256
}

func (p BodyProof) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(4))
	p.Tx.EncodeInto(ser)
	p.Mpc.encode(ser)
	ser.WriteBytes(p.ProxySk[:])
	ser.WriteBytes(p.Update[:])
}

func decodeBodyProof(d *cbor.Deserializer) (BodyProof, error) {
	if err := d.Tuple(4, "BodyProof"); err != nil {
		return BodyProof{}, err
	}
	tx, err := transaction.DecodeTxProofInline(d)
	if err != nil {
		return BodyProof{}, err
	}
	mpc, err := decodeSscProof(d)
	if err != nil {
		return BodyProof{}, err
	}
	proxySk, err := readHash256(d, "BodyProof.ProxySk")
	if err != nil {
		return BodyProof{}, err
	}
	update, err := readHash256(d, "BodyProof.Update")
	if err != nil {
		return BodyProof{}, err
	}
	return BodyProof{Tx: tx, Mpc: mpc, ProxySk: proxySk, Update: update}, nil
}

// Body is the payload of a main block: the transactions it settles,
// its shared-seed-computation contribution, its delegation
// certificates, and its protocol/software update contribution. The
// delegation payload is kept as opaque CBOR (a cbor.RawValue).
type Body struct {
	Tx         []transaction.TxAux
	Ssc        SscPayload
	Delegation cbor.RawValue
	Update     UpdatePayload
}

func (b Body) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(4))
	ser.WriteIndefiniteArray(len(b.Tx), func(i int, s *cbor.Serializer) {
		_ = b.Tx[i].EncodeInto(s)
	})
	if err := b.Ssc.encode(ser); err != nil {
		return err
	}
	if b.Delegation.Bytes() == nil {
		ser.WriteArrayLen(cbor.Definite(0))
	} else {
		ser.WriteRaw(b.Delegation.Bytes())
	}
	b.Update.encode(ser)
	return nil
}

func decodeBody(d *cbor.Deserializer) (Body, error) {
	if err := d.Tuple(4, "Body"); err != nil {
		return Body{}, err
	}
	var txs []transaction.TxAux
	if err := d.ReadIndefiniteArray(func(i int) error {
		aux, err := transaction.DecodeTxAuxInline(d)
		if err != nil {
			return err
		}
		txs = append(txs, aux)
		return nil
	}); err != nil {
		return Body{}, err
	}
	ssc, err := decodeSscPayload(d)
	if err != nil {
		return Body{}, err
	}
	dlg, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return Body{}, err
	}
	update, err := decodeUpdatePayload(d)
	if err != nil {
		return Body{}, err
	}
	return Body{Tx: txs, Ssc: ssc, Delegation: dlg, Update: update}, nil
}

// Bytes returns body's canonical CBOR encoding.
func (b Body) Bytes() ([]byte, error) {
	ser := cbor.NewSerializer()
	if err := b.encode(ser); err != nil {
		return nil, err
	}
	return ser.Bytes(), nil
}

// GenerateBodyProof computes the BodyProof a header must carry for
// body: the transaction proof, the SSC proof, and the delegation and
// update payloads' own CBOR hashes.
func GenerateBodyProof(body Body) (BodyProof, error) {
	txProof, err := transaction.GenerateTxProof(body.Tx)
	if err != nil {
		return BodyProof{}, err
	}
	dlgBytes := body.Delegation.Bytes()
	if dlgBytes == nil {
		empty := cbor.NewSerializer()
		empty.WriteArrayLen(cbor.Definite(0))
		dlgBytes = empty.Bytes()
	}
	updateSer := cbor.NewSerializer()
	body.Update.encode(updateSer)
	return BodyProof{
		Tx:      txProof,
		Mpc:     generateSscProof(body.Ssc),
		ProxySk: chainhash.Hash256B(dlgBytes),
		Update:  chainhash.Hash256B(updateSer.Bytes()),
	}, nil
}
