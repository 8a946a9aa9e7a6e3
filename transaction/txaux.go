// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import "github.com/cardano-go/corvid/cbor"

// TxAux is a transaction together with one witness per input, in the
// same order as Tx.Inputs.
type TxAux struct {
	Tx        Tx
	Witnesses []TxInWitness
}

// NewTxAux pairs tx with its witnesses.
func NewTxAux(tx Tx, witnesses []TxInWitness) TxAux {
	return TxAux{Tx: tx, Witnesses: witnesses}
}

// encodeWitnesses writes ws as a definite-length CBOR array, the form a
// single transaction's witness list takes both standalone and nested
// inside a TxAux.
func encodeWitnesses(s *cbor.Serializer, ws []TxInWitness) error {
	s.WriteArrayLen(cbor.Definite(uint64(len(ws))))
	for _, w := range ws {
		if err := w.encode(s); err != nil {
			return err
		}
	}
	return nil
}

func decodeWitnesses(d *cbor.Deserializer) ([]TxInWitness, error) {
	l, err := d.ReadArrayLen()
	if err != nil {
		return nil, err
	}
	if l.Indefinite {
		var out []TxInWitness
		// Indefinite form is accepted on read even though this codec
		// never writes it, for leniency with hand-built test fixtures.
		for i := uint64(0); ; i++ {
			done, err := d.PeekBreak()
			if err != nil {
				return nil, err
			}
			if done {
				return out, nil
			}
			w, err := decodeTxInWitness(d)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
	}
	out := make([]TxInWitness, 0, l.Value)
	for i := uint64(0); i < l.Value; i++ {
		w, err := decodeTxInWitness(d)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// EncodeInto writes aux's CBOR encoding directly into s, for callers
// (such as block.Body) that embed a TxAux as an element of a larger
// structure.
func (aux TxAux) EncodeInto(s *cbor.Serializer) error { return aux.encode(s) }

// DecodeTxAuxInline decodes a TxAux starting at d's current position,
// leaving any following data in d for the caller to continue decoding.
func DecodeTxAuxInline(d *cbor.Deserializer) (TxAux, error) { return decodeTxAux(d) }

func (aux TxAux) encode(s *cbor.Serializer) error {
	s.WriteArrayLen(cbor.Definite(2))
	aux.Tx.encode(s)
	return encodeWitnesses(s, aux.Witnesses)
}

// Bytes returns aux's canonical CBOR encoding.
func (aux TxAux) Bytes() ([]byte, error) {
	s := cbor.NewSerializer()
	if err := aux.encode(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func decodeTxAux(d *cbor.Deserializer) (TxAux, error) {
	if err := d.Tuple(2, "TxAux"); err != nil {
		return TxAux{}, err
	}
	tx, err := decodeTx(d)
	if err != nil {
		return TxAux{}, err
	}
	ws, err := decodeWitnesses(d)
	if err != nil {
		return TxAux{}, err
	}
	return TxAux{Tx: tx, Witnesses: ws}, nil
}

// DecodeTxAux decodes a TxAux from its canonical CBOR encoding.
func DecodeTxAux(buf []byte) (TxAux, error) {
	d := cbor.NewDeserializer(buf)
	var aux TxAux
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		var err error
		aux, err = decodeTxAux(d)
		return err
	})
	return aux, err
}
