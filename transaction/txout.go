// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/cbor"
)

// TxOut is a transaction output: an address and the coin value it holds.
type TxOut struct {
	Address address.ExtendedAddr
	Value   Coin
}

// NewTxOut builds a TxOut.
func NewTxOut(addr address.ExtendedAddr, value Coin) TxOut {
	return TxOut{Address: addr, Value: value}
}

func (o TxOut) String() string {
	return fmt.Sprintf("%s -> %d", o.Address, o.Value)
}

func (o TxOut) encode(s *cbor.Serializer) {
	s.WriteArrayLen(cbor.Definite(2))
	o.Address.EncodeInline(s)
	o.Value.encode(s)
}

func decodeTxOut(d *cbor.Deserializer) (TxOut, error) {
	if err := d.Tuple(2, "TxOut"); err != nil {
		return TxOut{}, err
	}
	addr, err := address.DecodeExtendedAddrInline(d)
	if err != nil {
		return TxOut{}, err
	}
	value, err := decodeCoin(d)
	if err != nil {
		return TxOut{}, err
	}
	return TxOut{Address: addr, Value: value}, nil
}
