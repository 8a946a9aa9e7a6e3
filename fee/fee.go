// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fee computes the minimum fee a transaction must pay, as a
// function of its serialized size. It holds no ledger state and makes
// no network calls: the caller supplies the transaction (or its shape,
// via fake witnesses) and gets back the Coin amount it must include.
package fee

import (
	"math"

	"github.com/cardano-go/corvid/transaction"
)

// Fee is a computed transaction fee, always non-negative.
type Fee struct {
	lovelace uint64
}

// ToCoin converts f to a Coin.
func (f Fee) ToCoin() (transaction.Coin, error) {
	return transaction.NewCoin(f.lovelace)
}

// Algorithm computes the fee a transaction must pay given its
// serialized size in bytes.
type Algorithm interface {
	CalculateForTxSize(size int) (Fee, error)
	CalculateForTxAux(tx transaction.Tx, witnesses []transaction.TxInWitness) (Fee, error)
}

// LinearFee is the Byron-era fee policy: fee = ceil(constant +
// coefficient*size), where size is the transaction's serialized byte
// length including its witnesses.
type LinearFee struct {
	Constant    uint64
	Coefficient float64
}

// DefaultLinearFee is Cardano mainnet's Byron-era linear fee policy:
// 155381 lovelace plus 43.946 lovelace per byte.
var DefaultLinearFee = LinearFee{Constant: 155381, Coefficient: 43.946}

// CalculateForTxSize returns the fee a transaction of the given
// serialized size must pay.
func (f LinearFee) CalculateForTxSize(size int) (Fee, error) {
	raw := float64(f.Constant) + f.Coefficient*float64(size)
	return Fee{lovelace: uint64(math.Ceil(raw))}, nil
}

// CalculateForTxAux returns the fee tx must pay when signed by
// witnesses: the size used is that of the full TxAux encoding, so
// callers estimating a not-yet-signed transaction should pass one
// transaction.FakeTxInWitness per input.
func (f LinearFee) CalculateForTxAux(tx transaction.Tx, witnesses []transaction.TxInWitness) (Fee, error) {
	aux := transaction.NewTxAux(tx, witnesses)
	buf, err := aux.Bytes()
	if err != nil {
		return Fee{}, err
	}
	return f.CalculateForTxSize(len(buf))
}
