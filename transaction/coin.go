// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction implements Cardano Byron-era transaction types:
// TxoPointer, TxOut, Tx, TxInWitness, TxAux, TxProof, and the binary
// Merkle tree used to compute a block's transaction root.
package transaction

import (
	"errors"
	"fmt"

	"github.com/cardano-go/corvid/cbor"
)

// MaxCoin is the maximum number of lovelace a single Coin may hold: the
// total Cardano supply of 45 billion ADA, expressed in lovelace
// (1 ADA = 1,000,000 lovelace).
const MaxCoin = 45_000_000_000_000_000

// ErrCoinOutOfRange is returned when a Coin value would fall outside
// [0, MaxCoin].
var ErrCoinOutOfRange = errors.New("transaction: coin value out of range")

// ErrCoinNegative is returned by Sub when the subtrahend exceeds the
// minuend; Coin has no representation for a negative amount.
var ErrCoinNegative = errors.New("transaction: coin subtraction underflows")

// Coin is an amount of lovelace, Cardano's smallest currency unit.
type Coin uint64

// NewCoin validates v and returns it as a Coin.
func NewCoin(v uint64) (Coin, error) {
	if v > MaxCoin {
		return 0, fmt.Errorf("%w: %d", ErrCoinOutOfRange, v)
	}
	return Coin(v), nil
}

// ZeroCoin is the zero value of Coin.
const ZeroCoin Coin = 0

// Add returns c+other, rejecting results that would exceed MaxCoin.
func (c Coin) Add(other Coin) (Coin, error) {
	sum := uint64(c) + uint64(other)
	if sum > MaxCoin {
		return 0, fmt.Errorf("%w: %d", ErrCoinOutOfRange, sum)
	}
	return Coin(sum), nil
}

// Sub returns c-other, rejecting a result that would be negative.
func (c Coin) Sub(other Coin) (Coin, error) {
	if other > c {
		return 0, fmt.Errorf("%w: %d - %d", ErrCoinNegative, c, other)
	}
	return c - other, nil
}

func (c Coin) encode(s *cbor.Serializer) {
	s.WriteUnsignedInteger(uint64(c))
}

func decodeCoin(d *cbor.Deserializer) (Coin, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	return NewCoin(v)
}
