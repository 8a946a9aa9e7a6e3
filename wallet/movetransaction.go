// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"errors"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/fee"
	"github.com/cardano-go/corvid/transaction"
)

// ErrNoInputs is returned by MoveTransaction when called with no inputs
// to spend.
var ErrNoInputs = errors.New("wallet: no inputs")

// ErrNotEnoughInput is returned when the inputs' total value cannot
// cover even the minimum fee, or balancing underflows while searching
// for the fee-adjusted change amount.
var ErrNotEnoughInput = errors.New("wallet: not enough input to cover the fee")

// Input pairs a spendable TxoPointer with its value and the Addressing
// that owns it, so MoveTransaction knows which key must sign for it.
type Input struct {
	Pointer    transaction.TxoPointer
	Value      transaction.Coin
	Addressing Addressing
}

// OutputPolicy selects how MoveTransaction distributes the change from
// spending a set of inputs. One currently exists: send the entire
// leftover to a single change address.
type OutputPolicy struct {
	changeAddress address.ExtendedAddr
}

// NewSingleOutputPolicy builds the One(changeAddress) policy: spend every
// input into changeAddress alone.
func NewSingleOutputPolicy(changeAddress address.ExtendedAddr) OutputPolicy {
	return OutputPolicy{changeAddress: changeAddress}
}

// MoveTransaction builds and signs a transaction spending every input in
// inputs into a single change output chosen by policy, paying exactly
// the fee alg computes for the resulting transaction's size. It returns
// the signed TxAux and the fee actually paid.
//
// The change amount is found by the same monotone search the reference
// wallet uses: start from the change amount implied by the fee of the
// bare (witness-less-but-correctly-sized) transaction, then nudge it up
// or down one lovelace at a time until the transaction's actual fee
// requirement and its actual leftover agree. The search terminates
// because the gap between leftover and required fee moves by exactly one
// unit of out_total per step and changes sign at most once.
func MoveTransaction(params *chaincfg.Params, w Wallet, alg fee.LinearFee, inputs []Input, policy OutputPolicy) (transaction.TxAux, fee.Fee, error) {
	if len(inputs) == 0 {
		return transaction.TxAux{}, fee.Fee{}, ErrNoInputs
	}

	var totalInput transaction.Coin
	pointers := make([]transaction.TxoPointer, 0, len(inputs))
	for _, in := range inputs {
		var err error
		totalInput, err = totalInput.Add(in.Value)
		if err != nil {
			return transaction.TxAux{}, fee.Fee{}, err
		}
		pointers = append(pointers, in.Pointer)
	}

	txBase := transaction.NewTx(pointers, nil)
	fakeWitnesses := make([]transaction.TxInWitness, len(inputs))
	for i := range fakeWitnesses {
		fakeWitnesses[i] = transaction.FakeTxInWitness()
	}

	minFee, err := alg.CalculateForTxAux(txBase, fakeWitnesses)
	if err != nil {
		return transaction.TxAux{}, fee.Fee{}, err
	}
	minFeeCoin, err := minFee.ToCoin()
	if err != nil {
		return transaction.TxAux{}, fee.Fee{}, err
	}
	outTotal, err := totalInput.Sub(minFeeCoin)
	if err != nil {
		log.Debugf("move transaction: %d inputs totalling %d cannot cover the minimum fee", len(inputs), totalInput)
		return transaction.TxAux{}, fee.Fee{}, ErrNotEnoughInput
	}

	for {
		txout := transaction.NewTxOut(policy.changeAddress, outTotal)
		tx := transaction.NewTx(pointers, []transaction.TxOut{txout})

		outputTotal, err := tx.OutputTotal()
		if err != nil {
			return transaction.TxAux{}, fee.Fee{}, err
		}
		currentDiff, diffErr := totalInput.Sub(outputTotal)
		if diffErr != nil {
			currentDiff = transaction.ZeroCoin
		}

		txFee, err := alg.CalculateForTxAux(tx, fakeWitnesses)
		if err != nil {
			return transaction.TxAux{}, fee.Fee{}, err
		}
		need, err := txFee.ToCoin()
		if err != nil {
			return transaction.TxAux{}, fee.Fee{}, err
		}

		switch {
		case currentDiff == need:
			witnesses := make([]transaction.TxInWitness, len(inputs))
			txid := tx.Id()
			for i, in := range inputs {
				key := w.deriveKey(in.Addressing)
				witnesses[i] = transaction.NewPkWitness(params, key, txid)
			}
			return transaction.NewTxAux(tx, witnesses), txFee, nil
		case currentDiff > need:
			outTotal, err = outTotal.Add(1)
			if err != nil {
				return transaction.TxAux{}, fee.Fee{}, err
			}
		default:
			outTotal, err = outTotal.Sub(1)
			if err != nil {
				log.Debugf("move transaction: balancing search underflowed after %d inputs", len(inputs))
				return transaction.TxAux{}, fee.Fee{}, ErrNotEnoughInput
			}
		}
	}
}
