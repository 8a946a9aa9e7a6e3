// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"errors"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/chaincfg"
)

// Structural and signature failure modes for a TxAux. These mirror the
// checks every transaction in a block's body must pass before its
// sub-proofs are even considered.
var (
	ErrNoInputs            = errors.New("transaction: no inputs")
	ErrNoOutputs           = errors.New("transaction: no outputs")
	ErrDuplicateInputs     = errors.New("transaction: duplicate inputs")
	ErrZeroOutput          = errors.New("transaction: output value is zero")
	ErrRedeemOutput        = errors.New("transaction: output address type is Redeem")
	ErrMissingWitnesses    = errors.New("transaction: fewer witnesses than inputs")
	ErrUnexpectedWitnesses = errors.New("transaction: more witnesses than inputs")
	ErrBadTxWitness        = errors.New("transaction: witness signature does not verify")
	ErrWrongRedeemTxId     = errors.New("transaction: redeem witness input does not match its address")
)

// ValidateTxAux checks aux's structural shape and every witness's
// signature under params. It does not consult any ledger state (no
// input existence or double-spend check): that is the caller's
// responsibility once this structural/cryptographic pass succeeds.
func ValidateTxAux(params *chaincfg.Params, aux TxAux) error {
	return validateTxAux(params, aux, nil)
}

// ValidateTxAuxCached is ValidateTxAux, consulting and populating cache
// for every witness it checks: a witness already recorded as valid over
// aux.Tx's id is accepted without a second Ed25519 verification, which
// matters when the same transaction is validated more than once (once on
// mempool acceptance, again as part of a block).
func ValidateTxAuxCached(params *chaincfg.Params, aux TxAux, cache *WitnessCache) error {
	return validateTxAux(params, aux, cache)
}

func validateTxAux(params *chaincfg.Params, aux TxAux, cache *WitnessCache) error {
	tx := aux.Tx

	if len(tx.Inputs) == 0 {
		return ErrNoInputs
	}
	if len(tx.Outputs) == 0 {
		return ErrNoOutputs
	}
	seen := make(map[TxoPointer]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, ok := seen[in]; ok {
			return ErrDuplicateInputs
		}
		seen[in] = struct{}{}
	}
	for _, out := range tx.Outputs {
		if out.Value == ZeroCoin {
			return ErrZeroOutput
		}
		if out.Address.AddrType == address.ATRedeem {
			return ErrRedeemOutput
		}
	}
	if len(aux.Witnesses) < len(tx.Inputs) {
		return ErrMissingWitnesses
	}
	if len(aux.Witnesses) > len(tx.Inputs) {
		return ErrUnexpectedWitnesses
	}

	txid := tx.Id()
	for i, w := range aux.Witnesses {
		if cache != nil && cache.Exists(txid, w) {
			continue
		}
		if err := checkWitness(params, tx, tx.Inputs[i], w); err != nil {
			log.Debugf("witness %d for tx %x rejected: %v", i, txid, err)
			return err
		}
		if cache != nil {
			cache.Add(txid, w)
		}
	}
	return nil
}

// checkWitness verifies that w both proves the right to spend in (under
// its redeem-address binding, if it is a RedeemWitness) and validly signs
// tx.
func checkWitness(params *chaincfg.Params, tx Tx, in TxoPointer, w TxInWitness) error {
	if redeemPk, _, ok := w.RedeemWitness(); ok {
		wantId, addr, err := RedeemPubkeyToTxId(params, redeemPk)
		if err != nil {
			return err
		}
		if in.Id != wantId {
			return ErrWrongRedeemTxId
		}
		_ = addr
	}
	ok, err := w.VerifyTx(params, tx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadTxWitness
	}
	return nil
}
