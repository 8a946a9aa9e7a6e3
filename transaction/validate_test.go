// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"testing"

	"github.com/cardano-go/corvid/chaincfg"
)

func validTxAux(t *testing.T) TxAux {
	t.Helper()
	root := testRootKey(t)
	ea := testExtendedAddr(t, root.Public())

	value, _ := NewCoin(42)
	txo := NewTxoPointer([32]byte{1}, 0)
	txout := NewTxOut(ea, value)
	tx := NewTx([]TxoPointer{txo}, []TxOut{txout})

	witness := NewPkWitness(&chaincfg.MainNetParams, root, tx.Id())
	return NewTxAux(tx, []TxInWitness{witness})
}

func TestValidateTxAuxValid(t *testing.T) {
	if err := ValidateTxAux(&chaincfg.MainNetParams, validTxAux(t)); err != nil {
		t.Fatalf("ValidateTxAux: %v", err)
	}
}

func TestValidateTxAuxNoInputs(t *testing.T) {
	aux := validTxAux(t)
	aux.Tx.Inputs = nil
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrNoInputs {
		t.Fatalf("got %v, want ErrNoInputs", err)
	}
}

func TestValidateTxAuxNoOutputs(t *testing.T) {
	aux := validTxAux(t)
	aux.Tx.Outputs = nil
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrNoOutputs {
		t.Fatalf("got %v, want ErrNoOutputs", err)
	}
}

func TestValidateTxAuxDuplicateInputs(t *testing.T) {
	aux := validTxAux(t)
	aux.Tx.Inputs = append(aux.Tx.Inputs, aux.Tx.Inputs[0])
	aux.Witnesses = append(aux.Witnesses, aux.Witnesses[0])
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrDuplicateInputs {
		t.Fatalf("got %v, want ErrDuplicateInputs", err)
	}
}

func TestValidateTxAuxZeroOutput(t *testing.T) {
	aux := validTxAux(t)
	aux.Tx.Outputs[0].Value = ZeroCoin
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrZeroOutput {
		t.Fatalf("got %v, want ErrZeroOutput", err)
	}
}

func TestValidateTxAuxMissingWitnesses(t *testing.T) {
	aux := validTxAux(t)
	aux.Witnesses = nil
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrMissingWitnesses {
		t.Fatalf("got %v, want ErrMissingWitnesses", err)
	}
}

func TestValidateTxAuxBadWitness(t *testing.T) {
	aux := validTxAux(t)
	other := testRootKey(t)
	aux.Witnesses[0] = NewPkWitness(&chaincfg.TestNetParams, other, aux.Tx.Id())
	if err := ValidateTxAux(&chaincfg.MainNetParams, aux); err != ErrBadTxWitness {
		t.Fatalf("got %v, want ErrBadTxWitness", err)
	}
}
