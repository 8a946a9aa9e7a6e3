// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/redeem"
)

// RedeemPubkeyToTxId computes the pseudo-TxId a RedeemWitness's input
// must reference: the hash of the bootstrap-era address a redeem public
// key spends from directly, with no real preceding transaction. Byron's
// AVVM/redeem balances are seeded straight from this address rather than
// from a UTXO created by an earlier Tx.
func RedeemPubkeyToTxId(params *chaincfg.Params, pubkey redeem.PublicKey) (TxId, address.ExtendedAddr, error) {
	attrs := address.NewBootstrapEraAttributes(nil)
	if !params.IsMainNet() {
		attrs = attrs.WithNetworkMagic(params.ProtocolMagic)
	}
	addr, err := address.NewExtendedAddr(address.ATRedeem, address.NewRedeemSpendingData(pubkey), attrs)
	if err != nil {
		return TxId{}, address.ExtendedAddr{}, err
	}
	return TxId(chainhash.Hash256B(addr.Bytes())), addr, nil
}
