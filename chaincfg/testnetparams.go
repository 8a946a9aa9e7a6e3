// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/cardano-go/corvid/hdkeychain"

// TestNetParams defines the parameters for the Cardano Byron-era public
// test network.
var TestNetParams = Params{
	Name:             "testnet",
	ProtocolMagic:    1097911063,
	DerivationScheme: hdkeychain.V2,
	Bip44CoinType:    1815,
}
