// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/cardano-go/corvid/hdkeychain"

// MainNetParams defines the parameters for Cardano mainnet.
var MainNetParams = Params{
	Name:              "mainnet",
	ProtocolMagic:     764824073,
	DerivationScheme:  hdkeychain.V2,
	Bip44CoinType:     1815,
}
