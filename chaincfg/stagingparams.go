// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/cardano-go/corvid/hdkeychain"

// StagingParams defines the parameters for the Cardano staging network
// used to rehearse mainnet-bound releases.
var StagingParams = Params{
	Name:             "staging",
	ProtocolMagic:    633343913,
	DerivationScheme: hdkeychain.V2,
	Bip44CoinType:    1815,
}
