// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/cardano-go/corvid/hdkeychain"

// Params holds the parameters that distinguish one Cardano network from
// another.
type Params struct {
	// Name is the network's human-readable identifier, e.g. "mainnet".
	Name string

	// ProtocolMagic is the 32-bit network discriminator mixed into every
	// signed payload (see transaction.SignBytes) and, for non-mainnet
	// networks, into every address's Attributes.
	ProtocolMagic int32

	// DerivationScheme is the Ed25519-BIP32 arithmetic new wallets on
	// this network should use by default.
	DerivationScheme hdkeychain.DerivationScheme

	// Bip44CoinType is the BIP44 coin-type index used when deriving
	// account-level paths (SLIP-0044 entry 1815, "ADA", for every
	// Cardano network regardless of which chain is selected).
	Bip44CoinType uint32
}

// IsMainNet reports whether params is the mainnet configuration. Address
// attributes omit the protocol magic on mainnet and carry it on every
// other network.
func (p *Params) IsMainNet() bool { return p.Name == MainNetParams.Name }
