// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rindex derives a wallet's root extended key the way the
// original Daedalus desktop wallet did, before Cardano wallets switched
// to deriving directly from a BIP39 seed. A Daedalus mnemonic phrase does
// not feed PBKDF2 at all: its entropy is hashed and CBOR-wrapped twice
// before reaching the same "Root Seed Chain" HMAC loop every legacy
// extended key construction uses.
//
// The "2 levels of randomly chosen hard indices" wallet this package is
// named for has no BIP44 account structure: every address is addressed
// by a bare (account, index) pair of hardened derivation indices chosen
// at random by the original client, recovered only by attempting to
// decrypt the HD payload embedded in an address's attributes.
package rindex

import (
	"github.com/cardano-go/corvid/bip39"
	"github.com/cardano-go/corvid/bip39/wordlists"
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
)

// RootKeyFromMnemonics reproduces a Daedalus wallet's root extended
// private key from its mnemonic phrase. The derivation is:
//
//  1. recover the phrase's BIP39 entropy (no checksum stretching happens
//     here: Daedalus never adopted BIP39's PBKDF2 seed step);
//  2. CBOR-encode the raw entropy bytes as a CBOR byte string;
//  3. Blake2b-256 hash that encoding;
//  4. CBOR-encode the 32-byte digest as a CBOR byte string again;
//  5. feed the result into hdkeychain.RootKeyFromDaedalusSeed.
func RootKeyFromMnemonics(lang wordlists.Language, phrase string) (hdkeychain.XPrv, error) {
	mnemonics, err := bip39.ParseMnemonics(phrase, lang)
	if err != nil {
		return hdkeychain.XPrv{}, err
	}
	entropy, err := mnemonics.Entropy()
	if err != nil {
		return hdkeychain.XPrv{}, err
	}
	return rootKeyFromEntropy(entropy), nil
}

func rootKeyFromEntropy(entropy bip39.Entropy) hdkeychain.XPrv {
	entropyCbor := cbor.NewSerializer()
	entropyCbor.WriteBytes(entropy.Bytes())
	digest := chainhash.Hash256B(entropyCbor.Bytes())

	digestCbor := cbor.NewSerializer()
	digestCbor.WriteBytes(digest[:])

	return hdkeychain.RootKeyFromDaedalusSeed(digestCbor.Bytes())
}
