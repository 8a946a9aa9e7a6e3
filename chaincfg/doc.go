// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the per-network parameters that every other
// package takes as an explicit argument rather than reading from global
// state: the protocol magic mixed into every signature, the default HD
// derivation scheme new wallets on that network should use, and the
// BIP44 coin type for address derivation paths.
//
// There is no mutable "active network" global. Callers hold a *Params
// (one of MainNetParams, TestNetParams, StagingParams, or a custom value)
// and thread it through explicitly:
//
//  params := chaincfg.MainNetParams
//  witness := transaction.NewPkWitness(&params, key, txid)
package chaincfg
