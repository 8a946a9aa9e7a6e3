// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet provides the account/address derivation and
// transaction-balancing glue that sits on top of hdkeychain, hdpayload,
// address, and transaction. It implements the legacy "2 levels of
// randomly chosen hard indices" wallet scheme: an account index and an
// address index, both hardened, with no BIP44 account tree. An address's
// indices are never stored by the wallet itself; they are recovered on
// demand by decrypting the HD payload carried in the address's
// attributes.
package wallet

import (
	"fmt"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/hdpayload"
)

// Addressing identifies one address derived from a Wallet's root key: an
// account index followed by an address index, both taken as hardened
// hierarchical-deterministic derivation indices.
type Addressing struct {
	Account uint32
	Index   uint32
}

// NewAddressing builds an Addressing from a plain account/index pair.
func NewAddressing(account, index uint32) Addressing {
	return Addressing{Account: account, Index: index}
}

func (a Addressing) String() string { return fmt.Sprintf("%d.%d", a.Account, a.Index) }

func (a Addressing) path() hdpayload.Path { return hdpayload.Path{a.Account, a.Index} }

// Wallet derives addresses and signs transactions from a single root
// extended private key, under one derivation scheme. It holds no account
// tree: every address is reached by deriving Account then Index as
// consecutive hardened children of the root key.
type Wallet struct {
	root   hdkeychain.XPrv
	scheme hdkeychain.DerivationScheme
}

// NewWallet wraps root as a Wallet deriving under scheme.
func NewWallet(root hdkeychain.XPrv, scheme hdkeychain.DerivationScheme) Wallet {
	return Wallet{root: root, scheme: scheme}
}

// RootKey returns the wallet's root extended private key.
func (w Wallet) RootKey() hdkeychain.XPrv { return w.root }

// deriveKey walks a down to its (Account, Index) hardened child key.
func (w Wallet) deriveKey(a Addressing) hdkeychain.XPrv {
	const hardened = 0x80000000
	return w.root.Derive(w.scheme, a.Account|hardened).Derive(w.scheme, a.Index|hardened)
}

// Address builds the ExtendedAddr for addressing a, carrying an
// encrypted HD payload that only this wallet's root key can later
// recover, bound to params' network magic.
func (w Wallet) Address(params *chaincfg.Params, a Addressing) (address.ExtendedAddr, error) {
	key, err := hdpayload.DeriveKey(w.root.Public())
	if err != nil {
		return address.ExtendedAddr{}, err
	}
	payload := key.Encrypt(a.path())

	pub := w.deriveKey(a).Public()
	sd := address.NewPubKeySpendingData(pub)
	attrs := address.NewBootstrapEraAttributes(payload)
	if !params.IsMainNet() {
		attrs = attrs.WithNetworkMagic(params.ProtocolMagic)
	}
	return address.NewExtendedAddr(address.ATPubKey, sd, attrs)
}

// Addresses builds the ExtendedAddr for every addressing in as, in order.
func (w Wallet) Addresses(params *chaincfg.Params, as []Addressing) ([]address.ExtendedAddr, error) {
	out := make([]address.ExtendedAddr, 0, len(as))
	for _, a := range as {
		ea, err := w.Address(params, a)
		if err != nil {
			return nil, err
		}
		out = append(out, ea)
	}
	return out, nil
}

// CheckAddress reports whether addr was generated by this wallet,
// returning the Addressing that produced it. It decrypts addr's HD
// payload under this wallet's own key and then regenerates the address
// from the recovered indices, rejecting any address whose payload was
// copied from elsewhere: a match requires both a successful decryption
// and byte-for-byte address reconstruction.
func (w Wallet) CheckAddress(params *chaincfg.Params, addr address.ExtendedAddr) (Addressing, bool) {
	if addr.Attributes.DerivationPath == nil {
		return Addressing{}, false
	}
	key, err := hdpayload.DeriveKey(w.root.Public())
	if err != nil {
		return Addressing{}, false
	}
	path, err := key.Decrypt(addr.Attributes.DerivationPath)
	if err != nil || len(path) != 2 {
		return Addressing{}, false
	}
	a := NewAddressing(path[0], path[1])

	want, err := w.Address(params, a)
	if err != nil {
		return Addressing{}, false
	}
	if want.Addr != addr.Addr || want.AddrType != addr.AddrType {
		return Addressing{}, false
	}
	return a, true
}
