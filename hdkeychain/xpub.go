// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import "crypto/ed25519"

// XPub is an Ed25519-BIP32 extended public key: a 32-byte compressed
// curve point followed by a 32-byte chain code.
type XPub [XPubSize]byte

// XPubFromSlice copies b into an XPub, validating its length.
func XPubFromSlice(b []byte) (XPub, error) {
	if len(b) != XPubSize {
		return XPub{}, &ErrInvalidSize{Kind: "xpub", Want: XPubSize, Got: len(b)}
	}
	var xpub XPub
	copy(xpub[:], b)
	return xpub, nil
}

// PublicKey returns xpub's raw 32-byte Ed25519 public key, discarding the
// chain code.
func (xpub XPub) PublicKey() [32]byte {
	var pk [32]byte
	copy(pk[:], xpub[0:32])
	return pk
}

// Verify reports whether sig is a valid signature of message under xpub.
// Verification depends only on the public point and the (R, S) pair in
// sig, so it is the same equation the standard library's Ed25519
// implementation checks, regardless of how the signing scalar was
// derived.
func (xpub XPub) Verify(message []byte, sig Signature) bool {
	pk := xpub.PublicKey()
	return ed25519.Verify(pk[:], message, sig[:])
}

// Derive computes the child XPub at index under scheme. Only soft
// (non-hardened) indices can be derived from a public key;
// ErrExpectedSoftDerivation is returned otherwise.
func (xpub XPub) Derive(scheme DerivationScheme, index DerivationIndex) (XPub, error) {
	return derivePublic(xpub, index, scheme)
}
