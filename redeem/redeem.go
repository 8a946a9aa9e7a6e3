// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redeem implements the non-extended Ed25519 key pairs used by
// redemption addresses and their witnesses. Unlike hdkeychain's extended
// keys, a redeem key has no chain code and cannot be derived further —
// it is a bare Ed25519 key pair, generated once and spent once.
package redeem

import (
	"crypto/ed25519"
	"errors"
)

// PublicKeySize, SeedSize and SignatureSize are plain Ed25519's: a redeem
// public key is 32 bytes, not the 64-byte extended public key hdkeychain
// uses, while signatures are 64 bytes in both packages.
const (
	PublicKeySize = ed25519.PublicKeySize
	SeedSize      = ed25519.SeedSize
	SignatureSize = ed25519.SignatureSize
)

// ErrInvalidSignatureSize is returned by SignatureFromSlice.
var ErrInvalidSignatureSize = errors.New("redeem: invalid signature size")

// PublicKey is a redeem (non-extended) Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Signature is a redeem Ed25519 signature.
type Signature [SignatureSize]byte

// PrivateKey is a redeem Ed25519 private key, generated directly from a
// 32-byte seed with no HD chain code.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenerateFromSeed deterministically derives a redeem key pair from a
// 32-byte seed.
func GenerateFromSeed(seed [SeedSize]byte) PrivateKey {
	return PrivateKey{key: ed25519.NewKeyFromSeed(seed[:])}
}

// Public returns sk's public key.
func (sk PrivateKey) Public() PublicKey {
	var pk PublicKey
	copy(pk[:], sk.key.Public().(ed25519.PublicKey))
	return pk
}

// Sign signs message with sk.
func (sk PrivateKey) Sign(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(sk.key, message))
	return sig
}

// SignatureFromSlice copies b into a Signature, validating its length.
func SignatureFromSlice(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, ErrInvalidSignatureSize
	}
	var s Signature
	copy(s[:], b)
	return s, nil
}

// Verify reports whether sig is a valid signature of message under pk.
func (pk PublicKey) Verify(message []byte, sig Signature) bool {
	return ed25519.Verify(pk[:], message, sig[:])
}
