// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip39

import (
	"crypto/sha512"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the fixed length, in bytes, of a derived Seed.
const SeedSize = 64

const pbkdf2Iterations = 2048

// ErrInvalidSeedSize is returned by NewSeed when given a buffer that is
// not exactly SeedSize bytes long.
var ErrInvalidSeedSize = errors.New("bip39: invalid seed size")

// Seed is the 64-byte PBKDF2 output derived from a mnemonic phrase,
// consumed by the HD key root-key constructors.
type Seed [SeedSize]byte

// NewSeed wraps data as a Seed, validating its length.
func NewSeed(data []byte) (Seed, error) {
	if len(data) != SeedSize {
		return Seed{}, ErrInvalidSeedSize
	}
	var s Seed
	copy(s[:], data)
	return s, nil
}

// SeedFromMnemonicString derives a Seed from a mnemonic phrase and an
// optional password, following BIP39: PBKDF2-HMAC-SHA512 keyed by the
// phrase string itself, salted with "mnemonic" concatenated with the
// password, run for 2048 iterations.
func SeedFromMnemonicString(phrase string, password []byte) Seed {
	salt := append([]byte("mnemonic"), password...)
	out := pbkdf2.Key([]byte(phrase), salt, pbkdf2Iterations, SeedSize, sha512.New)
	var s Seed
	copy(s[:], out)
	return s
}
