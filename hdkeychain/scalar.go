// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import "filippo.io/edwards25519"

// scalarModL reduces a 256-bit little-endian integer (which may exceed
// the group order L, as derivation scheme V2's left-key arithmetic
// deliberately does not reduce) modulo L, by way of Scalar.SetUniformBytes
// over a zero-extended 64-byte buffer. This is mathematically equivalent
// to the reference's non-canonical ge_scalarmult_base/sc_reduce calls,
// which accept any 256-bit scalar and reduce mod L internally.
func scalarModL(x []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:32], x)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails if given a buffer that isn't exactly
		// 64 bytes; wide is always exactly 64 bytes.
		panic(err)
	}
	return s
}

// scalarBasePoint returns scalar*B, compressed.
func scalarBasePoint(scalar *edwards25519.Scalar) [32]byte {
	p := new(edwards25519.Point).ScalarBaseMult(scalar)
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// reduceWide64 reduces an arbitrary 64-byte little-endian integer (e.g. a
// SHA-512 digest) modulo L.
func reduceWide64(x []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(x)
	if err != nil {
		panic(err)
	}
	return s
}

// edwardsScalarMultiplyAdd returns (h*kl + r) mod L, as a 32-byte
// canonical little-endian encoding: the Ed25519 signature scalar S.
func edwardsScalarMultiplyAdd(h, kl, r *edwards25519.Scalar) []byte {
	s := edwards25519.NewScalar().MultiplyAdd(h, kl, r)
	return s.Bytes()
}
