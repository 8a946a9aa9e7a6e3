// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkeychain implements Ed25519-BIP32 hierarchical key derivation
// (the Khovratovich/Law scheme), in both its V1 (legacy, Daedalus-era) and
// V2 forms, plus root-key construction from a BIP39 seed or from a
// Daedalus-style legacy seed.
package hdkeychain

import (
	"crypto/sha512"
	"fmt"

	"github.com/cardano-go/corvid/bip39"
	"github.com/cardano-go/corvid/securemem"
)

const (
	// XPrvSize is the fixed length, in bytes, of an extended private key
	// (64-byte extended Ed25519 secret key + 32-byte chain code).
	XPrvSize = 96
	// XPubSize is the fixed length, in bytes, of an extended public key
	// (32-byte curve point + 32-byte chain code).
	XPubSize = 64
	// SignatureSize is the fixed length, in bytes, of an Ed25519 signature.
	SignatureSize = 64

	publicKeySize = 32
	chainCodeSize = 32
)

// DerivationScheme selects which Ed25519-BIP32 derivation arithmetic to
// use. V1 is the legacy scheme (Daedalus-era wallets); it reduces
// intermediate values modulo the curve's group order in places V2
// deliberately does not, which made V1 vulnerable to a subtle key
// collision the V2 design fixes. New code should use V2 unless it must
// stay compatible with a V1-derived wallet.
type DerivationScheme uint8

const (
	V1 DerivationScheme = iota
	V2
)

// DerivationIndex selects a child key; indices at or above 0x80000000
// request hardened derivation.
type DerivationIndex = uint32

const hardenedBit = uint32(0x80000000)

func isHardened(index DerivationIndex) bool { return index >= hardenedBit }

// XPrv is an Ed25519-BIP32 extended private key: a 64-byte extended
// Ed25519 secret scalar pair (kL, kR) followed by a 32-byte chain code.
type XPrv [XPrvSize]byte

// RootKeyFromBip39Seed constructs the root XPrv from a 64-byte BIP39 seed,
// following the reference's generate_from_bip39: the left 32 bytes of the
// seed are extended and clamped via SHA-512 the way an Ed25519 seed
// normally is, with the normal clamping's third-highest bit additionally
// cleared, and the right 32 bytes of the seed become the chain code
// directly (skipping the HMAC-based Daedalus loop entirely).
func RootKeyFromBip39Seed(seed bip39.Seed) XPrv {
	kl, kr := mkEd25519Extended(seed[0:32])
	kl[31] &^= 0x20 // clear 3rd highest bit, per the Ed25519-BIP32 spec

	var out XPrv
	copy(out[0:32], kl[:])
	copy(out[32:64], kr[:])
	copy(out[64:96], seed[32:64])
	return out
}

// RootKeyFromDaedalusSeed constructs the root XPrv from a legacy
// (pre-BIP39) Daedalus wallet seed: an HMAC-SHA512 loop keyed by the seed
// bytes, retrying under a "Root Seed Chain N" label until the resulting
// extended key's clamped bit pattern is acceptable.
func RootKeyFromDaedalusSeed(seed []byte) XPrv {
	for iter := 1; ; iter++ {
		label := fmt.Sprintf("Root Seed Chain %d", iter)
		block := hmacSHA512(seed, []byte(label))

		kl, kr := mkEd25519Extended(block[0:32])
		if kl[31]&0x20 == 0 {
			var out XPrv
			copy(out[0:32], kl[:])
			copy(out[32:64], kr[:])
			copy(out[64:96], block[32:64])
			return out
		}
	}
}

// mkEd25519Extended expands a 32-byte secret into a clamped (kL, kR) pair
// via SHA-512, the standard Ed25519 extended-key construction.
func mkEd25519Extended(secret []byte) (kl, kr [32]byte) {
	h := sha512.Sum512(secret)
	copy(kl[:], h[0:32])
	copy(kr[:], h[32:64])
	kl[0] &= 248
	kl[31] &= 63
	kl[31] |= 64
	return kl, kr
}

// Public returns the XPub associated with xprv.
func (xprv XPrv) Public() XPub {
	kl := xprv[0:32]
	scalar := scalarModL(kl)
	pk := scalarBasePoint(scalar)

	var out XPub
	copy(out[0:32], pk[:])
	copy(out[32:64], xprv[64:96])
	return out
}

// Sign signs message with xprv, using the Ed25519 "extended" signing
// algorithm: the nonce and key scalar come directly from xprv's (kL, kR)
// pair rather than from hashing a 32-byte seed, since the BIP32-derived
// key no longer has a single seed to hash.
func (xprv XPrv) Sign(message []byte) Signature {
	kl := xprv[0:32]
	kr := xprv[32:64]

	pub := xprv.Public()
	A := pub[0:32]

	nonceHash := sha512Digest(kr, message)
	r := reduceWide64(nonceHash[:])
	R := scalarBasePoint(r)

	hramHash := sha512Digest(R[:], A, message)
	h := reduceWide64(hramHash[:])

	klScalar := scalarModL(kl)
	s := edwardsScalarMultiplyAdd(h, klScalar, r)

	var sig Signature
	copy(sig[0:32], R[:])
	copy(sig[32:64], s)
	return sig
}

// Verify verifies a signature produced by Sign. Verification only depends
// on the public point and the (R, S) pair, so it delegates to this
// module's Ed25519 public-key Verify regardless of how the private scalar
// was derived.
func (xprv XPrv) Verify(message []byte, sig Signature) bool {
	return xprv.Public().Verify(message, sig)
}

// Derive computes the child XPrv at index under scheme.
func (xprv XPrv) Derive(scheme DerivationScheme, index DerivationIndex) XPrv {
	return derivePrivate(xprv, index, scheme)
}

// Zero wipes xprv's bytes.
func (xprv *XPrv) Zero() { securemem.Zero(xprv[:]) }
