// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash collects the hashing primitives used throughout the
// wallet core: Blake2b-224, Blake2b-256, SHA3-256, and the IEEE CRC-32
// used by the CBOR envelope.
package chainhash

import (
	"crypto/subtle"
	"encoding/hex"
	"hash/crc32"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashSize256 is the size, in bytes, of a Hash256.
const HashSize256 = 32

// HashSize224 is the size, in bytes, of a Hash224.
const HashSize224 = 28

// Hash256 is a Blake2b-256 digest, used for transaction ids, block header
// hashes, and Merkle tree nodes.
type Hash256 [HashSize256]byte

// Hash224 is a Blake2b-224 digest, used for address and stakeholder ids.
type Hash224 [HashSize224]byte

// String returns the hex encoding of h.
func (h Hash256) String() string { return hex.EncodeToString(h[:]) }

// String returns the hex encoding of h.
func (h Hash224) String() string { return hex.EncodeToString(h[:]) }

// Equal reports whether h and other are the same digest, in constant time.
func (h Hash256) Equal(other Hash256) bool {
	return subtle.ConstantTimeCompare(h[:], other[:]) == 1
}

// Equal reports whether h and other are the same digest, in constant time.
func (h Hash224) Equal(other Hash224) bool {
	return subtle.ConstantTimeCompare(h[:], other[:]) == 1
}

// Hash256B returns the Blake2b-256 digest of b.
func Hash256B(b []byte) Hash256 {
	return blake2b.Sum256(b)
}

// Hash224B returns the Blake2b-224 digest of b.
func Hash224B(b []byte) Hash224 {
	var out Hash224
	h, _ := blake2b.New(HashSize224, nil)
	h.Write(b)
	h.Sum(out[:0])
	return out
}

// Sha3_256B returns the SHA3-256 digest of b.
func Sha3_256B(b []byte) [32]byte {
	return sha3.Sum256(b)
}

// AddrHash computes the composite digest used for Byron addresses and
// stakeholder ids: Blake2b-224 of the SHA3-256 of b, not a bare Blake2b-224.
// This matches the reference's DigestBlake2b224, which hashes with SHA3-256
// before the final Blake2b-224 pass.
func AddrHash(b []byte) Hash224 {
	mid := sha3.Sum256(b)
	return Hash224B(mid[:])
}

// CRC32 returns the IEEE CRC-32 checksum of b, used by the CBOR-in-CBOR
// envelope.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
