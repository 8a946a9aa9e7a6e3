// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import "github.com/cardano-go/corvid/chainhash"

// merkleLeafHash hashes a single item's canonical CBOR encoding as a
// Merkle tree leaf: Blake2b-256(0x00 || item_cbor).
func merkleLeafHash(itemCBOR []byte) chainhash.Hash256 {
	buf := make([]byte, 0, 1+len(itemCBOR))
	buf = append(buf, 0x00)
	buf = append(buf, itemCBOR...)
	return chainhash.Hash256B(buf)
}

// merkleNodeHash hashes two child digests as a Merkle tree internal
// node: Blake2b-256(left || right).
func merkleNodeHash(left, right chainhash.Hash256) chainhash.Hash256 {
	buf := make([]byte, 0, 2*chainhash.HashSize256)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return chainhash.Hash256B(buf)
}

// MerkleRoot computes the root of the full binary Merkle tree over
// items' canonical CBOR encodings. An empty tree's root is the digest of
// the empty byte string.
//
// A non-leaf's left subtree always holds the largest power of two of
// items strictly less than the remaining count, so every left subtree is
// a perfect binary tree and no padding leaves are added; when the count
// is not a power of two the tree leans left.
func MerkleRoot(items [][]byte) chainhash.Hash256 {
	if len(items) == 0 {
		return chainhash.Hash256B(nil)
	}
	return merkleBuild(items)
}

func merkleBuild(items [][]byte) chainhash.Hash256 {
	if len(items) == 1 {
		return merkleLeafHash(items[0])
	}
	split := largestPowerOfTwoBelow(len(items))
	left := merkleBuild(items[:split])
	right := merkleBuild(items[split:])
	return merkleNodeHash(left, right)
}

// largestPowerOfTwoBelow returns the largest power of two strictly less
// than n, for n >= 2.
func largestPowerOfTwoBelow(n int) int {
	k := 1
	for k*2 < n {
		k *= 2
	}
	return k
}
