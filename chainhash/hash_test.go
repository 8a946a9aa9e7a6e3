// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestHash224Size(t *testing.T) {
	h := Hash224B([]byte("some random bytes..."))
	if len(h) != HashSize224 {
		t.Fatalf("len(h) = %d, want %d", len(h), HashSize224)
	}
}

func TestAddrHashIsComposite(t *testing.T) {
	input := []byte("some random bytes...")
	mid := Sha3_256B(input)
	want, _ := blake2b.New(HashSize224, nil)
	want.Write(mid[:])
	var wantSum Hash224
	want.Sum(wantSum[:0])

	got := AddrHash(input)
	if got != wantSum {
		t.Fatalf("AddrHash is not Blake2b224(Sha3_256(x)): got %x, want %x", got, wantSum)
	}

	plain := Hash224B(input)
	if got == plain {
		t.Fatalf("AddrHash must differ from a bare Blake2b-224 of the input")
	}
}

func TestHashEqualConstantTime(t *testing.T) {
	a := Hash256B([]byte("a"))
	b := Hash256B([]byte("a"))
	c := Hash256B([]byte("b"))
	if !a.Equal(b) {
		t.Fatal("identical inputs produced unequal hashes")
	}
	if a.Equal(c) {
		t.Fatal("distinct inputs produced equal hashes")
	}
}

func TestCRC32(t *testing.T) {
	// IEEE CRC-32 of "123456789" is the well known check value 0xCBF43926.
	if got := CRC32([]byte("123456789")); got != 0xCBF43926 {
		t.Fatalf("CRC32 = %#08x, want 0xcbf43926", got)
	}
}
