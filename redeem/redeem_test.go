// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeem

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	sk := GenerateFromSeed(seed)
	pk := sk.Public()

	msg := []byte("redeem this")
	sig := sk.Sign(msg)
	if !pk.Verify(msg, sig) {
		t.Fatal("Verify rejected a valid signature")
	}
	if pk.Verify([]byte("different message"), sig) {
		t.Fatal("Verify accepted a signature for the wrong message")
	}
}

func TestGenerateFromSeedIsDeterministic(t *testing.T) {
	var seed [SeedSize]byte
	copy(seed[:], []byte("deterministic seed material!!!!"))
	a := GenerateFromSeed(seed).Public()
	b := GenerateFromSeed(seed).Public()
	if !bytes.Equal(a[:], b[:]) {
		t.Fatalf("GenerateFromSeed is not deterministic: %x != %x", a, b)
	}
}

func TestSignVerifyProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var seed [SeedSize]byte
		copy(seed[:], rapid.SliceOfN(rapid.Byte(), SeedSize, SeedSize).Draw(rt, "seed"))
		msg := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "msg")

		sk := GenerateFromSeed(seed)
		pk := sk.Public()
		sig := sk.Sign(msg)
		if !pk.Verify(msg, sig) {
			rt.Fatalf("Verify rejected a signature produced by Sign")
		}
	})
}
