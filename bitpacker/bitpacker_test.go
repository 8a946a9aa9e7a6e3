// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitpacker

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"pgregory.net/rapid"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := [][]uint16{
		{},
		{0},
		{2047},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{1234, 0, 2047, 1, 1023},
	}
	for _, symbols := range tests {
		packed, err := Pack(symbols)
		if err != nil {
			t.Fatalf("Pack(%v) returned error: %v", symbols, err)
		}
		got, err := Unpack(packed, len(symbols))
		if err != nil {
			t.Fatalf("Unpack returned error: %v", err)
		}
		if !equal(got, symbols) {
			t.Fatalf("round trip mismatch: got %s, want %s", spew.Sdump(got), spew.Sdump(symbols))
		}
	}
}

// TestEightSymbolAlignment verifies the generic engine rejoins byte
// alignment every 8 symbols (88 bits = 11 bytes), matching the reference
// 8-state machine's period.
func TestEightSymbolAlignment(t *testing.T) {
	symbols := make([]uint16, 8)
	for i := range symbols {
		symbols[i] = uint16(i * 211 % 2048)
	}
	packed, err := Pack(symbols)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	if len(packed) != 11 {
		t.Fatalf("len(packed) = %d, want 11", len(packed))
	}
}

func TestWriteOutOfRange(t *testing.T) {
	w := NewWriter()
	if err := w.Write(2048); err != ErrSymbolOutOfRange {
		t.Fatalf("Write(2048) error = %v, want ErrSymbolOutOfRange", err)
	}
}

func TestReadNotEnoughBits(t *testing.T) {
	r := NewReader([]byte{0x00})
	if _, err := r.Read(); err != ErrNotEnoughBits {
		t.Fatalf("Read() error = %v, want ErrNotEnoughBits", err)
	}
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		symbols := make([]uint16, n)
		for i := range symbols {
			symbols[i] = uint16(rapid.IntRange(0, 2047).Draw(t, "symbol"))
		}
		packed, err := Pack(symbols)
		if err != nil {
			t.Fatalf("Pack returned error: %v", err)
		}
		got, err := Unpack(packed, n)
		if err != nil {
			t.Fatalf("Unpack returned error: %v", err)
		}
		if !equal(got, symbols) {
			t.Fatalf("round trip mismatch: got %s, want %s", spew.Sdump(got), spew.Sdump(symbols))
		}
	})
}

func equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
