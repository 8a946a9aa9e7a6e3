// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cardano-go/corvid/bip39/wordlists"
	"github.com/davecgh/go-spew/spew"
	"pgregory.net/rapid"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestToMnemonicsStandardVectors(t *testing.T) {
	lang := wordlists.EnglishLanguage()
	tests := []struct {
		entropyHex string
		phrase     string
		seedHex    string
		password   string
	}{
		{
			entropyHex: "0000000000000000000000000000000000000000000000000000000000000000",
			phrase:     "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			seedHex:    "bda85446c68413707090a52022edd26a1c9462295029f2e60cd7c4f2bbd3097170af7a4d73245cafa9c3cca8d561a7c3de6f5d4a10be8ed2a5e608d68f92fcc8",
			password:   "TREZOR",
		},
		{
			entropyHex: "00000000000000000000000000000000",
			phrase:     "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			seedHex:    "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
			password:   "TREZOR",
		},
	}

	for _, tc := range tests {
		raw := mustHex(t, tc.entropyHex)
		e, err := NewEntropy(raw)
		if err != nil {
			t.Fatalf("NewEntropy(%d bytes) returned error: %v", len(raw), err)
		}

		indices, err := e.ToMnemonics()
		if err != nil {
			t.Fatalf("ToMnemonics returned error: %v", err)
		}
		phrase, err := Mnemonics(indices).String(lang)
		if err != nil {
			t.Fatalf("Mnemonics.String returned error: %v", err)
		}
		if phrase != tc.phrase {
			t.Fatalf("phrase mismatch:\ngot:  %s\nwant: %s", phrase, tc.phrase)
		}

		got, err := ParseMnemonics(tc.phrase, lang)
		if err != nil {
			t.Fatalf("ParseMnemonics returned error: %v", err)
		}
		back, err := got.Entropy()
		if err != nil {
			t.Fatalf("Entropy returned error: %v", err)
		}
		if !bytes.Equal(back.Bytes(), raw) {
			t.Fatalf("round trip entropy mismatch: got %s, want %s", spew.Sdump(back.Bytes()), spew.Sdump(raw))
		}

		seed := SeedFromMnemonicString(tc.phrase, []byte(tc.password))
		want := mustHex(t, tc.seedHex)
		if !bytes.Equal(seed[:], want) {
			t.Fatalf("seed mismatch:\ngot:  %x\nwant: %x", seed[:], want)
		}
	}
}

func TestFromMnemonicsInvalidChecksum(t *testing.T) {
	lang := wordlists.EnglishLanguage()
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	indices, err := ParseMnemonics(phrase, lang)
	if err != nil {
		t.Fatalf("ParseMnemonics returned error: %v", err)
	}
	// corrupt the last word, which carries checksum bits.
	indices[len(indices)-1] = (indices[len(indices)-1] + 1) % (MaxMnemonicValue + 1)
	if _, err := indices.Entropy(); err != ErrInvalidChecksum {
		t.Fatalf("Entropy with corrupted checksum word = %v, want ErrInvalidChecksum", err)
	}
}

func TestTypeFromWordCount(t *testing.T) {
	tests := []struct {
		count int
		want  Type
	}{
		{9, Type9Words},
		{12, Type12Words},
		{15, Type15Words},
		{18, Type18Words},
		{21, Type21Words},
		{24, Type24Words},
	}
	for _, tc := range tests {
		got, err := TypeFromWordCount(tc.count)
		if err != nil {
			t.Fatalf("TypeFromWordCount(%d) returned error: %v", tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("TypeFromWordCount(%d) = %v, want %v", tc.count, got, tc.want)
		}
	}
	if _, err := TypeFromWordCount(13); err != ErrWrongNumberOfWords {
		t.Fatalf("TypeFromWordCount(13) = %v, want ErrWrongNumberOfWords", err)
	}
}

func TestType9WordsRoundTrip(t *testing.T) {
	raw := mustHex(t, "000102030405060708090a0b")
	e, err := NewEntropy(raw)
	if err != nil {
		t.Fatalf("NewEntropy returned error: %v", err)
	}
	if e.Type() != Type9Words {
		t.Fatalf("Type = %v, want Type9Words", e.Type())
	}
	indices, err := e.ToMnemonics()
	if err != nil {
		t.Fatalf("ToMnemonics returned error: %v", err)
	}
	if len(indices) != 9 {
		t.Fatalf("len(indices) = %d, want 9", len(indices))
	}
	back, err := Mnemonics(indices).Entropy()
	if err != nil {
		t.Fatalf("Entropy returned error: %v", err)
	}
	if !bytes.Equal(back.Bytes(), raw) {
		t.Fatalf("round trip mismatch: got %x, want %x", back.Bytes(), raw)
	}
}

func TestSplitUsesLanguageSeparator(t *testing.T) {
	lang := wordlists.EnglishLanguage()
	words, err := lang.Split("abandon ability able")
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if strings.Join(words, ",") != "abandon,ability,able" {
		t.Fatalf("Split = %v", words)
	}
}

func TestEntropyRoundTripProperty(t *testing.T) {
	lang := wordlists.EnglishLanguage()
	sizes := []int{12, 16, 20, 24, 28, 32}
	rapid.Check(t, func(t *rapid.T) {
		size := sizes[rapid.IntRange(0, len(sizes)-1).Draw(t, "sizeIdx")]
		raw := rapid.SliceOfN(rapid.Byte(), size, size).Draw(t, "entropy")
		e, err := NewEntropy(raw)
		if err != nil {
			t.Fatalf("NewEntropy returned error: %v", err)
		}
		indices, err := e.ToMnemonics()
		if err != nil {
			t.Fatalf("ToMnemonics returned error: %v", err)
		}
		phrase, err := Mnemonics(indices).String(lang)
		if err != nil {
			t.Fatalf("Mnemonics.String returned error: %v", err)
		}
		parsed, err := ParseMnemonics(phrase, lang)
		if err != nil {
			t.Fatalf("ParseMnemonics returned error: %v", err)
		}
		back, err := parsed.Entropy()
		if err != nil {
			t.Fatalf("Entropy returned error: %v", err)
		}
		if !bytes.Equal(back.Bytes(), raw) {
			t.Fatalf("round trip mismatch: got %s, want %s", spew.Sdump(back.Bytes()), spew.Sdump(raw))
		}
	})
}
