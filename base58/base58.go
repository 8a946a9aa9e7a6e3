// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the Base58 textual encoding used for Cardano
// Byron addresses, using the Bitcoin alphabet (no `0`, `O`, `I`, or `l`).
package base58

import (
	"errors"
	"math/big"
)

// Alphabet is the Base58 character set used by this package.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidChar is returned by Decode when the input contains a byte that
// is not part of Alphabet. Use (*InvalidCharError).Index to locate it.
var ErrInvalidChar = errors.New("base58: invalid character")

// InvalidCharError records the position of an invalid character
// encountered while decoding.
type InvalidCharError struct {
	Char  byte
	Index int
}

func (e *InvalidCharError) Error() string {
	return "base58: invalid character " + string(rune(e.Char)) + " at index " + itoa(e.Index)
}

func (e *InvalidCharError) Unwrap() error { return ErrInvalidChar }

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = int8(i)
	}
}

var bigRadix = big.NewInt(58)
var bigZero = big.NewInt(0)

// Encode returns the Base58 encoding of b.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, Alphabet[mod.Int64()])
	}

	// leading zero bytes become leading '1's.
	for _, c := range b {
		if c != 0 {
			break
		}
		answer = append(answer, Alphabet[0])
	}

	// reverse
	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}
	return string(answer)
}

// Decode parses a Base58 string into its underlying bytes. It returns
// *InvalidCharError (wrapping ErrInvalidChar) naming the offending index
// if s contains a character outside Alphabet.
func Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := decodeTable[s[i]]
		if v < 0 {
			return nil, &InvalidCharError{Char: s[i], Index: i}
		}
		scratch.SetInt64(int64(v))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	decoded := answer.Bytes()
	// leading '1's decode to leading zero bytes.
	numZeros := 0
	for numZeros < len(s) && s[numZeros] == Alphabet[0] {
		numZeros++
	}

	out := make([]byte, numZeros+len(decoded))
	copy(out[numZeros:], decoded)
	return out, nil
}
