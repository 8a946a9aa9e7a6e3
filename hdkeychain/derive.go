// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import "filippo.io/edwards25519"

// serializeIndex encodes index as 4 bytes, big-endian under V1 and
// little-endian under V2 — one of the handful of places the two schemes
// genuinely disagree on wire format, not just on reduction behavior.
func serializeIndex(index DerivationIndex, scheme DerivationScheme) [4]byte {
	var out [4]byte
	if scheme == V1 {
		out[0] = byte(index >> 24)
		out[1] = byte(index >> 16)
		out[2] = byte(index >> 8)
		out[3] = byte(index)
	} else {
		out[0] = byte(index)
		out[1] = byte(index >> 8)
		out[2] = byte(index >> 16)
		out[3] = byte(index >> 24)
	}
	return out
}

// add256V1 adds x and y byte-by-byte with 8-bit wraparound and no carry
// propagation between bytes. This looks like a bug — and is one, carried
// over from the original V1 scheme, which this package preserves for
// compatibility with V1-derived keys rather than silently correcting.
func add256V1(x, y []byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = x[i] + y[i]
	}
	return out
}

// add256V2 adds x and y as 256-bit little-endian integers, with full
// carry propagation.
func add256V2(x, y []byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		r := uint16(x[i]) + uint16(y[i]) + carry
		out[i] = byte(r)
		carry = r >> 8
	}
	return out
}

func add256(x, y []byte, scheme DerivationScheme) [32]byte {
	if scheme == V1 {
		return add256V1(x, y)
	}
	return add256V2(x, y)
}

// add28Mul8V1 computes kl + 8*trunc28(zl) the V1 way: the 8*trunc28(zl)
// term and the addition are both carried out in a wide (33-byte) buffer
// and the sum is then reduced modulo the curve's group order L. This
// reduction is exactly the defect V2 below removes.
func add28Mul8V1(x, y []byte) [32]byte {
	var yfe8 [32]byte
	var acc byte
	for i := 0; i < 32; i++ {
		yfe8[i] = y[i]<<3 + acc&0x8
		acc = y[i] >> 5
	}

	var wide [64]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		v := uint16(x[i]) + uint16(yfe8[i]) + carry
		wide[i] = byte(v)
		carry = v >> 8
	}
	if carry > 0 {
		wide[32] = byte(carry)
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

// add28Mul8V2 computes kl + 8*trunc28(zl) the V2 way: a plain 256-bit
// addition with no modular reduction, where the 8*trunc28(zl) term only
// ever touches the low 28 bytes of y (hence "trunc28") before the shift
// by 3 bits (the "mul8").
func add28Mul8V2(x, y []byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 28; i++ {
		r := uint16(x[i]) + uint16(y[i])<<3 + carry
		out[i] = byte(r)
		carry = r >> 8
	}
	for i := 28; i < 32; i++ {
		r := uint16(x[i]) + carry
		out[i] = byte(r)
		carry = r >> 8
	}
	return out
}

func add28Mul8(x, y []byte, scheme DerivationScheme) [32]byte {
	if scheme == V1 {
		return add28Mul8V1(x, y)
	}
	return add28Mul8V2(x, y)
}

func derivePrivate(xprv XPrv, index DerivationIndex, scheme DerivationScheme) XPrv {
	ekey := xprv[0:64]
	kl := ekey[0:32]
	kr := ekey[32:64]
	chaincode := xprv[64:96]

	seri := serializeIndex(index, scheme)

	var zOut, iOut [64]byte
	if isHardened(index) {
		zOut = hmacParts(chaincode, []byte{0x0}, ekey, seri[:])
		iOut = hmacParts(chaincode, []byte{0x1}, ekey, seri[:])
	} else {
		pk := scalarBasePoint(scalarModL(kl))
		zOut = hmacParts(chaincode, []byte{0x2}, pk[:], seri[:])
		iOut = hmacParts(chaincode, []byte{0x3}, pk[:], seri[:])
	}

	zl := zOut[0:32]
	zr := zOut[32:64]

	left := add28Mul8(kl, zl, scheme)
	right := add256(kr, zr, scheme)
	cc := iOut[32:64]

	var out XPrv
	copy(out[0:32], left[:])
	copy(out[32:64], right[:])
	copy(out[64:96], cc)
	return out
}

func derivePublic(xpub XPub, index DerivationIndex, scheme DerivationScheme) (XPub, error) {
	if isHardened(index) {
		return XPub{}, ErrExpectedSoftDerivation
	}

	pk := xpub[0:32]
	chaincode := xpub[32:64]
	seri := serializeIndex(index, scheme)

	zOut := hmacParts(chaincode, []byte{0x2}, pk, seri[:])
	iOut := hmacParts(chaincode, []byte{0x3}, pk, seri[:])
	zl := zOut[0:32]

	trunc := add28Mul8(make([]byte, 32), zl, scheme)
	pointTerm := scalarBasePoint(scalarModL(trunc[:]))
	left, err := pointAdd(pk, pointTerm[:])
	if err != nil {
		return XPub{}, err
	}
	cc := iOut[32:64]

	var out XPub
	copy(out[0:32], left[:])
	copy(out[32:64], cc)
	return out, nil
}

// hmacParts computes HMAC-SHA512(key, concat(parts...)).
func hmacParts(key []byte, parts ...[]byte) [64]byte {
	var buf []byte
	for _, p := range parts {
		buf = append(buf, p...)
	}
	sum := hmacSHA512(key, buf)
	var out [64]byte
	copy(out[:], sum)
	return out
}

// pointAdd adds two compressed Edwards points, matching the reference's
// negate-then-add-then-renegate dance: both points are decoded via their
// negated form (the library's fast-path decoder), added as cached/P3
// points, and the result's sign bit is flipped back to undo the
// negation.
func pointAdd(p1, p2 []byte) ([32]byte, error) {
	var neg1, neg2 [32]byte
	copy(neg1[:], p1)
	copy(neg2[:], p2)
	negateSignBit(&neg1)
	negateSignBit(&neg2)

	a, err := new(edwards25519.Point).SetBytes(neg1[:])
	if err != nil {
		return [32]byte{}, ErrInvalidDerivation
	}
	b, err := new(edwards25519.Point).SetBytes(neg2[:])
	if err != nil {
		return [32]byte{}, ErrInvalidDerivation
	}

	r := new(edwards25519.Point).Add(a, b)
	var out [32]byte
	copy(out[:], r.Bytes())
	negateSignBit(&out)
	return out, nil
}

// negateSignBit flips the high bit of the last byte of a compressed
// Edwards point, which negates the point's x-coordinate sign.
func negateSignBit(p *[32]byte) { p[31] ^= 0x80 }
