// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var d1 = [XPrvSize]byte{
	0xf8, 0xa2, 0x92, 0x31, 0xee, 0x38, 0xd6, 0xc5, 0xbf, 0x71, 0x5d, 0x5b, 0xac, 0x21, 0xc7,
	0x50, 0x57, 0x7a, 0xa3, 0x79, 0x8b, 0x22, 0xd7, 0x9d, 0x65, 0xbf, 0x97, 0xd6, 0xfa, 0xde,
	0xa1, 0x5a, 0xdc, 0xd1, 0xee, 0x1a, 0xbd, 0xf7, 0x8b, 0xd4, 0xbe, 0x64, 0x73, 0x1a, 0x12,
	0xde, 0xb9, 0x4d, 0x36, 0x71, 0x78, 0x41, 0x12, 0xeb, 0x6f, 0x36, 0x4b, 0x87, 0x18, 0x51,
	0xfd, 0x1c, 0x9a, 0x24, 0x73, 0x84, 0xdb, 0x9a, 0xd6, 0x00, 0x3b, 0xbd, 0x08, 0xb3, 0xb1,
	0xdd, 0xc0, 0xd0, 0x7a, 0x59, 0x72, 0x93, 0xff, 0x85, 0xe9, 0x61, 0xbf, 0x25, 0x2b, 0x33,
	0x12, 0x62, 0xed, 0xdf, 0xad, 0x0d,
}

var d1H0 = [XPrvSize]byte{
	0x60, 0xd3, 0x99, 0xda, 0x83, 0xef, 0x80, 0xd8, 0xd4, 0xf8, 0xd2, 0x23, 0x23, 0x9e, 0xfd,
	0xc2, 0xb8, 0xfe, 0xf3, 0x87, 0xe1, 0xb5, 0x21, 0x91, 0x37, 0xff, 0xb4, 0xe8, 0xfb, 0xde,
	0xa1, 0x5a, 0xdc, 0x93, 0x66, 0xb7, 0xd0, 0x03, 0xaf, 0x37, 0xc1, 0x13, 0x96, 0xde, 0x9a,
	0x83, 0x73, 0x4e, 0x30, 0xe0, 0x5e, 0x85, 0x1e, 0xfa, 0x32, 0x74, 0x5c, 0x9c, 0xd7, 0xb4,
	0x27, 0x12, 0xc8, 0x90, 0x60, 0x87, 0x63, 0x77, 0x0e, 0xdd, 0xf7, 0x72, 0x48, 0xab, 0x65,
	0x29, 0x84, 0xb2, 0x1b, 0x84, 0x97, 0x60, 0xd1, 0xda, 0x74, 0xa6, 0xf5, 0xbd, 0x63, 0x3c,
	0xe4, 0x1a, 0xdc, 0xee, 0xf0, 0x7a,
}

var d1H0Signature = [SignatureSize]byte{
	0x90, 0x19, 0x4d, 0x57, 0xcd, 0xe4, 0xfd, 0xad, 0xd0, 0x1e, 0xb7, 0xcf, 0x16, 0x17, 0x80,
	0xc2, 0x77, 0xe1, 0x29, 0xfc, 0x71, 0x35, 0xb9, 0x77, 0x79, 0xa3, 0x26, 0x88, 0x37, 0xe4,
	0xcd, 0x2e, 0x94, 0x44, 0xb9, 0xbb, 0x91, 0xc0, 0xe8, 0x4d, 0x23, 0xbb, 0xa8, 0x70, 0xdf,
	0x3c, 0x4b, 0xda, 0x91, 0xa1, 0x10, 0xef, 0x73, 0x56, 0x38, 0xfa, 0x7a, 0x34, 0xea, 0x20,
	0x46, 0xd4, 0xbe, 0x04,
}

func TestGenerateFromDaedalusSeed(t *testing.T) {
	seed := []byte{
		0xe3, 0x55, 0x24, 0xa5, 0x18, 0x03, 0x4d, 0xdc, 0x11, 0x92, 0xe1, 0xda,
		0xcd, 0x32, 0xc1, 0xed, 0x3e, 0xaa, 0x3c, 0x3b, 0x13, 0x1c, 0x88, 0xed,
		0x8e, 0x7e, 0x54, 0xc4, 0x9a, 0x5d, 0x09, 0x98,
	}
	got := RootKeyFromDaedalusSeed(seed)
	if !bytes.Equal(got[:], d1[:]) {
		t.Fatalf("RootKeyFromDaedalusSeed mismatch:\ngot:  %s\nwant: %s", spew.Sdump(got), spew.Sdump(d1))
	}
}

func TestDerivePrivateV2Hardened(t *testing.T) {
	child := XPrv(d1).Derive(V2, 0x80000000)
	if !bytes.Equal(child[:], d1H0[:]) {
		t.Fatalf("derive mismatch:\ngot:  %s\nwant: %s", spew.Sdump(child), spew.Sdump(d1H0))
	}
}

func TestSignExtended(t *testing.T) {
	sig := XPrv(d1H0).Sign([]byte("Hello World"))
	if !bytes.Equal(sig[:], d1H0Signature[:]) {
		t.Fatalf("Sign mismatch:\ngot:  %s\nwant: %s", spew.Sdump(sig), spew.Sdump(d1H0Signature))
	}
	if !XPrv(d1H0).Verify([]byte("Hello World"), sig) {
		t.Fatalf("Verify rejected a valid signature")
	}
}

func TestUnitDerivationV1(t *testing.T) {
	seed := make([]byte, 32)
	xprv0 := RootKeyFromDaedalusSeed(seed)
	xpub0 := xprv0.Public()

	xpub0Ref := XPub{
		28, 12, 58, 225, 130, 94, 144, 182, 221, 218, 63, 64, 161, 34, 192, 7, 225, 0, 142, 131,
		178, 225, 2, 193, 66, 186, 239, 183, 33, 215, 44, 26, 93, 54, 97, 222, 185, 6, 79, 45,
		14, 3, 254, 133, 214, 128, 112, 178, 254, 51, 180, 145, 96, 89, 101, 142, 40, 172, 127,
		127, 145, 202, 75, 18,
	}
	if !bytes.Equal(xpub0[:], xpub0Ref[:]) {
		t.Fatalf("xpub0 mismatch:\ngot:  %s\nwant: %s", spew.Sdump(xpub0), spew.Sdump(xpub0Ref))
	}

	xprv1 := xprv0.Derive(V1, 0x80000000)
	xpub1 := xprv1.Public()
	xpub1Ref := XPub{
		155, 186, 125, 76, 223, 83, 124, 115, 51, 236, 62, 66, 30, 151, 236, 155, 157, 73, 110,
		160, 25, 204, 222, 170, 46, 185, 166, 187, 220, 65, 18, 182, 194, 224, 222, 91, 65, 119,
		17, 215, 53, 147, 168, 219, 125, 51, 13, 233, 35, 212, 226, 241, 0, 36, 245, 198, 28, 19,
		91, 74, 49, 43, 106, 167,
	}
	if !bytes.Equal(xpub1[:], xpub1Ref[:]) {
		t.Fatalf("xpub1 mismatch:\ngot:  %s\nwant: %s", spew.Sdump(xpub1), spew.Sdump(xpub1Ref))
	}
}

func TestDerivePublicMatchesDerivePrivate(t *testing.T) {
	xprv := d1
	xpub := XPrv(xprv).Public()

	index := DerivationIndex(0x10000000)
	for _, scheme := range []DerivationScheme{V1, V2} {
		childPrv := XPrv(xprv).Derive(scheme, index)
		childPubFromPrv := childPrv.Public()

		childPub, err := xpub.Derive(scheme, index)
		if err != nil {
			t.Fatalf("Derive(scheme=%v) returned error: %v", scheme, err)
		}
		if !bytes.Equal(childPub[:], childPubFromPrv[:]) {
			t.Fatalf("scheme %v: public derivation mismatch:\ngot:  %s\nwant: %s", scheme, spew.Sdump(childPub), spew.Sdump(childPubFromPrv))
		}
	}
}

func TestDerivePublicRejectsHardened(t *testing.T) {
	xpub := XPrv(d1).Public()
	if _, err := xpub.Derive(V2, 0x80000000); err != ErrExpectedSoftDerivation {
		t.Fatalf("Derive with hardened index = %v, want ErrExpectedSoftDerivation", err)
	}
}
