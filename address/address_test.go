// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/cardano-go/corvid/hdkeychain"
)

var wantAddrDigest = []byte{
	0x2a, 0xc3, 0xcc, 0x97, 0xbb, 0xec, 0x47, 0x64, 0x96, 0xe8, 0x48, 0x07,
	0xf3, 0x5d, 0xf7, 0x34, 0x9a, 0xcf, 0xba, 0xec, 0xe2, 0x00, 0xa2, 0x4b,
	0x7e, 0x26, 0x25, 0x0c,
}

var wantExtendedAddrBytes = []byte{
	0x82, 0xd8, 0x18, 0x58, 0x4c, 0x83, 0x58, 0x1c, 0x2a, 0xc3, 0xcc, 0x97,
	0xbb, 0xec, 0x47, 0x64, 0x96, 0xe8, 0x48, 0x07, 0xf3, 0x5d, 0xf7, 0x34,
	0x9a, 0xcf, 0xba, 0xec, 0xe2, 0x00, 0xa2, 0x4b, 0x7e, 0x26, 0x25, 0x0c,
	0xa2, 0x00, 0x58, 0x20, 0x82, 0x00, 0x58, 0x1c, 0xa6, 0xd9, 0xae, 0xf4,
	0x75, 0xf3, 0x41, 0x89, 0x67, 0xe8, 0x7f, 0x7e, 0x93, 0xf2, 0x0f, 0x99,
	0xd8, 0xc7, 0xaf, 0x40, 0x6c, 0xba, 0x14, 0x6a, 0xff, 0xdb, 0x71, 0x91,
	0x01, 0x46, 0x45, 0x01, 0x02, 0x03, 0x04, 0x05, 0x00, 0x1a, 0x89, 0xa5,
	0x93, 0x71,
}

func testPubKey(t *testing.T) hdkeychain.XPub {
	t.Helper()
	seed := make([]byte, 32)
	return hdkeychain.RootKeyFromDaedalusSeed(seed).Public()
}

func TestNewAddrMatchesReference(t *testing.T) {
	pk := testPubKey(t)

	sd := NewPubKeySpendingData(pk)
	attrs := NewSingleKeyAttributes(NewStakeholderId(pk), []byte{1, 2, 3, 4, 5})

	addr, err := NewAddr(ATPubKey, sd, attrs)
	if err != nil {
		t.Fatalf("NewAddr: %v", err)
	}
	if !bytes.Equal(addr[:], wantAddrDigest) {
		t.Fatalf("addr digest mismatch:\ngot:  %s\nwant: %s", spew.Sdump(addr), spew.Sdump(wantAddrDigest))
	}
}

func TestExtendedAddrBytesMatchesReference(t *testing.T) {
	pk := testPubKey(t)

	sd := NewPubKeySpendingData(pk)
	attrs := NewSingleKeyAttributes(NewStakeholderId(pk), []byte{1, 2, 3, 4, 5})

	ea, err := NewExtendedAddr(ATPubKey, sd, attrs)
	if err != nil {
		t.Fatalf("NewExtendedAddr: %v", err)
	}

	got := ea.Bytes()
	if !bytes.Equal(got, wantExtendedAddrBytes) {
		t.Fatalf("envelope mismatch (len %d vs %d):\ngot:  %x\nwant: %x", len(got), len(wantExtendedAddrBytes), got, wantExtendedAddrBytes)
	}
	if len(got) != 86 {
		t.Fatalf("envelope length = %d, want 86", len(got))
	}

	decoded, err := ExtendedAddrFromBytes(got)
	if err != nil {
		t.Fatalf("ExtendedAddrFromBytes: %v", err)
	}
	if decoded.Bytes() == nil || !bytes.Equal(decoded.Bytes(), got) {
		t.Fatalf("decode/re-encode round trip changed the bytes")
	}
}

func TestDecodeAddressNoDerivationPath(t *testing.T) {
	buf := []byte{
		0x82, 0xd8, 0x18, 0x58, 0x21, 0x83, 0x58, 0x1c, 0x10, 0x2a, 0x74, 0xca,
		0x44, 0x05, 0xb8, 0xc1, 0x8d, 0x20, 0x84, 0x1e, 0x8c, 0x66, 0x4f, 0xe1,
		0xde, 0x7d, 0x66, 0x07, 0x48, 0x08, 0x70, 0x4f, 0x91, 0x79, 0xe0, 0xfa,
		0xa0, 0x00, 0x1a, 0xad, 0xf7, 0x10, 0x68,
	}

	ea, err := ExtendedAddrFromBytes(buf)
	if err != nil {
		t.Fatalf("ExtendedAddrFromBytes: %v", err)
	}
	if ea.AddrType != ATPubKey {
		t.Fatalf("AddrType = %v, want ATPubKey", ea.AddrType)
	}
	if !ea.Attributes.StakeDistribution.IsBootstrapEra() {
		t.Fatalf("StakeDistribution is not bootstrap era")
	}
	if ea.Attributes.DerivationPath != nil {
		t.Fatalf("DerivationPath = %x, want nil", ea.Attributes.DerivationPath)
	}
	if !bytes.Equal(ea.Bytes(), buf) {
		t.Fatalf("re-encode mismatch:\ngot:  %x\nwant: %x", ea.Bytes(), buf)
	}
}

func TestParseExtendedAddrMainnet(t *testing.T) {
	const addr = "DdzFFzCqrhsyhumccfGyEj3WZzztSPr92ntRWB6UVVwzcMTpwoafVQ5vD9mdZ5Xind8ycugbmA8esxmo7NycjQFGSbDeKrxabTz8MVzf"

	ea, err := ParseExtendedAddr(addr)
	if err != nil {
		t.Fatalf("ParseExtendedAddr: %v", err)
	}
	if ea.AddrType != ATPubKey {
		t.Fatalf("AddrType = %v, want ATPubKey", ea.AddrType)
	}
	if !ea.Attributes.StakeDistribution.IsBootstrapEra() {
		t.Fatalf("StakeDistribution is not bootstrap era")
	}
}
