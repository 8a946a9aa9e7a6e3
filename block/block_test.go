// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/cardano-go/corvid/cbor"
)

func TestSystemTagBounds(t *testing.T) {
	if _, err := NewSystemTag("linux"); err != nil {
		t.Fatalf("NewSystemTag(linux): %v", err)
	}
	if _, err := NewSystemTag("abcdefghijk"); err == nil {
		t.Fatal("expected error for 11-character system tag")
	}
	if _, err := NewSystemTag("føø"); err == nil {
		t.Fatal("expected error for non-ASCII system tag")
	}
	if _, err := NewSystemTag(""); err == nil {
		t.Fatal("expected error for empty system tag")
	}
}

func TestSoftwareVersionAppNameBound(t *testing.T) {
	if _, err := NewSoftwareVersion("cardano-sl", 1); err != nil {
		t.Fatalf("NewSoftwareVersion: %v", err)
	}
	if _, err := NewSoftwareVersion("foosdksdlsdlksdlks", 123); err == nil {
		t.Fatal("expected error for 18-character application name")
	}
}

func TestCoinPortionBound(t *testing.T) {
	if _, err := NewCoinPortion(1_000_000_000_000_000); err != nil {
		t.Fatalf("NewCoinPortion(max): %v", err)
	}
	if _, err := NewCoinPortion(1_000_000_000_000_001); err == nil {
		t.Fatal("expected error for coin portion above the 10^15 bound")
	}
}

func TestVssCertificateDuplicateDetection(t *testing.T) {
	certA := VssCertificate{VssKey: cbor.NewRawValue([]byte{0x01}), ExpiryEpoch: 1}
	certB := VssCertificate{VssKey: cbor.NewRawValue([]byte{0x01}), ExpiryEpoch: 2}
	certC := VssCertificate{VssKey: cbor.NewRawValue([]byte{0x02}), ExpiryEpoch: 3}

	if !hasDuplicateVssKeys(VssCertificates{certA, certB}) {
		t.Fatal("expected duplicate VSS key detection")
	}
	if hasDuplicateVssKeys(VssCertificates{certA, certC}) {
		t.Fatal("unexpected duplicate VSS key false positive")
	}
}
