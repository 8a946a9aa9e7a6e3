// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "testing"

func TestNetworksHaveDistinctMagics(t *testing.T) {
	magics := map[int32]string{}
	for _, p := range []*Params{&MainNetParams, &TestNetParams, &StagingParams} {
		if other, ok := magics[p.ProtocolMagic]; ok {
			t.Fatalf("%s and %s share protocol magic %d", p.Name, other, p.ProtocolMagic)
		}
		magics[p.ProtocolMagic] = p.Name
	}
}

func TestIsMainNet(t *testing.T) {
	if !MainNetParams.IsMainNet() {
		t.Fatalf("MainNetParams.IsMainNet() = false")
	}
	if TestNetParams.IsMainNet() {
		t.Fatalf("TestNetParams.IsMainNet() = true")
	}
	if StagingParams.IsMainNet() {
		t.Fatalf("StagingParams.IsMainNet() = true")
	}
}

func TestCoinTypeSharedAcrossNetworks(t *testing.T) {
	for _, p := range []*Params{&MainNetParams, &TestNetParams, &StagingParams} {
		if p.Bip44CoinType != 1815 {
			t.Fatalf("%s Bip44CoinType = %d, want 1815", p.Name, p.Bip44CoinType)
		}
	}
}
