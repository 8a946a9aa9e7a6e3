// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/cardano-go/corvid/block"
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
)

func emptyBoundaryBlock(t *testing.T) block.Block {
	t.Helper()
	ser := cbor.NewSerializer()
	ser.WriteMapLen(cbor.Definite(0))
	bodyBytes := ser.Bytes()

	hdr := block.BoundaryHeader{
		ProtocolMagic: chaincfg.TestNetParams.ProtocolMagic,
		Consensus:     block.BoundaryConsensus{Epoch: 0, ChainDifficulty: 0},
	}
	// The hash is of the canonical body bytes, so compute it directly.
	hdr.BodyProof = chainhash.Hash256B(bodyBytes)
	return block.NewBoundaryBlock(hdr, cbor.RawValue{}, cbor.RawValue{})
}

func TestVerifyBoundaryBlock(t *testing.T) {
	blk := emptyBoundaryBlock(t)
	hash, err := blk.Header.ComputeHash()
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if err := VerifyBlock(&chaincfg.TestNetParams, hash, blk); err != nil {
		t.Fatalf("VerifyBlock: %v", err)
	}
}

func TestVerifyBoundaryBlockWrongProof(t *testing.T) {
	blk := emptyBoundaryBlock(t)
	bad, _ := blk.Header.Boundary()
	bad.BodyProof[0] ^= 0xff
	blk.Header = block.NewBoundaryHeader(bad)

	hash, err := blk.Header.ComputeHash()
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if err := VerifyBlock(&chaincfg.TestNetParams, hash, blk); err != ErrWrongBoundaryProof {
		t.Fatalf("VerifyBlock: got %v, want ErrWrongBoundaryProof", err)
	}
}

func mainBlockSignedBy(t *testing.T, issuer, delegate hdkeychain.XPrv) block.Block {
	t.Helper()
	params := &chaincfg.TestNetParams

	body := block.Body{
		Ssc:    block.NewCertificatesSscPayload(nil),
		Update: block.UpdatePayload{},
	}
	bodyProof, err := block.GenerateBodyProof(body)
	if err != nil {
		t.Fatalf("GenerateBodyProof: %v", err)
	}

	extraSer := cbor.NewSerializer()
	extraSer.WriteMapLen(cbor.Definite(0))
	extraProof := chainhash.Hash256B(extraSer.Bytes())

	hdr := block.MainHeader{
		ProtocolMagic: params.ProtocolMagic,
		BodyProof:     bodyProof,
		Consensus: block.MainConsensus{
			SlotId:          block.SlotId{Epoch: 0, Slot: 0},
			LeaderKey:       delegate.Public(),
			ChainDifficulty: 0,
		},
		ExtraData: block.HeaderExtraData{
			ExtraDataProof: extraProof,
		},
	}

	psk := block.ProxySecretKey{IssuerPk: issuer.Public(), DelegatePk: delegate.Public()}
	ts := block.MainToSign{
		PreviousHeader:  hdr.PreviousHeader,
		BodyProof:       hdr.BodyProof,
		SlotId:          hdr.Consensus.SlotId,
		ChainDifficulty: hdr.Consensus.ChainDifficulty,
		ExtraData:       hdr.ExtraData,
	}
	sig := block.SignProxy(params, delegate, ts)
	hdr.Consensus.BlockSignature = block.NewProxyHeavyBlockSignature(block.ProxySignature{Psk: psk, Sig: sig})

	return block.NewMainBlock(hdr, body, cbor.RawValue{})
}

func TestVerifyMainBlockProxyHeavy(t *testing.T) {
	issuer := hdkeychain.RootKeyFromDaedalusSeed([]byte("issuer-key-------------------32"))
	delegate := hdkeychain.RootKeyFromDaedalusSeed([]byte("delegate-key-----------------32"))
	blk := mainBlockSignedBy(t, issuer, delegate)

	hash, err := blk.Header.ComputeHash()
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if err := VerifyBlock(&chaincfg.TestNetParams, hash, blk); err != nil {
		t.Fatalf("VerifyBlock: %v", err)
	}
}

func TestVerifyMainBlockSelfSignedPSK(t *testing.T) {
	issuer := hdkeychain.RootKeyFromDaedalusSeed([]byte("self-signed-key---------------32"))
	blk := mainBlockSignedBy(t, issuer, issuer)

	hash, err := blk.Header.ComputeHash()
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if err := VerifyBlock(&chaincfg.TestNetParams, hash, blk); err != ErrSelfSignedPSK {
		t.Fatalf("VerifyBlock: got %v, want ErrSelfSignedPSK", err)
	}
}

func TestVerifyMainBlockWrongHash(t *testing.T) {
	issuer := hdkeychain.RootKeyFromDaedalusSeed([]byte("issuer-key-------------------32"))
	delegate := hdkeychain.RootKeyFromDaedalusSeed([]byte("delegate-key-----------------32"))
	blk := mainBlockSignedBy(t, issuer, delegate)

	hash, err := blk.Header.ComputeHash()
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	hash[0] ^= 0xff
	if err := VerifyBlock(&chaincfg.TestNetParams, hash, blk); err != ErrWrongBlockHash {
		t.Fatalf("VerifyBlock: got %v, want ErrWrongBlockHash", err)
	}
}
