// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/cardano-go/corvid/block"
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/transaction"
)

// VerifyBlock checks blk against expectedHash under params: every
// transaction and certificate it carries, the proofs binding its body
// and extra payload to its header, the consensus signature, and
// finally that the header itself hashes to expectedHash. It returns
// the first failure encountered; nil means blk is valid.
//
// VerifyBlock consults no chain state: it does not check that
// blk.Header.PreviousHeader is actually the chain's tip, that an
// input exists in some UTXO set, or that a slot is the chain's
// current one. Those checks belong to the caller, which holds that
// state.
func VerifyBlock(params *chaincfg.Params, expectedHash block.HeaderHash, blk block.Block) error {
	return verifyBlock(params, expectedHash, blk, nil)
}

// VerifyBlockCached is VerifyBlock, consulting and populating cache for
// every transaction witness it checks. Passing the same cache across
// multiple calls — e.g. once when a transaction enters a mempool and
// again when it is seen inside a candidate block — skips re-running
// Ed25519 verification for witnesses already known valid.
func VerifyBlockCached(params *chaincfg.Params, expectedHash block.HeaderHash, blk block.Block, cache *transaction.WitnessCache) error {
	return verifyBlock(params, expectedHash, blk, cache)
}

func verifyBlock(params *chaincfg.Params, expectedHash block.HeaderHash, blk block.Block, cache *transaction.WitnessCache) error {
	if err := verifyBlockBody(params, expectedHash, blk, cache); err != nil {
		log.Debugf("rejecting block %x: %v", expectedHash, err)
		return err
	}
	return nil
}

func verifyBlockBody(params *chaincfg.Params, expectedHash block.HeaderHash, blk block.Block, cache *transaction.WitnessCache) error {
	if blk.Header.IsBoundary() {
		if err := verifyBoundaryBody(blk); err != nil {
			return err
		}
	} else {
		if err := verifyMainBody(params, blk, cache); err != nil {
			return err
		}
	}

	hash, err := blk.Header.ComputeHash()
	if err != nil {
		return err
	}
	if hash != expectedHash {
		return ErrWrongBlockHash
	}
	return nil
}

func verifyBoundaryBody(blk block.Block) error {
	hdr, _ := blk.Header.Boundary()
	bodyBytes := blk.BoundaryBody.Bytes()
	if bodyBytes == nil {
		ser := cbor.NewSerializer()
		ser.WriteMapLen(cbor.Definite(0))
		bodyBytes = ser.Bytes()
	}
	if chainhash.Hash256B(bodyBytes) != hdr.BodyProof {
		return ErrWrongBoundaryProof
	}
	return nil
}

func verifyMainBody(params *chaincfg.Params, blk block.Block, cache *transaction.WitnessCache) error {
	hdr, _ := blk.Header.Main()
	body := blk.MainBody

	for _, aux := range body.Tx {
		if cache != nil {
			if err := transaction.ValidateTxAuxCached(params, aux, cache); err != nil {
				return err
			}
			continue
		}
		if err := transaction.ValidateTxAux(params, aux); err != nil {
			return err
		}
	}

	certs := body.Ssc.VssCertificates()
	if block.HasDuplicateVssKeys(certs) {
		return ErrDuplicateVSSKeys
	}
	if block.HasDuplicateSigningKeys(certs) {
		return ErrDuplicateSigningKeys
	}
	for _, c := range certs {
		if !c.Verify(params) {
			return ErrBadVssCertSig
		}
	}

	if body.Update.Proposal != nil && !body.Update.Proposal.Verify(params) {
		return ErrBadUpdateProposalSig
	}
	for _, v := range body.Update.Votes {
		if !v.Verify(params) {
			return ErrBadUpdateVoteSig
		}
	}

	gotProof, err := block.GenerateBodyProof(body)
	if err != nil {
		return err
	}
	wantProof := hdr.BodyProof
	if gotProof.Tx != wantProof.Tx {
		return ErrWrongTxProof
	}
	if gotProof.Mpc != wantProof.Mpc {
		return ErrWrongMpcProof
	}
	if gotProof.ProxySk != wantProof.ProxySk {
		return ErrWrongDelegationProof
	}
	if gotProof.Update != wantProof.Update {
		return ErrWrongUpdateProof
	}

	extraBytes := blk.Extra.Bytes()
	if extraBytes == nil {
		ser := cbor.NewSerializer()
		ser.WriteMapLen(cbor.Definite(0))
		extraBytes = ser.Bytes()
	}
	if chainhash.Hash256B(extraBytes) != hdr.ExtraData.ExtraDataProof {
		return ErrWrongExtraDataProof
	}

	return verifyConsensus(params, hdr)
}

// verifyConsensus checks a main header's block signature. Only the
// ProxyHeavy variant is supported: a plain self-signature or a
// light-delegation certificate cannot be checked by this module (see
// block.ErrUnsupportedBlockSignature) and is reported as a signature
// failure rather than silently accepted.
func verifyConsensus(params *chaincfg.Params, hdr block.MainHeader) error {
	ps, ok := hdr.Consensus.BlockSignature.ProxyHeavy()
	if !ok {
		return ErrBadBlockSig
	}
	if ps.Psk.IssuerPk == ps.Psk.DelegatePk {
		return ErrSelfSignedPSK
	}
	ts := block.MainToSignFromHeader(hdr)
	if !block.VerifyProxy(params, ps.Psk.DelegatePk, ts, ps.Sig) {
		return ErrBadBlockSig
	}
	return nil
}
