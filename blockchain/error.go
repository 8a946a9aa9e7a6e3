// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain verifies a decoded block against the block it
// claims to be: every transaction, VSS certificate, and update
// proposal/vote it carries, the proofs that bind its body to its
// header, and the signature over its consensus data. It holds no
// chain state of its own (no UTXO set, no previous-block lookup): every
// check is local to the single block passed to VerifyBlock.
package blockchain

import "errors"

// Block-validity failure modes, matching one-for-one the checks
// VerifyBlock runs over a decoded block.
var (
	ErrBadBlockSig          = errors.New("blockchain: block signature does not verify")
	ErrBadVssCertSig        = errors.New("blockchain: vss certificate signature does not verify")
	ErrBadUpdateProposalSig = errors.New("blockchain: update proposal signature does not verify")
	ErrBadUpdateVoteSig     = errors.New("blockchain: update vote signature does not verify")
	ErrDuplicateVSSKeys     = errors.New("blockchain: duplicate vss keys")
	ErrDuplicateSigningKeys = errors.New("blockchain: duplicate vss certificate signing keys")
	ErrSelfSignedPSK        = errors.New("blockchain: proxy secret key issuer equals delegate")
	ErrWrongBlockHash       = errors.New("blockchain: computed header hash does not match expected hash")
	ErrWrongBoundaryProof   = errors.New("blockchain: boundary body hash does not match header's body proof")
	ErrWrongTxProof         = errors.New("blockchain: regenerated transaction proof does not match header's body proof")
	ErrWrongMpcProof        = errors.New("blockchain: regenerated ssc proof does not match header's body proof")
	ErrWrongDelegationProof = errors.New("blockchain: regenerated delegation hash does not match header's body proof")
	ErrWrongUpdateProof     = errors.New("blockchain: regenerated update hash does not match header's body proof")
	ErrWrongExtraDataProof  = errors.New("blockchain: extra payload hash does not match header's extra data proof")
)
