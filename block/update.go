// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/transaction"
)

// UpdateProposal is a proposal to adopt a new protocol or software
// version. block_version_mod (the protocol parameter changes a
// proposal carries, each expressed relative to the current value) and
// data (the per-system installer/binary references keyed by
// SystemTag) are kept as opaque CBOR: Byron's on-chain update-policy
// schema is large and this module's scope is verifying a proposal's
// signature and structural shape, not interpreting the policy it
// proposes.
type UpdateProposal struct {
	BlockVersion    BlockVersion
	BlockVersionMod cbor.RawValue
	SoftwareVersion SoftwareVersion
	Data            cbor.RawValue
	Attributes      cbor.RawValue
	From            hdkeychain.XPub
	Signature       hdkeychain.Signature
}

func (p UpdateProposal) encodeToSign(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(5))
	p.BlockVersion.encode(ser)
	ser.WriteRaw(p.BlockVersionMod.Bytes())
	p.SoftwareVersion.encode(ser)
	ser.WriteRaw(p.Data.Bytes())
	ser.WriteRaw(p.Attributes.Bytes())
}

func (p UpdateProposal) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(7))
	p.BlockVersion.encode(ser)
	ser.WriteRaw(p.BlockVersionMod.Bytes())
	p.SoftwareVersion.encode(ser)
	ser.WriteRaw(p.Data.Bytes())
	ser.WriteRaw(p.Attributes.Bytes())
	ser.WriteBytes(p.From[:])
	ser.WriteBytes(p.Signature[:])
}

// Id returns the proposal's identifying hash: the Blake2b-256 digest of
// its full CBOR encoding, the value an UpdateVote references.
func (p UpdateProposal) Id() chainhash.Hash256 {
	ser := cbor.NewSerializer()
	p.encode(ser)
	return chainhash.Hash256B(ser.Bytes())
}

// Verify reports whether p's signature validly covers its own
// block-version/software-version/data/attributes content under p.From
// and params.
func (p UpdateProposal) Verify(params *chaincfg.Params) bool {
	msg := transaction.SignRaw(params, transaction.SigningTagUSProposal, p.encodeToSign)
	return p.From.Verify(msg, p.Signature)
}

func decodeUpdateProposal(d *cbor.Deserializer) (UpdateProposal, error) {
	if err := d.Tuple(7, "UpdateProposal"); err != nil {
		return UpdateProposal{}, err
	}
	bv, err := decodeBlockVersion(d)
	if err != nil {
		return UpdateProposal{}, err
	}
	mod, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return UpdateProposal{}, err
	}
	sv, err := decodeSoftwareVersion(d)
	if err != nil {
		return UpdateProposal{}, err
	}
	data, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return UpdateProposal{}, err
	}
	attrs, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return UpdateProposal{}, err
	}
	fromBytes, err := d.ReadBytes()
	if err != nil {
		return UpdateProposal{}, err
	}
	from, err := hdkeychain.XPubFromSlice(fromBytes)
	if err != nil {
		return UpdateProposal{}, err
	}
	sigBytes, err := d.ReadBytes()
	if err != nil {
		return UpdateProposal{}, err
	}
	sig, err := hdkeychain.SignatureFromSlice(sigBytes)
	if err != nil {
		return UpdateProposal{}, err
	}
	return UpdateProposal{
		BlockVersion: bv, BlockVersionMod: mod, SoftwareVersion: sv,
		Data: data, Attributes: attrs, From: from, Signature: sig,
	}, nil
}

// UpdateVote records one stakeholder's vote on an UpdateProposal.
type UpdateVote struct {
	ProposalId chainhash.Hash256
	Decision   bool
	Key        hdkeychain.XPub
	Signature  hdkeychain.Signature
}

func (v UpdateVote) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(4))
	ser.WriteBytes(v.ProposalId[:])
	ser.WriteBool(v.Decision)
	ser.WriteBytes(v.Key[:])
	ser.WriteBytes(v.Signature[:])
}

// Verify reports whether v's signature validly covers (v.ProposalId,
// v.Decision) under v.Key and params.
func (v UpdateVote) Verify(params *chaincfg.Params) bool {
	msg := transaction.SignRaw(params, transaction.SigningTagUSVote, func(ser *cbor.Serializer) {
		ser.WriteArrayLen(cbor.Definite(2))
		ser.WriteBytes(v.ProposalId[:])
		ser.WriteBool(v.Decision)
	})
	return v.Key.Verify(msg, v.Signature)
}

func decodeUpdateVote(d *cbor.Deserializer) (UpdateVote, error) {
	if err := d.Tuple(4, "UpdateVote"); err != nil {
		return UpdateVote{}, err
	}
	id, err := readHash256(d, "UpdateVote.ProposalId")
	if err != nil {
		return UpdateVote{}, err
	}
	decision, err := d.ReadBool()
	if err != nil {
		return UpdateVote{}, err
	}
	keyBytes, err := d.ReadBytes()
	if err != nil {
		return UpdateVote{}, err
	}
	key, err := hdkeychain.XPubFromSlice(keyBytes)
	if err != nil {
		return UpdateVote{}, err
	}
	sigBytes, err := d.ReadBytes()
	if err != nil {
		return UpdateVote{}, err
	}
	sig, err := hdkeychain.SignatureFromSlice(sigBytes)
	if err != nil {
		return UpdateVote{}, err
	}
	return UpdateVote{ProposalId: id, Decision: decision, Key: key, Signature: sig}, nil
}

// UpdatePayload is a block's contribution to the protocol/software
// update process: at most one new proposal, plus any number of votes
// on proposals already on chain.
type UpdatePayload struct {
	Proposal *UpdateProposal
	Votes    []UpdateVote
}

func (p UpdatePayload) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	if p.Proposal == nil {
		ser.WriteArrayLen(cbor.Definite(0))
	} else {
		ser.WriteArrayLen(cbor.Definite(1))
		p.Proposal.encode(ser)
	}
	ser.WriteIndefiniteArray(len(p.Votes), func(i int, s *cbor.Serializer) {
		p.Votes[i].encode(s)
	})
}

func decodeUpdatePayload(d *cbor.Deserializer) (UpdatePayload, error) {
	if err := d.Tuple(2, "UpdatePayload"); err != nil {
		return UpdatePayload{}, err
	}
	optLen, err := d.ReadArrayLen()
	if err != nil {
		return UpdatePayload{}, err
	}
	var proposal *UpdateProposal
	if !optLen.Indefinite && optLen.Value == 1 {
		p, err := decodeUpdateProposal(d)
		if err != nil {
			return UpdatePayload{}, err
		}
		proposal = &p
	}
	var votes []UpdateVote
	if err := d.ReadIndefiniteArray(func(i int) error {
		v, err := decodeUpdateVote(d)
		if err != nil {
			return err
		}
		votes = append(votes, v)
		return nil
	}); err != nil {
		return UpdatePayload{}, err
	}
	return UpdatePayload{Proposal: proposal, Votes: votes}, nil
}
