// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
)

// StakeholderId identifies a stake key: the composite Blake2b-224 digest
// of the CBOR encoding of the stakeholder's extended public key.
type StakeholderId chainhash.Hash224

// NewStakeholderId computes the StakeholderId of pubKey.
func NewStakeholderId(pubKey hdkeychain.XPub) StakeholderId {
	s := cbor.NewSerializer()
	encodeXPub(s, pubKey)
	return StakeholderId(chainhash.AddrHash(s.Bytes()))
}

func (id StakeholderId) String() string { return chainhash.Hash224(id).String() }

func (id StakeholderId) encode(s *cbor.Serializer) {
	s.WriteBytes(id[:])
}

func decodeStakeholderId(d *cbor.Deserializer) (StakeholderId, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return StakeholderId{}, err
	}
	if len(b) != chainhash.HashSize224 {
		return StakeholderId{}, &cbor.NotEnoughError{Have: len(b), Need: chainhash.HashSize224}
	}
	var id StakeholderId
	copy(id[:], b)
	return id, nil
}

// encodeXPub writes pubKey as a CBOR byte string of its raw 64 bytes,
// matching hdkeychain.XPub's wire form.
func encodeXPub(s *cbor.Serializer, pubKey hdkeychain.XPub) {
	s.WriteBytes(pubKey[:])
}

func decodeXPub(d *cbor.Deserializer) (hdkeychain.XPub, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return hdkeychain.XPub{}, err
	}
	return hdkeychain.XPubFromSlice(b)
}
