// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/transaction"
)

// MainToSign is the canonical representation a main block's issuer (or
// delegate, under a heavy-delegation certificate) signs: everything a
// MainHeader carries except the signature it is itself building,
// namely the chain linkage, body proof, slot placement, difficulty,
// and extra-data proof.
type MainToSign struct {
	PreviousHeader  HeaderHash
	BodyProof       BodyProof
	SlotId          SlotId
	ChainDifficulty ChainDifficulty
	ExtraData       HeaderExtraData
}

// MainToSignFromHeader extracts the signed representation of h.
func MainToSignFromHeader(h MainHeader) MainToSign {
	return MainToSign{
		PreviousHeader:  h.PreviousHeader,
		BodyProof:       h.BodyProof,
		SlotId:          h.Consensus.SlotId,
		ChainDifficulty: h.Consensus.ChainDifficulty,
		ExtraData:       h.ExtraData,
	}
}

func (ts MainToSign) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(5))
	ser.WriteBytes(ts.PreviousHeader[:])
	ts.BodyProof.encode(ser)
	ts.SlotId.encode(ser)
	ts.ChainDifficulty.encode(ser)
	ts.ExtraData.encode(ser)
}

// SignProxy signs ts on behalf of a delegated leader: key is the
// delegate's extended private key, bound to issuer by psk.
func SignProxy(params *chaincfg.Params, key hdkeychain.XPrv, ts MainToSign) hdkeychain.Signature {
	msg := transaction.SignRaw(params, transaction.SigningTagMainBlockHeavy, ts.encode)
	return key.Sign(msg)
}

// VerifyProxy reports whether sig validly signs ts under delegateKey
// and params.
func VerifyProxy(params *chaincfg.Params, delegateKey hdkeychain.XPub, ts MainToSign, sig hdkeychain.Signature) bool {
	msg := transaction.SignRaw(params, transaction.SigningTagMainBlockHeavy, ts.encode)
	return delegateKey.Verify(msg, sig)
}
