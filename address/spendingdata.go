// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/redeem"
)

const (
	spendingDataTagPubKey = 0
	spendingDataTagScript = 1
	spendingDataTagRedeem = 2
)

// SpendingData names the key that must sign to spend funds sent to an
// address. Exactly one of its accessors applies, matching AddrType.
type SpendingData struct {
	tag        uint8
	pubKey     hdkeychain.XPub
	redeemKey  redeem.PublicKey
	scriptHash [32]byte // reserved: always fails to serialize, see ErrScriptNotSupported
}

// NewPubKeySpendingData builds the spending data for an ATPubKey address.
func NewPubKeySpendingData(pubKey hdkeychain.XPub) SpendingData {
	return SpendingData{tag: spendingDataTagPubKey, pubKey: pubKey}
}

// NewRedeemSpendingData builds the spending data for an ATRedeem address.
func NewRedeemSpendingData(pubKey redeem.PublicKey) SpendingData {
	return SpendingData{tag: spendingDataTagRedeem, redeemKey: pubKey}
}

// AddrType reports which address type sd belongs to.
func (sd SpendingData) AddrType() AddrType {
	switch sd.tag {
	case spendingDataTagScript:
		return ATScript
	case spendingDataTagRedeem:
		return ATRedeem
	default:
		return ATPubKey
	}
}

// PubKey returns sd's extended public key and true, if sd is an
// ATPubKey spending data.
func (sd SpendingData) PubKey() (hdkeychain.XPub, bool) {
	if sd.tag != spendingDataTagPubKey {
		return hdkeychain.XPub{}, false
	}
	return sd.pubKey, true
}

// RedeemKey returns sd's redeem public key and true, if sd is an
// ATRedeem spending data.
func (sd SpendingData) RedeemKey() (redeem.PublicKey, bool) {
	if sd.tag != spendingDataTagRedeem {
		return redeem.PublicKey{}, false
	}
	return sd.redeemKey, true
}

// encode writes sd as the two-element array `[tag, key]`. Script spending
// data always fails: the reference's own script branch is unimplemented,
// and this encoder fails closed rather than invent a wire format for it.
func (sd SpendingData) encode(s *cbor.Serializer) error {
	if sd.tag == spendingDataTagScript {
		return ErrScriptNotSupported
	}
	s.WriteArrayLen(cbor.Definite(2))
	s.WriteUnsignedInteger(uint64(sd.tag))
	switch sd.tag {
	case spendingDataTagPubKey:
		encodeXPub(s, sd.pubKey)
	case spendingDataTagRedeem:
		s.WriteBytes(sd.redeemKey[:])
	}
	return nil
}

func decodeSpendingData(d *cbor.Deserializer) (SpendingData, error) {
	if err := d.Tuple(2, "SpendingData"); err != nil {
		return SpendingData{}, err
	}
	tag, err := d.ReadUnsignedInteger()
	if err != nil {
		return SpendingData{}, err
	}
	switch tag {
	case spendingDataTagPubKey:
		pk, err := decodeXPub(d)
		if err != nil {
			return SpendingData{}, err
		}
		return NewPubKeySpendingData(pk), nil
	case spendingDataTagScript:
		return SpendingData{}, ErrScriptNotSupported
	case spendingDataTagRedeem:
		b, err := d.ReadBytes()
		if err != nil {
			return SpendingData{}, err
		}
		var pk redeem.PublicKey
		if len(b) != redeem.PublicKeySize {
			return SpendingData{}, &cbor.NotEnoughError{Have: len(b), Need: redeem.PublicKeySize}
		}
		copy(pk[:], b)
		return NewRedeemSpendingData(pk), nil
	default:
		return SpendingData{}, ErrUnknownSpendingDataTag
	}
}
