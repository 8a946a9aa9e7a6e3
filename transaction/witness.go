// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"errors"
	"fmt"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/redeem"
)

const (
	witnessTagPk     = 0
	witnessTagScript = 1
	witnessTagRedeem = 2
)

// ErrScriptWitnessNotSupported is returned for the ScriptWitness
// variant, which this implementation does not carry a script
// interpreter for; decoding and verifying it fail closed rather than
// silently accepting an unchecked spend.
var ErrScriptWitnessNotSupported = errors.New("transaction: script witnesses are not supported")

// ErrUnsupportedWitnessVariant is returned for a witness discriminator
// this wire format does not define.
var ErrUnsupportedWitnessVariant = errors.New("transaction: unsupported witness variant")

// TxInWitness proves the right to spend a TxoPointer: a revealed public
// key and a signature over the transaction under the applicable signing
// tag and protocol magic.
//
// PkWitness pairs an XPub with an extended-key signature; RedeemWitness
// pairs a plain (non-extended) Ed25519 key with a redeem signature.
// ScriptWitness is recognized on the wire but always rejected: this
// module implements no script interpreter.
type TxInWitness struct {
	tag       uint8
	pk        hdkeychain.XPub
	sig       hdkeychain.Signature
	redeemPk  redeem.PublicKey
	redeemSig redeem.Signature
}

// FakeTxInWitness returns a zero-keyed, zero-signed PkWitness with the
// exact encoded size of a real one, for fee estimation before a
// transaction's actual witnesses are known.
func FakeTxInWitness() TxInWitness {
	return TxInWitness{tag: witnessTagPk}
}

// NewPkWitness signs txid with key under params, producing a PkWitness.
func NewPkWitness(params *chaincfg.Params, key hdkeychain.XPrv, txid TxId) TxInWitness {
	msg := SignBytes(params, SigningTagTx, txid[:])
	return TxInWitness{tag: witnessTagPk, pk: key.Public(), sig: key.Sign(msg)}
}

// NewRedeemWitness signs txid with key under params, producing a
// RedeemWitness.
func NewRedeemWitness(params *chaincfg.Params, key redeem.PrivateKey, txid TxId) TxInWitness {
	msg := SignBytes(params, SigningTagRedeemTx, txid[:])
	return TxInWitness{tag: witnessTagRedeem, redeemPk: key.Public(), redeemSig: key.Sign(msg)}
}

// PkWitness reports the public key and signature of a PkWitness, if that
// is what this TxInWitness holds.
func (w TxInWitness) PkWitness() (hdkeychain.XPub, hdkeychain.Signature, bool) {
	if w.tag != witnessTagPk {
		return hdkeychain.XPub{}, hdkeychain.Signature{}, false
	}
	return w.pk, w.sig, true
}

// RedeemWitness reports the public key and signature of a RedeemWitness,
// if that is what this TxInWitness holds.
func (w TxInWitness) RedeemWitness() (redeem.PublicKey, redeem.Signature, bool) {
	if w.tag != witnessTagRedeem {
		return redeem.PublicKey{}, redeem.Signature{}, false
	}
	return w.redeemPk, w.redeemSig, true
}

func (w TxInWitness) signTag() SigningTag {
	if w.tag == witnessTagRedeem {
		return SigningTagRedeemTx
	}
	return SigningTagTx
}

// VerifyAddress reports whether addr's spending data matches w's
// revealed key: the address was built to be spent by exactly this key.
func (w TxInWitness) VerifyAddress(addr address.ExtendedAddr) (bool, error) {
	var sd address.SpendingData
	switch w.tag {
	case witnessTagPk:
		sd = address.NewPubKeySpendingData(w.pk)
	case witnessTagScript:
		return false, ErrScriptWitnessNotSupported
	case witnessTagRedeem:
		sd = address.NewRedeemSpendingData(w.redeemPk)
	default:
		return false, ErrUnsupportedWitnessVariant
	}
	ea, err := address.NewExtendedAddr(addr.AddrType, sd, addr.Attributes)
	if err != nil {
		return false, err
	}
	return ea.Addr == addr.Addr && ea.AddrType == addr.AddrType, nil
}

// VerifyTx reports whether w's signature verifies against tx under
// params.
func (w TxInWitness) VerifyTx(params *chaincfg.Params, tx Tx) (bool, error) {
	txid := tx.Id()
	msg := SignBytes(params, w.signTag(), txid[:])
	switch w.tag {
	case witnessTagPk:
		return w.pk.Verify(msg, w.sig), nil
	case witnessTagScript:
		return false, ErrScriptWitnessNotSupported
	case witnessTagRedeem:
		return w.redeemPk.Verify(msg, w.redeemSig), nil
	default:
		return false, ErrUnsupportedWitnessVariant
	}
}

// Verify reports whether w both matches addr's spending conditions and
// validly signs tx under params.
func (w TxInWitness) Verify(params *chaincfg.Params, addr address.ExtendedAddr, tx Tx) (bool, error) {
	ok, err := w.VerifyAddress(addr)
	if err != nil || !ok {
		return false, err
	}
	return w.VerifyTx(params, tx)
}

// Bytes returns w's canonical CBOR encoding.
func (w TxInWitness) Bytes() ([]byte, error) {
	s := cbor.NewSerializer()
	if err := w.encode(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func (w TxInWitness) encode(s *cbor.Serializer) error {
	s.WriteArrayLen(cbor.Definite(2))
	switch w.tag {
	case witnessTagPk:
		s.WriteUnsignedInteger(witnessTagPk)
		inner := cbor.NewSerializer()
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteBytes(w.pk[:])
		inner.WriteBytes(w.sig[:])
		s.WriteTag(cbor.TagCBORInCBOR)
		s.WriteBytes(inner.Bytes())
		return nil
	case witnessTagScript:
		return ErrScriptWitnessNotSupported
	case witnessTagRedeem:
		s.WriteUnsignedInteger(witnessTagRedeem)
		inner := cbor.NewSerializer()
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteBytes(w.redeemPk[:])
		inner.WriteBytes(w.redeemSig[:])
		s.WriteTag(cbor.TagCBORInCBOR)
		s.WriteBytes(inner.Bytes())
		return nil
	default:
		return ErrUnsupportedWitnessVariant
	}
}

func decodeTxInWitness(d *cbor.Deserializer) (TxInWitness, error) {
	if err := d.Tuple(2, "TxInWitness"); err != nil {
		return TxInWitness{}, err
	}
	sumTypeIdx, err := d.ReadUnsignedInteger()
	if err != nil {
		return TxInWitness{}, err
	}
	switch sumTypeIdx {
	case witnessTagPk:
		tag, err := d.ReadTag()
		if err != nil {
			return TxInWitness{}, err
		}
		if tag != cbor.TagCBORInCBOR {
			return TxInWitness{}, fmt.Errorf("transaction: invalid tag %d, want %d", tag, cbor.TagCBORInCBOR)
		}
		var out TxInWitness
		err = d.BytesInBytes(func(inner *cbor.Deserializer) error {
			if err := inner.Tuple(2, "TxInWitness::PkWitness"); err != nil {
				return err
			}
			pkBytes, err := inner.ReadBytes()
			if err != nil {
				return err
			}
			pk, err := hdkeychain.XPubFromSlice(pkBytes)
			if err != nil {
				return err
			}
			sigBytes, err := inner.ReadBytes()
			if err != nil {
				return err
			}
			sig, err := hdkeychain.SignatureFromSlice(sigBytes)
			if err != nil {
				return err
			}
			out = TxInWitness{tag: witnessTagPk, pk: pk, sig: sig}
			return nil
		})
		return out, err
	case witnessTagRedeem:
		tag, err := d.ReadTag()
		if err != nil {
			return TxInWitness{}, err
		}
		if tag != cbor.TagCBORInCBOR {
			return TxInWitness{}, fmt.Errorf("transaction: invalid tag %d, want %d", tag, cbor.TagCBORInCBOR)
		}
		var out TxInWitness
		err = d.BytesInBytes(func(inner *cbor.Deserializer) error {
			if err := inner.Tuple(2, "TxInWitness::RedeemWitness"); err != nil {
				return err
			}
			pkBytes, err := inner.ReadBytes()
			if err != nil {
				return err
			}
			var pk redeem.PublicKey
			if len(pkBytes) != len(pk) {
				return fmt.Errorf("transaction: invalid redeem public key size %d", len(pkBytes))
			}
			copy(pk[:], pkBytes)
			sigBytes, err := inner.ReadBytes()
			if err != nil {
				return err
			}
			sig, err := redeem.SignatureFromSlice(sigBytes)
			if err != nil {
				return err
			}
			out = TxInWitness{tag: witnessTagRedeem, redeemPk: pk, redeemSig: sig}
			return nil
		})
		return out, err
	case witnessTagScript:
		return TxInWitness{}, ErrScriptWitnessNotSupported
	default:
		return TxInWitness{}, fmt.Errorf("%w: %d", ErrUnsupportedWitnessVariant, sumTypeIdx)
	}
}
