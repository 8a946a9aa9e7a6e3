// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"errors"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/hdkeychain"
)

// blockSignature discriminators.
const (
	blockSigTagSignature  = 0
	blockSigTagProxyLight = 1
	blockSigTagProxyHeavy = 2
)

// ErrUnsupportedBlockSignature names the Signature and ProxyLight
// block-signature variants: self-signed blocks and light-certificate
// delegation were phased out of the Byron chain before the segment this
// module targets, so neither is implemented beyond structural
// decode/encode. No function in this module returns it; blockchain's
// block verification reports both variants as a signature failure.
var ErrUnsupportedBlockSignature = errors.New("block: unsupported block signature variant")

// ErrUnknownBlockSignature is returned for a BlockSignature
// discriminator this wire format does not define.
var ErrUnknownBlockSignature = errors.New("block: unknown block signature variant")

// ProxySecretKey is a heavyweight delegation certificate: issuer
// authorizes delegate to sign blocks on its behalf, certified by cert
// (a signature from issuer over delegate's key and the certificate's
// validity window).
type ProxySecretKey struct {
	IssuerPk   hdkeychain.XPub
	DelegatePk hdkeychain.XPub
	Cert       hdkeychain.Signature
}

func (psk ProxySecretKey) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(3))
	ser.WriteBytes(psk.IssuerPk[:])
	ser.WriteBytes(psk.DelegatePk[:])
	ser.WriteBytes(psk.Cert[:])
}

func decodeProxySecretKey(d *cbor.Deserializer) (ProxySecretKey, error) {
	if err := d.Tuple(3, "ProxySecretKey"); err != nil {
		return ProxySecretKey{}, err
	}
	issuerBytes, err := d.ReadBytes()
	if err != nil {
		return ProxySecretKey{}, err
	}
	issuer, err := hdkeychain.XPubFromSlice(issuerBytes)
	if err != nil {
		return ProxySecretKey{}, err
	}
	delegateBytes, err := d.ReadBytes()
	if err != nil {
		return ProxySecretKey{}, err
	}
	delegate, err := hdkeychain.XPubFromSlice(delegateBytes)
	if err != nil {
		return ProxySecretKey{}, err
	}
	certBytes, err := d.ReadBytes()
	if err != nil {
		return ProxySecretKey{}, err
	}
	cert, err := hdkeychain.SignatureFromSlice(certBytes)
	if err != nil {
		return ProxySecretKey{}, err
	}
	return ProxySecretKey{IssuerPk: issuer, DelegatePk: delegate, Cert: cert}, nil
}

// ProxySignature is a block signed on a delegate's behalf: the
// certificate proving the delegation, and the delegate's signature
// over the block's MainToSign representation.
type ProxySignature struct {
	Psk ProxySecretKey
	Sig hdkeychain.Signature
}

func (ps ProxySignature) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	ps.Psk.encode(ser)
	ser.WriteBytes(ps.Sig[:])
}

func decodeProxySignature(d *cbor.Deserializer) (ProxySignature, error) {
	if err := d.Tuple(2, "ProxySignature"); err != nil {
		return ProxySignature{}, err
	}
	psk, err := decodeProxySecretKey(d)
	if err != nil {
		return ProxySignature{}, err
	}
	sigBytes, err := d.ReadBytes()
	if err != nil {
		return ProxySignature{}, err
	}
	sig, err := hdkeychain.SignatureFromSlice(sigBytes)
	if err != nil {
		return ProxySignature{}, err
	}
	return ProxySignature{Psk: psk, Sig: sig}, nil
}

// BlockSignature is the proof a main block's issuer actually produced
// it: either a plain signature from the block's own leader key, or a
// proxy signature produced under a (light- or heavy-) delegation
// certificate on the leader's behalf.
type BlockSignature struct {
	tag        uint8
	signature  hdkeychain.Signature
	proxyLight []cbor.RawValue
	proxyHeavy ProxySignature
}

// NewBlockSignature builds the Signature variant.
func NewBlockSignature(sig hdkeychain.Signature) BlockSignature {
	return BlockSignature{tag: blockSigTagSignature, signature: sig}
}

// NewProxyHeavyBlockSignature builds the ProxyHeavy variant.
func NewProxyHeavyBlockSignature(ps ProxySignature) BlockSignature {
	return BlockSignature{tag: blockSigTagProxyHeavy, proxyHeavy: ps}
}

// ProxyHeavy returns bs's ProxySignature, if that is the variant it holds.
func (bs BlockSignature) ProxyHeavy() (ProxySignature, bool) {
	if bs.tag != blockSigTagProxyHeavy {
		return ProxySignature{}, false
	}
	return bs.proxyHeavy, true
}

func (bs BlockSignature) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(bs.tag))
	switch bs.tag {
	case blockSigTagSignature:
		ser.WriteBytes(bs.signature[:])
	case blockSigTagProxyLight:
		ser.WriteArrayLen(cbor.Definite(uint64(len(bs.proxyLight))))
		for _, v := range bs.proxyLight {
			ser.WriteRaw(v.Bytes())
		}
	case blockSigTagProxyHeavy:
		bs.proxyHeavy.encode(ser)
	default:
		return ErrUnknownBlockSignature
	}
	return nil
}

func decodeBlockSignature(d *cbor.Deserializer) (BlockSignature, error) {
	if err := d.Tuple(2, "BlockSignature"); err != nil {
		return BlockSignature{}, err
	}
	tag, err := d.ReadUnsignedInteger()
	if err != nil {
		return BlockSignature{}, err
	}
	switch tag {
	case blockSigTagSignature:
		sigBytes, err := d.ReadBytes()
		if err != nil {
			return BlockSignature{}, err
		}
		sig, err := hdkeychain.SignatureFromSlice(sigBytes)
		if err != nil {
			return BlockSignature{}, err
		}
		return BlockSignature{tag: blockSigTagSignature, signature: sig}, nil
	case blockSigTagProxyLight:
		l, err := d.ReadArrayLen()
		if err != nil {
			return BlockSignature{}, err
		}
		values := make([]cbor.RawValue, 0, l.Value)
		if l.Indefinite {
			for {
				done, err := d.PeekBreak()
				if err != nil {
					return BlockSignature{}, err
				}
				if done {
					break
				}
				v, err := cbor.DecodeRawValueInline(d)
				if err != nil {
					return BlockSignature{}, err
				}
				values = append(values, v)
			}
		} else {
			for i := uint64(0); i < l.Value; i++ {
				v, err := cbor.DecodeRawValueInline(d)
				if err != nil {
					return BlockSignature{}, err
				}
				values = append(values, v)
			}
		}
		return BlockSignature{tag: blockSigTagProxyLight, proxyLight: values}, nil
	case blockSigTagProxyHeavy:
		ps, err := decodeProxySignature(d)
		if err != nil {
			return BlockSignature{}, err
		}
		return BlockSignature{tag: blockSigTagProxyHeavy, proxyHeavy: ps}, nil
	default:
		return BlockSignature{}, ErrUnknownBlockSignature
	}
}
