// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"errors"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/chainhash"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/transaction"
)

// sscPayload discriminators. Byron's shared-seed-computation payload is
// a sum over which phase of the commit/reveal protocol a block
// contributes: nodes either publish a commitment, open their reveal, or
// publish their decrypted shares; any block may additionally carry
// VSS certificates for an upcoming epoch.
const (
	sscTagCommitments = 0
	sscTagOpenings    = 1
	sscTagShares      = 2
	sscTagCertificates = 3
)

// ErrUnknownSscVariant is returned for an SscPayload discriminator this
// codec does not define.
var ErrUnknownSscVariant = errors.New("block: unknown ssc payload variant")

// SscPayload is a block's contribution to the epoch's shared
// random seed. The commitment, opening, and share maps carry PVSS
// key material this module treats as opaque (no PVSS/SCRAPE primitive
// is implemented here, matching the "no new cryptographic primitives"
// boundary of this codec); VssCertificates is fully modeled since its
// signature is a plain Ed25519-BIP32 one.
type SscPayload struct {
	tag             uint8
	commitments     cbor.RawValue
	openings        cbor.RawValue
	shares          cbor.RawValue
	vssCertificates VssCertificates
}

// NewCommitmentsSscPayload builds the CommitmentsPayload variant.
func NewCommitmentsSscPayload(commitments cbor.RawValue, certs VssCertificates) SscPayload {
	return SscPayload{tag: sscTagCommitments, commitments: commitments, vssCertificates: certs}
}

// NewOpeningsSscPayload builds the OpeningsPayload variant.
func NewOpeningsSscPayload(openings cbor.RawValue, certs VssCertificates) SscPayload {
	return SscPayload{tag: sscTagOpenings, openings: openings, vssCertificates: certs}
}

// NewSharesSscPayload builds the SharesPayload variant.
func NewSharesSscPayload(shares cbor.RawValue, certs VssCertificates) SscPayload {
	return SscPayload{tag: sscTagShares, shares: shares, vssCertificates: certs}
}

// NewCertificatesSscPayload builds the CertificatesPayload variant,
// which carries no commit/reveal data of its own.
func NewCertificatesSscPayload(certs VssCertificates) SscPayload {
	return SscPayload{tag: sscTagCertificates, vssCertificates: certs}
}

// VssCertificates returns the VSS certificate set every SscPayload
// variant carries, regardless of its commit/reveal phase.
func (p SscPayload) VssCertificates() VssCertificates { return p.vssCertificates }

func (p SscPayload) encode(ser *cbor.Serializer) error {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(p.tag))
	inner := cbor.NewSerializer()
	switch p.tag {
	case sscTagCommitments:
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteRaw(p.commitments.Bytes())
		p.vssCertificates.encode(inner)
	case sscTagOpenings:
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteRaw(p.openings.Bytes())
		p.vssCertificates.encode(inner)
	case sscTagShares:
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteRaw(p.shares.Bytes())
		p.vssCertificates.encode(inner)
	case sscTagCertificates:
		p.vssCertificates.encode(inner)
	default:
		return ErrUnknownSscVariant
	}
	ser.WriteTag(cbor.TagCBORInCBOR)
	ser.WriteBytes(inner.Bytes())
	return nil
}

func decodeSscPayload(d *cbor.Deserializer) (SscPayload, error) {
	if err := d.Tuple(2, "SscPayload"); err != nil {
		return SscPayload{}, err
	}
	tag, err := d.ReadUnsignedInteger()
	if err != nil {
		return SscPayload{}, err
	}
	if _, err := d.ReadTag(); err != nil {
		return SscPayload{}, err
	}
	var out SscPayload
	err = d.BytesInBytes(func(inner *cbor.Deserializer) error {
		switch tag {
		case sscTagCommitments:
			if err := inner.Tuple(2, "SscPayload::Commitments"); err != nil {
				return err
			}
			commitments, err := cbor.DecodeRawValueInline(inner)
			if err != nil {
				return err
			}
			certs, err := decodeVssCertificates(inner)
			if err != nil {
				return err
			}
			out = NewCommitmentsSscPayload(commitments, certs)
		case sscTagOpenings:
			if err := inner.Tuple(2, "SscPayload::Openings"); err != nil {
				return err
			}
			openings, err := cbor.DecodeRawValueInline(inner)
			if err != nil {
				return err
			}
			certs, err := decodeVssCertificates(inner)
			if err != nil {
				return err
			}
			out = NewOpeningsSscPayload(openings, certs)
		case sscTagShares:
			if err := inner.Tuple(2, "SscPayload::Shares"); err != nil {
				return err
			}
			shares, err := cbor.DecodeRawValueInline(inner)
			if err != nil {
				return err
			}
			certs, err := decodeVssCertificates(inner)
			if err != nil {
				return err
			}
			out = NewSharesSscPayload(shares, certs)
		case sscTagCertificates:
			certs, err := decodeVssCertificates(inner)
			if err != nil {
				return err
			}
			out = NewCertificatesSscPayload(certs)
		default:
			return ErrUnknownSscVariant
		}
		return nil
	})
	return out, err
}

// VssCertificate binds a VSS public key to the Ed25519-BIP32 key that
// speaks for it during an epoch, expiring after expiryEpoch.
type VssCertificate struct {
	VssKey      cbor.RawValue
	ExpiryEpoch EpochId
	Signature   hdkeychain.Signature
	SigningKey  hdkeychain.XPub
}

func (c VssCertificate) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(4))
	ser.WriteRaw(c.VssKey.Bytes())
	ser.WriteUnsignedInteger(uint64(c.ExpiryEpoch))
	ser.WriteBytes(c.Signature[:])
	ser.WriteBytes(c.SigningKey[:])
}

func decodeVssCertificate(d *cbor.Deserializer) (VssCertificate, error) {
	if err := d.Tuple(4, "VssCertificate"); err != nil {
		return VssCertificate{}, err
	}
	vssKey, err := cbor.DecodeRawValueInline(d)
	if err != nil {
		return VssCertificate{}, err
	}
	expiry, err := d.ReadUnsignedInteger()
	if err != nil {
		return VssCertificate{}, err
	}
	sigBytes, err := d.ReadBytes()
	if err != nil {
		return VssCertificate{}, err
	}
	sig, err := hdkeychain.SignatureFromSlice(sigBytes)
	if err != nil {
		return VssCertificate{}, err
	}
	pkBytes, err := d.ReadBytes()
	if err != nil {
		return VssCertificate{}, err
	}
	pk, err := hdkeychain.XPubFromSlice(pkBytes)
	if err != nil {
		return VssCertificate{}, err
	}
	return VssCertificate{VssKey: vssKey, ExpiryEpoch: EpochId(expiry), Signature: sig, SigningKey: pk}, nil
}

// Verify reports whether c's signature validly binds c.VssKey to
// c.ExpiryEpoch under c.SigningKey and params.
func (c VssCertificate) Verify(params *chaincfg.Params) bool {
	msg := transaction.SignRaw(params, transaction.SigningTagVssCert, func(ser *cbor.Serializer) {
		ser.WriteArrayLen(cbor.Definite(2))
		ser.WriteRaw(c.VssKey.Bytes())
		ser.WriteUnsignedInteger(uint64(c.ExpiryEpoch))
	})
	return c.SigningKey.Verify(msg, c.Signature)
}

// VssCertificates is a tag-258 (CBOR "set") list of VssCertificate.
type VssCertificates []VssCertificate

func (cs VssCertificates) encode(ser *cbor.Serializer) {
	ser.WriteTag(cbor.TagSet)
	ser.WriteArrayLen(cbor.Definite(uint64(len(cs))))
	for _, c := range cs {
		c.encode(ser)
	}
}

func decodeVssCertificates(d *cbor.Deserializer) (VssCertificates, error) {
	if err := d.ReadSetTag(); err != nil {
		return nil, err
	}
	l, err := d.ReadArrayLen()
	if err != nil {
		return nil, err
	}
	if l.Indefinite {
		var out VssCertificates
		for {
			done, err := d.PeekBreak()
			if err != nil {
				return nil, err
			}
			if done {
				return out, nil
			}
			c, err := decodeVssCertificate(d)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	out := make(VssCertificates, 0, l.Value)
	for i := uint64(0); i < l.Value; i++ {
		c, err := decodeVssCertificate(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// HasDuplicateVssKeys reports whether cs contains two certificates with
// the same VSS key.
func HasDuplicateVssKeys(cs VssCertificates) bool { return hasDuplicateVssKeys(cs) }

// HasDuplicateSigningKeys reports whether cs contains two certificates
// signed by the same Ed25519-BIP32 key.
func HasDuplicateSigningKeys(cs VssCertificates) bool { return hasDuplicateSigningKeys(cs) }

// hasDuplicateVssKeys reports whether cs contains two certificates with
// the same VSS key.
func hasDuplicateVssKeys(cs VssCertificates) bool {
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		k := string(c.VssKey.Bytes())
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// hasDuplicateSigningKeys reports whether cs contains two certificates
// signed by the same Ed25519-BIP32 key.
func hasDuplicateSigningKeys(cs VssCertificates) bool {
	seen := make(map[hdkeychain.XPub]struct{}, len(cs))
	for _, c := range cs {
		if _, ok := seen[c.SigningKey]; ok {
			return true
		}
		seen[c.SigningKey] = struct{}{}
	}
	return false
}

// sscProof summarises an SscPayload inside a block's BodyProof: a
// 2-tuple of the payload's discriminator and the hash of the
// certificate set it carries.
type sscProof struct {
	kind uint8
	hash chainhash.Hash256
}

func (p sscProof) encode(ser *cbor.Serializer) {
	ser.WriteArrayLen(cbor.Definite(2))
	ser.WriteUnsignedInteger(uint64(p.kind))
	ser.WriteBytes(p.hash[:])
}

func decodeSscProof(d *cbor.Deserializer) (sscProof, error) {
	if err := d.Tuple(2, "SscProof"); err != nil {
		return sscProof{}, err
	}
	kind, err := d.ReadUint8()
	if err != nil {
		return sscProof{}, err
	}
	hash, err := readHash256(d, "SscProof")
	if err != nil {
		return sscProof{}, err
	}
	return sscProof{kind: kind, hash: hash}, nil
}

// generateSscProof computes the BodyProof entry for p: its tag plus the
// hash of its VSS certificate set's CBOR encoding.
func generateSscProof(p SscPayload) sscProof {
	ser := cbor.NewSerializer()
	p.vssCertificates.encode(ser)
	return sscProof{kind: p.tag, hash: chainhash.Hash256B(ser.Bytes())}
}
