// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
)

// SigningTag is the single byte prepended before the protocol magic in
// every signed payload, distinguishing what kind of object is being
// signed so a signature over one object type can never be replayed as a
// signature over another.
type SigningTag byte

const (
	SigningTagTx             SigningTag = 0x01
	SigningTagRedeemTx       SigningTag = 0x02
	SigningTagVssCert        SigningTag = 0x03
	SigningTagUSProposal     SigningTag = 0x04
	SigningTagUSVote         SigningTag = 0x05
	SigningTagMainBlockHeavy SigningTag = 0x06
)

func encodeProtocolMagic(s *cbor.Serializer, magic int32) {
	if magic >= 0 {
		s.WriteUnsignedInteger(uint64(magic))
	} else {
		s.WriteNegativeInteger(int64(magic))
	}
}

// EncodeProtocolMagicInto writes magic's CBOR encoding (an unsigned or
// negative integer item, depending on sign) into s. Exported for callers
// outside this package (e.g. block.BlockHeader) that carry a bare
// ProtocolMagic field.
func EncodeProtocolMagicInto(s *cbor.Serializer, magic int32) { encodeProtocolMagic(s, magic) }

// DecodeProtocolMagic decodes a CBOR integer item as a ProtocolMagic.
func DecodeProtocolMagic(d *cbor.Deserializer) (int32, error) {
	t, err := d.CBORType()
	if err != nil {
		return 0, err
	}
	if t == cbor.TypeNegativeInteger {
		v, err := d.ReadNegativeInteger()
		return int32(v), err
	}
	v, err := d.ReadUnsignedInteger()
	return int32(v), err
}

// SignBytes builds the payload actually signed/verified for a given
// signing tag under params: the tag byte, followed by the CBOR encoding
// of the network's protocol magic, followed by the CBOR-bytes encoding
// of payload (a TxId, VSS certificate hash, or similar digest).
func SignBytes(params *chaincfg.Params, tag SigningTag, payload []byte) []byte {
	s := cbor.NewSerializer()
	s.WriteRaw([]byte{byte(tag)})
	encodeProtocolMagic(s, params.ProtocolMagic)
	s.WriteBytes(payload)
	return s.Bytes()
}

// SignRaw builds the payload actually signed/verified for signing tags
// whose signed content is a raw CBOR value spliced in directly (VSS
// certificates, update proposals/votes, proxy delegation) rather than a
// single bytes-wrapped digest: the tag byte, the network's protocol
// magic, then whatever encode writes.
func SignRaw(params *chaincfg.Params, tag SigningTag, encode func(s *cbor.Serializer)) []byte {
	s := cbor.NewSerializer()
	s.WriteRaw([]byte{byte(tag)})
	encodeProtocolMagic(s, params.ProtocolMagic)
	encode(s)
	return s.Bytes()
}
