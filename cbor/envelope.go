// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

import "github.com/cardano-go/corvid/chainhash"

// EncodeEnvelope wraps the CBOR encoding produced by encode as the
// 2-element array `[tag24(bytes(inner)), crc32(inner)]`, the
// "CBOR-in-CBOR with CRC32" envelope every ExtendedAddr is serialised
// under.
func EncodeEnvelope(encode func(*Serializer)) []byte {
	inner := NewSerializer()
	encode(inner)
	innerBytes := inner.Bytes()

	s := NewSerializer()
	s.WriteArrayLen(Definite(2))
	s.WriteTag(TagCBORInCBOR)
	s.WriteBytes(innerBytes)
	s.WriteUnsignedInteger(uint64(chainhash.CRC32(innerBytes)))
	return s.Bytes()
}

// DecodeEnvelope unwraps the CRC32 envelope and runs decode over the
// inner CBOR bytes, rejecting the envelope if the CRC does not match.
func DecodeEnvelope(buf []byte, decode func(*Deserializer) error) error {
	d := NewDeserializer(buf)
	return d.DeserializeComplete(func(d *Deserializer) error {
		return DecodeEnvelopeInline(d, decode)
	})
}

// DecodeEnvelopeInline decodes a CRC32 envelope starting at d's current
// position, consuming only the envelope and leaving any data that
// follows it in d for the caller to continue decoding. Used when the
// enveloped value is embedded directly as a field of a larger structure
// (e.g. a TxOut's address) rather than carried as a standalone blob.
func DecodeEnvelopeInline(d *Deserializer, decode func(*Deserializer) error) error {
	if err := d.Tuple(2, "crc32 envelope"); err != nil {
		return err
	}
	tag, err := d.ReadTag()
	if err != nil {
		return err
	}
	if tag != TagCBORInCBOR {
		return &UnexpectedTypeError{Expected: TypeTag, Got: TypeTag}
	}
	inner, err := d.ReadBytes()
	if err != nil {
		return err
	}
	crc, err := d.ReadUnsignedInteger()
	if err != nil {
		return err
	}
	if uint32(crc) != chainhash.CRC32(inner) {
		return ErrCRCMismatch
	}
	innerDec := NewDeserializer(inner)
	return innerDec.DeserializeComplete(decode)
}
