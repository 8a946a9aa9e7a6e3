// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cbor implements the canonical CBOR dialect used to serialise
// every wire object in this module: definite and indefinite arrays/maps,
// the tag-24 "bytes wrapping inner CBOR" convention, the tag-258 ordered-set
// prefix, and the CRC32 envelope wrapped around top-level encoded values.
//
// The encoder is a streaming Serializer (append-only, one method call per
// CBOR item); the decoder is a pull-style Deserializer over a byte slice
// that never copies until a caller asks for Bytes/Text.
package cbor

// Type is a CBOR major type.
type Type byte

const (
	TypeUnsignedInteger Type = 0
	TypeNegativeInteger Type = 1
	TypeBytes           Type = 2
	TypeText            Type = 3
	TypeArray           Type = 4
	TypeMap             Type = 5
	TypeTag             Type = 6
	TypeSpecial         Type = 7
)

func (t Type) String() string {
	switch t {
	case TypeUnsignedInteger:
		return "unsigned integer"
	case TypeNegativeInteger:
		return "negative integer"
	case TypeBytes:
		return "bytes"
	case TypeText:
		return "text"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeTag:
		return "tag"
	case TypeSpecial:
		return "special"
	default:
		return "unknown cbor type"
	}
}

func (t Type) toByte(low uint8) byte {
	return byte(t)<<5 | (low & 0x1f)
}

// Additional-information values for the 5 low bits of the initial byte.
const (
	lenU8       = 0x18
	lenU16      = 0x19
	lenU32      = 0x1a
	lenU64      = 0x1b
	lenReserved = 0x1c // 0x1c..0x1e, unknown/unsupported
	lenIndef    = 0x1f
)

const maxInlineLen = 0x17

// TagCBORInCBOR is the conventional tag marking a bytes item whose content
// is itself a CBOR-encoded value ("CBOR-in-CBOR"), used for TxoPointer,
// TxInWitness payloads, and the CRC32 envelope.
const TagCBORInCBOR = 24

// TagSet marks a following array as an ordered set, used for VSS/stake
// certificate contexts.
const TagSet = 258

// Len describes a CBOR array/map length: either a known element count or
// an indefinite-length marker terminated by a Break special value.
type Len struct {
	Value      uint64
	Indefinite bool
}

// Definite returns a known-length Len of n elements.
func Definite(n uint64) Len { return Len{Value: n} }

// IndefiniteLen is an indefinite-length Len.
var IndefiniteLen = Len{Indefinite: true}

func (l Len) String() string {
	if l.Indefinite {
		return "indefinite"
	}
	return itoa(l.Value)
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[pos:])
}

// Special enumerates the CBOR major-type-7 special values this codec
// supports: booleans, null, undefined, and the indefinite-length break
// marker. Floating point is intentionally unsupported — no wire object in
// this module carries a float.
type Special byte

const (
	SpecialFalse Special = iota
	SpecialTrue
	SpecialNull
	SpecialUndefined
	SpecialBreak
)
