// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

// defaultCapacity is the initial buffer size for NewSerializer, chosen to
// avoid the first several reallocations a small encoded object would
// otherwise trigger as the buffer grows.
const defaultCapacity = 512

// Serializer is an append-only CBOR encoder. Every Write* method appends
// to the internal buffer and never fails; none of them returns an error.
type Serializer struct {
	buf []byte
}

// NewSerializer returns an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, defaultCapacity)}
}

// Bytes returns the accumulated encoded bytes.
func (s *Serializer) Bytes() []byte { return s.buf }

func (s *Serializer) writeByte(b byte) {
	s.buf = append(s.buf, b)
}

func (s *Serializer) writeUint16(v uint16) {
	s.buf = append(s.buf, byte(v>>8), byte(v))
}

func (s *Serializer) writeUint32(v uint32) {
	s.buf = append(s.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (s *Serializer) writeUint64(v uint64) {
	s.buf = append(s.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (s *Serializer) writeTypeLen(t Type, n uint64) {
	switch {
	case n <= maxInlineLen:
		s.writeByte(t.toByte(uint8(n)))
	case n < 0x100:
		s.writeByte(t.toByte(lenU8))
		s.writeByte(byte(n))
	case n < 0x10000:
		s.writeByte(t.toByte(lenU16))
		s.writeUint16(uint16(n))
	case n < 0x100000000:
		s.writeByte(t.toByte(lenU32))
		s.writeUint32(uint32(n))
	default:
		s.writeByte(t.toByte(lenU64))
		s.writeUint64(n)
	}
}

// WriteUnsignedInteger appends an unsigned integer item.
func (s *Serializer) WriteUnsignedInteger(v uint64) *Serializer {
	s.writeTypeLen(TypeUnsignedInteger, v)
	return s
}

// WriteNegativeInteger appends a negative integer item. v must be < 0.
func (s *Serializer) WriteNegativeInteger(v int64) *Serializer {
	s.writeTypeLen(TypeNegativeInteger, uint64(-v-1))
	return s
}

// WriteBytes appends a definite-length byte string item.
func (s *Serializer) WriteBytes(b []byte) *Serializer {
	s.writeTypeLen(TypeBytes, uint64(len(b)))
	s.buf = append(s.buf, b...)
	return s
}

// WriteText appends a definite-length UTF-8 text item.
func (s *Serializer) WriteText(str string) *Serializer {
	s.writeTypeLen(TypeText, uint64(len(str)))
	s.buf = append(s.buf, str...)
	return s
}

// WriteArrayLen begins an array of the given length. For IndefiniteLen,
// the caller must terminate the array with WriteBreak.
func (s *Serializer) WriteArrayLen(l Len) *Serializer {
	if l.Indefinite {
		s.writeByte(TypeArray.toByte(lenIndef))
	} else {
		s.writeTypeLen(TypeArray, l.Value)
	}
	return s
}

// WriteMapLen begins a map of the given number of key/value pairs. For
// IndefiniteLen, the caller must terminate the map with WriteBreak.
func (s *Serializer) WriteMapLen(l Len) *Serializer {
	if l.Indefinite {
		s.writeByte(TypeMap.toByte(lenIndef))
	} else {
		s.writeTypeLen(TypeMap, l.Value)
	}
	return s
}

// WriteTag appends a tag header; the tagged item must be written next.
func (s *Serializer) WriteTag(tag uint64) *Serializer {
	s.writeTypeLen(TypeTag, tag)
	return s
}

// WriteBreak appends the indefinite-length terminator.
func (s *Serializer) WriteBreak() *Serializer {
	s.writeByte(TypeSpecial.toByte(lenIndef))
	return s
}

// WriteBool appends a boolean special value.
func (s *Serializer) WriteBool(b bool) *Serializer {
	if b {
		s.writeByte(TypeSpecial.toByte(0x15))
	} else {
		s.writeByte(TypeSpecial.toByte(0x14))
	}
	return s
}

// WriteNull appends the null special value.
func (s *Serializer) WriteNull() *Serializer {
	s.writeByte(TypeSpecial.toByte(0x16))
	return s
}

// BytesInBytes encodes v's CBOR form and wraps it as a bytes item — the
// "CBOR-in-CBOR" convention the reference protocol uses for TxoPointer,
// TxInWitness payloads, and values carried under tag 24.
func BytesInBytes(encode func(*Serializer)) []byte {
	inner := NewSerializer()
	encode(inner)
	outer := NewSerializer()
	outer.WriteBytes(inner.Bytes())
	return outer.Bytes()
}

// WriteIndefiniteArray writes n items as an indefinite-length array,
// calling write(i) for each index in order and closing with Break.
func (s *Serializer) WriteIndefiniteArray(n int, write func(i int, s *Serializer)) *Serializer {
	s.WriteArrayLen(IndefiniteLen)
	for i := 0; i < n; i++ {
		write(i, s)
	}
	return s.WriteBreak()
}

// WriteRaw appends an already-CBOR-encoded value verbatim, unwrapped by
// any bytes/tag header. Used to splice a value whose own encoding (e.g.
// an ExtendedAddr's CRC32 envelope) is embedded directly as a field
// rather than carried inside a bytes item.
func (s *Serializer) WriteRaw(b []byte) *Serializer {
	s.buf = append(s.buf, b...)
	return s
}
