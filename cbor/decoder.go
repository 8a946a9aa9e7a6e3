// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

// Deserializer is a pull-style CBOR decoder over a byte slice. It never
// copies the underlying bytes until a caller asks for Bytes/Text.
// ReadUint8/16/32, ReadBool, ReadSetTag and ReadIndefiniteArray consume
// what they have read before returning an error; every other Read*
// method advances the cursor only on success.
type Deserializer struct {
	buf []byte
}

// NewDeserializer returns a Deserializer reading from buf.
func NewDeserializer(buf []byte) *Deserializer {
	return &Deserializer{buf: buf}
}

// Len returns the number of unconsumed bytes remaining.
func (d *Deserializer) Len() int { return len(d.buf) }

// IsEmpty reports whether every byte has been consumed.
func (d *Deserializer) IsEmpty() bool { return len(d.buf) == 0 }

// Remaining returns the unconsumed tail of the buffer without advancing.
func (d *Deserializer) Remaining() []byte { return d.buf }

func (d *Deserializer) byteAt(i int) (byte, error) {
	if i >= len(d.buf) {
		return 0, &NotEnoughError{Have: len(d.buf), Need: i + 1}
	}
	return d.buf[i], nil
}

func (d *Deserializer) u8At(i int) (uint64, error) {
	b, err := d.byteAt(i)
	return uint64(b), err
}

func (d *Deserializer) u16At(i int) (uint64, error) {
	b1, err := d.u8At(i)
	if err != nil {
		return 0, err
	}
	b2, err := d.u8At(i + 1)
	if err != nil {
		return 0, err
	}
	return b1<<8 | b2, nil
}

func (d *Deserializer) u32At(i int) (uint64, error) {
	v := uint64(0)
	for j := 0; j < 4; j++ {
		b, err := d.u8At(i + j)
		if err != nil {
			return 0, err
		}
		v = v<<8 | b
	}
	return v, nil
}

func (d *Deserializer) u64At(i int) (uint64, error) {
	v := uint64(0)
	for j := 0; j < 8; j++ {
		b, err := d.u8At(i + j)
		if err != nil {
			return 0, err
		}
		v = v<<8 | b
	}
	return v, nil
}

// CBORType returns the major type of the next item without consuming it.
func (d *Deserializer) CBORType() (Type, error) {
	b, err := d.byteAt(0)
	if err != nil {
		return 0, err
	}
	return Type(b >> 5), nil
}

func (d *Deserializer) expectType(t Type) error {
	got, err := d.CBORType()
	if err != nil {
		return err
	}
	if got != t {
		return &UnexpectedTypeError{Expected: t, Got: got}
	}
	return nil
}

// cborLen returns the length field of the next item and the number of
// extra bytes (beyond the initial byte) it occupies.
func (d *Deserializer) cborLen() (Len, int, error) {
	b, err := d.byteAt(0)
	if err != nil {
		return Len{}, 0, err
	}
	info := b & 0x1f
	switch {
	case info <= maxInlineLen:
		return Definite(uint64(info)), 0, nil
	case info == lenU8:
		v, err := d.u8At(1)
		return Definite(v), 1, err
	case info == lenU16:
		v, err := d.u16At(1)
		return Definite(v), 2, err
	case info == lenU32:
		v, err := d.u32At(1)
		return Definite(v), 4, err
	case info == lenU64:
		v, err := d.u64At(1)
		return Definite(v), 8, err
	case info == lenIndef:
		return IndefiniteLen, 0, nil
	default:
		return Len{}, 0, &UnknownLenTypeError{Byte: b}
	}
}

func (d *Deserializer) advance(n int) error {
	if len(d.buf) < n {
		return &NotEnoughError{Have: len(d.buf), Need: n}
	}
	d.buf = d.buf[n:]
	return nil
}

// ReadUnsignedInteger decodes an unsigned integer item.
func (d *Deserializer) ReadUnsignedInteger() (uint64, error) {
	if err := d.expectType(TypeUnsignedInteger); err != nil {
		return 0, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return 0, err
	}
	if l.Indefinite {
		return 0, &IndefiniteLenNotSupportedError{Type: TypeUnsignedInteger}
	}
	if err := d.advance(1 + sz); err != nil {
		return 0, err
	}
	return l.Value, nil
}

// ReadUint8/16/32 decode an unsigned integer item and check that it fits
// the requested fixed-width type.
func (d *Deserializer) ReadUint8() (uint8, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	if v > 0xff {
		return 0, ErrIntegerOverflow
	}
	return uint8(v), nil
}

func (d *Deserializer) ReadUint16() (uint16, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	if v > 0xffff {
		return 0, ErrIntegerOverflow
	}
	return uint16(v), nil
}

func (d *Deserializer) ReadUint32() (uint32, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	if v > 0xffffffff {
		return 0, ErrIntegerOverflow
	}
	return uint32(v), nil
}

// ReadNegativeInteger decodes a CBOR negative integer item into its
// (negative) int64 value.
func (d *Deserializer) ReadNegativeInteger() (int64, error) {
	if err := d.expectType(TypeNegativeInteger); err != nil {
		return 0, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return 0, err
	}
	if l.Indefinite {
		return 0, &IndefiniteLenNotSupportedError{Type: TypeNegativeInteger}
	}
	if err := d.advance(1 + sz); err != nil {
		return 0, err
	}
	return -int64(l.Value) - 1, nil
}

// ReadBytes decodes a definite-length byte string item.
func (d *Deserializer) ReadBytes() ([]byte, error) {
	if err := d.expectType(TypeBytes); err != nil {
		return nil, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return nil, err
	}
	if l.Indefinite {
		return nil, &IndefiniteLenNotSupportedError{Type: TypeBytes}
	}
	start := 1 + sz
	end := start + int(l.Value)
	if end > len(d.buf) {
		return nil, &NotEnoughError{Have: len(d.buf), Need: end}
	}
	out := append([]byte(nil), d.buf[start:end]...)
	return out, d.advance(end)
}

// ReadText decodes a definite-length UTF-8 text item.
func (d *Deserializer) ReadText() (string, error) {
	if err := d.expectType(TypeText); err != nil {
		return "", err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return "", err
	}
	if l.Indefinite {
		return "", &IndefiniteLenNotSupportedError{Type: TypeText}
	}
	start := 1 + sz
	end := start + int(l.Value)
	if end > len(d.buf) {
		return "", &NotEnoughError{Have: len(d.buf), Need: end}
	}
	out := string(d.buf[start:end])
	return out, d.advance(end)
}

// ReadArrayLen decodes an array header and returns its length.
func (d *Deserializer) ReadArrayLen() (Len, error) {
	if err := d.expectType(TypeArray); err != nil {
		return Len{}, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return Len{}, err
	}
	return l, d.advance(1 + sz)
}

// Tuple requires the next item to be a definite-length array of exactly
// expectedLen elements, naming context in any WrongLenError it returns.
func (d *Deserializer) Tuple(expectedLen uint64, context string) error {
	l, err := d.ReadArrayLen()
	if err != nil {
		return err
	}
	if l.Indefinite || l.Value != expectedLen {
		return &WrongLenError{Expected: expectedLen, Got: l, Context: context}
	}
	return nil
}

// ReadMapLen decodes a map header and returns its length (number of pairs).
func (d *Deserializer) ReadMapLen() (Len, error) {
	if err := d.expectType(TypeMap); err != nil {
		return Len{}, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return Len{}, err
	}
	return l, d.advance(1 + sz)
}

// ReadTag decodes a tag header and returns the tag value.
func (d *Deserializer) ReadTag() (uint64, error) {
	if err := d.expectType(TypeTag); err != nil {
		return 0, err
	}
	l, sz, err := d.cborLen()
	if err != nil {
		return 0, err
	}
	if l.Indefinite {
		return 0, &IndefiniteLenNotSupportedError{Type: TypeTag}
	}
	return l.Value, d.advance(1 + sz)
}

// ReadSetTag requires and consumes the tag-258 ordered-set prefix.
func (d *Deserializer) ReadSetTag() error {
	tag, err := d.ReadTag()
	if err != nil {
		return err
	}
	if tag != TagSet {
		return ErrExpectedSetTag
	}
	return nil
}

// ReadSpecial decodes a major-type-7 special value.
func (d *Deserializer) ReadSpecial() (Special, error) {
	if err := d.expectType(TypeSpecial); err != nil {
		return 0, err
	}
	b, err := d.byteAt(0)
	if err != nil {
		return 0, err
	}
	info := b & 0x1f
	switch info {
	case 0x14:
		return SpecialFalse, d.advance(1)
	case 0x15:
		return SpecialTrue, d.advance(1)
	case 0x16:
		return SpecialNull, d.advance(1)
	case 0x17:
		return SpecialUndefined, d.advance(1)
	case lenIndef:
		return SpecialBreak, d.advance(1)
	default:
		return 0, &UnknownLenTypeError{Byte: b}
	}
}

// ReadBool decodes a boolean special value.
func (d *Deserializer) ReadBool() (bool, error) {
	s, err := d.ReadSpecial()
	if err != nil {
		return false, err
	}
	switch s {
	case SpecialTrue:
		return true, nil
	case SpecialFalse:
		return false, nil
	default:
		return false, &UnexpectedTypeError{Expected: TypeSpecial, Got: TypeSpecial}
	}
}

// PeekBreak reports whether the next item is the indefinite-length Break
// marker, without consuming it unless it is.
func (d *Deserializer) PeekBreak() (bool, error) {
	t, err := d.CBORType()
	if err != nil {
		return false, err
	}
	if t != TypeSpecial {
		return false, nil
	}
	b, err := d.byteAt(0)
	if err != nil {
		return false, err
	}
	if b&0x1f != lenIndef {
		return false, nil
	}
	return true, d.advance(1)
}

// ReadIndefiniteArray calls read(i) for each element of an indefinite-length
// array until the Break marker is found.
func (d *Deserializer) ReadIndefiniteArray(read func(i int) error) error {
	l, err := d.ReadArrayLen()
	if err != nil {
		return err
	}
	if !l.Indefinite {
		return &IndefiniteLenNotSupportedError{Type: TypeArray}
	}
	for i := 0; ; i++ {
		done, err := d.PeekBreak()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := read(i); err != nil {
			return err
		}
	}
}

// BytesInBytes decodes a bytes item and runs decode over its content,
// reversing Serializer's BytesInBytes ("CBOR-in-CBOR") convention.
func (d *Deserializer) BytesInBytes(decode func(*Deserializer) error) error {
	inner, err := d.ReadBytes()
	if err != nil {
		return err
	}
	innerDec := NewDeserializer(inner)
	if err := decode(innerDec); err != nil {
		return err
	}
	if !innerDec.IsEmpty() {
		return ErrTrailingData
	}
	return nil
}

// DeserializeComplete runs decode over the Deserializer and requires that
// no bytes remain afterward.
func (d *Deserializer) DeserializeComplete(decode func(*Deserializer) error) error {
	if err := decode(d); err != nil {
		return err
	}
	if !d.IsEmpty() {
		return ErrTrailingData
	}
	return nil
}
