// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

// RawValue holds one already-encoded CBOR data item verbatim. It is used
// for fields whose content this codec does not model more richly —
// Byron's free-form "extra data" attributes, and sum-type payloads no
// caller needs to inspect beyond re-encoding them byte for byte.
type RawValue struct {
	buf []byte
}

// NewRawValue copies b as a RawValue's backing bytes.
func NewRawValue(b []byte) RawValue {
	return RawValue{buf: append([]byte(nil), b...)}
}

// Bytes returns v's raw CBOR encoding.
func (v RawValue) Bytes() []byte { return v.buf }

// EncodeInto writes v's bytes verbatim into s.
func (v RawValue) EncodeInto(s *Serializer) { s.WriteRaw(v.buf) }

// DecodeRawValueInline captures exactly one CBOR data item starting at
// d's current position — recursing into arrays/maps/tags as needed to
// find its end — without interpreting its content, and leaves d
// positioned immediately after it.
func DecodeRawValueInline(d *Deserializer) (RawValue, error) {
	before := d.Remaining()
	if err := skipValue(d); err != nil {
		return RawValue{}, err
	}
	consumed := len(before) - len(d.Remaining())
	return RawValue{buf: append([]byte(nil), before[:consumed]...)}, nil
}

func skipValue(d *Deserializer) error {
	t, err := d.CBORType()
	if err != nil {
		return err
	}
	switch t {
	case TypeUnsignedInteger:
		_, err = d.ReadUnsignedInteger()
		return err
	case TypeNegativeInteger:
		_, err = d.ReadNegativeInteger()
		return err
	case TypeBytes:
		_, err = d.ReadBytes()
		return err
	case TypeText:
		_, err = d.ReadText()
		return err
	case TypeArray:
		l, err := d.ReadArrayLen()
		if err != nil {
			return err
		}
		if l.Indefinite {
			for {
				done, err := d.PeekBreak()
				if err != nil {
					return err
				}
				if done {
					return nil
				}
				if err := skipValue(d); err != nil {
					return err
				}
			}
		}
		for i := uint64(0); i < l.Value; i++ {
			if err := skipValue(d); err != nil {
				return err
			}
		}
		return nil
	case TypeMap:
		l, err := d.ReadMapLen()
		if err != nil {
			return err
		}
		if l.Indefinite {
			for {
				done, err := d.PeekBreak()
				if err != nil {
					return err
				}
				if done {
					return nil
				}
				if err := skipValue(d); err != nil {
					return err
				}
				if err := skipValue(d); err != nil {
					return err
				}
			}
		}
		for i := uint64(0); i < l.Value; i++ {
			if err := skipValue(d); err != nil {
				return err
			}
			if err := skipValue(d); err != nil {
				return err
			}
		}
		return nil
	case TypeTag:
		if _, err := d.ReadTag(); err != nil {
			return err
		}
		return skipValue(d)
	case TypeSpecial:
		_, err = d.ReadSpecial()
		return err
	default:
		return &UnexpectedTypeError{Expected: TypeSpecial, Got: t}
	}
}
