// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

import (
	"errors"
	"fmt"
)

// ErrTrailingData is returned by Deserializer.DeserializeComplete when
// bytes remain in the buffer after decoding the expected value.
var ErrTrailingData = errors.New("cbor: trailing data after value")

// ErrExpectedSetTag is returned when a tag-258 ordered-set prefix was
// expected but a different tag (or no tag) was found.
var ErrExpectedSetTag = errors.New("cbor: expected set tag (258)")

// ErrIntegerOverflow is returned when a decoded unsigned integer does not
// fit the requested fixed-width Go type (uint8/uint16/uint32).
var ErrIntegerOverflow = errors.New("cbor: integer does not fit requested width")

// ErrCRCMismatch is returned by DecodeEnvelope when the stored CRC32 does
// not match the recomputed checksum of the enveloped bytes.
var ErrCRCMismatch = errors.New("cbor: crc32 mismatch in envelope")

// NotEnoughError is returned when the buffer is shorter than the bytes
// required to decode the current item.
type NotEnoughError struct {
	Have, Need int
}

func (e *NotEnoughError) Error() string {
	return fmt.Sprintf("cbor: not enough data: have %d bytes, need %d", e.Have, e.Need)
}

// UnexpectedTypeError is returned when the CBOR major type read from the
// buffer does not match what the caller asked for.
type UnexpectedTypeError struct {
	Expected, Got Type
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("cbor: expected %s, got %s", e.Expected, e.Got)
}

// UnknownLenTypeError is returned when the additional-information field of
// an initial byte uses one of the three reserved values (0x1c-0x1e).
type UnknownLenTypeError struct {
	Byte byte
}

func (e *UnknownLenTypeError) Error() string {
	return fmt.Sprintf("cbor: unknown length encoding in initial byte 0x%02x", e.Byte)
}

// IndefiniteLenNotSupportedError is returned when an indefinite length is
// used with a major type that this codec requires to carry a definite
// length (integers, bytes, text, tags).
type IndefiniteLenNotSupportedError struct {
	Type Type
}

func (e *IndefiniteLenNotSupportedError) Error() string {
	return fmt.Sprintf("cbor: indefinite length not supported for %s", e.Type)
}

// WrongLenError is returned by Deserializer.Tuple when a definite-length
// array's element count does not match what the caller required, and
// names the decoding context so the failure can be located.
type WrongLenError struct {
	Expected uint64
	Got      Len
	Context  string
}

func (e *WrongLenError) Error() string {
	return fmt.Sprintf("cbor: wrong tuple length while decoding %s: expected %d, got %s", e.Context, e.Expected, e.Got)
}

// DecodeError wraps an underlying decode failure with the static context
// label of the object being decoded when it occurred ("while decoding X"),
// matching the error taxonomy's "context-carrying" requirement.
type DecodeError struct {
	Context string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cbor: while decoding %s: %v", e.Context, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WrapContext wraps err, if non-nil, with the given decoding context.
func WrapContext(context string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Context: context, Err: err}
}
