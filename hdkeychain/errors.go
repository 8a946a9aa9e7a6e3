// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"errors"
	"fmt"
)

// ErrInvalidXPrv describes candidate bytes that do not have the bit
// pattern an Ed25519-BIP32 extended private key requires. No function in
// this package returns it.
type ErrInvalidXPrv struct {
	Reason string
}

func (e *ErrInvalidXPrv) Error() string { return fmt.Sprintf("hdkeychain: invalid xprv: %s", e.Reason) }

// ErrInvalidSize is returned by the FromSlice constructors when given a
// buffer of the wrong length.
type ErrInvalidSize struct {
	Kind      string
	Want, Got int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("hdkeychain: invalid %s size: want %d bytes, got %d", e.Kind, e.Want, e.Got)
}

// ErrExpectedSoftDerivation is returned by XPub.Derive when asked to
// derive with a hardened index; public keys cannot derive hardened
// children.
var ErrExpectedSoftDerivation = errors.New("hdkeychain: expected soft derivation index for public key")

// ErrInvalidDerivation is returned when a public-key derivation's point
// arithmetic fails (the rare case where the candidate curve point does
// not decode).
var ErrInvalidDerivation = errors.New("hdkeychain: invalid derivation")
