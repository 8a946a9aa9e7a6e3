// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import "encoding/hex"

// Signature is a 64-byte Ed25519 signature (R || S).
type Signature [SignatureSize]byte

// SignatureFromSlice copies b into a Signature, validating its length.
func SignatureFromSlice(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, &ErrInvalidSize{Kind: "signature", Want: SignatureSize, Got: len(b)}
	}
	var s Signature
	copy(s[:], b)
	return s, nil
}

// String renders sig as lowercase hex.
func (sig Signature) String() string { return hex.EncodeToString(sig[:]) }
