// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import "errors"

// ErrUnknownAddrType is returned when decoding an AddrType byte outside
// {0, 1, 2}.
var ErrUnknownAddrType = errors.New("address: unknown address type")

// ErrUnknownSpendingDataTag is returned when decoding a SpendingData
// array whose tag is not {0, 1, 2}.
var ErrUnknownSpendingDataTag = errors.New("address: unknown spending data tag")

// ErrScriptNotSupported is returned by any attempt to serialize or sign
// against a script address: the reference's own script branch is
// unimplemented, and this package fails closed rather than invent a wire
// encoding for it.
var ErrScriptNotSupported = errors.New("address: script addresses are not supported")

// ErrUnknownStakeDistributionTag is returned when decoding a
// StakeDistribution array whose sum-type tag is not {0, 1}.
var ErrUnknownStakeDistributionTag = errors.New("address: unknown stake distribution tag")

// ErrUnknownAttributeKey is returned when an Attributes map carries a key
// other than {0, 1, 2}; the format requires every attribute to be
// recognised.
var ErrUnknownAttributeKey = errors.New("address: unknown attribute key")
