// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chainhash"
)

// Addr is the Blake2b-224 digest identifying an address's spending
// conditions: its type, spending data, and attributes, but not its
// textual envelope.
type Addr chainhash.Hash224

// NewAddr computes the Addr of the given type, spending data, and
// attributes.
func NewAddr(addrType AddrType, sd SpendingData, attrs Attributes) (Addr, error) {
	s := cbor.NewSerializer()
	s.WriteArrayLen(cbor.Definite(3))
	addrType.encode(s)
	if err := sd.encode(s); err != nil {
		return Addr{}, err
	}
	if err := attrs.encode(s); err != nil {
		return Addr{}, err
	}
	return Addr(chainhash.AddrHash(s.Bytes())), nil
}

func (a Addr) String() string { return chainhash.Hash224(a).String() }

func (a Addr) encode(s *cbor.Serializer) {
	s.WriteBytes(a[:])
}

func decodeAddr(d *cbor.Deserializer) (Addr, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return Addr{}, err
	}
	if len(b) != chainhash.HashSize224 {
		return Addr{}, &cbor.NotEnoughError{Have: len(b), Need: chainhash.HashSize224}
	}
	var a Addr
	copy(a[:], b)
	return a, nil
}
