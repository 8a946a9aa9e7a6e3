// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements Byron-era Cardano addresses: the
// AddrType/SpendingData/Attributes triple that gets hashed into an Addr,
// and the ExtendedAddr envelope (CBOR + CRC32, base58 text form) that
// carries it on the wire.
package address

import "github.com/cardano-go/corvid/cbor"

// AddrType discriminates what kind of key can spend funds sent to an
// address.
type AddrType uint8

const (
	ATPubKey AddrType = 0
	ATScript AddrType = 1
	ATRedeem AddrType = 2
)

func (t AddrType) String() string {
	switch t {
	case ATPubKey:
		return "PubKey"
	case ATScript:
		return "Script"
	case ATRedeem:
		return "Redeem"
	default:
		return "Unknown"
	}
}

func addrTypeFromUint64(v uint64) (AddrType, error) {
	switch v {
	case 0:
		return ATPubKey, nil
	case 1:
		return ATScript, nil
	case 2:
		return ATRedeem, nil
	default:
		return 0, ErrUnknownAddrType
	}
}

func (t AddrType) encode(s *cbor.Serializer) {
	s.WriteUnsignedInteger(uint64(t))
}

func decodeAddrType(d *cbor.Deserializer) (AddrType, error) {
	v, err := d.ReadUnsignedInteger()
	if err != nil {
		return 0, err
	}
	return addrTypeFromUint64(v)
}
