// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import "github.com/cardano-go/corvid/cbor"

const (
	attributeKeyStake      = 0
	attributeKeyDerivation = 1
	attributeKeyMagic      = 2
)

// Attributes carries the optional extras attached to an address: who
// receives its stake, an encrypted HD derivation path, and — for
// non-mainnet addresses — the network's protocol magic.
type Attributes struct {
	StakeDistribution StakeDistribution
	// DerivationPath holds the raw bytes of an encrypted HD address
	// payload (see the hdpayload package), or nil if the address carries
	// none.
	DerivationPath []byte
	// NetworkMagic is the minting network's protocol magic, present only
	// on addresses built for a non-mainnet network.
	NetworkMagic *int32
}

// WithNetworkMagic returns a copy of a with its network-magic attribute
// set to magic, for addresses minted on a non-mainnet network.
func (a Attributes) WithNetworkMagic(magic int32) Attributes {
	a.NetworkMagic = &magic
	return a
}

func encodeAttributeInt32(s *cbor.Serializer, v int32) {
	if v >= 0 {
		s.WriteUnsignedInteger(uint64(v))
	} else {
		s.WriteNegativeInteger(int64(v))
	}
}

func decodeAttributeInt32(d *cbor.Deserializer) (int32, error) {
	t, err := d.CBORType()
	if err != nil {
		return 0, err
	}
	if t == cbor.TypeNegativeInteger {
		v, err := d.ReadNegativeInteger()
		return int32(v), err
	}
	v, err := d.ReadUnsignedInteger()
	return int32(v), err
}

// NewBootstrapEraAttributes builds the Attributes of a pre-delegation
// address, optionally carrying an encrypted derivation path.
func NewBootstrapEraAttributes(derivationPath []byte) Attributes {
	return Attributes{StakeDistribution: BootstrapEraDistribution(), DerivationPath: derivationPath}
}

// NewSingleKeyAttributes builds the Attributes of an address whose stake
// is assigned to a single stakeholder, optionally carrying an encrypted
// derivation path.
func NewSingleKeyAttributes(id StakeholderId, derivationPath []byte) Attributes {
	return Attributes{StakeDistribution: SingleKeyDistribution(id), DerivationPath: derivationPath}
}

func (a Attributes) encode(s *cbor.Serializer) error {
	n := uint64(0)
	if !a.StakeDistribution.IsBootstrapEra() {
		n++
	}
	if a.DerivationPath != nil {
		n++
	}
	if a.NetworkMagic != nil {
		n++
	}

	s.WriteMapLen(cbor.Definite(n))
	if !a.StakeDistribution.IsBootstrapEra() {
		s.WriteUnsignedInteger(attributeKeyStake)
		a.StakeDistribution.encode(s)
	}
	if a.DerivationPath != nil {
		s.WriteUnsignedInteger(attributeKeyDerivation)
		inner := cbor.NewSerializer()
		inner.WriteBytes(a.DerivationPath)
		s.WriteBytes(inner.Bytes())
	}
	if a.NetworkMagic != nil {
		s.WriteUnsignedInteger(attributeKeyMagic)
		inner := cbor.NewSerializer()
		encodeAttributeInt32(inner, *a.NetworkMagic)
		s.WriteBytes(inner.Bytes())
	}
	return nil
}

func decodeAttributes(d *cbor.Deserializer) (Attributes, error) {
	n, err := d.ReadMapLen()
	if err != nil {
		return Attributes{}, err
	}
	if n.Indefinite {
		return Attributes{}, ErrUnknownAttributeKey
	}

	out := Attributes{StakeDistribution: BootstrapEraDistribution()}
	for i := uint64(0); i < n.Value; i++ {
		key, err := d.ReadUnsignedInteger()
		if err != nil {
			return Attributes{}, err
		}
		switch key {
		case attributeKeyStake:
			sd, err := decodeStakeDistribution(d)
			if err != nil {
				return Attributes{}, err
			}
			out.StakeDistribution = sd
		case attributeKeyDerivation:
			outer, err := d.ReadBytes()
			if err != nil {
				return Attributes{}, err
			}
			inner := cbor.NewDeserializer(outer)
			var path []byte
			err = inner.DeserializeComplete(func(inner *cbor.Deserializer) error {
				path, err = inner.ReadBytes()
				return err
			})
			if err != nil {
				return Attributes{}, err
			}
			out.DerivationPath = path
		case attributeKeyMagic:
			outer, err := d.ReadBytes()
			if err != nil {
				return Attributes{}, err
			}
			inner := cbor.NewDeserializer(outer)
			var magic int32
			err = inner.DeserializeComplete(func(inner *cbor.Deserializer) error {
				magic, err = decodeAttributeInt32(inner)
				return err
			})
			if err != nil {
				return Attributes{}, err
			}
			out.NetworkMagic = &magic
		default:
			return Attributes{}, ErrUnknownAttributeKey
		}
	}
	return out, nil
}
