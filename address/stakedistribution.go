// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import "github.com/cardano-go/corvid/cbor"

const (
	stakeDistributionTagSingleKey = 0
	stakeDistributionTagBootstrap = 1
)

// StakeDistribution names who receives the stake attached to an address.
// The zero value is BootstrapEra, matching every address minted before
// decentralized stake delegation existed.
type StakeDistribution struct {
	singleKey *StakeholderId
}

// BootstrapEraDistribution returns the stake distribution used by every
// address minted before delegation: stake follows the network's
// bootstrap stakeholders, not a key named in the address itself.
func BootstrapEraDistribution() StakeDistribution { return StakeDistribution{} }

// SingleKeyDistribution returns the stake distribution that assigns an
// address's stake entirely to id.
func SingleKeyDistribution(id StakeholderId) StakeDistribution {
	return StakeDistribution{singleKey: &id}
}

// IsBootstrapEra reports whether d is the bootstrap-era distribution.
func (d StakeDistribution) IsBootstrapEra() bool { return d.singleKey == nil }

// StakeholderId returns d's stakeholder id and true, or the zero id and
// false if d is the bootstrap-era distribution.
func (d StakeDistribution) StakeholderId() (StakeholderId, bool) {
	if d.singleKey == nil {
		return StakeholderId{}, false
	}
	return *d.singleKey, true
}

// encode writes d as a CBOR-in-CBOR blob: a byte string whose content is
// itself a CBOR array, `[1]` for the bootstrap era or `[0, id]` for a
// named stakeholder.
func (d StakeDistribution) encode(s *cbor.Serializer) {
	inner := cbor.NewSerializer()
	if d.singleKey == nil {
		inner.WriteArrayLen(cbor.Definite(1))
		inner.WriteUnsignedInteger(stakeDistributionTagBootstrap)
	} else {
		inner.WriteArrayLen(cbor.Definite(2))
		inner.WriteUnsignedInteger(stakeDistributionTagSingleKey)
		d.singleKey.encode(inner)
	}
	s.WriteBytes(inner.Bytes())
}

func decodeStakeDistribution(d *cbor.Deserializer) (StakeDistribution, error) {
	raw, err := d.ReadBytes()
	if err != nil {
		return StakeDistribution{}, err
	}
	inner := cbor.NewDeserializer(raw)
	var out StakeDistribution
	err = inner.DeserializeComplete(func(inner *cbor.Deserializer) error {
		n, err := inner.ReadArrayLen()
		if err != nil {
			return err
		}
		tag, err := inner.ReadUnsignedInteger()
		if err != nil {
			return err
		}
		switch tag {
		case stakeDistributionTagBootstrap:
			if n.Value != 1 {
				return ErrUnknownStakeDistributionTag
			}
			out = BootstrapEraDistribution()
		case stakeDistributionTagSingleKey:
			if n.Value != 2 {
				return ErrUnknownStakeDistributionTag
			}
			id, err := decodeStakeholderId(inner)
			if err != nil {
				return err
			}
			out = SingleKeyDistribution(id)
		default:
			return ErrUnknownStakeDistributionTag
		}
		return nil
	})
	return out, err
}
