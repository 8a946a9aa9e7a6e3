// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/dchest/siphash"
)

// witnessCacheKeySize is the size of the byte array required for key
// material for the SipHash keyed shortHash function.
const witnessCacheKeySize = 16

// WitnessCache records which (transaction id, witness) pairs have already
// been verified, so a witness checked once — in a mempool acceptance pass,
// or an earlier validation of the same block — is not Ed25519-verified a
// second time. Entries are evicted at random when the cache is full: an
// attacker who cannot predict Go's map iteration order cannot choose which
// entries get evicted, the same property Bitcoin/Decred's ECDSA signature
// cache relies on.
type WitnessCache struct {
	sync.RWMutex
	verified   map[uint64]struct{}
	maxEntries uint
	key        [witnessCacheKeySize]byte
}

// NewWitnessCache creates a WitnessCache holding at most maxEntries
// verified (txid, witness) pairs.
func NewWitnessCache(maxEntries uint) (*WitnessCache, error) {
	var key [witnessCacheKeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, err
	}
	return &WitnessCache{
		verified:   make(map[uint64]struct{}, maxEntries),
		maxEntries: maxEntries,
		key:        key,
	}, nil
}

// shortHash reduces (txid, w) to a 64-bit SipHash-2-4 digest keyed by c's
// random key, for use as a compact, collision-resistant map key.
func (c *WitnessCache) shortHash(txid TxId, w TxInWitness) (uint64, error) {
	wb, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	k0 := binary.LittleEndian.Uint64(c.key[0:8])
	k1 := binary.LittleEndian.Uint64(c.key[8:16])
	buf := make([]byte, 0, len(txid)+len(wb))
	buf = append(buf, txid[:]...)
	buf = append(buf, wb...)
	return siphash.Hash(k0, k1, buf), nil
}

// Exists reports whether w has already been recorded as a valid witness
// over txid.
//
// NOTE: safe for concurrent access; readers are not blocked unless a
// writer is adding an entry.
func (c *WitnessCache) Exists(txid TxId, w TxInWitness) bool {
	h, err := c.shortHash(txid, w)
	if err != nil {
		return false
	}
	c.RLock()
	_, ok := c.verified[h]
	c.RUnlock()
	return ok
}

// Add records w as a verified witness over txid, evicting a random entry
// first if the cache is already at maxEntries.
//
// NOTE: safe for concurrent access; writers block simultaneous readers
// until Add returns.
func (c *WitnessCache) Add(txid TxId, w TxInWitness) {
	h, err := c.shortHash(txid, w)
	if err != nil {
		return
	}
	c.Lock()
	defer c.Unlock()
	if c.maxEntries == 0 {
		return
	}
	if uint(len(c.verified)+1) > c.maxEntries {
		for k := range c.verified {
			delete(c.verified, k)
			break
		}
	}
	c.verified[h] = struct{}{}
}
