// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdpayload encrypts and decrypts the HD derivation path carried
// inside an address's attributes. The path is opaque to anyone but the
// wallet that owns the root key: only that wallet can recover which
// account and address index an address belongs to.
package hdpayload

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/hdkeychain"
)

// nonce is the fixed 12-byte ChaCha20-Poly1305 nonce used for every
// address payload. Reusing a nonce is normally fatal for an AEAD scheme,
// but it is safe here: the key is unique per wallet (derived from that
// wallet's root XPub) and the "message" is never a secret an attacker
// chooses, only a small derivation path. The constant nonce is what makes
// encryption deterministic, which address-discovery code relies on.
var nonce = []byte("serokellfore")

// ErrCannotDecrypt is returned when a payload does not decrypt under the
// given key, meaning either it belongs to a different wallet or it is
// not a valid HD address payload at all.
var ErrCannotDecrypt = errors.New("hdpayload: cannot decrypt payload")

// Path is a BIP44-style HD derivation path: typically [account, index],
// but the legacy Daedalus scheme may encode longer paths.
type Path []uint32

// Key is the symmetric key used to encrypt and decrypt address payloads
// for one wallet, derived from that wallet's root extended public key.
type Key struct {
	aead cipherAEAD
}

// cipherAEAD is the subset of cipher.AEAD that Key needs; kept as its own
// type so Key's zero value doesn't leak the chacha20poly1305 package into
// every caller's import list.
type cipherAEAD interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

// DeriveKey computes the address-payload key for a wallet rooted at root:
// HMAC-SHA512(root, "address-hashing"), truncated to the first 32 bytes
// and used directly as a ChaCha20-Poly1305 key.
func DeriveKey(root hdkeychain.XPub) (Key, error) {
	mac := hmac.New(sha512.New, root[:])
	mac.Write([]byte("address-hashing"))
	sum := mac.Sum(nil)

	aead, err := chacha20poly1305.New(sum[:chacha20poly1305.KeySize])
	if err != nil {
		return Key{}, err
	}
	return Key{aead: aead}, nil
}

// Encrypt seals path into an opaque address payload. The same path
// encrypts to the same bytes every time under the same key, by design:
// see the nonce comment above.
func (k Key) Encrypt(path Path) []byte {
	return k.aead.Seal(nil, nonce, encodePath(path), nil)
}

// Decrypt recovers the derivation path sealed in payload. It returns
// ErrCannotDecrypt if payload was not produced by Encrypt under this same
// key — an authenticated failure, never a silent mis-decode.
func (k Key) Decrypt(payload []byte) (Path, error) {
	plaintext, err := k.aead.Open(nil, nonce, payload, nil)
	if err != nil {
		return nil, ErrCannotDecrypt
	}
	path, err := decodePath(plaintext)
	if err != nil {
		return nil, ErrCannotDecrypt
	}
	return path, nil
}

// encodePath CBOR-encodes path as a definite-length array of unsigned
// integers.
func encodePath(path Path) []byte {
	s := cbor.NewSerializer()
	s.WriteArrayLen(cbor.Definite(uint64(len(path))))
	for _, idx := range path {
		s.WriteUnsignedInteger(uint64(idx))
	}
	return s.Bytes()
}

// decodePath is the inverse of encodePath.
func decodePath(buf []byte) (Path, error) {
	d := cbor.NewDeserializer(buf)
	var path Path
	err := d.DeserializeComplete(func(d *cbor.Deserializer) error {
		n, err := d.ReadArrayLen()
		if err != nil {
			return err
		}
		path = make(Path, 0, n.Value)
		for i := uint64(0); i < n.Value; i++ {
			v, err := d.ReadUnsignedInteger()
			if err != nil {
				return err
			}
			path = append(path, uint32(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}
