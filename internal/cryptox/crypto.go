// Package cryptox seals small secrets (bearer tokens) for storage at rest.
//
// Keys are derived from an operator-supplied passphrase with Argon2id; data
// is encrypted with AES-256-GCM and the random nonce is prepended to the
// ciphertext so a single blob can be stored per value.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/formsclient/internal/common"
	"golang.org/x/crypto/argon2"
)

// KeySize is the length of keys returned by DeriveKey (AES-256).
const KeySize = 32

var ErrSealedTooShort = errors.New("sealed value too short")

// DeriveKey stretches passphrase with Argon2id into a KeySize-byte key.
// The same (passphrase, salt) pair always yields the same key.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with key and returns nonce||ciphertext.
func Seal(plaintext []byte, key []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. It fails if the key is wrong or the blob was modified.
func Open(sealed []byte, key []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	n := aead.NonceSize()
	if len(sealed) < n {
		return nil, ErrSealedTooShort
	}
	return aead.Open(nil, sealed[:n], sealed[n:], nil)
}
