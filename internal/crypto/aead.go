package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD authenticated-encrypts small payloads under a 32-byte key. It is
// injectable so a production primitive can replace the default without
// touching protocol logic.
type AEAD interface {
	Seal(key [32]byte, plaintext, aad []byte) ([]byte, error)
	Open(key [32]byte, ciphertext, aad []byte) ([]byte, error)
}

// XChaChaAEAD implements AEAD with XChaCha20-Poly1305. Output layout is
// nonce ‖ ciphertext ‖ tag.
type XChaChaAEAD struct{}

// NewXChaChaAEAD creates the default AEAD.
func NewXChaChaAEAD() *XChaChaAEAD {
	return &XChaChaAEAD{}
}

// Seal encrypts plaintext with a random nonce prepended to the output.
func (XChaChaAEAD) Seal(key [32]byte, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating aead: %w", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, aad), nil
}

// Open decrypts a nonce-prefixed ciphertext. Authentication failure is
// an error, not a panic; callers decide whether it is fatal.
func (XChaChaAEAD) Open(key [32]byte, ciphertext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating aead: %w", err)
	}
	if len(ciphertext) < chacha20poly1305.NonceSizeX {
		return nil, errors.New("ciphertext too short")
	}
	nonce := ciphertext[:chacha20poly1305.NonceSizeX]
	return aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSizeX:], aad)
}
