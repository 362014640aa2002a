package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
)

// RandomBytes32 draws 32 bytes from the CSPRNG.
func RandomBytes32() ([32]byte, error) {
	var b [32]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		return b, fmt.Errorf("reading random bytes: %w", err)
	}
	return b, nil
}

// KeypairFromSeed derives an ed25519 keypair deterministically from a
// 32-byte seed. Stealth derivation relies on both parties reaching the
// same keypair from the same seed, byte for byte.
func KeypairFromSeed(seed [32]byte) ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(seed[:])
}

// NewKeypair draws a fresh ed25519 keypair.
func NewKeypair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating ed25519 key: %w", err)
	}
	return pub, priv, nil
}

// EncodeAddress renders a 32-byte public key as a base58 chain address.
func EncodeAddress(pub []byte) string {
	return base58.Encode(pub)
}

// DecodeAddress parses a base58 chain address into its 32 raw bytes.
func DecodeAddress(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := base58.Decode(s)
	if err != nil {
		return out, fmt.Errorf("decoding address: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("address must be 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// DecodeKeypair parses a base58-encoded 64-byte ed25519 keypair (the
// standard wallet export format).
func DecodeKeypair(s string) (ed25519.PrivateKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding keypair: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("keypair must be %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	return ed25519.PrivateKey(raw), nil
}
