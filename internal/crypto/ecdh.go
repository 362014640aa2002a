package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
)

// NewX25519Keypair draws a fresh X25519 keypair.
func NewX25519Keypair() (pub, priv [32]byte, err error) {
	key, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return pub, priv, fmt.Errorf("generating x25519 key: %w", err)
	}
	copy(priv[:], key.Bytes())
	copy(pub[:], key.PublicKey().Bytes())
	return pub, priv, nil
}

// X25519KeypairFromSecret rebuilds the public key for a known secret
// scalar. Derivation must be deterministic so both ends of an exchange
// reach the same keys.
func X25519KeypairFromSecret(secret [32]byte) (pub [32]byte, err error) {
	key, err := ecdh.X25519().NewPrivateKey(secret[:])
	if err != nil {
		return pub, fmt.Errorf("loading x25519 secret: %w", err)
	}
	copy(pub[:], key.PublicKey().Bytes())
	return pub, nil
}

// SharedSecret computes the X25519 shared secret between a local secret
// key and a peer public key.
func SharedSecret(priv, peerPub [32]byte) ([32]byte, error) {
	var out [32]byte
	key, err := ecdh.X25519().NewPrivateKey(priv[:])
	if err != nil {
		return out, fmt.Errorf("loading x25519 secret: %w", err)
	}
	peer, err := ecdh.X25519().NewPublicKey(peerPub[:])
	if err != nil {
		return out, fmt.Errorf("loading peer public key: %w", err)
	}
	shared, err := key.ECDH(peer)
	if err != nil {
		return out, fmt.Errorf("x25519 agreement: %w", err)
	}
	copy(out[:], shared)
	return out, nil
}
