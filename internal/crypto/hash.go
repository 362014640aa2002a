package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	mimcNative "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// NoteHasher computes note commitments and nullifier hashes. It is an
// interface so the protocol logic never depends on a concrete primitive;
// swapping in a different ZK-friendly hash touches nothing else.
type NoteHasher interface {
	// Commitment is H(secret ‖ nullifier). The argument order is a fixed
	// contract shared with every issued note.
	Commitment(secret, nullifier [32]byte) [32]byte
	// NullifierHash is H(nullifier), the value recorded on spend.
	NullifierHash(nullifier [32]byte) [32]byte
}

// MiMCHasher implements NoteHasher over MiMC on the BN254 scalar field,
// the same hash the withdraw circuit constrains.
type MiMCHasher struct{}

// NewMiMCHasher creates the default note hasher.
func NewMiMCHasher() *MiMCHasher {
	return &MiMCHasher{}
}

// Commitment hashes secret then nullifier, each reduced into the field.
func (MiMCHasher) Commitment(secret, nullifier [32]byte) [32]byte {
	h := mimcNative.NewMiMC()
	h.Write(toFieldBytes(secret))
	h.Write(toFieldBytes(nullifier))
	return sum32(h.Sum(nil))
}

// NullifierHash hashes the nullifier alone.
func (MiMCHasher) NullifierHash(nullifier [32]byte) [32]byte {
	h := mimcNative.NewMiMC()
	h.Write(toFieldBytes(nullifier))
	return sum32(h.Sum(nil))
}

// toFieldBytes maps 32 arbitrary bytes onto a canonical BN254 scalar.
// MiMC rejects non-reduced blocks, so raw RNG output must be reduced
// before hashing. The reduction is applied identically on both the
// prover and verifier sides.
func toFieldBytes(b [32]byte) []byte {
	var e fr.Element
	e.SetBytes(b[:])
	return e.Marshal()
}

func sum32(b []byte) [32]byte {
	var out [32]byte
	copy(out[32-len(b):], b)
	return out
}
