package chain

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"velo-relay/internal/core/domain"
)

// SystemProgramID is the native transfer program (32 zero bytes).
const SystemProgramID = "11111111111111111111111111111111"

// PDA seed strings fixed by the deployed program. The program performs
// no schema negotiation; these must match byte for byte.
const (
	seedPool        = "velo_pool"
	seedVault       = "velo_vault"
	seedNullifier   = "nullifier"
	seedRelayer     = "relayer"
	seedDecoyConfig = "decoy_config"
	seedDecoyVault  = "decoy_vault"
)

const pdaMarker = "ProgramDerivedAddress"

// AccountMeta describes one account reference in an instruction.
type AccountMeta struct {
	Pubkey   [32]byte
	IsSigner bool
	Writable bool
}

// Instruction is a single program invocation: target program, account
// list, and a fixed-width byte payload.
type Instruction struct {
	ProgramID [32]byte
	Accounts  []AccountMeta
	Data      []byte
}

// Discriminator returns the 8-byte Anchor instruction discriminator:
// the first 8 bytes of SHA256("global:<name>").
func Discriminator(name string) [8]byte {
	var out [8]byte
	sum := sha256.Sum256([]byte("global:" + name))
	copy(out[:], sum[:8])
	return out
}

// poolSeeds returns the PDA seeds for a pool-level account: the seed
// string plus the denomination as little-endian u64 bytes.
func poolSeeds(prefix string, pool domain.PoolSize) [][]byte {
	var denom [8]byte
	binary.LittleEndian.PutUint64(denom[:], pool.Denomination())
	return [][]byte{[]byte(prefix), denom[:]}
}

// DerivePDA finds the program-derived address for the given seeds: the
// highest bump whose candidate hash is off the ed25519 curve.
func DerivePDA(seeds [][]byte, programID [32]byte) ([32]byte, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{uint8(bump)})
		h.Write(programID[:])
		h.Write([]byte(pdaMarker))

		var candidate [32]byte
		copy(candidate[:], h.Sum(nil))
		if !isOnCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return [32]byte{}, 0, errors.New("no viable bump for PDA seeds")
}

// isOnCurve reports whether b decodes to a valid ed25519 point. PDAs
// must not, so nobody holds a signing key for them.
func isOnCurve(b [32]byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b[:])
	return err == nil
}

// decodeKey parses a base58 address into raw bytes.
func decodeKey(address string) ([32]byte, error) {
	var out [32]byte
	raw, err := base58.Decode(address)
	if err != nil {
		return out, fmt.Errorf("decoding %q: %w", address, err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("address %q is %d bytes, want 32", address, len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
