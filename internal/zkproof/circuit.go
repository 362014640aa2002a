package zkproof

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// WithdrawCircuit proves knowledge of a note's preimage without
// revealing it. The verifier learns only the commitment and the
// nullifier hash.
type WithdrawCircuit struct {
	// Public
	Commitment    frontend.Variable `gnark:",public"`
	NullifierHash frontend.Variable `gnark:",public"`

	// Private
	Secret    frontend.Variable
	Nullifier frontend.Variable
}

func (c *WithdrawCircuit) Define(api frontend.API) error {
	// (1) Commitment binds secret and nullifier
	hasher, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	hasher.Write(c.Secret)
	hasher.Write(c.Nullifier)
	api.AssertIsEqual(c.Commitment, hasher.Sum())

	// (2) Nullifier hash derives from the nullifier alone
	hasher.Reset()
	hasher.Write(c.Nullifier)
	api.AssertIsEqual(c.NullifierHash, hasher.Sum())

	return nil
}
