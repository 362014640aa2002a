package zkproof

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Prover holds the compiled withdraw circuit and its Groth16 keys.
// Setup is a single-party ceremony run at startup; a production
// deployment would load keys from a real trusted setup instead.
type Prover struct {
	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
	vk  groth16.VerifyingKey
}

// NewProver compiles the withdraw circuit and runs the Groth16 setup.
func NewProver() (*Prover, error) {
	var circuit WithdrawCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("compiling withdraw circuit: %w", err)
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup: %w", err)
	}
	return &Prover{ccs: ccs, pk: pk, vk: vk}, nil
}

// fieldBig maps 32 raw bytes into the BN254 scalar field, matching the
// reduction the off-circuit MiMC hasher applies to its inputs.
func fieldBig(b [32]byte) *big.Int {
	var e fr.Element
	e.SetBytes(b[:])
	out := new(big.Int)
	e.BigInt(out)
	return out
}

// Prove generates a proof that the caller knows the (secret, nullifier)
// opening of commitment, with nullifierHash bound as a public input.
func (p *Prover) Prove(secret, nullifier, commitment, nullifierHash [32]byte) ([]byte, error) {
	assignment := &WithdrawCircuit{
		Commitment:    fieldBig(commitment),
		NullifierHash: fieldBig(nullifierHash),
		Secret:        fieldBig(secret),
		Nullifier:     fieldBig(nullifier),
	}
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("building witness: %w", err)
	}
	proof, err := groth16.Prove(p.ccs, p.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("groth16 prove: %w", err)
	}
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing proof: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify checks a serialized proof against the public commitment and
// nullifier hash.
func (p *Prover) Verify(proofBytes []byte, commitment, nullifierHash [32]byte) error {
	public := &WithdrawCircuit{
		Commitment:    fieldBig(commitment),
		NullifierHash: fieldBig(nullifierHash),
	}
	w, err := frontend.NewWitness(public, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("building public witness: %w", err)
	}
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("deserializing proof: %w", err)
	}
	return groth16.Verify(proof, p.vk, w)
}
