package service

import (
	"testing"

	"velo-relay/internal/core/domain"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Generate_Success(t *testing.T) {
	svc := NewNoteService(crypto.NewMiMCHasher(), nil, zerolog.Nop())

	note, err := svc.Generate(domain.PoolMedium)
	require.NoError(t, err)
	require.NotNil(t, note)

	assert.Equal(t, domain.PoolMedium, note.PoolSize)
	assert.Equal(t, domain.DenominationMedium, note.Denomination)
	assert.False(t, note.Used)

	// The commitment must open with the note's own secret material.
	hasher := crypto.NewMiMCHasher()
	assert.Equal(t, hasher.Commitment(note.Secret, note.Nullifier), note.Commitment)
}

func TestNoteService_Generate_UnknownPool(t *testing.T) {
	svc := NewNoteService(crypto.NewMiMCHasher(), nil, zerolog.Nop())

	_, err := svc.Generate(domain.PoolSize("gigantic"))
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POOL_003", appErr.Code)
}

type stubProver struct {
	calls int
}

func (p *stubProver) Prove(secret, nullifier, commitment, nullifierHash [32]byte) ([]byte, error) {
	p.calls++
	return []byte("proof-blob"), nil
}

func TestNoteService_Generate_AttachesProof(t *testing.T) {
	prover := &stubProver{}
	svc := NewNoteService(crypto.NewMiMCHasher(), prover, zerolog.Nop())

	note, err := svc.Generate(domain.PoolSmall)
	require.NoError(t, err)
	assert.Equal(t, []byte("proof-blob"), note.Proof)
	assert.Equal(t, 1, prover.calls)
}

func TestNoteService_Generate_NotesAreUnique(t *testing.T) {
	svc := NewNoteService(crypto.NewMiMCHasher(), nil, zerolog.Nop())

	a, err := svc.Generate(domain.PoolSmall)
	require.NoError(t, err)
	b, err := svc.Generate(domain.PoolSmall)
	require.NoError(t, err)

	assert.NotEqual(t, a.Secret, b.Secret)
	assert.NotEqual(t, a.Nullifier, b.Nullifier)
	assert.NotEqual(t, a.Commitment, b.Commitment)
}
