package service

import (
	"time"

	"velo-relay/internal/core/domain"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/rs/zerolog"
)

// NoteProver produces an opaque ownership proof for a freshly issued
// note. The blob is handed to the depositor alongside the secret
// material; the chain program is the verifier of record.
type NoteProver interface {
	Prove(secret, nullifier, commitment, nullifierHash [32]byte) ([]byte, error)
}

// NoteServiceImpl implements ports.NoteService.
type NoteServiceImpl struct {
	hasher crypto.NoteHasher
	prover NoteProver // nil disables proof generation
	log    zerolog.Logger
}

// NewNoteService creates a new NoteServiceImpl.
func NewNoteService(hasher crypto.NoteHasher, prover NoteProver, log zerolog.Logger) *NoteServiceImpl {
	return &NoteServiceImpl{hasher: hasher, prover: prover, log: log}
}

// Generate draws fresh secret material and computes the commitment the
// depositor submits on chain. The note itself never leaves the caller.
func (s *NoteServiceImpl) Generate(pool domain.PoolSize) (*domain.Note, error) {
	denomination := pool.Denomination()
	if denomination == 0 {
		return nil, apperror.ErrUnknownPool()
	}

	secret, err := crypto.RandomBytes32()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	nullifier, err := crypto.RandomBytes32()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	note := &domain.Note{
		Secret:       secret,
		Nullifier:    nullifier,
		Commitment:   s.hasher.Commitment(secret, nullifier),
		Denomination: denomination,
		PoolSize:     pool,
		CreatedAt:    time.Now().UTC(),
	}

	if s.prover != nil {
		proof, err := s.prover.Prove(secret, nullifier, note.Commitment, s.hasher.NullifierHash(nullifier))
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		note.Proof = proof
	}

	s.log.Debug().
		Str("pool", string(pool)).
		Uint64("denomination", denomination).
		Msg("note generated")

	return note, nil
}
