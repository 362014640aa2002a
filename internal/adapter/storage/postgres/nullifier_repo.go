package postgres

import (
	"context"
	"fmt"

	"velo-relay/internal/core/domain"
	"velo-relay/pkg/apperror"
)

// NullifierRepo implements ports.NullifierRepository. The nullifiers
// table carries a unique constraint on nullifier_hash; that constraint,
// not application logic, is what makes marking exactly-once under
// concurrency.
type NullifierRepo struct {
	pool Pool
}

// NewNullifierRepo creates a new NullifierRepo.
func NewNullifierRepo(pool Pool) *NullifierRepo {
	return &NullifierRepo{pool: pool}
}

// HasBeenSpent checks for an existing tombstone.
func (r *NullifierRepo) HasBeenSpent(ctx context.Context, nullifierHash [32]byte) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM nullifiers WHERE nullifier_hash = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, nullifierHash[:]).Scan(&exists); err != nil {
		return false, fmt.Errorf("check nullifier spent: %w", err)
	}
	return exists, nil
}

// MarkSpent inserts the tombstone. A duplicate insert means another
// withdrawal already landed for this nullifier: the caller gets
// ErrAlreadySpent and must not submit again. Rows are never updated or
// deleted.
func (r *NullifierRepo) MarkSpent(ctx context.Context, rec *domain.NullifierRecord) error {
	query := `INSERT INTO nullifiers (nullifier_hash, pool_size, used_at, relay_tx_signature)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		rec.NullifierHash[:], string(rec.PoolSize), rec.UsedAt, rec.RelayTxSignature,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrAlreadySpent()
		}
		return fmt.Errorf("insert nullifier: %w", err)
	}
	return nil
}
