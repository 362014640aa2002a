package postgres

import (
	"context"
	"errors"
	"fmt"

	"velo-relay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HopJobRepo implements ports.HopJobRepository.
type HopJobRepo struct {
	pool Pool
}

// NewHopJobRepo creates a new HopJobRepo.
func NewHopJobRepo(pool Pool) *HopJobRepo {
	return &HopJobRepo{pool: pool}
}

// Create inserts a new hop job.
func (r *HopJobRepo) Create(ctx context.Context, job *domain.HopJob) error {
	query := `INSERT INTO hop_jobs (id, pool_size, final_recipient, state, intermediate_pubkey,
		withdraw_signature, forward_signature, forward_amount, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, string(job.PoolSize), job.FinalRecipient, string(job.State), job.IntermediatePubkey,
		job.WithdrawSignature, job.ForwardSignature, int64(job.ForwardAmount), job.FailureReason,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hop job: %w", err)
	}
	return nil
}

// Update rewrites a hop job's mutable fields.
func (r *HopJobRepo) Update(ctx context.Context, job *domain.HopJob) error {
	query := `UPDATE hop_jobs SET state = $1, withdraw_signature = $2, forward_signature = $3,
		forward_amount = $4, failure_reason = $5, updated_at = $6 WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		string(job.State), job.WithdrawSignature, job.ForwardSignature,
		int64(job.ForwardAmount), job.FailureReason, job.UpdatedAt, job.ID,
	)
	if err != nil {
		return fmt.Errorf("update hop job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hop job not found: %s", job.ID)
	}
	return nil
}

// ListNonTerminal returns every job still short of a terminal state,
// oldest first.
func (r *HopJobRepo) ListNonTerminal(ctx context.Context) ([]domain.HopJob, error) {
	query := `SELECT id, pool_size, final_recipient, state, intermediate_pubkey,
		withdraw_signature, forward_signature, forward_amount, failure_reason, created_at, updated_at
		FROM hop_jobs WHERE state NOT IN ($1, $2) ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, string(domain.HopStateComplete), string(domain.HopStateFailed))
	if err != nil {
		return nil, fmt.Errorf("list non-terminal hop jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.HopJob
	for rows.Next() {
		var job domain.HopJob
		var poolSize, state string
		var forwardAmount int64
		if err := rows.Scan(
			&job.ID, &poolSize, &job.FinalRecipient, &state, &job.IntermediatePubkey,
			&job.WithdrawSignature, &job.ForwardSignature, &forwardAmount, &job.FailureReason,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hop job: %w", err)
		}
		job.PoolSize = domain.PoolSize(poolSize)
		job.State = domain.HopState(state)
		job.ForwardAmount = uint64(forwardAmount)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list non-terminal hop jobs: %w", err)
	}
	return jobs, nil
}

// GetByID fetches a hop job, or nil when absent.
func (r *HopJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.HopJob, error) {
	query := `SELECT id, pool_size, final_recipient, state, intermediate_pubkey,
		withdraw_signature, forward_signature, forward_amount, failure_reason, created_at, updated_at
		FROM hop_jobs WHERE id = $1`

	job := &domain.HopJob{}
	var poolSize, state string
	var forwardAmount int64
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID, &poolSize, &job.FinalRecipient, &state, &job.IntermediatePubkey,
		&job.WithdrawSignature, &job.ForwardSignature, &forwardAmount, &job.FailureReason,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hop job: %w", err)
	}
	job.PoolSize = domain.PoolSize(poolSize)
	job.State = domain.HopState(state)
	job.ForwardAmount = uint64(forwardAmount)
	return job, nil
}
