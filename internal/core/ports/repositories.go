package ports

import (
	"context"
	"time"

	"velo-relay/internal/core/domain"

	"github.com/google/uuid"
)

// NullifierRepository is the durable, append-only spent-nullifier set.
// It must be backed by a shared transactional store in multi-instance
// deployments; process-local memory cannot give the exactly-once
// guarantee.
type NullifierRepository interface {
	HasBeenSpent(ctx context.Context, nullifierHash [32]byte) (bool, error)
	// MarkSpent inserts the tombstone. Insertion is insert-if-absent: a
	// concurrent duplicate returns apperror.ErrAlreadySpent and the loser
	// must not submit another chain transaction. Called only after
	// positive on-chain confirmation.
	MarkSpent(ctx context.Context, rec *domain.NullifierRecord) error
}

// NullifierGuard serializes in-flight withdrawals per nullifier hash
// before any chain I/O happens. It is advisory and fast; the repository
// unique constraint remains the durable arbiter.
type NullifierGuard interface {
	// Acquire returns true if this caller now holds the guard.
	Acquire(ctx context.Context, nullifierHash [32]byte, ttl time.Duration) (bool, error)
	Release(ctx context.Context, nullifierHash [32]byte) error
}

// TransferRepository persists pending confidential transfers.
type TransferRepository interface {
	Create(ctx context.Context, t *domain.PendingConfidentialTransfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingConfidentialTransfer, error)
	ListUnclaimedByRecipient(ctx context.Context, recipient string) ([]domain.PendingConfidentialTransfer, error)
	// MarkClaimed flips claimed exactly once; a second claim returns
	// apperror.ErrTransferAlreadyClaimed.
	MarkClaimed(ctx context.Context, id uuid.UUID) error
}

// KeyVault durably retains encrypted single-use wallet secrets. A hop
// job's intermediate key must survive process restarts between funding
// and forwarding; losing it strands the funds permanently.
type KeyVault interface {
	Store(ctx context.Context, pubkey string, encryptedSecret []byte) error
	Load(ctx context.Context, pubkey string) ([]byte, error)
}

// HopJobRepository persists multi-hop router jobs.
type HopJobRepository interface {
	Create(ctx context.Context, job *domain.HopJob) error
	Update(ctx context.Context, job *domain.HopJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HopJob, error)
	// ListNonTerminal returns every job that has not reached COMPLETE or
	// FAILED. The router replays these on startup; funds sit on the
	// intermediate wallet until the forward hop lands.
	ListNonTerminal(ctx context.Context) ([]domain.HopJob, error)
}
