package postgres

import (
	"context"
	"errors"
	"fmt"

	"velo-relay/internal/core/domain"
	"velo-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create inserts a new pending transfer.
func (r *TransferRepo) Create(ctx context.Context, t *domain.PendingConfidentialTransfer) error {
	query := `INSERT INTO pending_transfers (id, sender, recipient, stealth_wallet_pubkey,
		encrypted_secret_key, enc_amount_commitment, enc_amount_handle, amount_lamports, created_at, claimed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Sender, t.Recipient, t.StealthWalletPubkey,
		t.EncryptedSecretKey, t.EncryptedAmount.Commitment[:], t.EncryptedAmount.Handle,
		int64(t.AmountLamports), t.CreatedAt, t.Claimed,
	)
	if err != nil {
		return fmt.Errorf("insert pending transfer: %w", err)
	}
	return nil
}

// GetByID fetches a pending transfer, or nil when absent.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingConfidentialTransfer, error) {
	query := `SELECT id, sender, recipient, stealth_wallet_pubkey, encrypted_secret_key,
		enc_amount_commitment, enc_amount_handle, amount_lamports, created_at, claimed
		FROM pending_transfers WHERE id = $1`

	t, err := scanTransfer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending transfer: %w", err)
	}
	return t, nil
}

// ListUnclaimedByRecipient returns a recipient's claimable transfers.
func (r *TransferRepo) ListUnclaimedByRecipient(ctx context.Context, recipient string) ([]domain.PendingConfidentialTransfer, error) {
	query := `SELECT id, sender, recipient, stealth_wallet_pubkey, encrypted_secret_key,
		enc_amount_commitment, enc_amount_handle, amount_lamports, created_at, claimed
		FROM pending_transfers WHERE recipient = $1 AND claimed = FALSE ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, recipient)
	if err != nil {
		return nil, fmt.Errorf("list pending transfers: %w", err)
	}
	defer rows.Close()

	var out []domain.PendingConfidentialTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending transfer: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// MarkClaimed flips claimed exactly once. The conditional update makes
// the race between two claimers resolve in the database.
func (r *TransferRepo) MarkClaimed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE pending_transfers SET claimed = TRUE WHERE id = $1 AND claimed = FALSE`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark transfer claimed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.ErrTransferNotFound()
		}
		return apperror.ErrTransferAlreadyClaimed()
	}
	return nil
}

func scanTransfer(row pgx.Row) (*domain.PendingConfidentialTransfer, error) {
	t := &domain.PendingConfidentialTransfer{}
	var commitment []byte
	var amount int64
	err := row.Scan(
		&t.ID, &t.Sender, &t.Recipient, &t.StealthWalletPubkey, &t.EncryptedSecretKey,
		&commitment, &t.EncryptedAmount.Handle, &amount, &t.CreatedAt, &t.Claimed,
	)
	if err != nil {
		return nil, err
	}
	copy(t.EncryptedAmount.Commitment[:], commitment)
	t.AmountLamports = uint64(amount)
	return t, nil
}
