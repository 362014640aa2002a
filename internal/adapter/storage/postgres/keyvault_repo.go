package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// KeyVaultRepo implements ports.KeyVault. Secrets arrive already
// encrypted; rows are kept after use so a crashed forward hop can always
// be replayed.
type KeyVaultRepo struct {
	pool Pool
}

// NewKeyVaultRepo creates a new KeyVaultRepo.
func NewKeyVaultRepo(pool Pool) *KeyVaultRepo {
	return &KeyVaultRepo{pool: pool}
}

// Store persists an encrypted wallet secret keyed by its public key.
func (r *KeyVaultRepo) Store(ctx context.Context, pubkey string, encryptedSecret []byte) error {
	query := `INSERT INTO key_vault (pubkey, encrypted_secret, created_at) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, pubkey, encryptedSecret, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store vault key: %w", err)
	}
	return nil
}

// Load fetches an encrypted wallet secret, or nil when absent.
func (r *KeyVaultRepo) Load(ctx context.Context, pubkey string) ([]byte, error) {
	query := `SELECT encrypted_secret FROM key_vault WHERE pubkey = $1`

	var secret []byte
	err := r.pool.QueryRow(ctx, query, pubkey).Scan(&secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load vault key: %w", err)
	}
	return secret, nil
}
