package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyVaultRepo_Store(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyVaultRepo(mock)

	mock.ExpectExec("INSERT INTO key_vault").
		WithArgs("intermediate-pubkey", []byte("sealed"), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Store(context.Background(), "intermediate-pubkey", []byte("sealed"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyVaultRepo_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyVaultRepo(mock)

	mock.ExpectQuery("SELECT encrypted_secret FROM key_vault").
		WithArgs("intermediate-pubkey").
		WillReturnRows(pgxmock.NewRows([]string{"encrypted_secret"}).AddRow([]byte("sealed")))

	secret, err := repo.Load(context.Background(), "intermediate-pubkey")
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), secret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyVaultRepo_Load_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyVaultRepo(mock)

	mock.ExpectQuery("SELECT encrypted_secret FROM key_vault").
		WithArgs("unknown").
		WillReturnRows(pgxmock.NewRows([]string{"encrypted_secret"}))

	secret, err := repo.Load(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, secret)
	assert.NoError(t, mock.ExpectationsWereMet())
}
