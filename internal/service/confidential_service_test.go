package service

import (
	"context"
	"crypto/ed25519"
	"testing"

	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/core/ports/mocks"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type confidentialTestDeps struct {
	svc          *ConfidentialServiceImpl
	transferRepo *mocks.MockTransferRepository
	ctrl         *gomock.Controller
}

func setupConfidentialService(t *testing.T) *confidentialTestDeps {
	ctrl := gomock.NewController(t)
	d := &confidentialTestDeps{
		transferRepo: mocks.NewMockTransferRepository(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewConfidentialService(crypto.NewXChaChaAEAD(), d.transferRepo, zerolog.Nop())
	return d
}

func TestConfidentialService_DeriveKeypair_Deterministic(t *testing.T) {
	d := setupConfidentialService(t)

	a, err := d.svc.DeriveKeypair([]byte("wallet signature over fixed message"))
	require.NoError(t, err)
	b, err := d.svc.DeriveKeypair([]byte("wallet signature over fixed message"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := d.svc.DeriveKeypair([]byte("a different signature"))
	require.NoError(t, err)
	assert.NotEqual(t, a.SecretKey, c.SecretKey)
}

func TestConfidentialService_DeriveKeypair_EmptyMessage(t *testing.T) {
	d := setupConfidentialService(t)

	_, err := d.svc.DeriveKeypair(nil)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestConfidentialService_EncryptDecryptRoundTrip(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)

	ct, err := d.svc.Encrypt(123_456_789, keys.PublicKey)
	require.NoError(t, err)

	amount := d.svc.Decrypt(ct, keys.SecretKey)
	require.NotNil(t, amount)
	assert.Equal(t, uint64(123_456_789), *amount)
}

func TestConfidentialService_DecryptWithWrongKeyReturnsNil(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)
	wrongKeys, err := d.svc.DeriveKeypair([]byte("attacker signature"))
	require.NoError(t, err)

	ct, err := d.svc.Encrypt(42, keys.PublicKey)
	require.NoError(t, err)

	assert.Nil(t, d.svc.Decrypt(ct, wrongKeys.SecretKey))
}

func TestConfidentialService_DecryptTamperedCiphertextReturnsNil(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)

	ct, err := d.svc.Encrypt(42, keys.PublicKey)
	require.NoError(t, err)
	ct.Handle[len(ct.Handle)-1] ^= 0x01

	assert.Nil(t, d.svc.Decrypt(ct, keys.SecretKey))
}

func TestConfidentialService_Add(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)

	a, err := d.svc.Encrypt(100, keys.PublicKey)
	require.NoError(t, err)
	b, err := d.svc.Encrypt(250, keys.PublicKey)
	require.NoError(t, err)

	sum := d.svc.Add(a, b, keys.SecretKey, keys.PublicKey)
	require.NotNil(t, sum)
	amount := d.svc.Decrypt(sum, keys.SecretKey)
	require.NotNil(t, amount)
	assert.Equal(t, uint64(350), *amount)
}

func TestConfidentialService_AddWithWrongKeyReturnsNil(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)
	wrongKeys, err := d.svc.DeriveKeypair([]byte("attacker signature"))
	require.NoError(t, err)

	a, err := d.svc.Encrypt(100, keys.PublicKey)
	require.NoError(t, err)
	b, err := d.svc.Encrypt(250, keys.PublicKey)
	require.NoError(t, err)

	assert.Nil(t, d.svc.Add(a, b, wrongKeys.SecretKey, keys.PublicKey))
}

func TestConfidentialService_ZeroBalance(t *testing.T) {
	d := setupConfidentialService(t)
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)

	ct, err := d.svc.ZeroBalance(keys.PublicKey)
	require.NoError(t, err)
	amount := d.svc.Decrypt(ct, keys.SecretKey)
	require.NotNil(t, amount)
	assert.Equal(t, uint64(0), *amount)
}

// ==================== Pending Transfer Tests ====================

func TestConfidentialService_CreateAndClaimPendingTransfer(t *testing.T) {
	d := setupConfidentialService(t)
	ctx := context.Background()
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)

	var stored *domain.PendingConfidentialTransfer
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.PendingConfidentialTransfer) error {
			stored = tr
			return nil
		})

	transfer, err := d.svc.CreatePendingTransfer(ctx, ports.PendingTransferRequest{
		Sender:         "sender-wallet",
		Recipient:      "recipient-id",
		AmountLamports: 750_000,
		RecipientPub:   keys.PublicKey,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, transfer.StealthWalletPubkey)
	assert.False(t, transfer.Claimed)

	d.transferRepo.EXPECT().GetByID(ctx, transfer.ID).Return(stored, nil)
	d.transferRepo.EXPECT().MarkClaimed(ctx, transfer.ID).Return(nil)

	result, err := d.svc.ClaimPendingTransfer(ctx, ports.ClaimRequest{
		TransferID: transfer.ID,
		Recipient:  "recipient-id",
		SecretKey:  keys.SecretKey,
	})
	require.NoError(t, err)
	assert.Equal(t, transfer.StealthWalletPubkey, result.StealthWalletPubkey)
	assert.Equal(t, uint64(750_000), result.AmountLamports)

	// The recovered key must control the escrow wallet.
	recovered := crypto.EncodeAddress(result.StealthWalletSecret.Public().(ed25519.PublicKey))
	assert.Equal(t, transfer.StealthWalletPubkey, recovered)
}

func TestConfidentialService_ClaimWithWrongSecretKey(t *testing.T) {
	d := setupConfidentialService(t)
	ctx := context.Background()
	keys, err := d.svc.DeriveKeypair([]byte("recipient signature"))
	require.NoError(t, err)
	wrongKeys, err := d.svc.DeriveKeypair([]byte("attacker signature"))
	require.NoError(t, err)

	var stored *domain.PendingConfidentialTransfer
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.PendingConfidentialTransfer) error {
			stored = tr
			return nil
		})
	transfer, err := d.svc.CreatePendingTransfer(ctx, ports.PendingTransferRequest{
		Sender:         "sender-wallet",
		Recipient:      "recipient-id",
		AmountLamports: 750_000,
		RecipientPub:   keys.PublicKey,
	})
	require.NoError(t, err)

	d.transferRepo.EXPECT().GetByID(ctx, transfer.ID).Return(stored, nil)

	_, err = d.svc.ClaimPendingTransfer(ctx, ports.ClaimRequest{
		TransferID: transfer.ID,
		Recipient:  "recipient-id",
		SecretKey:  wrongKeys.SecretKey,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestConfidentialService_ClaimNotFound(t *testing.T) {
	d := setupConfidentialService(t)
	ctx := context.Background()
	id := uuid.New()

	d.transferRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.ClaimPendingTransfer(ctx, ports.ClaimRequest{
		TransferID: id,
		Recipient:  "recipient-id",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "XFER_001", appErr.Code)
}

func TestConfidentialService_ClaimByWrongRecipientLooksLikeNotFound(t *testing.T) {
	d := setupConfidentialService(t)
	ctx := context.Background()
	id := uuid.New()

	d.transferRepo.EXPECT().GetByID(ctx, id).Return(&domain.PendingConfidentialTransfer{
		ID:        id,
		Recipient: "someone-else",
	}, nil)

	_, err := d.svc.ClaimPendingTransfer(ctx, ports.ClaimRequest{
		TransferID: id,
		Recipient:  "recipient-id",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "XFER_001", appErr.Code)
}

func TestConfidentialService_ClaimAlreadyClaimed(t *testing.T) {
	d := setupConfidentialService(t)
	ctx := context.Background()
	id := uuid.New()

	d.transferRepo.EXPECT().GetByID(ctx, id).Return(&domain.PendingConfidentialTransfer{
		ID:        id,
		Recipient: "recipient-id",
		Claimed:   true,
	}, nil)

	_, err := d.svc.ClaimPendingTransfer(ctx, ports.ClaimRequest{
		TransferID: id,
		Recipient:  "recipient-id",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "XFER_002", appErr.Code)
}
