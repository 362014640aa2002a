package service

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConfidentialServiceImpl implements ports.ConfidentialService.
//
// Amounts are encrypted against the recipient's X25519 public key with
// an ephemeral ECDH exchange and an AEAD. The ciphertext Commitment
// field carries the ephemeral public key; Handle carries the sealed
// amount. Add decrypts both operands and re-encrypts the sum, so it
// needs decrypt rights; there is no ciphertext-level homomorphism.
type ConfidentialServiceImpl struct {
	aead         crypto.AEAD
	transferRepo ports.TransferRepository
	log          zerolog.Logger
}

// NewConfidentialService creates a new ConfidentialServiceImpl.
func NewConfidentialService(aead crypto.AEAD, transferRepo ports.TransferRepository, log zerolog.Logger) *ConfidentialServiceImpl {
	return &ConfidentialServiceImpl{
		aead:         aead,
		transferRepo: transferRepo,
		log:          log,
	}
}

// DeriveKeypair deterministically derives the confidential-balance
// keypair from a wallet-signed message. The same signature always yields
// the same keypair, so no separate key storage is needed.
func (s *ConfidentialServiceImpl) DeriveKeypair(signedMessage []byte) (*domain.ElGamalKeypair, error) {
	if len(signedMessage) == 0 {
		return nil, apperror.Validation("signed message must not be empty")
	}
	secret := sha256.Sum256(signedMessage)
	pub, err := crypto.X25519KeypairFromSecret(secret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deriving keypair: %w", err))
	}
	return &domain.ElGamalKeypair{PublicKey: pub, SecretKey: secret}, nil
}

// Encrypt seals an amount for the holder of recipientPub.
func (s *ConfidentialServiceImpl) Encrypt(amount uint64, recipientPub [32]byte) (*domain.ElGamalCiphertext, error) {
	var plaintext [8]byte
	binary.LittleEndian.PutUint64(plaintext[:], amount)
	ephPub, handle, err := s.sealFor(recipientPub, plaintext[:])
	if err != nil {
		return nil, err
	}
	return &domain.ElGamalCiphertext{Commitment: ephPub, Handle: handle}, nil
}

// Decrypt recovers an amount, or nil when the key is wrong or the
// ciphertext was tampered with. Callers treat nil as "not mine".
func (s *ConfidentialServiceImpl) Decrypt(ct *domain.ElGamalCiphertext, secretKey [32]byte) *uint64 {
	if ct == nil {
		return nil
	}
	plaintext, err := s.openFor(secretKey, ct.Commitment, ct.Handle)
	if err != nil || len(plaintext) != 8 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(plaintext)
	return &amount
}

// Add produces a ciphertext of the sum of two encrypted amounts. Returns
// nil when either operand cannot be decrypted with secretKey.
func (s *ConfidentialServiceImpl) Add(a, b *domain.ElGamalCiphertext, secretKey [32]byte, recipientPub [32]byte) *domain.ElGamalCiphertext {
	va := s.Decrypt(a, secretKey)
	vb := s.Decrypt(b, secretKey)
	if va == nil || vb == nil {
		return nil
	}
	sum, err := s.Encrypt(*va+*vb, recipientPub)
	if err != nil {
		return nil
	}
	return sum
}

// ZeroBalance encrypts a zero opening balance for a new account.
func (s *ConfidentialServiceImpl) ZeroBalance(pub [32]byte) (*domain.ElGamalCiphertext, error) {
	return s.Encrypt(0, pub)
}

// CreatePendingTransfer escrows funds for a recipient with no account: a
// fresh single-use wallet takes custody and its seed is sealed so only
// the recipient's confidential key can open it.
func (s *ConfidentialServiceImpl) CreatePendingTransfer(ctx context.Context, req ports.PendingTransferRequest) (*domain.PendingConfidentialTransfer, error) {
	if req.AmountLamports == 0 {
		return nil, apperror.Validation("amount must be positive")
	}
	if req.Recipient == "" {
		return nil, apperror.Validation("recipient must not be empty")
	}

	walletSeed, err := crypto.RandomBytes32()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	walletPriv := crypto.KeypairFromSeed(walletSeed)
	walletPub := crypto.EncodeAddress(walletPriv.Public().(ed25519.PublicKey))

	ephPub, sealedSeed, err := s.sealFor(req.RecipientPub, walletSeed[:])
	if err != nil {
		return nil, err
	}
	// Layout: ephemeral pubkey ‖ sealed seed, self-contained for claims.
	encryptedSecretKey := append(ephPub[:], sealedSeed...)

	encryptedAmount, err := s.Encrypt(req.AmountLamports, req.RecipientPub)
	if err != nil {
		return nil, err
	}

	transfer := &domain.PendingConfidentialTransfer{
		ID:                  uuid.New(),
		Sender:              req.Sender,
		Recipient:           req.Recipient,
		StealthWalletPubkey: walletPub,
		EncryptedSecretKey:  encryptedSecretKey,
		EncryptedAmount:     *encryptedAmount,
		AmountLamports:      req.AmountLamports,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persisting pending transfer: %w", err))
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("recipient", req.Recipient).
		Msg("pending confidential transfer created")

	return transfer, nil
}

// ClaimPendingTransfer redeems escrowed funds: the recipient's secret
// key opens the sealed wallet seed and the claim is recorded exactly
// once.
func (s *ConfidentialServiceImpl) ClaimPendingTransfer(ctx context.Context, req ports.ClaimRequest) (*ports.ClaimResult, error) {
	transfer, err := s.transferRepo.GetByID(ctx, req.TransferID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading pending transfer: %w", err))
	}
	if transfer == nil || transfer.Recipient != req.Recipient {
		// A mismatched recipient gets the same answer as a missing row.
		return nil, apperror.ErrTransferNotFound()
	}
	if transfer.Claimed {
		return nil, apperror.ErrTransferAlreadyClaimed()
	}

	if len(transfer.EncryptedSecretKey) <= 32 {
		return nil, apperror.InternalError(fmt.Errorf("malformed encrypted secret key for transfer %s", transfer.ID))
	}
	var ephPub [32]byte
	copy(ephPub[:], transfer.EncryptedSecretKey[:32])
	seedBytes, err := s.openFor(req.SecretKey, ephPub, transfer.EncryptedSecretKey[32:])
	if err != nil || len(seedBytes) != 32 {
		return nil, apperror.Validation("secret key cannot open this transfer")
	}

	amount := s.Decrypt(&transfer.EncryptedAmount, req.SecretKey)
	if amount == nil {
		return nil, apperror.Validation("secret key cannot open this transfer")
	}

	if err := s.transferRepo.MarkClaimed(ctx, transfer.ID); err != nil {
		return nil, err
	}

	var seed [32]byte
	copy(seed[:], seedBytes)

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("recipient", req.Recipient).
		Msg("pending confidential transfer claimed")

	return &ports.ClaimResult{
		StealthWalletPubkey: transfer.StealthWalletPubkey,
		StealthWalletSecret: crypto.KeypairFromSeed(seed),
		AmountLamports:      *amount,
	}, nil
}

// sealFor encrypts plaintext for recipientPub under a fresh ephemeral
// ECDH exchange. Returns the ephemeral public key and the sealed blob.
func (s *ConfidentialServiceImpl) sealFor(recipientPub [32]byte, plaintext []byte) ([32]byte, []byte, error) {
	ephPub, ephPriv, err := crypto.NewX25519Keypair()
	if err != nil {
		return ephPub, nil, apperror.InternalError(err)
	}
	shared, err := crypto.SharedSecret(ephPriv, recipientPub)
	if err != nil {
		return ephPub, nil, apperror.InternalError(fmt.Errorf("ecdh against recipient key: %w", err))
	}
	sealed, err := s.aead.Seal(symmetricKey(shared, ephPub, recipientPub), plaintext, nil)
	if err != nil {
		return ephPub, nil, apperror.InternalError(err)
	}
	return ephPub, sealed, nil
}

// openFor reverses sealFor with the recipient's secret key.
func (s *ConfidentialServiceImpl) openFor(secretKey, ephPub [32]byte, sealed []byte) ([]byte, error) {
	recipientPub, err := crypto.X25519KeypairFromSecret(secretKey)
	if err != nil {
		return nil, err
	}
	shared, err := crypto.SharedSecret(secretKey, ephPub)
	if err != nil {
		return nil, err
	}
	return s.aead.Open(symmetricKey(shared, ephPub, recipientPub), sealed, nil)
}

// symmetricKey binds the AEAD key to both parties of the exchange.
func symmetricKey(shared, ephPub, recipientPub [32]byte) [32]byte {
	h := sha256.New()
	h.Write(shared[:])
	h.Write(ephPub[:])
	h.Write(recipientPub[:])
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}
