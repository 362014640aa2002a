package ports

import (
	"context"
	"crypto/ed25519"

	"velo-relay/internal/core/domain"

	"github.com/google/uuid"
)

// NoteService generates deposit notes.
type NoteService interface {
	Generate(pool domain.PoolSize) (*domain.Note, error)
}

// RelayRequest is a validated withdrawal request. The caller proves
// knowledge of the note by presenting its secret material.
type RelayRequest struct {
	NoteCommitment [32]byte
	Nullifier      [32]byte
	Secret         [32]byte
	Recipient      string // base58
	PoolSize       domain.PoolSize
}

// RelayResult is the outcome of a confirmed withdrawal.
type RelayResult struct {
	Signature       string
	Fee             uint64
	RecipientAmount uint64
}

// RelayService verifies notes and relays withdrawals signed by the
// relayer's own key, the mechanism that unlinks deposits from
// withdrawals on chain.
type RelayService interface {
	VerifyNote(ctx context.Context, req RelayRequest) error
	CalculateFee(denomination uint64) uint64
	RelayWithdrawal(ctx context.Context, req RelayRequest) (*RelayResult, error)
}

// StealthRelayResult augments a relay result with the one-time address
// material the recipient's scanner needs.
type StealthRelayResult struct {
	RelayResult
	StealthAddress  string
	EphemeralPubkey [32]byte
	ViewTag         byte
}

// StealthService derives and detects one-time addresses.
type StealthService interface {
	GenerateMetaAddress() (*domain.StealthMetaAddress, *domain.StealthMetaKeys, error)
	ParseMetaAddress(encoded string) (*domain.StealthMetaAddress, error)
	DeriveStealthAddress(meta *domain.StealthMetaAddress) (*domain.StealthPaymentInfo, error)
	Scan(viewSecret, spendPubkey [32]byte, candidates []domain.StealthPaymentInfo) []domain.StealthPaymentInfo
	DeriveSpendingKey(viewSecret, spendPubkey, ephemeralPubkey [32]byte) (ed25519.PrivateKey, error)
}

// PendingTransferRequest creates custody for a recipient without a
// registered account.
type PendingTransferRequest struct {
	Sender         string
	Recipient      string
	AmountLamports uint64
	RecipientPub   [32]byte // recipient's ElGamal public key
}

// ClaimRequest redeems a pending transfer.
type ClaimRequest struct {
	TransferID uuid.UUID
	Recipient  string
	SecretKey  [32]byte // recipient's ElGamal secret key
}

// ClaimResult returns the recovered stealth wallet and amount.
type ClaimResult struct {
	StealthWalletPubkey string
	StealthWalletSecret ed25519.PrivateKey
	AmountLamports      uint64
}

// ConfidentialService implements the encrypted-balance layer.
// Add is not homomorphic: it decrypts, adds, and re-encrypts, so it
// requires decrypt rights on both operands.
type ConfidentialService interface {
	DeriveKeypair(signedMessage []byte) (*domain.ElGamalKeypair, error)
	Encrypt(amount uint64, recipientPub [32]byte) (*domain.ElGamalCiphertext, error)
	// Decrypt returns nil on authentication failure or wrong key, never
	// an error.
	Decrypt(ct *domain.ElGamalCiphertext, secretKey [32]byte) *uint64
	Add(a, b *domain.ElGamalCiphertext, secretKey [32]byte, recipientPub [32]byte) *domain.ElGamalCiphertext
	ZeroBalance(pub [32]byte) (*domain.ElGamalCiphertext, error)
	CreatePendingTransfer(ctx context.Context, req PendingTransferRequest) (*domain.PendingConfidentialTransfer, error)
	ClaimPendingTransfer(ctx context.Context, req ClaimRequest) (*ClaimResult, error)
}

// PrivateSendRequest drives the multi-hop router: a note is withdrawn to
// a fresh intermediate wallet and forwarded to the final recipient.
type PrivateSendRequest struct {
	NoteCommitment [32]byte
	Nullifier      [32]byte
	Secret         [32]byte
	PoolSize       domain.PoolSize
	FinalRecipient string
}

// RouterService orchestrates withdraw-then-forward sends. Execution is
// decoupled from the request lifetime: once the withdrawal lands, the
// forward hop is attempted even if the caller is gone.
type RouterService interface {
	Send(ctx context.Context, req PrivateSendRequest) (*domain.HopJob, error)
	GetJob(ctx context.Context, id uuid.UUID) (*domain.HopJob, error)
}
