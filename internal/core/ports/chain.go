package ports

import (
	"context"
	"crypto/ed25519"

	"velo-relay/internal/core/domain"
)

// ConfirmationStatus is the chain's view of a submitted signature.
type ConfirmationStatus string

const (
	StatusProcessed ConfirmationStatus = "processed"
	StatusConfirmed ConfirmationStatus = "confirmed"
	StatusFinalized ConfirmationStatus = "finalized"
	StatusFailed    ConfirmationStatus = "failed"
	StatusUnknown   ConfirmationStatus = "unknown"
)

// Landed reports whether the status proves the transaction executed.
func (s ConfirmationStatus) Landed() bool {
	return s == StatusConfirmed || s == StatusFinalized
}

// ChainClient is the injected RPC surface. Core logic never talks to a
// live endpoint directly, so every flow is unit-testable against a fake.
type ChainClient interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (string, error)
	// SubmitTransaction sends a fully signed transaction and returns its
	// signature.
	SubmitTransaction(ctx context.Context, signedTx []byte) (string, error)
	// ConfirmTransaction blocks until the signature is confirmed or ctx
	// expires. An expiry is ambiguous, not a failure.
	ConfirmTransaction(ctx context.Context, signature string) error
	// GetSignatureStatus reconciles ambiguous outcomes without resubmitting.
	GetSignatureStatus(ctx context.Context, signature string) (ConfirmationStatus, error)
}

// TransactionFactory builds signed transactions against the fixed
// on-chain instruction and account layouts. Builders are pure given a
// blockhash; submission is the ChainClient's job.
type TransactionFactory interface {
	// RelayWithdrawal builds a pool withdrawal signed and fee-paid solely
	// by the relayer key, directed at recipient.
	RelayWithdrawal(pool domain.PoolSize, nullifierHash [32]byte, recipient string, fee uint64, blockhash string) ([]byte, error)
	// Transfer builds a system transfer signed by the provided key.
	Transfer(from ed25519.PrivateKey, to string, lamports uint64, blockhash string) ([]byte, error)
	// DecoyDeposit builds a decoy deposit carrying a fabricated commitment.
	DecoyDeposit(pool domain.PoolSize, fakeCommitment [32]byte, blockhash string) ([]byte, error)
	// VaultAddress returns the pool vault PDA for liquidity checks.
	VaultAddress(pool domain.PoolSize) (string, error)
	// RelayerPublicKey returns the relayer's base58 address.
	RelayerPublicKey() string
}
