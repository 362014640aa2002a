package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"velo-relay/config"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/rs/zerolog"
)

// reconciliation polling after an ambiguous confirmation
const (
	reconcileAttempts = 5
	reconcileInterval = 2 * time.Second
)

// RelayServiceImpl implements ports.RelayService.
type RelayServiceImpl struct {
	hasher    crypto.NoteHasher
	nullRepo  ports.NullifierRepository
	guard     ports.NullifierGuard
	chain     ports.ChainClient
	txFactory ports.TransactionFactory
	cfg       config.RelayerConfig
	log       zerolog.Logger
}

// NewRelayService creates a new RelayServiceImpl.
func NewRelayService(
	hasher crypto.NoteHasher,
	nullRepo ports.NullifierRepository,
	guard ports.NullifierGuard,
	chain ports.ChainClient,
	txFactory ports.TransactionFactory,
	cfg config.RelayerConfig,
	log zerolog.Logger,
) *RelayServiceImpl {
	return &RelayServiceImpl{
		hasher:    hasher,
		nullRepo:  nullRepo,
		guard:     guard,
		chain:     chain,
		txFactory: txFactory,
		cfg:       cfg,
		log:       log,
	}
}

// VerifyNote checks a withdrawal request without touching the chain:
// pool validity, recipient format, commitment opening, and spent status.
func (s *RelayServiceImpl) VerifyNote(ctx context.Context, req ports.RelayRequest) error {
	if req.PoolSize.Denomination() == 0 {
		return apperror.ErrUnknownPool()
	}
	if _, err := crypto.DecodeAddress(req.Recipient); err != nil {
		return apperror.Validation("recipient must be a base58-encoded 32-byte address")
	}

	// The caller proves note ownership by opening the commitment.
	nullifierHash := s.hasher.NullifierHash(req.Nullifier)
	computed := s.hasher.Commitment(req.Secret, req.Nullifier)
	if !bytes.Equal(computed[:], req.NoteCommitment[:]) {
		return apperror.ErrNoteInvalid(fmt.Errorf(
			"commitment mismatch for nullifier hash %s",
			hex.EncodeToString(nullifierHash[:8]),
		))
	}

	spent, err := s.nullRepo.HasBeenSpent(ctx, nullifierHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("nullifier lookup: %w", err))
	}
	if spent {
		return apperror.ErrAlreadySpent()
	}
	return nil
}

// CalculateFee computes the relayer fee for a denomination: a percentage
// clamped to the configured floor and ceiling.
func (s *RelayServiceImpl) CalculateFee(denomination uint64) uint64 {
	fee := uint64(float64(denomination) * s.cfg.FeePercent / 100.0)
	if fee < s.cfg.MinFeeLamports {
		fee = s.cfg.MinFeeLamports
	}
	if fee > s.cfg.MaxFeeLamports {
		fee = s.cfg.MaxFeeLamports
	}
	return fee
}

// RelayWithdrawal verifies the note, then builds, signs, submits, and
// confirms the withdrawal transaction with the relayer's own key. The
// nullifier is recorded as spent only after positive confirmation.
func (s *RelayServiceImpl) RelayWithdrawal(ctx context.Context, req ports.RelayRequest) (*ports.RelayResult, error) {
	if err := s.VerifyNote(ctx, req); err != nil {
		return nil, err
	}

	nullifierHash := s.hasher.NullifierHash(req.Nullifier)

	// In-flight guard: one submission pipeline per nullifier. TTL covers
	// the worst-case retry and confirmation window.
	guardTTL := time.Duration(s.cfg.MaxRetries+1)*s.cfg.ConfirmTimeout + time.Minute
	acquired, err := s.guard.Acquire(ctx, nullifierHash, guardTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire nullifier guard: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrSpendInProgress()
	}
	holdGuard := false
	defer func() {
		if holdGuard {
			// Ambiguous outcome: keep the guard until TTL expiry so a
			// duplicate request cannot race the in-flight transaction.
			return
		}
		if err := s.guard.Release(context.Background(), nullifierHash); err != nil {
			s.log.Warn().Err(err).Msg("failed to release nullifier guard")
		}
	}()

	// Re-check under the guard: a concurrent withdrawal may have landed
	// between VerifyNote and Acquire.
	spent, err := s.nullRepo.HasBeenSpent(ctx, nullifierHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("nullifier re-check: %w", err))
	}
	if spent {
		return nil, apperror.ErrAlreadySpent()
	}

	denomination := req.PoolSize.Denomination()
	if err := s.checkLiquidity(ctx, req.PoolSize, denomination); err != nil {
		return nil, err
	}

	fee := s.CalculateFee(denomination)
	recipientAmount := denomination - fee

	signature, err := s.submitWithRetry(ctx, req.PoolSize, nullifierHash, req.Recipient, fee)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CHAIN_002" {
			holdGuard = true
		}
		return nil, err
	}

	record := &domain.NullifierRecord{
		NullifierHash:    nullifierHash,
		PoolSize:         req.PoolSize,
		UsedAt:           time.Now().UTC(),
		RelayTxSignature: signature,
	}
	if err := s.nullRepo.MarkSpent(ctx, record); err != nil {
		// The withdrawal already executed on chain. A duplicate here means
		// an earlier ambiguous attempt was reconciled by another instance.
		s.log.Error().Err(err).
			Str("signature", signature).
			Msg("confirmed withdrawal could not be recorded")
		return nil, err
	}

	s.log.Info().
		Str("pool", string(req.PoolSize)).
		Str("signature", signature).
		Uint64("fee", fee).
		Uint64("recipient_amount", recipientAmount).
		Msg("withdrawal relayed")

	return &ports.RelayResult{
		Signature:       signature,
		Fee:             fee,
		RecipientAmount: recipientAmount,
	}, nil
}

// checkLiquidity refuses withdrawals the pool vault cannot cover.
func (s *RelayServiceImpl) checkLiquidity(ctx context.Context, pool domain.PoolSize, denomination uint64) error {
	vault, err := s.txFactory.VaultAddress(pool)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("deriving vault address: %w", err))
	}
	balance, err := s.chain.GetBalance(ctx, vault)
	if err != nil {
		return apperror.ErrChainSubmission(fmt.Errorf("vault balance: %w", err))
	}
	if balance < denomination {
		return apperror.ErrInsufficientLiquidity()
	}
	return nil
}

// submitWithRetry runs the submit-confirm loop. Every retry rebuilds the
// transaction against a fresh blockhash; a retry happens only when the
// previous attempt provably failed. Ambiguity stops the loop.
func (s *RelayServiceImpl) submitWithRetry(ctx context.Context, pool domain.PoolSize, nullifierHash [32]byte, recipient string, fee uint64) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		blockhash, err := s.chain.GetLatestBlockhash(ctx)
		if err != nil {
			lastErr = fmt.Errorf("fetching blockhash: %w", err)
			continue
		}
		signedTx, err := s.txFactory.RelayWithdrawal(pool, nullifierHash, recipient, fee, blockhash)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("building withdrawal tx: %w", err))
		}
		signature, err := s.chain.SubmitTransaction(ctx, signedTx)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: submit: %w", attempt+1, err)
			s.log.Warn().Err(err).Int("attempt", attempt+1).Msg("submission failed, retrying")
			continue
		}

		confirmCtx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
		confirmErr := s.chain.ConfirmTransaction(confirmCtx, signature)
		cancel()
		if confirmErr == nil {
			return signature, nil
		}

		// Confirmation timed out. The transaction may still have landed;
		// reconcile via status before deciding anything.
		status, err := s.reconcile(ctx, signature)
		if err != nil {
			return "", apperror.ErrUnknownConfirmation(fmt.Errorf("reconciling %s: %w", signature, err))
		}
		switch {
		case status.Landed():
			return signature, nil
		case status == ports.StatusFailed:
			lastErr = fmt.Errorf("attempt %d: transaction %s failed on chain", attempt+1, signature)
			s.log.Warn().Str("signature", signature).Int("attempt", attempt+1).Msg("transaction failed, retrying with fresh blockhash")
		default:
			// Still unknown. Resubmitting against a fresh blockhash would
			// create a second, independent transaction for the same note.
			return "", apperror.ErrUnknownConfirmation(fmt.Errorf("transaction %s outcome unresolved: %w", signature, confirmErr))
		}
	}
	return "", apperror.ErrChainSubmission(fmt.Errorf("all %d attempts exhausted: %w", s.cfg.MaxRetries+1, lastErr))
}

// reconcile polls the signature status until it resolves or attempts run
// out. Returns StatusUnknown when the chain never answers definitively.
func (s *RelayServiceImpl) reconcile(ctx context.Context, signature string) (ports.ConfirmationStatus, error) {
	for i := 0; i < reconcileAttempts; i++ {
		status, err := s.chain.GetSignatureStatus(ctx, signature)
		if err != nil {
			return ports.StatusUnknown, err
		}
		if status.Landed() || status == ports.StatusFailed {
			return status, nil
		}
		select {
		case <-ctx.Done():
			return ports.StatusUnknown, ctx.Err()
		case <-time.After(reconcileInterval):
		}
	}
	return ports.StatusUnknown, nil
}
