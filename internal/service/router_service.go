package service

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"velo-relay/config"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RouterServiceImpl implements ports.RouterService.
//
// A private send withdraws a note to a fresh intermediate wallet and
// forwards the funds from there to the final recipient, so the pool
// withdrawal and the recipient never appear in the same transaction.
// The intermediate wallet's seed is sealed into the key vault before the
// first hop is submitted; from that point the job survives a crash.
type RouterServiceImpl struct {
	relaySvc       ports.RelayService
	chain          ports.ChainClient
	txFactory      ports.TransactionFactory
	jobRepo        ports.HopJobRepository
	keyVault       ports.KeyVault
	aead           crypto.AEAD
	vaultKey       [32]byte
	cfg            config.RouterConfig
	confirmTimeout time.Duration
	log            zerolog.Logger
}

// NewRouterService creates a new RouterServiceImpl.
func NewRouterService(
	relaySvc ports.RelayService,
	chain ports.ChainClient,
	txFactory ports.TransactionFactory,
	jobRepo ports.HopJobRepository,
	keyVault ports.KeyVault,
	aead crypto.AEAD,
	vaultKey [32]byte,
	cfg config.RouterConfig,
	confirmTimeout time.Duration,
	log zerolog.Logger,
) *RouterServiceImpl {
	return &RouterServiceImpl{
		relaySvc:       relaySvc,
		chain:          chain,
		txFactory:      txFactory,
		jobRepo:        jobRepo,
		keyVault:       keyVault,
		aead:           aead,
		vaultKey:       vaultKey,
		cfg:            cfg,
		confirmTimeout: confirmTimeout,
		log:            log,
	}
}

// Send validates the request, escrows the intermediate key, and starts
// the hop pipeline. The returned job is a handle for polling; execution
// continues after the caller disconnects.
func (s *RouterServiceImpl) Send(ctx context.Context, req ports.PrivateSendRequest) (*domain.HopJob, error) {
	if req.PoolSize.Denomination() == 0 {
		return nil, apperror.ErrUnknownPool()
	}
	if _, err := crypto.DecodeAddress(req.FinalRecipient); err != nil {
		return nil, apperror.Validation("final recipient must be a base58-encoded 32-byte address")
	}

	seed, err := crypto.RandomBytes32()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	intermediatePriv := crypto.KeypairFromSeed(seed)
	intermediatePub := crypto.EncodeAddress(intermediatePriv.Public().(ed25519.PublicKey))

	// The sealed seed must be durable before any funds move. If the
	// process dies mid-job this row is the only path to the money.
	sealedSeed, err := s.aead.Seal(s.vaultKey, seed[:], []byte(intermediatePub))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sealing intermediate seed: %w", err))
	}
	if err := s.keyVault.Store(ctx, intermediatePub, sealedSeed); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("storing intermediate seed: %w", err))
	}

	now := time.Now().UTC()
	job := &domain.HopJob{
		ID:                 uuid.New(),
		PoolSize:           req.PoolSize,
		FinalRecipient:     req.FinalRecipient,
		State:              domain.HopStateWithdrawing,
		IntermediatePubkey: intermediatePub,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persisting hop job: %w", err))
	}

	// Detach from the request context: once started, the pipeline runs to
	// a terminal state regardless of the caller.
	go s.run(context.Background(), *job, req, intermediatePriv)

	return job, nil
}

// Recover replays every non-terminal hop job a previous process left
// behind. The sealed intermediate key in the vault is the only
// credential for the in-flight funds; a job whose withdrawal never
// landed is failed so its note stays spendable.
func (s *RouterServiceImpl) Recover(ctx context.Context) error {
	jobs, err := s.jobRepo.ListNonTerminal(ctx)
	if err != nil {
		return fmt.Errorf("listing recoverable hop jobs: %w", err)
	}
	for i := range jobs {
		s.recoverJob(ctx, jobs[i])
	}
	return nil
}

func (s *RouterServiceImpl) recoverJob(ctx context.Context, job domain.HopJob) {
	log := s.log.With().
		Str("job_id", job.ID.String()).
		Str("state", string(job.State)).
		Logger()

	intermediatePriv, err := s.unsealIntermediateKey(ctx, job.IntermediatePubkey)
	if err != nil {
		// Without the key the funds cannot move. Keep the row non-terminal
		// so the next sweep retries.
		log.Error().Err(err).Msg("cannot unseal intermediate key, leaving job for next sweep")
		return
	}

	switch job.State {
	case domain.HopStateWithdrawing:
		// The withdrawal may or may not have landed before the crash;
		// the intermediate balance is the arbiter.
		balance, err := s.chain.GetBalance(ctx, job.IntermediatePubkey)
		if err != nil {
			log.Error().Err(err).Msg("cannot read intermediate balance, leaving job for next sweep")
			return
		}
		if balance <= s.cfg.FeeReserveLamports {
			s.fail(ctx, &job, "withdrawal hop lost across restart; note remains spendable")
			return
		}
		s.transition(ctx, &job, domain.HopStateFunded)
		s.resumeForward(ctx, &job, intermediatePriv, log)
	case domain.HopStateFunded:
		s.resumeForward(ctx, &job, intermediatePriv, log)
	case domain.HopStateForwarding:
		// A drained wallet means the forward tx landed before the crash.
		balance, err := s.chain.GetBalance(ctx, job.IntermediatePubkey)
		if err != nil {
			log.Error().Err(err).Msg("cannot read intermediate balance, leaving job for next sweep")
			return
		}
		if balance <= s.cfg.FeeReserveLamports {
			s.transition(ctx, &job, domain.HopStateComplete)
			log.Info().Msg("forward hop already landed, job closed")
			return
		}
		s.resumeForward(ctx, &job, intermediatePriv, log)
	default:
		s.fail(ctx, &job, fmt.Sprintf("unrecoverable state %s", job.State))
	}
}

func (s *RouterServiceImpl) resumeForward(ctx context.Context, job *domain.HopJob, intermediatePriv ed25519.PrivateKey, log zerolog.Logger) {
	s.transition(ctx, job, domain.HopStateForwarding)
	if err := s.forward(ctx, job, intermediatePriv); err != nil {
		s.fail(ctx, job, fmt.Sprintf("forward hop after restart: %v", err))
		return
	}
	s.transition(ctx, job, domain.HopStateComplete)
	log.Info().
		Str("forward_signature", job.ForwardSignature).
		Uint64("forward_amount", job.ForwardAmount).
		Msg("hop job recovered")
}

func (s *RouterServiceImpl) unsealIntermediateKey(ctx context.Context, pubkey string) (ed25519.PrivateKey, error) {
	sealed, err := s.keyVault.Load(ctx, pubkey)
	if err != nil {
		return nil, fmt.Errorf("loading sealed seed: %w", err)
	}
	if sealed == nil {
		return nil, fmt.Errorf("no sealed seed for %s", pubkey)
	}
	raw, err := s.aead.Open(s.vaultKey, sealed, []byte(pubkey))
	if err != nil {
		return nil, fmt.Errorf("unsealing seed: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("unsealed seed is %d bytes, want 32", len(raw))
	}
	var seed [32]byte
	copy(seed[:], raw)
	return crypto.KeypairFromSeed(seed), nil
}

// GetJob returns the current state of a hop job.
func (s *RouterServiceImpl) GetJob(ctx context.Context, id uuid.UUID) (*domain.HopJob, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading hop job: %w", err))
	}
	if job == nil {
		return nil, apperror.ErrJobNotFound()
	}
	return job, nil
}

// run drives a job through the hop state machine to a terminal state.
func (s *RouterServiceImpl) run(ctx context.Context, job domain.HopJob, req ports.PrivateSendRequest, intermediatePriv ed25519.PrivateKey) {
	log := s.log.With().Str("job_id", job.ID.String()).Logger()

	relayResult, err := s.relaySvc.RelayWithdrawal(ctx, ports.RelayRequest{
		NoteCommitment: req.NoteCommitment,
		Nullifier:      req.Nullifier,
		Secret:         req.Secret,
		Recipient:      job.IntermediatePubkey,
		PoolSize:       req.PoolSize,
	})
	if err != nil {
		s.fail(ctx, &job, fmt.Sprintf("withdrawal hop: %v", err))
		return
	}
	job.WithdrawSignature = relayResult.Signature
	s.transition(ctx, &job, domain.HopStateFunded)
	log.Info().Str("signature", relayResult.Signature).Msg("intermediate wallet funded")

	s.transition(ctx, &job, domain.HopStateForwarding)
	if err := s.forward(ctx, &job, intermediatePriv); err != nil {
		s.fail(ctx, &job, fmt.Sprintf("forward hop: %v", err))
		return
	}

	s.transition(ctx, &job, domain.HopStateComplete)
	log.Info().
		Str("forward_signature", job.ForwardSignature).
		Uint64("forward_amount", job.ForwardAmount).
		Msg("private send complete")
}

// forward moves everything except the fee reserve from the intermediate
// wallet to the final recipient.
func (s *RouterServiceImpl) forward(ctx context.Context, job *domain.HopJob, intermediatePriv ed25519.PrivateKey) error {
	balance, err := s.chain.GetBalance(ctx, job.IntermediatePubkey)
	if err != nil {
		return fmt.Errorf("intermediate balance: %w", err)
	}
	if balance <= s.cfg.FeeReserveLamports {
		return apperror.ErrInsufficientIntermediateFunds()
	}
	forwardAmount := balance - s.cfg.FeeReserveLamports

	blockhash, err := s.chain.GetLatestBlockhash(ctx)
	if err != nil {
		return fmt.Errorf("fetching blockhash: %w", err)
	}
	signedTx, err := s.txFactory.Transfer(intermediatePriv, job.FinalRecipient, forwardAmount, blockhash)
	if err != nil {
		return fmt.Errorf("building forward tx: %w", err)
	}
	signature, err := s.chain.SubmitTransaction(ctx, signedTx)
	if err != nil {
		return fmt.Errorf("submitting forward tx: %w", err)
	}

	confirmCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()
	if err := s.chain.ConfirmTransaction(confirmCtx, signature); err != nil {
		return fmt.Errorf("confirming forward tx %s: %w", signature, err)
	}

	job.ForwardSignature = signature
	job.ForwardAmount = forwardAmount
	return nil
}

func (s *RouterServiceImpl) transition(ctx context.Context, job *domain.HopJob, state domain.HopState) {
	job.State = state
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.log.Error().Err(err).
			Str("job_id", job.ID.String()).
			Str("state", string(state)).
			Msg("failed to persist job transition")
	}
}

func (s *RouterServiceImpl) fail(ctx context.Context, job *domain.HopJob, reason string) {
	job.FailureReason = reason
	s.log.Error().
		Str("job_id", job.ID.String()).
		Str("reason", reason).
		Msg("hop job failed")
	s.transition(ctx, job, domain.HopStateFailed)
}
