package service

import (
	"context"
	"math/rand"
	"time"

	"velo-relay/config"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/crypto"

	"github.com/rs/zerolog"
)

// DecoyServiceImpl emits periodic decoy deposits carrying fabricated
// commitments. Decoys inflate the anonymity set so real deposit timing
// is harder to correlate with withdrawals. Failures are logged and
// dropped; decoy traffic must never affect real flows.
type DecoyServiceImpl struct {
	chain     ports.ChainClient
	txFactory ports.TransactionFactory
	cfg       config.DecoyConfig
	log       zerolog.Logger
}

// NewDecoyService creates a new DecoyServiceImpl.
func NewDecoyService(chain ports.ChainClient, txFactory ports.TransactionFactory, cfg config.DecoyConfig, log zerolog.Logger) *DecoyServiceImpl {
	return &DecoyServiceImpl{
		chain:     chain,
		txFactory: txFactory,
		cfg:       cfg,
		log:       log,
	}
}

// Run emits decoys on a jittered interval until ctx is cancelled.
// Jitter keeps the schedule itself from being a fingerprint.
func (s *DecoyServiceImpl) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		s.log.Info().Msg("decoy traffic disabled")
		return
	}
	s.log.Info().Dur("interval", s.cfg.Interval).Msg("decoy scheduler started")
	for {
		jitter := time.Duration(rand.Int63n(int64(s.cfg.Interval)))
		select {
		case <-ctx.Done():
			s.log.Info().Msg("decoy scheduler stopped")
			return
		case <-time.After(s.cfg.Interval/2 + jitter):
			s.emit(ctx)
		}
	}
}

// emit submits a single decoy deposit to a random pool.
func (s *DecoyServiceImpl) emit(ctx context.Context) {
	pool := domain.AllPoolSizes[rand.Intn(len(domain.AllPoolSizes))]
	fakeCommitment, err := crypto.RandomBytes32()
	if err != nil {
		s.log.Warn().Err(err).Msg("decoy commitment generation failed")
		return
	}
	blockhash, err := s.chain.GetLatestBlockhash(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("decoy blockhash fetch failed")
		return
	}
	signedTx, err := s.txFactory.DecoyDeposit(pool, fakeCommitment, blockhash)
	if err != nil {
		s.log.Warn().Err(err).Msg("decoy transaction build failed")
		return
	}
	signature, err := s.chain.SubmitTransaction(ctx, signedTx)
	if err != nil {
		s.log.Warn().Err(err).Msg("decoy submission failed")
		return
	}
	s.log.Debug().
		Str("pool", string(pool)).
		Str("signature", signature).
		Msg("decoy deposit submitted")
}
