package service

import (
	"context"
	"testing"

	"velo-relay/config"
	"velo-relay/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDecoyService_RunDisabledReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := mocks.NewMockChainClient(ctrl)
	txFactory := mocks.NewMockTransactionFactory(ctrl)

	svc := NewDecoyService(chain, txFactory, config.DecoyConfig{Enabled: false}, zerolog.Nop())

	// No chain expectations are set; any call would fail the test.
	svc.Run(context.Background())
}

func TestDecoyService_EmitSubmitsDecoyDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := mocks.NewMockChainClient(ctrl)
	txFactory := mocks.NewMockTransactionFactory(ctrl)
	ctx := context.Background()

	chain.EXPECT().GetLatestBlockhash(ctx).Return("blockhash-1", nil)
	txFactory.EXPECT().DecoyDeposit(gomock.Any(), gomock.Any(), "blockhash-1").
		Return([]byte("decoy-tx"), nil)
	chain.EXPECT().SubmitTransaction(ctx, []byte("decoy-tx")).Return("decoy-sig", nil)

	svc := NewDecoyService(chain, txFactory, config.DecoyConfig{Enabled: true}, zerolog.Nop())
	svc.emit(ctx)
}

func TestDecoyService_EmitSwallowsChainErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := mocks.NewMockChainClient(ctrl)
	txFactory := mocks.NewMockTransactionFactory(ctrl)
	ctx := context.Background()

	chain.EXPECT().GetLatestBlockhash(ctx).Return("", assert.AnError)

	svc := NewDecoyService(chain, txFactory, config.DecoyConfig{Enabled: true}, zerolog.Nop())
	// Must not panic or propagate; decoys are best-effort.
	svc.emit(ctx)
}
