package handler

import (
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"
)

// RelayHandler handles withdrawal endpoints.
type RelayHandler struct {
	relaySvc   ports.RelayService
	stealthSvc ports.StealthService
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(relaySvc ports.RelayService, stealthSvc ports.StealthService) *RelayHandler {
	return &RelayHandler{relaySvc: relaySvc, stealthSvc: stealthSvc}
}

// Relay handles POST /api/v1/relay.
func (h *RelayHandler) Relay(c *gin.Context) {
	var req dto.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pool, err := domain.ParsePoolSize(req.PoolSize)
	if err != nil {
		response.Error(c, apperror.ErrUnknownPool())
		return
	}

	result, err := h.relaySvc.RelayWithdrawal(c.Request.Context(), ports.RelayRequest{
		NoteCommitment: dto.DecodeHex32(req.Commitment),
		Nullifier:      dto.DecodeHex32(req.Nullifier),
		Secret:         dto.DecodeHex32(req.Secret),
		Recipient:      req.Recipient,
		PoolSize:       pool,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RelayResponse{
		Signature:       result.Signature,
		Fee:             result.Fee,
		RecipientAmount: result.RecipientAmount,
	})
}

// RelayToStealth handles POST /api/v1/relay/stealth: the one-time
// address is derived server-side from the recipient's meta-address and
// the withdrawal is relayed to it.
func (h *RelayHandler) RelayToStealth(c *gin.Context) {
	var req dto.StealthRelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pool, err := domain.ParsePoolSize(req.PoolSize)
	if err != nil {
		response.Error(c, apperror.ErrUnknownPool())
		return
	}

	meta, err := h.stealthSvc.ParseMetaAddress(req.MetaAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	payment, err := h.stealthSvc.DeriveStealthAddress(meta)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.relaySvc.RelayWithdrawal(c.Request.Context(), ports.RelayRequest{
		NoteCommitment: dto.DecodeHex32(req.Commitment),
		Nullifier:      dto.DecodeHex32(req.Nullifier),
		Secret:         dto.DecodeHex32(req.Secret),
		Recipient:      payment.StealthAddress,
		PoolSize:       pool,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StealthRelayResponse{
		RelayResponse: dto.RelayResponse{
			Signature:       result.Signature,
			Fee:             result.Fee,
			RecipientAmount: result.RecipientAmount,
		},
		StealthAddress:  payment.StealthAddress,
		EphemeralPubkey: base58.Encode(payment.EphemeralPubkey[:]),
		ViewTag:         payment.ViewTag,
	})
}
