package handler

import (
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// TransferHandler handles pending confidential transfer endpoints.
type TransferHandler struct {
	confSvc      ports.ConfidentialService
	transferRepo ports.TransferRepository
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(confSvc ports.ConfidentialService, transferRepo ports.TransferRepository) *TransferHandler {
	return &TransferHandler{confSvc: confSvc, transferRepo: transferRepo}
}

// CreateTransfer handles POST /api/v1/transfers.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	transfer, err := h.confSvc.CreatePendingTransfer(c.Request.Context(), ports.PendingTransferRequest{
		Sender:         req.Sender,
		Recipient:      req.Recipient,
		AmountLamports: req.AmountLamports,
		RecipientPub:   dto.DecodeHex32(req.RecipientPub),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransferResponse(transfer))
}

// ListTransfers handles GET /api/v1/transfers?recipient=...
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	recipient := c.Query("recipient")
	if recipient == "" {
		response.Error(c, apperror.Validation("recipient query parameter is required"))
		return
	}

	transfers, err := h.transferRepo.ListUnclaimedByRecipient(c.Request.Context(), recipient)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		out = append(out, toTransferResponse(&transfers[i]))
	}
	response.OK(c, out)
}

// ClaimTransfer handles POST /api/v1/transfers/:id/claim.
func (h *TransferHandler) ClaimTransfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transfer id must be a UUID"))
		return
	}

	var req dto.ClaimTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.confSvc.ClaimPendingTransfer(c.Request.Context(), ports.ClaimRequest{
		TransferID: id,
		Recipient:  req.Recipient,
		SecretKey:  dto.DecodeHex32(req.SecretKey),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimTransferResponse{
		StealthWalletPubkey: result.StealthWalletPubkey,
		StealthWalletSecret: base58.Encode(result.StealthWalletSecret),
		AmountLamports:      result.AmountLamports,
	})
}

// toTransferResponse converts a domain transfer to its DTO. The
// encrypted secret key never leaves the claim path.
func toTransferResponse(t *domain.PendingConfidentialTransfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:                  t.ID.String(),
		Sender:              t.Sender,
		Recipient:           t.Recipient,
		StealthWalletPubkey: t.StealthWalletPubkey,
		AmountLamports:      t.AmountLamports,
		CreatedAt:           t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Claimed:             t.Claimed,
	}
}
