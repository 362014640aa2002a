package handler

import (
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"
)

// StealthHandler handles stealth meta-address endpoints.
type StealthHandler struct {
	stealthSvc ports.StealthService
}

// NewStealthHandler creates a new StealthHandler.
func NewStealthHandler(stealthSvc ports.StealthService) *StealthHandler {
	return &StealthHandler{stealthSvc: stealthSvc}
}

// GenerateMetaAddress handles POST /api/v1/stealth/meta-address.
// Secret halves are returned once and never retained.
func (h *StealthHandler) GenerateMetaAddress(c *gin.Context) {
	meta, keys, err := h.stealthSvc.GenerateMetaAddress()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MetaAddressResponse{
		Encoded:     meta.Encoded,
		SpendPubkey: base58.Encode(meta.SpendPubkey[:]),
		ViewPubkey:  base58.Encode(meta.ViewPubkey[:]),
		SpendSeed:   dto.EncodeHex32(keys.SpendSeed),
		ViewSecret:  dto.EncodeHex32(keys.ViewSecret),
	})
}
