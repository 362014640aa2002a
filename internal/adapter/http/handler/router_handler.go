package handler

import (
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RouterHandler handles multi-hop private send endpoints.
type RouterHandler struct {
	routerSvc ports.RouterService
}

// NewRouterHandler creates a new RouterHandler.
func NewRouterHandler(routerSvc ports.RouterService) *RouterHandler {
	return &RouterHandler{routerSvc: routerSvc}
}

// Send handles POST /api/v1/send. It answers 202: the forward hop
// continues in the background and is tracked via the returned job.
func (h *RouterHandler) Send(c *gin.Context) {
	var req dto.PrivateSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pool, err := domain.ParsePoolSize(req.PoolSize)
	if err != nil {
		response.Error(c, apperror.ErrUnknownPool())
		return
	}

	job, err := h.routerSvc.Send(c.Request.Context(), ports.PrivateSendRequest{
		NoteCommitment: dto.DecodeHex32(req.Commitment),
		Nullifier:      dto.DecodeHex32(req.Nullifier),
		Secret:         dto.DecodeHex32(req.Secret),
		PoolSize:       pool,
		FinalRecipient: req.FinalRecipient,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toHopJobResponse(job))
}

// GetJob handles GET /api/v1/send/:id.
func (h *RouterHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("job id must be a UUID"))
		return
	}

	job, err := h.routerSvc.GetJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toHopJobResponse(job))
}

func toHopJobResponse(job *domain.HopJob) dto.HopJobResponse {
	return dto.HopJobResponse{
		ID:                 job.ID.String(),
		State:              string(job.State),
		PoolSize:           string(job.PoolSize),
		FinalRecipient:     job.FinalRecipient,
		IntermediatePubkey: job.IntermediatePubkey,
		WithdrawSignature:  job.WithdrawSignature,
		ForwardSignature:   job.ForwardSignature,
		ForwardAmount:      job.ForwardAmount,
		FailureReason:      job.FailureReason,
		CreatedAt:          job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          job.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
