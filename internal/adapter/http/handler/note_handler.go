package handler

import (
	"encoding/hex"

	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note generation endpoints.
type NoteHandler struct {
	noteSvc ports.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteSvc ports.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// GenerateNote handles POST /api/v1/notes. The secret material in the
// response is shown exactly once; the relayer keeps no copy.
func (h *NoteHandler) GenerateNote(c *gin.Context) {
	var req dto.GenerateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pool, err := domain.ParsePoolSize(req.PoolSize)
	if err != nil {
		response.Error(c, apperror.ErrUnknownPool())
		return
	}

	note, err := h.noteSvc.Generate(pool)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NoteResponse{
		Secret:       dto.EncodeHex32(note.Secret),
		Nullifier:    dto.EncodeHex32(note.Nullifier),
		Commitment:   dto.EncodeHex32(note.Commitment),
		Proof:        hex.EncodeToString(note.Proof),
		Denomination: note.Denomination,
		PoolSize:     string(note.PoolSize),
		CreatedAt:    note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
