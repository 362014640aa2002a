package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("NOTE_002", "Note has already been spent", http.StatusConflict),
			expected: "[NOTE_002] Note has already been spent",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("NOTE_002", "test", http.StatusConflict)
	assert.Nil(t, appErr.Unwrap())
}

func TestNoteErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NoteInvalid", ErrNoteInvalid(fmt.Errorf("commitment mismatch")), "NOTE_001", 400},
		{"AlreadySpent", ErrAlreadySpent(), "NOTE_002", 409},
		{"SpendInProgress", ErrSpendInProgress(), "NOTE_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPoolErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientLiquidity", ErrInsufficientLiquidity(), "POOL_001", 503},
		{"InsufficientIntermediateFunds", ErrInsufficientIntermediateFunds(), "POOL_002", 422},
		{"UnknownPool", ErrUnknownPool(), "POOL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestChainErrors(t *testing.T) {
	inner := fmt.Errorf("rpc timeout")

	subErr := ErrChainSubmission(inner)
	assert.Equal(t, "CHAIN_001", subErr.Code)
	assert.Equal(t, 502, subErr.HTTPStatus)
	assert.True(t, errors.Is(subErr, inner))

	confErr := ErrUnknownConfirmation(inner)
	assert.Equal(t, "CHAIN_002", confErr.Code)
	assert.Equal(t, 504, confErr.HTTPStatus)
}

func TestTransferErrors(t *testing.T) {
	assert.Equal(t, "XFER_001", ErrTransferNotFound().Code)
	assert.Equal(t, 404, ErrTransferNotFound().HTTPStatus)
	assert.Equal(t, "XFER_002", ErrTransferAlreadyClaimed().Code)
	assert.Equal(t, 409, ErrTransferAlreadyClaimed().HTTPStatus)
}

func TestJobError(t *testing.T) {
	err := ErrJobNotFound()
	assert.Equal(t, "JOB_001", err.Code)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	sysErr := InternalError(inner)
	assert.Equal(t, "SYS_001", sysErr.Code)
	assert.Equal(t, 500, sysErr.HTTPStatus)
	assert.True(t, errors.Is(sysErr, inner))

	valErr := Validation("pool size is required")
	assert.Equal(t, "VAL_001", valErr.Code)
	assert.Equal(t, 400, valErr.HTTPStatus)
	assert.Contains(t, valErr.Message, "pool size")
}
