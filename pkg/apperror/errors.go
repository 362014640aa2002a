package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// The wrapped Err carries internal diagnostic detail and is never
// serialized to clients.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Note verification (NOTE) ----

// ErrNoteInvalid is returned when the recomputed commitment does not match
// the one presented. The mismatch detail stays in the wrapped error only.
func ErrNoteInvalid(err error) *AppError {
	return Wrap("NOTE_001", "Note verification failed", http.StatusBadRequest, err)
}

func ErrAlreadySpent() *AppError {
	return New("NOTE_002", "Note has already been spent", http.StatusConflict)
}

func ErrSpendInProgress() *AppError {
	return New("NOTE_003", "A withdrawal for this note is already in flight", http.StatusConflict)
}

// ---- Pool liquidity (POOL) ----

func ErrInsufficientLiquidity() *AppError {
	return New("POOL_001", "Pool vault has insufficient liquidity", http.StatusServiceUnavailable)
}

func ErrInsufficientIntermediateFunds() *AppError {
	return New("POOL_002", "Intermediate wallet balance cannot cover the forward transfer", http.StatusUnprocessableEntity)
}

func ErrUnknownPool() *AppError {
	return New("POOL_003", "Unknown pool size", http.StatusBadRequest)
}

// ---- Chain interaction (CHAIN) ----

func ErrChainSubmission(err error) *AppError {
	return Wrap("CHAIN_001", "Transaction submission failed", http.StatusBadGateway, err)
}

// ErrUnknownConfirmation marks an ambiguous outcome: the transaction may or
// may not have landed. Callers must reconcile via signature status before
// touching the nullifier ledger.
func ErrUnknownConfirmation(err error) *AppError {
	return Wrap("CHAIN_002", "Transaction confirmation outcome unknown", http.StatusGatewayTimeout, err)
}

// ---- Pending transfers (XFER) ----

func ErrTransferNotFound() *AppError {
	return New("XFER_001", "Pending transfer not found", http.StatusNotFound)
}

func ErrTransferAlreadyClaimed() *AppError {
	return New("XFER_002", "Pending transfer has already been claimed", http.StatusConflict)
}

// ---- Router jobs (JOB) ----

func ErrJobNotFound() *AppError {
	return New("JOB_001", "Hop job not found", http.StatusNotFound)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error for malformed fields.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
