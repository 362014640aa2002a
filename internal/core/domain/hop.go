package domain

import (
	"time"

	"github.com/google/uuid"
)

// HopState is the multi-hop router's state machine position.
type HopState string

const (
	HopStateIdle        HopState = "IDLE"
	HopStateWithdrawing HopState = "WITHDRAWING_TO_INTERMEDIATE"
	HopStateFunded      HopState = "FUNDING_CONFIRMED"
	HopStateForwarding  HopState = "FORWARDING_TO_RECIPIENT"
	HopStateComplete    HopState = "COMPLETE"
	HopStateFailed      HopState = "FAILED"
)

// IsTerminal reports whether the job can no longer progress.
func (s HopState) IsTerminal() bool {
	return s == HopStateComplete || s == HopStateFailed
}

// HopJob tracks one withdraw-then-forward private send. The intermediate
// wallet's secret is held in the key vault from the moment the first hop
// is submitted until the job reaches a terminal state; it is the only
// credential controlling the in-flight funds.
type HopJob struct {
	ID                 uuid.UUID `json:"id"`
	PoolSize           PoolSize  `json:"pool_size"`
	FinalRecipient     string    `json:"final_recipient"`
	State              HopState  `json:"state"`
	IntermediatePubkey string    `json:"intermediate_pubkey"`
	WithdrawSignature  string    `json:"withdraw_signature,omitempty"`
	ForwardSignature   string    `json:"forward_signature,omitempty"`
	ForwardAmount      uint64    `json:"forward_amount,omitempty"`
	FailureReason      string    `json:"failure_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
