package domain

import "time"

// Note is one deposit claim: the secret material known only to the
// depositor plus its public commitment.
//
// The commitment is always H(secret ‖ nullifier), in that order. The
// ordering is a wire contract: flipping it invalidates every note ever
// issued.
type Note struct {
	Secret       [32]byte  `json:"secret"`
	Nullifier    [32]byte  `json:"nullifier"`
	Commitment   [32]byte  `json:"commitment"`
	Proof        []byte    `json:"proof,omitempty"`
	Denomination uint64    `json:"denomination"`
	PoolSize     PoolSize  `json:"pool_size"`
	CreatedAt    time.Time `json:"created_at"`
	Used         bool      `json:"used"`
	TxSignature  string    `json:"tx_signature,omitempty"`
}

// NullifierRecord is the permanent tombstone written after a confirmed
// withdrawal. Records are append-only: never deleted, never overwritten.
type NullifierRecord struct {
	NullifierHash    [32]byte
	PoolSize         PoolSize
	UsedAt           time.Time
	RelayTxSignature string
}
