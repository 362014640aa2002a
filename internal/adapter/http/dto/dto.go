package dto

// GenerateNoteRequest is the request body for note generation.
type GenerateNoteRequest struct {
	PoolSize string `json:"pool_size" binding:"required,oneof=small medium large"`
}

// NoteResponse returns the full note to the depositor. The secret
// material is returned exactly once and never stored server-side.
type NoteResponse struct {
	Secret       string `json:"secret"`
	Nullifier    string `json:"nullifier"`
	Commitment   string `json:"commitment"`
	Proof        string `json:"proof,omitempty"`
	Denomination uint64 `json:"denomination"`
	PoolSize     string `json:"pool_size"`
	CreatedAt    string `json:"created_at"`
}

// RelayRequest is the request body for a relayed withdrawal.
type RelayRequest struct {
	Commitment string `json:"commitment" binding:"required,hex32"`
	Nullifier  string `json:"nullifier" binding:"required,hex32"`
	Secret     string `json:"secret" binding:"required,hex32"`
	Recipient  string `json:"recipient" binding:"required,base58_32"`
	PoolSize   string `json:"pool_size" binding:"required,oneof=small medium large"`
}

// RelayResponse is the response body for a confirmed withdrawal.
type RelayResponse struct {
	Signature       string `json:"signature"`
	Fee             uint64 `json:"fee"`
	RecipientAmount uint64 `json:"recipient_amount"`
}

// StealthRelayRequest withdraws to a one-time address derived from a
// recipient's published meta-address.
type StealthRelayRequest struct {
	Commitment  string `json:"commitment" binding:"required,hex32"`
	Nullifier   string `json:"nullifier" binding:"required,hex32"`
	Secret      string `json:"secret" binding:"required,hex32"`
	MetaAddress string `json:"meta_address" binding:"required"`
	PoolSize    string `json:"pool_size" binding:"required,oneof=small medium large"`
}

// StealthRelayResponse adds the announcement material a scanner needs.
type StealthRelayResponse struct {
	RelayResponse
	StealthAddress  string `json:"stealth_address"`
	EphemeralPubkey string `json:"ephemeral_pubkey"`
	ViewTag         byte   `json:"view_tag"`
}

// MetaAddressResponse is the response for meta-address generation.
// Secret halves are returned once; the service retains nothing.
type MetaAddressResponse struct {
	Encoded     string `json:"encoded"`
	SpendPubkey string `json:"spend_pubkey"`
	ViewPubkey  string `json:"view_pubkey"`
	SpendSeed   string `json:"spend_seed"`
	ViewSecret  string `json:"view_secret"`
}

// PrivateSendRequest starts a multi-hop withdraw-then-forward job.
type PrivateSendRequest struct {
	Commitment     string `json:"commitment" binding:"required,hex32"`
	Nullifier      string `json:"nullifier" binding:"required,hex32"`
	Secret         string `json:"secret" binding:"required,hex32"`
	FinalRecipient string `json:"final_recipient" binding:"required,base58_32"`
	PoolSize       string `json:"pool_size" binding:"required,oneof=small medium large"`
}

// HopJobResponse is the polling view of a hop job. The note material
// never appears here.
type HopJobResponse struct {
	ID                 string `json:"id"`
	State              string `json:"state"`
	PoolSize           string `json:"pool_size"`
	FinalRecipient     string `json:"final_recipient"`
	IntermediatePubkey string `json:"intermediate_pubkey"`
	WithdrawSignature  string `json:"withdraw_signature,omitempty"`
	ForwardSignature   string `json:"forward_signature,omitempty"`
	ForwardAmount      uint64 `json:"forward_amount,omitempty"`
	FailureReason      string `json:"failure_reason,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// CreateTransferRequest escrows a confidential amount for a recipient
// without a registered account.
type CreateTransferRequest struct {
	Sender         string `json:"sender" binding:"required,max=128"`
	Recipient      string `json:"recipient" binding:"required,max=128"`
	AmountLamports uint64 `json:"amount_lamports" binding:"required,gt=0"`
	RecipientPub   string `json:"recipient_pub" binding:"required,hex32"`
}

// TransferResponse describes a pending confidential transfer.
type TransferResponse struct {
	ID                  string `json:"id"`
	Sender              string `json:"sender"`
	Recipient           string `json:"recipient"`
	StealthWalletPubkey string `json:"stealth_wallet_pubkey"`
	AmountLamports      uint64 `json:"amount_lamports"`
	CreatedAt           string `json:"created_at"`
	Claimed             bool   `json:"claimed"`
}

// ClaimTransferRequest redeems a pending transfer.
type ClaimTransferRequest struct {
	Recipient string `json:"recipient" binding:"required,max=128"`
	SecretKey string `json:"secret_key" binding:"required,hex32"`
}

// ClaimTransferResponse returns custody of the escrow wallet.
type ClaimTransferResponse struct {
	StealthWalletPubkey string `json:"stealth_wallet_pubkey"`
	StealthWalletSecret string `json:"stealth_wallet_secret"`
	AmountLamports      uint64 `json:"amount_lamports"`
}

// PoolInfo describes one fixed-denomination pool.
type PoolInfo struct {
	PoolSize     string `json:"pool_size"`
	Denomination uint64 `json:"denomination"`
	Fee          uint64 `json:"fee"`
	VaultAddress string `json:"vault_address"`
	VaultBalance uint64 `json:"vault_balance"`
}

// EstimateFeeRequest quotes a withdrawal before the note is presented.
type EstimateFeeRequest struct {
	PoolSize string `json:"pool_size" binding:"required,oneof=small medium large"`
}

// EstimateFeeResponse is a deterministic fee quote for one pool.
type EstimateFeeResponse struct {
	PoolSize        string `json:"pool_size"`
	Denomination    uint64 `json:"denomination"`
	Fee             uint64 `json:"fee"`
	RecipientAmount uint64 `json:"recipient_amount"`
}

// InfoResponse is the relayer's public configuration.
type InfoResponse struct {
	RelayerPubkey string     `json:"relayer_pubkey"`
	FeePercent    float64    `json:"fee_percent"`
	MinFee        uint64     `json:"min_fee_lamports"`
	MaxFee        uint64     `json:"max_fee_lamports"`
	Pools         []PoolInfo `json:"pools"`
}
