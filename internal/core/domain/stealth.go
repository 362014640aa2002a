package domain

// StealthMetaAddress is a recipient's long-lived published address pair.
// The spend key controls funds; the view key only detects payments.
type StealthMetaAddress struct {
	SpendPubkey [32]byte `json:"spend_pubkey"`
	ViewPubkey  [32]byte `json:"view_pubkey"`
	Encoded     string   `json:"encoded"`
}

// StealthMetaKeys is the secret half of a meta-address. It never leaves
// the recipient.
type StealthMetaKeys struct {
	SpendSeed  [32]byte
	ViewSecret [32]byte
}

// StealthPaymentInfo is published by a sender once per payment. The
// ephemeral key and view tag leak nothing without the view secret.
type StealthPaymentInfo struct {
	StealthAddress  string   `json:"stealth_address"` // base58 one-time address
	EphemeralPubkey [32]byte `json:"ephemeral_pubkey"`
	ViewTag         byte     `json:"view_tag"`
}
