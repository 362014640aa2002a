package domain

import (
	"time"

	"github.com/google/uuid"
)

// ElGamalKeypair is the confidential-balance keypair. It is derived
// deterministically from a wallet-signed message, so it is recoverable
// without separate key storage.
type ElGamalKeypair struct {
	PublicKey [32]byte
	SecretKey [32]byte
}

// ElGamalCiphertext encodes a single u64 amount. Commitment carries the
// ephemeral public key; Handle carries nonce ‖ authenticated ciphertext.
type ElGamalCiphertext struct {
	Commitment [32]byte `json:"commitment"`
	Handle     []byte   `json:"handle"`
}

// PendingConfidentialTransfer holds funds sent to a recipient who has no
// registered account yet. The single-use stealth wallet is the sole
// custodian until the recipient claims; its secret key is stored
// encrypted for the recipient only.
type PendingConfidentialTransfer struct {
	ID                  uuid.UUID         `json:"id"`
	Sender              string            `json:"sender"`
	Recipient           string            `json:"recipient"`
	StealthWalletPubkey string            `json:"stealth_wallet_pubkey"`
	EncryptedSecretKey  []byte            `json:"-"`
	EncryptedAmount     ElGamalCiphertext `json:"encrypted_amount"`
	AmountLamports      uint64            `json:"amount_lamports"`
	CreatedAt           time.Time         `json:"created_at"`
	Claimed             bool              `json:"claimed"`
}
