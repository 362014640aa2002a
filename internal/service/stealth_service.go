package service

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"velo-relay/internal/core/domain"
	"velo-relay/internal/crypto"
	"velo-relay/pkg/apperror"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"
)

// metaAddressPrefix tags encoded meta-addresses so they cannot be
// confused with plain chain addresses.
const metaAddressPrefix = "stealth"

// StealthServiceImpl implements ports.StealthService.
//
// A meta-address publishes two keys: an ed25519 spend key that controls
// funds and an X25519 view key that only detects payments. Each payment
// derives a one-time address from an ephemeral ECDH exchange against the
// view key, so on-chain observers see unrelated fresh addresses.
type StealthServiceImpl struct {
	log zerolog.Logger
}

// NewStealthService creates a new StealthServiceImpl.
func NewStealthService(log zerolog.Logger) *StealthServiceImpl {
	return &StealthServiceImpl{log: log}
}

// GenerateMetaAddress creates a recipient's long-lived key material.
func (s *StealthServiceImpl) GenerateMetaAddress() (*domain.StealthMetaAddress, *domain.StealthMetaKeys, error) {
	spendSeed, err := crypto.RandomBytes32()
	if err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	spendPriv := crypto.KeypairFromSeed(spendSeed)
	var spendPub [32]byte
	copy(spendPub[:], spendPriv.Public().(ed25519.PublicKey))

	viewPub, viewSecret, err := crypto.NewX25519Keypair()
	if err != nil {
		return nil, nil, apperror.InternalError(err)
	}

	meta := &domain.StealthMetaAddress{
		SpendPubkey: spendPub,
		ViewPubkey:  viewPub,
		Encoded: fmt.Sprintf("%s:%s:%s",
			metaAddressPrefix,
			base58.Encode(spendPub[:]),
			base58.Encode(viewPub[:]),
		),
	}
	keys := &domain.StealthMetaKeys{
		SpendSeed:  spendSeed,
		ViewSecret: viewSecret,
	}
	return meta, keys, nil
}

// ParseMetaAddress decodes a "stealth:<spend>:<view>" string.
func (s *StealthServiceImpl) ParseMetaAddress(encoded string) (*domain.StealthMetaAddress, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 || parts[0] != metaAddressPrefix {
		return nil, apperror.Validation("meta-address must have the form stealth:<spend>:<view>")
	}
	spendPub, err := crypto.DecodeAddress(parts[1])
	if err != nil {
		return nil, apperror.Validation("meta-address spend key is not a valid base58 32-byte key")
	}
	viewPub, err := crypto.DecodeAddress(parts[2])
	if err != nil {
		return nil, apperror.Validation("meta-address view key is not a valid base58 32-byte key")
	}
	return &domain.StealthMetaAddress{
		SpendPubkey: spendPub,
		ViewPubkey:  viewPub,
		Encoded:     encoded,
	}, nil
}

// DeriveStealthAddress computes a fresh one-time address for a payment
// to the given meta-address. Each call uses a new ephemeral key, so two
// payments to the same recipient are unlinkable.
func (s *StealthServiceImpl) DeriveStealthAddress(meta *domain.StealthMetaAddress) (*domain.StealthPaymentInfo, error) {
	ephPub, ephPriv, err := crypto.NewX25519Keypair()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	shared, err := crypto.SharedSecret(ephPriv, meta.ViewPubkey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ecdh against view key: %w", err))
	}

	stealthPub := stealthPublicKey(shared, meta.SpendPubkey)
	return &domain.StealthPaymentInfo{
		StealthAddress:  crypto.EncodeAddress(stealthPub),
		EphemeralPubkey: ephPub,
		ViewTag:         viewTag(shared),
	}, nil
}

// scanParallelThreshold is the candidate count above which Scan fans
// out across workers. Each candidate check is stateless.
const scanParallelThreshold = 64

// Scan filters candidate payments down to those addressed to the holder
// of viewSecret. The view tag rejects most non-matches with a single
// byte comparison before any key derivation happens.
func (s *StealthServiceImpl) Scan(viewSecret, spendPubkey [32]byte, candidates []domain.StealthPaymentInfo) []domain.StealthPaymentInfo {
	if len(candidates) <= scanParallelThreshold {
		var matches []domain.StealthPaymentInfo
		for _, c := range candidates {
			if s.scanMatch(viewSecret, spendPubkey, c) {
				matches = append(matches, c)
			}
		}
		return matches
	}

	hits := make([]bool, len(candidates))
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(candidates) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				hits[i] = s.scanMatch(viewSecret, spendPubkey, candidates[i])
			}
		}(start, end)
	}
	wg.Wait()

	// Matches keep candidate order regardless of worker scheduling.
	var matches []domain.StealthPaymentInfo
	for i, hit := range hits {
		if hit {
			matches = append(matches, candidates[i])
		}
	}
	return matches
}

func (s *StealthServiceImpl) scanMatch(viewSecret, spendPubkey [32]byte, c domain.StealthPaymentInfo) bool {
	shared, err := crypto.SharedSecret(viewSecret, c.EphemeralPubkey)
	if err != nil {
		return false
	}
	if viewTag(shared) != c.ViewTag {
		return false
	}
	return crypto.EncodeAddress(stealthPublicKey(shared, spendPubkey)) == c.StealthAddress
}

// DeriveSpendingKey recovers the ed25519 key controlling a detected
// stealth payment.
func (s *StealthServiceImpl) DeriveSpendingKey(viewSecret, spendPubkey, ephemeralPubkey [32]byte) (ed25519.PrivateKey, error) {
	shared, err := crypto.SharedSecret(viewSecret, ephemeralPubkey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ecdh against ephemeral key: %w", err))
	}
	return crypto.KeypairFromSeed(stealthSeed(shared, spendPubkey)), nil
}

// stealthSeed binds the shared secret to the recipient's spend key so
// distinct recipients sharing a view key still get distinct addresses.
func stealthSeed(shared, spendPubkey [32]byte) [32]byte {
	h := sha256.New()
	h.Write(shared[:])
	h.Write(spendPubkey[:])
	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return seed
}

func stealthPublicKey(shared, spendPubkey [32]byte) ed25519.PublicKey {
	priv := crypto.KeypairFromSeed(stealthSeed(shared, spendPubkey))
	return priv.Public().(ed25519.PublicKey)
}

// viewTag is the first byte of the hashed shared secret. One byte leaks
// nothing useful but lets scanners skip 255 of 256 candidates cheaply.
func viewTag(shared [32]byte) byte {
	return sha256.Sum256(shared[:])[0]
}
