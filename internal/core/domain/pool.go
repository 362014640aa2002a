package domain

import "fmt"

// PoolSize selects one of the fixed-denomination privacy pools. Fixed
// denominations keep withdrawals indistinguishable from each other.
type PoolSize string

const (
	PoolSmall  PoolSize = "small"  // 0.1 SOL
	PoolMedium PoolSize = "medium" // 1 SOL
	PoolLarge  PoolSize = "large"  // 10 SOL
)

// Denominations in lamports, matching the on-chain pool accounts.
const (
	DenominationSmall  uint64 = 100_000_000
	DenominationMedium uint64 = 1_000_000_000
	DenominationLarge  uint64 = 10_000_000_000
)

// AllPoolSizes lists every configured pool.
var AllPoolSizes = []PoolSize{PoolSmall, PoolMedium, PoolLarge}

// ParsePoolSize validates and normalizes a pool size string.
func ParsePoolSize(s string) (PoolSize, error) {
	switch PoolSize(s) {
	case PoolSmall, PoolMedium, PoolLarge:
		return PoolSize(s), nil
	}
	return "", fmt.Errorf("unknown pool size %q", s)
}

// Denomination returns the pool's fixed deposit amount in lamports.
func (p PoolSize) Denomination() uint64 {
	switch p {
	case PoolSmall:
		return DenominationSmall
	case PoolMedium:
		return DenominationMedium
	case PoolLarge:
		return DenominationLarge
	}
	return 0
}
