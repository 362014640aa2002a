package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"velo-relay/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Relayer  RelayerConfig  `mapstructure:"relayer"`
	Router   RouterConfig   `mapstructure:"router"`
	Decoy    DecoyConfig    `mapstructure:"decoy"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type ChainConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	ProgramID      string        `mapstructure:"program_id"`      // base58 mixer program address
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // per RPC call
}

type RelayerConfig struct {
	// Keypair is the relayer's base58-encoded 64-byte ed25519 keypair.
	// The relayer signs and pays for every withdrawal; depositor keys
	// never appear on chain.
	Keypair        string        `mapstructure:"keypair"`
	FeePercent     float64       `mapstructure:"fee_percent"`
	MinFeeLamports uint64        `mapstructure:"min_fee_lamports"`
	MaxFeeLamports uint64        `mapstructure:"max_fee_lamports"`
	MaxRetries     int           `mapstructure:"max_retries"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	// VaultKey encrypts intermediate-wallet secrets at rest
	// (64-char hex, 32 bytes decoded).
	VaultKey string `mapstructure:"vault_key"`
}

// Validate rejects fee settings the on-chain program would refuse. The
// program caps the relayer fee at 1% of the pool denomination, so a
// misconfigured fee would fail every withdrawal at submission time.
func (r RelayerConfig) Validate() error {
	if r.FeePercent < 0 || r.FeePercent > 1.0 {
		return fmt.Errorf("relayer.fee_percent %v outside [0, 1]: the program caps fees at 1%% of the denomination", r.FeePercent)
	}
	if r.MinFeeLamports > r.MaxFeeLamports {
		return fmt.Errorf("relayer.min_fee_lamports %d exceeds max_fee_lamports %d", r.MinFeeLamports, r.MaxFeeLamports)
	}
	if feeCap := domain.DenominationSmall / 100; r.MinFeeLamports > feeCap {
		return fmt.Errorf("relayer.min_fee_lamports %d exceeds the smallest pool's fee cap of %d lamports", r.MinFeeLamports, feeCap)
	}
	return nil
}

type RouterConfig struct {
	// FeeReserveLamports is left in the intermediate wallet to cover the
	// forward transfer's network fee.
	FeeReserveLamports uint64 `mapstructure:"fee_reserve_lamports"`
}

type DecoyConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VELO.
// Nested keys use underscore: VELO_DATABASE_HOST, VELO_RELAYER_KEYPAIR, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "velo_relay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.rpc_url", "http://localhost:8899")
	v.SetDefault("chain.program_id", "")
	v.SetDefault("chain.request_timeout", "15s")
	v.SetDefault("relayer.keypair", "")
	v.SetDefault("relayer.fee_percent", 0.5)
	v.SetDefault("relayer.min_fee_lamports", 500_000)
	v.SetDefault("relayer.max_fee_lamports", 10_000_000)
	v.SetDefault("relayer.max_retries", 3)
	v.SetDefault("relayer.confirm_timeout", "60s")
	v.SetDefault("relayer.vault_key", "")
	v.SetDefault("router.fee_reserve_lamports", 5_000)
	v.SetDefault("decoy.enabled", false)
	v.SetDefault("decoy.interval", "90s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VELO_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VELO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Relayer.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
