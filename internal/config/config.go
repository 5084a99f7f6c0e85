// Package config loads the fantoken runtime configuration from FANTOKEN_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/fantoken/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. FANTOKEN_NETWORK_URL.
const Prefix = "FANTOKEN"

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"fantoken" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Network is the read-only JSON-RPC node used for chain reads.
	NetworkURL      string        `envconfig:"NETWORK_URL" required:"true" validate:"required,url"`
	ExpectedChainID int64         `envconfig:"EXPECTED_CHAIN_ID" default:"0" validate:"gte=0"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	// Wallet is the JSON-RPC endpoint of the wallet bridge. Leaving it empty
	// or setting WALLET_DISABLED turns every wallet operation into
	// "no wallet detected".
	WalletURL       string        `envconfig:"WALLET_URL" validate:"omitempty,url"`
	WalletDisabled  bool          `envconfig:"WALLET_DISABLED" default:"false"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"30s" validate:"gt=0"`
	CallTimeout     time.Duration `envconfig:"CALL_TIMEOUT" default:"5s" validate:"gt=0"`
	MonitorInterval time.Duration `envconfig:"MONITOR_INTERVAL" default:"4s" validate:"gt=0"`
	MonitorFailures int           `envconfig:"MONITOR_FAILURES" default:"3" validate:"min=1"`

	// Redis caches price and balance reads. Empty address disables the cache.
	RedisAddr      string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername  string        `envconfig:"REDIS_USERNAME"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisKeyPrefix string        `envconfig:"REDIS_KEY_PREFIX" default:"fantoken" validate:"required"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"15s" validate:"gt=0"`

	FeedCapacity int           `envconfig:"FEED_CAPACITY" default:"100" validate:"gte=0"`
	FeedMaxAge   time.Duration `envconfig:"FEED_MAX_AGE" default:"0s" validate:"gte=0"`
}

// WalletEnabled reports whether a wallet bridge should be wired.
func (c Config) WalletEnabled() bool {
	return c.WalletURL != "" && !c.WalletDisabled
}

// CacheEnabled reports whether a Redis query cache should be wired.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
