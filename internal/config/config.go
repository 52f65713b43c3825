package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	APIKey         string   `env:"API_KEY"` // admin endpoints only
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"xma_slots"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RPCURL             string `env:"RPC_URL" envDefault:"https://api.mainnet-beta.solana.com"`
	RPCMaxRetries      uint64 `env:"RPC_MAX_RETRIES" envDefault:"2"`
	TokenMint          string `env:"TOKEN_MINT" envDefault:"HVSruatutKcgpZJXYyeRCWAnyT7mzYq1io9YoJ6F4yMP"`
	TreasuryWallet     string `env:"TREASURY_WALLET" envDefault:"5eZ3Qt1jKCGdXkCES791W68T87bGG62j9ZHcmBaMUtTP"`
	TreasuryPrivateKey string `env:"TREASURY_PRIVATE_KEY"`
	ConfirmCommitment  string `env:"CONFIRM_COMMITMENT" envDefault:"confirmed"`

	CollectMaxAmount  decimal.Decimal `env:"COLLECT_MAX_AMOUNT" envDefault:"10000000"`
	CollectRateLimit  int             `env:"COLLECT_RATE_LIMIT" envDefault:"5"`
	CollectRateWindow time.Duration   `env:"COLLECT_RATE_WINDOW" envDefault:"1m"`
	RateLimitMaxKeys  int             `env:"RATE_LIMIT_MAX_KEYS" envDefault:"10000"`

	RecoveryInterval time.Duration `env:"RECOVERY_INTERVAL" envDefault:"2m"`
	RecoveryMinAge   time.Duration `env:"RECOVERY_MIN_AGE" envDefault:"5m"`
	RecoveryBatch    int           `env:"RECOVERY_BATCH" envDefault:"100"`
	WorkerPoolSize   int           `env:"WORKER_POOL_SIZE" envDefault:"2"`

	// ServerDrawnSpinsOnly refuses spin outcomes reported through /save-game
	ServerDrawnSpinsOnly bool `env:"SERVER_DRAWN_SPINS_ONLY" envDefault:"false"`

	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`
}

// Load loads and validates the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the configuration without validating it. Tools that only need
// the database settings use it directly.
func Parse() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate enforces required keys and value ranges
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.TreasuryPrivateKey == "" {
		errs = append(errs, errors.New("TREASURY_PRIVATE_KEY environment variable must be set"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	switch c.ConfirmCommitment {
	case CommitmentConfirmed, CommitmentFinalized:
	default:
		errs = append(errs, fmt.Errorf("CONFIRM_COMMITMENT must be %q or %q, got %q", CommitmentConfirmed, CommitmentFinalized, c.ConfirmCommitment))
	}
	if !c.CollectMaxAmount.IsPositive() {
		errs = append(errs, fmt.Errorf("COLLECT_MAX_AMOUNT must be positive, got %s", c.CollectMaxAmount))
	}
	if c.CollectRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("COLLECT_RATE_LIMIT must be positive, got %d", c.CollectRateLimit))
	}
	if c.CollectRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("COLLECT_RATE_WINDOW must be positive, got %s", c.CollectRateWindow))
	}
	if c.RateLimitMaxKeys <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX_KEYS must be positive, got %d", c.RateLimitMaxKeys))
	}
	if c.RecoveryMinAge < MinRecoveryAge {
		errs = append(errs, fmt.Errorf("RECOVERY_MIN_AGE must be at least %s, got %s", MinRecoveryAge, c.RecoveryMinAge))
	}
	if c.RecoveryInterval < 0 {
		errs = append(errs, fmt.Errorf("RECOVERY_INTERVAL must not be negative, got %s", c.RecoveryInterval))
	}
	if c.WorkerPoolSize <= 0 {
		errs = append(errs, fmt.Errorf("WORKER_POOL_SIZE must be positive, got %d", c.WorkerPoolSize))
	}

	return errors.Join(errs...)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// GetServerConnString returns a connection string for the server's
// maintenance database, used to create or drop DBName
func (c *Config) GetServerConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBSSLMode,
	)
}
