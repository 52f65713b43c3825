package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/scheduler"
	"github.com/xapes/xma-slots/internal/testing/memstore"
	"github.com/xapes/xma-slots/internal/worker"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	mint, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	return &config.Config{
		TreasuryPrivateKey: key.String(),
		TreasuryWallet:     key.PublicKey().String(),
		TokenMint:          mint.PublicKey().String(),
		CollectMaxAmount:   decimal.NewFromInt(1000),
		CollectRateLimit:   5,
		CollectRateWindow:  time.Minute,
		RateLimitMaxKeys:   100,
		RecoveryMinAge:     time.Minute,
		RecoveryBatch:      10,
		StatsCacheTTL:      time.Second,
	}
}

func testRepos() *Repositories {
	store := memstore.New()
	return &Repositories{Player: store, History: store, Stats: store}
}

func TestInitializeServices(t *testing.T) {
	cfg := testConfig(t)
	repos := testRepos()

	svcs, err := InitializeServices(cfg, repos, chain.NewFakeLedger())
	require.NoError(t, err)
	require.NotNil(t, svcs.Collect)
	require.NotNil(t, svcs.Ledger)
	require.NotNil(t, svcs.Stats)

	snap, err := svcs.Ledger.LoadPlayer(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Zero(t, snap.TotalSpins)

	_, err = svcs.Collect.RequestCollect(context.Background(), cfg.TreasuryWallet, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNothingToCollect)
}

func TestInitializeServices_BadInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"treasury key for another wallet", func(c *config.Config) {
			other, _ := solana.NewRandomPrivateKey()
			c.TreasuryWallet = other.PublicKey().String()
		}, ErrMsgInvalidTreasuryKey},
		{"garbage treasury key", func(c *config.Config) { c.TreasuryPrivateKey = "not-a-key" }, ErrMsgInvalidTreasuryKey},
		{"garbage mint", func(c *config.Config) { c.TokenMint = "0OIl" }, ErrMsgInvalidMint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			_, err := InitializeServices(cfg, testRepos(), chain.NewFakeLedger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLedgerClient_RejectsUnknownCommitment(t *testing.T) {
	cfg := testConfig(t)
	cfg.RPCURL = "http://127.0.0.1:1"
	cfg.ConfirmCommitment = "processed"

	_, err := NewLedgerClient(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgBuildLedger)
}

type recordingStopper struct {
	order *[]string
	err   error
}

func (r recordingStopper) Stop(context.Context) error {
	*r.order = append(*r.order, "server")
	return r.err
}

type recordingDB struct {
	order *[]string
}

func (recordingDB) Ping(context.Context) error { return nil }
func (r recordingDB) Close()                   { *r.order = append(*r.order, "db") }

func TestGracefulShutdown(t *testing.T) {
	var order []string
	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:    recordingStopper{order: &order, err: errors.New("deadline exceeded")},
		Scheduler: sched,
		Workers:   pool,
		DB:        recordingDB{order: &order},
	})

	assert.Equal(t, []string{"server", "db"}, order, "server error does not stop the sequence")
	assert.False(t, pool.Enqueue(nil), "workers stopped")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
