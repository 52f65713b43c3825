package bootstrap

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/collect"
	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/ledger"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/ratelimit"
	"github.com/xapes/xma-slots/internal/slots"
	"github.com/xapes/xma-slots/internal/stats"
)

// Services holds the application services built from configuration.
type Services struct {
	Collect *collect.Service
	Ledger  ledger.Service
	Stats   stats.Service
}

// NewLedgerClient connects to the configured token network RPC node.
func NewLedgerClient(cfg *config.Config) (*chain.RPCLedger, error) {
	policy := chain.DefaultRetryPolicy()
	policy.MaxRetries = cfg.RPCMaxRetries

	l, err := chain.NewRPCLedger(cfg.RPCURL, cfg.ConfirmCommitment, policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildLedger, err)
	}
	return l, nil
}

// InitializeServices wires the services over the given repositories and
// token ledger.
func InitializeServices(cfg *config.Config, repos *Repositories, tokenLedger chain.Ledger) (*Services, error) {
	treasury, err := chain.ParseTreasuryKey(cfg.TreasuryPrivateKey, cfg.TreasuryWallet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTreasuryKey, err)
	}
	logger.Info(LogMsgTreasuryLoaded, "treasury", treasury.PublicKey().String())

	mint, err := solana.PublicKeyFromBase58(cfg.TokenMint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidMint, err)
	}

	builder, err := chain.NewTransferBuilder(tokenLedger, mint, treasury)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildTransfer, err)
	}

	limiter, err := ratelimit.NewMemoryLimiter(cfg.CollectRateLimit, cfg.CollectRateWindow, cfg.RateLimitMaxKeys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildLimiter, err)
	}

	engine, err := slots.NewEngine(nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildEngine, err)
	}

	collectSvc := collect.NewService(repos.Player, tokenLedger, builder, limiter, collect.Config{
		MaxAmount:      cfg.CollectMaxAmount,
		RecoveryMinAge: cfg.RecoveryMinAge,
		RecoveryBatch:  cfg.RecoveryBatch,
	})

	logger.Info(LogMsgServicesReady,
		"collect_max_amount", cfg.CollectMaxAmount.String(),
		"collect_rate_limit", cfg.CollectRateLimit,
		"collect_rate_window", cfg.CollectRateWindow.String(),
		"theoretical_rtp", slots.TheoreticalRTP())

	return &Services{
		Collect: collectSvc,
		Ledger:  ledger.NewService(repos.Player, repos.History, engine, ledger.WithServerDrawnOnly(cfg.ServerDrawnSpinsOnly)),
		Stats:   stats.NewService(repos.Stats, cfg.StatsCacheTTL),
	}, nil
}
