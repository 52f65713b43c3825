package collect

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/metrics"
	"github.com/xapes/xma-slots/internal/ratelimit"
	"github.com/xapes/xma-slots/internal/repository"
)

// Config tunes the collect service
type Config struct {
	MaxAmount      decimal.Decimal // display units
	RecoveryMinAge time.Duration
	RecoveryBatch  int
}

// Service moves unclaimed rewards out of the ledger and into players'
// wallets. A collect reserves the balance against a signed transfer; the
// reservation is cleared once the transfer settles, or restored when it fails
// or can no longer land.
type Service struct {
	players repository.Player
	ledger  chain.Ledger
	builder chain.Builder
	limiter ratelimit.Limiter
	cfg     Config
	now     func() time.Time
}

// NewService creates a collect service
func NewService(players repository.Player, ledger chain.Ledger, builder chain.Builder, limiter ratelimit.Limiter, cfg Config) *Service {
	if cfg.RecoveryMinAge <= 0 {
		cfg.RecoveryMinAge = DefaultRecoveryMinAge
	}
	if cfg.RecoveryBatch <= 0 {
		cfg.RecoveryBatch = DefaultRecoveryBatch
	}
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &Service{
		players: players,
		ledger:  ledger,
		builder: builder,
		limiter: limiter,
		cfg:     cfg,
		now:     time.Now,
	}
}

// RequestCollect builds a treasury-signed transfer of the wallet's unclaimed
// rewards and reserves that balance against it. The claimed amount is only
// checked for sanity; the ledger decides how much is paid.
func (s *Service) RequestCollect(ctx context.Context, wallet string, claimed decimal.Decimal) (result *domain.CollectResult, err error) {
	defer func() { metrics.RecordCollect(collectOutcome(err)) }()
	log := logger.FromContext(ctx)

	dest, err := chain.ParseWallet(wallet)
	if err != nil {
		return nil, err
	}
	if !claimed.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if s.cfg.MaxAmount.IsPositive() && claimed.GreaterThan(s.cfg.MaxAmount) {
		return nil, fmt.Errorf("%w: amount exceeds maximum of %s", domain.ErrInvalidInput, s.cfg.MaxAmount.String())
	}
	claimedMinor, err := domain.ToMinorUnits(claimed)
	if err != nil {
		return nil, err
	}

	if !s.limiter.Allow(wallet) {
		return nil, domain.ErrRateLimited
	}

	player, err := s.players.GetPlayer(ctx, wallet)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, domain.ErrNothingToCollect
	}
	if err != nil {
		return nil, err
	}
	if player.HasPendingCollect() {
		return nil, domain.ErrAlreadyCollected
	}
	if player.UnclaimedRewards <= 0 {
		return nil, domain.ErrNothingToCollect
	}

	amount := player.UnclaimedRewards
	if domain.AbsDiff(claimedMinor, amount) > domain.MinorUnitEpsilon {
		log.Warn(LogMsgAmountCorrected,
			"wallet", wallet,
			"claimed", claimedMinor,
			"ledger", amount)
	}

	transfer, err := s.builder.BuildTransfer(ctx, dest, uint64(amount))
	if err != nil {
		return nil, err
	}

	reserved, err := s.players.ReserveCollect(ctx, wallet, amount, domain.PendingCollect{
		Amount:          amount,
		Signature:       transfer.Signature.String(),
		LastValidHeight: transfer.LastValidHeight,
		ReservedAt:      s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !reserved {
		// The signed transfer is dropped here and never reaches the client
		log.Info(LogMsgCollectLostRace, "wallet", wallet)
		return nil, domain.ErrAlreadyCollected
	}

	log.Info(LogMsgCollectReserved,
		"wallet", wallet,
		"amount", amount,
		"signature", transfer.Signature.String(),
		"creates_account", transfer.CreatesAccount)

	return &domain.CollectResult{
		Transaction:  transfer.Transaction,
		Signature:    transfer.Signature.String(),
		ActualAmount: amount,
	}, nil
}

func collectOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeReserved
	case errors.Is(err, domain.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrRateLimited):
		return OutcomeRateLimited
	case errors.Is(err, domain.ErrNothingToCollect):
		return OutcomeNothingToCollect
	case errors.Is(err, domain.ErrAlreadyCollected):
		return OutcomeAlreadyCollected
	case errors.Is(err, domain.ErrTreasuryInsufficientFunds), errors.Is(err, domain.ErrTreasuryAccountMissing):
		return OutcomeTreasury
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return OutcomeLedger
	default:
		return OutcomeError
	}
}
