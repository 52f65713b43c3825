package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/metrics"
	"github.com/xapes/xma-slots/internal/repository"
	"github.com/xapes/xma-slots/internal/slots"
)

// Service defines the interface for reward ledger operations
type Service interface {
	PurchaseSpins(ctx context.Context, wallet string, spins int, costPerSpin decimal.Decimal) (*domain.PlayerSnapshot, error)
	RecordSpin(ctx context.Context, wallet string, symbols []int, claimedWin decimal.Decimal) (*domain.SpinResult, error)
	Spin(ctx context.Context, wallet string) (*domain.SpinResult, error)
	LoadPlayer(ctx context.Context, wallet string) (*domain.PlayerSnapshot, error)
	GetHistory(ctx context.Context, wallet string, limit int) ([]domain.HistoryEntry, error)
}

// Spinner draws reel outcomes; satisfied by *slots.Engine
type Spinner interface {
	Spin() (symbols [slots.ReelCount]int, stops [slots.ReelCount]int, err error)
}

type service struct {
	players         repository.Player
	history         repository.History
	engine          Spinner
	serverDrawnOnly bool
}

// Option configures the ledger service
type Option func(*service)

// WithServerDrawnOnly refuses RecordSpin so that only outcomes drawn by Spin are paid.
func WithServerDrawnOnly(enabled bool) Option {
	return func(s *service) {
		s.serverDrawnOnly = enabled
	}
}

// NewService creates a new reward ledger service
func NewService(players repository.Player, history repository.History, engine Spinner, opts ...Option) Service {
	s := &service{
		players: players,
		history: history,
		engine:  engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) PurchaseSpins(ctx context.Context, wallet string, spins int, costPerSpin decimal.Decimal) (snap *domain.PlayerSnapshot, err error) {
	defer func() { metrics.RecordPurchase(purchaseOutcome(err)) }()
	log := logger.FromContext(ctx)

	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}
	if spins < MinSpinsPerPurchase || spins > MaxSpinsPerPurchase {
		return nil, fmt.Errorf("%w: spins must be between %d and %d", domain.ErrInvalidInput, MinSpinsPerPurchase, MaxSpinsPerPurchase)
	}
	if !costPerSpin.IsPositive() || costPerSpin.GreaterThan(decimal.NewFromInt(MaxCostPerSpin)) {
		return nil, fmt.Errorf("%w: cost per spin must be above 0 and at most %d", domain.ErrInvalidInput, MaxCostPerSpin)
	}
	if costPerSpin.Mul(decimal.NewFromInt(int64(spins))).GreaterThan(decimal.NewFromInt(MaxPurchaseTotal)) {
		return nil, fmt.Errorf("%w: purchase total exceeds %d", domain.ErrInvalidInput, MaxPurchaseTotal)
	}
	cost, err := domain.ToMinorUnits(costPerSpin)
	if err != nil {
		return nil, err
	}
	if cost <= 0 {
		return nil, fmt.Errorf("%w: cost per spin below the smallest unit", domain.ErrInvalidInput)
	}

	player, err := s.players.PurchaseSpins(ctx, wallet, spins, cost)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSpinsPurchased,
		"wallet", wallet,
		"spins", spins,
		"cost_per_spin", cost,
		"spins_remaining", player.SpinsRemaining)

	result := domain.NewPlayerSnapshot(wallet, player)
	return &result, nil
}

// RecordSpin pays a spin whose symbols were reported by the client. The payout
// comes from the stored stake, but the symbols themselves are trusted, so
// operators can turn this path off with WithServerDrawnOnly.
func (s *service) RecordSpin(ctx context.Context, wallet string, symbols []int, claimedWin decimal.Decimal) (*domain.SpinResult, error) {
	if s.serverDrawnOnly {
		logger.FromContext(ctx).Warn(LogMsgClientSpinRefused, "wallet", wallet)
		return nil, domain.ErrClientSpinsDisabled
	}
	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}
	if !slots.ValidSymbols(symbols) {
		return nil, fmt.Errorf("%w: expected %d symbols in range", domain.ErrInvalidInput, slots.ReelCount)
	}
	if claimedWin.IsNegative() {
		return nil, fmt.Errorf("%w: won amount must not be negative", domain.ErrInvalidInput)
	}

	var drawn [slots.ReelCount]int
	copy(drawn[:], symbols)

	result, win, err := s.apply(ctx, wallet, drawn)
	if err != nil {
		return nil, err
	}

	if claimed, err := domain.ToMinorUnits(claimedWin); err == nil && domain.AbsDiff(claimed, win) > domain.MinorUnitEpsilon {
		logger.FromContext(ctx).Warn(LogMsgWinDiffers,
			"wallet", wallet,
			"claimed", claimed,
			"computed", win)
	}
	return result, nil
}

func (s *service) Spin(ctx context.Context, wallet string) (*domain.SpinResult, error) {
	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}

	// Check for a credit before drawing so a refused spin never shows an outcome
	player, err := s.players.GetPlayer(ctx, wallet)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, domain.ErrNoSpinCredits
	}
	if err != nil {
		return nil, err
	}
	if player.SpinsRemaining <= 0 {
		return nil, domain.ErrNoSpinCredits
	}

	symbols, stops, err := s.engine.Spin()
	if err != nil {
		return nil, fmt.Errorf("failed to draw spin: %w", err)
	}

	result, _, err := s.apply(ctx, wallet, symbols)
	if err != nil {
		return nil, err
	}
	result.ReelStops = stops
	return result, nil
}

// apply pays the spin from the stored stake and appends it to the history.
// History is an audit trail; failing to write it does not undo the spin.
func (s *service) apply(ctx context.Context, wallet string, symbols [slots.ReelCount]int) (*domain.SpinResult, int64, error) {
	log := logger.FromContext(ctx)

	outcome, err := s.players.ApplySpin(ctx, wallet, slots.Multiplier(symbols))
	if err != nil {
		return nil, 0, err
	}
	metrics.RecordSpin(outcome.Stake, outcome.Win)

	entry := &domain.HistoryEntry{
		WalletAddress: wallet,
		SpinCost:      outcome.Stake,
		ResultSymbols: symbols[:],
		WonAmount:     outcome.Win,
	}
	if err := s.history.RecordHistory(ctx, entry); err != nil {
		log.Warn(LogMsgHistoryFailed, "wallet", wallet, "error", err)
	}

	trigger := slots.DetermineTrigger(outcome.Win, outcome.Stake)
	if trigger == slots.TriggerBigWin || trigger == slots.TriggerJackpot {
		log.Info(LogMsgBigWin, "wallet", wallet, "win", outcome.Win, "trigger", trigger)
	}
	log.Debug(LogMsgSpinRecorded,
		"wallet", wallet,
		"symbols", symbols,
		"stake", outcome.Stake,
		"win", outcome.Win,
		"spins_remaining", outcome.SpinsRemaining)

	return &domain.SpinResult{
		WalletAddress:  wallet,
		Symbols:        symbols,
		SymbolNames:    slots.Names(symbols),
		Stake:          domain.DisplayAmount(outcome.Stake),
		WonAmount:      domain.DisplayAmount(outcome.Win),
		IsWin:          outcome.Win > 0,
		Trigger:        trigger,
		SpinsRemaining: outcome.SpinsRemaining,
	}, outcome.Win, nil
}

func (s *service) LoadPlayer(ctx context.Context, wallet string) (*domain.PlayerSnapshot, error) {
	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}

	player, err := s.players.GetPlayer(ctx, wallet)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		snap := domain.NewPlayerSnapshot(wallet, nil)
		return &snap, nil
	}
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLoadPlayerFailed, "wallet", wallet, "error", err)
		return nil, err
	}
	snap := domain.NewPlayerSnapshot(wallet, player)
	return &snap, nil
}

func (s *service) GetHistory(ctx context.Context, wallet string, limit int) ([]domain.HistoryEntry, error) {
	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.history.GetHistory(ctx, wallet, limit)
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomePurchased
	case errors.Is(err, domain.ErrSpinCreditsOutstanding):
		return OutcomeOutstanding
	case errors.Is(err, domain.ErrInvalidInput):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
