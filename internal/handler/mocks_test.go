package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/xapes/xma-slots/internal/domain"
)

// MockCollectService mocks CollectService
type MockCollectService struct {
	mock.Mock
}

func (m *MockCollectService) RequestCollect(ctx context.Context, wallet string, claimed decimal.Decimal) (*domain.CollectResult, error) {
	args := m.Called(ctx, wallet, claimed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectResult), args.Error(1)
}

func (m *MockCollectService) ConfirmCollect(ctx context.Context, wallet, transferID string, claimed decimal.Decimal) (*domain.ConfirmResult, error) {
	args := m.Called(ctx, wallet, transferID, claimed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmResult), args.Error(1)
}

func (m *MockCollectService) RecoverAbandoned(ctx context.Context) (*domain.RecoveryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecoveryReport), args.Error(1)
}

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) PurchaseSpins(ctx context.Context, wallet string, spins int, costPerSpin decimal.Decimal) (*domain.PlayerSnapshot, error) {
	args := m.Called(ctx, wallet, spins, costPerSpin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerSnapshot), args.Error(1)
}

func (m *MockLedgerService) RecordSpin(ctx context.Context, wallet string, symbols []int, claimedWin decimal.Decimal) (*domain.SpinResult, error) {
	args := m.Called(ctx, wallet, symbols, claimedWin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockLedgerService) Spin(ctx context.Context, wallet string) (*domain.SpinResult, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockLedgerService) LoadPlayer(ctx context.Context, wallet string) (*domain.PlayerSnapshot, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerSnapshot), args.Error(1)
}

func (m *MockLedgerService) GetHistory(ctx context.Context, wallet string, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, wallet, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

// MockStatsService mocks stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Leaderboard(ctx context.Context, sortBy string, limit int) (*domain.Leaderboard, error) {
	args := m.Called(ctx, sortBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockStatsService) GameStats(ctx context.Context) (*domain.GameStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameStats), args.Error(1)
}

func (m *MockStatsService) Invalidate() {
	m.Called()
}

// decimalEq matches a decimal argument by value
func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
