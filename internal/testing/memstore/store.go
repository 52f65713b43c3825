// Package memstore is an in-memory reward ledger for tests. It applies the
// same conditional-update rules as the Postgres repositories.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xapes/xma-slots/internal/domain"
)

// Store implements repository.Player, repository.History and repository.Stats.
type Store struct {
	mu      sync.Mutex
	players map[string]*domain.Player
	history []domain.HistoryEntry

	// Injected failures, returned by the matching method when set
	GetErr     error
	ReserveErr error
	ClearErr   error
	RestoreErr error
	HistoryErr error
	StatsErr   error

	// BeforeReserve runs before the reservation condition is evaluated,
	// outside the lock, so tests can interleave a competing writer.
	BeforeReserve func()
}

// New returns an empty store
func New() *Store {
	return &Store{players: make(map[string]*domain.Player)}
}

// Put replaces a player record
func (s *Store) Put(p domain.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.players[p.WalletAddress] = clonePlayer(&p)
}

// Player returns a copy of the stored record, or nil
func (s *Store) Player(wallet string) *domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[wallet]
	if !ok {
		return nil
	}
	return clonePlayer(p)
}

// History returns a copy of every history entry in insertion order
func (s *Store) History() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func clonePlayer(p *domain.Player) *domain.Player {
	c := *p
	if p.PendingCollect != nil {
		pc := *p.PendingCollect
		c.PendingCollect = &pc
	}
	return &c
}

func (s *Store) GetPlayer(_ context.Context, wallet string) (*domain.Player, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	p := s.Player(wallet)
	if p == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (s *Store) ReserveCollect(_ context.Context, wallet string, expectedUnclaimed int64, pending domain.PendingCollect) (bool, error) {
	if s.BeforeReserve != nil {
		s.BeforeReserve()
	}
	if s.ReserveErr != nil {
		return false, s.ReserveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[wallet]
	if !ok || p.UnclaimedRewards != expectedUnclaimed || p.PendingCollect != nil {
		return false, nil
	}
	p.UnclaimedRewards = 0
	pc := pending
	p.PendingCollect = &pc
	p.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (s *Store) resolve(wallet, signature string, amount int64, restore bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[wallet]
	if !ok || p.PendingCollect == nil || p.PendingCollect.Signature != signature || p.PendingCollect.Amount != amount {
		return false
	}
	if restore {
		p.UnclaimedRewards += p.PendingCollect.Amount
	}
	p.PendingCollect = nil
	p.UpdatedAt = time.Now().UTC()
	return true
}

func (s *Store) ClearCollect(_ context.Context, wallet, signature string, amount int64) (bool, error) {
	if s.ClearErr != nil {
		return false, s.ClearErr
	}
	return s.resolve(wallet, signature, amount, false), nil
}

func (s *Store) RestoreCollect(_ context.Context, wallet, signature string, amount int64) (bool, error) {
	if s.RestoreErr != nil {
		return false, s.RestoreErr
	}
	return s.resolve(wallet, signature, amount, true), nil
}

func (s *Store) ListPendingCollects(_ context.Context, cutoff time.Time, limit int) ([]domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Player
	for _, p := range s.players {
		if p.PendingCollect != nil && p.PendingCollect.ReservedAt.Before(cutoff) {
			out = append(out, *clonePlayer(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PendingCollect.ReservedAt.Before(out[j].PendingCollect.ReservedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) PurchaseSpins(_ context.Context, wallet string, spins int, costPerSpin int64) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p, ok := s.players[wallet]
	if !ok {
		p = &domain.Player{WalletAddress: wallet, CreatedAt: now}
		s.players[wallet] = p
	} else if p.SpinsRemaining > 0 {
		return nil, domain.ErrSpinCreditsOutstanding
	}
	p.SpinsRemaining += spins
	p.CostPerSpin = costPerSpin
	p.UpdatedAt = now
	return clonePlayer(p), nil
}

func (s *Store) ApplySpin(_ context.Context, wallet string, multiplier int64) (*domain.SpinOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[wallet]
	if !ok || p.SpinsRemaining <= 0 {
		return nil, domain.ErrNoSpinCredits
	}
	win := p.CostPerSpin * multiplier
	p.SpinsRemaining--
	p.TotalSpins++
	p.TotalWagered += p.CostPerSpin
	p.TotalWon += win
	p.UnclaimedRewards += win
	p.UpdatedAt = time.Now().UTC()
	return &domain.SpinOutcome{Stake: p.CostPerSpin, Win: win, SpinsRemaining: p.SpinsRemaining}, nil
}

func (s *Store) RecordHistory(_ context.Context, entry *domain.HistoryEntry) error {
	if s.HistoryErr != nil {
		return s.HistoryErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	s.history = append(s.history, *entry)
	return nil
}

func (s *Store) GetHistory(_ context.Context, wallet string, limit int) ([]domain.HistoryEntry, error) {
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HistoryEntry, 0)
	for i := len(s.history) - 1; i >= 0 && len(out) < limit; i-- {
		if s.history[i].WalletAddress == wallet {
			out = append(out, s.history[i])
		}
	}
	return out, nil
}

func winRate(p *domain.Player) float64 {
	if p.TotalWagered <= 0 {
		return 0
	}
	return float64(p.TotalWon) / float64(p.TotalWagered)
}

func (s *Store) Leaderboard(_ context.Context, sortBy string, limit int) ([]domain.LeaderboardRow, int, error) {
	if s.StatsErr != nil {
		return nil, 0, s.StatsErr
	}
	if !domain.ValidSortKeys[sortBy] {
		return nil, 0, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var active []*domain.Player
	for _, p := range s.players {
		if p.TotalSpins > 0 {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		switch sortBy {
		case domain.SortBySpins:
			if a.TotalSpins != b.TotalSpins {
				return a.TotalSpins > b.TotalSpins
			}
		case domain.SortByWon:
			if a.TotalWon != b.TotalWon {
				return a.TotalWon > b.TotalWon
			}
		case domain.SortByWinRate:
			if ra, rb := winRate(a), winRate(b); ra != rb {
				return ra > rb
			}
		}
		return a.WalletAddress < b.WalletAddress
	})

	total := len(active)
	if len(active) > limit {
		active = active[:limit]
	}
	rows := make([]domain.LeaderboardRow, len(active))
	for i, p := range active {
		rows[i] = domain.LeaderboardRow{
			WalletAddress: p.WalletAddress,
			TotalSpins:    p.TotalSpins,
			TotalWon:      p.TotalWon,
			TotalWagered:  p.TotalWagered,
			CreatedAt:     p.CreatedAt,
		}
	}
	return rows, total, nil
}

func (s *Store) GameTotals(context.Context) (*domain.GameTotals, error) {
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var t domain.GameTotals
	for _, p := range s.players {
		t.TotalSpins += p.TotalSpins
		t.TotalWon += p.TotalWon
		t.TotalWagered += p.TotalWagered
		t.TotalPlayers++
	}
	return &t, nil
}
