package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/repository"
	"github.com/xapes/xma-slots/internal/utils"
)

// Service defines the interface for leaderboard and aggregate reads
type Service interface {
	Leaderboard(ctx context.Context, sortBy string, limit int) (*domain.Leaderboard, error)
	GameStats(ctx context.Context) (*domain.GameStats, error)
	Invalidate()
}

// service implements the Service interface
type service struct {
	repo  repository.Stats
	cache *resultCache
}

// NewService creates a new stats service. A non-positive ttl disables caching.
func NewService(repo repository.Stats, ttl time.Duration) Service {
	s := &service{repo: repo}
	if ttl > 0 {
		s.cache = newResultCache(DefaultCacheSize, ttl)
	}
	return s
}

// Leaderboard ranks players with at least one spin by sortBy. An empty sortBy
// ranks by spins.
func (s *service) Leaderboard(ctx context.Context, sortBy string, limit int) (*domain.Leaderboard, error) {
	log := logger.FromContext(ctx)

	if sortBy == "" {
		sortBy = domain.SortBySpins
	}
	if !domain.ValidSortKeys[sortBy] {
		return nil, fmt.Errorf("%w: sortBy must be one of spins, won, winRate", domain.ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		limit = MaxLeaderboardLimit
	}

	key := sortBy + ":" + strconv.Itoa(limit)
	if v, ok := s.cached(key); ok {
		log.Debug(LogMsgCacheHit, "key", key)
		return v.(*domain.Leaderboard), nil
	}

	rows, total, err := s.repo.Leaderboard(ctx, sortBy, limit)
	if err != nil {
		log.Error(LogMsgLeaderboardFailed, "sort_by", sortBy, "error", err)
		return nil, err
	}

	board := &domain.Leaderboard{
		Entries:      make([]domain.LeaderboardEntry, len(rows)),
		SortBy:       sortBy,
		TotalPlayers: total,
	}
	for i, r := range rows {
		board.Entries[i] = domain.LeaderboardEntry{
			WalletAddress:  r.WalletAddress,
			DisplayAddress: domain.ShortAddress(r.WalletAddress),
			TotalSpins:     r.TotalSpins,
			TotalWon:       domain.DisplayAmount(r.TotalWon),
			TotalWagered:   domain.DisplayAmount(r.TotalWagered),
			WinRate:        utils.SafeRatio(r.TotalWon, r.TotalWagered) * 100,
			CreatedAt:      r.CreatedAt,
		}
	}

	s.store(key, board)
	return board, nil
}

// GameStats returns grand totals across every player.
func (s *service) GameStats(ctx context.Context) (*domain.GameStats, error) {
	log := logger.FromContext(ctx)

	if v, ok := s.cached(gameStatsKey); ok {
		log.Debug(LogMsgCacheHit, "key", gameStatsKey)
		return v.(*domain.GameStats), nil
	}

	totals, err := s.repo.GameTotals(ctx)
	if err != nil {
		log.Error(LogMsgGameStatsFailed, "error", err)
		return nil, err
	}

	stats := &domain.GameStats{
		GrandTotalSpins:   totals.TotalSpins,
		GrandTotalWon:     domain.DisplayAmount(totals.TotalWon),
		GrandTotalWagered: domain.DisplayAmount(totals.TotalWagered),
		TotalPlayers:      totals.TotalPlayers,
	}
	s.store(gameStatsKey, stats)
	return stats, nil
}

// Invalidate drops every cached read
func (s *service) Invalidate() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

func (s *service) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *service) store(key string, v any) {
	if s.cache != nil {
		s.cache.Set(key, v)
	}
}
