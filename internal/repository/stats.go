package repository

import (
	"context"

	"github.com/xapes/xma-slots/internal/domain"
)

// Stats defines the interface for aggregate reads over the ledger
type Stats interface {
	// Leaderboard returns up to limit players with at least one spin, ordered
	// by sortBy, and the total number of such players.
	Leaderboard(ctx context.Context, sortBy string, limit int) ([]domain.LeaderboardRow, int, error)
	GameTotals(ctx context.Context) (*domain.GameTotals, error)
}
