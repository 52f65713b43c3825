package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/repository"
)

// leaderboardOrder maps sort keys to ORDER BY clauses. Keys are validated
// against this map before being used in SQL.
var leaderboardOrder = map[string]string{
	domain.SortBySpins:   "total_spins DESC, wallet_address ASC",
	domain.SortByWon:     "total_won DESC, wallet_address ASC",
	domain.SortByWinRate: "CASE WHEN total_wagered > 0 THEN total_won::numeric / total_wagered ELSE 0 END DESC, wallet_address ASC",
}

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) repository.Stats {
	return &StatsRepository{pool: pool}
}

// Leaderboard returns ranked players who have spun at least once
func (r *StatsRepository) Leaderboard(ctx context.Context, sortBy string, limit int) ([]domain.LeaderboardRow, int, error) {
	order, ok := leaderboardOrder[sortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidInput, sortBy)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT wallet_address, total_spins, total_won, total_wagered, created_at,
		       COUNT(*) OVER () AS total_players
		FROM players
		WHERE total_spins > 0
		ORDER BY `+order+`
		LIMIT $1`, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardRow, 0)
	total := 0
	for rows.Next() {
		var e domain.LeaderboardRow
		if err := rows.Scan(&e.WalletAddress, &e.TotalSpins, &e.TotalWon, &e.TotalWagered, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}

	// COUNT(*) OVER () is only visible when at least one row is returned
	if len(entries) == 0 {
		return entries, 0, nil
	}
	return entries, total, nil
}

// GameTotals sums the ledger across all players
func (r *StatsRepository) GameTotals(ctx context.Context) (*domain.GameTotals, error) {
	var t domain.GameTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_spins), 0)::bigint,
		       COALESCE(SUM(total_won), 0)::bigint,
		       COALESCE(SUM(total_wagered), 0)::bigint,
		       COUNT(*)
		FROM players`).Scan(&t.TotalSpins, &t.TotalWon, &t.TotalWagered, &t.TotalPlayers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTotals, err)
	}
	return &t, nil
}
