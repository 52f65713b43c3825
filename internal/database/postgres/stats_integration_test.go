package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xapes/xma-slots/internal/domain"
)

func seedPlayer(t *testing.T, wallet string, spins, won, wagered int64) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO players (wallet_address, total_spins, total_won, total_wagered)
		VALUES ($1, $2, $3, $4)`, wallet, spins, won, wagered)
	require.NoError(t, err)
}

func TestStatsRepository_Leaderboard(t *testing.T) {
	pool := requirePool(t)
	truncate(t, pool)
	repo := NewStatsRepository(pool)
	ctx := context.Background()

	seedPlayer(t, "alice", 10, 500, 1000) // 50%
	seedPlayer(t, "bob", 30, 300, 3000)   // 10%
	seedPlayer(t, "carol", 5, 2000, 500)  // 400%
	seedPlayer(t, "idle", 0, 0, 0)        // excluded

	tests := []struct {
		sortBy string
		want   []string
	}{
		{domain.SortBySpins, []string{"bob", "alice", "carol"}},
		{domain.SortByWon, []string{"carol", "alice", "bob"}},
		{domain.SortByWinRate, []string{"carol", "alice", "bob"}},
	}
	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			rows, total, err := repo.Leaderboard(ctx, tt.sortBy, 100)
			require.NoError(t, err)
			assert.Equal(t, 3, total)
			got := make([]string, len(rows))
			for i, r := range rows {
				got[i] = r.WalletAddress
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("limit keeps total", func(t *testing.T) {
		rows, total, err := repo.Leaderboard(ctx, domain.SortBySpins, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, 3, total)
	})

	t.Run("unknown sort key", func(t *testing.T) {
		_, _, err := repo.Leaderboard(ctx, "total_spins; DROP TABLE players", 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("totals", func(t *testing.T) {
		totals, err := repo.GameTotals(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(45), totals.TotalSpins)
		assert.Equal(t, int64(2800), totals.TotalWon)
		assert.Equal(t, int64(4500), totals.TotalWagered)
		assert.Equal(t, int64(4), totals.TotalPlayers)
	})
}

func TestStatsRepository_Empty(t *testing.T) {
	pool := requirePool(t)
	truncate(t, pool)
	repo := NewStatsRepository(pool)

	rows, total, err := repo.Leaderboard(context.Background(), domain.SortByWon, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)

	totals, err := repo.GameTotals(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totals.TotalSpins)
	assert.Zero(t, totals.TotalPlayers)
}

func TestHistoryRepository(t *testing.T) {
	pool := requirePool(t)
	truncate(t, pool)
	repo := NewHistoryRepository(pool)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 3; i++ {
		err := repo.RecordHistory(ctx, &domain.HistoryEntry{
			WalletAddress: "historian",
			SpinCost:      stake100,
			ResultSymbols: []int{i, i, i},
			WonAmount:     int64(i) * 1_000,
			Timestamp:     base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	entry := &domain.HistoryEntry{WalletAddress: "other", ResultSymbols: []int{1, 2, 3}}
	require.NoError(t, repo.RecordHistory(ctx, entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	got, err := repo.GetHistory(ctx, "historian", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{2, 2, 2}, got[0].ResultSymbols)
	assert.Equal(t, int64(2_000), got[0].WonAmount)
	assert.Equal(t, []int{1, 1, 1}, got[1].ResultSymbols)

	none, err := repo.GetHistory(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
