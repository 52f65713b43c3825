package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/repository"
)

// HistoryRepository implements repository.History for PostgreSQL
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(pool *pgxpool.Pool) repository.History {
	return &HistoryRepository{pool: pool}
}

// RecordHistory appends a spin to game_history, assigning ID and Timestamp when unset
func (r *HistoryRepository) RecordHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	symbols := make([]int32, len(entry.ResultSymbols))
	for i, s := range entry.ResultSymbols {
		symbols[i] = int32(s)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO game_history (id, wallet_address, spin_cost, result_symbols, won_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.WalletAddress, entry.SpinCost, symbols, entry.WonAmount, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordHistory, err)
	}
	return nil
}

// GetHistory returns the most recent entries for a wallet, newest first
func (r *HistoryRepository) GetHistory(ctx context.Context, wallet string, limit int) ([]domain.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, wallet_address, spin_cost, result_symbols, won_amount, created_at
		FROM game_history
		WHERE wallet_address = $1
		ORDER BY created_at DESC
		LIMIT $2`, wallet, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHistory, err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var (
			e       domain.HistoryEntry
			symbols []int32
		)
		if err := rows.Scan(&e.ID, &e.WalletAddress, &e.SpinCost, &symbols, &e.WonAmount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHistory, err)
		}
		e.ResultSymbols = make([]int, len(symbols))
		for i, s := range symbols {
			e.ResultSymbols[i] = int(s)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
