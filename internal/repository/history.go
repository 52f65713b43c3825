package repository

import (
	"context"

	"github.com/xapes/xma-slots/internal/domain"
)

// History is the append-only spin log
type History interface {
	RecordHistory(ctx context.Context, entry *domain.HistoryEntry) error
	GetHistory(ctx context.Context, wallet string, limit int) ([]domain.HistoryEntry, error)
}
