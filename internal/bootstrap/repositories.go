package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xapes/xma-slots/internal/database/postgres"
	"github.com/xapes/xma-slots/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player  repository.Player
	History repository.History
	Stats   repository.Stats
}

// InitializeRepositories creates the Postgres-backed repositories.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:  postgres.NewPlayerRepository(dbPool),
		History: postgres.NewHistoryRepository(dbPool),
		Stats:   postgres.NewStatsRepository(dbPool),
	}
}
