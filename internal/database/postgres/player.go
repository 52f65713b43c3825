package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/repository"
)

const playerColumns = `
	wallet_address, total_spins, total_wagered, total_won, unclaimed_rewards,
	spins_remaining, cost_per_spin,
	pending_collect_amount, pending_collect_signature, pending_collect_valid_height, pending_collect_at,
	created_at, updated_at`

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(pool *pgxpool.Pool) repository.Player {
	return &PlayerRepository{pool: pool}
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		p             domain.Player
		pendingAmount int64
		pendingSig    *string
		pendingHeight int64
		pendingAt     *time.Time
	)
	err := row.Scan(
		&p.WalletAddress, &p.TotalSpins, &p.TotalWagered, &p.TotalWon, &p.UnclaimedRewards,
		&p.SpinsRemaining, &p.CostPerSpin,
		&pendingAmount, &pendingSig, &pendingHeight, &pendingAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pendingAmount > 0 {
		pc := &domain.PendingCollect{
			Amount:          pendingAmount,
			LastValidHeight: uint64(pendingHeight),
		}
		if pendingSig != nil {
			pc.Signature = *pendingSig
		}
		if pendingAt != nil {
			pc.ReservedAt = *pendingAt
		}
		p.PendingCollect = pc
	}
	return &p, nil
}

// GetPlayer retrieves a player by wallet address
func (r *PlayerRepository) GetPlayer(ctx context.Context, wallet string) (*domain.Player, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE wallet_address = $1`, wallet)
	p, err := scanPlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}

// ReserveCollect moves the unclaimed balance into the pending columns
func (r *PlayerRepository) ReserveCollect(ctx context.Context, wallet string, expectedUnclaimed int64, pending domain.PendingCollect) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE players
		SET unclaimed_rewards = 0,
		    pending_collect_amount = $3,
		    pending_collect_signature = $4,
		    pending_collect_valid_height = $5,
		    pending_collect_at = $6,
		    updated_at = NOW()
		WHERE wallet_address = $1
		  AND unclaimed_rewards = $2
		  AND pending_collect_amount = 0`,
		wallet, expectedUnclaimed, pending.Amount, pending.Signature, int64(pending.LastValidHeight), pending.ReservedAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToReserveCollect, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClearCollect drops a settled reservation
func (r *PlayerRepository) ClearCollect(ctx context.Context, wallet, signature string, amount int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE players
		SET pending_collect_amount = 0,
		    pending_collect_signature = NULL,
		    pending_collect_valid_height = 0,
		    pending_collect_at = NULL,
		    updated_at = NOW()
		WHERE wallet_address = $1
		  AND pending_collect_signature = $2
		  AND pending_collect_amount = $3`,
		wallet, signature, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearCollect, err)
	}
	return tag.RowsAffected() == 1, nil
}

// RestoreCollect returns a failed reservation to the unclaimed balance
func (r *PlayerRepository) RestoreCollect(ctx context.Context, wallet, signature string, amount int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE players
		SET unclaimed_rewards = unclaimed_rewards + pending_collect_amount,
		    pending_collect_amount = 0,
		    pending_collect_signature = NULL,
		    pending_collect_valid_height = 0,
		    pending_collect_at = NULL,
		    updated_at = NOW()
		WHERE wallet_address = $1
		  AND pending_collect_signature = $2
		  AND pending_collect_amount = $3`,
		wallet, signature, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToRestoreCollect, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListPendingCollects returns reservations older than cutoff, oldest first
func (r *PlayerRepository) ListPendingCollects(ctx context.Context, cutoff time.Time, limit int) ([]domain.Player, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+playerColumns+`
		FROM players
		WHERE pending_collect_amount > 0 AND pending_collect_at < $1
		ORDER BY pending_collect_at ASC
		LIMIT $2`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPending, err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPending, err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// PurchaseSpins credits a batch of spins, creating the player on first purchase
func (r *PlayerRepository) PurchaseSpins(ctx context.Context, wallet string, spins int, costPerSpin int64) (*domain.Player, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO players (wallet_address, spins_remaining, cost_per_spin)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet_address) DO UPDATE
		SET spins_remaining = players.spins_remaining + EXCLUDED.spins_remaining,
		    cost_per_spin = EXCLUDED.cost_per_spin,
		    updated_at = NOW()
		WHERE players.spins_remaining = 0
		RETURNING `+playerColumns, wallet, spins, costPerSpin)

	p, err := scanPlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSpinCreditsOutstanding
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPurchaseSpins, err)
	}
	return p, nil
}

// ApplySpin consumes one credit and pays multiplier × cost_per_spin
func (r *PlayerRepository) ApplySpin(ctx context.Context, wallet string, multiplier int64) (*domain.SpinOutcome, error) {
	var out domain.SpinOutcome
	err := r.pool.QueryRow(ctx, `
		UPDATE players
		SET spins_remaining = spins_remaining - 1,
		    total_spins = total_spins + 1,
		    total_wagered = total_wagered + cost_per_spin,
		    total_won = total_won + cost_per_spin * $2,
		    unclaimed_rewards = unclaimed_rewards + cost_per_spin * $2,
		    updated_at = NOW()
		WHERE wallet_address = $1 AND spins_remaining > 0
		RETURNING cost_per_spin, cost_per_spin * $2, spins_remaining`,
		wallet, multiplier).Scan(&out.Stake, &out.Win, &out.SpinsRemaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoSpinCredits
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToApplySpin, err)
	}
	return &out, nil
}
