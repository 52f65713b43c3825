package repository

import (
	"context"
	"time"

	"github.com/xapes/xma-slots/internal/domain"
)

// Player defines persistence for the reward ledger.
//
// Every mutating method is a single conditional statement; the boolean
// results report whether the condition held and a row was changed.
type Player interface {
	// GetPlayer returns domain.ErrPlayerNotFound for unknown wallets.
	GetPlayer(ctx context.Context, wallet string) (*domain.Player, error)

	// ReserveCollect moves expectedUnclaimed into the pending columns,
	// provided unclaimed_rewards still equals expectedUnclaimed and no
	// reservation is outstanding.
	ReserveCollect(ctx context.Context, wallet string, expectedUnclaimed int64, pending domain.PendingCollect) (bool, error)

	// ClearCollect drops the reservation identified by signature and amount.
	ClearCollect(ctx context.Context, wallet, signature string, amount int64) (bool, error)

	// RestoreCollect returns the reservation identified by signature and
	// amount to unclaimed_rewards.
	RestoreCollect(ctx context.Context, wallet, signature string, amount int64) (bool, error)

	// ListPendingCollects returns players whose reservation was made before cutoff.
	ListPendingCollects(ctx context.Context, cutoff time.Time, limit int) ([]domain.Player, error)

	// PurchaseSpins credits spins at costPerSpin, inserting the player when
	// new. Returns domain.ErrSpinCreditsOutstanding while credits remain.
	PurchaseSpins(ctx context.Context, wallet string, spins int, costPerSpin int64) (*domain.Player, error)

	// ApplySpin consumes one credit and pays multiplier × the stored cost.
	// Returns domain.ErrNoSpinCredits when no credit is available.
	ApplySpin(ctx context.Context, wallet string, multiplier int64) (*domain.SpinOutcome, error)
}
