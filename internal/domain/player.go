package domain

import "time"

// Player is the per-wallet reward ledger record.
// All token amounts are integer minor units (see TokenDecimals).
type Player struct {
	WalletAddress    string
	TotalSpins       int64
	TotalWagered     int64
	TotalWon         int64
	UnclaimedRewards int64
	SpinsRemaining   int
	CostPerSpin      int64
	PendingCollect   *PendingCollect // nil when no collect is in flight
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PendingCollect is an amount reserved for an outgoing treasury transfer that
// has not yet been confirmed on the external ledger.
type PendingCollect struct {
	Amount          int64
	Signature       string
	LastValidHeight uint64 // block height after which the transfer can no longer land
	ReservedAt      time.Time
}

// HasPendingCollect reports whether a collect reservation is outstanding.
func (p *Player) HasPendingCollect() bool {
	return p != nil && p.PendingCollect != nil && p.PendingCollect.Amount > 0
}

// HistoryEntry is an append-only audit record of a single spin.
type HistoryEntry struct {
	ID            string
	WalletAddress string
	SpinCost      int64
	ResultSymbols []int
	WonAmount     int64
	Timestamp     time.Time
}

// HistoryView is a history entry in display units.
type HistoryView struct {
	ID            string    `json:"id"`
	SpinCost      float64   `json:"spinCost"`
	ResultSymbols []int     `json:"resultSymbols"`
	WonAmount     float64   `json:"wonAmount"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewHistoryViews converts history entries into display units.
func NewHistoryViews(entries []HistoryEntry) []HistoryView {
	out := make([]HistoryView, len(entries))
	for i, e := range entries {
		out[i] = HistoryView{
			ID:            e.ID,
			SpinCost:      DisplayAmount(e.SpinCost),
			ResultSymbols: e.ResultSymbols,
			WonAmount:     DisplayAmount(e.WonAmount),
			Timestamp:     e.Timestamp,
		}
	}
	return out
}

// PlayerSnapshot is a player's ledger expressed in display units.
type PlayerSnapshot struct {
	WalletAddress    string     `json:"walletAddress"`
	TotalSpins       int64      `json:"totalSpins"`
	TotalWon         float64    `json:"totalWon"`
	TotalWagered     float64    `json:"totalWagered"`
	UnclaimedRewards float64    `json:"unclaimedRewards"`
	PendingCollect   float64    `json:"pendingCollect"`
	SpinsRemaining   int        `json:"spinsRemaining"`
	CostPerSpin      float64    `json:"costPerSpin"`
	CreatedAt        *time.Time `json:"createdAt"`
}

// NewPlayerSnapshot converts a ledger record into display units.
// A nil player yields the empty state for walletAddress.
func NewPlayerSnapshot(walletAddress string, p *Player) PlayerSnapshot {
	if p == nil {
		return PlayerSnapshot{WalletAddress: walletAddress}
	}
	snap := PlayerSnapshot{
		WalletAddress:    p.WalletAddress,
		TotalSpins:       p.TotalSpins,
		TotalWon:         DisplayAmount(p.TotalWon),
		TotalWagered:     DisplayAmount(p.TotalWagered),
		UnclaimedRewards: DisplayAmount(p.UnclaimedRewards),
		SpinsRemaining:   p.SpinsRemaining,
		CostPerSpin:      DisplayAmount(p.CostPerSpin),
	}
	if p.HasPendingCollect() {
		snap.PendingCollect = DisplayAmount(p.PendingCollect.Amount)
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		snap.CreatedAt = &created
	}
	return snap
}
