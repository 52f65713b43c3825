package domain

import "time"

// Leaderboard sort keys
const (
	SortBySpins   = "spins"
	SortByWon     = "won"
	SortByWinRate = "winRate"
)

// ValidSortKeys lists the accepted leaderboard sort keys.
var ValidSortKeys = map[string]bool{
	SortBySpins:   true,
	SortByWon:     true,
	SortByWinRate: true,
}

// LeaderboardRow is a raw leaderboard row as read from the store (minor units).
type LeaderboardRow struct {
	WalletAddress string
	TotalSpins    int64
	TotalWon      int64
	TotalWagered  int64
	CreatedAt     time.Time
}

// LeaderboardEntry is a leaderboard row in display units.
type LeaderboardEntry struct {
	WalletAddress  string    `json:"walletAddress"`
	DisplayAddress string    `json:"displayAddress"`
	TotalSpins     int64     `json:"totalSpins"`
	TotalWon       float64   `json:"totalWon"`
	TotalWagered   float64   `json:"totalWagered"`
	WinRate        float64   `json:"winRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Leaderboard is a ranked view of players.
type Leaderboard struct {
	Entries      []LeaderboardEntry `json:"leaderboard"`
	SortBy       string             `json:"sortBy"`
	TotalPlayers int                `json:"totalPlayers"`
}

// GameTotals are aggregate totals across all players (minor units).
type GameTotals struct {
	TotalSpins   int64
	TotalWon     int64
	TotalWagered int64
	TotalPlayers int64
}

// GameStats are aggregate totals in display units.
type GameStats struct {
	GrandTotalSpins   int64   `json:"grandTotalSpins"`
	GrandTotalWon     float64 `json:"grandTotalWon"`
	GrandTotalWagered float64 `json:"grandTotalWagered"`
	TotalPlayers      int64   `json:"totalPlayers"`
}

// ShortAddress renders a wallet address as "abcd...wxyz".
func ShortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}
