package stats

import "time"

// ============================================================================
// Query Limits
// ============================================================================

// DefaultLeaderboardLimit is the number of entries returned when no limit is given
const DefaultLeaderboardLimit = 100

// MaxLeaderboardLimit caps the number of entries a single request can read
const MaxLeaderboardLimit = 1000

// ============================================================================
// Cache
// ============================================================================

// DefaultCacheTTL is how long a leaderboard or totals read is served from memory
const DefaultCacheTTL = 30 * time.Second

// DefaultCacheSize bounds the number of distinct cached queries
const DefaultCacheSize = 64

const gameStatsKey = "game-stats"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLeaderboardFailed = "Failed to read leaderboard"
	LogMsgGameStatsFailed   = "Failed to read game stats"
	LogMsgCacheHit          = "Stats served from cache"
)
