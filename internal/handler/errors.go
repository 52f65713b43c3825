package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidSortBy     = "Invalid sortBy parameter. Must be: spins, won, or winRate"

	// Collect messages
	ErrMsgCollectFailed       = "Failed to create collect transaction"
	ErrMsgConfirmFailed       = "Failed to confirm collect"
	ErrMsgTransactionFailed   = "Transaction failed"
	ErrMsgNothingToCollect    = "No unclaimed rewards to collect"
	ErrMsgAlreadyCollected    = "Rewards already collected or a collect is in progress"
	ErrMsgTreasuryUnavailable = "Treasury cannot fund this collect right now. Please try again later."
	ErrMsgLedgerUnavailable   = "Token network is unavailable. Please try again later."

	// Game messages
	ErrMsgSaveGameFailed        = "Failed to save game data"
	ErrMsgLoadPlayerFailed      = "Failed to load player data"
	ErrMsgSpinFailed            = "Failed to spin"
	ErrMsgCreditsOutstanding    = "Spins from the previous purchase must be used first"
	ErrMsgClientSpinsDisabled   = "Spin results must come from /spin"
	ErrMsgNoSpinCredits         = "No spins remaining. Purchase spins first."
	ErrMsgSymbolsRequired       = "resultSymbols is required when no spins are purchased"
	ErrMsgLoadHistoryFailed     = "Failed to load spin history"
	ErrMsgLoadLeaderboardFailed = "Failed to load leaderboard"
	ErrMsgLoadGameStatsFailed   = "Failed to load game stats"

	// Admin messages
	ErrMsgRecoveryFailed = "Failed to recover collect reservations"
)

// Success messages for API responses
const (
	MsgCollectCleared        = "Unclaimed rewards cleared successfully"
	MsgCollectAlreadyCleared = "Unclaimed rewards already cleared"
	MsgCollectProcessing     = "Transaction still processing"
	MsgGameSaved             = "Game data saved successfully"
	MsgSpinsPurchased        = "Spins purchased successfully"
	MsgStatsInvalidated      = "Stats cache invalidated"
)

// Machine-readable error codes for conflicts the client resolves differently
const (
	CodeNothingToCollect    = "nothingToCollect"
	CodeAlreadyCollected    = "alreadyCollected"
	CodeRateLimited         = "rateLimited"
	CodeCreditsOutstanding  = "spinCreditsOutstanding"
	CodeNoSpinCredits       = "noSpinCredits"
	CodeClientSpinsDisabled = "clientSpinsDisabled"

	CodeTreasuryInsufficientFunds = "treasuryInsufficientFunds"
	CodeTreasuryAccountMissing    = "treasuryAccountMissing"
)

// Confirm statuses reported to the client
const (
	StatusProcessing = "processing"
)
