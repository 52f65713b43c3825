package ledger

// Purchase limits, display units
const (
	MinSpinsPerPurchase = 1
	MaxSpinsPerPurchase = 100
	MaxCostPerSpin      = 10_000
	MaxPurchaseTotal    = 1_000_000
)

// History paging
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Purchase outcome labels
const (
	OutcomePurchased   = "purchased"
	OutcomeOutstanding = "credits_outstanding"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

// Log messages
const (
	LogMsgSpinsPurchased   = "Spins purchased"
	LogMsgSpinRecorded     = "Spin recorded"
	LogMsgWinDiffers       = "Client win differs from computed payout, using computed value"
	LogMsgHistoryFailed    = "Failed to record spin history"
	LogMsgLoadPlayerFailed = "Failed to load player"
	LogMsgBigWin           = "Big win"

	LogMsgClientSpinRefused = "Client-reported spin refused, server-drawn spins only"
)
