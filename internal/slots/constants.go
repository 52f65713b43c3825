package slots

// Symbol indices, most common to rarest
const (
	SymbolGrapes = iota
	SymbolCherry
	SymbolLemon
	SymbolOrange
	SymbolWatermelon
	SymbolStar
	SymbolDiamond
	SymbolSeven
)

// ReelCount is the number of reels drawn per spin
const ReelCount = 3

// SymbolNames maps symbol index to display name
var SymbolNames = []string{"Grapes", "Cherry", "Lemon", "Orange", "Watermelon", "Star", "Diamond", "Seven"}

// SymbolCounts is the number of times each symbol appears on a reel (sums to 36).
// Draw probability of a symbol is count/36.
var SymbolCounts = []int{8, 7, 6, 5, 4, 3, 2, 1}

// PayoutMultipliers for 3 matching symbols, tuned for ~80% RTP.
// 3-of-a-kind probability is (count/36)^3.
var PayoutMultipliers = []int64{
	13,   // Grapes     1.097%
	16,   // Cherry     0.735%
	21,   // Lemon      0.463%
	35,   // Orange     0.268%
	70,   // Watermelon 0.137%
	165,  // Star       0.058%
	550,  // Diamond    0.017%
	3300, // Seven      0.002%
}

// TargetRTP is the return-to-player the multipliers are tuned for
const TargetRTP = 0.80

// Thresholds for trigger types (multiplier of stake)
const (
	BigWinThreshold  = 50
	JackpotThreshold = 500
)

// Trigger types for visual effects
const (
	TriggerNone    = "none"
	TriggerNormal  = "normal"
	TriggerBigWin  = "big_win"
	TriggerJackpot = "jackpot"
)
