package slots

import (
	"fmt"

	"github.com/xapes/xma-slots/internal/utils"
)

// Engine draws three-reel outcomes from a fixed weighted reel order.
type Engine struct {
	order []int
	rng   func(n int) (int, error) // uniform in [0, n)
}

// NewEngine builds an engine over the standard symbol counts.
// rng may be nil, in which case crypto/rand is used.
func NewEngine(rng func(n int) (int, error)) (*Engine, error) {
	order, err := CreateFixedReelOrder(SymbolCounts)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = func(n int) (int, error) { return utils.SecureRandomInt(0, n-1) }
	}
	return &Engine{order: order, rng: rng}, nil
}

// ReelOrder returns a copy of the fixed reel sequence.
func (e *Engine) ReelOrder() []int {
	out := make([]int, len(e.order))
	copy(out, e.order)
	return out
}

// Spin draws an independent uniform position on each reel. The position is
// both the displayed stop and the logical symbol.
func (e *Engine) Spin() (symbols [ReelCount]int, stops [ReelCount]int, err error) {
	for i := 0; i < ReelCount; i++ {
		pos, err := e.rng(len(e.order))
		if err != nil {
			return symbols, stops, fmt.Errorf("failed to draw reel %d: %w", i+1, err)
		}
		if pos < 0 || pos >= len(e.order) {
			return symbols, stops, fmt.Errorf("reel position %d out of range", pos)
		}
		stops[i] = pos
		symbols[i] = e.order[pos]
	}
	return symbols, stops, nil
}

// Multiplier returns the payout multiplier for three of a kind, otherwise
// zero. Invalid symbol indices never pay.
func Multiplier(symbols [ReelCount]int) int64 {
	s := symbols[0]
	if s < 0 || s >= len(PayoutMultipliers) {
		return 0
	}
	if symbols[1] != s || symbols[2] != s {
		return 0
	}
	return PayoutMultipliers[s]
}

// Payout returns multiplier × stake.
func Payout(symbols [ReelCount]int, stake int64) int64 {
	return Multiplier(symbols) * stake
}

// ValidSymbols reports whether every index names a known symbol.
func ValidSymbols(symbols []int) bool {
	if len(symbols) != ReelCount {
		return false
	}
	for _, s := range symbols {
		if s < 0 || s >= len(SymbolNames) {
			return false
		}
	}
	return true
}

// Names maps symbol indices to their display names.
func Names(symbols [ReelCount]int) [ReelCount]string {
	var out [ReelCount]string
	for i, s := range symbols {
		if s >= 0 && s < len(SymbolNames) {
			out[i] = SymbolNames[s]
		}
	}
	return out
}

// TheoreticalRTP is Σ P(three of symbol) × multiplier.
func TheoreticalRTP() float64 {
	total := 0
	for _, c := range SymbolCounts {
		total += c
	}
	rtp := 0.0
	for i, c := range SymbolCounts {
		p := float64(c) / float64(total)
		rtp += p * p * p * float64(PayoutMultipliers[i])
	}
	return rtp
}

// DetermineTrigger classifies a win by its multiplier.
func DetermineTrigger(win, stake int64) string {
	if win <= 0 || stake <= 0 {
		return TriggerNone
	}
	switch m := win / stake; {
	case m >= JackpotThreshold:
		return TriggerJackpot
	case m >= BigWinThreshold:
		return TriggerBigWin
	default:
		return TriggerNormal
	}
}
