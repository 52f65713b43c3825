package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the number of implied decimal places in a minor-unit amount.
const TokenDecimals = 6

// MinorUnitEpsilon is the largest difference between a client-declared amount
// and the ledger value that is treated as equal.
const MinorUnitEpsilon = 1

// ToMinorUnits converts a display amount into integer minor units, truncating
// any precision beyond TokenDecimals.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	scaled := amount.Shift(TokenDecimals).Truncate(0)
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount %s out of range", ErrInvalidInput, amount.String())
	}
	return scaled.IntPart(), nil
}

// FromMinorUnits converts minor units into an exact display amount.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -TokenDecimals)
}

// DisplayAmount converts minor units into a float for JSON responses.
func DisplayAmount(minor int64) float64 {
	return FromMinorUnits(minor).InexactFloat64()
}

// AbsDiff returns |a - b| for minor-unit amounts.
func AbsDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
