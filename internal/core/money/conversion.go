// Package money implements the monetary amount engine: minor-unit scaling,
// exchange-rate normalization, and aggregation over time and category
// buckets. Everything here is pure and synchronous; callers own I/O and
// concurrency.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/twopi/moneycore/internal/apperrors"
)

// ToMinorUnits converts a user-entered decimal amount into the integer
// minor-unit form for a currency with the given number of decimal digits.
// Halfway values round away from zero, so a fractional cent on a positive
// amount is never silently shaved off.
func ToMinorUnits(decimalAmount float64, decimalDigits int32) (int64, error) {
	if math.IsNaN(decimalAmount) || math.IsInf(decimalAmount, 0) {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidAmount, decimalAmount)
	}
	if decimalDigits < 0 {
		return 0, fmt.Errorf("%w: decimal digits must be non-negative, got %d", apperrors.ErrValidation, decimalDigits)
	}
	return decimal.NewFromFloat(decimalAmount).Shift(decimalDigits).Round(0).IntPart(), nil
}

// ToDecimalAmount is the exact inverse scaling of ToMinorUnits. No rounding
// happens here; display rounding is the caller's concern.
func ToDecimalAmount(minorUnits int64, decimalDigits int32) decimal.Decimal {
	return decimal.New(minorUnits, -decimalDigits)
}
