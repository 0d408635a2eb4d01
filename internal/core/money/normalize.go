package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
)

// NormalizeToBase converts an amount into decimal base-currency terms using a
// single rate snapshot. Rate values are "units of currency per one unit of
// base", so the amount is divided by the rate.
//
// The path is deliberately permissive: a currency absent from the snapshot is
// treated as already in base units (rate 1), and a currency absent from the
// metadata map scales with zero decimal digits. Both cases set degraded so the
// caller can surface the reduced accuracy instead of hiding it.
func NormalizeToBase(amount domain.MonetaryAmount, currencies domain.CurrencyMap, rates domain.RateSnapshot) (value decimal.Decimal, degraded bool) {
	var digits int32
	currency, ok := currencies[amount.CurrencyCode]
	if ok {
		digits = currency.DecimalDigits
	} else {
		degraded = true
	}

	value = ToDecimalAmount(amount.MinorUnits, digits)

	rate, ok := rates[amount.CurrencyCode]
	if !ok || rate.Value == 0 {
		return value, true
	}
	return value.Div(decimal.NewFromFloat(rate.Value)), degraded
}

// NormalizeToBaseStrict is the opt-out of the permissive fallback: it fails
// instead of degrading when the rate or the currency metadata is missing.
func NormalizeToBaseStrict(amount domain.MonetaryAmount, currencies domain.CurrencyMap, rates domain.RateSnapshot) (decimal.Decimal, error) {
	currency, ok := currencies[amount.CurrencyCode]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, amount.CurrencyCode)
	}
	rate, ok := rates[amount.CurrencyCode]
	if !ok || rate.Value == 0 {
		return decimal.Zero, fmt.Errorf("%w: no rate for %q in snapshot", apperrors.ErrMissingExchangeRate, amount.CurrencyCode)
	}
	return ToDecimalAmount(amount.MinorUnits, currency.DecimalDigits).Div(decimal.NewFromFloat(rate.Value)), nil
}

// ConvertBetween re-denominates an amount into the target currency: normalize
// to base, multiply by the target's rate, then re-quantize to the target's
// minor units. This is a best-effort display conversion; the rounding on
// re-quantization makes it unsuitable for settlement-grade computation.
func ConvertBetween(amount domain.MonetaryAmount, target domain.Currency, currencies domain.CurrencyMap, rates domain.RateSnapshot) (domain.MonetaryAmount, bool) {
	base, degraded := NormalizeToBase(amount, currencies, rates)

	inTarget := base
	if rate, ok := rates[target.Code]; ok && rate.Value != 0 {
		inTarget = base.Mul(decimal.NewFromFloat(rate.Value))
	} else {
		degraded = true
	}

	return domain.MonetaryAmount{
		MinorUnits:   inTarget.Shift(target.DecimalDigits).Round(0).IntPart(),
		CurrencyCode: target.Code,
	}, degraded
}
