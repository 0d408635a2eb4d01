package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WealthPoint is one day of a cumulative wealth series.
type WealthPoint struct {
	Date       time.Time       `json:"date"`       // UTC midnight
	Cumulative decimal.Decimal `json:"cumulative"` // Running total in base currency
}

// WealthSeries is a month of daily cumulative totals in the base currency.
// Degraded is set when any contributing amount was normalized without a rate
// or without currency metadata (rate defaulted to 1, digits to 0).
type WealthSeries struct {
	Points   []WealthPoint `json:"points"`
	Degraded bool          `json:"degraded"`
}

// CategoryTotals maps category ID to its normalized total for one period.
type CategoryTotals map[string]decimal.Decimal

// MonthlyCategorySummary holds per-category, per-currency decimal totals for
// one calendar month, keyed by category name then currency code.
type MonthlyCategorySummary struct {
	Month  time.Month                    `json:"month"`
	Year   int                           `json:"year"`
	Totals map[string]map[string]float64 `json:"totals"`
}

// DashboardReport is the aggregate view the UI layer renders: total wealth and
// cash-flow-only series for the current month, plus category breakdowns for
// the last three months.
type DashboardReport struct {
	BaseCurrency string                   `json:"baseCurrency"`
	Wealth       WealthSeries             `json:"wealth"`
	CashFlow     WealthSeries             `json:"cashFlow"`
	LastThreeMo  []MonthlyCategorySummary `json:"lastThreeMonths"`
}

// AccountBalance pairs an account with its projected current balance.
type AccountBalance struct {
	Account Account        `json:"account"`
	Balance MonetaryAmount `json:"balance"`
}
