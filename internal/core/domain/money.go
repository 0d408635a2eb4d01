package domain

import "time"

// MonetaryAmount is the canonical stored/wire form of a monetary value:
// an integer count of the currency's minor units. The decimal form is derived
// at display time and is never the source of truth.
type MonetaryAmount struct {
	MinorUnits   int64  `json:"minorUnits"`
	CurrencyCode string `json:"currencyCode"`
}

// DatedAmount pairs an amount with the instant it occurred, for time-bucketed
// aggregation.
type DatedAmount struct {
	Timestamp time.Time      `json:"timestamp"`
	Amount    MonetaryAmount `json:"amount"`
}

// CategorizedAmount pairs an amount with its optional category. A nil
// CategoryID means the amount is uncategorized.
type CategorizedAmount struct {
	CategoryID *string        `json:"categoryID"`
	Amount     MonetaryAmount `json:"amount"`
}
