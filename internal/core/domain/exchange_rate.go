package domain

// ExchangeRate is a single conversion rate: how many units of the currency per
// one unit of the base currency, so amountInBase = amountInCurrency / Value.
type ExchangeRate struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// RateSnapshot is a flat mapping of currency code to rate, valid as of fetch
// time. Aggregations apply one snapshot uniformly to all historical amounts;
// time-accurate historical rates are a known, accepted approximation.
type RateSnapshot map[string]ExchangeRate
