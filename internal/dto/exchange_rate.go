package dto

// ExchangeRateEntry is one rate in a snapshot: units of Code per one unit of
// the base currency.
type ExchangeRateEntry struct {
	Code  string  `json:"code" validate:"required"`
	Value float64 `json:"value" validate:"gt=0"`
}

// RateSnapshotResponse is the wire form of a rate snapshot, keyed by currency
// code, valid as of fetch time.
type RateSnapshotResponse struct {
	Data map[string]ExchangeRateEntry `json:"data" validate:"required"`
}
