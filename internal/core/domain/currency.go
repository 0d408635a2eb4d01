package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	Code          string `json:"code"`          // Primary Key, 3-letter ISO code (e.g., "USD")
	Name          string `json:"name"`          // e.g., "US Dollar"
	DecimalDigits int32  `json:"decimalDigits"` // Minor-unit digits, 0..10 (2 for USD, 0 for JPY)
}

// CurrencyMap indexes currencies by code for amount scaling lookups.
type CurrencyMap map[string]Currency

// NewCurrencyMap builds a CurrencyMap from a list of currencies.
func NewCurrencyMap(currencies []Currency) CurrencyMap {
	m := make(CurrencyMap, len(currencies))
	for _, c := range currencies {
		m[c.Code] = c
	}
	return m
}
