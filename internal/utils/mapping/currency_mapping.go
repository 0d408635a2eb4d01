package mapping

import (
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/dto"
)

// ToDomainCurrency converts a wire currency to a domain Currency.
func ToDomainCurrency(r dto.CurrencyResponse) domain.Currency {
	return domain.Currency{
		Code:          r.Code,
		Name:          r.Name,
		DecimalDigits: r.DecimalDigits,
	}
}

// ToDomainCurrencySlice converts a slice of wire currencies to domain Currencies.
func ToDomainCurrencySlice(rs []dto.CurrencyResponse) []domain.Currency {
	ds := make([]domain.Currency, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainCurrency(r)
	}
	return ds
}
