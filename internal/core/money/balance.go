package money

import (
	"fmt"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
)

// CurrentBalance projects an account balance: the starting balance plus the
// sum of its item amounts, all in minor units. Every item must be denominated
// in the starting balance's currency; a mixed-currency sum is rejected instead
// of silently computed.
func CurrentBalance(startingBalance domain.MonetaryAmount, items []domain.MonetaryAmount) (domain.MonetaryAmount, error) {
	total := startingBalance.MinorUnits
	for _, item := range items {
		if item.CurrencyCode != startingBalance.CurrencyCode {
			return domain.MonetaryAmount{}, fmt.Errorf("%w: account is %q, item is %q",
				apperrors.ErrCurrencyMismatch, startingBalance.CurrencyCode, item.CurrencyCode)
		}
		total += item.MinorUnits
	}
	return domain.MonetaryAmount{MinorUnits: total, CurrencyCode: startingBalance.CurrencyCode}, nil
}
