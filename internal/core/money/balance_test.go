package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/core/money"
)

func TestCurrentBalance(t *testing.T) {
	t.Run("sums starting balance and items", func(t *testing.T) {
		// $1000.00 starting, one expense and one refund: $970.00.
		balance, err := money.CurrentBalance(usd(100000), []domain.MonetaryAmount{usd(-5000), usd(2000)})
		require.NoError(t, err)
		assert.Equal(t, usd(97000), balance)
	})

	t.Run("no items leaves the starting balance", func(t *testing.T) {
		balance, err := money.CurrentBalance(usd(12345), nil)
		require.NoError(t, err)
		assert.Equal(t, usd(12345), balance)
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		_, err := money.CurrentBalance(usd(100000), []domain.MonetaryAmount{
			{MinorUnits: -5000, CurrencyCode: "EUR"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
	})

	t.Run("checks every item, not just the first", func(t *testing.T) {
		_, err := money.CurrentBalance(usd(100000), []domain.MonetaryAmount{
			usd(-5000),
			{MinorUnits: 2000, CurrencyCode: "JPY"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
	})
}
