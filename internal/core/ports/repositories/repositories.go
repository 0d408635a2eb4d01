// Package repositories defines the read-side ports the core services consume.
// The concrete implementations live in internal/adapters and talk to the
// remote twopi API; the core never sees transport types.
package repositories

import (
	"context"

	"github.com/twopi/moneycore/internal/core/domain"
)

// CurrencyReader defines read operations for currency metadata.
type CurrencyReader interface {
	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}

// AccountReader defines read operations for accounts.
type AccountReader interface {
	// ListAccounts retrieves all accounts, active or not.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// ListTransactions retrieves all transactions with their items.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// RateProvider supplies exchange-rate snapshots.
type RateProvider interface {
	// LatestRates returns the most recent snapshot.
	LatestRates(ctx context.Context) (domain.RateSnapshot, error)

	// HistoricalRates returns the snapshot for a YYYY-MM-DD date.
	HistoricalRates(ctx context.Context, date string) (domain.RateSnapshot, error)
}
