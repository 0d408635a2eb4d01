package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/core/money"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	portssvc "github.com/twopi/moneycore/internal/core/ports/services"
)

// balanceService implements the BalanceSvc interface.
type balanceService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

// NewBalanceService creates a new balance service.
func NewBalanceService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.BalanceSvc {
	return &balanceService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure balanceService implements the BalanceSvc interface.
var _ portssvc.BalanceSvc = (*balanceService)(nil)

// AccountBalances projects the current balance of every account: its starting
// balance plus all transaction items booked against it, in the account's own
// currency.
func (s *balanceService) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	var (
		accounts     []domain.Account
		transactions []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		accounts, err = s.accountRepo.ListAccounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = s.txnRepo.ListTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch balance inputs")
		return nil, fmt.Errorf("failed to fetch balance inputs: %w", err)
	}

	accountByID := make(map[string]domain.Account, len(accounts))
	itemsByAccount := make(map[string][]domain.MonetaryAmount, len(accounts))
	for _, account := range accounts {
		accountByID[account.AccountID] = account
	}
	for _, txn := range transactions {
		for _, item := range txn.Items {
			account, ok := accountByID[item.AccountID]
			if !ok {
				err := fmt.Errorf("%w: account %q referenced by transaction item %q",
					apperrors.ErrNotFound, item.AccountID, item.ItemID)
				s.LogError(ctx, err, "Transaction item references unknown account",
					slog.String("transaction_id", txn.TransactionID))
				return nil, err
			}
			itemsByAccount[item.AccountID] = append(itemsByAccount[item.AccountID], domain.MonetaryAmount{
				MinorUnits:   item.Amount,
				CurrencyCode: account.CurrencyCode,
			})
		}
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		starting := domain.MonetaryAmount{MinorUnits: account.StartingBalance, CurrencyCode: account.CurrencyCode}
		balance, err := money.CurrentBalance(starting, itemsByAccount[account.AccountID])
		if err != nil {
			return nil, fmt.Errorf("failed to project balance for account %q: %w", account.AccountID, err)
		}
		balances = append(balances, domain.AccountBalance{Account: account, Balance: balance})
	}

	s.LogInfo(ctx, "Account balances projected", slog.Int("count", len(balances)))
	return balances, nil
}
