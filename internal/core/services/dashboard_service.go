package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/core/money"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	portssvc "github.com/twopi/moneycore/internal/core/ports/services"
)

// dashboardService implements the DashboardSvc interface.
type dashboardService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
	txnRepo      portsrepo.TransactionReader
	rateProvider portsrepo.RateProvider
	baseCurrency string
}

// DashboardServiceOption is a functional option for configuring the dashboard
// service.
type DashboardServiceOption func(*dashboardService)

// WithBaseCurrency sets the reporting currency. Defaults to USD.
func WithBaseCurrency(code string) DashboardServiceOption {
	return func(s *dashboardService) {
		s.baseCurrency = code
	}
}

// NewDashboardService creates a new dashboard service with the provided
// options.
func NewDashboardService(
	currencyRepo portsrepo.CurrencyReader,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	txnRepo portsrepo.TransactionReader,
	rateProvider portsrepo.RateProvider,
	options ...DashboardServiceOption,
) portssvc.DashboardSvc {
	svc := &dashboardService{
		currencyRepo: currencyRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
		rateProvider: rateProvider,
		baseCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure dashboardService implements the DashboardSvc interface.
var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GenerateDashboard builds the dashboard report as of now. The five upstream
// fetches are independent and run in parallel; the aggregation itself is pure.
func (s *dashboardService) GenerateDashboard(ctx context.Context, now time.Time) (*domain.DashboardReport, error) {
	var (
		currencies   []domain.Currency
		accounts     []domain.Account
		categories   []domain.Category
		transactions []domain.Transaction
		rates        domain.RateSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		currencies, err = s.currencyRepo.ListCurrencies(gctx)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.accountRepo.ListAccounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.ListCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = s.txnRepo.ListTransactions(gctx)
		return err
	})
	g.Go(func() (err error) {
		rates, err = s.rateProvider.LatestRates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch dashboard inputs")
		return nil, fmt.Errorf("failed to fetch dashboard inputs: %w", err)
	}

	currencyMap := domain.NewCurrencyMap(currencies)

	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	wealthAmounts, cashFlowAmounts, err := datedAmounts(accounts, transactions)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve transaction items against accounts")
		return nil, err
	}

	wealth := money.BucketByDay(wealthAmounts, currencyMap, rates, monthStart, monthEnd)
	cashFlow := money.BucketByDay(cashFlowAmounts, currencyMap, rates, monthStart, monthEnd)
	if wealth.Degraded || cashFlow.Degraded {
		s.LogWarn(ctx, "Exchange rate snapshot incomplete, series computed with rate=1 fallback",
			slog.String("base_currency", s.baseCurrency))
	}

	report := &domain.DashboardReport{
		BaseCurrency: s.baseCurrency,
		Wealth:       wealth,
		CashFlow:     cashFlow,
		LastThreeMo:  categorySummaries(categories, accounts, transactions, currencyMap, now),
	}

	s.LogInfo(ctx, "Dashboard report generated",
		slog.String("base_currency", s.baseCurrency),
		slog.Int("accounts", len(accounts)),
		slog.Int("transactions", len(transactions)),
		slog.Bool("degraded", wealth.Degraded || cashFlow.Degraded))
	return report, nil
}

// datedAmounts flattens accounts and transaction items into dated amounts for
// day bucketing: starting balances enter the series at account creation, items
// at their transaction's timestamp. The second slice holds only amounts from
// cash-flow accounts.
func datedAmounts(accounts []domain.Account, transactions []domain.Transaction) (all, cashFlow []domain.DatedAmount, err error) {
	accountByID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountByID[account.AccountID] = account

		da := domain.DatedAmount{
			Timestamp: account.CreatedAt,
			Amount:    domain.MonetaryAmount{MinorUnits: account.StartingBalance, CurrencyCode: account.CurrencyCode},
		}
		all = append(all, da)
		if account.IsCashFlow {
			cashFlow = append(cashFlow, da)
		}
	}

	for _, txn := range transactions {
		for _, item := range txn.Items {
			account, ok := accountByID[item.AccountID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: account %q referenced by transaction item %q",
					apperrors.ErrNotFound, item.AccountID, item.ItemID)
			}
			da := domain.DatedAmount{
				Timestamp: txn.Timestamp,
				Amount:    domain.MonetaryAmount{MinorUnits: item.Amount, CurrencyCode: account.CurrencyCode},
			}
			all = append(all, da)
			if account.IsCashFlow {
				cashFlow = append(cashFlow, da)
			}
		}
	}
	return all, cashFlow, nil
}

// categorySummaries tallies categorized spending per currency for the last
// three calendar months, oldest first. Every known category appears in every
// month, even when empty, so charts render stable series. Amounts stay in
// their own currency here; the rate snapshot is deliberately not applied to
// per-category breakdowns.
func categorySummaries(categories []domain.Category, accounts []domain.Account, transactions []domain.Transaction, currencies domain.CurrencyMap, now time.Time) []domain.MonthlyCategorySummary {
	categoryNameByID := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNameByID[category.CategoryID] = category.Name
	}
	accountByID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountByID[account.AccountID] = account
	}

	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	summaries := make([]domain.MonthlyCategorySummary, 0, 3)
	for offset := -2; offset <= 0; offset++ {
		monthStart := currentMonthStart.AddDate(0, offset, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		totals := make(map[string]map[string]float64, len(categories))
		for _, category := range categories {
			totals[category.Name] = make(map[string]float64)
		}

		for _, txn := range transactions {
			ts := txn.Timestamp.UTC()
			if ts.Before(monthStart) || !ts.Before(monthEnd) {
				continue
			}
			for _, item := range txn.Items {
				if item.CategoryID == nil {
					continue
				}
				name, ok := categoryNameByID[*item.CategoryID]
				if !ok {
					continue
				}
				account, ok := accountByID[item.AccountID]
				if !ok {
					continue
				}
				var digits int32
				if currency, ok := currencies[account.CurrencyCode]; ok {
					digits = currency.DecimalDigits
				}
				amount := money.ToDecimalAmount(item.Amount, digits).InexactFloat64()
				totals[name][account.CurrencyCode] += amount
			}
		}

		summaries = append(summaries, domain.MonthlyCategorySummary{
			Month:  monthStart.Month(),
			Year:   monthStart.Year(),
			Totals: totals,
		})
	}
	return summaries
}
