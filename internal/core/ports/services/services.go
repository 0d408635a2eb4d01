// Package services defines the service-layer ports exposed to callers such as
// the CLI.
package services

import (
	"context"
	"time"

	"github.com/twopi/moneycore/internal/core/domain"
)

// DashboardSvc produces the aggregate dashboard view.
type DashboardSvc interface {
	// GenerateDashboard builds the report as of now: cumulative wealth and
	// cash-flow series for now's calendar month plus category breakdowns for
	// the last three months, all in the configured base currency.
	GenerateDashboard(ctx context.Context, now time.Time) (*domain.DashboardReport, error)
}

// BalanceSvc projects current balances for accounts.
type BalanceSvc interface {
	// AccountBalances returns every account with its projected balance:
	// starting balance plus all transaction items booked against it.
	AccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
}
