package mapping

import (
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/dto"
)

// ToDomainAccount converts a wire account to a domain Account.
func ToDomainAccount(r dto.AccountResponse) domain.Account {
	return domain.Account{
		AccountID:       r.ID,
		Name:            r.Name,
		AccountType:     domain.AccountType(r.AccountType),
		CurrencyCode:    r.CurrencyCode,
		StartingBalance: r.StartingBalance,
		IsCashFlow:      r.IsCashFlow,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of wire accounts to domain Accounts.
func ToDomainAccountSlice(rs []dto.AccountResponse) []domain.Account {
	ds := make([]domain.Account, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainAccount(r)
	}
	return ds
}

// ToUpsertAccountRequest converts a domain Account to its upsert wire form.
func ToUpsertAccountRequest(a domain.Account) dto.UpsertAccountRequest {
	return dto.UpsertAccountRequest{
		ID:              a.AccountID,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		CurrencyCode:    a.CurrencyCode,
		StartingBalance: a.StartingBalance,
		IsCashFlow:      a.IsCashFlow,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}
