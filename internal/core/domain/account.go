package domain

import "time"

// AccountType defines the kind of account an amount lives in.
type AccountType string

const (
	Cash       AccountType = "Cash"
	Wallet     AccountType = "Wallet"
	Bank       AccountType = "Bank"
	CreditCard AccountType = "CreditCard"
	Loan       AccountType = "Loan"
	Person     AccountType = "Person"
)

// Account represents a financial account within the core domain.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary Key (e.g., UUID)
	Name            string      `json:"name"`            // User-defined name
	AccountType     AccountType `json:"accountType"`     // Cash, Bank, etc.
	CurrencyCode    string      `json:"currencyCode"`    // FK -> currencies.code (NON-NULL)
	StartingBalance int64       `json:"startingBalance"` // Minor units of CurrencyCode
	IsCashFlow      bool        `json:"isCashFlow"`      // Counted in cash-flow aggregations
	IsActive        bool        `json:"isActive"`        // Soft delete or status flag
	CreatedAt       time.Time   `json:"createdAt"`
}
