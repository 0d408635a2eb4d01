package dto

import "time"

// AccountResponse is the wire form of an account as served by the twopi API.
// StartingBalance is in the minor units of the account's currency.
type AccountResponse struct {
	ID              string    `json:"id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	AccountType     string    `json:"account_type" validate:"required"`
	CurrencyCode    string    `json:"currency_code" validate:"required,len=3"`
	StartingBalance int64     `json:"starting_balance"`
	IsCashFlow      bool      `json:"is_cash_flow"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpsertAccountRequest defines the data needed to create or replace an
// account. An empty ID asks the client to generate one.
type UpsertAccountRequest struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name" validate:"required"`
	AccountType     string    `json:"account_type" validate:"required,oneof=Cash Wallet Bank CreditCard Loan Person"`
	CurrencyCode    string    `json:"currency_code" validate:"required,len=3"`
	StartingBalance int64     `json:"starting_balance"`
	IsCashFlow      bool      `json:"is_cash_flow"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
