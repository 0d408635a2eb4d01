package dto

import "time"

// TransactionItemResponse is one line of a transaction on the wire. Amount is
// in the minor units of the referenced account's currency; CategoryID is null
// for uncategorized items.
type TransactionItemResponse struct {
	ID         string  `json:"id" validate:"required"`
	Notes      string  `json:"notes"`
	AccountID  string  `json:"account_id" validate:"required"`
	Amount     int64   `json:"amount"`
	CategoryID *string `json:"category_id"`
}

// TransactionResponse is the wire form of a transaction with its items.
type TransactionResponse struct {
	ID        string                    `json:"id" validate:"required"`
	Title     string                    `json:"title" validate:"required"`
	Timestamp time.Time                 `json:"timestamp"`
	Items     []TransactionItemResponse `json:"items" validate:"dive"`
}

// UpsertTransactionItemRequest is one line of an upserted transaction.
type UpsertTransactionItemRequest struct {
	ID         string  `json:"id,omitempty"`
	Notes      string  `json:"notes"`
	AccountID  string  `json:"account_id" validate:"required"`
	Amount     int64   `json:"amount"`
	CategoryID *string `json:"category_id,omitempty"`
}

// UpsertTransactionRequest defines the data needed to create or replace a
// transaction. Empty IDs ask the client to generate them.
type UpsertTransactionRequest struct {
	ID        string                         `json:"id,omitempty"`
	Title     string                         `json:"title" validate:"required"`
	Timestamp time.Time                      `json:"timestamp"`
	Items     []UpsertTransactionItemRequest `json:"items" validate:"min=1,dive"`
}
