package domain

import "time"

// TransactionItem is a single line item within a Transaction, affecting one
// account. Amount is in the minor units of the account's currency. Sign is a
// pass-through of whatever convention the caller supplies (expenses negative,
// income positive).
type TransactionItem struct {
	ItemID     string  `json:"itemID"`     // Primary Key (e.g., UUID)
	Notes      string  `json:"notes"`      // Nullable
	AccountID  string  `json:"accountID"`  // FK -> Account.accountID (Not Null)
	Amount     int64   `json:"amount"`     // Minor units of the account's currency
	CategoryID *string `json:"categoryID"` // Nullable FK -> Category.categoryID
}

// Transaction groups items that happened together at one instant.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (e.g., UUID)
	Title         string            `json:"title"`
	Timestamp     time.Time         `json:"timestamp"` // UTC
	Items         []TransactionItem `json:"items"`
}
