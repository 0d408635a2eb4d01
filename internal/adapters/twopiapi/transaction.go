package twopiapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	"github.com/twopi/moneycore/internal/dto"
	"github.com/twopi/moneycore/internal/utils/mapping"
)

// Ensure Client implements the TransactionReader port.
var _ portsrepo.TransactionReader = (*Client)(nil)

// ListTransactions retrieves all transactions with their items.
func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var resp []dto.TransactionResponse
	if err := c.do(ctx, http.MethodGet, "/transaction", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if err := validateEach(c, resp); err != nil {
		return nil, fmt.Errorf("invalid transaction payload: %w", err)
	}
	return mapping.ToDomainTransactionSlice(resp), nil
}

// UpsertTransaction creates or replaces a transaction and returns its ID.
// Missing transaction and item IDs are generated, and a zero timestamp
// defaults to now, matching what the web client used to do before submitting.
func (c *Client) UpsertTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now().UTC()
	}
	for i := range txn.Items {
		if txn.Items[i].ItemID == "" {
			txn.Items[i].ItemID = uuid.NewString()
		}
	}

	req := mapping.ToUpsertTransactionRequest(txn)
	if err := c.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := c.do(ctx, http.MethodPut, "/transaction", nil, req, nil); err != nil {
		return "", fmt.Errorf("failed to upsert transaction %q: %w", txn.Title, err)
	}
	return txn.TransactionID, nil
}

// DeleteTransaction removes a transaction and its items by ID.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := url.Values{"id": {transactionID}}
	if err := c.do(ctx, http.MethodDelete, "/transaction", query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete transaction %q: %w", transactionID, err)
	}
	return nil
}

// DeleteTransactionItem removes a single transaction item by ID.
func (c *Client) DeleteTransactionItem(ctx context.Context, itemID string) error {
	query := url.Values{"id": {itemID}}
	if err := c.do(ctx, http.MethodDelete, "/transaction/item", query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete transaction item %q: %w", itemID, err)
	}
	return nil
}
