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

// Ensure Client implements the AccountReader port.
var _ portsrepo.AccountReader = (*Client)(nil)

// ListAccounts retrieves all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var resp []dto.AccountResponse
	if err := c.do(ctx, http.MethodGet, "/account", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if err := validateEach(c, resp); err != nil {
		return nil, fmt.Errorf("invalid account payload: %w", err)
	}
	return mapping.ToDomainAccountSlice(resp), nil
}

// UpsertAccount creates or replaces an account and returns its ID. A missing
// ID or creation time is filled in before the call.
func (c *Client) UpsertAccount(ctx context.Context, account domain.Account) (string, error) {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	req := mapping.ToUpsertAccountRequest(account)
	if err := c.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := c.do(ctx, http.MethodPut, "/account", nil, req, nil); err != nil {
		return "", fmt.Errorf("failed to upsert account %q: %w", account.Name, err)
	}
	return account.AccountID, nil
}

// DeleteAccount removes an account by ID.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	query := url.Values{"id": {accountID}}
	if err := c.do(ctx, http.MethodDelete, "/account", query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete account %q: %w", accountID, err)
	}
	return nil
}
