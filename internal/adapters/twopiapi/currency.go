package twopiapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	"github.com/twopi/moneycore/internal/dto"
	"github.com/twopi/moneycore/internal/utils/mapping"
)

// Ensure Client implements the CurrencyReader port.
var _ portsrepo.CurrencyReader = (*Client)(nil)

// ListCurrencies retrieves all currencies known to the API.
func (c *Client) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var resp []dto.CurrencyResponse
	if err := c.do(ctx, http.MethodGet, "/currency", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if err := validateEach(c, resp); err != nil {
		return nil, fmt.Errorf("invalid currency payload: %w", err)
	}
	return mapping.ToDomainCurrencySlice(resp), nil
}

// FindCurrencyByCode retrieves one currency by its 3-letter code.
func (c *Client) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	var resp dto.CurrencyResponse
	if err := c.do(ctx, http.MethodGet, "/currency/"+url.PathEscape(code), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get currency %q: %w", code, err)
	}
	if err := c.validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: invalid currency payload: %w", apperrors.ErrValidation, err)
	}
	currency := mapping.ToDomainCurrency(resp)
	return &currency, nil
}

// CreateCurrency registers a new currency.
func (c *Client) CreateCurrency(ctx context.Context, currency domain.Currency) error {
	req := dto.CreateCurrencyRequest{
		Code:          currency.Code,
		Name:          currency.Name,
		DecimalDigits: currency.DecimalDigits,
	}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := c.do(ctx, http.MethodPost, "/currency", nil, req, nil); err != nil {
		return fmt.Errorf("failed to create currency %q: %w", currency.Code, err)
	}
	return nil
}

// DeleteCurrency removes a currency by code.
func (c *Client) DeleteCurrency(ctx context.Context, code string) error {
	query := url.Values{"code": {code}}
	if err := c.do(ctx, http.MethodDelete, "/currency", query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete currency %q: %w", code, err)
	}
	return nil
}

// SyncCurrencies asks the API to refresh its currency list from the upstream
// provider.
func (c *Client) SyncCurrencies(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPut, "/currency/sync", nil, nil, nil); err != nil {
		return fmt.Errorf("failed to sync currencies: %w", err)
	}
	return nil
}
