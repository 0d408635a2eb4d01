package twopiapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	"github.com/twopi/moneycore/internal/dto"
	"github.com/twopi/moneycore/internal/utils/mapping"
)

// Ensure Client implements the RateProvider port.
var _ portsrepo.RateProvider = (*Client)(nil)

// LatestRates returns the most recent exchange-rate snapshot.
func (c *Client) LatestRates(ctx context.Context) (domain.RateSnapshot, error) {
	var resp dto.RateSnapshotResponse
	if err := c.do(ctx, http.MethodGet, "/currency-cache/latest", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch latest rates: %w", err)
	}
	if err := c.validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: invalid rate snapshot: %w", apperrors.ErrValidation, err)
	}
	return mapping.ToDomainRateSnapshot(resp), nil
}

// HistoricalRates returns the snapshot for a YYYY-MM-DD date.
func (c *Client) HistoricalRates(ctx context.Context, date string) (domain.RateSnapshot, error) {
	query := url.Values{"date": {date}}
	var resp dto.RateSnapshotResponse
	if err := c.do(ctx, http.MethodGet, "/currency-cache/historical", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", date, err)
	}
	if err := c.validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: invalid rate snapshot: %w", apperrors.ErrValidation, err)
	}
	return mapping.ToDomainRateSnapshot(resp), nil
}
