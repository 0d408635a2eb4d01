// Package ratecache caches exchange-rate snapshots in front of a RateProvider.
// Snapshots for a given date never change, and the upstream currency API is
// quota-limited, so fetches are memoized in an expiring LRU and throttled. The
// cache is an explicit object handed to its consumers, not process-wide state.
package ratecache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	"github.com/twopi/moneycore/internal/platform/logging"
)

const (
	latestKey    = "latest"
	limiterScope = "twopi-rates"
)

// Cache is a read-through snapshot cache. It implements the same RateProvider
// port as the client it wraps, so consumers cannot tell them apart.
type Cache struct {
	provider  portsrepo.RateProvider
	snapshots *expirable.LRU[string, domain.RateSnapshot]
	limiter   *limiter.Limiter
}

// Option is a functional option for configuring the cache.
type Option func(*Cache)

// WithRateLimit throttles upstream fetches to the given rate using an
// in-memory limiter store. Cache hits are never throttled.
func WithRateLimit(rate limiter.Rate) Option {
	return func(c *Cache) {
		c.limiter = limiter.New(memory.NewStore(), rate)
	}
}

// New creates a cache over the given provider holding up to size snapshots
// for at most ttl each.
func New(provider portsrepo.RateProvider, size int, ttl time.Duration, options ...Option) *Cache {
	c := &Cache{
		provider:  provider,
		snapshots: expirable.NewLRU[string, domain.RateSnapshot](size, nil, ttl),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Ensure Cache implements the RateProvider port.
var _ portsrepo.RateProvider = (*Cache)(nil)

// LatestRates returns the most recent snapshot, fetching at most once per TTL.
func (c *Cache) LatestRates(ctx context.Context) (domain.RateSnapshot, error) {
	return c.lookup(ctx, latestKey, c.provider.LatestRates)
}

// HistoricalRates returns the snapshot for a YYYY-MM-DD date.
func (c *Cache) HistoricalRates(ctx context.Context, date string) (domain.RateSnapshot, error) {
	return c.lookup(ctx, "historical:"+date, func(ctx context.Context) (domain.RateSnapshot, error) {
		return c.provider.HistoricalRates(ctx, date)
	})
}

func (c *Cache) lookup(ctx context.Context, key string, fetch func(context.Context) (domain.RateSnapshot, error)) (domain.RateSnapshot, error) {
	if snapshot, ok := c.snapshots.Get(key); ok {
		return snapshot, nil
	}

	if c.limiter != nil {
		lctx, err := c.limiter.Get(ctx, limiterScope)
		if err != nil {
			return nil, fmt.Errorf("failed to check rate limit: %w", err)
		}
		if lctx.Reached {
			logging.FromCtx(ctx).Warn("Refusing rate snapshot fetch, upstream quota protection active",
				slog.String("key", key),
				slog.Int64("limit", lctx.Limit))
			return nil, fmt.Errorf("%w: snapshot %q", apperrors.ErrRateLimited, key)
		}
	}

	snapshot, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.snapshots.Add(key, snapshot)
	return snapshot, nil
}
