package rate

import (
	"context"
	"time"

	"storefx/internal/adapters"
	"storefx/internal/domain"

	"github.com/sirupsen/logrus"
)

// CurrentRateProvider is the read path the display layer consumes, satisfied
// by *QueryService.
type CurrentRateProvider interface {
	Current(ctx context.Context) (domain.ExchangeRate, error)
}

// Snapshot is what price rendering works from. Stale means the observation is
// older than the freshness threshold; Fallback means the provider could not
// answer and the value came from the last-good cache or the configured
// default.
type Snapshot struct {
	Rate      float64
	UpdatedAt time.Time
	Stale     bool
	Fallback  bool
}

// DisplayClient is the storefront-facing currency layer: it caches the last
// rate it served and prefers showing a flagged stale value over showing
// nothing when the provider fails.
type DisplayClient struct {
	provider     CurrentRateProvider
	cache        adapters.RateCache
	pair         domain.CurrencyPair
	staleAfter   time.Duration
	fallbackRate float64
	now          func() time.Time
}

func NewDisplayClient(provider CurrentRateProvider, cache adapters.RateCache, pair domain.CurrencyPair, staleAfter time.Duration, fallbackRate float64) *DisplayClient {
	if staleAfter <= 0 {
		staleAfter = 24 * time.Hour
	}
	return &DisplayClient{
		provider:     provider,
		cache:        cache,
		pair:         pair,
		staleAfter:   staleAfter,
		fallbackRate: fallbackRate,
		now:          time.Now,
	}
}

func (c *DisplayClient) Snapshot(ctx context.Context) Snapshot {
	current, err := c.provider.Current(ctx)
	if err == nil {
		c.cache.Set(current)
		return Snapshot{
			Rate:      current.Rate,
			UpdatedAt: current.FetchedAt,
			Stale:     c.isStale(current.FetchedAt),
		}
	}

	if cached, ok := c.cache.Get(c.pair); ok {
		logrus.WithError(err).WithField("pair", c.pair.String()).Warn("Serving last-good exchange rate")
		return Snapshot{
			Rate:      cached.Rate,
			UpdatedAt: cached.FetchedAt,
			Stale:     c.isStale(cached.FetchedAt),
			Fallback:  true,
		}
	}

	logrus.WithError(err).WithField("pair", c.pair.String()).Warn("Serving configured fallback exchange rate")
	return Snapshot{Rate: c.fallbackRate, Stale: true, Fallback: true}
}

func (c *DisplayClient) isStale(fetchedAt time.Time) bool {
	if fetchedAt.IsZero() {
		return true
	}
	return c.now().Sub(fetchedAt) > c.staleAfter
}

// Quote returns the current snapshot together with a base-currency price
// rendered in the shopper's selected display currency.
func (c *DisplayClient) Quote(ctx context.Context, amountInBase float64, display string) (Snapshot, string) {
	snap := c.Snapshot(ctx)
	return snap, ConvertAndFormat(amountInBase, c.pair, display, snap.Rate)
}

// FormatPrice renders a base-currency price in the shopper's selected
// display currency using the current snapshot.
func (c *DisplayClient) FormatPrice(ctx context.Context, amountInBase float64, display string) string {
	_, formatted := c.Quote(ctx, amountInBase, display)
	return formatted
}
