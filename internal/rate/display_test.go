package rate

import (
	"context"
	"testing"
	"time"

	"storefx/internal/domain"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	rate domain.ExchangeRate
	err  error
}

func (s *stubProvider) Current(context.Context) (domain.ExchangeRate, error) {
	return s.rate, s.err
}

type mapRateCache struct {
	entries map[domain.CurrencyPair]domain.ExchangeRate
}

func newMapRateCache() *mapRateCache {
	return &mapRateCache{entries: make(map[domain.CurrencyPair]domain.ExchangeRate)}
}

func (c *mapRateCache) Get(pair domain.CurrencyPair) (domain.ExchangeRate, bool) {
	r, ok := c.entries[pair]
	return r, ok
}

func (c *mapRateCache) Set(rate domain.ExchangeRate) {
	c.entries[domain.CurrencyPair{Base: rate.BaseCurrency, Target: rate.TargetCurrency}] = rate
}

func freshRate(rate float64, fetchedAt time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		BaseCurrency:   "USD",
		TargetCurrency: "TRY",
		Rate:           rate,
		FetchedAt:      fetchedAt,
		IsActive:       true,
	}
}

func TestDisplayClient_FreshRate(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	fetchedAt := now.Add(-time.Hour)
	provider := &stubProvider{rate: freshRate(43.6124, fetchedAt)}
	cache := newMapRateCache()

	c := NewDisplayClient(provider, cache, testPair, 24*time.Hour, 34.50)
	c.now = func() time.Time { return now }

	snap := c.Snapshot(context.Background())

	require.InDelta(t, 43.6124, snap.Rate, 1e-9)
	require.True(t, snap.UpdatedAt.Equal(fetchedAt))
	require.False(t, snap.Stale)
	require.False(t, snap.Fallback)

	// the served rate became the last-good entry
	cached, ok := cache.Get(testPair)
	require.True(t, ok)
	require.InDelta(t, 43.6124, cached.Rate, 1e-9)
}

func TestDisplayClient_StaleRateIsFlaggedButServed(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	fetchedAt := now.Add(-25 * time.Hour)
	provider := &stubProvider{rate: freshRate(43.6124, fetchedAt)}

	c := NewDisplayClient(provider, newMapRateCache(), testPair, 24*time.Hour, 34.50)
	c.now = func() time.Time { return now }

	snap := c.Snapshot(context.Background())

	require.InDelta(t, 43.6124, snap.Rate, 1e-9)
	require.True(t, snap.Stale)
	require.False(t, snap.Fallback)
}

func TestDisplayClient_ProviderFailureServesLastGood(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	fetchedAt := now.Add(-2 * time.Hour)
	cache := newMapRateCache()
	cache.Set(freshRate(44.10, fetchedAt))
	provider := &stubProvider{err: domain.ErrNoActiveRate}

	c := NewDisplayClient(provider, cache, testPair, 24*time.Hour, 34.50)
	c.now = func() time.Time { return now }

	snap := c.Snapshot(context.Background())

	require.InDelta(t, 44.10, snap.Rate, 1e-9)
	require.True(t, snap.Fallback)
	require.False(t, snap.Stale)
	require.True(t, snap.UpdatedAt.Equal(fetchedAt))
}

func TestDisplayClient_ProviderFailureWithEmptyCacheServesConfiguredFallback(t *testing.T) {
	provider := &stubProvider{err: domain.ErrNoActiveRate}

	c := NewDisplayClient(provider, newMapRateCache(), testPair, 24*time.Hour, 34.50)

	snap := c.Snapshot(context.Background())

	require.InDelta(t, 34.50, snap.Rate, 1e-9)
	require.True(t, snap.Fallback)
	require.True(t, snap.Stale)
	require.True(t, snap.UpdatedAt.IsZero())
}

func TestDisplayClient_Quote(t *testing.T) {
	provider := &stubProvider{rate: freshRate(43.6124, time.Now().UTC())}

	c := NewDisplayClient(provider, newMapRateCache(), testPair, 24*time.Hour, 34.50)

	snap, formatted := c.Quote(context.Background(), 100, "TRY")
	require.InDelta(t, 43.6124, snap.Rate, 1e-9)
	require.Equal(t, "₺4.361,24", formatted)

	_, inBase := c.Quote(context.Background(), 100, "USD")
	require.Equal(t, "$100.00", inBase)
}

func TestDisplayClient_FormatPriceUsesFallbackRate(t *testing.T) {
	provider := &stubProvider{err: domain.ErrNoActiveRate}

	c := NewDisplayClient(provider, newMapRateCache(), testPair, 24*time.Hour, 34.50)

	require.Equal(t, "₺3.450,00", c.FormatPrice(context.Background(), 100, "TRY"))
}
