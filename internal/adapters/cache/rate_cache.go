package cache

import (
	"fmt"
	"storefx/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoRateCache keeps the last successfully served rate per pair so the
// display layer can fall back to it when the read path is down.
type RistrettoRateCache struct {
	cache *ristretto.Cache
}

func NewRateCache(maxItems int64) (*RistrettoRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate cache failed: %w", err)
	}
	return &RistrettoRateCache{cache: c}, nil
}

func (c *RistrettoRateCache) Get(pair domain.CurrencyPair) (domain.ExchangeRate, bool) {
	if v, ok := c.cache.Get(toKey(pair)); ok {
		r, ok := v.(domain.ExchangeRate)
		return r, ok
	}
	return domain.ExchangeRate{}, false
}

func (c *RistrettoRateCache) Set(rate domain.ExchangeRate) {
	key := toKey(domain.CurrencyPair{Base: rate.BaseCurrency, Target: rate.TargetCurrency})
	c.cache.Set(key, rate, 1)
}

func (c *RistrettoRateCache) Close() { c.cache.Close() }

func toKey(p domain.CurrencyPair) string { return p.Base + ":" + p.Target }
