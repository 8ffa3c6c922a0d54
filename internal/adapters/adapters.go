package adapters

import (
	"context"
	"storefx/internal/domain"
	"time"

	"github.com/google/uuid"
)

// RateSource fetches the current quotation for a pair from the third-party
// API. One request, no internal retries; retry is the caller's concern.
type RateSource interface {
	FetchLatest(ctx context.Context, pair domain.CurrencyPair) (float64, error)
}

// RateStore persists the exchange-rate history. InsertAndActivate is the only
// write path; it must leave at most one active row per pair regardless of how
// concurrent refreshes interleave.
type RateStore interface {
	GetActive(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error)
	InsertAndActivate(ctx context.Context, pair domain.CurrencyPair, rate float64, fetchedAt time.Time) (domain.ExchangeRate, error)
}

type ProfileStore interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// RateCache keeps the last successfully served rate per pair for the display
// layer's fallback path.
type RateCache interface {
	Get(pair domain.CurrencyPair) (domain.ExchangeRate, bool)
	Set(rate domain.ExchangeRate)
}
