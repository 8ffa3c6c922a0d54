package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefx/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateStore struct {
	pool *pgxpool.Pool
}

func NewRateStore(pool *pgxpool.Pool) *RateStore {
	return &RateStore{pool: pool}
}

// GetActive returns the single active row for the pair. The partial unique
// index guarantees at most one; ordering by fetched_at newest-first keeps the
// read deterministic if the invariant is ever broken out-of-band.
func (s *RateStore) GetActive(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	const q = `
        select id, base_currency, target_currency, rate, fetched_at, is_active, created_at
        from exchange_rates
        where base_currency = $1 and target_currency = $2 and is_active
        order by fetched_at desc
        limit 1;
    `

	var r domain.ExchangeRate
	if err := s.pool.QueryRow(ctx, q, pair.Base, pair.Target).Scan(
		&r.ID,
		&r.BaseCurrency,
		&r.TargetCurrency,
		&r.Rate,
		&r.FetchedAt,
		&r.IsActive,
		&r.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExchangeRate{}, domain.ErrNoActiveRate
		}
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to select active rate for pair %q: %v", domain.ErrStorage, pair, err)
	}

	return r, nil
}

// InsertAndActivate deactivates the pair's current row and inserts the new
// observation as active, atomically. The per-pair advisory lock serializes
// racing refreshes (cron vs manual); readers keep seeing the old row until
// commit, so there is no zero-active window.
func (s *RateStore) InsertAndActivate(ctx context.Context, pair domain.CurrencyPair, rate float64, fetchedAt time.Time) (domain.ExchangeRate, error) {
	const lockQ = `select pg_advisory_xact_lock(hashtext($1::text));`
	const deactivateQ = `
        update exchange_rates
        set is_active = false
        where base_currency = $1 and target_currency = $2 and is_active;
    `
	const insertQ = `
        insert into exchange_rates (id, base_currency, target_currency, rate, fetched_at, is_active)
        values ($1, $2, $3, $4, $5, true)
        returning id, base_currency, target_currency, rate, fetched_at, is_active, created_at;
    `

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to begin transaction for pair %q: %v", domain.ErrStorage, pair, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, lockQ, pair.String()); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to lock pair %q: %v", domain.ErrStorage, pair, err)
	}

	if _, err = tx.Exec(ctx, deactivateQ, pair.Base, pair.Target); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to deactivate rates for pair %q: %v", domain.ErrStorage, pair, err)
	}

	var r domain.ExchangeRate
	if err = tx.QueryRow(ctx, insertQ, uuid.New(), pair.Base, pair.Target, rate, fetchedAt).Scan(
		&r.ID,
		&r.BaseCurrency,
		&r.TargetCurrency,
		&r.Rate,
		&r.FetchedAt,
		&r.IsActive,
		&r.CreatedAt,
	); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to insert rate for pair %q: %v", domain.ErrStorage, pair, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("%w: failed to commit rate for pair %q: %v", domain.ErrStorage, pair, err)
	}
	return r, nil
}
