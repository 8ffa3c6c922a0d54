package rate

import (
	"context"
	"errors"
	"time"

	"storefx/internal/adapters"
	"storefx/internal/domain"
	"storefx/internal/metrics"
	"storefx/internal/retry"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Result is what every refresh trigger (cron endpoint, admin action,
// scheduler, self-heal) gets back. Failures are carried as a value so the
// calling HTTP handler can always produce a response.
type Result struct {
	Success   bool
	Rate      float64
	FetchedAt time.Time
	Error     string
}

// RefreshService runs one refresh cycle: retry-wrapped fetch, then the
// deactivate+insert write. It is the only writer of is_active. Concurrent
// calls are safe; the store serializes the write per pair.
type RefreshService struct {
	source  adapters.RateSource
	store   adapters.RateStore
	pair    domain.CurrencyPair
	policy  retry.Policy
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewRefreshService(source adapters.RateSource, store adapters.RateStore, pair domain.CurrencyPair, policy retry.Policy, m *metrics.Metrics) *RefreshService {
	return &RefreshService{
		source:  source,
		store:   store,
		pair:    pair,
		policy:  policy,
		metrics: m,
		now:     time.Now,
	}
}

// transientFetchError reports whether a fetch failure is worth retrying.
// Network and payload problems are; an implausible value is not, the API
// answered and will answer the same way again.
func transientFetchError(err error) bool {
	return errors.Is(err, domain.ErrSourceUnavailable) || errors.Is(err, domain.ErrBadPayload)
}

func (s *RefreshService) Refresh(ctx context.Context) Result {
	execID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"exec_id": execID, "pair": s.pair.String()})

	value, err := retry.Do(ctx, s.policy, transientFetchError, func(ctx context.Context) (float64, error) {
		started := s.now()
		v, fetchErr := s.source.FetchLatest(ctx, s.pair)
		s.metrics.ObserveFetchDuration(s.now().Sub(started).Seconds())
		return v, fetchErr
	})
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to fetch rate")
		s.metrics.ObserveRefresh(false)
		return Result{Success: false, Error: err.Error()}
	}

	fetchedAt := s.now().UTC()
	stored, err := s.store.InsertAndActivate(ctx, s.pair, value, fetchedAt)
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to persist rate")
		s.metrics.ObserveRefresh(false)
		return Result{Success: false, Error: err.Error()}
	}

	log.Infof("Refresh cycle applied rate %.6f", stored.Rate)
	s.metrics.ObserveRefresh(true)
	return Result{Success: true, Rate: stored.Rate, FetchedAt: stored.FetchedAt}
}
