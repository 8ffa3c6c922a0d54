package rate

import (
	"context"
	"errors"

	"storefx/internal/adapters"
	"storefx/internal/domain"
	"storefx/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Refresher is the single-cycle refresh operation, satisfied by
// *RefreshService.
type Refresher interface {
	Refresh(ctx context.Context) Result
}

// QueryService is the read path. The policy is fail-closed: anything that
// prevents producing a rate is reported as domain.ErrNoActiveRate (logged
// here), so the public endpoint answers 404 instead of fabricating a value.
type QueryService struct {
	store     adapters.RateStore
	refresher Refresher
	pair      domain.CurrencyPair
	metrics   *metrics.Metrics
}

func NewQueryService(store adapters.RateStore, refresher Refresher, pair domain.CurrencyPair, m *metrics.Metrics) *QueryService {
	return &QueryService{store: store, refresher: refresher, pair: pair, metrics: m}
}

// Current returns the active rate. When the pair has never been initialized
// it attempts exactly one self-heal refresh before giving up; the one-shot
// bound keeps racing readers from piling retries onto a dead upstream.
func (s *QueryService) Current(ctx context.Context) (domain.ExchangeRate, error) {
	s.metrics.ObserveCurrentRequest()

	current, err := s.store.GetActive(ctx, s.pair)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, domain.ErrNoActiveRate) {
		logrus.WithError(err).WithField("pair", s.pair.String()).Error("Failed to read active rate")
		return domain.ExchangeRate{}, domain.ErrNoActiveRate
	}

	res := s.refresher.Refresh(ctx)
	if !res.Success {
		logrus.WithField("pair", s.pair.String()).Warnf("Self-heal refresh failed: %s", res.Error)
		return domain.ExchangeRate{}, domain.ErrNoActiveRate
	}

	current, err = s.store.GetActive(ctx, s.pair)
	if err != nil {
		logrus.WithError(err).WithField("pair", s.pair.String()).Error("Active rate still absent after self-heal")
		return domain.ExchangeRate{}, domain.ErrNoActiveRate
	}
	return current, nil
}
