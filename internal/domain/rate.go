package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExchangeRate is one observed quotation of a currency pair. Rows are
// append-only: a rate is created active by a refresh cycle, deactivated by
// the next one and never touched again.
type ExchangeRate struct {
	ID             uuid.UUID
	BaseCurrency   string
	TargetCurrency string
	Rate           float64
	FetchedAt      time.Time
	IsActive       bool
	CreatedAt      time.Time
}

type CurrencyPair struct {
	Base   string
	Target string
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Target
}
