package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"storefx/internal/domain"
	"storefx/internal/rate"
)

type Querier interface {
	Current(ctx context.Context) (domain.ExchangeRate, error)
}

type Refresher interface {
	Refresh(ctx context.Context) rate.Result
}

type Displayer interface {
	Quote(ctx context.Context, amountInBase float64, display string) (rate.Snapshot, string)
}

type Handler struct {
	query      Querier
	refresher  Refresher
	display    Displayer
	cronSecret string
}

func NewRateHandler(query Querier, refresher Refresher, display Displayer, cronSecret string) *Handler {
	return &Handler{query: query, refresher: refresher, display: display, cronSecret: cronSecret}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

type RefreshResponse struct {
	Success   bool      `json:"success"`
	Rate      float64   `json:"rate,omitempty" example:"43.6124"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp" example:"2026-02-07T07:00:00Z"`
}

// Both refresh triggers (admin and cron) answer with the same body shape:
// 200 on an applied rate, 500 with the underlying message otherwise.
func writeRefreshResult(w http.ResponseWriter, res rate.Result) {
	statusCode := http.StatusOK
	if !res.Success {
		statusCode = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(RefreshResponse{
		Success:   res.Success,
		Rate:      res.Rate,
		Error:     res.Error,
		Timestamp: time.Now().UTC(),
	})
}
