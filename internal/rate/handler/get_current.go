package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"storefx/internal/domain"
)

type CurrentRateResponse struct {
	Rate      float64   `json:"rate" example:"43.6124"`
	Base      string    `json:"base" example:"USD"`
	Target    string    `json:"target" example:"TRY"`
	UpdatedAt time.Time `json:"updatedAt" example:"2026-02-07T07:00:00Z"`
}

// GetCurrent godoc
// @Summary Get the current exchange rate
// @Description Returns the active USD/TRY rate, self-healing once if none is stored yet
// @Tags Currency
// @Produce json
// @Success 200 {object} CurrentRateResponse
// @Failure 404 {object} errorResponse "no exchange rate available"
// @Router /currency/current [get]
func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	current, err := h.query.Current(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRate) {
			writeError(w, http.StatusNotFound, "no exchange rate available")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch exchange rate")
		return
	}

	res := CurrentRateResponse{
		Rate:      current.Rate,
		Base:      current.BaseCurrency,
		Target:    current.TargetCurrency,
		UpdatedAt: current.FetchedAt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
