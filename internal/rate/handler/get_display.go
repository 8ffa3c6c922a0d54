package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type DisplayPriceResponse struct {
	Formatted string    `json:"formatted" example:"₺4.361,24"`
	Rate      float64   `json:"rate" example:"43.6124"`
	Currency  string    `json:"currency" example:"TRY"`
	Stale     bool      `json:"stale"`
	Fallback  bool      `json:"fallback"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// GetDisplay godoc
// @Summary Render a price for display
// @Description Converts a base-currency amount into the selected display currency, falling back to the last-good rate when the store is unreachable
// @Tags Currency
// @Produce json
// @Param amount query number true "Amount in the base currency"
// @Param currency query string false "Display currency code" default(TRY)
// @Success 200 {object} DisplayPriceResponse
// @Failure 400 {object} errorResponse
// @Router /currency/display [get]
func (h *Handler) GetDisplay(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount < 0 {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currency")))
	if currency == "" {
		currency = "TRY"
	}

	snap, formatted := h.display.Quote(r.Context(), amount, currency)

	res := DisplayPriceResponse{
		Formatted: formatted,
		Rate:      snap.Rate,
		Currency:  currency,
		Stale:     snap.Stale,
		Fallback:  snap.Fallback,
		UpdatedAt: snap.UpdatedAt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
