package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// ManualRefresh godoc
// @Summary Manually refresh the exchange rate
// @Description Runs one refresh cycle now. Requires an admin session.
// @Tags Currency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 500 {object} RefreshResponse
// @Router /admin/currency/refresh [post]
func (h *Handler) ManualRefresh(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Admin-initiated exchange rate refresh")

	res := h.refresher.Refresh(r.Context())
	if !res.Success {
		logrus.WithField("handler", "ManualRefresh").Errorf("Refresh failed: %s", res.Error)
	}
	writeRefreshResult(w, res)
}
