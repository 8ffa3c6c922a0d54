package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// CronUpdate godoc
// @Summary Scheduled exchange rate update
// @Description Refresh trigger for an external cron, guarded by a shared bearer secret
// @Tags Currency
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} RefreshResponse
// @Router /currency/update [get]
func (h *Handler) CronUpdate(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if h.cronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) != 1 {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	logrus.Info("Starting scheduled exchange rate update")

	res := h.refresher.Refresh(r.Context())
	if !res.Success {
		logrus.WithField("handler", "CronUpdate").Errorf("Refresh failed: %s", res.Error)
	}
	writeRefreshResult(w, res)
}
