package api

import (
	_ "storefx/docs"
	authmw "storefx/internal/api/middleware"
	"storefx/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler, auth *authmw.Auth) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/currency/current", rateHandler.GetCurrent)
	router.Get("/api/v1/currency/display", rateHandler.GetDisplay)
	router.Get("/api/v1/currency/update", rateHandler.CronUpdate)

	router.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(auth.Session)
		r.Use(auth.RequireAdmin)
		r.Post("/currency/refresh", rateHandler.ManualRefresh)
	})

	return router
}
