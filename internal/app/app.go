package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"storefx/internal/adapters/cache"
	"storefx/internal/adapters/httpclient"
	"storefx/internal/adapters/postgres"
	"storefx/internal/api"
	authmw "storefx/internal/api/middleware"
	"storefx/internal/config"
	"storefx/internal/domain"
	"storefx/internal/metrics"
	"storefx/internal/platform/db"
	httpserver "storefx/internal/platform/http"
	"storefx/internal/rate"
	"storefx/internal/rate/handler"
	"storefx/internal/retry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	if appCfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if appCfg.Refresh.CronSecret == "" {
		return fmt.Errorf("cron secret is required")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	pair := domain.CurrencyPair{
		Base:   strings.ToUpper(appCfg.Rates.Base),
		Target: strings.ToUpper(appCfg.Rates.Target),
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External rate source
	validator := rate.NewValidator(appCfg.Rates.MinPlausible, appCfg.Rates.MaxPlausible)
	rateSource := httpclient.NewCurrencyAPIClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.RateAPI.BaseURL, "/"),
		validator,
	)

	// Repositories
	rateStore := postgres.NewRateStore(pool)
	profileStore := postgres.NewProfileStore(pool)

	// Metrics
	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Services
	retryPolicy := retry.Policy{
		MaxAttempts: appCfg.Retry.MaxAttempts,
		BaseDelay:   time.Duration(appCfg.Retry.BaseDelayMs) * time.Millisecond,
	}
	refreshService := rate.NewRefreshService(rateSource, rateStore, pair, retryPolicy, appMetrics)
	queryService := rate.NewQueryService(rateStore, refreshService, pair, appMetrics)

	// Display layer with last-good fallback cache
	rateCache, err := cache.NewRateCache(16)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate cache")
		return err
	}
	defer rateCache.Close()
	displayClient := rate.NewDisplayClient(
		queryService,
		rateCache,
		pair,
		time.Duration(appCfg.Display.StaleAfterHours)*time.Hour,
		appCfg.Display.FallbackRate,
	)

	// Scheduler
	scheduler := rate.NewScheduler(refreshService, time.Duration(appCfg.Refresh.IntervalMinutes)*time.Minute)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(queryService, refreshService, displayClient, appCfg.Refresh.CronSecret)
	auth := authmw.NewAuth(appCfg.Auth.JWTSecret, profileStore)
	router := api.NewRouter(rateHandler, auth)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
