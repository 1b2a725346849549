package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricerelay/internal/adapters/cache"
	"pricerelay/internal/adapters/httpclient"
	"pricerelay/internal/api"
	"pricerelay/internal/config"
	"pricerelay/internal/observability"
	httpserver "pricerelay/internal/platform/http"
	"pricerelay/internal/price"
	"pricerelay/internal/price/handler"
	"pricerelay/internal/ratelimit"
	"pricerelay/internal/relay"

	"github.com/jonboulle/clockwork"
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
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics(appCfg.Metrics.Namespace)

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	providers := appCfg.Providers
	fxClient := httpclient.NewExchangeRateClient(
		metrics.InstrumentClient("frankfurter", baseHTTPClient), providers.FX.BaseURL, providers.FX.APIKey)
	cryptoClient := httpclient.NewCoinGeckoClient(
		metrics.InstrumentClient("coingecko", baseHTTPClient), providers.Crypto.BaseURL, providers.Crypto.APIKey)
	equityClient := httpclient.NewFinnhubClient(
		metrics.InstrumentClient("finnhub", baseHTTPClient), providers.Equity.BaseURL, providers.Equity.APIKey)
	weatherClient := httpclient.NewWeatherClient(
		metrics.InstrumentClient("openweathermap", baseHTTPClient), providers.Weather.BaseURL, providers.Weather.APIKey)
	if !equityClient.HasCredential() {
		logrus.Warn("FINNHUB_API_KEY is not set, equity pricing is disabled")
	}

	// Caches
	resultCache, err := cache.NewResultCache(appCfg.Cache.MaxItems, appCfg.Cache.ResultTTL(), clock)
	if err != nil {
		logrus.WithError(err).Error("Failed to create result cache")
		return err
	}
	defer resultCache.Close()
	currencies := price.NewCurrencySet(appCfg.Currencies)
	catalog := price.NewCatalogCache(cryptoClient, appCfg.Cache.CatalogTTL(), clock, metrics)

	// Services
	priceService := price.NewService(price.Deps{
		FX:         fxClient,
		Crypto:     cryptoClient,
		Equity:     equityClient,
		Currencies: currencies,
		Catalog:    catalog,
		Cache:      resultCache,
		Clock:      clock,
		Metrics:    metrics,
	})
	logrus.WithField("order", priceService.Categories()).Info("✅ Price resolver ready")
	optionsService := price.NewOptionsService(catalog, currencies, equityClient, appCfg.Cache.OptionsTTL(), clock)
	limiter := ratelimit.NewLimiter(appCfg.RateLimit.Requests, appCfg.RateLimit.Window(), clock, metrics)

	scheduler := price.NewScheduler(catalog, limiter, appCfg.Scheduler.CatalogRefresh(), appCfg.RateLimit.SweepInterval())
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
	priceHandler := handler.NewPriceHandler(priceService, optionsService)
	relayHandler := relay.NewRelayHandler(weatherClient, clock)
	router := api.NewRouter(priceHandler, relayHandler, api.Options{
		TrustedProxy: appCfg.HTTPServer.TrustedProxy,
		Limiter:      limiter,
		Metrics:      metrics,
	})

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
