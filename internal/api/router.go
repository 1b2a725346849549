package api

import (
	"encoding/json"
	"net/http"
	_ "pricerelay/docs"
	"pricerelay/internal/observability"
	"pricerelay/internal/price/handler"
	"pricerelay/internal/ratelimit"
	"pricerelay/internal/relay"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// TrustedProxy resolves the client address from X-Forwarded-For / X-Real-IP.
	TrustedProxy bool
	Limiter      *ratelimit.Limiter
	Metrics      *observability.Metrics
}

type rootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewRouter(priceHandler *handler.Handler, relayHandler *relay.Handler, opts Options) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if opts.TrustedProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rootResponse{Status: "ok", Message: "price relay is running"})
	})

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(ratelimit.Middleware(opts.Limiter, opts.Metrics))
		}

		r.Get("/prices", priceHandler.GetPrices)
		r.Get("/prices/options", priceHandler.GetOptions)
		r.Get("/prices/{base}/{quote}", priceHandler.GetByPair)

		r.Get("/weather", relayHandler.GetWeather)
		r.Get("/random", relayHandler.GetRandom)
		r.Post("/sign", relayHandler.PostSign)
		r.Post("/verify", relayHandler.PostVerify)
	})
	return router
}
