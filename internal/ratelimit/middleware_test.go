package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricerelay/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RejectsWith429(t *testing.T) {
	metrics := observability.NewMetrics("")
	l := NewLimiter(2, time.Minute, clockwork.NewFakeClock(), nil)

	r := chi.NewRouter()
	r.Use(Middleware(l, metrics))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusNoContent, do("192.0.2.1:1111").Code)
	require.Equal(t, http.StatusNoContent, do("192.0.2.1:2222").Code)

	rr := do("192.0.2.1:3333")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, map[string]string{"status": "error", "message": "rate limit exceeded"}, body)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsRateLimited))

	require.Equal(t, http.StatusNoContent, do("192.0.2.9:1111").Code)
}

func TestMiddleware_RealIPBehindProxy(t *testing.T) {
	l := NewLimiter(1, time.Minute, clockwork.NewFakeClock(), nil)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(Middleware(l, nil))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	do := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:443"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusNoContent, do("203.0.113.7"))
	require.Equal(t, http.StatusNoContent, do("203.0.113.8"))
	require.Equal(t, http.StatusTooManyRequests, do("203.0.113.7"))
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "[2001:db8::1]:8080"
	require.Equal(t, "2001:db8::1", ClientKey(req))

	req.RemoteAddr = "203.0.113.7"
	require.Equal(t, "203.0.113.7", ClientKey(req))
}
