package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"pricerelay/internal/observability"

	"github.com/sirupsen/logrus"
)

type rejection struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Middleware rejects requests over the limit with 429. The key is the host part of
// RemoteAddr, so proxies must be resolved (chi RealIP) before this runs.
func Middleware(l *Limiter, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			if !l.Allow(key) {
				metrics.RecordRateLimited()
				logrus.WithFields(logrus.Fields{"client": key, "path": r.URL.Path}).Debug("rate limit exceeded")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(rejection{Status: "error", Message: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
