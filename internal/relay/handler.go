// Package relay serves the ancillary endpoints: weather pass-through, secure randomness
// and HMAC signing.
package relay

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"pricerelay/internal/adapters"

	"github.com/jonboulle/clockwork"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	weather adapters.WeatherClient
	clock   clockwork.Clock
	entropy io.Reader
}

func NewRelayHandler(weather adapters.WeatherClient, clock clockwork.Clock) *Handler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Handler{weather: weather, clock: clock, entropy: rand.Reader}
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"missing message or secret"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, ErrorResponse{Status: "error", Message: errorMsg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
