package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"pricerelay/internal/domain"
)

type Resolver interface {
	Resolve(ctx context.Context, base string, quote string) (domain.ResolvedPrice, error)
}

type OptionsProvider interface {
	Options(ctx context.Context) (domain.Options, error)
}

type Handler struct {
	resolver Resolver
	options  OptionsProvider
}

func NewPriceHandler(resolver Resolver, options OptionsProvider) *Handler {
	return &Handler{resolver: resolver, options: options}
}

const (
	statusOK    = "ok"
	statusError = "error"
)

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"missing base asset"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, ErrorResponse{
		Status:  statusError,
		Message: errorMsg,
	})
}

// StatusCode maps an error kind to the HTTP status returned to callers.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrClient),
		errors.Is(err, domain.ErrConfiguration),
		errors.Is(err, domain.ErrUnsupportedAsset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
