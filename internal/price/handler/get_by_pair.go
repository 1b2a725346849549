package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetByPair godoc
// @Summary Resolve a price by path
// @Description Same as GET /prices with base and quote taken from the path
// @Tags Prices
// @Produce json
// @Param base path string true "Base asset symbol" example(EUR)
// @Param quote path string true "Quote asset symbol" example(GBP)
// @Success 200 {object} PriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices/{base}/{quote} [get]
func (h *Handler) GetByPair(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "GetByPair", chi.URLParam(r, "base"), chi.URLParam(r, "quote"))
}
