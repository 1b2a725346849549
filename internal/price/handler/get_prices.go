package handler

import (
	"net/http"
	"pricerelay/internal/domain"

	"github.com/sirupsen/logrus"
)

type PriceResponse struct {
	Status    string             `json:"status" example:"ok"`
	Base      string             `json:"base" example:"BTC"`
	Quote     string             `json:"quote" example:"USD"`
	Category  domain.Category    `json:"category" example:"crypto"`
	Data      domain.PriceRecord `json:"data"`
	Timestamp int64              `json:"timestamp" example:"1735819200"`
}

func newPriceResponse(p domain.ResolvedPrice) PriceResponse {
	return PriceResponse{
		Status:    statusOK,
		Base:      p.Base,
		Quote:     p.Quote,
		Category:  p.Category,
		Data:      p.Data,
		Timestamp: p.Timestamp,
	}
}

// GetPrices godoc
// @Summary Resolve a price
// @Description Resolve the price of base in quote. The category (fx, stablecoin, crypto, equity) is detected from base.
// @Tags Prices
// @Produce json
// @Param base query string true "Base asset symbol" example(BTC)
// @Param quote query string false "Quote asset symbol, USD when empty" example(USD)
// @Success 200 {object} PriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices [get]
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	quote := r.URL.Query().Get("quote")
	h.resolve(w, r, "GetPrices", base, quote)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, handlerName string, base string, quote string) {
	res, err := h.resolver.Resolve(r.Context(), base, quote)
	if err != nil {
		status := StatusCode(err)
		if status >= http.StatusInternalServerError {
			logrus.WithError(err).WithFields(logrus.Fields{"handler": handlerName, "base": base, "quote": quote}).Error("price resolution failed")
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newPriceResponse(res))
}
