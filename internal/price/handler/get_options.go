package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type OptionsResponse struct {
	Status string   `json:"status" example:"ok"`
	Crypto []string `json:"crypto" example:"BTC,ETH,SOL"`
	FX     []string `json:"fx" example:"EUR,GBP,USD"`
	Stocks []string `json:"stocks" example:"AAPL,MSFT"`
}

// GetOptions godoc
// @Summary List selectable symbols
// @Description Crypto symbols from the catalog, supported FX codes and equity tickers. Cached for 5 minutes.
// @Tags Prices
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices/options [get]
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options.Options(r.Context())
	if err != nil {
		msg := "couldn't build options this time"
		logrus.WithError(err).WithField("handler", "GetOptions").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, OptionsResponse{
		Status: statusOK,
		Crypto: opts.Crypto,
		FX:     opts.FX,
		Stocks: opts.Stocks,
	})
}
