package relay

import (
	"errors"
	"net/http"
	"pricerelay/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
)

type WeatherResponse struct {
	Status    string         `json:"status" example:"ok"`
	City      string         `json:"city" example:"London"`
	Data      map[string]any `json:"data"`
	Timestamp int64          `json:"timestamp" example:"1735819200"`
}

// GetWeather godoc
// @Summary Current weather
// @Description Pass-through of the weather provider's current conditions for a city
// @Tags Relay
// @Produce json
// @Param city query string true "City name" example(London)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weather [get]
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "city query parameter is required")
		return
	}

	data, err := h.weather.Current(r.Context(), city)
	if err != nil {
		if !errors.Is(err, domain.ErrConfiguration) {
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetWeather", "city": city}).Error("weather lookup failed")
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, WeatherResponse{
		Status:    "ok",
		City:      city,
		Data:      data,
		Timestamp: h.clock.Now().Unix(),
	})
}
