package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
)

const DefaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherClient passes OpenWeatherMap current conditions through without reshaping them.
type WeatherClient struct {
	http    adapters.HTTPClient
	baseURL string
	apiKey  string
}

func (c *WeatherClient) Current(ctx context.Context, city string) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, domain.ConfigurationError("weather API key missing")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	status, body, err := getBody(ctx, c.http, joinPath(c.baseURL, "weather"), query)
	if err != nil {
		return nil, domain.UpstreamUnavailable("weather provider unavailable", err)
	}
	if !isSuccess(status) {
		return nil, domain.UpstreamUnavailable(fmt.Sprintf("weather provider unavailable: HTTP %d", status), nil)
	}

	var data map[string]any
	if err = json.Unmarshal(body, &data); err != nil {
		return nil, domain.InvalidUpstreamResponse("invalid weather provider response", err)
	}
	return data, nil
}

func NewWeatherClient(httpClient adapters.HTTPClient, baseURL string, apiKey string) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	return &WeatherClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
