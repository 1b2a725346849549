package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"strings"
)

const (
	DefaultFXBaseURL = "https://api.frankfurter.app"
	fxProvider       = "frankfurter"
)

// errNoDirectQuote means the provider cannot express the requested base/symbols directly.
var errNoDirectQuote = errors.New("no direct quote")

// ExchangeRateClient talks to a Frankfurter compatible /latest endpoint. Such providers
// only know a limited set of currencies, so pairs they cannot quote directly are pivoted
// through an anchor currency.
type ExchangeRateClient struct {
	http    adapters.HTTPClient
	baseURL string
	apiKey  string
	anchor  string
}

type latestResponse struct {
	Base  string          `json:"base"`
	Date  string          `json:"date"`
	Rates json.RawMessage `json:"rates"`

	rates map[string]json.RawMessage
}

func (r *latestResponse) validate() error {
	if len(r.Rates) == 0 {
		return errors.New("rates field is missing")
	}
	if err := json.Unmarshal(r.Rates, &r.rates); err != nil {
		return fmt.Errorf("rates field is not an object: %w", err)
	}
	if r.rates == nil {
		return errors.New("rates field is null")
	}
	return nil
}

// rate returns the rate for code; ok is false when the provider omitted it.
func (r *latestResponse) rate(code string) (float64, bool, error) {
	raw, ok := r.rates[code]
	if !ok || string(raw) == "null" {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false, fmt.Errorf("rate for %q is not a number: %w", code, err)
	}
	if !domain.IsFinite(v) || v <= 0 {
		return 0, false, fmt.Errorf("rate for %q is not a positive number", code)
	}
	return v, true, nil
}

func (c *ExchangeRateClient) FetchRate(ctx context.Context, base string, quote string) (adapters.FXRate, error) {
	base = domain.NormalizeSymbol(base)
	quote = domain.NormalizeSymbol(quote)
	if base == "" || quote == "" {
		return adapters.FXRate{}, domain.ClientError("invalid currency pair")
	}
	if base == quote {
		return adapters.FXRate{Price: 1}, nil
	}

	// STEP 1: direct quote
	direct, err := c.latest(ctx, base, []string{quote})
	switch {
	case err == nil:
		v, ok, rateErr := direct.rate(quote)
		if rateErr != nil {
			return adapters.FXRate{}, domain.InvalidUpstreamResponse("invalid FX provider response", rateErr)
		}
		if ok {
			return adapters.FXRate{Price: domain.Round(v, 8), AsOf: direct.Date}, nil
		}
	case errors.Is(err, errNoDirectQuote):
	default:
		return adapters.FXRate{}, err
	}

	// STEP 2: pivot through the anchor, both legs in one call.
	// When the base is the anchor itself the pivot would repeat the direct request.
	if base == c.anchor {
		return adapters.FXRate{}, rateUnavailable(base, quote)
	}
	symbols := make([]string, 0, 2)
	for _, code := range []string{base, quote} {
		if code != c.anchor {
			symbols = append(symbols, code)
		}
	}
	pivot, err := c.latest(ctx, c.anchor, symbols)
	if err != nil {
		if errors.Is(err, errNoDirectQuote) {
			return adapters.FXRate{}, rateUnavailable(base, quote)
		}
		return adapters.FXRate{}, err
	}

	baseRate, baseOK, err := c.anchorLeg(pivot, base)
	if err != nil {
		return adapters.FXRate{}, err
	}
	quoteRate, quoteOK, err := c.anchorLeg(pivot, quote)
	if err != nil {
		return adapters.FXRate{}, err
	}
	if !baseOK || !quoteOK {
		return adapters.FXRate{}, rateUnavailable(base, quote)
	}
	return adapters.FXRate{Price: domain.Round(quoteRate/baseRate, 8), AsOf: pivot.Date}, nil
}

func (c *ExchangeRateClient) anchorLeg(resp *latestResponse, code string) (float64, bool, error) {
	if code == c.anchor {
		return 1, true, nil
	}
	v, ok, err := resp.rate(code)
	if err != nil {
		return 0, false, domain.InvalidUpstreamResponse("invalid FX provider response", err)
	}
	return v, ok, nil
}

func (c *ExchangeRateClient) latest(ctx context.Context, base string, symbols []string) (*latestResponse, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("symbols", strings.Join(symbols, ","))
	if c.apiKey != "" {
		query.Set("access_key", c.apiKey)
	}

	status, body, err := getBody(ctx, c.http, joinPath(c.baseURL, "latest"), query)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.UpstreamUnavailable("FX provider request timed out", err)
		}
		return nil, domain.UpstreamUnavailable("FX provider unavailable", err)
	}

	switch {
	case isSuccess(status):
	case status == http.StatusTooManyRequests:
		return nil, domain.UpstreamRateLimited("FX provider rate limit exceeded")
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domain.ConfigurationError("FX provider authentication error")
	case status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
		return nil, errNoDirectQuote
	default:
		return nil, domain.UpstreamUnavailable(fmt.Sprintf("FX provider unavailable: HTTP %d", status), nil)
	}

	var resp latestResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, domain.InvalidUpstreamResponse("invalid FX provider response", err)
	}
	if err = resp.validate(); err != nil {
		return nil, domain.InvalidUpstreamResponse("invalid FX provider response", err)
	}
	return &resp, nil
}

func (c *ExchangeRateClient) Name() string { return fxProvider }

func rateUnavailable(base, quote string) error {
	return domain.UnsupportedAsset(fmt.Sprintf("FX rate unavailable for pair %s/%s", base, quote))
}

func NewExchangeRateClient(httpClient adapters.HTTPClient, baseURL string, apiKey string) *ExchangeRateClient {
	if baseURL == "" {
		baseURL = DefaultFXBaseURL
	}
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL, apiKey: apiKey, anchor: domain.DefaultQuote}
}
