package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"strings"
)

const (
	DefaultFinnhubBaseURL = "https://finnhub.io/api/v1"
	equityProvider        = "finnhub"
)

// FinnhubClient fetches equity quotes. Unlike crypto prices a quote with missing OHLC
// fields means the ticker is unknown, so every required field is validated strictly.
type FinnhubClient struct {
	http    adapters.HTTPClient
	baseURL string
	apiKey  string
}

type finnhubQuote struct {
	Current       float64
	High          float64
	Low           float64
	Open          float64
	PreviousClose float64
}

// parseFinnhubQuote validates c, h, l, o and pc; any of them missing or not a finite number
// is how the provider signals an unknown symbol, as is an all-zero quote.
func parseFinnhubQuote(body []byte) (finnhubQuote, bool) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return finnhubQuote{}, false
	}

	fields := [...]string{"c", "h", "l", "o", "pc"}
	var values [len(fields)]float64
	allZero := true
	for i, name := range fields {
		v, ok := finiteNumber(raw[name])
		if !ok {
			return finnhubQuote{}, false
		}
		values[i] = v
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		return finnhubQuote{}, false
	}

	return finnhubQuote{
		Current:       values[0],
		High:          values[1],
		Low:           values[2],
		Open:          values[3],
		PreviousClose: values[4],
	}, true
}

func (c *FinnhubClient) FetchQuote(ctx context.Context, ticker string) (domain.PriceRecord, error) {
	if !c.HasCredential() {
		return domain.PriceRecord{}, domain.ConfigurationError("equity pricing unavailable (API key missing)")
	}
	symbol := domain.NormalizeSymbol(ticker)
	if symbol == "" {
		return domain.PriceRecord{}, domain.ClientError("invalid stock symbol")
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	body, err := c.get(ctx, "quote", query)
	if err != nil {
		return domain.PriceRecord{}, err
	}

	q, ok := parseFinnhubQuote(body)
	if !ok {
		return domain.PriceRecord{}, domain.InvalidUpstreamResponse(
			fmt.Sprintf("invalid stock symbol or empty data for %s", symbol), nil)
	}

	pct := domain.PercentChange(q.Current, q.PreviousClose, 2)
	change := domain.SnapshotChange(pct, domain.Round(pct/2, 2))
	change.Absolute = domain.Float(domain.Round(q.Current-q.PreviousClose, 4))
	change.Percent = domain.Float(pct)

	return domain.PriceRecord{
		Price:         domain.Float(q.Current),
		Change:        change,
		Open:          domain.Float(q.Open),
		High:          domain.Float(q.High),
		Low:           domain.Float(q.Low),
		PreviousClose: domain.Float(q.PreviousClose),
		Source:        equityProvider,
	}, nil
}

// ListSymbols returns the tickers listed on US exchanges.
func (c *FinnhubClient) ListSymbols(ctx context.Context) ([]string, error) {
	if !c.HasCredential() {
		return nil, domain.ConfigurationError("equity pricing unavailable (API key missing)")
	}

	query := url.Values{}
	query.Set("exchange", "US")
	body, err := c.get(ctx, "stock/symbol", query)
	if err != nil {
		return nil, err
	}

	var items []struct {
		Symbol string `json:"symbol"`
	}
	if err = json.Unmarshal(body, &items); err != nil {
		return nil, domain.InvalidUpstreamResponse("invalid equity symbol list response", err)
	}

	symbols := make([]string, 0, len(items))
	for _, item := range items {
		if s := domain.NormalizeSymbol(item.Symbol); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}

func (c *FinnhubClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	query.Set("token", c.apiKey)

	status, body, err := getBody(ctx, c.http, joinPath(c.baseURL, path), query)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.UpstreamUnavailable("equity provider request timed out", err)
		}
		return nil, domain.UpstreamUnavailable("failed to fetch stock data", err)
	}

	switch {
	case isSuccess(status):
		return body, nil
	case status == http.StatusUnauthorized:
		return nil, domain.ConfigurationError("invalid equity provider credential")
	case status == http.StatusTooManyRequests:
		return nil, domain.UpstreamRateLimited("equity provider rate limit exceeded")
	default:
		return nil, domain.UpstreamUnavailable("failed to fetch stock data", nil)
	}
}

func (c *FinnhubClient) HasCredential() bool { return strings.TrimSpace(c.apiKey) != "" }

func (c *FinnhubClient) Name() string { return equityProvider }

func NewFinnhubClient(httpClient adapters.HTTPClient, baseURL string, apiKey string) *FinnhubClient {
	if baseURL == "" {
		baseURL = DefaultFinnhubBaseURL
	}
	return &FinnhubClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
