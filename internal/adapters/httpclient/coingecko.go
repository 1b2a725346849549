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
	DefaultCoinGeckoBaseURL = "https://api.coingecko.com/api/v3"
	cryptoProvider          = "coingecko"
)

// CoinGeckoClient serves spot prices and the coin catalog. Its price payload is treated
// leniently: illiquid coins legitimately miss change fields, so absent values degrade to
// null price or zero change instead of failing the request.
type CoinGeckoClient struct {
	http    adapters.HTTPClient
	baseURL string
	apiKey  string
}

func (c *CoinGeckoClient) FetchPrice(ctx context.Context, assetID string, quote string) (domain.PriceRecord, error) {
	id := strings.ToLower(strings.TrimSpace(assetID))
	q := strings.ToLower(strings.TrimSpace(quote))
	if id == "" || q == "" {
		return domain.PriceRecord{}, domain.ClientError("invalid crypto asset or quote")
	}

	query := url.Values{}
	query.Set("ids", id)
	query.Set("vs_currencies", q)
	query.Set("include_24hr_change", "true")

	body, err := c.get(ctx, "simple/price", query)
	if err != nil {
		return domain.PriceRecord{}, err
	}

	var payload map[string]map[string]any
	if err = json.Unmarshal(body, &payload); err != nil {
		return domain.PriceRecord{}, domain.InvalidUpstreamResponse("invalid crypto provider response", err)
	}

	var price *float64
	var change24h float64
	if block, ok := payload[id]; ok {
		if v, ok := finiteNumber(block[q]); ok {
			price = domain.Float(v)
		}
		if v, ok := finiteNumber(block[q+"_24h_change"]); ok {
			change24h = v
		}
	}

	return domain.PriceRecord{
		Price:  price,
		Change: domain.SnapshotChange(domain.Round(change24h, 2), domain.Round(change24h/2, 2)),
		Source: cryptoProvider,
	}, nil
}

type coinListItem struct {
	ID     any `json:"id"`
	Symbol any `json:"symbol"`
	Name   any `json:"name"`
}

// ListCoins returns the full catalog in provider order. Malformed entries are skipped.
func (c *CoinGeckoClient) ListCoins(ctx context.Context) ([]domain.CryptoCatalogEntry, error) {
	body, err := c.get(ctx, "coins/list", nil)
	if err != nil {
		return nil, err
	}

	var items []coinListItem
	if err = json.Unmarshal(body, &items); err != nil {
		return nil, domain.InvalidUpstreamResponse("invalid crypto catalog response", err)
	}

	coins := make([]domain.CryptoCatalogEntry, 0, len(items))
	for _, item := range items {
		id, idOK := item.ID.(string)
		symbol, symbolOK := item.Symbol.(string)
		if !idOK || !symbolOK || id == "" || symbol == "" {
			continue
		}
		name, _ := item.Name.(string)
		coins = append(coins, domain.CryptoCatalogEntry{ID: id, Symbol: strings.ToLower(symbol), Name: name})
	}
	return coins, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("x_cg_demo_api_key", c.apiKey)
	}

	status, body, err := getBody(ctx, c.http, joinPath(c.baseURL, path), query)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.UpstreamUnavailable("crypto provider request timed out", err)
		}
		return nil, domain.UpstreamUnavailable("crypto provider unavailable", err)
	}

	switch {
	case isSuccess(status):
		return body, nil
	case status == http.StatusTooManyRequests:
		return nil, domain.UpstreamRateLimited("crypto provider rate limit exceeded")
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domain.ConfigurationError("crypto provider authentication error")
	default:
		return nil, domain.UpstreamUnavailable(fmt.Sprintf("crypto provider unavailable: HTTP %d", status), nil)
	}
}

func (c *CoinGeckoClient) Name() string { return cryptoProvider }

func finiteNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || !domain.IsFinite(f) {
		return 0, false
	}
	return f, true
}

func NewCoinGeckoClient(httpClient adapters.HTTPClient, baseURL string, apiKey string) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoBaseURL
	}
	return &CoinGeckoClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
