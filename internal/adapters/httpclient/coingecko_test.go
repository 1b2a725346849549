package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricerelay/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCoinGeckoClient_FetchPrice(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"ids":                 r.URL.Query().Get("ids"),
			"vs_currencies":       r.URL.Query().Get("vs_currencies"),
			"include_24hr_change": r.URL.Query().Get("include_24hr_change"),
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":64000.5,"usd_24h_change":3.14159}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL+"/api/v3", "")
	rec, err := c.FetchPrice(context.Background(), "Bitcoin", "USD")
	require.NoError(t, err)

	require.Equal(t, "/api/v3/simple/price", gotPath)
	require.Equal(t, map[string]string{"ids": "bitcoin", "vs_currencies": "usd", "include_24hr_change": "true"}, gotQuery)
	require.NotNil(t, rec.Price)
	require.InDelta(t, 64000.5, *rec.Price, 1e-9)
	require.Equal(t, 3.14, *rec.Change.H24)
	require.Equal(t, 1.57, *rec.Change.H12)
	require.Equal(t, 0.0, *rec.Change.H1)
	require.Equal(t, 0.0, *rec.Change.M30)
	require.Equal(t, 0.0, *rec.Change.M5)
	require.Equal(t, "coingecko", rec.Source)
}

func TestCoinGeckoClient_FetchPrice_DegradesOnMissingFields(t *testing.T) {
	bodies := map[string]string{
		"coin missing":     `{}`,
		"price missing":    `{"dust":{"usd_24h_change":1.0}}`,
		"change missing":   `{"dust":{"usd":0.0001}}`,
		"price not number": `{"dust":{"usd":"n/a","usd_24h_change":null}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(srv.Close)

			c := NewCoinGeckoClient(srv.Client(), srv.URL, "")
			rec, err := c.FetchPrice(context.Background(), "dust", "usd")
			require.NoError(t, err)
			require.NotNil(t, rec.Change.H24)
			require.NotNil(t, rec.Change.M5)
			if name == "change missing" {
				require.InDelta(t, 0.0001, *rec.Price, 1e-12)
				require.Equal(t, 0.0, *rec.Change.H24)
				return
			}
			if name == "price missing" {
				require.Equal(t, 1.0, *rec.Change.H24)
				require.Equal(t, 0.5, *rec.Change.H12)
			}
			require.Nil(t, rec.Price)
		})
	}
}

func TestCoinGeckoClient_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    error
		wantMsg string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, kind: domain.ErrUpstreamRateLimited, wantMsg: "crypto provider rate limit exceeded"},
		{name: "server error", status: http.StatusBadGateway, kind: domain.ErrUpstreamUnavailable, wantMsg: "crypto provider unavailable: HTTP 502"},
		{name: "not json", status: http.StatusOK, body: "<html>", kind: domain.ErrInvalidUpstreamResponse, wantMsg: "invalid crypto provider response"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			c := NewCoinGeckoClient(srv.Client(), srv.URL, "")
			_, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
			require.ErrorIs(t, err, tc.kind)
			require.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestCoinGeckoClient_ListCoins(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("x_cg_demo_api_key")
		_, _ = w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin"},
			{"id":"ethereum","symbol":"ETH","name":"Ethereum"},
			{"id":42,"symbol":"bad"},
			{"id":"no-symbol"},
			{"id":"","symbol":"empty"}
		]`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL, "demo-key")
	coins, err := c.ListCoins(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/coins/list", gotPath)
	require.Equal(t, "demo-key", gotKey)
	require.Equal(t, []domain.CryptoCatalogEntry{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
	}, coins)
}

func TestCoinGeckoClient_ListCoins_NotAnArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":{"error_code":429}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL, "")
	_, err := c.ListCoins(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidUpstreamResponse)
}
