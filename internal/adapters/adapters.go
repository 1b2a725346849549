package adapters

import (
	"context"
	"net/http"
	"pricerelay/internal/domain"
)

//go:generate mockgen -package=httpclient_test -destination=httpclient/mock_http_client_test.go pricerelay/internal/adapters HTTPClient

// HTTPClient is satisfied by *http.Client and by instrumented wrappers around it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type FXRate struct {
	Price float64
	AsOf  string
}

type FXClient interface {
	FetchRate(ctx context.Context, base string, quote string) (FXRate, error)
	Name() string
}

type CryptoClient interface {
	FetchPrice(ctx context.Context, assetID string, quote string) (domain.PriceRecord, error)
	ListCoins(ctx context.Context) ([]domain.CryptoCatalogEntry, error)
}

type EquityClient interface {
	FetchQuote(ctx context.Context, ticker string) (domain.PriceRecord, error)
	ListSymbols(ctx context.Context) ([]string, error)
	HasCredential() bool
}

type WeatherClient interface {
	Current(ctx context.Context, city string) (map[string]any, error)
}

type ResultCache interface {
	Get(pair domain.AssetPair) (domain.ResolvedPrice, bool)
	Set(pair domain.AssetPair, price domain.ResolvedPrice)
}
