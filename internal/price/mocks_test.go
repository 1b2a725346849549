package price

import (
	"context"

	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockFXClient struct{ mock.Mock }

func (m *MockFXClient) FetchRate(ctx context.Context, base string, quote string) (adapters.FXRate, error) {
	args := m.Called(ctx, base, quote)
	r, _ := args.Get(0).(adapters.FXRate)
	return r, args.Error(1)
}

func (m *MockFXClient) Name() string { return "frankfurter" }

type MockCryptoClient struct{ mock.Mock }

func (m *MockCryptoClient) FetchPrice(ctx context.Context, assetID string, quote string) (domain.PriceRecord, error) {
	args := m.Called(ctx, assetID, quote)
	r, _ := args.Get(0).(domain.PriceRecord)
	return r, args.Error(1)
}

func (m *MockCryptoClient) ListCoins(ctx context.Context) ([]domain.CryptoCatalogEntry, error) {
	args := m.Called(ctx)
	coins, _ := args.Get(0).([]domain.CryptoCatalogEntry)
	return coins, args.Error(1)
}

type MockEquityClient struct {
	mock.Mock
	apiKey string
}

func (m *MockEquityClient) FetchQuote(ctx context.Context, ticker string) (domain.PriceRecord, error) {
	args := m.Called(ctx, ticker)
	r, _ := args.Get(0).(domain.PriceRecord)
	return r, args.Error(1)
}

func (m *MockEquityClient) ListSymbols(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	symbols, _ := args.Get(0).([]string)
	return symbols, args.Error(1)
}

func (m *MockEquityClient) HasCredential() bool { return m.apiKey != "" }

type MockResultCache struct{ mock.Mock }

func (m *MockResultCache) Get(pair domain.AssetPair) (domain.ResolvedPrice, bool) {
	args := m.Called(pair)
	r, _ := args.Get(0).(domain.ResolvedPrice)
	return r, args.Bool(1)
}

func (m *MockResultCache) Set(pair domain.AssetPair, price domain.ResolvedPrice) {
	m.Called(pair, price)
}

func cryptoRecord(price float64, change24h float64) domain.PriceRecord {
	return domain.PriceRecord{
		Price:  domain.Float(price),
		Change: domain.SnapshotChange(change24h, domain.Round(change24h/2, 2)),
		Source: "coingecko",
	}
}
