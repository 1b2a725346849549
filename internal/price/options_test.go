package price

import (
	"context"
	"errors"
	"testing"
	"time"

	"pricerelay/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOptionsFixture(equity *MockEquityClient, clock clockwork.Clock) *OptionsService {
	crypto := new(MockCryptoClient)
	crypto.On("ListCoins", mock.Anything).Return([]domain.CryptoCatalogEntry{
		{ID: "pepe", Symbol: "pepe"},
	}, nil).Maybe()
	catalog := NewCatalogCache(crypto, time.Minute, clock, nil)
	return NewOptionsService(catalog, NewCurrencySet([]string{"USD", "EUR", "GBP"}), equity, 0, clock)
}

func TestOptionsService_FallbackStocksWithoutCredential(t *testing.T) {
	equity := &MockEquityClient{}
	svc := newOptionsFixture(equity, clockwork.NewFakeClock())

	opts, err := svc.Options(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"EUR", "GBP", "USD"}, opts.FX)
	require.Equal(t, fallbackStocks, opts.Stocks)
	require.Contains(t, opts.Crypto, "PEPE")
	require.Contains(t, opts.Crypto, "BTC")
	require.IsIncreasing(t, opts.Crypto)
	equity.AssertNotCalled(t, "ListSymbols", mock.Anything)
}

func TestOptionsService_LiveStocksCachedForTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	equity := &MockEquityClient{apiKey: "key"}
	equity.On("ListSymbols", mock.Anything).Return([]string{"MSFT", "AAPL", "AAPL"}, nil).Twice()
	svc := newOptionsFixture(equity, clock)

	opts, err := svc.Options(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "MSFT"}, opts.Stocks)

	clock.Advance(4 * time.Minute)
	_, err = svc.Options(context.Background())
	require.NoError(t, err)
	equity.AssertNumberOfCalls(t, "ListSymbols", 1)

	clock.Advance(time.Minute)
	_, err = svc.Options(context.Background())
	require.NoError(t, err)
	equity.AssertNumberOfCalls(t, "ListSymbols", 2)
}

func TestOptionsService_FallbackStocksOnFailure(t *testing.T) {
	equity := &MockEquityClient{apiKey: "key"}
	equity.On("ListSymbols", mock.Anything).Return(nil, domain.UpstreamRateLimited("equity provider rate limit exceeded")).Once()
	svc := newOptionsFixture(equity, clockwork.NewFakeClock())

	opts, err := svc.Options(context.Background())
	require.NoError(t, err)
	require.Equal(t, fallbackStocks, opts.Stocks)
}

func TestOptionsService_CanceledContext(t *testing.T) {
	equity := &MockEquityClient{apiKey: "key"}
	equity.On("ListSymbols", mock.Anything).Return(nil, errors.New("canceled")).Maybe()
	svc := newOptionsFixture(equity, clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Options(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
