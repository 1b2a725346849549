package price

import (
	"context"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultOptionsTTL = 5 * time.Minute

// fallbackStocks is offered when the equity provider has no credential or fails.
var fallbackStocks = []string{
	"AAPL", "AMZN", "BRK.B", "GOOGL", "JNJ", "JPM", "MA", "META",
	"MSFT", "NVDA", "PG", "TSLA", "V", "WMT", "XOM",
}

// OptionsService builds the symbol lists offered to clients and caches them wholesale.
type OptionsService struct {
	catalog    *CatalogCache
	currencies *CurrencySet
	equity     adapters.EquityClient
	clock      clockwork.Clock
	ttl        time.Duration

	mu     sync.Mutex
	cached *domain.Options
}

func (s *OptionsService) Options(ctx context.Context) (domain.Options, error) {
	s.mu.Lock()
	if s.cached != nil && s.clock.Since(s.cached.UpdatedAt) < s.ttl {
		out := *s.cached
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	var crypto, stocks []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		symbols := s.catalog.Symbols(gctx)
		crypto = make([]string, 0, len(symbols))
		for _, sym := range symbols {
			crypto = append(crypto, strings.ToUpper(sym))
		}
		slices.Sort(crypto)
		crypto = slices.Compact(crypto)
		return gctx.Err()
	})
	g.Go(func() error {
		stocks = s.stockSymbols(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return domain.Options{}, err
	}

	opts := domain.Options{
		Crypto:    crypto,
		FX:        s.currencies.Codes(),
		Stocks:    stocks,
		UpdatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.cached = &opts
	s.mu.Unlock()
	return opts, nil
}

func (s *OptionsService) stockSymbols(ctx context.Context) []string {
	if !s.equity.HasCredential() {
		return slices.Clone(fallbackStocks)
	}
	symbols, err := s.equity.ListSymbols(ctx)
	if err != nil || len(symbols) == 0 {
		logrus.WithError(err).Warn("equity symbol list unavailable, using fallback list")
		return slices.Clone(fallbackStocks)
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}

func NewOptionsService(catalog *CatalogCache, currencies *CurrencySet, equity adapters.EquityClient, ttl time.Duration, clock clockwork.Clock) *OptionsService {
	if ttl <= 0 {
		ttl = DefaultOptionsTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if currencies == nil {
		currencies = NewCurrencySet(nil)
	}
	return &OptionsService{catalog: catalog, currencies: currencies, equity: equity, clock: clock, ttl: ttl}
}
