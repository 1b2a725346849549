package price

import (
	"context"
	"fmt"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"pricerelay/internal/observability"

	"github.com/jonboulle/clockwork"
)

type Service struct {
	fx         adapters.FXClient
	crypto     adapters.CryptoClient
	equity     adapters.EquityClient
	currencies *CurrencySet
	catalog    *CatalogCache
	stables    *StablecoinEvaluator
	cache      adapters.ResultCache
	classifier *Classifier
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

// Resolve prices base in quote. Fresh cached results are returned verbatim, including
// their original timestamp; otherwise the pair is classified, fetched and written through.
func (s *Service) Resolve(ctx context.Context, base string, quote string) (domain.ResolvedPrice, error) {
	pair, err := NormalizePair(base, quote)
	if err != nil {
		return domain.ResolvedPrice{}, err
	}

	if cached, ok := s.cache.Get(pair); ok {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	route, err := s.classifier.Classify(ctx, pair.Base)
	if err != nil {
		s.metrics.RecordResolved("", err)
		return domain.ResolvedPrice{}, fmt.Errorf("%s: %w", pair, err)
	}

	rec, err := route.Fetch(ctx, pair)
	s.metrics.RecordResolved(string(route.Category), err)
	if err != nil {
		return domain.ResolvedPrice{}, fmt.Errorf("%s: %w", pair, err)
	}

	res := domain.ResolvedPrice{
		Base:      pair.Base,
		Quote:     pair.Quote,
		Category:  route.Category,
		Data:      rec,
		Timestamp: s.clock.Now().Unix(),
	}
	s.cache.Set(pair, res)
	return res, nil
}

// Categories lists the classification order.
func (s *Service) Categories() []domain.Category {
	return s.classifier.Categories()
}

// NormalizePair uppercases both symbols, maps stablecoin aliases and defaults the quote to USD.
func NormalizePair(base string, quote string) (domain.AssetPair, error) {
	b := canonicalSymbol(domain.NormalizeSymbol(base))
	if b == "" {
		return domain.AssetPair{}, domain.ClientError("missing base asset")
	}
	q := canonicalSymbol(domain.NormalizeSymbol(quote))
	if q == "" {
		q = domain.DefaultQuote
	}
	return domain.AssetPair{Base: b, Quote: q}, nil
}

func (s *Service) routes() []Route {
	return []Route{
		{
			Category: domain.CategoryFX,
			Match: func(_ context.Context, base string) bool {
				return s.currencies.Contains(base)
			},
			Fetch: s.fetchFX,
		},
		{
			Category: domain.CategoryStablecoin,
			Match: func(_ context.Context, base string) bool {
				_, ok := LookupStablecoin(base)
				return ok
			},
			Fetch: s.fetchStablecoin,
		},
		{
			Category: domain.CategoryCrypto,
			Match: func(ctx context.Context, base string) bool {
				_, ok := s.catalog.Resolve(ctx, base)
				return ok
			},
			Fetch: s.fetchCrypto,
		},
		{
			Category: domain.CategoryEquity,
			Match: func(context.Context, string) bool {
				return true
			},
			Fetch: s.fetchEquity,
		},
	}
}

func (s *Service) fetchFX(ctx context.Context, pair domain.AssetPair) (domain.PriceRecord, error) {
	rate, err := s.fx.FetchRate(ctx, pair.Base, pair.Quote)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	return domain.PriceRecord{
		Price:  domain.Float(rate.Price),
		Change: domain.UnknownChange(),
		Source: s.fx.Name(),
		AsOf:   rate.AsOf,
	}, nil
}

// fetchStablecoin evaluates the peg when quoted in the peg currency and prices the coin as
// a plain crypto asset otherwise.
func (s *Service) fetchStablecoin(ctx context.Context, pair domain.AssetPair) (domain.PriceRecord, error) {
	cfg, _ := LookupStablecoin(pair.Base)
	if pair.Quote == cfg.PegCurrency {
		return s.stables.Evaluate(ctx, pair.Base)
	}
	return s.crypto.FetchPrice(ctx, cfg.CatalogID, pair.Quote)
}

func (s *Service) fetchCrypto(ctx context.Context, pair domain.AssetPair) (domain.PriceRecord, error) {
	id, ok := s.catalog.Resolve(ctx, pair.Base)
	if !ok {
		return domain.PriceRecord{}, domain.UnsupportedAsset(fmt.Sprintf("unknown crypto asset: %s", pair.Base))
	}
	return s.crypto.FetchPrice(ctx, id, pair.Quote)
}

func (s *Service) fetchEquity(ctx context.Context, pair domain.AssetPair) (domain.PriceRecord, error) {
	if !s.equity.HasCredential() {
		return domain.PriceRecord{}, domain.ConfigurationError("equity pricing unavailable (API key missing)")
	}
	return s.equity.FetchQuote(ctx, pair.Base)
}

type Deps struct {
	FX         adapters.FXClient
	Crypto     adapters.CryptoClient
	Equity     adapters.EquityClient
	Currencies *CurrencySet
	Catalog    *CatalogCache
	Cache      adapters.ResultCache
	Clock      clockwork.Clock
	Metrics    *observability.Metrics
}

func NewService(deps Deps) *Service {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Currencies == nil {
		deps.Currencies = NewCurrencySet(nil)
	}
	s := &Service{
		fx:         deps.FX,
		crypto:     deps.Crypto,
		equity:     deps.Equity,
		currencies: deps.Currencies,
		catalog:    deps.Catalog,
		stables:    NewStablecoinEvaluator(deps.Crypto),
		cache:      deps.Cache,
		clock:      deps.Clock,
		metrics:    deps.Metrics,
	}
	s.classifier = NewClassifier(s.routes()...)
	return s
}
