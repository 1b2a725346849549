package price

import (
	"context"
	"fmt"
	"math"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
)

// depegThreshold is the absolute deviation, in percent, at which a coin counts as depegged.
const depegThreshold = 1.0

type StablecoinConfig struct {
	Symbol      string
	CatalogID   string
	Peg         float64
	PegCurrency string
}

var stablecoins = map[string]StablecoinConfig{
	"USDT": {Symbol: "USDT", CatalogID: "tether", Peg: 1, PegCurrency: "USD"},
	"USDC": {Symbol: "USDC", CatalogID: "usd-coin", Peg: 1, PegCurrency: "USD"},
	"BUSD": {Symbol: "BUSD", CatalogID: "binance-usd", Peg: 1, PegCurrency: "USD"},
	"DAI":  {Symbol: "DAI", CatalogID: "dai", Peg: 1, PegCurrency: "USD"},
}

var stablecoinAliases = map[string]string{
	"TETHER":      "USDT",
	"USD COIN":    "USDC",
	"BINANCE USD": "BUSD",
}

// LookupStablecoin returns the registry entry of a normalized symbol.
func LookupStablecoin(symbol string) (StablecoinConfig, bool) {
	cfg, ok := stablecoins[symbol]
	return cfg, ok
}

// canonicalSymbol maps stablecoin aliases to their ticker; other symbols pass through.
func canonicalSymbol(symbol string) string {
	if ticker, ok := stablecoinAliases[symbol]; ok {
		return ticker
	}
	return symbol
}

type StablecoinEvaluator struct {
	crypto adapters.CryptoClient
}

// Evaluate prices a registered stablecoin against its peg currency and reports the deviation.
func (e *StablecoinEvaluator) Evaluate(ctx context.Context, symbol string) (domain.PriceRecord, error) {
	cfg, ok := LookupStablecoin(domain.NormalizeSymbol(symbol))
	if !ok {
		return domain.PriceRecord{}, domain.UnsupportedAsset(fmt.Sprintf("unsupported stablecoin: %s", symbol))
	}

	rec, err := e.crypto.FetchPrice(ctx, cfg.CatalogID, cfg.PegCurrency)
	if err != nil {
		kind := domain.KindOf(err)
		if kind == nil {
			kind = domain.ErrUpstreamUnavailable
		}
		return domain.PriceRecord{}, domain.NewError(kind, fmt.Sprintf("stablecoin data unavailable: %s", cfg.Symbol), err)
	}
	if rec.Price == nil {
		return domain.PriceRecord{}, domain.UpstreamUnavailable(fmt.Sprintf("stablecoin data unavailable: %s", cfg.Symbol), nil)
	}

	deviation := domain.PercentChange(*rec.Price, cfg.Peg, 4)
	rec.Peg = domain.Float(cfg.Peg)
	rec.DeviationPercent = domain.Float(deviation)
	rec.IsDepegged = domain.Bool(math.Abs(deviation) >= depegThreshold)
	return rec, nil
}

func NewStablecoinEvaluator(crypto adapters.CryptoClient) *StablecoinEvaluator {
	return &StablecoinEvaluator{crypto: crypto}
}
