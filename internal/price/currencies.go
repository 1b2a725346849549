package price

import (
	"maps"
	"pricerelay/internal/domain"
	"slices"
)

// DefaultCurrencies are the ISO codes the FX provider quotes.
var DefaultCurrencies = []string{
	"AUD", "BGN", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP",
	"HKD", "HUF", "IDR", "ILS", "INR", "ISK", "JPY", "KRW", "MXN", "MYR",
	"NOK", "NZD", "PHP", "PLN", "RON", "SEK", "SGD", "THB", "TRY", "USD", "ZAR",
}

// CurrencySet is the immutable set of FX codes that classify a base as fiat.
type CurrencySet struct {
	codesSet map[string]struct{} // read only copy
	codesLst []string            // read only copy
}

func (s *CurrencySet) Contains(code string) bool {
	_, ok := s.codesSet[domain.NormalizeSymbol(code)]
	return ok
}

func (s *CurrencySet) Codes() []string {
	return slices.Clone(s.codesLst)
}

func NewCurrencySet(codes []string) *CurrencySet {
	if len(codes) == 0 {
		codes = DefaultCurrencies
	}
	codesSet := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if c = domain.NormalizeSymbol(c); c != "" {
			codesSet[c] = struct{}{}
		}
	}
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &CurrencySet{
		codesSet: codesSet,
		codesLst: codesLst,
	}
}
