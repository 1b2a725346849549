package domain

import (
	"strings"
	"time"
)

// Category names the upstream family that governs a pair.
type Category string

const (
	CategoryFX         Category = "fx"
	CategoryStablecoin Category = "stablecoin"
	CategoryCrypto     Category = "crypto"
	CategoryEquity     Category = "equity"
)

const DefaultQuote = "USD"

type AssetPair struct {
	Base  string
	Quote string
}

// Key is the normalized cache key of the pair.
func (p AssetPair) Key() string {
	return p.Base + ":" + p.Quote
}

func (p AssetPair) String() string {
	return p.Base + "/" + p.Quote
}

// NormalizeSymbol trims and uppercases a user supplied symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Change holds percentage changes per window. A nil bucket means the window is unknown,
// a zero bucket means the provider cannot measure it and reports no change.
type Change struct {
	M5       *float64 `json:"5m"`
	M30      *float64 `json:"30m"`
	H1       *float64 `json:"1h"`
	H12      *float64 `json:"12h"`
	H24      *float64 `json:"24h"`
	Absolute *float64 `json:"absolute,omitempty"`
	Percent  *float64 `json:"percent,omitempty"`
}

// PriceRecord is the normalized shape returned by every provider adapter.
type PriceRecord struct {
	Price  *float64 `json:"price"`
	Change Change   `json:"change"`

	// equity quotes
	Open          *float64 `json:"open,omitempty"`
	High          *float64 `json:"high,omitempty"`
	Low           *float64 `json:"low,omitempty"`
	PreviousClose *float64 `json:"previousClose,omitempty"`

	// stablecoins
	Peg              *float64 `json:"peg,omitempty"`
	DeviationPercent *float64 `json:"deviationPercent,omitempty"`
	IsDepegged       *bool    `json:"isDepegged,omitempty"`

	Source string `json:"source,omitempty"`
	AsOf   string `json:"asOf,omitempty"`
}

// ResolvedPrice is what the resolver returns and what the result cache stores.
type ResolvedPrice struct {
	Base      string      `json:"base"`
	Quote     string      `json:"quote"`
	Category  Category    `json:"category"`
	Data      PriceRecord `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// CryptoCatalogEntry is one coin of the crypto provider catalog.
type CryptoCatalogEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
}

// Options lists the symbols the dashboard offers.
type Options struct {
	Crypto    []string  `json:"crypto"`
	FX        []string  `json:"fx"`
	Stocks    []string  `json:"stocks"`
	UpdatedAt time.Time `json:"-"`
}

func Float(v float64) *float64 { return &v }

func Bool(v bool) *bool { return &v }

// UnknownChange is the change block of sources without any history.
func UnknownChange() Change {
	return Change{}
}

// SnapshotChange derives buckets from a 24h percentage: finer windows are not measurable
// from a snapshot and report 0, 12h is approximated as half of 24h.
func SnapshotChange(h24, h12 float64) Change {
	return Change{
		M5:  Float(0),
		M30: Float(0),
		H1:  Float(0),
		H12: Float(h12),
		H24: Float(h24),
	}
}
