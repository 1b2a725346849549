package price

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"pricerelay/internal/observability"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCatalogTTL = 60 * time.Second
	MaxCatalogTTL     = 5 * time.Minute
)

// topCoins answers before the first successful refresh and overrides duplicate
// catalog symbols, which otherwise resolve to the first entry in provider order.
var topCoins = map[string]string{
	"btc":   "bitcoin",
	"eth":   "ethereum",
	"usdt":  "tether",
	"usdc":  "usd-coin",
	"bnb":   "binancecoin",
	"sol":   "solana",
	"xrp":   "ripple",
	"ada":   "cardano",
	"doge":  "dogecoin",
	"dot":   "polkadot",
	"avax":  "avalanche-2",
	"ltc":   "litecoin",
	"link":  "chainlink",
	"trx":   "tron",
	"matic": "matic-network",
	"dai":   "dai",
	"busd":  "binance-usd",
}

type catalogTable struct {
	ids       map[string]string
	symbols   []string
	fetchedAt time.Time
}

func newCatalogTable(coins []domain.CryptoCatalogEntry, fetchedAt time.Time) *catalogTable {
	ids := make(map[string]string, len(coins)+len(topCoins))
	for _, coin := range coins {
		sym := strings.ToLower(coin.Symbol)
		if _, seen := ids[sym]; seen {
			continue
		}
		ids[sym] = coin.ID
	}
	maps.Copy(ids, topCoins)

	symbols := slices.Collect(maps.Keys(ids))
	slices.Sort(symbols)
	return &catalogTable{ids: ids, symbols: symbols, fetchedAt: fetchedAt}
}

// CatalogCache maps crypto symbols to provider ids. The table is replaced wholesale
// through an atomic pointer; readers never see a partially built table.
type CatalogCache struct {
	client  adapters.CryptoClient
	clock   clockwork.Clock
	ttl     time.Duration
	metrics *observability.Metrics

	table       atomic.Pointer[catalogTable]
	nextAttempt atomic.Int64 // unix nanos, backoff after a failed refresh
	group       singleflight.Group
	fallback    *catalogTable
}

// Resolve returns the provider id for symbol. A stale or missing table triggers a refresh;
// when that fails the last good table, or the static top coins, still answer.
func (c *CatalogCache) Resolve(ctx context.Context, symbol string) (string, bool) {
	t := c.current(ctx)
	id, ok := t.ids[strings.ToLower(strings.TrimSpace(symbol))]
	return id, ok
}

// Symbols lists the known lowercase symbols in sorted order.
func (c *CatalogCache) Symbols(ctx context.Context) []string {
	return slices.Clone(c.current(ctx).symbols)
}

// Refresh fetches the catalog now. Concurrent callers share one upstream request, which
// outlives the caller that started it and is bounded by refreshTimeout instead.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("catalog", func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		coins, err := c.client.ListCoins(refreshCtx)
		if err != nil {
			// only upstream failures back off
			if !errors.Is(err, context.Canceled) {
				c.nextAttempt.Store(c.clock.Now().Add(c.ttl).UnixNano())
			}
			c.metrics.RecordCatalogRefresh(0, err)
			return nil, fmt.Errorf("refresh crypto catalog: %w", err)
		}

		t := newCatalogTable(coins, c.clock.Now())
		c.table.Store(t)
		c.nextAttempt.Store(0)
		c.metrics.RecordCatalogRefresh(len(t.ids), nil)
		logrus.WithField("symbols", len(t.ids)).Debug("crypto catalog refreshed")
		return nil, nil
	})
	return err
}

func (c *CatalogCache) current(ctx context.Context) *catalogTable {
	t := c.table.Load()
	if c.stale(t) {
		if err := c.Refresh(ctx); err != nil {
			logrus.WithError(err).Warn("crypto catalog refresh failed, serving previous table")
		}
		t = c.table.Load()
	}
	if t == nil {
		return c.fallback
	}
	return t
}

func (c *CatalogCache) stale(t *catalogTable) bool {
	now := c.clock.Now()
	if next := c.nextAttempt.Load(); next != 0 && now.UnixNano() < next {
		return false
	}
	return t == nil || now.Sub(t.fetchedAt) >= c.ttl
}

func NewCatalogCache(client adapters.CryptoClient, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if ttl > MaxCatalogTTL {
		ttl = MaxCatalogTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CatalogCache{
		client:   client,
		clock:    clock,
		ttl:      ttl,
		metrics:  metrics,
		fallback: newCatalogTable(nil, time.Time{}),
	}
}
