package cache

import (
	"testing"
	"time"

	"pricerelay/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func resolved(base, quote string, price float64) domain.ResolvedPrice {
	return domain.ResolvedPrice{
		Base:      base,
		Quote:     quote,
		Category:  domain.CategoryFX,
		Data:      domain.PriceRecord{Price: domain.Float(price), Change: domain.UnknownChange(), Source: "frankfurter"},
		Timestamp: 1735776000000,
	}
}

func TestResultCache_SetAndGet(t *testing.T) {
	c, err := NewResultCache(128, time.Minute, clockwork.NewFakeClock())
	require.NoError(t, err)
	defer c.Close()

	pair := domain.AssetPair{Base: "EUR", Quote: "USD"}
	want := resolved("EUR", "USD", 1.08)
	c.Set(pair, want)

	got, ok := c.Get(pair)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestResultCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewResultCache(64, 0, nil)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get(domain.AssetPair{Base: "EUR", Quote: "USD"})
	require.False(t, ok)
	require.Equal(t, domain.ResolvedPrice{}, got)
}

func TestResultCache_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, err := NewResultCache(64, time.Minute, clock)
	require.NoError(t, err)
	defer c.Close()

	pair := domain.AssetPair{Base: "BTC", Quote: "USD"}
	c.Set(pair, resolved("BTC", "USD", 64000))

	clock.Advance(59 * time.Second)
	_, ok := c.Get(pair)
	require.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get(pair)
	require.False(t, ok, "entry aged exactly the TTL is stale")
}

func TestResultCache_ExpiresAtExactTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, err := NewResultCache(64, time.Minute, clock)
	require.NoError(t, err)
	defer c.Close()

	pair := domain.AssetPair{Base: "EUR", Quote: "GBP"}
	c.Set(pair, resolved("EUR", "GBP", 0.85))

	clock.Advance(time.Minute)
	_, ok := c.Get(pair)
	require.False(t, ok)
}

func TestResultCache_StoreReportsDroppedWrite(t *testing.T) {
	c, err := NewResultCache(64, time.Minute, clockwork.NewFakeClock())
	require.NoError(t, err)

	pair := domain.AssetPair{Base: "EUR", Quote: "USD"}
	require.True(t, c.store(pair, resolved("EUR", "USD", 1.08)))

	c.Close()
	require.False(t, c.store(pair, resolved("EUR", "USD", 1.09)))
	require.NotPanics(t, func() { c.Set(pair, resolved("EUR", "USD", 1.10)) })
}

func TestResultCache_KeysArePerDirection(t *testing.T) {
	c, err := NewResultCache(256, time.Minute, clockwork.NewFakeClock())
	require.NoError(t, err)
	defer c.Close()

	eurusd := domain.AssetPair{Base: "EUR", Quote: "USD"}
	c.Set(eurusd, resolved("EUR", "USD", 1.08))

	_, ok := c.Get(domain.AssetPair{Base: "USD", Quote: "EUR"})
	require.False(t, ok)

	got, ok := c.Get(eurusd)
	require.True(t, ok)
	require.Equal(t, 1.08, *got.Data.Price)
}
