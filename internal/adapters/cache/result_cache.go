package cache

import (
	"fmt"
	"pricerelay/internal/domain"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const DefaultResultTTL = 60 * time.Second

type cachedResponse struct {
	payload  domain.ResolvedPrice
	storedAt time.Time
}

// RistrettoResultCache keeps resolved prices per normalized pair. Freshness is checked
// against the injected clock; ristretto's own TTL only reclaims memory.
type RistrettoResultCache struct {
	cache *ristretto.Cache
	clock clockwork.Clock
	ttl   time.Duration
}

func NewResultCache(maxItems int64, ttl time.Duration, clock clockwork.Clock) (*RistrettoResultCache, error) {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create result cache failed: %w", err)
	}
	return &RistrettoResultCache{cache: c, clock: clock, ttl: ttl}, nil
}

func (c *RistrettoResultCache) Get(pair domain.AssetPair) (domain.ResolvedPrice, bool) {
	v, ok := c.cache.Get(pair.Key())
	if !ok {
		return domain.ResolvedPrice{}, false
	}
	entry, ok := v.(cachedResponse)
	if !ok {
		return domain.ResolvedPrice{}, false
	}
	if c.clock.Since(entry.storedAt) >= c.ttl {
		c.cache.Del(pair.Key())
		return domain.ResolvedPrice{}, false
	}
	return entry.payload, true
}

func (c *RistrettoResultCache) Set(pair domain.AssetPair, price domain.ResolvedPrice) {
	if !c.store(pair, price) {
		logrus.WithField("pair", pair.Key()).Debug("result cache dropped write")
	}
}

// store reports whether ristretto accepted the entry. Writes can be dropped under
// contention or after Close.
func (c *RistrettoResultCache) store(pair domain.AssetPair, price domain.ResolvedPrice) bool {
	// the extra minute keeps entries around for the freshness check when the clock is faked
	if !c.cache.SetWithTTL(pair.Key(), cachedResponse{payload: price, storedAt: c.clock.Now()}, 1, c.ttl+time.Minute) {
		return false
	}
	c.cache.Wait()
	return true
}

func (c *RistrettoResultCache) Close() { c.cache.Close() }
