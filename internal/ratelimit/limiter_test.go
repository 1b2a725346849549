package ratelimit

import (
	"testing"
	"time"

	"pricerelay/internal/observability"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AdmitsLimitThenRejects(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewLimiter(60, time.Minute, clock, nil)

	for i := 0; i < 60; i++ {
		require.True(t, l.Allow("10.0.0.1"), "request %d", i+1)
		clock.Advance(500 * time.Millisecond)
	}
	require.False(t, l.Allow("10.0.0.1"), "61st request within the window")

	// other keys are independent
	require.True(t, l.Allow("10.0.0.2"))
}

func TestLimiter_ResumesAfterWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewLimiter(60, time.Minute, clock, nil)

	for i := 0; i < 60; i++ {
		require.True(t, l.Allow("k"))
	}
	require.False(t, l.Allow("k"))

	clock.Advance(59 * time.Second)
	require.False(t, l.Allow("k"))

	clock.Advance(time.Second)
	require.True(t, l.Allow("k"))
}

func TestLimiter_SlidingNotFixed(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewLimiter(2, 10*time.Second, clock, nil)

	require.True(t, l.Allow("k")) // t=0
	clock.Advance(6 * time.Second)
	require.True(t, l.Allow("k")) // t=6
	clock.Advance(5 * time.Second)
	require.True(t, l.Allow("k"), "t=0 left the window") // t=11
	require.False(t, l.Allow("k"), "t=6 and t=11 still inside")
}

func TestLimiter_RejectionsDoNotConsume(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewLimiter(1, 10*time.Second, clock, nil)

	require.True(t, l.Allow("k"))
	for i := 0; i < 5; i++ {
		require.False(t, l.Allow("k"))
	}
	clock.Advance(10 * time.Second)
	require.True(t, l.Allow("k"))
}

func TestLimiter_SweepDropsIdleBuckets(t *testing.T) {
	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetrics("")
	l := NewLimiter(60, time.Minute, clock, metrics)

	l.Allow("old")
	clock.Advance(45 * time.Second)
	l.Allow("recent")

	require.Equal(t, 2, l.Sweep())

	clock.Advance(20 * time.Second)
	require.Equal(t, 1, l.Sweep())
	require.NotContains(t, l.buckets, "old")
	require.Contains(t, l.buckets, "recent")
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.LimiterBuckets))

	clock.Advance(time.Minute)
	require.Equal(t, 0, l.Sweep())
}

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(0, 0, nil, nil)
	require.Equal(t, DefaultLimit, l.limit)
	require.Equal(t, DefaultWindow, l.window)
}
