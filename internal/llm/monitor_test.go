package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func monitorAt(start time.Time, throttleRPM int) (*Monitor, *time.Time) {
	now := start
	m := NewMonitor(throttleRPM)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMonitor_StatsCounters(t *testing.T) {
	m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)

	m.RecordSuccess(200 * time.Millisecond)
	m.RecordSuccess(400 * time.Millisecond)
	m.RecordError(ErrClassRateLimit, 100*time.Millisecond)
	m.RecordError(ErrClassServer, 0)

	stats := m.Stats()
	assert.Equal(t, 4, stats.TotalLifetime)
	assert.Equal(t, 4, stats.RecentRequests)
	assert.Equal(t, 1, stats.RecentRateLimits)
	assert.Equal(t, 2, stats.RecentErrors)
	assert.InDelta(t, 50.0, stats.SuccessRatePct, 0.01)
	// Only timed entries contribute to the average.
	assert.Equal(t, 700*time.Millisecond/3, stats.AvgResponseTime)
}

func TestMonitor_PruneOutsideWindow(t *testing.T) {
	m, now := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)

	m.RecordSuccess(0)
	*now = now.Add(6 * time.Minute)
	m.RecordSuccess(0)

	stats := m.Stats()
	assert.Equal(t, 2, stats.TotalLifetime, "lifetime counter keeps aged entries")
	assert.Equal(t, 1, stats.RecentRequests, "window drops aged entries")
}

func TestMonitor_ShouldThrottle(t *testing.T) {
	m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 2)

	assert.False(t, m.ShouldThrottle())
	// 2 rpm over a 5 minute window needs 10 recent requests.
	for i := 0; i < 10; i++ {
		m.RecordSuccess(0)
	}
	assert.True(t, m.ShouldThrottle())
}

func TestMonitor_ThrottleDelay(t *testing.T) {
	t.Run("no recent activity", func(t *testing.T) {
		m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)
		assert.Equal(t, time.Duration(0), m.ThrottleDelay())
	})

	t.Run("rate limit errors dominate", func(t *testing.T) {
		m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)
		m.RecordError(ErrClassRateLimit, 0)
		m.RecordError(ErrClassRateLimit, 0)
		assert.Equal(t, 4*time.Second, m.ThrottleDelay())
	})

	t.Run("rate limit delay capped at 10s", func(t *testing.T) {
		m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)
		for i := 0; i < 8; i++ {
			m.RecordError(ErrClassRateLimit, 0)
		}
		assert.Equal(t, 10*time.Second, m.ThrottleDelay())
	})

	t.Run("volume based delay", func(t *testing.T) {
		m, _ := monitorAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 25)
		// Over 20 rpm across 5 minutes needs 101 successes.
		for i := 0; i < 101; i++ {
			m.RecordSuccess(0)
		}
		assert.Equal(t, 3*time.Second, m.ThrottleDelay())
	})
}
