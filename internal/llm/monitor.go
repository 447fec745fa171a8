package llm

import (
	"sync"
	"time"
)

// monitorEntry records one upstream attempt inside the observation window.
type monitorEntry struct {
	at      time.Time
	success bool
	class   ErrorClass
	elapsed time.Duration
}

// MonitorStats is a snapshot of recent upstream usage.
type MonitorStats struct {
	TotalLifetime     int
	RecentRequests    int
	RecentRateLimits  int
	RecentErrors      int
	SuccessRatePct    float64
	AvgResponseTime   time.Duration
	RequestsPerMinute float64
}

// Monitor tracks upstream usage over a sliding window and recommends
// proactive throttling delays for future calls. It is owned by whoever
// constructs it and passed by reference; there is no package-level
// instance, so tests can substitute a fake clock.
type Monitor struct {
	mu      sync.Mutex
	window  time.Duration
	entries []monitorEntry

	totalRequests int
	rateLimits    int
	serverErrors  int
	successes     int

	throttleRPM int
	now         func() time.Time
}

// NewMonitor creates a Monitor with a 5-minute observation window and
// the given proactive-throttle threshold in requests per minute.
func NewMonitor(throttleRPM int) *Monitor {
	return &Monitor{
		window:      5 * time.Minute,
		throttleRPM: throttleRPM,
		now:         time.Now,
	}
}

// RecordSuccess logs a successful upstream attempt.
func (m *Monitor) RecordSuccess(elapsed time.Duration) {
	m.record(monitorEntry{success: true, elapsed: elapsed})
}

// RecordError logs a failed upstream attempt with its error class.
func (m *Monitor) RecordError(class ErrorClass, elapsed time.Duration) {
	m.record(monitorEntry{class: class, elapsed: elapsed})
}

func (m *Monitor) record(e monitorEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.at = m.now()
	m.pruneLocked()
	m.entries = append(m.entries, e)

	m.totalRequests++
	switch {
	case e.success:
		m.successes++
	case e.class == ErrClassRateLimit:
		m.rateLimits++
	case e.class == ErrClassServer:
		m.serverErrors++
	}
}

// pruneLocked drops entries older than the window. Caller holds the lock.
func (m *Monitor) pruneLocked() {
	cutoff := m.now().Add(-m.window)
	i := 0
	for i < len(m.entries) && m.entries[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		m.entries = append(m.entries[:0], m.entries[i:]...)
	}
}

// ShouldThrottle reports whether recent request volume warrants a
// proactive delay before the next call.
func (m *Monitor) ShouldThrottle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	rpm := float64(len(m.entries)) / m.window.Minutes()
	return rpm >= float64(m.throttleRPM)
}

// ThrottleDelay returns the recommended pause before the next request.
// Recent rate-limit errors dominate; otherwise the delay scales with
// request volume.
func (m *Monitor) ThrottleDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()

	recentRateLimits := 0
	for _, e := range m.entries {
		if !e.success && e.class == ErrClassRateLimit {
			recentRateLimits++
		}
	}
	if recentRateLimits > 0 {
		d := time.Duration(recentRateLimits) * 2 * time.Second
		if d > 10*time.Second {
			d = 10 * time.Second
		}
		return d
	}

	rpm := float64(len(m.entries)) / m.window.Minutes()
	switch {
	case rpm > 20:
		return 3 * time.Second
	case rpm > 15:
		return time.Second
	}
	return 0
}

// Stats returns a snapshot of current usage.
func (m *Monitor) Stats() MonitorStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()

	recent := len(m.entries)
	recentErrors := 0
	recentRateLimits := 0
	var totalElapsed time.Duration
	timed := 0
	for _, e := range m.entries {
		if !e.success {
			recentErrors++
			if e.class == ErrClassRateLimit {
				recentRateLimits++
			}
		}
		if e.elapsed > 0 {
			totalElapsed += e.elapsed
			timed++
		}
	}

	stats := MonitorStats{
		TotalLifetime:     m.totalRequests,
		RecentRequests:    recent,
		RecentRateLimits:  recentRateLimits,
		RecentErrors:      recentErrors,
		RequestsPerMinute: float64(recent) / m.window.Minutes(),
	}
	if recent > 0 {
		stats.SuccessRatePct = float64(recent-recentErrors) / float64(recent) * 100
	}
	if timed > 0 {
		stats.AvgResponseTime = totalElapsed / time.Duration(timed)
	}
	return stats
}
