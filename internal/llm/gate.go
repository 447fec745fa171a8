package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// rateWindow is the span of the requests-per-minute sliding window.
const rateWindow = time.Minute

// GateConfig holds the tunables for the rate-limited request gate.
type GateConfig struct {
	Model             string
	MaxConcurrent     int
	RequestsPerMinute int
	RetryAttempts     int
	BaseRetryDelay    time.Duration
}

// Gate wraps a ChatClient with a concurrency cap, a sliding-window
// requests-per-minute limiter, and retry-with-backoff for transient
// upstream failures. The semaphore and window are the only state shared
// across concurrent conversation turns.
type Gate struct {
	client   ChatClient
	monitor  *Monitor
	observer Observer
	cfg      GateConfig

	sem chan struct{}

	mu     sync.Mutex
	window []time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGate creates a Gate around client. monitor must be non-nil; pass a
// NoopObserver if call logging is not wanted.
func NewGate(client ChatClient, monitor *Monitor, observer Observer, cfg GateConfig) *Gate {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 2
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 25
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.BaseRetryDelay <= 0 {
		cfg.BaseRetryDelay = time.Second
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Gate{
		client:   client,
		monitor:  monitor,
		observer: observer,
		cfg:      cfg,
		sem:      make(chan struct{}, cfg.MaxConcurrent),
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Chat sends messages upstream through the gate. Rate-limit and server
// errors are retried with backoff; any other error propagates
// immediately. After exhausting retries the last upstream error is
// returned wrapped in ErrRetryExhausted.
func (g *Gate) Chat(ctx context.Context, messages []Message) (string, error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-g.sem }()

	// Proactive throttling based on recent usage, independent of the
	// reactive retry backoff below.
	if g.monitor.ShouldThrottle() {
		if d := g.monitor.ThrottleDelay(); d > 0 {
			if err := g.sleep(ctx, d); err != nil {
				return "", err
			}
		}
	}

	start := g.now()
	var lastErr error

	for attempt := 0; attempt < g.cfg.RetryAttempts; attempt++ {
		if err := g.awaitWindowSlot(ctx); err != nil {
			return "", err
		}

		attemptStart := g.now()
		text, err := g.client.Chat(ctx, messages)
		elapsed := g.now().Sub(attemptStart)

		if err == nil {
			g.monitor.RecordSuccess(elapsed)
			g.observer.OnCallComplete(CallEvent{
				Model:     g.cfg.Model,
				Attempts:  attempt + 1,
				LatencyMs: g.now().Sub(start).Milliseconds(),
				Success:   true,
			})
			return text, nil
		}

		lastErr = err
		class := ClassifyError(err)
		g.monitor.RecordError(class, elapsed)

		var wait time.Duration
		switch class {
		case ErrClassRateLimit:
			wait = g.cfg.BaseRetryDelay*(1<<attempt) + time.Duration(attempt)*5*time.Second
		case ErrClassServer:
			wait = g.cfg.BaseRetryDelay * (1 << attempt)
		default:
			g.observer.OnCallComplete(CallEvent{
				Model:      g.cfg.Model,
				Attempts:   attempt + 1,
				LatencyMs:  g.now().Sub(start).Milliseconds(),
				ErrorClass: class,
			})
			return "", err
		}

		if attempt == g.cfg.RetryAttempts-1 {
			break
		}
		if err := g.sleep(ctx, wait); err != nil {
			return "", err
		}
	}

	g.observer.OnCallComplete(CallEvent{
		Model:      g.cfg.Model,
		Attempts:   g.cfg.RetryAttempts,
		LatencyMs:  g.now().Sub(start).Milliseconds(),
		ErrorClass: ClassifyError(lastErr),
	})
	return "", fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
}

// awaitWindowSlot blocks until the sliding window has room, then records
// this request in it. When the window is full the caller sleeps until
// the oldest entry ages out and rechecks.
func (g *Gate) awaitWindowSlot(ctx context.Context) error {
	for {
		g.mu.Lock()
		now := g.now()

		cutoff := now.Add(-rateWindow)
		i := 0
		for i < len(g.window) && !g.window[i].After(cutoff) {
			i++
		}
		if i > 0 {
			g.window = append(g.window[:0], g.window[i:]...)
		}

		if len(g.window) < g.cfg.RequestsPerMinute {
			g.window = append(g.window, now)
			g.mu.Unlock()
			return nil
		}

		wait := rateWindow - now.Sub(g.window[0])
		g.mu.Unlock()

		if wait <= 0 {
			continue
		}
		if err := g.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// sleepCtx sleeps for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
