package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about one gated upstream invocation,
// after all retries have resolved.
type CallEvent struct {
	Model     string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorClass ErrorClass
}

// Observer receives events about upstream calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer, one line per call.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + string(event.ErrorClass)
	}
	fmt.Fprintf(o.w, "[%s] chat_call model=%s attempts=%d latency_ms=%d status=%s\n",
		ts, event.Model, event.Attempts, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
