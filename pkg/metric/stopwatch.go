package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stopwatch opens named timing spans. Implementations must never fail the caller.
type Stopwatch interface {
	Start(name string) Span
}

// Span is an open measurement; Stop closes it. Stopping twice is a no-op.
type Span interface {
	Stop()
}

// NopStopwatch records nothing.
type NopStopwatch struct{}

func (NopStopwatch) Start(string) Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) Stop() {}

// HistogramStopwatch observes span durations into a Prometheus histogram
// labeled by span name.
type HistogramStopwatch struct {
	vec *prometheus.HistogramVec
	now func() time.Time
}

// NewStopwatchWithRegistry registers the span histogram with reg.
func NewStopwatchWithRegistry(reg prometheus.Registerer, name, help string) *HistogramStopwatch {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"span"})

	reg.MustRegister(vec)

	return &HistogramStopwatch{
		vec: vec,
		now: time.Now,
	}
}

func (s *HistogramStopwatch) Start(name string) Span {
	return &histogramSpan{
		obs:     s.vec.WithLabelValues(name),
		now:     s.now,
		started: s.now(),
	}
}

type histogramSpan struct {
	obs     prometheus.Observer
	now     func() time.Time
	started time.Time
	done    bool
}

func (sp *histogramSpan) Stop() {
	if sp.done {
		return
	}
	sp.done = true
	sp.obs.Observe(sp.now().Sub(sp.started).Seconds())
}
