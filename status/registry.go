// Package status keeps per-run statistics for the debug log
package status

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Registry holds run counters and loop gauges
// Counters reset with each run, gauges describe the process and survive restarts
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Peaks    *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Peaks:    NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Peaks.Count()
}

// ResetRun zeroes counters and peaks
func (r *Registry) ResetRun() {
	r.Counters.Range(func(_ string, c *atomic.Int64) { c.Store(0) })
	r.Peaks.Range(func(_ string, p *AtomicFloat) { p.Set(0) })
}

// Fields appends every metric to a log event
func (r *Registry) Fields(e *zerolog.Event) *zerolog.Event {
	r.Counters.Range(func(k string, c *atomic.Int64) { e.Int64(k, c.Load()) })
	r.Peaks.Range(func(k string, p *AtomicFloat) { e.Float64(k, p.Get()) })
	r.Gauges.Range(func(k string, g *AtomicFloat) { e.Float64(k, g.Get()) })
	return e
}
