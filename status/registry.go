package status

import (
	"log/slog"
	"sync/atomic"
)

// Metric keys written by the host
const (
	KeyFrames     = "host.frames"
	KeyRenderMs   = "host.render_ms"
	KeyDrained    = "input.drained"
	KeyDropped    = "input.dropped"
	KeyQueueDepth = "input.queue_depth"
)

// Registry groups counters and gauges for the running host
type Registry struct {
	Ints   *Group[atomic.Int64]
	Floats *Group[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewGroup[atomic.Int64](),
		Floats: NewGroup[AtomicFloat](),
	}
}

// Count returns the number of metrics across all kinds
func (r *Registry) Count() int {
	return r.Ints.Len() + r.Floats.Len()
}

// LogValue renders every metric as a group: counters first, each kind in registration order
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.Count())
	r.Ints.Each(func(k string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(k, v.Load()))
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(k, v.Get()))
	})
	return slog.GroupValue(attrs...)
}
