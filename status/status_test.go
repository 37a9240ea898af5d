package status

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGroupStableHandles(t *testing.T) {
	g := NewGroup[atomic.Int64]()
	a := g.Metric("frames")
	b := g.Metric("frames")
	if a != b {
		t.Fatal("Metric returned different handles for the same name")
	}
	a.Add(3)
	if g.Metric("frames").Load() != 3 {
		t.Error("update through cached handle lost")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGroupConcurrentRegistration(t *testing.T) {
	g := NewGroup[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Metric("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := g.Metric("shared").Load(); got != 800 {
		t.Errorf("shared counter = %d, want 800", got)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGroupRegistrationOrder(t *testing.T) {
	g := NewGroup[AtomicFloat]()
	g.Metric("b")
	g.Metric("a")
	g.Metric("c")
	g.Metric("a")

	var names []string
	g.Each(func(name string, _ *AtomicFloat) { names = append(names, name) })
	if strings.Join(names, ",") != "b,a,c" {
		t.Errorf("Each order %v, want registration order", names)
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(10, 0.5); got != 10 {
		t.Errorf("first sample = %f, want 10", got)
	}
	if got := f.Smooth(20, 0.5); got != 15 {
		t.Errorf("second sample = %f, want 15", got)
	}
	f.Set(1.5)
	if f.Get() != 1.5 {
		t.Errorf("Get() = %f", f.Get())
	}
}

func TestRegistryLogValue(t *testing.T) {
	r := NewRegistry()
	r.Ints.Metric(KeyFrames).Store(42)
	r.Floats.Metric(KeyRenderMs).Set(1.25)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("stats", "status", r)

	out := buf.String()
	if !strings.Contains(out, "status.host.frames=42") || !strings.Contains(out, "status.host.render_ms=1.25") {
		t.Errorf("unexpected log output %q", out)
	}
}
