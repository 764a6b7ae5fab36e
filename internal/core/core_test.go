package core

import (
	"slices"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepCadence(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %v, want 100ms", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first frame should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second frame fired without time passing")
	}
	if got := fs.Remaining(); got != 100*time.Millisecond {
		t.Fatalf("remaining %v, want 100ms", got)
	}

	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired after 60ms of a 100ms step")
	}
	if got := fs.Remaining(); got != 40*time.Millisecond {
		t.Fatalf("remaining %v, want 40ms", got)
	}

	clock.advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("step due after 100ms")
	}

	// a stall accumulates and is paid back one frame per call
	clock.advance(250 * time.Millisecond)
	fired := 0
	for fs.ShouldStep() {
		fired++
	}
	if fired != 2 {
		t.Fatalf("fired %d frames after a 250ms stall, want 2", fired)
	}
	if got := fs.Remaining(); got != 50*time.Millisecond {
		t.Fatalf("remaining %v, want 50ms", got)
	}
}

func TestFixedStepRateFloor(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval %v, want 1/60s", fs.Interval())
	}
	fs.SetTPS(-5)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("negative rate gave interval %v", fs.Interval())
	}
}

func TestRNGReseedReplays(t *testing.T) {
	r := NewRNG(42)
	first := make([]int, 16)
	for i := range first {
		first[i] = r.IntN(1000)
	}
	r.Reseed(42)
	second := make([]int, 16)
	for i := range second {
		second[i] = r.IntN(1000)
	}
	if !slices.Equal(first, second) {
		t.Fatalf("reseed did not replay: %v vs %v", first, second)
	}
	other := NewRNG(42)
	for i, want := range first {
		if got := other.IntN(1000); got != want {
			t.Fatalf("draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestRNGIntNBounds(t *testing.T) {
	r := NewRNG(7)
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("non-positive n should yield 0")
	}
	for i := 0; i < 1000; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d", v)
		}
	}
}

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("zz-stub", func(cfg map[string]string) (Sim, error) {
		return stubSim{name: cfg["name"]}, nil
	})
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("zz-nil", nil)

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "zz-stub") || slices.Contains(names, "") || slices.Contains(names, "zz-nil") {
		t.Fatalf("unexpected registry contents: %v", names)
	}

	sim, err := New("zz-stub", map[string]string{"name": "corner"})
	if err != nil || sim.Name() != "corner" {
		t.Fatalf("New = %v, %v", sim, err)
	}
	if _, err := New("zz-missing", nil); err == nil {
		t.Fatal("unknown sim should fail")
	}
}
