package landvalue

import "testing"

func histogram(current uint8, counts ...int) Histogram {
	h := Histogram{Current: current}
	for i, n := range counts {
		h.Counts[i] = n
		h.Total += n
	}
	return h
}

func TestFixedPoolLiveRange(t *testing.T) {
	h := histogram(1, 2, 3, 4) // bins: 0 -> 92..93, 1 -> 94..96, 2 -> 97..100
	cases := []struct {
		roll   int
		target uint8
		ok     bool
	}{
		{1, 1, false},
		{91, 1, false},
		{92, 0, true},
		{93, 0, true},
		{94, 1, true},
		{96, 1, true},
		{97, 2, true},
		{100, 2, true},
	}
	for _, tc := range cases {
		got, ok := DefaultFixedPool().Target(h, 3, rollsByRange{100: tc.roll - 1})
		if got != tc.target || ok != tc.ok {
			t.Fatalf("roll %d: got (%d, %v), want (%d, %v)", tc.roll, got, ok, tc.target, tc.ok)
		}
	}
}

func TestFixedPoolSkipsEmptyLevels(t *testing.T) {
	h := histogram(0, 0, 0, 9) // only level 2 is live: 92..100
	got, ok := DefaultFixedPool().Target(h, 3, rollsByRange{100: 91})
	if !ok || got != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", got, ok)
	}
}

func TestProportionalPoolScalesWithSamples(t *testing.T) {
	corner := histogram(0, 1, 3) // total 4: live rolls 197..200
	if _, ok := DefaultProportionalPool().Target(corner, 2, rollsByRange{200: 195}); ok {
		t.Fatal("roll 196 should be below the live range for 4 samples")
	}
	if got, ok := DefaultProportionalPool().Target(corner, 2, rollsByRange{200: 196}); !ok || got != 0 {
		t.Fatalf("roll 197: got (%d, %v), want (0, true)", got, ok)
	}
	if got, ok := DefaultProportionalPool().Target(corner, 2, rollsByRange{200: 199}); !ok || got != 1 {
		t.Fatalf("roll 200: got (%d, %v), want (1, true)", got, ok)
	}

	interior := histogram(0, 9) // total 9: live rolls 192..200
	if got, ok := DefaultProportionalPool().Target(interior, 2, rollsByRange{200: 191}); !ok || got != 0 {
		t.Fatalf("interior roll 192: got (%d, %v), want (0, true)", got, ok)
	}
}

func TestSimpleStepIsAsymmetric(t *testing.T) {
	cases := []struct {
		current, target, want uint8
	}{
		{2, 4, 3},
		{2, 3, 3},
		{2, 2, 2},
		{2, 1, 2},
		{2, 0, 1},
		{0, 0, 0},
		{1, 0, 1},
	}
	for _, tc := range cases {
		if got := (SimpleStep{}).Step(tc.current, tc.target, noDraw{}); got != tc.want {
			t.Fatalf("Step(%d -> %d) = %d, want %d", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestGatedStep(t *testing.T) {
	g := DefaultGatedStep()
	if got := g.Step(1, 4, noDraw{}); got != 2 {
		t.Fatalf("certain up gate: got %d, want 2", got)
	}
	if got := g.Step(3, 2, rollsByRange{100: 79}); got != 2 {
		t.Fatalf("down roll 79 < 80 should lower: got %d", got)
	}
	if got := g.Step(3, 0, rollsByRange{100: 80}); got != 3 {
		t.Fatalf("down roll 80 should hold: got %d", got)
	}
	if got := g.Step(3, 3, noDraw{}); got != 3 {
		t.Fatalf("equal target should hold: got %d", got)
	}

	closed := GatedStep{UpChance: 0, DownChance: 0}
	if got := closed.Step(1, 3, noDraw{}); got != 1 {
		t.Fatalf("closed up gate moved: %d", got)
	}
	if got := closed.Step(1, 0, noDraw{}); got != 1 {
		t.Fatalf("closed down gate moved: %d", got)
	}

	half := GatedStep{UpChance: 50, DownChance: 100}
	if got := half.Step(1, 3, rollsByRange{100: 60}); got != 1 {
		t.Fatalf("up roll 60 >= 50 should hold: got %d", got)
	}
}

func TestTransitionHoldsWithoutCandidate(t *testing.T) {
	tr := Transition{Policy: DefaultProportionalPool(), Clamp: DefaultGatedStep()}
	h := histogram(2, 9, 0, 0)
	if got := tr.Next(h, 3, rollsByRange{200: 0}); got != 2 {
		t.Fatalf("dead roll changed the cell: %d", got)
	}
	if got := tr.Next(h, 3, rollsByRange{200: 199, 100: 0}); got != 1 {
		t.Fatalf("live roll with open gate: got %d, want 1", got)
	}
}
