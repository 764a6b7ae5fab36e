package landvalue

import "simblock/internal/core"

// Policy picks a candidate target level from a neighborhood histogram.
// ok is false when the roll lands outside every live bin.
type Policy interface {
	Target(h Histogram, levels int, rng core.Source) (target uint8, ok bool)
}

// Clamp moves current toward target by at most one level.
type Clamp interface {
	Step(current, target uint8, rng core.Source) uint8
}

// FixedPool rolls in [1, Pool] and only the outcomes above Start are live,
// so most rolls never select a level.
type FixedPool struct {
	Pool  int
	Start int
}

// DefaultFixedPool is the 100-roll pool with the top nine outcomes live.
func DefaultFixedPool() FixedPool { return FixedPool{Pool: 100, Start: 91} }

// Target implements Policy.
func (p FixedPool) Target(h Histogram, levels int, rng core.Source) (uint8, bool) {
	roll := rng.IntN(p.Pool) + 1
	return walkBins(h, levels, roll, p.Start)
}

// ProportionalPool rolls in [1, Pool] and the live range is the top Total
// outcomes, so cells with fewer samples change less often.
type ProportionalPool struct {
	Pool int
}

// DefaultProportionalPool is the 200-roll pool.
func DefaultProportionalPool() ProportionalPool { return ProportionalPool{Pool: 200} }

// Target implements Policy.
func (p ProportionalPool) Target(h Histogram, levels int, rng core.Source) (uint8, bool) {
	roll := rng.IntN(p.Pool) + 1
	return walkBins(h, levels, roll, p.Pool-h.Total)
}

// walkBins lays the level counts end to end above start and returns the
// level whose bin holds roll. The walk does not stop at the first match;
// the last matching bin wins.
func walkBins(h Histogram, levels int, roll, start int) (uint8, bool) {
	if levels > MaxLevels {
		levels = MaxLevels
	}
	target, ok := h.Current, false
	over := start
	for i := 0; i < levels; i++ {
		if roll > over && roll <= over+h.Counts[i] {
			target, ok = uint8(i), true
		}
		over += h.Counts[i]
	}
	return target, ok
}

// SimpleStep raises by one whenever target is above current, but only
// lowers when target is at least two below.
type SimpleStep struct{}

// Step implements Clamp.
func (SimpleStep) Step(current, target uint8, _ core.Source) uint8 {
	c, t := int(current), int(target)
	switch {
	case t > c:
		return current + 1
	case t < c-1:
		return current - 1
	default:
		return current
	}
}

// GatedStep moves one level toward target subject to percentage gates.
// A gate at 100 or more always passes without drawing; a gate at 0 or less
// never passes and does not draw either.
type GatedStep struct {
	UpChance   int
	DownChance int
}

// DefaultGatedStep always raises and lowers 80% of the time.
func DefaultGatedStep() GatedStep { return GatedStep{UpChance: 100, DownChance: 80} }

// Step implements Clamp.
func (g GatedStep) Step(current, target uint8, rng core.Source) uint8 {
	switch {
	case target > current:
		if gate(g.UpChance, rng) {
			return current + 1
		}
	case target < current:
		if gate(g.DownChance, rng) {
			return current - 1
		}
	}
	return current
}

func gate(chance int, rng core.Source) bool {
	if chance >= 100 {
		return true
	}
	if chance <= 0 {
		return false
	}
	return rng.IntN(100) < chance
}

// Transition combines a weighting policy with a step clamp.
type Transition struct {
	Policy Policy
	Clamp  Clamp
}

// Next returns the value a cell takes in the next generation.
func (t Transition) Next(h Histogram, levels int, rng core.Source) uint8 {
	target, ok := t.Policy.Target(h, levels, rng)
	if !ok {
		return h.Current
	}
	return t.Clamp.Step(h.Current, target, rng)
}
