// Package telemetry records per-pass statistics of a value grid.
package telemetry

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// PassStats summarises the grid after one regeneration pass.
type PassStats struct {
	Frame   int `csv:"frame"`
	Pass    int `csv:"pass"`
	Changed int `csv:"changed"`
	Raised  int `csv:"raised"`
	Lowered int `csv:"lowered"`

	// Value distribution over all cells
	MeanValue   float64 `csv:"mean_value"`
	StdValue    float64 `csv:"std_value"`
	MedianValue float64 `csv:"median_value"`
	Levels      string  `csv:"levels"` // per-level cell counts, slash separated
}

// Pass carries the counters produced by the simulation for one pass.
type Pass struct {
	Frame, Pass              int
	Changed, Raised, Lowered int
}

// Summarize computes distribution statistics over values (one entry per
// cell) and joins them with the pass counters. values is sorted in place.
func Summarize(p Pass, values []float64, levels []int) PassStats {
	s := PassStats{
		Frame:   p.Frame,
		Pass:    p.Pass,
		Changed: p.Changed,
		Raised:  p.Raised,
		Lowered: p.Lowered,
		Levels:  joinCounts(levels),
	}
	switch len(values) {
	case 0:
		return s
	case 1:
		s.MeanValue = values[0]
		s.MedianValue = values[0]
		return s
	}
	s.MeanValue, s.StdValue = stat.MeanStdDev(values, nil)
	sort.Float64s(values)
	s.MedianValue = stat.Quantile(0.5, stat.Empirical, values, nil)
	return s
}

func joinCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "/")
}

// LogValue implements slog.LogValuer for structured logging.
func (s PassStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", s.Frame),
		slog.Int("pass", s.Pass),
		slog.Int("changed", s.Changed),
		slog.Int("raised", s.Raised),
		slog.Int("lowered", s.Lowered),
		slog.Float64("mean_value", s.MeanValue),
		slog.Float64("std_value", s.StdValue),
		slog.Float64("median_value", s.MedianValue),
		slog.String("levels", s.Levels),
	)
}
