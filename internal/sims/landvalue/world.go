package landvalue

import (
	"image/color"
	"log/slog"

	"simblock/internal/core"
)

// PassReport summarises one regeneration pass.
type PassReport struct {
	Frame   int
	Pass    int
	Changed int
	Raised  int
	Lowered int
}

// LogValue implements slog.LogValuer.
func (r PassReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", r.Frame),
		slog.Int("pass", r.Pass),
		slog.Int("changed", r.Changed),
		slog.Int("raised", r.Raised),
		slog.Int("lowered", r.Lowered),
	)
}

// World is the value-diffusion simulation: a grid, its regeneration
// cadence, the transition rule and the seed brush.
type World struct {
	cfg Config

	grid    *Grid
	ticker  *Ticker
	trans   Transition
	codec   Codec
	layout  Layout
	brush   Cell
	display []uint8
	palette []color.RGBA
	changed []bool

	rng  core.Source
	own  *core.RNG
	last PassReport
	pass int
}

// NewWithConfig validates cfg and returns a world seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	rng := core.NewRNG(cfg.Seed)
	w, err := NewWithSource(cfg, rng)
	if err != nil {
		return nil, err
	}
	w.own = rng
	return w, nil
}

// NewWithSource is NewWithConfig with an explicit random source. Reset does
// not reseed an external source.
func NewWithSource(cfg Config, rng core.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := cfg.ColorTable()
	if err != nil {
		return nil, err
	}
	total := cfg.Rows * cfg.Cols
	w := &World{
		cfg:     cfg,
		grid:    NewGrid(cfg.Rows, cfg.Cols),
		ticker:  NewTicker(cfg.Period),
		trans:   cfg.Transition(),
		codec:   cfg.Codec(),
		layout:  NewLayout(cfg.Screen, cfg.Rows, cfg.Cols),
		brush:   Cell{Value: uint8(cfg.Inject.Value), Category: uint8(cfg.Inject.Category)},
		display: make([]uint8, total),
		changed: make([]bool, total),
		rng:     rng,
	}
	w.palette = buildPalette(table, w.codec)
	w.plant()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.cfg.Name }

// Size reports the grid dimensions; W is columns and H is rows.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Cols, H: w.cfg.Rows} }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the cell buffers.
func (w *World) Grid() *Grid { return w.grid }

// Layout exposes the screen mapping used for drawing and seeding.
func (w *World) Layout() Layout { return w.layout }

// Palette maps display bytes to colors.
func (w *World) Palette() []color.RGBA { return w.palette }

// Cells packs the current generation into the display buffer.
func (w *World) Cells() []uint8 {
	w.rebuildDisplay()
	return w.display
}

// Changed marks the cells altered by the most recent pass.
func (w *World) Changed() []bool { return w.changed }

// Frames reports how many frames have been stepped.
func (w *World) Frames() int { return w.ticker.Count() }

// Passes reports how many regeneration passes have run.
func (w *World) Passes() int { return w.pass }

// LastPass returns the report of the most recent pass.
func (w *World) LastPass() PassReport { return w.last }

// Reset restores the initial pattern and rewinds the frame counter. A
// non-zero seed reseeds the world's own generator; zero reuses cfg.Seed.
func (w *World) Reset(seed int64) {
	if w.own != nil {
		effective := seed
		if effective == 0 {
			effective = w.cfg.Seed
		}
		w.own.Reseed(effective)
	}
	w.ticker.Reset()
	w.pass = 0
	w.last = PassReport{}
	clear(w.changed)
	w.plant()
}

func (w *World) plant() {
	w.grid.Fill(Cell{})
	for _, s := range w.cfg.Seeds {
		w.grid.Set(s.Row, s.Col, Cell{Value: uint8(s.Value), Category: uint8(s.Category)})
	}
}

// Step advances one frame, regenerating the grid when the cadence is due.
func (w *World) Step() {
	frame := w.ticker.Count()
	if w.ticker.Tick() {
		w.last = w.Regenerate()
		w.last.Frame = frame
	}
}

// Regenerate runs one full pass regardless of cadence. Every cell is
// computed from the snapshot; categories are carried over unchanged.
func (w *World) Regenerate() PassReport {
	w.grid.Snapshot()
	w.pass++
	report := PassReport{Frame: w.ticker.Count(), Pass: w.pass}
	levels := w.cfg.ValueLevels
	for r := 0; r < w.grid.rows; r++ {
		for c := 0; c < w.grid.cols; c++ {
			h := Sample(w.grid, r, c)
			next := w.trans.Next(h, levels, w.rng)
			idx := r*w.grid.cols + c
			w.changed[idx] = next != h.Current
			switch {
			case next > h.Current:
				report.Raised++
			case next < h.Current:
				report.Lowered++
			}
			cell := w.grid.Prev(r, c)
			cell.Value = next
			w.grid.Set(r, c, cell)
		}
	}
	report.Changed = report.Raised + report.Lowered
	return report
}

// Brush returns the cell written by seed injection.
func (w *World) Brush() Cell { return w.brush }

// SetBrushCategory changes the category painted by seed injection.
func (w *World) SetBrushCategory(category int) bool {
	if category < 0 || category >= w.cfg.Categories {
		return false
	}
	w.brush.Category = uint8(category)
	return true
}

// Inject overwrites (row, col) with the brush cell immediately. The
// coordinates must be inside the grid.
func (w *World) Inject(row, col int) {
	w.grid.Set(row, col, w.brush)
}

// InjectAt seeds the cell under a screen point and reports whether the
// point hit the grid.
func (w *World) InjectAt(x, y int) bool {
	row, col, ok := w.layout.CellAt(x, y)
	if !ok {
		return false
	}
	w.Inject(row, col)
	return true
}

// LevelCounts tallies current cells per value level.
func (w *World) LevelCounts() []int {
	counts := make([]int, w.cfg.ValueLevels)
	for _, c := range w.grid.Cells() {
		counts[c.Value]++
	}
	return counts
}

// Values appends every current value to dst in row-major order.
func (w *World) Values(dst []float64) []float64 {
	for _, c := range w.grid.Cells() {
		dst = append(dst, float64(c.Value))
	}
	return dst
}

func init() {
	for _, name := range Presets() {
		preset := name
		core.Register(preset, func(cfg map[string]string) (core.Sim, error) {
			merged := map[string]string{"preset": preset}
			for k, v := range cfg {
				merged[k] = v
			}
			c, err := FromMap(merged)
			if err != nil {
				return nil, err
			}
			return NewWithConfig(c)
		})
	}
}
