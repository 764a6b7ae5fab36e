package termview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"simblock/internal/sims/landvalue"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	gridView   = "grid"
	statusView = "status"
	helpView   = "help"

	sideWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// View is the interactive terminal front end. Key handlers, mouse clicks
// and frame ticks all run on the gocui main loop, which redraws through
// layout after each event.
type View struct {
	w        *landvalue.World
	g        *gocui.Gui
	k        []keyBinding
	r        *Renderer
	interval time.Duration
	seed     int64
	paused   bool
}

// New creates the terminal UI for w, stepping one frame per interval.
func New(w *landvalue.World, interval time.Duration, seed int64) (*View, error) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, fmt.Errorf("starting terminal ui: %w", err)
	}
	g.Mouse = true

	t := &View{
		w:        w,
		g:        g,
		r:        NewRenderer(w.Palette(), true),
		interval: interval,
		seed:     seed,
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Pass", t.cmdPass, ""},
		{'p', "P", "Pause", t.cmdPause, ""},
		{'r', "R", "Reset", t.cmdReset, ""},
		{gocui.MouseLeft, "MOUSE", "Seed", t.cmdMouseClick, gridView},
	}
	for n := 0; n < w.Config().Categories && n < 10; n++ {
		category := n
		t.k = append(t.k, keyBinding{rune('0' + n), "", "", func(*gocui.View) error {
			t.w.SetBrushCategory(category)
			return nil
		}, ""})
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("binding %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *View) Run(ctx context.Context) error {
	defer t.g.Close()
	done := make(chan struct{})
	defer close(done)
	go t.tick(ctx, done)

	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (t *View) tick(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				if !t.paused {
					t.w.Step()
				}
				return nil
			})
		}
	}
}

func (t *View) refresh(g *gocui.Gui) error {
	if v, err := g.View(gridView); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		var b bytes.Buffer
		v.Title = gridTitle(t.r.Grid(&b, t.w.Cells(), t.w.Size().W, maxW, maxH))
		_, _ = fmt.Fprint(v, b.String())
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		last := t.w.LastPass()
		mode := aurora.Colorize("running", aurora.CyanFg).String()
		if t.paused {
			mode = aurora.Colorize("paused", aurora.BlueFg).String()
		}
		_, _ = fmt.Fprintln(v, t.prop("Preset", "%s", t.w.Name()))
		_, _ = fmt.Fprintln(v, t.prop("Grid", "%d x %d", t.w.Size().H, t.w.Size().W))
		_, _ = fmt.Fprintln(v, t.prop("Period", "%d", t.w.Config().Period))
		_, _ = fmt.Fprintln(v, t.prop("Frame", "%d", t.w.Frames()))
		_, _ = fmt.Fprintln(v, t.prop("Pass", "%d", t.w.Passes()))
		_, _ = fmt.Fprintln(v, t.prop("Changed", "%d (+%d/-%d)", last.Changed, last.Raised, last.Lowered))
		_, _ = fmt.Fprintln(v, t.prop("Brush", "%d/%d", t.w.Brush().Value, t.w.Brush().Category))
		_, _ = fmt.Fprintln(v, t.prop("Mode", "%s", mode))
	}
	return nil
}

func (t *View) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.r.Label(name)+": "+format, values...)
}

func (t *View) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, sideWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(gridView, sideWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = gridTitle(false)
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.help())
	}
	return t.refresh(g)
}

func (t *View) help() string {
	var parts []string
	for _, k := range t.k {
		if k.name == "" {
			continue
		}
		parts = append(parts, aurora.Green(k.name).String()+": "+k.descr)
	}
	if t.w.Config().Categories > 1 {
		parts = append(parts, aurora.Green("0-9").String()+": Brush category")
	}
	return "KEYS: " + strings.Join(parts, ", ")
}

func (t *View) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (t *View) cmdPass(*gocui.View) error {
	t.w.Regenerate()
	return nil
}

func (t *View) cmdPause(*gocui.View) error {
	t.paused = !t.paused
	return nil
}

func (t *View) cmdReset(*gocui.View) error {
	t.w.Reset(t.seed)
	return nil
}

func (t *View) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	size := t.w.Size()
	if row, col, ok := CellAt(cx+ox, cy+oy, size.H, size.W); ok {
		t.w.Inject(row, col)
	}
	return nil
}

func gridTitle(clipped bool) string {
	if clipped {
		return "Grid (clipped)"
	}
	return "Grid"
}

// CellAt maps a character position inside the grid view to a cell. Each
// cell is two characters wide.
func CellAt(x, y, rows, cols int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/2
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
