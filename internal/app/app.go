//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"simblock/internal/render"
	"simblock/internal/sims/landvalue"
	"simblock/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	groundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	roadColor   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

var brushKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a land-value world to the ebiten.Game interface.
type Game struct {
	world   *landvalue.World
	layout  landvalue.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	paused bool
	seed   int64
}

// New constructs a Game for the provided world.
func New(world *landvalue.World, seed int64, logger *slog.Logger) *Game {
	l := world.Layout()
	geom := render.Geometry{Rows: l.Rows, Cols: l.Cols, Size: l.CellSize, Spacing: l.Spacing}
	return &Game{
		world:   world,
		layout:  l,
		painter: render.NewGridPainter(geom),
		hud:     ui.NewHUD(world, l.MenuRect()),
		overlay: ui.NewOverlay(world, geom, l.Origin),
		log:     logger,
		seed:    seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.log.Info("reset", "seed", seed)
}

// Update handles per-frame input and advances the world one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.log.Debug("manual pass", "report", g.world.Regenerate())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for n, key := range brushKeys {
		if inpututil.IsKeyJustPressed(key) && g.world.SetBrushCategory(n) {
			g.log.Debug("brush category", "category", n)
		}
	}

	g.hud.Update()
	g.overlay.Update()
	g.inject()

	if !g.paused {
		passes := g.world.Passes()
		g.world.Step()
		if g.world.Passes() != passes {
			g.log.Debug("pass", "report", g.world.LastPass())
		}
	}
	return nil
}

// inject seeds the cell under the pointer while the button is held and on
// release.
func (g *Game) inject() {
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if !held && !released {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hud.Contains(x, y) {
		return
	}
	if g.world.InjectAt(x, y) {
		g.log.Debug("seed", "x", x, "y", y)
	}
}

// Draw renders roads, cells, overlays and the menu panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(groundColor)
	for _, r := range g.layout.Roads() {
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), roadColor, false)
	}
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.layout.Origin.X, g.layout.Origin.Y)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Screen.X, g.layout.Screen.Y
}
