//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"simblock/internal/core"
	"simblock/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type changeProvider interface {
	Changed() []bool
}

var changeTint = color.RGBA{R: 255, G: 120, B: 40, A: 110}

// Overlay draws optional debugging visuals on top of the grid.
type Overlay struct {
	sim         core.Sim
	origin      image.Point
	painter     *render.GridPainter
	showChanges bool
}

// NewOverlay constructs an overlay drawn with the grid's geometry at origin.
func NewOverlay(sim core.Sim, geom render.Geometry, origin image.Point) *Overlay {
	return &Overlay{sim: sim, origin: origin, painter: render.NewGridPainter(geom)}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showChanges = !o.showChanges
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChanges {
		return
	}
	if provider, ok := o.sim.(changeProvider); ok {
		o.painter.BlitMask(screen, provider.Changed(), changeTint, o.origin.X, o.origin.Y)
	}
}
