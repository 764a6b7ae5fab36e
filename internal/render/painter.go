//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image of the whole grid and redraws it from
// display bytes each frame.
type GridPainter struct {
	geom Geometry
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for the given geometry.
func NewGridPainter(g Geometry) *GridPainter {
	w, h := g.Bounds()
	return &GridPainter{geom: g, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads cells through the palette and draws the image at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, x, y int) {
	if len(cells) != gp.geom.Rows*gp.geom.Cols {
		return
	}
	FillCells(gp.buf, gp.geom, cells, palette)
	gp.draw(dst, x, y)
}

// BlitMask uploads a boolean mask tinted with c and draws it at (x, y).
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []bool, c color.RGBA, x, y int) {
	if len(mask) != gp.geom.Rows*gp.geom.Cols {
		return
	}
	FillMask(gp.buf, gp.geom, mask, c)
	gp.draw(dst, x, y)
}

func (gp *GridPainter) draw(dst *ebiten.Image, x, y int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Geometry returns the cell geometry the painter was built for.
func (gp *GridPainter) Geometry() Geometry { return gp.geom }
