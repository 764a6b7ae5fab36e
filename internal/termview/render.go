// Package termview shows a land-value world in a terminal: a 256-color
// block rendering of the grid plus an interactive gocui front end.
package termview

import (
	"bytes"
	"image/color"

	"simblock/internal/sims/landvalue"

	"github.com/logrusorgru/aurora"
)

// cellGlyph is two columns wide so cells come out roughly square.
const cellGlyph = "██"

// Ansi256 maps c onto the 6x6x6 color cube of the xterm 256-color palette.
func Ansi256(c color.RGBA) uint8 {
	level := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)
}

// Renderer turns packed cells into colored terminal text.
type Renderer struct {
	au    aurora.Aurora
	index [256]uint8
	plain bool
}

// NewRenderer builds a renderer for palette. With colors disabled cells
// are drawn as one-digit value levels instead of colored blocks.
func NewRenderer(palette []color.RGBA, colors bool) *Renderer {
	r := &Renderer{au: aurora.NewAurora(colors), plain: !colors}
	for i, c := range palette {
		if i >= len(r.index) {
			break
		}
		r.index[i] = Ansi256(c)
	}
	return r
}

// Grid writes cells (row-major, cols wide) clipped to maxW terminal
// columns and maxH lines. Non-positive limits disable clipping. It reports
// whether anything was clipped.
func (r *Renderer) Grid(b *bytes.Buffer, cells []uint8, cols, maxW, maxH int) bool {
	if cols <= 0 {
		return false
	}
	rows := len(cells) / cols
	clipped := false
	visibleCols := cols
	if maxW > 0 && cols*2 > maxW {
		visibleCols = maxW / 2
		clipped = true
	}
	visibleRows := rows
	if maxH > 0 && rows > maxH {
		visibleRows = maxH
		clipped = true
	}
	for row := 0; row < visibleRows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < visibleCols; col++ {
			b.WriteString(r.cell(cells[row*cols+col]))
		}
	}
	return clipped
}

func (r *Renderer) cell(p uint8) string {
	if r.plain {
		return " " + string(rune('0'+landvalue.DecodeValue(p)%10))
	}
	return r.au.Index(r.index[p], cellGlyph).String()
}

// Label colors a property name the way the status panel shows it.
func (r *Renderer) Label(name string) string {
	return r.au.Colorize(name, aurora.GreenFg).String()
}
