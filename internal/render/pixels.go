package render

import "image/color"

// Geometry describes how grid cells map to pixels in a painter image.
type Geometry struct {
	Rows, Cols int
	Size       int
	Spacing    int
}

// Bounds returns the painter image size in pixels.
func (g Geometry) Bounds() (w, h int) {
	pitch := g.Size + g.Spacing
	return g.Cols * pitch, g.Rows * pitch
}

// FillCells paints every cell as a Size×Size block of its palette color.
// Spacing pixels stay transparent. Values beyond the palette use its last
// entry; an empty palette clears the buffer.
func FillCells(buf []byte, g Geometry, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}
	last := len(palette) - 1
	fillBlocks(buf, g, len(cells), func(i int) (color.RGBA, bool) {
		idx := int(cells[i])
		if idx > last {
			idx = last
		}
		return palette[idx], true
	})
}

// FillMask paints tint over the cells set in mask and leaves the rest
// transparent.
func FillMask(buf []byte, g Geometry, mask []bool, tint color.RGBA) {
	fillBlocks(buf, g, len(mask), func(i int) (color.RGBA, bool) {
		return tint, mask[i]
	})
}

func fillBlocks(buf []byte, g Geometry, n int, at func(i int) (color.RGBA, bool)) {
	clear(buf)
	w, _ := g.Bounds()
	pitch := g.Size + g.Spacing
	for i := 0; i < n && i < g.Rows*g.Cols; i++ {
		col, ok := at(i)
		if !ok {
			continue
		}
		x0 := (i % g.Cols) * pitch
		y0 := (i / g.Cols) * pitch
		for y := y0; y < y0+g.Size; y++ {
			base := (y*w + x0) * 4
			for x := 0; x < g.Size; x++ {
				p := base + x*4
				buf[p+0] = col.R
				buf[p+1] = col.G
				buf[p+2] = col.B
				buf[p+3] = col.A
			}
		}
	}
}
