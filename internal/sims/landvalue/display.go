package landvalue

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorTable parses the configured palette into a category × value table.
func (c Config) ColorTable() ([][]color.RGBA, error) {
	if len(c.Palette) != c.Categories {
		return nil, fmt.Errorf("%w: palette has %d rows for %d categories", ErrInvalidConfig, len(c.Palette), c.Categories)
	}
	table := make([][]color.RGBA, len(c.Palette))
	for cat, row := range c.Palette {
		if len(row) != c.ValueLevels {
			return nil, fmt.Errorf("%w: palette row %d has %d colors for %d value levels", ErrInvalidConfig, cat, len(row), c.ValueLevels)
		}
		table[cat] = make([]color.RGBA, len(row))
		for v, hex := range row {
			col, err := parseHexColor(hex)
			if err != nil {
				return nil, fmt.Errorf("%w: palette[%d][%d]: %v", ErrInvalidConfig, cat, v, err)
			}
			table[cat][v] = col
		}
	}
	return table, nil
}

// buildPalette expands the table into 256 entries indexed by packed cell,
// so renderers can map display bytes straight to colors.
func buildPalette(table [][]color.RGBA, codec Codec) []color.RGBA {
	palette := make([]color.RGBA, 256)
	for cat, row := range table {
		for v, col := range row {
			palette[codec.Pack(Cell{Value: uint8(v), Category: uint8(cat)})] = col
		}
	}
	return palette
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

func (w *World) rebuildDisplay() {
	for i, cell := range w.grid.Cells() {
		w.display[i] = w.codec.Pack(cell)
	}
}
