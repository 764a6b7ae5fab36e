package termview

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestAnsi256(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want uint8
	}{
		{color.RGBA{0, 0, 0, 255}, 16},
		{color.RGBA{255, 255, 255, 255}, 231},
		{color.RGBA{255, 0, 0, 255}, 196},
		{color.RGBA{0, 255, 0, 255}, 46},
		{color.RGBA{0, 0, 255, 255}, 21},
		{color.RGBA{0x1F, 0x83, 0x35, 255}, 16 + 36*1 + 6*3 + 1},
	}
	for _, tt := range tests {
		if got := Ansi256(tt.c); got != tt.want {
			t.Fatalf("Ansi256(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestGridPlain(t *testing.T) {
	r := NewRenderer(nil, false)
	var b bytes.Buffer
	clipped := r.Grid(&b, []uint8{0, 1, 2, 0x13, 4, 0}, 3, 0, 0)
	if clipped {
		t.Fatal("unexpected clipping")
	}
	want := " 0 1 2\n 3 4 0"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestGridClips(t *testing.T) {
	r := NewRenderer(nil, false)
	var b bytes.Buffer
	cells := make([]uint8, 4*5)
	if !r.Grid(&b, cells, 5, 7, 2) {
		t.Fatal("expected clipping")
	}
	lines := strings.Split(b.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if len(lines[0]) != 6 {
		t.Fatalf("line %q should hold 3 cells", lines[0])
	}
}

func TestGridTitleFollowsClipping(t *testing.T) {
	r := NewRenderer(nil, false)
	cells := make([]uint8, 4*5)
	var b bytes.Buffer
	if got := gridTitle(r.Grid(&b, cells, 5, 7, 2)); got != "Grid (clipped)" {
		t.Fatalf("small view title %q", got)
	}
	b.Reset()
	if got := gridTitle(r.Grid(&b, cells, 5, 10, 4)); got != "Grid" {
		t.Fatalf("title after enlarging %q, want Grid", got)
	}
}

func TestGridColoredUsesPalette(t *testing.T) {
	palette := []color.RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}}
	r := NewRenderer(palette, true)
	var b bytes.Buffer
	r.Grid(&b, []uint8{1}, 1, 0, 0)
	if !strings.Contains(b.String(), "38;5;196") || !strings.Contains(b.String(), cellGlyph) {
		t.Fatalf("colored output %q", b.String())
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{1, 0, 0, 0, true},
		{2, 3, 3, 1, true},
		{19, 7, 7, 9, true},
		{20, 0, 0, 0, false},
		{0, 8, 0, 0, false},
		{-1, 0, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := CellAt(tt.x, tt.y, 8, 10)
		if ok != tt.ok || row != tt.row || col != tt.col {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}
