package landvalue

import (
	"image"
	"testing"
)

func TestBlockLayout(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg.Screen, cfg.Rows, cfg.Cols)
	if l.CellSize != 7 {
		t.Fatalf("cell size %d, want 7", l.CellSize)
	}
	if l.Origin != image.Pt(41, 72) {
		t.Fatalf("origin %v, want (41,72)", l.Origin)
	}

	roads := l.Roads()
	want := [4]image.Rectangle{
		image.Rect(21, 0, 41, 480),
		image.Rect(461, 0, 481, 480),
		image.Rect(0, 52, 640, 72),
		image.Rect(0, 408, 640, 428),
	}
	if roads != want {
		t.Fatalf("roads %v, want %v", roads, want)
	}
	if m := l.MenuRect(); m != image.Rect(502, 0, 640, 480) {
		t.Fatalf("menu %v", m)
	}
}

func TestCellAt(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg.Screen, cfg.Rows, cfg.Cols)

	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{41, 72, 0, 0, true},
		{47, 78, 0, 0, true},
		{48, 72, 0, 1, true},
		{460, 407, 47, 59, true},
		{461, 100, 0, 0, false},
		{100, 408, 0, 0, false},
		{40, 100, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := l.CellAt(tc.x, tc.y)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
		if ok && !image.Pt(tc.x, tc.y).In(l.CellRect(row, col)) {
			t.Fatalf("point (%d,%d) not inside its cell rect %v", tc.x, tc.y, l.CellRect(row, col))
		}
	}
}
