package landvalue

import "testing"

func TestSnapshotIsolatesPasses(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(1, 2, Cell{Value: 3, Category: 1})
	g.Snapshot()
	g.Set(1, 2, Cell{Value: 1})

	if got := g.Prev(1, 2); got != (Cell{Value: 3, Category: 1}) {
		t.Fatalf("snapshot changed after write to current: %+v", got)
	}
	if got := g.At(1, 2); got != (Cell{Value: 1}) {
		t.Fatalf("current not updated: %+v", got)
	}
	if g.Rows() != 2 || g.Cols() != 3 || len(g.Cells()) != 6 {
		t.Fatalf("unexpected shape %dx%d (%d cells)", g.Rows(), g.Cols(), len(g.Cells()))
	}
}

func TestFillOverwritesCurrentOnly(t *testing.T) {
	g := NewGrid(3, 3)
	g.Snapshot()
	g.Fill(Cell{Value: 2})
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.At(r, c).Value != 2 {
				t.Fatalf("cell (%d,%d) not filled", r, c)
			}
			if g.Prev(r, c).Value != 0 {
				t.Fatalf("fill leaked into snapshot at (%d,%d)", r, c)
			}
		}
	}
}
