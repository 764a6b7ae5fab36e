package landvalue

import "image"

// Layout maps between screen pixels and grid cells. The grid is drawn as
// square cells centered in the area left of the menu panel, framed by a
// road on every side.
type Layout struct {
	Screen     image.Point
	Rows, Cols int
	Road       int
	Menu       int
	Spacing    int

	CellSize int
	Origin   image.Point
}

// NewLayout computes the cell size and grid origin for the given screen.
func NewLayout(s ScreenConfig, rows, cols int) Layout {
	l := Layout{
		Screen:  image.Pt(s.Width, s.Height),
		Rows:    rows,
		Cols:    cols,
		Road:    s.RoadWidth,
		Menu:    s.MenuWidth,
		Spacing: s.CellSpacing,
	}
	maxH := (s.Height - s.RoadWidth*2 - s.CellSpacing*(rows+1)) / rows
	maxW := (s.Width - s.MenuWidth - s.RoadWidth*2 - s.CellSpacing*(cols+1)) / cols
	l.CellSize = max(min(maxH, maxW), 1)
	l.Origin = image.Pt(
		(s.Width-s.MenuWidth-s.CellSpacing*(cols+1)-l.CellSize*cols)/2,
		(s.Height-s.CellSpacing*(rows+1)-l.CellSize*rows)/2,
	)
	return l
}

func (l Layout) pitch() int { return l.CellSize + l.Spacing }

// Bounds is the rectangle covered by the cells.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(l.Origin.X, l.Origin.Y, l.Origin.X+l.pitch()*l.Cols, l.Origin.Y+l.pitch()*l.Rows)
}

// Contains reports whether the screen point falls on the grid.
func (l Layout) Contains(x, y int) bool {
	return image.Pt(x, y).In(l.Bounds())
}

// CellAt maps a screen point to grid coordinates.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !l.Contains(x, y) {
		return 0, 0, false
	}
	return (y - l.Origin.Y) / l.pitch(), (x - l.Origin.X) / l.pitch(), true
}

// CellRect is the screen rectangle filled for (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := l.Origin.X + col*l.pitch()
	y := l.Origin.Y + row*l.pitch()
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// Roads returns the west, east, north and south road strips.
func (l Layout) Roads() [4]image.Rectangle {
	b := l.Bounds()
	west := l.Origin.X - l.Road - l.Spacing
	north := l.Origin.Y - l.Road - l.Spacing
	return [4]image.Rectangle{
		image.Rect(west, 0, west+l.Road, l.Screen.Y),
		image.Rect(b.Max.X, 0, b.Max.X+l.Road, l.Screen.Y),
		image.Rect(0, north, l.Screen.X, north+l.Road),
		image.Rect(0, b.Max.Y, l.Screen.X, b.Max.Y+l.Road),
	}
}

// MenuRect is the panel to the right of the playfield.
func (l Layout) MenuRect() image.Rectangle {
	return image.Rect(l.Screen.X-l.Menu, 0, l.Screen.X, l.Screen.Y)
}
