package landvalue

// Histogram tabulates the value levels seen around one cell.
type Histogram struct {
	Counts  [MaxLevels]int
	Total   int
	Current uint8
}

// Sample scans the 3×3 block around (row, col) in the snapshot. The loop
// clamps a negative index to zero inside the body and keeps iterating from
// there; the upper edge is handled only by the loop condition. The center
// cell is counted.
func Sample(g *Grid, row, col int) Histogram {
	h := Histogram{Current: g.Prev(row, col).Value}
	for r := row - 1; r <= row+1 && r < g.rows; r++ {
		for c := col - 1; c <= col+1 && c < g.cols; c++ {
			if r < 0 {
				r = 0
			}
			if c < 0 {
				c = 0
			}
			h.Counts[g.Prev(r, c).Value&valueMask]++
			h.Total++
		}
	}
	return h
}
