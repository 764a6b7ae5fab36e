package landvalue

// rollsByRange answers IntN(n) with a fixed value per n, so tests can pin
// the weighted roll and the clamp gate independently.
type rollsByRange map[int]int

func (r rollsByRange) IntN(n int) int { return r[n] }

// noDraw fails the test through a panic if the code under test draws.
type noDraw struct{}

func (noDraw) IntN(int) int { panic("unexpected draw") }

// sequence replays values in order, wrapping around.
type sequence struct {
	vals []int
	i    int
}

func (s *sequence) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func testConfig(rows, cols, levels int) Config {
	palette := make([]string, levels)
	for i := range palette {
		palette[i] = "#000000"
	}
	return Config{
		Name:        "test",
		Rows:        rows,
		Cols:        cols,
		ValueLevels: levels,
		Categories:  1,
		Period:      1,
		Policy:      PolicyProportional,
		Clamp:       ClampConfig{Mode: ClampSimple, UpChance: 100, DownChance: 100},
		Inject:      InjectConfig{Value: levels - 1},
		Screen:      ScreenConfig{Width: 640, Height: 480, RoadWidth: 20, MenuWidth: 138},
		Palette:     [][]string{palette},
	}
}

func gridFrom(rows [][]uint8) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			g.Set(r, c, Cell{Value: v})
		}
	}
	return g
}
