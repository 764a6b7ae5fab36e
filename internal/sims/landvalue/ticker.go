package landvalue

// Ticker decides which frames run a regeneration pass.
type Ticker struct {
	period int
	count  int
}

// NewTicker returns a ticker that fires on every period-th frame, starting
// with the first.
func NewTicker(period int) *Ticker {
	t := &Ticker{}
	t.SetPeriod(period)
	return t
}

// Tick reports whether the current frame regenerates, then advances the
// frame counter.
func (t *Ticker) Tick() bool {
	due := t.count%t.period == 0
	t.count++
	return due
}

// Count reports how many frames have been ticked.
func (t *Ticker) Count() int { return t.count }

// Period reports the regeneration cadence in frames.
func (t *Ticker) Period() int { return t.period }

// SetPeriod changes the cadence. Non-positive periods become 1.
func (t *Ticker) SetPeriod(period int) {
	if period <= 0 {
		period = 1
	}
	t.period = period
}

// Reset rewinds the frame counter.
func (t *Ticker) Reset() { t.count = 0 }
