package ui

import (
	"image"
	"strconv"

	"simblock/internal/core"
)

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refreshValues reads each control's current value out of the snapshot.
func refreshValues(states []controlState, snap core.ParameterSnapshot) {
	values := map[string]string{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range states {
		s := &states[i]
		parsed, err := strconv.Atoi(values[s.control.Key])
		s.value, s.hasValue = parsed, err == nil
	}
}

// target returns the value one step in direction, clamped to the bounds.
// ok is false when the control cannot move that way.
func (s *controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	next := min(max(s.value+direction*step, s.control.Min), s.control.Max)
	return next, next != s.value
}

// hitControl finds the button under (x, y) in panel coordinates.
func hitControl(states []controlState, x, y int) (idx, direction int, ok bool) {
	p := image.Pt(x, y)
	for i := range states {
		switch {
		case p.In(states[i].minusRect):
			return i, -1, true
		case p.In(states[i].plusRect):
			return i, 1, true
		}
	}
	return 0, 0, false
}

const (
	panelPadding   = 8
	lineHeight     = 30
	buttonSize     = 20
	buttonGap      = 4
	headerBaseline = 16
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 10
)
