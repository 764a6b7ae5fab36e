//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"simblock/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	offColor    = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// statusGroups are shown read-only under the controls.
var statusGroups = []string{"Status", "Brush"}

// HUD renders the menu panel to the right of the playfield.
type HUD struct {
	sim    core.Sim
	bounds image.Rectangle
	panel  *ebiten.Image
	title  string

	snapshot core.ParameterSnapshot
	controls []controlState
	setter   core.IntParameterSetter
}

// NewHUD constructs a HUD occupying bounds on screen.
func NewHUD(sim core.Sim, bounds image.Rectangle) *HUD {
	h := &HUD{sim: sim, bounds: bounds, title: strings.ToUpper(sim.Name())}
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return h
	}
	h.panel = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), bounds.Dx())
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Contains reports whether a screen point is over the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && image.Pt(x, y).In(h.bounds)
}

// Update refreshes the parameter snapshot and handles button clicks.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = provider.Parameters()
	refreshValues(h.controls, h.snapshot)

	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return
	}
	idx, dir, ok := hitControl(h.controls, mx-h.bounds.Min.X, my-h.bounds.Min.Y)
	if !ok {
		return
	}
	state := &h.controls[idx]
	if next, ok := state.target(dir); ok && h.setter.SetIntParameter(state.control.Key, next) {
		state.value = next
	}
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y := controlsTop + len(h.controls)*lineHeight + lineHeight/2
	for _, group := range h.snapshot.Groups {
		if !isStatusGroup(group.Name) {
			continue
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += 16
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += 14
		}
		y += 8
	}
	for _, line := range []string{"SPACE pause", "N pass", "R reset", "C changes", "0-9 brush"} {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += 14
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.bounds.Min.X), float64(h.bounds.Min.Y))
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(s *controlState) {
	face := basicfont.Face7x13
	text.Draw(h.panel, s.control.Label, face, panelPadding, s.top+labelBaseline, labelColor)
	value := "--"
	if s.hasValue {
		value = strconv.Itoa(s.value)
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, s.minusRect.Min.X-buttonGap-w, s.top+labelBaseline, labelColor)

	_, canDown := s.target(-1)
	_, canUp := s.target(1)
	h.drawButton(s.minusRect, "-", canDown && h.setter != nil)
	h.drawButton(s.plusRect, "+", canUp && h.setter != nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = offColor, dimColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func isStatusGroup(name string) bool {
	for _, g := range statusGroups {
		if g == name {
			return true
		}
	}
	return false
}
