package landvalue

import (
	"strconv"

	"simblock/internal/core"
)

// Parameters describes the world for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	last := w.last
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", cfg.Rows),
				intParam("cols", "Cols", cfg.Cols),
				intParam("value_levels", "Levels", cfg.ValueLevels),
				intParam("categories", "Categories", cfg.Categories),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				intParam("period", "Period", w.ticker.Period()),
				stringParam("policy", "Policy", cfg.Policy),
				stringParam("clamp", "Clamp", w.clampMode()),
				intParam("up_chance", "Up %", w.upChance()),
				intParam("down_chance", "Down %", w.downChance()),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				intParam("frame", "Frame", w.ticker.Count()),
				intParam("pass", "Pass", w.pass),
				intParam("changed", "Changed", last.Changed),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("inject_value", "Value", int(w.brush.Value)),
				intParam("brush_category", "Category", int(w.brush.Category)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may nudge.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "period", Label: "Period", Step: 1, Min: 1, Max: 600},
	}
	if _, ok := w.trans.Clamp.(GatedStep); ok {
		controls = append(controls,
			core.ParameterControl{Key: "up_chance", Label: "Up %", Step: 5, Min: 0, Max: 100},
			core.ParameterControl{Key: "down_chance", Label: "Down %", Step: 5, Min: 0, Max: 100},
		)
	}
	if w.cfg.Categories > 1 {
		controls = append(controls, core.ParameterControl{Key: "brush_category", Label: "Brush", Step: 1, Min: 0, Max: w.cfg.Categories - 1})
	}
	return controls
}

// SetIntParameter applies a HUD adjustment, clamping to the control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "period":
		w.ticker.SetPeriod(min(max(value, 1), 600))
		return true
	case "up_chance", "down_chance":
		g, ok := w.trans.Clamp.(GatedStep)
		if !ok {
			return false
		}
		value = min(max(value, 0), 100)
		if key == "up_chance" {
			g.UpChance = value
		} else {
			g.DownChance = value
		}
		w.trans.Clamp = g
		return true
	case "brush_category":
		return w.SetBrushCategory(value)
	}
	return false
}

func (w *World) clampMode() string {
	if _, ok := w.trans.Clamp.(GatedStep); ok {
		return ClampGated
	}
	return ClampSimple
}

func (w *World) upChance() int {
	if g, ok := w.trans.Clamp.(GatedStep); ok {
		return g.UpChance
	}
	return 100
}

func (w *World) downChance() int {
	if g, ok := w.trans.Clamp.(GatedStep); ok {
		return g.DownChance
	}
	return 100
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
