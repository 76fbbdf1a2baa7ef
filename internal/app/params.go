package app

import "mad-life/internal/core"

// Parameter keys understood by the loop.
const (
	ParamScale   = "scale"
	ParamSpacing = "spacing"
	ParamClearR  = "clear_r"
	ParamClearG  = "clear_g"
	ParamClearB  = "clear_b"
	ParamTPS     = "tps"
)

var controls = []core.ParameterControl{
	{Key: ParamScale, Label: "Cell scale", Type: core.ParamTypeFloat, Step: 1, Min: MinScale, Max: MaxScale},
	{Key: ParamSpacing, Label: "Cell spacing", Type: core.ParamTypeFloat, Step: 1, Min: MinSpacing, Max: MaxSpacing},
	{Key: ParamClearR, Label: "Clear red", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	{Key: ParamClearG, Label: "Clear green", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	{Key: ParamClearB, Label: "Clear blue", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	{Key: ParamTPS, Label: "Ticks/sec", Type: core.ParamTypeInt, Step: 1, Min: MinTPS, Max: MaxTPS},
}

// ParameterControls lists the HUD sliders.
func (lp *Loop) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// Parameters reports the current slider values.
func (lp *Loop) Parameters() core.ParameterSnapshot {
	c := lp.ctrl
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cell",
			Params: []core.Parameter{
				core.FloatParam(ParamScale, "Cell scale", c.Scale),
				core.FloatParam(ParamSpacing, "Cell spacing", c.Spacing),
			},
		},
		{
			Name: "Clear Color",
			Params: []core.Parameter{
				core.FloatParam(ParamClearR, "Clear red", c.ClearColor[0]),
				core.FloatParam(ParamClearG, "Clear green", c.ClearColor[1]),
				core.FloatParam(ParamClearB, "Clear blue", c.ClearColor[2]),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				core.IntParam(ParamTPS, "Ticks/sec", lp.sched.TPS()),
			},
		},
	}}
}

// SetFloatParameter updates a float slider, clamped to its range.
func (lp *Loop) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	value = ctrl.Clamp(value)
	c := lp.ctrl
	switch key {
	case ParamScale:
		c.Scale = value
	case ParamSpacing:
		c.Spacing = value
	case ParamClearR:
		c.ClearColor[0] = value
	case ParamClearG:
		c.ClearColor[1] = value
	case ParamClearB:
		c.ClearColor[2] = value
	}
	return true
}

// SetIntParameter updates an integer slider, clamped to its range.
func (lp *Loop) SetIntParameter(key string, value int) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	if key == ParamTPS {
		lp.sched.SetTPS(value)
	}
	return true
}

func lookupControl(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}
