package langton

import (
	"strconv"

	"langton-ca/internal/core"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Ants",
			Params: []core.Parameter{
				intParam("ants", "Ants", s.cfg.Ants),
				boolParam("random_start", "Random start", s.cfg.RandomStart),
				intParam("start_x", "Start X", s.cfg.StartX),
				intParam("start_y", "Start Y", s.cfg.StartY),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				int64Param("ticks", "Ticks", int64(s.Ticks())),
				intParam("marked", "Marked cells", s.Marked()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
