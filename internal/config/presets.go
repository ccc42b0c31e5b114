package config

import "sort"

// Preset is a typical starting point for one kind of installation.
type Preset struct {
	Description string
	TargetTemp  float64
	HeatCurve   float64
}

var Presets = map[string]*Preset{
	"underfloor": {
		Description: "underfloor heating, low flow temperatures",
		TargetTemp:  21, HeatCurve: 0.5,
	},
	"radiator": {
		Description: "panel radiators in an insulated building",
		TargetTemp:  21, HeatCurve: 1.2,
	},
	"old_radiator": {
		Description: "cast iron radiators, poorly insulated building",
		TargetTemp:  21, HeatCurve: 2.0,
	},
	"passive_house": {
		Description: "very low heat demand",
		TargetTemp:  20, HeatCurve: 0.2,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
