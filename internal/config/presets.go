package config

import "sort"

// Presets catalogs ready-to-run configurations for the classic textbook
// scenarios. IDs follow equation-scenario naming.
var Presets = map[string]*Simulation{
	"heat-gaussian": {
		Name:     "Heat: Gaussian Diffusion",
		Equation: EquationHeat,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 0.5, Dt: 0.0001},
		Physical: Physical{Beta: 0.1},
		Initial: Initial{
			Preset: "gaussian",
			Params: map[string]float64{"center": 0.5, "width": 0.1, "amplitude": 1.0},
		},
	},
	"heat-sine": {
		Name:     "Heat: Sine Wave Decay",
		Equation: EquationHeat,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 0.3, Dt: 0.0001},
		Physical: Physical{Beta: 0.1},
		Initial: Initial{
			Preset: "sine",
			Params: map[string]float64{"amplitude": 1.0, "frequency": 1.0},
		},
	},
	"heat-step": {
		Name:     "Heat: Step Function",
		Equation: EquationHeat,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 0.2, Dt: 0.00005},
		Physical: Physical{Beta: 0.2},
		Initial: Initial{
			Preset: "square_wave",
			Params: map[string]float64{"amplitude": 1.0},
		},
	},
	"wave-standing": {
		Name:     "Wave: Standing Wave",
		Equation: EquationWave,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 2.0, Dt: 0.005},
		Physical: Physical{C: 1.0},
		Initial: Initial{
			Preset: "sine",
			Params: map[string]float64{"amplitude": 1.0, "frequency": 1.0},
		},
	},
	"wave-plucked": {
		Name:     "Wave: Plucked String",
		Equation: EquationWave,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 2.0, Dt: 0.005},
		Physical: Physical{C: 1.0},
		Initial: Initial{
			Preset: "triangle_wave",
			Params: map[string]float64{"amplitude": 1.0},
		},
	},
	"wave-pulse": {
		Name:     "Wave: Gaussian Pulse",
		Equation: EquationWave,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 1.0, Dt: 0.003},
		Physical: Physical{C: 1.0},
		Initial: Initial{
			Preset: "gaussian",
			Params: map[string]float64{"center": 0.5, "width": 0.05, "amplitude": 1.0},
		},
	},
}

func GetPreset(id string) *Simulation {
	cfg, ok := Presets[id]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
