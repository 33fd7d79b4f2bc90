package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EquationHeat = "heat"
	EquationWave = "wave"
)

// Simulation is the full configuration descriptor for one simulation:
// equation family, discretization, physical parameter, and boundary and
// initial data.
type Simulation struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Equation string   `yaml:"equation" json:"equation"`
	Spatial  Spatial  `yaml:"spatial" json:"spatial"`
	Temporal Temporal `yaml:"temporal" json:"temporal"`
	Physical Physical `yaml:"physical" json:"physical"`
	Boundary Boundary `yaml:"boundary" json:"boundary"`
	Initial  Initial  `yaml:"initial" json:"initial"`
	// Velocity seeds du/dt(x, 0) for the wave equation. Absent means
	// the zero profile.
	Velocity *Initial `yaml:"velocity,omitempty" json:"velocity,omitempty"`
}

type Spatial struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	Dx   float64 `yaml:"dx" json:"dx"`
}

type Temporal struct {
	TMin float64 `yaml:"t_min" json:"t_min"`
	TMax float64 `yaml:"t_max" json:"t_max"`
	Dt   float64 `yaml:"dt" json:"dt"`
}

// Physical holds the single physical coefficient of each family:
// Beta (thermal diffusivity) for heat, C (wave speed) for wave.
type Physical struct {
	Beta float64 `yaml:"beta,omitempty" json:"beta,omitempty"`
	C    float64 `yaml:"c,omitempty" json:"c,omitempty"`
}

// Boundary holds the Dirichlet endpoint values held fixed for all time.
type Boundary struct {
	Left  float64 `yaml:"left" json:"left"`
	Right float64 `yaml:"right" json:"right"`
}

// Initial describes an initial condition: a named preset with
// parameters, or a restricted arithmetic expression over x. When both
// are present the expression wins.
type Initial struct {
	Preset     string             `yaml:"preset,omitempty" json:"preset,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
	Expression string             `yaml:"expression,omitempty" json:"expression,omitempty"`
}

func Default() *Simulation {
	return &Simulation{
		Name:     "heat-gaussian",
		Equation: EquationHeat,
		Spatial:  Spatial{XMin: 0, XMax: 1, Dx: 0.01},
		Temporal: Temporal{TMin: 0, TMax: 0.5, Dt: 0.0001},
		Physical: Physical{Beta: 0.1},
		Boundary: Boundary{Left: 0, Right: 0},
		Initial: Initial{
			Preset: "gaussian",
			Params: map[string]float64{"center": 0.5, "width": 0.1, "amplitude": 1.0},
		},
	}
}

func Load(path string) (*Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Simulation) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
