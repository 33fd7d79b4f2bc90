// Package initcond supplies initial condition profiles for the PDE
// solvers: closed-form presets, caller-supplied functions, and a
// sandboxed expression grammar. Profiles are deterministic; evaluating
// the same profile over the same grid always yields the same values.
package initcond

import (
	"fmt"
	"math"
)

// Profile maps the spatial grid to a same-length sequence of values.
type Profile interface {
	Evaluate(x []float64) []float64
}

// Gaussian is amplitude*exp(-(x-center)^2 / (2*width^2)).
type Gaussian struct {
	Center, Width, Amplitude float64
}

func (g Gaussian) Evaluate(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, xi := range x {
		d := xi - g.Center
		u[i] = g.Amplitude * math.Exp(-d*d/(2*g.Width*g.Width))
	}
	return u
}

// Sine is amplitude*sin(2*pi*frequency*x + phase).
type Sine struct {
	Frequency, Amplitude, Phase float64
}

func (s Sine) Evaluate(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, xi := range x {
		u[i] = s.Amplitude * math.Sin(2*math.Pi*s.Frequency*xi+s.Phase)
	}
	return u
}

// SquareWave is +amplitude for x < 0.5 and -amplitude otherwise.
type SquareWave struct {
	Amplitude float64
}

func (s SquareWave) Evaluate(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, xi := range x {
		if xi < 0.5 {
			u[i] = s.Amplitude
		} else {
			u[i] = -s.Amplitude
		}
	}
	return u
}

// TriangleWave is amplitude*(1 - 2*|x-0.5|), a tent peaking at x=0.5.
type TriangleWave struct {
	Amplitude float64
}

func (t TriangleWave) Evaluate(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, xi := range x {
		u[i] = t.Amplitude * (1 - 2*math.Abs(xi-0.5))
	}
	return u
}

// Zero is the identically zero profile. It is also the fallback for
// rejected expressions.
type Zero struct{}

func (Zero) Evaluate(x []float64) []float64 {
	return make([]float64, len(x))
}

// Func wraps a caller-supplied pointwise function. No validation is
// performed on the function itself.
type Func func(x float64) float64

func (f Func) Evaluate(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, xi := range x {
		u[i] = f(xi)
	}
	return u
}

// FromPreset resolves a named preset descriptor to a Profile. Missing
// parameters fall back to the given defaults.
func FromPreset(name string, params map[string]float64) (Profile, error) {
	get := func(key string, def float64) float64 {
		if v, ok := params[key]; ok {
			return v
		}
		return def
	}

	switch name {
	case "gaussian":
		return Gaussian{
			Center:    get("center", 0.5),
			Width:     get("width", 0.1),
			Amplitude: get("amplitude", 1.0),
		}, nil
	case "sine":
		return Sine{
			Frequency: get("frequency", 1.0),
			Amplitude: get("amplitude", 1.0),
			Phase:     get("phase", 0.0),
		}, nil
	case "square_wave":
		return SquareWave{Amplitude: get("amplitude", 1.0)}, nil
	case "triangle_wave":
		return TriangleWave{Amplitude: get("amplitude", 1.0)}, nil
	case "zero", "":
		return Zero{}, nil
	default:
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
}
