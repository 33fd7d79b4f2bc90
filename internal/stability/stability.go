// Package stability implements CFL stability analysis for the explicit
// heat and wave schemes. All functions are pure and deterministic.
package stability

import (
	"fmt"

	"github.com/san-kum/pdelab/internal/pde"
)

// Report is the outcome of a stability check. Valid is true iff Errors
// is empty. Sigma is the dimensionless stability parameter of the
// scheme; it is zero when the step sizes are too broken to compute it.
type Report struct {
	Valid  bool     `json:"valid"`
	Sigma  float64  `json:"sigma"`
	Errors []string `json:"errors"`
}

// HeatSigma returns the heat-equation stability parameter
// beta*dt/dx^2.
func HeatSigma(beta, dt, dx float64) (float64, error) {
	if dx <= 0 {
		return 0, fmt.Errorf("%w: dx must be positive, got %g", pde.ErrInvalidParameter, dx)
	}
	return beta * dt / (dx * dx), nil
}

// WaveSigma returns the wave-equation stability parameter (c*dt/dx)^2.
func WaveSigma(c, dt, dx float64) (float64, error) {
	if dx <= 0 {
		return 0, fmt.Errorf("%w: dx must be positive, got %g", pde.ErrInvalidParameter, dx)
	}
	r := c * dt / dx
	return r * r, nil
}

// ValidateHeat checks the forward-Euler heat scheme. The CFL bound is
// strict: sigma = 0.5 sits exactly on the instability boundary and is
// rejected.
func ValidateHeat(beta, dt, dx float64) Report {
	rep := Report{Errors: []string{}}

	if beta <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("beta must be positive, got %g", beta))
	}
	if dt <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dt must be positive, got %g", dt))
	}
	if dx <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dx must be positive, got %g", dx))
	}

	if dx > 0 {
		rep.Sigma = beta * dt / (dx * dx)
	}
	if beta > 0 && dt > 0 && dx > 0 && rep.Sigma >= 0.5 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("CFL violation: sigma = %.6g >= 0.5 (beta*dt/dx^2 must stay below 0.5)", rep.Sigma))
	}

	rep.Valid = len(rep.Errors) == 0
	return rep
}

// ValidateWave checks the central-difference wave scheme. Unlike the
// heat case, sigma = 1 is stable and accepted.
func ValidateWave(c, dt, dx float64) Report {
	rep := Report{Errors: []string{}}

	if c <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("c must be positive, got %g", c))
	}
	if dt <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dt must be positive, got %g", dt))
	}
	if dx <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dx must be positive, got %g", dx))
	}

	if dx > 0 {
		r := c * dt / dx
		rep.Sigma = r * r
	}
	if c > 0 && dt > 0 && dx > 0 && rep.Sigma > 1.0 {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("CFL violation: sigma = %.6g > 1.0 ((c*dt/dx)^2 must not exceed 1)", rep.Sigma))
	}

	rep.Valid = len(rep.Errors) == 0
	return rep
}

// Domain describes one axis of the discretization for range checking.
type Domain struct {
	Min, Max, Step float64
}

// CheckDomain validates the spatial and temporal extents independent of
// the physical model: steps must be positive and bounds ordered.
func CheckDomain(spatial, temporal Domain) Report {
	rep := Report{Errors: []string{}}

	if spatial.Step <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dx must be positive, got %g", spatial.Step))
	}
	if temporal.Step <= 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("dt must be positive, got %g", temporal.Step))
	}
	if spatial.Max <= spatial.Min {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("x_max must exceed x_min, got [%g, %g]", spatial.Min, spatial.Max))
	}
	if temporal.Max <= temporal.Min {
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("t_max must exceed t_min, got [%g, %g]", temporal.Min, temporal.Max))
	}

	rep.Valid = len(rep.Errors) == 0
	return rep
}
