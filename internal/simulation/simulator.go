// Package simulation wires configuration descriptors into the heat and
// wave solvers and exposes the uniform validate / solve / sample
// contract consumed by the CLI, the run store, and the live view.
package simulation

import (
	"fmt"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/initcond"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/solver"
	"github.com/san-kum/pdelab/internal/stability"
)

// Simulator owns one configured solver for the lifetime of one
// simulation. The equation family is dispatched exactly once, at
// construction.
type Simulator struct {
	cfg      *config.Simulation
	heat     *solver.Heat
	wave     *solver.Wave
	solution *pde.Field
}

// New builds a simulator for the descriptor's equation family, wiring
// the resolved initial and boundary data into the matching solver.
// Unknown families fail immediately; no partial solver is constructed.
func New(cfg *config.Simulation) (*Simulator, error) {
	s := &Simulator{cfg: cfg}

	ic, err := resolveProfile(cfg.Initial)
	if err != nil {
		return nil, err
	}

	switch cfg.Equation {
	case config.EquationHeat:
		h, err := solver.NewHeat(
			cfg.Spatial.XMin, cfg.Spatial.XMax,
			cfg.Temporal.TMin, cfg.Temporal.TMax,
			cfg.Spatial.Dx, cfg.Temporal.Dt,
			cfg.Physical.Beta,
		)
		if err != nil {
			return nil, err
		}
		h.SetInitialCondition(ic)
		h.SetBoundary(cfg.Boundary.Left, cfg.Boundary.Right)
		s.heat = h

	case config.EquationWave:
		w, err := solver.NewWave(
			cfg.Spatial.XMin, cfg.Spatial.XMax,
			cfg.Temporal.TMin, cfg.Temporal.TMax,
			cfg.Spatial.Dx, cfg.Temporal.Dt,
			cfg.Physical.C,
		)
		if err != nil {
			return nil, err
		}
		w.SetInitialPosition(ic)
		velocity := initcond.Profile(initcond.Zero{})
		if cfg.Velocity != nil {
			velocity, err = resolveProfile(*cfg.Velocity)
			if err != nil {
				return nil, err
			}
		}
		w.SetInitialVelocity(velocity)
		w.SetBoundary(cfg.Boundary.Left, cfg.Boundary.Right)
		s.wave = w

	default:
		return nil, fmt.Errorf("%w: %q", pde.ErrUnknownEquation, cfg.Equation)
	}

	return s, nil
}

// resolveProfile turns an initial condition descriptor into a Profile.
// Expressions take precedence over presets. A malformed expression
// fails closed to the zero profile; an unknown preset name is a
// descriptor error and is surfaced.
func resolveProfile(ic config.Initial) (initcond.Profile, error) {
	if ic.Expression != "" {
		return initcond.FromExpression(ic.Expression), nil
	}
	return initcond.FromPreset(ic.Preset, ic.Params)
}

// Validate recomputes the stability report from the descriptor alone.
// It never blocks a subsequent Solve: CFL violations are reported so
// the caller can decide, including deliberately exploring unstable
// regimes.
func Validate(cfg *config.Simulation) (stability.Report, error) {
	var rep stability.Report
	switch cfg.Equation {
	case config.EquationHeat:
		rep = stability.ValidateHeat(cfg.Physical.Beta, cfg.Temporal.Dt, cfg.Spatial.Dx)
	case config.EquationWave:
		rep = stability.ValidateWave(cfg.Physical.C, cfg.Temporal.Dt, cfg.Spatial.Dx)
	default:
		return stability.Report{}, fmt.Errorf("%w: %q", pde.ErrUnknownEquation, cfg.Equation)
	}

	dom := stability.CheckDomain(
		stability.Domain{Min: cfg.Spatial.XMin, Max: cfg.Spatial.XMax, Step: cfg.Spatial.Dx},
		stability.Domain{Min: cfg.Temporal.TMin, Max: cfg.Temporal.TMax, Step: cfg.Temporal.Dt},
	)
	for _, e := range dom.Errors {
		found := false
		for _, have := range rep.Errors {
			if have == e {
				found = true
				break
			}
		}
		if !found {
			rep.Errors = append(rep.Errors, e)
		}
	}
	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

func (s *Simulator) Config() *config.Simulation { return s.cfg }

func (s *Simulator) Grid() grid.Grid {
	if s.heat != nil {
		return s.heat.Grid()
	}
	return s.wave.Grid()
}

func (s *Simulator) Sigma() float64 {
	if s.heat != nil {
		return s.heat.Sigma()
	}
	return s.wave.Sigma()
}

func (s *Simulator) CheckStability() bool {
	if s.heat != nil {
		return s.heat.CheckStability()
	}
	return s.wave.CheckStability()
}

func (s *Simulator) Validate() stability.Report {
	rep, _ := Validate(s.cfg)
	return rep
}

// Solve runs the full time march. The result is cached for SampleAtTime
// but every call recomputes from scratch.
func (s *Simulator) Solve() (*pde.Field, error) {
	var (
		field *pde.Field
		err   error
	)
	if s.heat != nil {
		field, err = s.heat.Solve()
	} else {
		field, err = s.wave.Solve()
	}
	if err != nil {
		return nil, err
	}
	s.solution = field
	return field, nil
}

// SolveFunc walks the march one time step at a time. The emitted rows
// match Solve exactly: same sigma, same operator, same bootstrap.
func (s *Simulator) SolveFunc(fn func(step int, u []float64) bool) error {
	if s.heat != nil {
		return s.heat.SolveFunc(fn)
	}
	return s.wave.SolveFunc(fn)
}

// SampleAtTime returns the spatial profile at the step nearest to t,
// clamped to the solved range. Solve must have completed.
func (s *Simulator) SampleAtTime(t float64) ([]float64, error) {
	if s.solution == nil {
		return nil, pde.ErrNoSolution
	}
	i := s.Grid().TimeIndex(t)
	row := make([]float64, s.solution.Cols())
	copy(row, s.solution.Row(i))
	return row, nil
}

// XValues returns the spatial coordinate axis.
func (s *Simulator) XValues() []float64 { return s.Grid().X() }

// TValues returns the temporal coordinate axis.
func (s *Simulator) TValues() []float64 { return s.Grid().T() }
