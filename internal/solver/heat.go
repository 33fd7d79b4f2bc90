package solver

import (
	"fmt"

	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/initcond"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/stability"
)

// Heat solves du/dt = beta * d2u/dx2 with the forward-Euler scheme
// u[n+1] = A*u[n], where A has 1-2*sigma on the interior diagonal and
// sigma on both off-diagonals.
type Heat struct {
	g     grid.Grid
	beta  float64
	sigma float64

	ic          []float64
	left, right float64
}

func NewHeat(xMin, xMax, tMin, tMax, dx, dt, beta float64) (*Heat, error) {
	if rep := stability.CheckDomain(
		stability.Domain{Min: xMin, Max: xMax, Step: dx},
		stability.Domain{Min: tMin, Max: tMax, Step: dt},
	); !rep.Valid {
		return nil, fmt.Errorf("%w: %s", pde.ErrInvalidParameter, rep.Errors[0])
	}
	sigma, err := stability.HeatSigma(beta, dt, dx)
	if err != nil {
		return nil, err
	}
	return &Heat{
		g:     grid.New(xMin, xMax, dx, tMin, tMax, dt),
		beta:  beta,
		sigma: sigma,
	}, nil
}

func (h *Heat) Grid() grid.Grid { return h.g }
func (h *Heat) Sigma() float64  { return h.sigma }

// SetInitialCondition evaluates p over the spatial grid and stores the
// result as row 0 of the march.
func (h *Heat) SetInitialCondition(p initcond.Profile) {
	h.ic = p.Evaluate(h.g.X())
}

// SetBoundary stores the Dirichlet endpoint values forced onto every
// produced row after the initial one.
func (h *Heat) SetBoundary(left, right float64) {
	h.left, h.right = left, right
}

// CheckStability reports whether the scheme stays bounded. The bound is
// strict: sigma = 0.5 diverges.
func (h *Heat) CheckStability() bool { return h.sigma < 0.5 }

// Validate recomputes the full stability report from current
// parameters.
func (h *Heat) Validate() stability.Report {
	return stability.ValidateHeat(h.beta, h.g.Dt, h.g.Dx)
}

// SolveFunc runs the march one row at a time, invoking fn for every
// time step including step 0. Returning false from fn stops the march.
// The rows emitted here are bitwise identical to the rows of Solve.
func (h *Heat) SolveFunc(fn func(step int, u []float64) bool) error {
	if h.ic == nil {
		return fmt.Errorf("%w: initial condition not set", pde.ErrNotConfigured)
	}

	nx := h.g.Nx
	op := pde.NewOperator(nx, h.sigma, 1-2*h.sigma)

	curr := make([]float64, nx)
	next := make([]float64, nx)
	copy(curr, h.ic)

	// Row 0 is the initial condition verbatim; its endpoints are left
	// as the profile evaluated them, not replaced by the boundary
	// values.
	if !fn(0, curr) {
		return nil
	}

	for n := 1; n < h.g.Nt; n++ {
		op.Apply(next, curr)
		next[0] = h.left
		next[nx-1] = h.right
		curr, next = next, curr
		if !fn(n, curr) {
			return nil
		}
	}
	return nil
}

// Solve runs the full time march and returns the dense space-time
// solution. It always recomputes from scratch, so repeated calls on an
// unmodified solver yield identical fields.
func (h *Heat) Solve() (*pde.Field, error) {
	if h.ic == nil {
		return nil, fmt.Errorf("%w: initial condition not set", pde.ErrNotConfigured)
	}
	field := pde.NewField(h.g.Nt, h.g.Nx)
	err := h.SolveFunc(func(step int, u []float64) bool {
		field.SetRow(step, u)
		return true
	})
	if err != nil {
		return nil, err
	}
	return field, nil
}
