package pde

import "errors"

// Domain errors for solver operations.
var (
	// ErrInvalidParameter indicates a non-positive step size or an
	// inverted domain bound.
	ErrInvalidParameter = errors.New("pde: invalid parameter")

	// ErrNotConfigured indicates Solve was called before the required
	// initial condition functions were set.
	ErrNotConfigured = errors.New("pde: solver not configured")

	// ErrUnknownEquation indicates an unrecognized equation type in a
	// simulation descriptor.
	ErrUnknownEquation = errors.New("pde: unknown equation type")

	// ErrNoSolution indicates an operation that needs a completed solve
	// was called before Solve.
	ErrNoSolution = errors.New("pde: no solution computed yet")
)
