// Package solver implements the explicit finite-difference time
// marchers for the 1D heat and wave equations.
//
// Both solvers follow the same shape: construction fixes the grid and
// the stability parameter sigma, setters install initial and boundary
// data, and Solve runs the full march into a [pde.Field]. The heat
// scheme is a two-level recurrence (forward Euler in time); the wave
// scheme is a three-level recurrence with a Taylor bootstrap for the
// first step. SolveFunc walks the identical march one row at a time for
// callers that stream or pause.
//
// Solvers are not safe for concurrent use; independent simulations need
// independent solver instances.
package solver
