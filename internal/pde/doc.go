// Package pde provides core primitives for explicit finite-difference
// solution of 1D time-dependent partial differential equations.
//
// The package defines the shared types the solvers are built from:
//
//   - [Field]: dense space-time solution array, one row per time step
//   - [Operator]: banded tri-diagonal update operator with identity
//     boundary rows
//
// # Example
//
//	op := pde.NewOperator(nx, sigma, 1-2*sigma)
//	op.Apply(next, curr)
//
// # Thread Safety
//
// Operators are immutable after construction and safe for concurrent
// reads. Fields are plain data and carry no synchronization; each solver
// instance owns its own Field.
package pde
