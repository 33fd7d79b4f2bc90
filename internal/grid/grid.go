package grid

import "math"

// Grid is a uniform space-time discretization. Point counts follow
// nx = round((xMax-xMin)/dx)+1 and nt = round((tMax-tMin)/dt)+1 so the
// axes always include both endpoints.
type Grid struct {
	XMin, XMax, Dx float64
	TMin, TMax, Dt float64
	Nx, Nt         int
}

func New(xMin, xMax, dx, tMin, tMax, dt float64) Grid {
	return Grid{
		XMin: xMin, XMax: xMax, Dx: dx,
		TMin: tMin, TMax: tMax, Dt: dt,
		Nx: int(math.Round((xMax-xMin)/dx)) + 1,
		Nt: int(math.Round((tMax-tMin)/dt)) + 1,
	}
}

// X returns the spatial axis as a linspace over [XMin, XMax].
func (g Grid) X() []float64 {
	return linspace(g.XMin, g.XMax, g.Nx)
}

// T returns the temporal axis as a linspace over [TMin, TMax].
func (g Grid) T() []float64 {
	return linspace(g.TMin, g.TMax, g.Nt)
}

// TimeIndex maps a time value to the nearest step index, clamped to
// [0, Nt-1].
func (g Grid) TimeIndex(t float64) int {
	i := int(math.Round((t - g.TMin) / g.Dt))
	if i < 0 {
		return 0
	}
	if i > g.Nt-1 {
		return g.Nt - 1
	}
	return i
}

func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = lo
		return vals
	}
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}
