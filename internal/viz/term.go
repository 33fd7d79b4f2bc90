// Package viz renders solution fields: quick terminal plots for the CLI
// and PNG profile/heat-map exports for reports.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pdelab/internal/pde"
)

// RenderFrame draws one spatial profile as a terminal line graph.
func RenderFrame(u []float64, t float64, width, height int) string {
	data := downsample(u, width)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("t = %.4f", t)),
	)
}

// RenderSummary draws the time evolution of the interior maximum, a
// one-line view of decay or oscillation across the whole solve.
func RenderSummary(field *pde.Field, width, height int) string {
	peaks := make([]float64, field.Rows())
	lo, hi := 0, field.Cols()
	if field.Cols() > 2 {
		lo, hi = 1, field.Cols()-1
	}
	for i := range peaks {
		peaks[i] = field.MaxAbs(i, lo, hi)
	}
	data := downsample(peaks, width)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("interior max |u| over time"),
	)
}

// downsample picks evenly spaced samples so wide fields still fit a
// terminal. Fewer points than the budget pass through untouched.
func downsample(u []float64, n int) []float64 {
	if n <= 0 || len(u) <= n {
		out := make([]float64, len(u))
		copy(out, u)
		return out
	}
	out := make([]float64, n)
	for i := range out {
		j := i * (len(u) - 1) / (n - 1)
		out[i] = u[j]
	}
	return out
}
