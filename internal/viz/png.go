package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/pdelab/internal/pde"
)

// SaveProfiles writes a PNG overlaying count evenly spaced time slices
// of the solution as line plots.
func SaveProfiles(path, title string, x, times []float64, field *pde.Field, count int) error {
	if count < 2 {
		count = 2
	}
	if count > field.Rows() {
		count = field.Rows()
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u"

	args := make([]interface{}, 0, 2*count)
	for k := 0; k < count; k++ {
		i := k * (field.Rows() - 1) / (count - 1)
		row := field.Row(i)
		xy := make(plotter.XYs, len(row))
		for j := range row {
			xy[j].X = x[j]
			xy[j].Y = row[j]
		}
		args = append(args, fmt.Sprintf("t=%.3f", times[i]), xy)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveHeatmap writes the full space-time field as a PNG heat map, time
// on the vertical axis.
func SaveHeatmap(path, title string, x, times []float64, field *pde.Field) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "t"

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(fieldGrid{x: x, t: times, f: field}, pal)
	p.Add(hm)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// fieldGrid adapts a solution field to plotter.GridXYZ: columns are
// spatial points, rows are time steps.
type fieldGrid struct {
	x []float64
	t []float64
	f *pde.Field
}

func (g fieldGrid) Dims() (int, int)   { return g.f.Cols(), g.f.Rows() }
func (g fieldGrid) Z(c, r int) float64 { return g.f.At(r, c) }
func (g fieldGrid) X(c int) float64    { return g.x[c] }
func (g fieldGrid) Y(r int) float64    { return g.t[r] }
