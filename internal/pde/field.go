package pde

import "math"

// Field is a dense space-time solution array. Row i holds the full
// spatial profile at time step i, so the shape is (nt, nx). Row 0 is
// the initial condition exactly as evaluated.
type Field struct {
	data []float64
	rows int
	cols int
}

func NewField(rows, cols int) *Field {
	return &Field{
		data: make([]float64, rows*cols),
		rows: rows,
		cols: cols,
	}
}

func (f *Field) Rows() int { return f.rows }
func (f *Field) Cols() int { return f.cols }

// Row returns the spatial profile at time step i. The returned slice
// aliases the field's storage.
func (f *Field) Row(i int) []float64 {
	return f.data[i*f.cols : (i+1)*f.cols]
}

func (f *Field) At(i, j int) float64 { return f.data[i*f.cols+j] }

func (f *Field) SetRow(i int, u []float64) {
	copy(f.Row(i), u)
}

func (f *Field) Clone() *Field {
	c := NewField(f.rows, f.cols)
	copy(c.data, f.data)
	return c
}

// Equal reports bitwise equality of two fields, including NaN positions.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.rows != other.rows || f.cols != other.cols {
		return false
	}
	for i, v := range f.data {
		if math.Float64bits(v) != math.Float64bits(other.data[i]) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute value in row i over the index
// range [lo, hi).
func (f *Field) MaxAbs(i, lo, hi int) float64 {
	m := 0.0
	for _, v := range f.Row(i)[lo:hi] {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
