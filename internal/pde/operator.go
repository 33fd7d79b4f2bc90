package pde

// Operator is the banded tri-diagonal update operator of an explicit
// scheme. Interior rows carry sigma on both off-diagonals and center on
// the main diagonal; the first and last rows are the identity, so a
// matrix-vector product never perturbs the boundary entries. Only the
// two coefficients are stored; the dense nx-by-nx form is never
// materialized.
type Operator struct {
	n      int
	sigma  float64
	center float64
}

func NewOperator(n int, sigma, center float64) *Operator {
	return &Operator{n: n, sigma: sigma, center: center}
}

func (o *Operator) Size() int       { return o.n }
func (o *Operator) Sigma() float64  { return o.sigma }
func (o *Operator) Center() float64 { return o.center }

// Apply computes dst = A*src. dst and src must both have length Size
// and must not alias.
func (o *Operator) Apply(dst, src []float64) {
	n := o.n
	dst[0] = src[0]
	for i := 1; i < n-1; i++ {
		dst[i] = o.sigma*(src[i-1]+src[i+1]) + o.center*src[i]
	}
	dst[n-1] = src[n-1]
}

// Dense expands the operator to its full matrix form. Used by tests and
// exports only; the solvers always go through Apply.
func (o *Operator) Dense() [][]float64 {
	a := make([][]float64, o.n)
	for i := range a {
		a[i] = make([]float64, o.n)
	}
	a[0][0] = 1
	a[o.n-1][o.n-1] = 1
	for i := 1; i < o.n-1; i++ {
		a[i][i-1] = o.sigma
		a[i][i] = o.center
		a[i][i+1] = o.sigma
	}
	return a
}
