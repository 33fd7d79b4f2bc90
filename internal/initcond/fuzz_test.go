package initcond

import "testing"

// FuzzFromExpression checks the fail-closed contract: arbitrary input
// must never panic, and the resulting profile must always produce one
// value per grid point.
func FuzzFromExpression(f *testing.F) {
	seeds := []string{
		"sin(pi*x)",
		"exp(-x^2)",
		"2*x + 1",
		"abs(x - 0.5)",
		"((((x))))",
		"tan(x)",
		"x ** ** 2",
		"-(-(-x))",
		"9999999999999999999999",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	grid := []float64{0, 0.25, 0.5, 0.75, 1}

	f.Fuzz(func(t *testing.T, src string) {
		p := FromExpression(src)
		u := p.Evaluate(grid)
		if len(u) != len(grid) {
			t.Fatalf("expected %d values, got %d", len(grid), len(u))
		}
	})
}
