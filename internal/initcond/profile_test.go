package initcond

import (
	"math"
	"testing"
)

func TestGaussian(t *testing.T) {
	p := Gaussian{Center: 0.5, Width: 0.1, Amplitude: 2.0}
	u := p.Evaluate([]float64{0.5, 0.6})

	if math.Abs(u[0]-2.0) > 1e-12 {
		t.Errorf("peak: got %g, want 2", u[0])
	}
	want := 2.0 * math.Exp(-0.01/(2*0.01))
	if math.Abs(u[1]-want) > 1e-12 {
		t.Errorf("off-peak: got %g, want %g", u[1], want)
	}
}

func TestSine(t *testing.T) {
	p := Sine{Frequency: 1, Amplitude: 1}
	u := p.Evaluate([]float64{0, 0.25, 0.5})

	if math.Abs(u[0]) > 1e-12 {
		t.Errorf("sin(0): got %g", u[0])
	}
	if math.Abs(u[1]-1) > 1e-12 {
		t.Errorf("sin(pi/2): got %g", u[1])
	}
	if math.Abs(u[2]) > 1e-12 {
		t.Errorf("sin(pi): got %g", u[2])
	}
}

func TestSine_Phase(t *testing.T) {
	p := Sine{Frequency: 1, Amplitude: 1, Phase: math.Pi / 2}
	u := p.Evaluate([]float64{0})
	if math.Abs(u[0]-1) > 1e-12 {
		t.Errorf("phase-shifted sin at 0: got %g, want 1", u[0])
	}
}

func TestSquareWave(t *testing.T) {
	p := SquareWave{Amplitude: 1.5}
	u := p.Evaluate([]float64{0, 0.49, 0.5, 1})

	if u[0] != 1.5 || u[1] != 1.5 {
		t.Errorf("left half should be +amp: %v", u)
	}
	if u[2] != -1.5 || u[3] != -1.5 {
		t.Errorf("right half (including 0.5) should be -amp: %v", u)
	}
}

func TestTriangleWave(t *testing.T) {
	p := TriangleWave{Amplitude: 1}
	u := p.Evaluate([]float64{0, 0.5, 1})

	if math.Abs(u[0]) > 1e-12 || math.Abs(u[2]) > 1e-12 {
		t.Errorf("endpoints should be 0: %v", u)
	}
	if math.Abs(u[1]-1) > 1e-12 {
		t.Errorf("peak should be 1: %g", u[1])
	}
}

func TestZero(t *testing.T) {
	u := Zero{}.Evaluate([]float64{1, 2, 3})
	if len(u) != 3 {
		t.Fatalf("expected 3 values, got %d", len(u))
	}
	for i, v := range u {
		if v != 0 {
			t.Errorf("u[%d] = %g, want 0", i, v)
		}
	}
}

func TestFunc(t *testing.T) {
	f := Func(func(x float64) float64 { return 2 * x })
	u := f.Evaluate([]float64{1, 2})
	if u[0] != 2 || u[1] != 4 {
		t.Errorf("got %v, want [2 4]", u)
	}
}

func TestFromPreset(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]float64
	}{
		{"gaussian", map[string]float64{"center": 0.3, "width": 0.05, "amplitude": 2}},
		{"sine", nil},
		{"square_wave", nil},
		{"triangle_wave", nil},
		{"zero", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromPreset(tt.name, tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			u := p.Evaluate([]float64{0, 0.5, 1})
			if len(u) != 3 {
				t.Errorf("expected 3 values, got %d", len(u))
			}
		})
	}
}

func TestFromPreset_Defaults(t *testing.T) {
	p, err := FromPreset("gaussian", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, ok := p.(Gaussian)
	if !ok {
		t.Fatalf("expected Gaussian, got %T", p)
	}
	if g.Center != 0.5 || g.Width != 0.1 || g.Amplitude != 1.0 {
		t.Errorf("unexpected defaults: %+v", g)
	}
}

func TestFromPreset_Unknown(t *testing.T) {
	if _, err := FromPreset("sawtooth", nil); err == nil {
		t.Error("expected error for unknown preset")
	}
}
