package stability

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestHeatSigma(t *testing.T) {
	sigma, err := HeatSigma(0.1, 0.0001, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sigma-0.1) > 1e-12 {
		t.Errorf("expected sigma 0.1, got %g", sigma)
	}
}

func TestHeatSigma_BadDx(t *testing.T) {
	_, err := HeatSigma(0.1, 0.0001, 0)
	if !errors.Is(err, pde.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestWaveSigma(t *testing.T) {
	sigma, err := WaveSigma(1.0, 0.005, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sigma-0.25) > 1e-12 {
		t.Errorf("expected sigma 0.25, got %g", sigma)
	}
}

func TestValidateHeat(t *testing.T) {
	tests := []struct {
		name      string
		beta      float64
		dt        float64
		dx        float64
		wantSigma float64
		wantValid bool
	}{
		{"stable", 0.1, 0.0001, 0.01, 0.1, true},
		{"violates cfl", 0.5, 0.01, 0.01, 50.0, false},
		{"exact boundary rejected", 0.5, 0.0001, 0.01, 0.5, false},
		{"just inside", 0.49, 0.0001, 0.01, 0.49, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := ValidateHeat(tt.beta, tt.dt, tt.dx)
			if math.Abs(rep.Sigma-tt.wantSigma) > 1e-9 {
				t.Errorf("sigma: got %g, want %g", rep.Sigma, tt.wantSigma)
			}
			if rep.Valid != tt.wantValid {
				t.Errorf("valid: got %v, want %v (errors: %v)", rep.Valid, tt.wantValid, rep.Errors)
			}
		})
	}
}

func TestValidateHeat_CFLMessage(t *testing.T) {
	rep := ValidateHeat(0.5, 0.01, 0.01)
	if rep.Valid {
		t.Fatal("expected invalid report")
	}
	found := false
	for _, e := range rep.Errors {
		if strings.Contains(e, "CFL") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a CFL violation message, got %v", rep.Errors)
	}
}

func TestValidateHeat_BadParameters(t *testing.T) {
	rep := ValidateHeat(-1, 0, -0.5)
	if rep.Valid {
		t.Fatal("expected invalid report")
	}
	if len(rep.Errors) != 3 {
		t.Errorf("expected 3 accumulated errors, got %d: %v", len(rep.Errors), rep.Errors)
	}
}

func TestValidateWave(t *testing.T) {
	tests := []struct {
		name      string
		c         float64
		dt        float64
		dx        float64
		wantSigma float64
		wantValid bool
	}{
		{"stable", 1.0, 0.005, 0.01, 0.25, true},
		{"exact boundary accepted", 2.0, 0.005, 0.01, 1.0, true},
		{"violates cfl", 3.0, 0.005, 0.01, 2.25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := ValidateWave(tt.c, tt.dt, tt.dx)
			if math.Abs(rep.Sigma-tt.wantSigma) > 1e-9 {
				t.Errorf("sigma: got %g, want %g", rep.Sigma, tt.wantSigma)
			}
			if rep.Valid != tt.wantValid {
				t.Errorf("valid: got %v, want %v (errors: %v)", rep.Valid, tt.wantValid, rep.Errors)
			}
		})
	}
}

func TestCheckDomain(t *testing.T) {
	rep := CheckDomain(Domain{Min: 0, Max: 1, Step: 0.01}, Domain{Min: 0, Max: 1, Step: 0.001})
	if !rep.Valid {
		t.Errorf("expected valid domain, got %v", rep.Errors)
	}

	rep = CheckDomain(Domain{Min: 1, Max: 0, Step: 0.01}, Domain{Min: 0, Max: 1, Step: -1})
	if rep.Valid {
		t.Fatal("expected invalid domain")
	}
	if len(rep.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(rep.Errors), rep.Errors)
	}

	// Equal bounds count as inverted.
	rep = CheckDomain(Domain{Min: 0.5, Max: 0.5, Step: 0.01}, Domain{Min: 0, Max: 1, Step: 0.001})
	if rep.Valid {
		t.Error("expected x_max == x_min to be rejected")
	}
}
