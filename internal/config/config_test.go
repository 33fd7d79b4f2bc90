package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Equation != EquationHeat {
		t.Errorf("default equation = %q", cfg.Equation)
	}
	if cfg.Initial.Preset != "gaussian" {
		t.Errorf("default preset = %q", cfg.Initial.Preset)
	}
	if cfg.Spatial.Dx <= 0 || cfg.Temporal.Dt <= 0 {
		t.Error("default steps must be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Name = "roundtrip"
	cfg.Equation = EquationWave
	cfg.Physical = Physical{C: 2.5}
	cfg.Velocity = &Initial{Expression: "sin(pi * x)"}

	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "roundtrip" || got.Equation != EquationWave {
		t.Errorf("identity fields lost: %+v", got)
	}
	if got.Physical.C != 2.5 {
		t.Errorf("C = %g, want 2.5", got.Physical.C)
	}
	if got.Velocity == nil || got.Velocity.Expression != "sin(pi * x)" {
		t.Errorf("velocity lost: %+v", got.Velocity)
	}
}

// Load layers the file over defaults, so a sparse file still produces a
// runnable configuration.
func TestLoadSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.yaml")
	data := "equation: heat\nphysical:\n  beta: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physical.Beta != 0.25 {
		t.Errorf("beta = %g, want 0.25", cfg.Physical.Beta)
	}
	if cfg.Spatial.Dx != Default().Spatial.Dx {
		t.Errorf("dx should fall back to default, got %g", cfg.Spatial.Dx)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("equation: [not, a, string"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must error")
	}
}

func TestPresetCatalog(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("preset catalog is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("preset ids not sorted: %q before %q", names[i-1], names[i])
		}
	}

	for _, id := range names {
		cfg := GetPreset(id)
		if cfg == nil {
			t.Fatalf("listed preset %q not found", id)
		}
		if cfg.Equation != EquationHeat && cfg.Equation != EquationWave {
			t.Errorf("preset %q has unknown equation %q", id, cfg.Equation)
		}
	}

	if GetPreset("no-such-preset") != nil {
		t.Error("unknown preset id must return nil")
	}
}
