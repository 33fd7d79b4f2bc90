package metrics

import "math"

// Metric accumulates a scalar diagnostic over the rows of a solve.
type Metric interface {
	Name() string
	Observe(u []float64, t float64)
	Value() float64
	Reset()
}

// PeakAmplitude tracks the largest absolute value seen anywhere in the
// solution.
type PeakAmplitude struct {
	name string
	peak float64
}

func NewPeakAmplitude() *PeakAmplitude {
	return &PeakAmplitude{name: "peak_amplitude"}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(u []float64, t float64) {
	for _, v := range u {
		if a := math.Abs(v); a > p.peak {
			p.peak = a
		}
	}
}

func (p *PeakAmplitude) Value() float64 { return p.peak }
func (p *PeakAmplitude) Reset()         { p.peak = 0 }

// DecayViolations counts time steps where the interior maximum grew, a
// diagnostic for diffusive decay: a stable heat solve with non-negative
// data and zero boundaries should report zero.
type DecayViolations struct {
	name       string
	prevMax    float64
	samples    int
	violations int
}

func NewDecayViolations() *DecayViolations {
	return &DecayViolations{name: "decay_violations"}
}

func (d *DecayViolations) Name() string { return d.name }

func (d *DecayViolations) Observe(u []float64, t float64) {
	m := 0.0
	for i := 1; i < len(u)-1; i++ {
		if a := math.Abs(u[i]); a > m {
			m = a
		}
	}
	// Tolerance absorbs rounding noise at machine precision.
	if d.samples > 0 && m > d.prevMax*(1+1e-12)+1e-15 {
		d.violations++
	}
	d.prevMax = m
	d.samples++
}

func (d *DecayViolations) Value() float64 { return float64(d.violations) }

func (d *DecayViolations) Reset() {
	d.prevMax = 0
	d.samples = 0
	d.violations = 0
}

// WaveEnergy tracks the maximum discrete energy of a wave solve,
// approximating the velocity field from successive rows. Bounded energy
// over the march indicates the scheme is not blowing up.
type WaveEnergy struct {
	name  string
	c     float64
	dx    float64
	dt    float64
	prev  []float64
	max   float64
	steps int
}

func NewWaveEnergy(c, dx, dt float64) *WaveEnergy {
	return &WaveEnergy{name: "wave_energy_max", c: c, dx: dx, dt: dt}
}

func (w *WaveEnergy) Name() string { return w.name }

func (w *WaveEnergy) Observe(u []float64, t float64) {
	if w.prev != nil && len(w.prev) == len(u) {
		e := w.energy(u)
		if e > w.max {
			w.max = e
		}
	}
	if w.prev == nil {
		w.prev = make([]float64, len(u))
	}
	copy(w.prev, u)
	w.steps++
}

func (w *WaveEnergy) energy(u []float64) float64 {
	ke, pe := 0.0, 0.0
	c2 := w.c * w.c
	for i := range u {
		v := (u[i] - w.prev[i]) / w.dt
		ke += 0.5 * v * v * w.dx
		if i < len(u)-1 {
			dudx := (u[i+1] - u[i]) / w.dx
			pe += 0.5 * c2 * dudx * dudx * w.dx
		}
	}
	return ke + pe
}

func (w *WaveEnergy) Value() float64 { return w.max }

func (w *WaveEnergy) Reset() {
	w.prev = nil
	w.max = 0
	w.steps = 0
}
