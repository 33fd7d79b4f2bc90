package simulation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/san-kum/pdelab/internal/config"
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one registered simulation with its lifecycle state.
type Run struct {
	ID        string
	Config    *config.Simulation
	Sim       *Simulator
	Status    Status
	Progress  float64
	CreatedAt time.Time
	Err       error
}

// Service tracks active simulations by identifier. The engine itself is
// single-threaded; all concurrency lives here, guarded by one mutex.
type Service struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	counter int
}

func NewService() *Service {
	return &Service{runs: make(map[string]*Run)}
}

// Create registers a new simulation and returns its identifier.
func (s *Service) Create(cfg *config.Simulation) (string, error) {
	sim, err := New(cfg)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	id := fmt.Sprintf("%s_%d_%d", cfg.Equation, time.Now().Unix(), s.counter)
	s.runs[id] = &Run{
		ID:        id,
		Config:    cfg,
		Sim:       sim,
		Status:    StatusCreated,
		CreatedAt: time.Now(),
	}
	return id, nil
}

// Get returns a snapshot of the run; Status and Progress reflect the
// moment of the call and do not track a march still in flight.
func (s *Service) Get(id string) (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

func (s *Service) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return false
	}
	delete(s.runs, id)
	return true
}

// List returns snapshots of all runs, oldest first.
func (s *Service) List() []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, *r)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs
}

func (s *Service) setStatus(id string, status Status, progress float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok {
		run.Status = status
		run.Progress = progress
		run.Err = err
	}
}

// Stream walks the simulation one time step at a time, invoking fn with
// the step index, time value, and spatial profile. The walk honors
// context cancellation between steps and fn may return false to pause
// or stop; the rows delivered are identical to a batched Solve. The run
// status and progress are updated as the march advances.
func (s *Service) Stream(ctx context.Context, id string, fn func(step int, t float64, u []float64) bool) error {
	run, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("simulation %s not found", id)
	}

	g := run.Sim.Grid()
	s.setStatus(id, StatusRunning, 0, nil)

	err := run.Sim.SolveFunc(func(step int, u []float64) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if step%64 == 0 || step == g.Nt-1 {
			s.setStatus(id, StatusRunning, float64(step+1)/float64(g.Nt), nil)
		}
		return fn(step, g.TMin+float64(step)*g.Dt, u)
	})
	if err != nil {
		s.setStatus(id, StatusFailed, 0, err)
		return err
	}
	if ctx.Err() != nil {
		s.setStatus(id, StatusFailed, 0, ctx.Err())
		return ctx.Err()
	}

	s.setStatus(id, StatusCompleted, 1, nil)
	return nil
}

// Solve runs the registered simulation to completion.
func (s *Service) Solve(id string) error {
	run, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("simulation %s not found", id)
	}

	s.setStatus(id, StatusRunning, 0, nil)
	if _, err := run.Sim.Solve(); err != nil {
		s.setStatus(id, StatusFailed, 0, err)
		return err
	}
	s.setStatus(id, StatusCompleted, 1, nil)
	return nil
}
