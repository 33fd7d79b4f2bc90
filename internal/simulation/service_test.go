package simulation

import (
	"context"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

func TestService_Lifecycle(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	id, err := svc.Create(heatConfig())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(id).To(HavePrefix("heat_"))

	run, ok := svc.Get(id)
	g.Expect(ok).To(BeTrue())
	g.Expect(run.Status).To(Equal(StatusCreated))
	g.Expect(run.Progress).To(BeZero())

	g.Expect(svc.Solve(id)).To(Succeed())
	run, _ = svc.Get(id)
	g.Expect(run.Status).To(Equal(StatusCompleted))
	g.Expect(run.Progress).To(Equal(1.0))

	g.Expect(svc.Delete(id)).To(BeTrue())
	_, ok = svc.Get(id)
	g.Expect(ok).To(BeFalse())
	g.Expect(svc.Delete(id)).To(BeFalse())
}

func TestService_CreateRejectsBadConfig(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	cfg := heatConfig()
	cfg.Equation = "advection"
	_, err := svc.Create(cfg)
	g.Expect(err).To(HaveOccurred())
	g.Expect(svc.List()).To(BeEmpty())
}

func TestService_ListSortedByCreation(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	a, err := svc.Create(heatConfig())
	g.Expect(err).NotTo(HaveOccurred())
	b, err := svc.Create(waveConfig())
	g.Expect(err).NotTo(HaveOccurred())

	runs := svc.List()
	g.Expect(runs).To(HaveLen(2))
	g.Expect(runs[0].ID).To(Equal(a))
	g.Expect(runs[1].ID).To(Equal(b))
	g.Expect(strings.HasPrefix(runs[1].ID, "wave_")).To(BeTrue())
}

func TestService_StreamMatchesSolve(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	id, err := svc.Create(heatConfig())
	g.Expect(err).NotTo(HaveOccurred())

	run, _ := svc.Get(id)
	field, err := run.Sim.Solve()
	g.Expect(err).NotTo(HaveOccurred())

	steps := 0
	err = svc.Stream(context.Background(), id, func(step int, tv float64, u []float64) bool {
		g.Expect(u).To(Equal(field.Row(step)))
		g.Expect(tv).To(BeNumerically("~", float64(step)*0.005, 1e-12))
		steps++
		return true
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(steps).To(Equal(field.Rows()))

	run, _ = svc.Get(id)
	g.Expect(run.Status).To(Equal(StatusCompleted))
}

func TestService_StreamHonorsCancellation(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	id, err := svc.Create(heatConfig())
	g.Expect(err).NotTo(HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	err = svc.Stream(ctx, id, func(step int, tv float64, u []float64) bool {
		steps++
		if steps == 3 {
			cancel()
		}
		return true
	})
	g.Expect(err).To(MatchError(context.Canceled))
	g.Expect(steps).To(Equal(3))

	run, _ := svc.Get(id)
	g.Expect(run.Status).To(Equal(StatusFailed))
}

// Get hands out snapshots, so a run held across a solve must not
// observe the status changing underneath it.
func TestService_GetReturnsSnapshot(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	id, err := svc.Create(heatConfig())
	g.Expect(err).NotTo(HaveOccurred())

	before, ok := svc.Get(id)
	g.Expect(ok).To(BeTrue())

	g.Expect(svc.Solve(id)).To(Succeed())

	g.Expect(before.Status).To(Equal(StatusCreated))
	g.Expect(before.Progress).To(BeZero())

	after, _ := svc.Get(id)
	g.Expect(after.Status).To(Equal(StatusCompleted))

	// Listed runs are snapshots too.
	listed := svc.List()
	g.Expect(listed).To(HaveLen(1))
	listed[0].Status = StatusFailed
	fresh, _ := svc.Get(id)
	g.Expect(fresh.Status).To(Equal(StatusCompleted))
}

func TestService_StreamUnknownID(t *testing.T) {
	g := NewWithT(t)
	svc := NewService()

	err := svc.Stream(context.Background(), "nope", func(int, float64, []float64) bool { return true })
	g.Expect(err).To(HaveOccurred())
	g.Expect(svc.Solve("nope")).NotTo(Succeed())
}
