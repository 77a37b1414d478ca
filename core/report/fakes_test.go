package report

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/academia/dashboard/core/academic"
)

const (
	testTimeout = time.Second
	testTick    = time.Millisecond
)

type fakeGateway struct {
	calls   atomic.Int32
	summary atomic.Int32

	mu      sync.Mutex
	failOn  string
	gate    chan struct{} // when set, slice queries block until it is closed
	bundle  Bundle
	general Summary
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{bundle: sampleBundle(), general: Summary{}}
}

func (g *fakeGateway) query(ctx context.Context, action string) error {
	g.calls.Add(1)

	g.mu.Lock()
	gate, failOn := g.gate, g.failOn
	g.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if action == failOn {
		return fmt.Errorf("%s: boom", action)
	}
	return nil
}

func (g *fakeGateway) Enrollment(ctx context.Context) ([]EnrollmentCount, error) {
	return g.bundle.Enrollment, g.query(ctx, ActionEnrollment)
}

func (g *fakeGateway) Outcomes(ctx context.Context) ([]OutcomeCount, error) {
	return g.bundle.Outcomes, g.query(ctx, ActionOutcomes)
}

func (g *fakeGateway) CourseStats(ctx context.Context) ([]CourseStats, error) {
	return g.bundle.CourseStats, g.query(ctx, ActionCourseStats)
}

func (g *fakeGateway) TopStudents(ctx context.Context) ([]TopStudent, error) {
	return g.bundle.TopStudents, g.query(ctx, ActionTopStudents)
}

func (g *fakeGateway) Summary(context.Context) (Summary, error) {
	g.summary.Add(1)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failOn == ActionGeneral {
		return Summary{}, fmt.Errorf("general: boom")
	}
	return g.general, nil
}

func (g *fakeGateway) PendingActivities(context.Context) ([]PendingActivities, error) {
	return []PendingActivities{{Course: "Física", Pending: 2}}, nil
}

func (g *fakeGateway) MonthlyAverages(context.Context) ([]MonthlyAverage, error) {
	return []MonthlyAverage{{Month: "2024-03", Average: academic.NewScore(3.8)}}, nil
}

func (g *fakeGateway) setFailOn(action string) {
	g.mu.Lock()
	g.failOn = action
	g.mu.Unlock()
}

func (g *fakeGateway) setGate(gate chan struct{}) {
	g.mu.Lock()
	g.gate = gate
	g.mu.Unlock()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type activation struct {
	ctx     context.Context
	current atomic.Bool
}

func newActivation(ctx context.Context) *activation {
	a := &activation{ctx: ctx}
	a.current.Store(true)
	return a
}

func (a *activation) Context() context.Context { return a.ctx }
func (a *activation) Current() bool            { return a.current.Load() }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func sampleBundle() Bundle {
	return Bundle{
		Enrollment: []EnrollmentCount{
			{Course: "Programación Orientada a Objetos", Count: 25},
			{Course: "Física", Count: 12},
			{Course: "", Count: 3},
		},
		Outcomes: []OutcomeCount{
			{Outcome: OutcomesApproved, Count: 20},
			{Outcome: OutcomesFailed, Count: 7},
			{Outcome: OutcomesUngraded, Count: 13},
		},
		CourseStats: []CourseStats{
			{ID: 1, Name: "Cálculo Diferencial", Code: "MAT201", Students: 10, Activities: 3, Average: academic.NewScore(4.1)},
			{ID: 2, Name: "Física", Code: "FIS101", Students: 12},
		},
		TopStudents: []TopStudent{
			{Student: "Ana", Course: "Física", Average: academic.NewScore(4.9)},
			{Student: "Luis", Course: "Cálculo Diferencial", Average: academic.NewScore(4.5)},
		},
	}
}
