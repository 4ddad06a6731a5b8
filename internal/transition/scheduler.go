package transition

import (
	"time"
)

// Spec describes a single transition.
type Spec struct {
	Duration time.Duration
	Easing   Easing // OutExpo if nil

	// Reverse delivers 1-ease(t) to Step, so the position runs from 1 to 0.
	Reverse bool

	Step     func(pos float64)
	Complete func()
}

// Driver starts transitions.
type Driver interface {
	Start(spec Spec)
}

type run struct {
	spec  Spec
	start time.Time
}

// Scheduler is a Driver advanced explicitly by the UI frame loop.
type Scheduler struct {
	now    func() time.Time
	active []*run
}

// NewScheduler creates a scheduler using now as its clock.
// A nil clock defaults to time.Now.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Start registers a transition and delivers its initial position.
func (s *Scheduler) Start(spec Spec) {
	if spec.Easing == nil {
		spec.Easing = OutExpo
	}
	r := &run{spec: spec, start: s.now()}
	s.active = append(s.active, r)
	r.step(0)
}

// Active reports whether any transition is still running.
func (s *Scheduler) Active() bool {
	return len(s.active) > 0
}

// Len returns the number of running transitions.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Advance delivers the position for now to every running transition.
// Transitions that reach the end receive their final step followed by their
// completion callback. Transitions started from inside a callback are first
// advanced on the next call.
func (s *Scheduler) Advance(now time.Time) {
	runs := s.active
	s.active = nil

	for _, r := range runs {
		t := 1.0
		if r.spec.Duration > 0 {
			t = float64(now.Sub(r.start)) / float64(r.spec.Duration)
		}
		if t < 1 {
			r.step(t)
			s.active = append(s.active, r)
			continue
		}

		r.step(1)
		if r.spec.Complete != nil {
			r.spec.Complete()
		}
	}
}

func (r *run) step(t float64) {
	if r.spec.Step == nil {
		return
	}
	pos := r.spec.Easing(t)
	if r.spec.Reverse {
		pos = 1 - pos
	}
	r.spec.Step(pos)
}
