package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   Easing
	}{
		{"linear", Linear},
		{"outExpo", OutExpo},
		{"inOutQuad", InOutQuad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, tt.fn(0), 1e-9)
			assert.InDelta(t, 1, tt.fn(1), 1e-9)
			assert.InDelta(t, 0, tt.fn(-1), 1e-9)
			assert.InDelta(t, 1, tt.fn(2), 1e-9)
		})
	}

	assert.Greater(t, OutExpo(0.5), 0.5)
}

func TestScheduler_StepsAndCompletesOnce(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(clock.Now)

	var positions []float64
	completed := 0
	s.Start(Spec{
		Duration: 100 * time.Millisecond,
		Easing:   Linear,
		Step:     func(pos float64) { positions = append(positions, pos) },
		Complete: func() { completed++ },
	})
	require.True(t, s.Active())

	s.Advance(clock.Add(50 * time.Millisecond))
	assert.Equal(t, 0, completed)

	s.Advance(clock.Add(60 * time.Millisecond))
	assert.Equal(t, 1, completed)
	assert.False(t, s.Active())

	s.Advance(clock.Add(100 * time.Millisecond))
	assert.Equal(t, 1, completed)

	require.Len(t, positions, 3)
	assert.InDelta(t, 0, positions[0], 1e-9)
	assert.InDelta(t, 0.5, positions[1], 1e-9)
	assert.InDelta(t, 1, positions[2], 1e-9)
}

func TestScheduler_Reverse(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(clock.Now)

	var last float64
	s.Start(Spec{
		Duration: 100 * time.Millisecond,
		Easing:   Linear,
		Reverse:  true,
		Step:     func(pos float64) { last = pos },
	})
	assert.InDelta(t, 1, last, 1e-9)

	s.Advance(clock.Add(25 * time.Millisecond))
	assert.InDelta(t, 0.75, last, 1e-9)

	s.Advance(clock.Add(time.Second))
	assert.InDelta(t, 0, last, 1e-9)
}

func TestScheduler_StartFromCompletion(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(clock.Now)

	var order []string
	s.Start(Spec{
		Duration: 10 * time.Millisecond,
		Complete: func() {
			order = append(order, "first")
			s.Start(Spec{
				Duration: 10 * time.Millisecond,
				Complete: func() { order = append(order, "second") },
			})
		},
	})

	s.Advance(clock.Add(20 * time.Millisecond))
	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, s.Len())

	s.Advance(clock.Add(20 * time.Millisecond))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.False(t, s.Active())
}

func TestScheduler_ZeroDuration(t *testing.T) {
	s := NewScheduler(nil)
	done := false
	s.Start(Spec{Complete: func() { done = true }})
	s.Advance(time.Now())
	assert.True(t, done)
}

func TestByName(t *testing.T) {
	assert.InDelta(t, 0.3, ByName("linear")(0.3), 1e-9)
	assert.InDelta(t, OutExpo(0.3), ByName("unknown")(0.3), 1e-9)
	assert.InDelta(t, InOutQuad(0.3), ByName("inOutQuad")(0.3), 1e-9)
}
