package expand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/rvpanel/internal/transition"
)

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func newSection(offset int) (*Section, *transition.Scheduler, *clock) {
	c := &clock{t: time.Unix(0, 0)}
	sched := transition.NewScheduler(c.Now)
	return New(sched, func() int { return offset }), sched, c
}

func finish(t *testing.T, sched *transition.Scheduler, c *clock) {
	t.Helper()
	c.t = c.t.Add(time.Second)
	sched.Advance(c.t)
	require.False(t, sched.Active())
}

func TestExpandCollapse(t *testing.T) {
	s, sched, c := newSection(4)

	s.Toggle(nil)
	assert.True(t, s.Expanded())
	assert.True(t, s.Animating())

	finish(t, sched, c)
	assert.False(t, s.Animating())
	assert.Equal(t, 4, s.Translate())
	assert.Equal(t, 4, s.DescriptionHeight())

	s.Toggle(nil)
	assert.False(t, s.Expanded())
	assert.True(t, s.Animating())
	assert.Equal(t, 4, s.DescriptionHeight())

	finish(t, sched, c)
	assert.False(t, s.Animating())
	assert.Equal(t, 0, s.Translate())
	assert.Equal(t, 0, s.DescriptionHeight())
}

func TestToggle_IgnoredWhileAnimating(t *testing.T) {
	s, sched, c := newSection(3)

	s.Toggle(nil)
	require.Equal(t, 1, sched.Len())

	s.Toggle(nil)
	s.Expand(nil)
	s.Collapse(nil)
	assert.True(t, s.Expanded())
	assert.Equal(t, 1, sched.Len())

	finish(t, sched, c)
	assert.True(t, s.Expanded())
}

func TestToggle_Callback(t *testing.T) {
	s, sched, c := newSection(2)

	called := 0
	s.Toggle(func() { called++ })
	assert.Equal(t, 0, called)

	finish(t, sched, c)
	assert.Equal(t, 1, called)
}

func TestExpand_LockstepMidway(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	sched := transition.NewScheduler(c.Now)
	s := New(sched, func() int { return 10 })
	s.easing = transition.Linear

	s.Expand(nil)
	c.t = c.t.Add(200 * time.Millisecond)
	sched.Advance(c.t)

	assert.Equal(t, 5, s.Translate())
	assert.Equal(t, 5, s.DescriptionHeight())
}

func TestCompose(t *testing.T) {
	s, sched, c := newSection(2)

	above := "header 1\nheader 2"
	body := "body"
	desc := "desc 1\ndesc 2\ndesc 3"

	assert.Equal(t, "header 1\nheader 2\nbody", s.Compose(above, body, desc))

	s.Expand(nil)
	finish(t, sched, c)
	assert.Equal(t, "body\ndesc 1\ndesc 2", s.Compose(above, body, desc))
}
