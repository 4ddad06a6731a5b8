package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/rvpanel/internal/transition"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

// harness wires a queue to a manually advanced scheduler.
type harness struct {
	clock *testClock
	sched *transition.Scheduler
	queue *Queue
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &testClock{t: time.Unix(1000, 0)}
	sched := transition.NewScheduler(clock.Now)
	q := NewQueue(sched, Text("Remote View"), Text("Share your local site"))
	return &harness{clock: clock, sched: sched, queue: q}
}

// settle advances the clock frame by frame until no transition is running.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 1000 && h.sched.Active(); i++ {
		h.clock.t = h.clock.t.Add(16 * time.Millisecond)
		h.sched.Advance(h.clock.t)
	}
	require.False(t, h.sched.Active(), "transitions did not settle")
}

func TestDisplay_ReplacesContent(t *testing.T) {
	h := newHarness(t)

	h.queue.Display(NewMessage("Connected", "to example.com"))
	assert.True(t, h.queue.Title.Animating())
	assert.True(t, h.queue.Comment.Animating())

	h.settle(t)
	assert.Equal(t, Text("Connected"), h.queue.Title.Current())
	assert.Equal(t, Text("to example.com"), h.queue.Comment.Current())
	assert.False(t, h.queue.Animating())
}

func TestDisplay_PlainLeavesCommentUnchanged(t *testing.T) {
	h := newHarness(t)

	h.queue.DisplayText("Connecting")
	assert.True(t, h.queue.Title.Animating())
	assert.False(t, h.queue.Comment.Animating())

	h.settle(t)
	assert.Equal(t, Text("Connecting"), h.queue.Title.Current())
	assert.Equal(t, Text("Share your local site"), h.queue.Comment.Current())
}

func TestReplace_QueuesWhileAnimatingInOrder(t *testing.T) {
	h := newHarness(t)
	r := h.queue.Title

	var done []string
	for _, s := range []string{"one", "two", "three", "four"} {
		s := s
		r.Replace(Text(s), func() { done = append(done, s) })
	}

	assert.True(t, r.Animating())
	assert.Equal(t, 3, r.Pending())

	for i := 0; i < 1000 && h.sched.Active(); i++ {
		// At most one slide per region at any instant.
		assert.LessOrEqual(t, h.sched.Len(), 1)
		h.clock.t = h.clock.t.Add(16 * time.Millisecond)
		h.sched.Advance(h.clock.t)
	}

	assert.Equal(t, []string{"one", "two", "three", "four"}, done)
	assert.Equal(t, Text("four"), r.Current())
	assert.Equal(t, 0, r.Pending())
}

func TestReplace_RegionsAnimateIndependently(t *testing.T) {
	h := newHarness(t)

	h.queue.Display(NewMessage("a", "b"))
	h.queue.Display(Message{Title: ShowText("c")})

	assert.Equal(t, 1, h.queue.Title.Pending())
	assert.Equal(t, 0, h.queue.Comment.Pending())

	h.settle(t)
	assert.Equal(t, Text("c"), h.queue.Title.Current())
	assert.Equal(t, Text("b"), h.queue.Comment.Current())
}

func TestReset_RestoresDefaultIdempotently(t *testing.T) {
	h := newHarness(t)
	def := h.queue.Title.Default()

	h.queue.Display(NewMessage("Error", "quota exceeded"))
	h.settle(t)

	h.queue.Display(ResetMessage())
	h.settle(t)
	assert.Equal(t, def, h.queue.Title.Current())
	assert.Equal(t, Text("Share your local site"), h.queue.Comment.Current())

	first := h.queue.Title.View(RenderContext{})

	h.queue.Display(ResetMessage())
	h.settle(t)
	assert.Equal(t, def, h.queue.Title.Current())
	assert.Equal(t, first, h.queue.Title.View(RenderContext{}))
}

func TestReset_QueuedBehindSlide(t *testing.T) {
	h := newHarness(t)

	h.queue.Display(NewMessage("Connecting", ""))
	h.queue.Display(ResetMessage())
	assert.Equal(t, 1, h.queue.Title.Pending())

	h.settle(t)
	assert.Equal(t, Text("Remote View"), h.queue.Title.Current())
}

func TestView_SlideInterpolatesHeight(t *testing.T) {
	h := newHarness(t)
	r := h.queue.Comment

	r.Replace(Text("line 1\nline 2\nline 3"), nil)

	// Initial frame shows the old single-row content.
	assert.Equal(t, "Share your local site", r.View(RenderContext{}))

	h.clock.t = h.clock.t.Add(50 * time.Millisecond)
	h.sched.Advance(h.clock.t)

	mid := r.View(RenderContext{})
	rows := strings.Count(mid, "\n") + 1
	assert.GreaterOrEqual(t, rows, 1)
	assert.LessOrEqual(t, rows, 3)

	h.settle(t)
	assert.Equal(t, "line 1\nline 2\nline 3", r.View(RenderContext{}))
}

func TestView_SlideMovesOutgoingUp(t *testing.T) {
	h := newHarness(t)
	r := h.queue.Title

	r.Replace(Text("next"), nil)
	r.slide.pos = 0.5
	assert.Equal(t, "next", r.View(RenderContext{}))

	r.slide.pos = 0.4
	assert.Equal(t, "Remote View", r.View(RenderContext{}))
}

func TestSpinnerContent(t *testing.T) {
	s := Spinner{Label: "Connecting"}
	assert.Equal(t, "Connecting", s.Render(RenderContext{}))
	assert.Equal(t, "Connecting ⣾", s.Render(RenderContext{Spinner: "⣾"}))
}

func TestField(t *testing.T) {
	assert.False(t, Keep().Changes())
	assert.False(t, ShowText("").Changes())
	assert.False(t, Show(nil).Changes())
	assert.True(t, Reset().Changes())
	assert.True(t, Reset().IsReset())
	assert.True(t, ShowText("x").Changes())
	assert.Equal(t, Text("x"), ShowText("x").Content())
}

func TestWithDuration(t *testing.T) {
	clock := &testClock{t: time.Unix(0, 0)}
	sched := transition.NewScheduler(clock.Now)
	q := NewQueue(sched, Text("a"), Text("b"), WithDuration(time.Second), WithEasing(transition.Linear))

	q.DisplayText("c")
	clock.t = clock.t.Add(500 * time.Millisecond)
	sched.Advance(clock.t)
	assert.True(t, q.Title.Animating())

	clock.t = clock.t.Add(600 * time.Millisecond)
	sched.Advance(clock.t)
	assert.False(t, q.Title.Animating())
}
