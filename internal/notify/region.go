package notify

import (
	"math"
	"strings"
	"time"

	"github.com/jmylchreest/rvpanel/internal/transition"
)

// DefaultDuration is the length of a region slide.
const DefaultDuration = 300 * time.Millisecond

type pendingItem struct {
	content Content // nil restores the default
	onDone  func()
}

// slide is the bookkeeping of a running replacement.
type slide struct {
	outgoing Content
	incoming Content
	from     int // container rows before the replacement
	to       int // natural container rows with the new content
	pos      float64
}

// Region is one independently sequenced notification slot.
type Region struct {
	name     string
	driver   transition.Driver
	duration time.Duration
	easing   transition.Easing
	width    int

	def     Content
	current Content

	animating bool
	pending   []pendingItem
	slide     *slide
}

// NewRegion creates a region showing def, which is also the content restored
// by a reset.
func NewRegion(name string, def Content, driver transition.Driver) *Region {
	return &Region{
		name:     name,
		driver:   driver,
		duration: DefaultDuration,
		easing:   transition.OutExpo,
		def:      def,
		current:  def,
	}
}

// Name returns the region name.
func (r *Region) Name() string { return r.name }

// Current returns the content the region settles on once idle.
// During a slide this is still the outgoing content.
func (r *Region) Current() Content { return r.current }

// Default returns the registered default content.
func (r *Region) Default() Content { return r.def }

// Animating reports whether a slide is running.
func (r *Region) Animating() bool { return r.animating }

// Pending returns the number of queued replacements.
func (r *Region) Pending() int { return len(r.pending) }

// SetWidth sets the wrap width used for measuring and rendering.
func (r *Region) SetWidth(w int) { r.width = w }

// Replace slides content into the region. A nil content restores the default.
// If a slide is already running the request is queued and played after it,
// in submission order. onDone, if not nil, runs when this replacement ends.
func (r *Region) Replace(content Content, onDone func()) {
	if r.animating {
		r.pending = append(r.pending, pendingItem{content: content, onDone: onDone})
		return
	}

	if content == nil {
		content = r.def
	}

	// Measure before the new content takes part in layout.
	ctx := RenderContext{Width: r.width}
	s := &slide{
		outgoing: r.current,
		incoming: content,
		from:     height(r.current, ctx),
		to:       height(content, ctx),
	}

	r.slide = s
	r.animating = true

	r.driver.Start(transition.Spec{
		Duration: r.duration,
		Easing:   r.easing,
		Step: func(pos float64) {
			s.pos = pos
		},
		Complete: func() {
			r.current = s.incoming
			r.slide = nil
			r.animating = false

			if onDone != nil {
				onDone()
			}

			if len(r.pending) > 0 {
				next := r.pending[0]
				r.pending = r.pending[1:]
				r.Replace(next.content, next.onDone)
			}
		},
	})
}

// View renders the region. While sliding, the outgoing content moves up out of
// view, the incoming content follows it from below and the region height
// interpolates between the old and new natural heights.
func (r *Region) View(ctx RenderContext) string {
	if ctx.Width == 0 {
		ctx.Width = r.width
	}

	s := r.slide
	if s == nil {
		if r.current == nil {
			return ""
		}
		return r.current.Render(ctx)
	}

	rows := s.from
	if s.to != s.from {
		rows = s.from + int(math.Round(s.pos*float64(s.to-s.from)))
	}
	if rows <= 0 {
		return ""
	}

	out := lines(s.outgoing, ctx)
	in := lines(s.incoming, ctx)
	shift := int(math.Round(s.pos * float64(s.from)))

	canvas := make([]string, rows)
	for y := range canvas {
		if i := y + shift; i < s.from && i < len(out) {
			canvas[y] = out[i]
			continue
		}
		if j := y - (s.from - shift); j >= 0 && j < len(in) {
			canvas[y] = in[j]
		}
	}
	return strings.Join(canvas, "\n")
}
