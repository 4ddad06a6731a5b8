// Package expand implements the animated expand/collapse toggle of the
// Remote View section and its description area.
package expand

import (
	"math"
	"strings"
	"time"

	"github.com/jmylchreest/rvpanel/internal/transition"
)

// DefaultDuration is the length of an expand or collapse.
const DefaultDuration = 400 * time.Millisecond

// Section is a two-state expandable panel section. Expanding slides the section
// up by its offset from the top of the scroll container while the description
// area grows by the same amount.
type Section struct {
	driver   transition.Driver
	duration time.Duration
	easing   transition.Easing
	offset   func() int

	expanded  bool
	animating bool

	translate float64 // rows the section is moved up by
	height    float64 // rows of the description area
}

// New creates a collapsed section. offset reports the section's current
// distance, in rows, from the top of its scroll container.
func New(driver transition.Driver, offset func() int) *Section {
	return &Section{
		driver:   driver,
		duration: DefaultDuration,
		easing:   transition.OutExpo,
		offset:   offset,
	}
}

// SetDuration overrides the transition duration.
func (s *Section) SetDuration(d time.Duration) { s.duration = d }

// SetEasing overrides the transition easing.
func (s *Section) SetEasing(e transition.Easing) { s.easing = e }

// Expanded reports whether the section is (or is becoming) expanded.
func (s *Section) Expanded() bool { return s.expanded }

// Animating reports whether a transition is running.
func (s *Section) Animating() bool { return s.animating }

// Translate returns how many rows the section is currently moved up by.
func (s *Section) Translate() int { return int(math.Round(s.translate)) }

// DescriptionHeight returns the current rendered rows of the description area.
func (s *Section) DescriptionHeight() int { return int(math.Round(s.height)) }

// Toggle expands a collapsed section and collapses an expanded one.
func (s *Section) Toggle(onDone func()) {
	if s.expanded {
		s.Collapse(onDone)
	} else {
		s.Expand(onDone)
	}
}

// Expand is a no-op while a transition is running.
func (s *Section) Expand(onDone func()) {
	if s.animating {
		return
	}

	offset := 0
	if s.offset != nil {
		offset = s.offset()
	}

	s.expanded = true
	s.animating = true

	s.driver.Start(transition.Spec{
		Duration: s.duration,
		Easing:   s.easing,
		Step:     s.stepper(offset),
		Complete: func() {
			s.animating = false
			if onDone != nil {
				onDone()
			}
		},
	})
}

// Collapse is a no-op while a transition is running.
func (s *Section) Collapse(onDone func()) {
	if s.animating {
		return
	}

	offset := s.DescriptionHeight()

	s.expanded = false
	s.animating = true

	s.driver.Start(transition.Spec{
		Duration: s.duration,
		Easing:   s.easing,
		Reverse:  true,
		Step:     s.stepper(offset),
		Complete: func() {
			s.translate = 0
			s.height = 0
			s.animating = false
			if onDone != nil {
				onDone()
			}
		},
	})
}

func (s *Section) stepper(offset int) func(float64) {
	return func(pos float64) {
		s.translate = float64(offset) * pos
		s.height = float64(offset) * pos
	}
}

// Compose lays out the rows above the section, the section body and the
// description area for the current transition state.
func (s *Section) Compose(above, body, description string) string {
	var rows []string

	if above != "" {
		aboveRows := strings.Split(above, "\n")
		if k := s.Translate(); k > 0 {
			aboveRows = aboveRows[min(k, len(aboveRows)):]
		}
		rows = append(rows, aboveRows...)
	}

	rows = append(rows, strings.Split(body, "\n")...)

	if h := s.DescriptionHeight(); h > 0 {
		descRows := strings.Split(description, "\n")
		for i := 0; i < h; i++ {
			if i < len(descRows) {
				rows = append(rows, descRows[i])
			} else {
				rows = append(rows, "")
			}
		}
	}

	return strings.Join(rows, "\n")
}
