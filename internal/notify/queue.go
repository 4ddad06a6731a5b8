package notify

import (
	"time"

	"github.com/jmylchreest/rvpanel/internal/transition"
)

// Option configures a Queue.
type Option func(*Queue)

// WithDuration sets the slide duration of both regions.
func WithDuration(d time.Duration) Option {
	return func(q *Queue) {
		q.Title.duration = d
		q.Comment.duration = d
	}
}

// WithEasing sets the slide easing of both regions.
func WithEasing(e transition.Easing) Option {
	return func(q *Queue) {
		q.Title.easing = e
		q.Comment.easing = e
	}
}

// Queue routes messages to the title and comment regions.
type Queue struct {
	Title   *Region
	Comment *Region
}

// NewQueue creates a queue whose regions start with, and reset to, the given
// default contents.
func NewQueue(driver transition.Driver, title, comment Content, opts ...Option) *Queue {
	q := &Queue{
		Title:   NewRegion("title", title, driver),
		Comment: NewRegion("comment", comment, driver),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Display applies msg to both regions. Regions whose field is Keep are not
// touched.
func (q *Queue) Display(msg Message) {
	apply(q.Title, msg.Title)
	apply(q.Comment, msg.Comment)
}

// DisplayText shows s in the title region and leaves the comment unchanged.
func (q *Queue) DisplayText(s string) {
	q.Display(Plain(s))
}

// SetWidth sets the wrap width of both regions.
func (q *Queue) SetWidth(w int) {
	q.Title.SetWidth(w)
	q.Comment.SetWidth(w)
}

// Animating reports whether either region is sliding.
func (q *Queue) Animating() bool {
	return q.Title.Animating() || q.Comment.Animating()
}

func apply(r *Region, f Field) {
	switch {
	case f.IsReset():
		r.Replace(nil, nil)
	case f.Changes():
		r.Replace(f.Content(), nil)
	}
}
