// Package notify sequences animated status messages inside fixed panel regions.
//
// A Queue owns two independently sequenced regions, title and comment. Each
// region shows one piece of content at a time; replacing it slides the old
// content out and the new content in. While a slide is running, further
// replacements for that region are queued and played in order once it ends.
package notify

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderContext carries the per-frame values content is rendered with.
type RenderContext struct {
	Width   int    // wrap width in cells, 0 = no wrapping
	Spinner string // current frame of the busy indicator
}

// Content is something a region can show.
type Content interface {
	Render(ctx RenderContext) string
}

// Text is static content.
type Text string

// Render implements Content.
func (t Text) Render(ctx RenderContext) string {
	return wrap(string(t), ctx.Width)
}

// Spinner is a label followed by the busy indicator.
type Spinner struct {
	Label string
}

// Render implements Content.
func (s Spinner) Render(ctx RenderContext) string {
	if ctx.Spinner == "" {
		return wrap(s.Label, ctx.Width)
	}
	return wrap(s.Label+" "+ctx.Spinner, ctx.Width)
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// height returns the number of rows c occupies when rendered with ctx.
func height(c Content, ctx RenderContext) int {
	if c == nil {
		return 0
	}
	return lipgloss.Height(c.Render(ctx))
}

func lines(c Content, ctx RenderContext) []string {
	if c == nil {
		return nil
	}
	return strings.Split(c.Render(ctx), "\n")
}
