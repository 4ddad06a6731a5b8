// Package output provides formatters for Remote View session status.
package output

import (
	"io"
	"time"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// Status is the outcome of a session query for one page.
type Status struct {
	Page       string    `json:"page" yaml:"page"`
	Origin     string    `json:"origin" yaml:"origin"`
	Active     bool      `json:"active" yaml:"active"`
	PublicURL  string    `json:"public_url,omitempty" yaml:"public_url,omitempty"`
	PublicHref string    `json:"public_href,omitempty" yaml:"public_href,omitempty"`
	LocalSite  string    `json:"local_site,omitempty" yaml:"local_site,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCode  string    `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	CheckedAt  time.Time `json:"checked_at" yaml:"checked_at"`
}

// NewStatus builds a Status from a query response. publicHref is the link to
// the page through the session.
func NewStatus(page, origin, publicHref string, resp *model.Response, checkedAt time.Time) Status {
	s := Status{
		Page:      page,
		Origin:    origin,
		CheckedAt: checkedAt,
	}
	switch {
	case resp == nil:
		s.Error = "no response"
	case resp.Failed():
		s.Error = resp.Error
		s.ErrorCode = resp.ErrorCode
	default:
		s.Active = true
		s.PublicURL = resp.PublicURL()
		s.PublicHref = publicHref
		s.LocalSite = resp.LocalSite
	}
	return s
}

// Formatter formats session status for output.
type Formatter interface {
	Format(w io.Writer, s Status) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return JSONFormatter{}
	case FormatYAML:
		return YAMLFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return PlainFormatter{}
	}
}
