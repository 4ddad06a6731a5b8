package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// PlainFormatter writes a short human-readable summary.
type PlainFormatter struct{}

// Format implements Formatter.
func (PlainFormatter) Format(w io.Writer, s Status) error {
	if !s.Active {
		reason := s.Error
		if s.ErrorCode != "" {
			reason += " (" + s.ErrorCode + ")"
		}
		_, err := fmt.Fprintf(w, "%s: no active session (%s), checked %s\n",
			s.Origin, reason, humanize.Time(s.CheckedAt))
		return err
	}

	_, err := fmt.Fprintf(w, "%s -> %s\n  open: %s\n  checked %s\n",
		s.LocalSite, s.PublicURL, s.PublicHref, humanize.Time(s.CheckedAt))
	return err
}

// JSONFormatter writes indented JSON.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(w io.Writer, s Status) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// YAMLFormatter writes YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (YAMLFormatter) Format(w io.Writer, s Status) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return err
	}
	return encoder.Close()
}
