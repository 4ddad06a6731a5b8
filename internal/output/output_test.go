package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/rvpanel/internal/model"
)

func activeStatus() Status {
	resp := &model.Response{PublicID: "abc123.livestyle.io", LocalSite: "http://example.com"}
	return NewStatus("http://example.com/a", "http://example.com",
		"http://abc123.livestyle.io/a", resp, time.Now().Add(-time.Minute))
}

func TestNewStatus(t *testing.T) {
	s := activeStatus()
	assert.True(t, s.Active)
	assert.Equal(t, "http://abc123.livestyle.io", s.PublicURL)
	assert.Equal(t, "http://abc123.livestyle.io/a", s.PublicHref)

	failed := NewStatus("p", "o", "", model.ErrorResponse("nope", "E1"), time.Now())
	assert.False(t, failed.Active)
	assert.Equal(t, "nope", failed.Error)
	assert.Equal(t, "E1", failed.ErrorCode)
	assert.Empty(t, failed.PublicHref)

	missing := NewStatus("p", "o", "", nil, time.Now())
	assert.Equal(t, "no response", missing.Error)
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PlainFormatter{}.Format(&buf, activeStatus()))
	assert.Contains(t, buf.String(), "http://example.com -> http://abc123.livestyle.io")
	assert.Contains(t, buf.String(), "1 minute ago")

	buf.Reset()
	inactive := NewStatus("p", "http://example.com", "", model.ErrorResponse("down", "E2"), time.Now())
	require.NoError(t, PlainFormatter{}.Format(&buf, inactive))
	assert.Contains(t, buf.String(), "no active session (down (E2))")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, activeStatus()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["active"])
	assert.Equal(t, "http://abc123.livestyle.io", decoded["public_url"])
	assert.NotContains(t, decoded, "error")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, activeStatus()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "http://example.com", decoded["local_site"])
}

func TestNewFormatter_DefaultsToPlain(t *testing.T) {
	assert.IsType(t, PlainFormatter{}, NewFormatter("bogus"))
	assert.IsType(t, PlainFormatter{}, NewFormatter(FormatPlain))
}
