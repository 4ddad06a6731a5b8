package desktop

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/rvpanel/internal/model"
)

func TestSessionText(t *testing.T) {
	summary, body := SessionText(&model.Response{PublicID: "abc.livestyle.io", LocalSite: "http://example.com"})
	assert.Equal(t, "Remote View enabled", summary)
	assert.Equal(t, "http://example.com is available at http://abc.livestyle.io", body)
}

func TestHints(t *testing.T) {
	tests := []struct {
		name     string
		urgency  byte
		expected byte
	}{
		{"low", UrgencyLow, UrgencyLow},
		{"normal", UrgencyNormal, UrgencyNormal},
		{"critical", UrgencyCritical, UrgencyCritical},
		{"out of range", 7, UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hints(tt.urgency)
			assert.Equal(t, tt.expected, h["urgency"].Value())
			assert.Equal(t, "network", h["category"].Value())
		})
	}
}

func TestNotify_NoBus(t *testing.T) {
	n := NewNotifier("rvpanel", nil)
	n.connFunc = func() (*dbus.Conn, error) { return nil, errors.New("no bus") }

	_, err := n.Notify("s", "b", UrgencyNormal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bus")
}
