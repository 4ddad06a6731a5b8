package session

import "log/slog"

// Tracker records usage events.
type Tracker interface {
	Track(category, action, label string)
}

// LogTracker writes usage events to a structured logger.
type LogTracker struct {
	Logger *slog.Logger
}

// Track implements Tracker.
func (t LogTracker) Track(category, action, label string) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("track", "category", category, "action", action, "label", label)
}

type nopTracker struct{}

func (nopTracker) Track(string, string, string) {}
