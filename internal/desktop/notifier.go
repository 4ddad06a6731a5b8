// Package desktop sends freedesktop notifications over the D-Bus session bus.
package desktop

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/rvpanel/internal/model"
)

const (
	// Interface is the notification interface name.
	Interface = "org.freedesktop.Notifications"
	// Path is the notification object path.
	Path = "/org/freedesktop/Notifications"
)

// Urgency levels from the freedesktop notification specification.
const (
	UrgencyLow      byte = 0
	UrgencyNormal   byte = 1
	UrgencyCritical byte = 2
)

// Notifier posts desktop notifications. The session bus is connected on first
// use.
type Notifier struct {
	appName string
	logger  *slog.Logger

	mu       sync.Mutex
	conn     *dbus.Conn
	lastID   uint32
	connFunc func() (*dbus.Conn, error)
}

// NewNotifier creates a notifier posting as appName.
func NewNotifier(appName string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		appName:  appName,
		logger:   logger,
		connFunc: dbus.SessionBus,
	}
}

// Notify posts a notification, replacing the one this notifier posted last.
func (n *Notifier) Notify(summary, body string, urgency byte) (uint32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		conn, err := n.connFunc()
		if err != nil {
			return 0, fmt.Errorf("failed to connect to session bus: %w", err)
		}
		n.conn = conn
	}

	obj := n.conn.Object(Interface, dbus.ObjectPath(Path))
	call := obj.Call(Interface+".Notify", 0,
		n.appName,
		n.lastID,
		"",
		summary,
		body,
		[]string{},
		hints(urgency),
		int32(-1),
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("invalid notify reply: %w", err)
	}
	n.lastID = id

	n.logger.Debug("desktop notification sent", "id", id, "summary", summary)
	return id, nil
}

// SessionStarted posts the notification for a newly active session.
func (n *Notifier) SessionStarted(resp *model.Response) error {
	summary, body := SessionText(resp)
	_, err := n.Notify(summary, body, UrgencyNormal)
	return err
}

// SessionText returns the summary and body announcing resp.
func SessionText(resp *model.Response) (string, string) {
	return "Remote View enabled",
		fmt.Sprintf("%s is available at %s", resp.LocalSite, resp.PublicURL())
}

func hints(urgency byte) map[string]dbus.Variant {
	if urgency > UrgencyCritical {
		urgency = UrgencyNormal
	}
	return map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(urgency),
		"category": dbus.MakeVariant("network"),
	}
}
