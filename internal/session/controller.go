// Package session drives the Remote View toggle: it checks for an existing
// session when the panel opens and creates or closes sessions as the user
// flips the toggle, reporting every outcome as a panel notification.
package session

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jmylchreest/rvpanel/internal/model"
	"github.com/jmylchreest/rvpanel/internal/notify"
)

// DefaultDebounce is the minimum interval between accepted toggle actions.
const DefaultDebounce = 500 * time.Millisecond

// State is the session state of the panel.
type State int

const (
	StateUnknown State = iota
	StateUnavailable
	StateOff
	StateConnecting
	StateOn
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateUnavailable:
		return "unavailable"
	case StateOff:
		return "off"
	case StateConnecting:
		return "connecting"
	case StateOn:
		return "on"
	default:
		return "invalid"
	}
}

// Transport delivers requests to the background service. If callback is not
// nil it is invoked exactly once, with nil when no response arrived.
type Transport interface {
	Send(name string, payload model.Payload, callback func(*model.Response))
}

// Notifier shows panel notifications.
type Notifier interface {
	Display(msg notify.Message)
}

// Page describes the page the panel was opened for.
type Page struct {
	URL    string
	Origin string // explicit origin; derived from URL when empty
}

// Options configures a Controller.
type Options struct {
	Transport Transport
	Notifier  Notifier
	Tracker   Tracker
	Logger    *slog.Logger
	Clock     func() time.Time
	Debounce  time.Duration
	LocalHost string

	// OnSession is called whenever a session becomes active.
	OnSession func(resp *model.Response)
}

// Controller owns the toggle state and the handshake with the background
// service. It is not safe for concurrent use: every method and every transport
// callback must run on the UI goroutine.
type Controller struct {
	transport Transport
	notifier  Notifier
	tracker   Tracker
	logger    *slog.Logger
	clock     func() time.Time
	debounce  time.Duration
	localHost string
	onSession func(*model.Response)

	state    State
	scheme   string
	origin   string
	localURL string

	enabled bool
	checked bool
	busy    bool
	limiter *rate.Limiter

	session      *model.Response
	sessionSince time.Time
}

// New creates a controller in StateUnknown.
func New(opts Options) *Controller {
	c := &Controller{
		transport: opts.Transport,
		notifier:  opts.Notifier,
		tracker:   opts.Tracker,
		logger:    opts.Logger,
		clock:     opts.Clock,
		debounce:  opts.Debounce,
		localHost: opts.LocalHost,
		onSession: opts.OnSession,
	}
	if c.tracker == nil {
		c.tracker = nopTracker{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.debounce == 0 {
		c.debounce = DefaultDebounce
	}
	c.limiter = rate.NewLimiter(rate.Every(c.debounce), 1)
	if c.localHost == "" {
		c.localHost = DefaultLocalHost
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Enabled returns the last confirmed toggle intent.
func (c *Controller) Enabled() bool { return c.enabled }

// Checked returns the presented state of the toggle.
func (c *Controller) Checked() bool { return c.checked }

// Busy reports whether the toggle is disabled while a round trip is pending.
func (c *Controller) Busy() bool { return c.busy }

// Available reports whether Remote View can be used for the page.
func (c *Controller) Available() bool { return c.state != StateUnavailable }

// Origin returns the origin the sessions are keyed by.
func (c *Controller) Origin() string { return c.origin }

// LocalURL returns the normalized local page URL.
func (c *Controller) LocalURL() string { return c.localURL }

// Session returns the active session and when it was established.
func (c *Controller) Session() (*model.Response, time.Time) {
	return c.session, c.sessionSince
}

// Mount validates the page and queries for an existing session.
func (c *Controller) Mount(page Page) {
	u, err := url.Parse(page.URL)
	if err == nil {
		c.scheme = strings.ToLower(u.Scheme)
	}

	if err != nil || !SupportedScheme(c.scheme) {
		c.state = StateUnavailable
		c.notifier.Display(MessageUnavailable)
		c.tracker.Track("RV Error", "unavailable", c.scheme+":")
		return
	}

	origin := page.Origin
	if origin == "" {
		origin = Origin(u)
	}
	if origin == "" {
		c.state = StateUnavailable
		c.notifier.Display(MessageNoOrigin)
		c.tracker.Track("RV Error", "no-origin", page.URL)
		return
	}

	c.origin = origin
	c.localURL = LocalURL(origin, page.URL, c.localHost)

	c.busy = true
	c.transport.Send(model.RequestGetSession, c.payload(), func(resp *model.Response) {
		c.busy = false
		if resp.Failed() {
			c.state = StateOff
			c.logger.Debug("no active session", "origin", c.origin, "error", resp.Err())
			return
		}

		c.enabled = true
		c.checked = true
		c.state = StateOn
		c.activate(resp)
		c.notifier.Display(ConnectedMessage(resp, c.localURL))
	})
}

// Toggle handles a request to change the toggle to checked. Requests that
// arrive within the debounce interval of the previous accepted one, or that
// match the confirmed state, are ignored.
func (c *Controller) Toggle(checked bool) {
	if c.state == StateUnavailable || c.busy {
		return
	}

	if checked == c.enabled || !c.limiter.AllowN(c.clock(), 1) {
		return
	}

	c.enabled = checked
	c.checked = checked

	if checked {
		c.create()
		return
	}

	c.transport.Send(model.RequestCloseSession, c.payload(), nil)
	c.state = StateOff
	c.session = nil
	c.notifier.Display(MessageReset)
}

func (c *Controller) create() {
	c.busy = true
	c.state = StateConnecting
	c.notifier.Display(MessageConnecting)

	c.transport.Send(model.RequestCreateSession, c.payload(), func(resp *model.Response) {
		c.busy = false
		if resp.Failed() {
			c.enabled = false
			c.checked = false
			c.state = StateOff
			c.logger.Warn("failed to create session", "origin", c.origin, "error", resp.Err())
			c.notifier.Display(ErrorMessage(resp))
			return
		}

		c.state = StateOn
		c.activate(resp)
		c.notifier.Display(SessionMessage(resp, c.localURL))
		c.tracker.Track("RV", "new-session", c.scheme+":")
	})
}

func (c *Controller) activate(resp *model.Response) {
	c.session = resp
	c.sessionSince = c.clock()
	if c.onSession != nil {
		c.onSession(resp)
	}
}

func (c *Controller) payload() model.Payload {
	return model.Payload{LocalSite: c.origin}
}
