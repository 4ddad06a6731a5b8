// Package tui provides the BubbleTea-based Remote View panel.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/rvpanel/internal/config"
	"github.com/jmylchreest/rvpanel/internal/expand"
	"github.com/jmylchreest/rvpanel/internal/model"
	"github.com/jmylchreest/rvpanel/internal/notify"
	"github.com/jmylchreest/rvpanel/internal/session"
	"github.com/jmylchreest/rvpanel/internal/transition"
	"github.com/jmylchreest/rvpanel/internal/transport"
)

// Default region contents, restored whenever a session is closed.
const (
	defaultTitle   = "Enable Remote View"
	defaultComment = "Get a public URL for the current page and open it on any device."

	description = "Remote View creates a publicly available URL that points to your " +
		"local web-site. Use it to test the site on mobile devices and virtual " +
		"machines, or share it with colleagues. The session stays active while " +
		"the LiveStyle app is running."
)

type frameMsg time.Time

type configReloadedMsg struct {
	cfg *config.Config
}

type desktopResultMsg struct {
	err error
}

// SessionNotifier is told about sessions as they become active.
type SessionNotifier interface {
	SessionStarted(resp *model.Response) error
}

// Options configures the panel model.
type Options struct {
	Config    *config.Config
	Page      session.Page
	Requester transport.Requester
	Logger    *slog.Logger
	Desktop   SessionNotifier  // nil disables desktop notifications
	Clock     func() time.Time // defaults to time.Now
}

// Model is the panel model. Its state is shared with the callbacks of the
// notification queue, the expand section and the session controller, so it
// is always used through a pointer.
type Model struct {
	cfg     *config.Config
	page    session.Page
	logger  *slog.Logger
	desktop SessionNotifier

	keys     KeyMap
	help     help.Model
	showHelp bool
	spinner  spinner.Model
	styles   styles

	sched   *transition.Scheduler
	queue   *notify.Queue
	section *expand.Section
	ctrl    *session.Controller

	pending       []tea.Cmd
	ticking       bool
	frameInterval time.Duration

	width    int
	lastView []string
}

// New creates the panel model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	timeout := cfg.Service.Timeout.Duration()
	if timeout <= 0 {
		timeout = transport.DefaultTimeout
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		cfg:           cfg,
		page:          opts.Page,
		logger:        logger,
		desktop:       opts.Desktop,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		spinner:       sp,
		styles:        newStyles(cfg.Theme),
		frameInterval: cfg.Animation.FrameInterval(),
	}
	m.spinner.Style = m.styles.spinner

	easing := transition.ByName(cfg.Animation.Easing)

	m.sched = transition.NewScheduler(clock)
	m.queue = notify.NewQueue(m.sched,
		notify.Text(defaultTitle),
		notify.Text(defaultComment),
		notify.WithDuration(cfg.Animation.Notify.Duration()),
		notify.WithEasing(easing),
	)
	m.section = expand.New(m.sched, m.headerHeight)
	m.section.SetDuration(cfg.Animation.Expand.Duration())
	m.section.SetEasing(easing)

	m.ctrl = session.New(session.Options{
		Transport: &teaTransport{
			requester: opts.Requester,
			timeout:   timeout,
			logger:    logger,
			enqueue:   m.enqueue,
		},
		Notifier:  m.queue,
		Tracker:   session.LogTracker{Logger: logger},
		Logger:    logger,
		Clock:     clock,
		Debounce:  cfg.Panel.Debounce.Duration(),
		LocalHost: cfg.Panel.LocalHost,
		OnSession: m.onSession,
	})

	m.setWidth(cfg.Panel.Width)
	return m
}

// Init mounts the panel and starts the spinner.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Mount(m.page)
	return tea.Batch(m.spinner.Tick, m.flush())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.setWidth(min(m.cfg.Panel.Width, msg.Width))

	case responseMsg:
		m.logger.Debug("response received", "name", msg.name, "failed", msg.resp.Failed())
		msg.callback(msg.resp)

	case frameMsg:
		m.ticking = false
		m.sched.Advance(time.Time(msg))

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case configReloadedMsg:
		m.cfg.Theme = msg.cfg.Theme
		m.styles = newStyles(msg.cfg.Theme)
		m.spinner.Style = m.styles.spinner

	case desktopResultMsg:
		if msg.err != nil {
			m.logger.Warn("desktop notification failed", "error", msg.err)
		}
	}

	return m, tea.Batch(cmd, m.flush())
}

// handleKey handles key presses.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSession()
	case key.Matches(msg, m.keys.LearnMore):
		m.section.Toggle(nil)
	case key.Matches(msg, m.keys.Collapse):
		if m.section.Expanded() {
			m.section.Collapse(nil)
		}
	}
	return nil
}

// handleMouse toggles the description on a click on "Learn more" or anywhere
// once expanded, and the session on a click on the toggle row.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if m.section.Expanded() {
		m.section.Toggle(nil)
		return
	}

	if msg.Y < 0 || msg.Y >= len(m.lastView) {
		return
	}
	row := ansi.Strip(m.lastView[msg.Y])

	switch {
	case strings.Contains(row, session.LearnMore):
		m.section.Toggle(nil)
	case msg.Y == m.headerHeight():
		m.toggleSession()
	}
}

// toggleSession flips the toggle unless it is disabled.
func (m *Model) toggleSession() {
	if !m.ctrl.Available() || m.ctrl.Busy() {
		return
	}
	m.ctrl.Toggle(!m.ctrl.Checked())
}

func (m *Model) onSession(resp *model.Response) {
	if m.desktop == nil || !m.cfg.Desktop.Notify {
		return
	}
	d := m.desktop
	m.enqueue(func() tea.Msg {
		return desktopResultMsg{err: d.SessionStarted(resp)}
	})
}

func (m *Model) enqueue(cmd tea.Cmd) {
	m.pending = append(m.pending, cmd)
}

// flush returns the commands queued since the last call, plus a frame tick if
// a transition is running and no tick is outstanding.
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil

	if m.sched.Active() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}

	return tea.Batch(cmds...)
}

func (m *Model) setWidth(w int) {
	if w <= 0 {
		w = config.DefaultPanelWidth
	}
	m.width = w
	m.queue.SetWidth(w)
	m.help.Width = w
}

// Controller returns the session controller.
func (m *Model) Controller() *session.Controller {
	return m.ctrl
}

// View renders the panel.
func (m *Model) View() string {
	ctx := notify.RenderContext{Spinner: m.spinner.View()}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.viewToggle(),
		m.styles.title.Render(m.queue.Title.View(ctx)),
		m.styles.comment.Render(m.queue.Comment.View(ctx)),
	)

	desc := m.styles.description.Width(m.width).Render(description)

	out := m.section.Compose(m.viewHeader(), body, desc) + "\n\n" + m.viewFooter()
	m.lastView = strings.Split(out, "\n")
	return out
}

func (m *Model) viewHeader() string {
	page := ansi.Truncate(m.page.URL, m.width, "…")
	return m.styles.header.Render("LiveStyle") + "\n" +
		m.styles.muted.Render(page) + "\n"
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.viewHeader())
}

func (m *Model) viewToggle() string {
	box := "[ ]"
	if m.ctrl.Checked() {
		box = "[x]"
	}

	switch {
	case !m.ctrl.Available():
		return m.styles.muted.Render("[-] Remote View")
	case m.ctrl.Busy():
		return m.styles.muted.Render(box + " Remote View")
	default:
		return m.styles.toggle.Render(box) + " Remote View"
	}
}

func (m *Model) viewFooter() string {
	var b strings.Builder

	if resp, since := m.ctrl.Session(); resp != nil {
		b.WriteString(m.styles.muted.Render("Session established " + humanize.Time(since)))
		b.WriteString("\n")
	}

	m.help.ShowAll = m.showHelp
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
