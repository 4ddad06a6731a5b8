package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/rvpanel/internal/model"
	"github.com/jmylchreest/rvpanel/internal/transport"
)

// responseMsg carries a handshake reply back onto the UI goroutine.
type responseMsg struct {
	name     string
	resp     *model.Response
	callback func(*model.Response)
}

// teaTransport adapts a blocking Requester to the controller's callback
// transport. Requests run as commands; replies are delivered as responseMsg and
// their callbacks invoked from Update.
type teaTransport struct {
	requester transport.Requester
	timeout   time.Duration
	logger    *slog.Logger
	enqueue   func(tea.Cmd)
}

// Send implements session.Transport.
func (t *teaTransport) Send(name string, payload model.Payload, callback func(*model.Response)) {
	requester, timeout, logger := t.requester, t.timeout, t.logger

	if callback == nil {
		t.enqueue(func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := requester.Notify(ctx, name, payload); err != nil {
				logger.Warn("request failed", "name", name, "error", err)
			}
			return nil
		})
		return
	}

	t.enqueue(func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := requester.Request(ctx, name, payload)
		if err != nil {
			logger.Debug("request failed", "name", name, "error", err)
			resp = transport.ResponseFromError(err)
		}
		return responseMsg{name: name, resp: resp, callback: callback}
	})
}
