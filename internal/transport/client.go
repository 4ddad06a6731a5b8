package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// DefaultURL is the endpoint of the LiveStyle app.
const DefaultURL = "ws://127.0.0.1:54000/livestyle"

// DefaultTimeout bounds a single request when the caller's context has no
// deadline.
const DefaultTimeout = 5 * time.Second

// Client is a WebSocket Requester. The connection is dialed on first use and
// redialed after it drops.
type Client struct {
	url     string
	timeout time.Duration
	dialer  *websocket.Dialer
	logger  *slog.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	waiting map[string]chan *model.Response

	writeMu sync.Mutex
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the service at url.
func NewClient(url string, opts ...ClientOption) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 2 * time.Second,
		},
		logger:  slog.Default(),
		waiting: make(map[string]chan *model.Response),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request implements Requester.
func (c *Client) Request(ctx context.Context, name string, payload model.Payload) (*model.Response, error) {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	id := ulid.Make().String()
	env, err := newEnvelope(id, name, payload)
	if err != nil {
		return nil, err
	}

	ch := make(chan *model.Response, 1)
	c.mu.Lock()
	c.waiting[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.waiting, id)
		c.mu.Unlock()
	}()

	if err := c.write(conn, env); err != nil {
		return nil, err
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, ErrClosed
		}
		return resp, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// Notify implements Requester.
func (c *Client) Notify(ctx context.Context, name string, payload model.Payload) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	env, err := newEnvelope("", name, payload)
	if err != nil {
		return err
	}
	return c.write(conn, env)
}

// Close closes the connection. Pending requests fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (c *Client) connect(ctx context.Context) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn, nil
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	c.conn = conn
	c.logger.Debug("connected to LiveStyle app", "url", c.url)

	go c.readLoop(conn)
	return conn, nil
}

func (c *Client) write(conn *websocket.Conn, env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.WriteJSON(env); err != nil {
		c.drop(conn)
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return nil
}

// readLoop dispatches replies to their waiting requests until the connection
// fails.
func (c *Client) readLoop(conn *websocket.Conn) {
	defer c.drop(conn)

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("connection read failed", "error", err)
			}
			return
		}
		if env.ID == "" {
			continue
		}

		var resp model.Response
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				c.logger.Warn("invalid reply", "name", env.Name, "error", err)
				resp = model.Response{Error: "invalid reply from LiveStyle app"}
			}
		}

		c.mu.Lock()
		ch, ok := c.waiting[env.ID]
		delete(c.waiting, env.ID)
		c.mu.Unlock()
		if ok {
			ch <- &resp
		}
	}
}

// drop forgets conn and fails every request waiting on it.
func (c *Client) drop(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != conn {
		return
	}
	c.conn = nil
	_ = conn.Close()

	for id, ch := range c.waiting {
		close(ch)
		delete(c.waiting, id)
	}
}
