package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// Server exposes a Handler over WebSocket.
type Server struct {
	handler  Handler
	logger   *slog.Logger
	metrics  *Metrics
	upgrader websocket.Upgrader
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMetrics records request and connection metrics and serves them at
// /metrics.
func WithMetrics(m *Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// NewServer creates a server answering requests with handler.
func NewServer(handler Handler, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		handler: handler,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local development service
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeHTTP upgrades the connection and serves requests until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.connected(1)
	defer s.metrics.connected(-1)

	s.logger.Debug("client connected", "remote_addr", r.RemoteAddr)

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("client read failed", "error", err)
			}
			return
		}

		var payload model.Payload
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &payload); err != nil {
				s.logger.Warn("invalid request payload", "name", env.Name, "error", err)
				continue
			}
		}

		resp := s.handler.Handle(env.Name, payload)
		s.metrics.observe(env.Name, resp)
		s.logger.Info("request handled", "name", env.Name, "local_site", payload.LocalSite,
			"error", respError(resp))

		if env.ID == "" || resp == nil {
			continue
		}

		reply, err := newEnvelope(env.ID, env.Name, resp)
		if err != nil {
			s.logger.Warn("failed to encode reply", "error", err)
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("client write failed", "error", err)
			return
		}
	}
}

// Routes returns the HTTP routes of the server: the WebSocket endpoint at path
// and, when metrics are enabled, /metrics.
func (s *Server) Routes(path string) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get(path, s.ServeHTTP)
	if s.metrics != nil {
		router.Get("/metrics", s.metrics.Handler().ServeHTTP)
	}
	return router
}

// ListenAndServe serves on addr at path until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr, path string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(path),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("serving Remote View", "addr", addr, "path", path)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func respError(resp *model.Response) string {
	if resp == nil {
		return ""
	}
	return resp.Error
}
