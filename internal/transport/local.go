package transport

import (
	"context"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// DefaultDomain is the public domain sessions are published under.
const DefaultDomain = "livestyle.io"

// Error codes reported by Local.
const (
	ErrCodeNoSession = "ERVNOSESSION"
	ErrCodeInvalid   = "ERVINVALID"
	ErrCodeUnknown   = "ERVUNKNOWN"
)

// Local is an in-process session registry keyed by local site. It implements
// both Handler and Requester.
type Local struct {
	mu       sync.Mutex
	domain   string
	sessions map[string]*model.Response
	newID    func() string
}

// NewLocal creates a registry publishing sessions under domain.
func NewLocal(domain string) *Local {
	if domain == "" {
		domain = DefaultDomain
	}
	return &Local{
		domain:   domain,
		sessions: make(map[string]*model.Response),
		newID: func() string {
			id := ulid.Make().String()
			return strings.ToLower(id[len(id)-8:])
		},
	}
}

// Handle implements Handler.
func (l *Local) Handle(name string, payload model.Payload) *model.Response {
	l.mu.Lock()
	defer l.mu.Unlock()

	site := payload.LocalSite

	switch name {
	case model.RequestGetSession:
		if s, ok := l.sessions[site]; ok {
			copied := *s
			return &copied
		}
		return model.ErrorResponse("No active session for "+site, ErrCodeNoSession)

	case model.RequestCreateSession:
		if site == "" {
			return model.ErrorResponse("Local site is required", ErrCodeInvalid)
		}
		s, ok := l.sessions[site]
		if !ok {
			s = &model.Response{
				PublicID:  l.newID() + "." + l.domain,
				LocalSite: site,
			}
			l.sessions[site] = s
		}
		copied := *s
		return &copied

	case model.RequestCloseSession:
		delete(l.sessions, site)
		return &model.Response{LocalSite: site}

	default:
		return model.ErrorResponse("Unknown request "+name, ErrCodeUnknown)
	}
}

// Sessions returns the number of active sessions.
func (l *Local) Sessions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sessions)
}

// Request implements Requester.
func (l *Local) Request(ctx context.Context, name string, payload model.Payload) (*model.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.Handle(name, payload), nil
}

// Notify implements Requester.
func (l *Local) Notify(ctx context.Context, name string, payload model.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.Handle(name, payload)
	return nil
}
