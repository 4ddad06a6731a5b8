package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// Transport errors.
var (
	ErrNoConnection = errors.New("unable to connect to LiveStyle app")
	ErrClosed       = errors.New("connection to LiveStyle app closed")
	ErrTimeout      = errors.New("LiveStyle app did not respond in time")
)

// Envelope is the wire frame of a request or reply.
type Envelope struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Requester performs Remote View requests.
type Requester interface {
	// Request sends a request and waits for its reply.
	Request(ctx context.Context, name string, payload model.Payload) (*model.Response, error)
	// Notify sends a request without waiting for a reply.
	Notify(ctx context.Context, name string, payload model.Payload) error
}

// Handler answers Remote View requests.
type Handler interface {
	Handle(name string, payload model.Payload) *model.Response
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(name string, payload model.Payload) *model.Response

// Handle implements Handler.
func (f HandlerFunc) Handle(name string, payload model.Payload) *model.Response {
	return f(name, payload)
}

// ResponseFromError converts a transport error into the response the panel
// should see. Connection failures carry model.ErrCodeNoConnection; a timeout
// yields nil, the same as no response at all.
func ResponseFromError(err error) *model.Response {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoConnection), errors.Is(err, ErrClosed):
		return model.ErrorResponse(err.Error(), model.ErrCodeNoConnection)
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return nil
	default:
		return model.ErrorResponse(err.Error(), "")
	}
}

func newEnvelope(id, name string, v any) (Envelope, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return Envelope{ID: id, Name: name, Data: data}, nil
}
