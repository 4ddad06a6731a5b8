// Package model defines the wire types exchanged with the LiveStyle background
// service for Remote View sessions.
package model

import (
	"fmt"
)

// Request names understood by the background service.
const (
	RequestGetSession    = "rv-get-session"
	RequestCreateSession = "rv-create-session"
	RequestCloseSession  = "rv-close-session"
)

// ErrCodeNoConnection is reported when the LiveStyle app is not reachable.
const ErrCodeNoConnection = "ERVNOCONNECTION"

// Payload is the body of every Remote View request.
type Payload struct {
	LocalSite string `json:"localSite" yaml:"local_site"`
}

// Response is the reply to a Remote View request.
// A successful reply carries PublicID and LocalSite; a failed one carries Error
// and optionally ErrorCode.
type Response struct {
	PublicID  string `json:"publicId,omitempty" yaml:"public_id,omitempty"`
	LocalSite string `json:"localSite,omitempty" yaml:"local_site,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty" yaml:"error_code,omitempty"`
}

// Failed reports whether the response describes an error.
// A nil response counts as a failure.
func (r *Response) Failed() bool {
	return r == nil || r.Error != ""
}

// Err converts a failed response into an error, or nil on success.
func (r *Response) Err() error {
	if r == nil {
		return fmt.Errorf("no response")
	}
	if r.Error == "" {
		return nil
	}
	if r.ErrorCode != "" {
		return fmt.Errorf("%s (%s)", r.Error, r.ErrorCode)
	}
	return fmt.Errorf("%s", r.Error)
}

// ErrorResponse builds a failed response.
func ErrorResponse(message, code string) *Response {
	return &Response{Error: message, ErrorCode: code}
}

// PublicURL returns the bare public address of the session.
func (r *Response) PublicURL() string {
	return "http://" + r.PublicID
}

// IsKnownRequest reports whether name is one of the Remote View request names.
func IsKnownRequest(name string) bool {
	switch name {
	case RequestGetSession, RequestCreateSession, RequestCloseSession:
		return true
	default:
		return false
	}
}
