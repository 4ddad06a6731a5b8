// Package transport carries Remote View requests to the LiveStyle background
// service.
//
// Requests travel as JSON envelopes over a WebSocket. Each envelope that
// expects a reply carries a ULID; the service answers with an envelope bearing
// the same ID. Fire-and-forget requests are sent without an ID.
//
// The package also provides Local, an in-process session registry with the
// same semantics as the service, and Server, which exposes any Handler over
// WebSocket for development.
package transport
