// Package peer implements the resilient cross-service invocation client:
// one bounded-timeout HTTP call per invocation, a typed outcome classifier,
// and the two failure policies (degrade and escalate) shared by every
// service in the system.
package peer

import "encoding/json"

// Kind classifies the result of a single peer call attempt.
type Kind string

const (
	// KindSuccess is a 2xx response with a well-formed envelope.
	KindSuccess Kind = "success"
	// KindNotFound is the canonical HTTP 404 signal.
	KindNotFound Kind = "not_found"
	// KindTimeout means the call exceeded its timeout budget.
	KindTimeout Kind = "timeout"
	// KindTransportError is any other network or connection failure.
	KindTransportError Kind = "transport_error"
	// KindUnexpected covers other non-2xx statuses and absent or
	// malformed envelopes.
	KindUnexpected Kind = "unexpected"
)

// envelope is the standard response wrapper used by all peer services.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Code    int             `json:"code,omitempty"`
}

// Outcome is the tagged result of one peer invocation. It is always a
// return value, never control flow inside the client; the caller's policy
// decides whether a non-success outcome becomes an error or an absence.
type Outcome struct {
	Kind   Kind
	Data   json.RawMessage // payload, valid only when Kind is KindSuccess
	Status int             // HTTP status, zero when no response was received
	Err    error           // underlying cause for timeout/transport/unexpected
}

// OK reports whether the invocation succeeded.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}
