// Package faults defines the failure kinds the persistence layer reports to
// the request boundary. Every fault propagates as-is; nothing in this layer
// retries or recovers.
package faults

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Validation means a required field was missing or malformed on create.
	Validation Kind = iota + 1
	// Conflict means a caller-supplied identifier already exists.
	Conflict
	// Decode means a stored sequence column holds text that no longer parses.
	Decode
	// Unauthorized means the credential pair matched no active staff record.
	Unauthorized
)

type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func Validationf(format string, args ...interface{}) error {
	return &Fault{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Fault{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Decodef wraps the underlying parse error so the corruption detail stays
// available to logs without shaping the client response.
func Decodef(err error, format string, args ...interface{}) error {
	return &Fault{Kind: Decode, Message: fmt.Sprintf(format, args...), Err: err}
}

func Unauthorizedf(format string, args ...interface{}) error {
	return &Fault{Kind: Unauthorized, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the fault kind carried by err, or 0 for plain errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
