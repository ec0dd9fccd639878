package errs

import "errors"

// Kind classifies a request failure. Kinds are part of the API contract:
// every error response carries one in a stable "kind" field.
type Kind string

const (
	InvalidRequest        Kind = "InvalidRequest"
	ParseError            Kind = "ParseError"
	SourceNotFound        Kind = "SourceNotFound"
	SourceUnavailable     Kind = "SourceUnavailable"
	DestinationWriteError Kind = "DestinationWriteError"
	SinkWriteError        Kind = "SinkWriteError"
)

// Error is a kind-tagged error. All failures surfaced to HTTP callers are
// wrapped in one; errors without a kind map to a generic 500.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind carried by err, or "" if err is untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
