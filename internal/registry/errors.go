package registry

import (
	"errors"
	"strings"
)

// Error kinds. Match with errors.Is(err, registry.ErrUnknownPipeline).
var (
	ErrUnknownPipeline = errors.New("unknown pipeline")
	ErrEmptyRegistry   = errors.New("registry is empty")
	ErrFitFailure      = errors.New("fit failed")
	ErrPersistence     = errors.New("persistence failure")
	ErrInvalidInput    = errors.New("invalid input")
)

// Snapshot decoding failures; always wrapped in an ErrPersistence *Error.
var (
	ErrSnapshotCorrupt      = errors.New("snapshot is corrupt")
	ErrSnapshotIncompatible = errors.New("snapshot is incompatible")
)

// Error is returned by every Service operation that fails for a reason
// other than context cancellation.
type Error struct {
	Kind     error  // one of the Err* kinds above
	Op       string // fit, transform, load, pipelines
	Pipeline string // empty unless one pipeline is at fault
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("registry ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Pipeline != "" {
		b.WriteString(" (")
		b.WriteString(e.Pipeline)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newErr(kind error, op, pipeline string, err error) *Error {
	return &Error{Kind: kind, Op: op, Pipeline: pipeline, Err: err}
}
