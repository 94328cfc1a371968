// Package errs defines the small set of error kinds shared by the table
// and grid packages, per the error handling design in §7 of the spec.
package errs

import "fmt"

// Kind classifies a core-engine failure so callers can react with
// errors.As without parsing message text.
type Kind int

const (
	// InvalidArgument covers out-of-range col/row, a malformed cell-patch
	// mask, or an attempt to touch the dead header corner.
	InvalidArgument Kind = iota + 1
	// InvalidState covers a mutation attempted against an owner-data grid,
	// or attaching a non-nil table to one.
	InvalidState
	// OutOfMemory covers allocation failure during resize or region
	// combination.
	OutOfMemory
	// Cancelled covers a host veto of a *Changing notification.
	Cancelled
	// NotSupported covers an operation that requires an attached table
	// when none is attached.
	NotSupported
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	case OutOfMemory:
		return "out of memory"
	case Cancelled:
		return "cancelled"
	case NotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by the core packages. Use
// errors.As(err, &*Error) to recover the Kind.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "table.SetCell"
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// New builds an *Error for the given op/kind with a formatted message.
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind. It lets callers write
// errs.Is(err, errs.Cancelled) without importing errors.As boilerplate.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ee, ok := err.(*Error); ok {
			e = ee
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
