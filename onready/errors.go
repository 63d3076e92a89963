package onready

import "fmt"

// What went wrong with an `OnReady` container.
//
// All of these are programming errors, reported by panicking with an `*Error`.
type ErrorKind int

const (
	// `Init()` was called twice.
	ErrDoubleInit ErrorKind = iota + 1
	// `Init()` was called on a container built with `New()`.
	ErrInitOnAuto
	// A manual container was accessed before `Init()`.
	ErrManualUninitialized
	// An automatic container was accessed before the lifecycle driver reached it.
	ErrAutoUninitialized
	// The lifecycle driver triggered the same container twice.
	ErrDoubleTrigger
	// `New()` was called with a nil initializer.
	ErrNilInitializer
	// A container was copied by value after its first use.
	ErrCopied
)

func (kind ErrorKind) message() string {
	switch kind {
	case ErrDoubleInit:
		return "already initialized; did you call Init() more than once?"
	case ErrInitOnAuto:
		return "cannot call Init() on auto-initialized OnReady objects"
	case ErrManualUninitialized:
		return "OnReady manual value uninitialized, did you call Init()?"
	case ErrAutoUninitialized:
		return "OnReady automatic value uninitialized, is only available in Ready()"
	case ErrDoubleTrigger:
		return "OnReady object already initialized"
	case ErrNilInitializer:
		return "OnReady initializer must not be nil, use Manual() for manual initialization"
	case ErrCopied:
		return "OnReady object copied by value after first use, share it through Ptr() instead"
	default:
		return fmt.Sprintf("unknown error %d", int(kind))
	}
}

// The panic value raised on misuse of an `OnReady` container.
type Error struct {
	Kind ErrorKind

	// The type parameter of the container, e.g. "*game.Weapon".
	Type string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (OnReady[%s])", e.Kind.message(), e.Type)
}

// Two `*Error` match if they have the same kind, regardless of type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var _ error = &Error{} //nolint:exhaustruct
