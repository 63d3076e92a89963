package initialized

import "fmt"

// A witness type used to detect values that were not built by their constructor.
//
// In Go, the zero value of any struct is always available:
//
//	var field onready.OnReady[int]
//
//	field := onready.OnReady[int]{}
//
// Such a value pretends to be a container (or a tag, or a handle) but never
// went through `New()`/`Manual()`/`Of()`, so none of its guarantees hold.
//
// Operation manual:
// - add a field `witness IsInitialized` in your struct
// - call `initialized.Make()` from your constructor
// - call `self.witness.Assert("TypeName")` whenever you access data from your struct.
//
// Result: a panic with a `*NotConstructedError` as soon as a zero value is used.
type IsInitialized struct {
	isInitialized bool
}

// Create a `IsInitialized`.
func Make() IsInitialized {
	return IsInitialized{
		isInitialized: true,
	}
}

// Assert that this `IsInitialized` has been initialized, i.e. if it was created
// by calling `initialized.Make()`.
//
// Panics with a `*NotConstructedError` naming `owner` if it wasn't.
func (witness IsInitialized) Assert(owner string) {
	if !witness.isInitialized {
		panic(&NotConstructedError{Owner: owner})
	}
}

// The panic value raised by `Assert`.
type NotConstructedError struct {
	// A human-readable name for the type that was misused.
	Owner string
}

func (e *NotConstructedError) Error() string {
	return fmt.Sprintf("%s was not initialized, use its constructor instead of a zero value", e.Owner)
}

var _ error = &NotConstructedError{} //nolint:exhaustruct
