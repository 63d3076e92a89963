package classdb

import "fmt"

// The panic value raised when an object does not have the expected class.
type MismatchError struct {
	// Display name of the class the caller expected.
	Expected string

	// Display name of the class recorded for the object.
	Actual string

	// The object, e.g. its instance id.
	Instance fmt.Stringer
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("instance %s has type %s, which does not inherit from %s", e.Instance, e.Actual, e.Expected)
}

var _ error = &MismatchError{} //nolint:exhaustruct

// Panic with a `*MismatchError` unless `actual` is `expected` or inherits from it.
func EnsureInherits(registry Registry, actual, expected ClassName, instance fmt.Stringer) {
	if registry.Inherits(actual, expected) {
		return
	}
	panic(&MismatchError{
		Expected: registry.DisplayName(expected),
		Actual:   registry.DisplayName(actual),
		Instance: instance,
	})
}
