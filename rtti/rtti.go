// Object runtime type information, obtained at creation time.
//
// A handle to an engine object is statically typed on the Go side but the
// engine itself only hands out instance ids. `ObjectRtti` records, next to
// the id, the class the handle was created for, so that narrowing a handle to
// a more specific class can be sanity-checked.
//
// The class is only recorded in checked builds, the default. Build with
// `-tags release` to drop it: `ObjectRtti` then holds the id alone and
// `CheckType` does no work.
package rtti

import (
	"sync"

	"github.com/pasqal-io/onready/classdb"
)

// The runtime type information of one handle.
//
// Immutable once created. It does not keep the object alive.
type ObjectRtti struct {
	// Only in checked builds: the class the handle was created for.
	debugInfo

	// Cached instance ID. May point to dead objects.
	InstanceID InstanceID
}

// Create the type information of a handle to an object of class `T`.
func Of[T classdb.Class](id InstanceID) ObjectRtti {
	return ObjectRtti{
		debugInfo:  debugInfoOf[T](),
		InstanceID: id,
	}
}

// Check that the object is of class `T` or derived. Returns the instance id.
//
// Panics with a `*classdb.MismatchError` in checked builds if the object is
// not of class `T` or derived. Never panics in release builds.
func CheckType[T classdb.Class](tag ObjectRtti) InstanceID {
	tag.check(classdb.NameOf[T], tag.InstanceID)
	return tag.InstanceID
}

var (
	registryMu sync.RWMutex
	registry   classdb.Registry
)

// The registry consulted by `CheckType`, `classdb.Default()` unless
// replaced with `SetRegistry`.
func Registry() classdb.Registry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registry == nil {
		return classdb.Default()
	}
	return registry
}

// Replace the registry consulted by `CheckType`. `nil` restores the default.
func SetRegistry(r classdb.Registry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = r
}
