// The lifecycle driver: the code that decides when deferred fields are
// initialized and when an object's `Ready()` callback runs.
//
// For each object, the driver:
//  1. calls `EnterTree()`, if the object implements `TreeEnterer`;
//  2. initializes every field built with `onready.New()`, in declaration
//     order (fields of embedded structs are visited in place);
//  3. calls `Ready()`, if the object implements `Readier`.
//
// Important: We expect these hooks to be implemented on **pointers**,
// rather than on structs.
//
// Otherwise, all their operations are performed on a copy of the struct and
// the result is lost immediately.
package lifecycle

// An object notified when it enters the scene tree, before its deferred
// fields are initialized.
type TreeEnterer interface {
	EnterTree()
}

// An object notified once its deferred fields are initialized.
//
// This is where manual fields are conventionally initialized.
type Readier interface {
	Ready()
}
