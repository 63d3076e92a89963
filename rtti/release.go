//go:build release

package rtti

import "github.com/pasqal-io/onready/classdb"

// `true` when class names are recorded and checked.
const Checked = false

type debugInfo struct{}

func debugInfoOf[T classdb.Class]() debugInfo {
	return debugInfo{}
}

func (debugInfo) check(func() classdb.ClassName, InstanceID) {}

// Release builds do not record classes.
func (ObjectRtti) ClassName() (classdb.ClassName, bool) {
	return "", false
}
