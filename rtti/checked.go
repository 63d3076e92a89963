//go:build !release

package rtti

import "github.com/pasqal-io/onready/classdb"

// `true` when class names are recorded and checked.
const Checked = true

type debugInfo struct {
	className classdb.ClassName
}

func debugInfoOf[T classdb.Class]() debugInfo {
	return debugInfo{className: classdb.NameOf[T]()}
}

func (info debugInfo) check(expected func() classdb.ClassName, id InstanceID) {
	classdb.EnsureInherits(Registry(), info.className, expected(), id)
}

// The class recorded at creation.
func (tag ObjectRtti) ClassName() (classdb.ClassName, bool) {
	return tag.className, true
}
