// Typed handles to engine-owned objects.
//
// The engine owns its objects and only hands out instance ids. A `Gd[T]`
// pairs such an id with the class it is statically known to have, and
// re-checks that class through `rtti.CheckType` every time the id is used,
// so that an incorrect narrowing is caught at its first use rather than
// corrupting engine state.
//
//	table := handle.NewTable(nil)
//	sprite := handle.New[Sprite2D](table, mySprite)
//	node := handle.Upcast[Node](sprite)
//	back, ok := handle.Cast[Sprite2D](node) // ok
//	_, ok = handle.Cast[Resource](node)     // !ok
package handle

import (
	"github.com/pasqal-io/onready/classdb"
	"github.com/pasqal-io/onready/rtti"
)

// Optionally implemented by object values that need cleanup when freed.
type Dropper interface {
	Drop()
}

type entry struct {
	class classdb.ClassName
	value any
}

// The store of live engine objects, by instance id.
//
// Not safe for concurrent use: objects live on the engine's main thread.
type Table struct {
	registry classdb.Registry
	objects  map[rtti.InstanceID]entry
}

// Create an empty table.
//
// `registry` resolves inheritance for `Cast`; nil means `rtti.Registry()`.
func NewTable(registry classdb.Registry) *Table {
	if registry == nil {
		registry = rtti.Registry()
	}
	return &Table{
		registry: registry,
		objects:  make(map[rtti.InstanceID]entry),
	}
}

// Add an object of class `class`, return its fresh id.
func (t *Table) Insert(class classdb.ClassName, value any) rtti.InstanceID {
	id := rtti.NewInstanceID()
	t.objects[id] = entry{
		class: class,
		value: value,
	}
	return id
}

// Return the class and value of a live object.
func (t *Table) Lookup(id rtti.InstanceID) (classdb.ClassName, any, bool) {
	found, ok := t.objects[id]
	if !ok {
		return "", nil, false
	}
	return found.class, found.value, true
}

func (t *Table) IsAlive(id rtti.InstanceID) bool {
	_, ok := t.objects[id]
	return ok
}

// Destroy an object, calling `Drop()` if it implements `Dropper`.
//
// Returns false if the object was already dead. Its id is never reused.
func (t *Table) Free(id rtti.InstanceID) bool {
	found, ok := t.objects[id]
	if !ok {
		return false
	}
	delete(t.objects, id)
	if dropper, ok := found.value.(Dropper); ok {
		dropper.Drop()
	}
	return true
}

// The number of live objects.
func (t *Table) Len() int {
	return len(t.objects)
}
