package handle

import (
	"github.com/pasqal-io/onready/assertions/initialized"
	"github.com/pasqal-io/onready/classdb"
	"github.com/pasqal-io/onready/rtti"
)

// A handle to an engine object of class `T` or derived.
//
// Handles do not keep their object alive: once freed, `IsAlive()` reports
// false and `Value()` fails.
type Gd[T classdb.Class] struct {
	rtti    rtti.ObjectRtti
	table   *Table
	witness initialized.IsInitialized
}

// Create an object of class `T` in `table` and return a handle to it.
func New[T classdb.Class](table *Table, value any) Gd[T] {
	id := table.Insert(classdb.NameOf[T](), value)
	return wrap[T](table, id)
}

// Wrap the id of a live object whose class is `T` or derived.
//
// Returns false if the object is dead or of another class.
func FromID[T classdb.Class](table *Table, id rtti.InstanceID) (Gd[T], bool) {
	class, _, ok := table.Lookup(id)
	if !ok || !table.registry.Inherits(class, classdb.NameOf[T]()) {
		return Gd[T]{}, false
	}
	return wrap[T](table, id), true
}

func wrap[T classdb.Class](table *Table, id rtti.InstanceID) Gd[T] {
	return Gd[T]{
		rtti:    rtti.Of[T](id),
		table:   table,
		witness: initialized.Make(),
	}
}

// The id of the object.
//
// Panics in checked builds if this handle was narrowed to a class the object
// does not have.
func (g Gd[T]) InstanceID() rtti.InstanceID {
	g.witness.Assert("handle.Gd")
	return rtti.CheckType[T](g.rtti)
}

// The value of the object, if it is still alive.
func (g Gd[T]) Value() (any, bool) {
	_, value, ok := g.table.Lookup(g.InstanceID())
	return value, ok
}

func (g Gd[T]) IsAlive() bool {
	return g.table.IsAlive(g.InstanceID())
}

// The dynamic class of the object, if it is still alive.
func (g Gd[T]) DynamicClass() (classdb.ClassName, bool) {
	class, _, ok := g.table.Lookup(g.InstanceID())
	return class, ok
}

// Destroy the object. Returns false if it was already dead.
func (g Gd[T]) Free() bool {
	return g.table.Free(g.InstanceID())
}

// Narrow a handle to class `U`, if the live object has that class.
func Cast[U classdb.Class, T classdb.Class](g Gd[T]) (Gd[U], bool) {
	id := g.InstanceID()
	class, _, ok := g.table.Lookup(id)
	if !ok || !g.table.registry.Inherits(class, classdb.NameOf[U]()) {
		return Gd[U]{}, false
	}
	return wrap[U](g.table, id), true
}

// Widen a handle to a base class `U` of `T`.
//
// Panics in checked builds if `U` is not a base class of `T`.
func Upcast[U classdb.Class, T classdb.Class](g Gd[T]) Gd[U] {
	g.witness.Assert("handle.Gd")
	rtti.CheckType[U](g.rtti)
	return Gd[U]{
		rtti:    g.rtti,
		table:   g.table,
		witness: g.witness,
	}
}

// Change the static class of a handle without looking at the object.
//
// For binding code that already knows the class from elsewhere. If it is
// wrong, the next use of the handle panics in checked builds.
func Reinterpret[U classdb.Class, T classdb.Class](g Gd[T]) Gd[U] {
	g.witness.Assert("handle.Gd")
	return Gd[U]{
		rtti:    g.rtti,
		table:   g.table,
		witness: g.witness,
	}
}
