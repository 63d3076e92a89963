// Class identities of engine objects, and the inheritance relation between
// them.
//
// The engine's object system is untyped at its boundary: a handle only
// carries an instance id. This package answers the two questions needed to
// sanity-check handles at runtime: "what is this class called?" and "does
// class A inherit from class B?".
package classdb

import (
	"fmt"
	"sync"
)

// The engine-side name of a class, e.g. "Node2D".
type ClassName string

// A Go type that stands for an engine class.
//
// Called on a zero value, `ClassName()` must not depend on the receiver's contents.
type Class interface {
	ClassName() ClassName
}

// The class name of `T`.
func NameOf[T Class]() ClassName {
	var zero T
	return zero.ClassName()
}

// The type-identity capability consulted by runtime type checks.
type Registry interface {
	// A human-readable name for error messages.
	DisplayName(ClassName) string

	// Return `true` if `derived` is `base` or inherits from it, directly or not.
	Inherits(derived, base ClassName) bool
}

// The description of one class.
type ClassInfo struct {
	Name ClassName `yaml:"name"`

	// The parent class. Empty for root classes.
	Inherits ClassName `yaml:"inherits"`

	// Optional, defaults to `Name`.
	Display string `yaml:"display"`
}

// An in-memory Registry.
//
// Classes must be registered after their parent.
type DB struct {
	mu      sync.RWMutex
	classes map[ClassName]ClassInfo
}

func New() *DB {
	return &DB{
		classes: make(map[ClassName]ClassInfo),
	}
}

// Add a class.
func (db *DB) Register(info ClassInfo) error {
	if info.Name == "" {
		return fmt.Errorf("invalid class with empty name")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, exists := db.classes[info.Name]; exists {
		return fmt.Errorf("class %s should only be registered once", info.Name)
	}
	if info.Inherits == info.Name {
		return fmt.Errorf("class %s cannot inherit from itself", info.Name)
	}
	if info.Inherits != "" {
		if _, ok := db.classes[info.Inherits]; !ok {
			return fmt.Errorf("class %s inherits from unknown class %s", info.Name, info.Inherits)
		}
	}
	if info.Display == "" {
		info.Display = string(info.Name)
	}
	db.classes[info.Name] = info
	return nil
}

// Register a class with the same name as `T`.
func RegisterClass[T Class](db *DB, inherits ClassName) error {
	return db.Register(ClassInfo{
		Name:     NameOf[T](),
		Inherits: inherits,
	})
}

func (db *DB) Lookup(name ClassName) (ClassInfo, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	info, ok := db.classes[name]
	return info, ok
}

func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.classes)
}

// Return the display name of a class, or its raw name if unknown.
func (db *DB) DisplayName(name ClassName) string {
	if info, ok := db.Lookup(name); ok {
		return info.Display
	}
	return string(name)
}

// Return `true` if `derived` is `base` or one of its descendants.
//
// Unknown classes only inherit from themselves.
func (db *DB) Inherits(derived, base ClassName) bool {
	if derived == base {
		return true
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	// Registration order rules out cycles.
	current := derived
	for {
		info, ok := db.classes[current]
		if !ok || info.Inherits == "" {
			return false
		}
		if info.Inherits == base {
			return true
		}
		current = info.Inherits
	}
}

// The chain of classes from `name` up to its root, `name` included.
func (db *DB) Ancestry(name ClassName) []ClassName {
	db.mu.RLock()
	defer db.mu.RUnlock()
	result := make([]ClassName, 0)
	for current := name; current != ""; {
		result = append(result, current)
		info, ok := db.classes[current]
		if !ok {
			break
		}
		current = info.Inherits
	}
	return result
}

var _ Registry = &DB{} //nolint:exhaustruct
