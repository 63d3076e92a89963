package rtti

import (
	"fmt"

	"github.com/google/uuid"
)

// The engine-side identity of an object.
//
// Ids are never reused, so an id may outlive its object: it then refers to a
// dead object rather than to a different one.
type InstanceID uuid.UUID

// Allocate a fresh id.
func NewInstanceID() InstanceID {
	return InstanceID(uuid.New())
}

// Parse the textual form returned by `String()`.
func ParseInstanceID(source string) (InstanceID, error) {
	id, err := uuid.Parse(source)
	if err != nil {
		return InstanceID{}, fmt.Errorf("invalid instance id %q:\n\t * %w", source, err)
	}
	return InstanceID(id), nil
}

// `false` for the zero id, which never refers to an object.
func (id InstanceID) IsValid() bool {
	return uuid.UUID(id) != uuid.Nil
}

func (id InstanceID) String() string {
	return uuid.UUID(id).String()
}
