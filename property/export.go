package property

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/pasqal-io/onready/property/tags"
)

// An exported property, as listed for the editor.
type Info struct {
	// The name under which the engine sees this property.
	Name string

	// The Go field name.
	Field string

	// The type seen by the engine, with wrappers such as deferred fields
	// removed.
	Type reflect.Type

	Hint HintInfo

	// Human-readable documentation, from tag `doc`.
	Doc string
}

type exportedField struct {
	info  Info
	index int
}

var exportCache sync.Map // map[reflect.Type][]exportedField

// List the exported properties of `obj`, in declaration order.
//
// `obj` must be a pointer to a struct. A field is exported when it carries
// an `export` tag; its hint comes from its `hint` tag if any, otherwise from
// `ExportInfoOf` on its type.
func List(obj any) ([]Info, error) {
	_, fields, err := resolve(obj)
	if err != nil {
		return nil, err
	}
	result := make([]Info, len(fields))
	for i, field := range fields {
		result[i] = field.info
	}
	return result, nil
}

// Read an exported property by name.
//
// Reading a deferred field before it is initialized panics, as any other
// access would.
func Get(obj any, name string) (any, error) {
	value, fields, err := resolve(obj)
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		if field.info.Name == name {
			return GetValue(value.Field(field.index).Addr().Interface()), nil
		}
	}
	return nil, fmt.Errorf("%w %q on %s", ErrUnknownProperty, name, value.Type())
}

// Write an exported property by name.
func Set(obj any, name string, newValue any) error {
	value, fields, err := resolve(obj)
	if err != nil {
		return err
	}
	for _, field := range fields {
		if field.info.Name == name {
			if err := SetValue(value.Field(field.index).Addr().Interface(), newValue); err != nil {
				return fmt.Errorf("at %s.%s, invalid value:\n\t * %w", value.Type(), field.info.Field, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w %q on %s", ErrUnknownProperty, name, value.Type())
}

func resolve(obj any) (reflect.Value, []exportedField, error) {
	ptr := reflect.ValueOf(obj)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("expected a non-nil pointer to a struct, got %T", obj)
	}
	value := ptr.Elem()
	typ := value.Type()
	if cached, ok := exportCache.Load(typ); ok {
		return value, cached.([]exportedField), nil
	}
	fields, err := collect(typ)
	if err != nil {
		return reflect.Value{}, nil, err
	}
	exportCache.Store(typ, fields)
	return value, fields, nil
}

func collect(typ reflect.Type) ([]exportedField, error) {
	fields := make([]exportedField, 0)
	seen := make(map[string]string)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		parsed, err := tags.Parse(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tags at %s.%s:\n\t * %w", typ, field.Name, err)
		}
		if !parsed.IsExported() {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("struct %s exports field \"%s\" that is not public, you should make it public", typ, field.Name)
		}
		name := parsed.ExportName(field.Name)
		if previous, ok := seen[name]; ok {
			return nil, fmt.Errorf("struct %s exports both \"%s\" and \"%s\" as %q", typ, previous, field.Name, name)
		}
		seen[name] = field.Name

		hint := ExportInfoOf(field.Type)
		if kind, args, ok := parsed.Hint(); ok {
			hint, err = ParseHint(kind, args)
			if err != nil {
				return nil, fmt.Errorf("at %s.%s, invalid hint:\n\t * %w", typ, field.Name, err)
			}
		}
		fields = append(fields, exportedField{
			info: Info{
				Name:  name,
				Field: field.Name,
				Type:  UnderlyingType(field.Type),
				Hint:  hint,
				Doc:   parsed.Doc(),
			},
			index: i,
		})
	}
	return fields, nil
}

// Returned by `Get` and `Set` for unknown names.
var ErrUnknownProperty = errors.New("unknown property")
