package onready

import (
	"reflect"

	"github.com/pasqal-io/onready/property"
)

// Delegates to `T`; panics like `Get()` before initialization.
func (o *OnReady[T]) GetProperty() any {
	return property.GetValue(o.Ptr())
}

// Delegates to `T`; panics like `Ptr()` before initialization.
func (o *OnReady[T]) SetProperty(value any) error {
	return property.SetValue(o.Ptr(), value)
}

func (*OnReady[T]) PropertyHint() property.HintInfo {
	return property.HintOf(reflect.TypeFor[T]())
}

func (*OnReady[T]) DefaultExportInfo() property.HintInfo {
	return property.ExportInfoOf(reflect.TypeFor[T]())
}

func (*OnReady[T]) WrappedType() reflect.Type {
	return reflect.TypeFor[T]()
}

var (
	_ property.Property = &OnReady[int]{} //nolint:exhaustruct
	_ property.Hinter   = &OnReady[int]{} //nolint:exhaustruct
	_ property.Exporter = &OnReady[int]{} //nolint:exhaustruct
	_ property.Wrapper  = &OnReady[int]{} //nolint:exhaustruct
)
