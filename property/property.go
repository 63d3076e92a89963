// The property-metadata capability: how a value is read and written by the
// engine's editor and scene loader, and which hints describe it.
//
// Plain Go values need no support code: they are read and written
// reflectively. Types that need a custom representation implement `Property`
// on their pointer type.
//
// Important: We expect `Property` to be implemented on **pointers**,
// rather than on structs, so that `SetProperty` is not performed on a copy.
package property

import (
	"fmt"
	"math"
	"reflect"
)

// A value with a custom engine-side representation.
type Property interface {
	// Return the engine-side representation of the value.
	GetProperty() any

	// Replace the value from its engine-side representation.
	SetProperty(any) error
}

// A type that describes itself to the editor.
//
// Called on a zero value, it must not depend on the receiver's contents.
type Hinter interface {
	PropertyHint() HintInfo
}

// A type that provides the hint used when exported without an explicit one.
//
// Called on a zero value, it must not depend on the receiver's contents.
type Exporter interface {
	DefaultExportInfo() HintInfo
}

// A container that stands in for another type, e.g. a deferred field.
//
// Called on a zero value, it must not depend on the receiver's contents.
type Wrapper interface {
	WrappedType() reflect.Type
}

var (
	hinterInterface   = reflect.TypeOf((*Hinter)(nil)).Elem()
	exporterInterface = reflect.TypeOf((*Exporter)(nil)).Elem()
	wrapperInterface  = reflect.TypeOf((*Wrapper)(nil)).Elem()
)

// Read the value behind `ptr`.
//
// Panics if `ptr` is not a non-nil pointer.
func GetValue(ptr any) any {
	if prop, ok := ptr.(Property); ok {
		return prop.GetProperty()
	}
	elem := mustPointer("GetValue", ptr).Elem()
	if prop, ok := innerProperty(elem); ok {
		return prop.GetProperty()
	}
	return elem.Interface()
}

// Write `value` into the value behind `ptr`.
//
// Assignable values are stored as-is, numbers are converted across numeric
// types when the target represents them exactly (floats may round), `nil` resets pointers, maps, slices and interfaces.
//
// Panics if `ptr` is not a non-nil pointer.
func SetValue(ptr any, value any) error {
	if prop, ok := ptr.(Property); ok {
		return prop.SetProperty(value)
	}
	target := mustPointer("SetValue", ptr).Elem()
	if prop, ok := innerProperty(target); ok {
		return prop.SetProperty(value)
	}
	typ := target.Type()
	if value == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
			target.SetZero()
			return nil
		default:
			return fmt.Errorf("cannot assign nil to a value of type %s", typ)
		}
	}
	in := reflect.ValueOf(value)
	switch {
	case in.Type().AssignableTo(typ):
		target.Set(in)
	case isNumeric(in.Kind()) && isNumeric(typ.Kind()):
		if err := checkConvertible(in, target); err != nil {
			return err
		}
		target.Set(in.Convert(typ))
	default:
		return fmt.Errorf("cannot assign a value of type %s to a value of type %s", in.Type(), typ)
	}
	return nil
}

// The hint a type gives for itself, or `HintNone`.
func HintOf(typ reflect.Type) HintInfo {
	if hinter, ok := zeroImplementing(typ, hinterInterface); ok {
		return hinter.(Hinter).PropertyHint()
	}
	return HintInfo{}
}

// The hint used when a value of this type is exported without a `hint` tag.
//
// Falls back to `HintOf`.
func ExportInfoOf(typ reflect.Type) HintInfo {
	if exporter, ok := zeroImplementing(typ, exporterInterface); ok {
		return exporter.(Exporter).DefaultExportInfo()
	}
	return HintOf(typ)
}

// The type seen by the engine, looking through `Wrapper`s.
func UnderlyingType(typ reflect.Type) reflect.Type {
	for {
		wrapper, ok := zeroImplementing(typ, wrapperInterface)
		if !ok {
			return typ
		}
		typ = wrapper.(Wrapper).WrappedType()
	}
}

// Return a zero value of `typ` (or a pointer to one) that implements `iface`.
func zeroImplementing(typ reflect.Type, iface reflect.Type) (any, bool) {
	switch typ.Kind() {
	case reflect.Interface:
		return nil, false
	case reflect.Pointer:
		// Point to a zero value rather than calling through nil.
		if typ.Implements(iface) {
			return reflect.New(typ.Elem()).Interface(), true
		}
		return nil, false
	}
	if typ.Implements(iface) {
		return reflect.Zero(typ).Interface(), true
	}
	if reflect.PointerTo(typ).Implements(iface) {
		return reflect.New(typ).Interface(), true
	}
	return nil, false
}

// A value that is itself a non-nil pointer to a `Property`, e.g. `*Weapon`
// stored in a field.
func innerProperty(elem reflect.Value) (Property, bool) {
	if elem.Kind() != reflect.Pointer || elem.IsNil() {
		return nil, false
	}
	prop, ok := elem.Interface().(Property)
	return prop, ok
}

func mustPointer(op string, ptr any) reflect.Value {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic(fmt.Sprintf("property.%s expects a non-nil pointer, got %T", op, ptr))
	}
	return v
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Reject numeric conversions that would wrap, change sign or drop a fraction.
func checkConvertible(in reflect.Value, target reflect.Value) error {
	typ := target.Type()
	switch {
	case in.CanInt():
		n := in.Int()
		switch {
		case target.CanInt():
			if target.OverflowInt(n) {
				return fmt.Errorf("value %d overflows %s", n, typ)
			}
		case target.CanUint():
			if n < 0 || target.OverflowUint(uint64(n)) {
				return fmt.Errorf("value %d overflows %s", n, typ)
			}
		}
	case in.CanUint():
		n := in.Uint()
		switch {
		case target.CanInt():
			if n > math.MaxInt64 || target.OverflowInt(int64(n)) {
				return fmt.Errorf("value %d overflows %s", n, typ)
			}
		case target.CanUint():
			if target.OverflowUint(n) {
				return fmt.Errorf("value %d overflows %s", n, typ)
			}
		}
	case in.CanFloat():
		f := in.Float()
		if target.CanFloat() {
			if !math.IsInf(f, 0) && !math.IsNaN(f) && target.OverflowFloat(f) {
				return fmt.Errorf("value %g overflows %s", f, typ)
			}
			return nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return fmt.Errorf("value %g is not an integer, cannot assign it to %s", f, typ)
		}
		// 2^63 and 2^64 are exact as floats, so the upper bounds are exclusive.
		switch {
		case target.CanInt():
			if f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
				return fmt.Errorf("value %g overflows %s", f, typ)
			}
		case target.CanUint():
			if f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f)) {
				return fmt.Errorf("value %g overflows %s", f, typ)
			}
		}
	}
	return nil
}
