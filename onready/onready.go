// Ergonomic late-initialization container with `Ready()` support.
//
// Engine objects are often only fully usable once they have entered the
// scene tree, so some of their fields cannot be computed in the
// constructor. The alternative to this container is a pointer or an
// `(T, bool)` pair that every access site needs to check.
//
// `OnReady[T]` should always be used as a field. There are two modes to use it:
//
//  1. Automatic mode, using `New()`. Before `Ready()` is called, the
//     lifecycle driver initializes every `OnReady` field built with `New()`,
//     in declaration order. These fields are therefore safe to access from
//     `Ready()` onwards.
//  2. Manual mode, using `Manual()`. These fields stay uninitialized until
//     you call `Init()` on them, typically from `Ready()`. If you forget,
//     the first access panics.
//
// There is deliberately no way to query whether a container is initialized:
// if you follow either pattern above, you never need to.
//
// Once used, a container must stay in place: it may be moved by value
// right after `New()` or `Manual()`, but any use of a copy made afterwards
// panics. Share the value through `Ptr()` instead.
//
// This type is not safe for concurrent use. `Ready()` runs on the engine's
// main thread and the value is expected to be accessed from there, too.
//
//	type Player struct {
//	    auto   onready.OnReady[int]
//	    manual onready.OnReady[int]
//	}
//
//	func NewPlayer() *Player {
//	    return &Player{
//	        auto:   onready.New(func() int { return 11 }),
//	        manual: onready.Manual[int](),
//	    }
//	}
//
//	func (p *Player) Ready() {
//	    _ = p.auto.Get() // 11
//	    p.manual.Init(22)
//	}
package onready

import (
	"reflect"

	"github.com/pasqal-io/onready/assertions/initialized"
	"github.com/pasqal-io/onready/internal/hook"
)

// A field initialized during, or right before, the `Ready()` callback.
//
// Build it with `New` or `Manual`; the zero value panics on every use.
type OnReady[T any] struct {
	// The container itself, set on first use, to detect copies.
	addr    *OnReady[T]
	state   initState[T]
	witness initialized.IsInitialized
}

// Schedule automatic initialization before `Ready()`.
//
// `initializer` runs exactly once, when the lifecycle driver reaches this
// field. Until then, accessing the value panics: it is _not_ initialized on
// first use.
//
// For more control over initialization, use `Manual()` followed by an
// `Init()` call during `Ready()`.
func New[T any](initializer func() T) OnReady[T] {
	if initializer == nil {
		panic(&Error{Kind: ErrNilInitializer, Type: typeName[T]()})
	}
	return OnReady[T]{
		state:   &autoPrepared[T]{initializer: initializer},
		witness: initialized.Make(),
	}
}

// Leave uninitialized, expects manual initialization during `Ready()`.
//
// If you use this constructor, you _must_ call `Init()` before the first
// access, otherwise that access panics.
func Manual[T any]() OnReady[T] {
	return OnReady[T]{
		state:   manualUninitialized[T]{},
		witness: initialized.Make(),
	}
}

// Runs manual initialization.
//
// Panics:
//   - if `Init()` was called before;
//   - if this container was built with `New()`.
func (o *OnReady[T]) Init(value T) {
	o.witness.Assert("OnReady")
	o.copyCheck()
	switch o.state.(type) {
	case manualUninitialized[T]:
		o.state = &initializedState[T]{value: value}
	case *autoPrepared[T]:
		panic(&Error{Kind: ErrInitOnAuto, Type: typeName[T]()})
	case *initializedState[T]:
		panic(&Error{Kind: ErrDoubleInit, Type: typeName[T]()})
	default:
		unreachable(o.state)
	}
}

// Runs automatic initialization.
//
// Reserved for the lifecycle driver. Manual containers are skipped.
//
// Panics if the value is already initialized.
func (o *OnReady[T]) TriggerAutoInit(token hook.Token) {
	if !token.Valid() {
		panic("onready: TriggerAutoInit is reserved for the lifecycle driver")
	}
	o.witness.Assert("OnReady")
	o.copyCheck()

	// Two steps: swapping first could overwrite an initialized value.
	switch o.state.(type) {
	case manualUninitialized[T]:
		return
	case *autoPrepared[T]:
		// Handled below.
	case *initializedState[T]:
		panic(&Error{Kind: ErrDoubleTrigger, Type: typeName[T]()})
	default:
		unreachable(o.state)
	}

	// The prepared state is left untouched: a copy made before first use
	// still owns it and runs the initializer for itself.
	initializer := o.state.(*autoPrepared[T]).initializer
	o.state = autoInitializing[T]{}
	o.state = &initializedState[T]{value: initializer()}
}

// Returns the value.
//
// Panics if the value is not yet initialized.
func (o *OnReady[T]) Get() T {
	return *o.Ptr()
}

// Returns a pointer to the value, for in-place mutation.
//
// The pointer remains valid, and keeps pointing to this container's value,
// for the lifetime of the container.
//
// Panics if the value is not yet initialized.
func (o *OnReady[T]) Ptr() *T {
	o.witness.Assert("OnReady")
	o.copyCheck()
	switch state := o.state.(type) {
	case *initializedState[T]:
		return &state.value
	case manualUninitialized[T]:
		panic(&Error{Kind: ErrManualUninitialized, Type: typeName[T]()})
	case *autoPrepared[T]:
		panic(&Error{Kind: ErrAutoUninitialized, Type: typeName[T]()})
	default:
		unreachable(o.state)
		return nil
	}
}

// Copies made before first use are independent containers. Copies made
// later would share the value slot with the original.
func (o *OnReady[T]) copyCheck() {
	if o.addr == nil {
		o.addr = o
	} else if o.addr != o {
		panic(&Error{Kind: ErrCopied, Type: typeName[T]()})
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
