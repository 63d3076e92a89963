package onready

import "fmt"

// Exactly one of:
//   - manualUninitialized: built with Manual(), waiting for Init();
//   - *autoPrepared: built with New(), holding its initializer;
//   - autoInitializing: only while TriggerAutoInit runs the initializer;
//   - *initializedState: holding the value, never replaced.
type initState[T any] interface {
	isInitState()
}

type manualUninitialized[T any] struct{}

type autoPrepared[T any] struct {
	initializer func() T
}

// Needed because the slot cannot be left empty while the initializer runs.
type autoInitializing[T any] struct{}

type initializedState[T any] struct {
	value T
}

func (manualUninitialized[T]) isInitState() {}
func (*autoPrepared[T]) isInitState()       {}
func (autoInitializing[T]) isInitState()    {}
func (*initializedState[T]) isInitState()   {}

// The transient state escaped TriggerAutoInit. This only happens if an
// initializer panicked and the panic was recovered by a caller.
func unreachable(state any) {
	panic(fmt.Sprintf("onready: unreachable state %T, the initializer did not complete", state))
}
