package onready_test

import (
	"errors"
	"testing"

	"github.com/pasqal-io/onready/assertions/initialized"
	"github.com/pasqal-io/onready/assertions/testutils"
	"github.com/pasqal-io/onready/internal/hook"
	"github.com/pasqal-io/onready/onready"
	"gotest.tools/v3/assert"
)

// Fail unless `fn` panics with an `*onready.Error` of the given kind.
func assertMisuse(t *testing.T, kind onready.ErrorKind, fn func(), explanation string) {
	t.Helper()
	recovered := testutils.Panics(t, fn, explanation)
	if recovered == nil {
		return
	}
	err, ok := recovered.(error)
	assert.Assert(t, ok, "expected an error, got %v (%s)", recovered, explanation)
	assert.Assert(t, errors.Is(err, &onready.Error{Kind: kind}), "got %v (%s)", err, explanation) //nolint:exhaustruct
}

func TestAutoScenario(t *testing.T) {
	c := onready.New(func() int { return 11 })

	assertMisuse(t, onready.ErrAutoUninitialized, func() { c.Get() }, "Reading before the trigger should fail")
	assertMisuse(t, onready.ErrAutoUninitialized, func() { c.Ptr() }, "Writing before the trigger should fail")

	c.TriggerAutoInit(hook.Mint())
	testutils.AssertEqual(t, c.Get(), 11, "The initializer result should be stored")

	*c.Ptr() = 12
	testutils.AssertEqual(t, c.Get(), 12, "Mutations through Ptr() should be visible")

	assertMisuse(t, onready.ErrDoubleTrigger, func() { c.TriggerAutoInit(hook.Mint()) }, "A second trigger should fail")
	testutils.AssertEqual(t, c.Get(), 12, "A failed trigger should not alter the value")
}

func TestInitializerRunsOnce(t *testing.T) {
	calls := 0
	c := onready.New(func() string {
		calls++
		return "ready"
	})
	testutils.AssertEqual(t, calls, 0, "New() should not run the initializer")

	c.TriggerAutoInit(hook.Mint())
	testutils.AssertEqual(t, calls, 1, "The trigger should run the initializer")

	for i := 0; i < 3; i++ {
		testutils.AssertEqual(t, c.Get(), "ready", "Reads should return the stored value")
	}
	testutils.AssertEqual(t, calls, 1, "Reads should not run the initializer again")
}

func TestManualScenario(t *testing.T) {
	m := onready.Manual[int]()

	recovered := testutils.AssertPanics(t, func() { m.Get() }, "did you call Init\\(\\)\\?", "Reading before Init() should fail")
	assert.Assert(t, errors.Is(recovered.(error), &onready.Error{Kind: onready.ErrManualUninitialized})) //nolint:exhaustruct

	m.Init(22)
	testutils.AssertEqual(t, m.Get(), 22, "Init() should store the value")

	assertMisuse(t, onready.ErrDoubleInit, func() { m.Init(23) }, "A second Init() should fail")
	testutils.AssertEqual(t, m.Get(), 22, "A failed Init() should not alter the value")
}

func TestInitOnAutoFailsBeforeInitializer(t *testing.T) {
	calls := 0
	c := onready.New(func() int {
		calls++
		return 1
	})

	testutils.AssertPanics(t, func() { c.Init(2) }, "cannot call Init\\(\\) on auto-initialized", "Init() on an automatic container should fail")
	testutils.AssertEqual(t, calls, 0, "The initializer should not have run")

	c.TriggerAutoInit(hook.Mint())
	testutils.AssertEqual(t, c.Get(), 1, "The container should still be usable in automatic mode")
}

func TestManualIgnoresTrigger(t *testing.T) {
	m := onready.Manual[int]()
	testutils.AssertNoPanic(t, func() { m.TriggerAutoInit(hook.Mint()) }, "Manual containers are skipped by the automatic pass")
	assertMisuse(t, onready.ErrManualUninitialized, func() { m.Get() }, "The trigger should not initialize a manual container")

	m.Init(5)
	testutils.AssertEqual(t, m.Get(), 5, "Init() should still succeed")
}

func TestAccessMessagesDiffer(t *testing.T) {
	auto := onready.New(func() bool { return true })
	manual := onready.Manual[bool]()

	testutils.AssertPanics(t, func() { auto.Ptr() }, "automatic value uninitialized, is only available in Ready\\(\\)", "")
	testutils.AssertPanics(t, func() { manual.Ptr() }, "manual value uninitialized", "")
	testutils.AssertPanics(t, func() { manual.Get() }, "\\(OnReady\\[bool\\]\\)$", "The message should name the type parameter")
}

func TestPtrIsStable(t *testing.T) {
	type Inventory struct {
		Items []string
	}
	c := onready.New(func() Inventory { return Inventory{Items: []string{"sword"}} })
	c.TriggerAutoInit(hook.Mint())

	first := c.Ptr()
	first.Items = append(first.Items, "shield")
	testutils.AssertEqual(t, c.Ptr(), first, "Ptr() should always return the same address")
	assert.DeepEqual(t, c.Get().Items, []string{"sword", "shield"})
}

func TestZeroValuePanics(t *testing.T) {
	var zero onready.OnReady[int]
	for name, fn := range map[string]func(){
		"Get":  func() { zero.Get() },
		"Ptr":  func() { zero.Ptr() },
		"Init": func() { zero.Init(1) },
	} {
		recovered := testutils.Panics(t, fn, name)
		var notConstructed *initialized.NotConstructedError
		assert.Assert(t, errors.As(recovered.(error), &notConstructed), "%s: got %v", name, recovered)
		testutils.AssertEqual(t, notConstructed.Owner, "OnReady", name)
	}
}

func TestTriggerRequiresDriverToken(t *testing.T) {
	c := onready.New(func() int { return 1 })
	testutils.AssertPanics(t, func() { c.TriggerAutoInit(hook.Token{}) }, "reserved for the lifecycle driver", "A forged token should be rejected")
	assertMisuse(t, onready.ErrAutoUninitialized, func() { c.Get() }, "A rejected trigger should not initialize")
}

func TestNilInitializer(t *testing.T) {
	assertMisuse(t, onready.ErrNilInitializer, func() { onready.New[int](nil) }, "New(nil) should fail")
}

func TestPanickingInitializer(t *testing.T) {
	c := onready.New(func() int { panic("scene tree unavailable") })
	testutils.AssertPanics(t, func() { c.TriggerAutoInit(hook.Mint()) }, "scene tree unavailable", "The initializer's panic should propagate")
	testutils.AssertPanics(t, func() { c.Get() }, "unreachable state", "The container should not pretend to be uninitialized")
	testutils.AssertPanics(t, func() { c.TriggerAutoInit(hook.Mint()) }, "unreachable state", "The container should not run again")
}

func TestCopiesBeforeFirstUseAreIndependent(t *testing.T) {
	calls := 0
	original := onready.New(func() int {
		calls++
		return calls
	})
	copied := original

	original.TriggerAutoInit(hook.Mint())
	testutils.AssertNoPanic(t, func() { copied.TriggerAutoInit(hook.Mint()) }, "A copy made before first use owns its own initializer")
	testutils.AssertEqual(t, original.Get(), 1, "")
	testutils.AssertEqual(t, copied.Get(), 2, "Each copy should run the initializer for itself")

	assertMisuse(t, onready.ErrDoubleTrigger, func() { copied.TriggerAutoInit(hook.Mint()) }, "A second trigger on the copy should fail")

	manual := onready.Manual[int]()
	other := manual
	manual.Init(1)
	assertMisuse(t, onready.ErrManualUninitialized, func() { other.Get() }, "Init() on the original should not initialize the copy")
	other.Init(2)
	testutils.AssertEqual(t, manual.Get(), 1, "Init() on the copy should not alter the original")
}

func TestCopiesAfterFirstUsePanic(t *testing.T) {
	manual := onready.Manual[int]()
	manual.Init(22)
	copied := manual

	assertMisuse(t, onready.ErrCopied, func() { *copied.Ptr() = 99 }, "Writing through a copy should fail")
	assertMisuse(t, onready.ErrCopied, func() { copied.Get() }, "Reading through a copy should fail")
	testutils.AssertEqual(t, manual.Get(), 22, "The original should keep its value")

	auto := onready.New(func() int { return 1 })
	auto.TriggerAutoInit(hook.Mint())
	again := auto
	assertMisuse(t, onready.ErrCopied, func() { again.TriggerAutoInit(hook.Mint()) }, "Triggering a copy should fail")

	pending := onready.New(func() int { return 1 })
	assertMisuse(t, onready.ErrAutoUninitialized, func() { pending.Get() }, "A failed access still counts as a use")
	moved := pending
	testutils.AssertPanics(t, func() { moved.TriggerAutoInit(hook.Mint()) }, "copied by value after first use", "")
}
