package testutils

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
)

// Fail if two values are different.
//
// Does not stop the test.
func AssertEqual[T comparable](t *testing.T, actual, expected T, explanation string) {
	t.Helper()
	if expected != actual {
		t.Errorf("got: %+v; want: %+v (%s)", actual, expected, explanation)
		if reflect.ValueOf(expected).Kind() == reflect.Pointer {
			t.Error("Warning: you're comparing two pointers -- pointers are only equal if they point to the same physical object")
		}
	}
}

func AssertRegexp(t *testing.T, actual string, pattern regexp.Regexp, explanation string) {
	t.Helper()
	if pattern.FindStringIndex(actual) != nil {
		return
	}
	t.Errorf("got: %+v; expected: %+v (%s)", actual, pattern, explanation)
}

// Run `fn` and return the value it panicked with.
//
// Fails the test (without stopping it) if `fn` returns normally, in which case
// the result is nil.
func Panics(t *testing.T, fn func(), explanation string) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("expected a panic (%s)", explanation)
		}
	}()
	fn()
	return nil
}

// Fail unless `fn` panics with a value whose message matches `pattern`.
//
// Errors are matched on `Error()`, other values on their `%v` representation.
func AssertPanics(t *testing.T, fn func(), pattern string, explanation string) any {
	t.Helper()
	recovered := Panics(t, fn, explanation)
	if recovered == nil {
		return nil
	}
	var message string
	if err, ok := recovered.(error); ok {
		message = err.Error()
	} else {
		message = fmt.Sprintf("%v", recovered)
	}
	AssertRegexp(t, message, *regexp.MustCompile(pattern), explanation)
	return recovered
}

// Fail if `fn` panics.
func AssertNoPanic(t *testing.T, fn func(), explanation string) {
	t.Helper()
	defer func() {
		if recovered := recover(); recovered != nil {
			t.Errorf("unexpected panic: %v (%s)", recovered, explanation)
		}
	}()
	fn()
}
