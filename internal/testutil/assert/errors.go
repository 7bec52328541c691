// Package assert provides error assertions that print the full error
// chain, stack traces and fault location included, when they fail.
package assert

import (
	"testing"

	"github.com/astwire/astwire/internal/wire"
	"github.com/cockroachdb/errors"
)

func logError(t testing.TB, err error) {
	t.Helper()

	t.Logf("%+v", err)
	var we *wire.Error
	if errors.As(err, &we) {
		t.Logf("type %s, path %q, offset %d", we.Type, we.Path(), we.Offset)
	}
}

func Error(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Log("Expected error to be present, but got nil instead")
	t.FailNow()
}

func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()
	ErrorIsf(t, err, target, "Expected error to be %v but got %v instead", target, err)
}

func ErrorIsf(t testing.TB, err error, target error, str string, args ...interface{}) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}
	t.Logf(str, args...)
	if err != nil {
		logError(t, err)
	}
	t.FailNow()
}

func NoErrorf(t testing.TB, err error, str string, args ...interface{}) {
	t.Helper()

	if err == nil {
		return
	}
	t.Logf(str, args...)
	logError(t, err)
	t.FailNow()
}

func NoError(t testing.TB, err error) {
	t.Helper()

	NoErrorf(t, err, "Expected error to be nil but got %q instead", err)
}

// Fault checks that err is a *wire.Error wrapping target and located at
// path, and returns it.
func Fault(t testing.TB, err error, target error, path string) *wire.Error {
	t.Helper()

	ErrorIs(t, err, target)
	var we *wire.Error
	if !errors.As(err, &we) {
		t.Fatalf("Expected a located fault, got %v", err)
	}
	if we.Path() != path {
		t.Fatalf("Expected fault at %q, got %q", path, we.Path())
	}
	return we
}
