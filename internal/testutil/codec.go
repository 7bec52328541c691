package testutil

import (
	"testing"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/encoding"
	"github.com/astwire/astwire/internal/testutil/assert"
	"github.com/astwire/astwire/internal/wire"
)

// Formats lists every primitive format, for tests that run once per format.
var Formats = []encoding.Format{encoding.Bincode, encoding.BCS}

// Encode encodes v as the schema type T and fails the test on error.
func Encode[T any](t testing.TB, f encoding.Format, v T) []byte {
	t.Helper()

	w := encoding.NewWriter(f)
	err := ast.Encode(wire.NewEncoder(w), v)
	assert.NoError(t, err)
	return w.Bytes()
}

// Decode decodes a value of the schema type T that must span all of b.
func Decode[T any](f encoding.Format, b []byte) (T, error) {
	d := wire.NewDecoder(encoding.NewReader(b, f), 0)
	v, err := ast.Decode[T](d)
	if err != nil {
		return v, err
	}
	if err := d.Finish(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
