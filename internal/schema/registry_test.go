package schema_test

import (
	"testing"

	"github.com/astwire/astwire/internal/schema"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func shapes() *schema.Registry {
	return schema.New().
		DefineUnion("Shape",
			schema.V("Circle", schema.I32),
			schema.V("Square", schema.Ref("Box")),
			schema.Marker("Empty"),
		).
		DefineRecord("Box",
			schema.F("label", schema.Str),
			schema.F("children", schema.Seq(schema.Ref("Shape"))),
			schema.F("weight", schema.Option(schema.I32)),
		)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		reg   *schema.Registry
		fails bool
	}{
		{"valid", shapes(), false},
		{"undefined ref", schema.New().DefineRecord("A", schema.F("b", schema.Ref("B"))), true},
		{"undefined elem", schema.New().DefineRecord("A", schema.F("b", schema.Seq(schema.Option(schema.Ref("B"))))), true},
		{"duplicate type", shapes().DefineRecord("Box"), true},
		{"duplicate field", schema.New().DefineRecord("A", schema.F("x", schema.I32), schema.F("x", schema.Bool)), true},
		{"empty union", schema.New().DefineUnion("U"), true},
		{"duplicate variant", schema.New().DefineUnion("U", schema.Marker("A"), schema.V("A", schema.Str)), true},
		{"seq without elem", schema.New().DefineRecord("A", schema.F("x", schema.Type{Kind: schema.KindSeq})), true},
		{"zero type", schema.New().DefineRecord("A", schema.F("x", schema.Type{})), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.reg.Validate()
			if test.fails {
				require.Error(t, err)
				require.True(t, errors.Is(err, schema.ErrInvalidSchema))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	reg := shapes()

	d, err := reg.Lookup("Shape")
	require.NoError(t, err)
	require.Equal(t, schema.Union, d.Kind)

	v, ok := d.Variant(1)
	require.True(t, ok)
	require.Equal(t, "Square", v.Name)
	require.Equal(t, "Box", v.Payload.Name)

	_, ok = d.Variant(3)
	require.False(t, ok)

	idx, ok := d.VariantIndex("Empty")
	require.True(t, ok)
	require.EqualValues(t, 2, idx)

	_, err = reg.Lookup("Circle")
	require.ErrorIs(t, err, schema.ErrUnknownType)

	require.Equal(t, []string{"Shape", "Box"}, reg.Names())
}

func TestString(t *testing.T) {
	reg := shapes()

	shape, err := reg.Lookup("Shape")
	require.NoError(t, err)
	require.Equal(t, "union Shape = Circle(i32) | Square(Box) | Empty", shape.String())

	box, err := reg.Lookup("Box")
	require.NoError(t, err)
	require.Equal(t, "record Box(label str, children seq<Shape>, weight option<i32>)", box.String())
}
