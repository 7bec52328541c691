package dynamic_test

import (
	"testing"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/dynamic"
	"github.com/astwire/astwire/internal/encoding"
	"github.com/astwire/astwire/internal/schema"
	"github.com/astwire/astwire/internal/testutil"
	"github.com/astwire/astwire/internal/testutil/assert"
	"github.com/astwire/astwire/internal/wire"
	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func shapes(t *testing.T) *dynamic.Codec {
	t.Helper()

	reg := schema.New().
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

	c, err := dynamic.New(reg)
	require.NoError(t, err)
	return c
}

func square() dynamic.Value {
	return &dynamic.Variant{
		Type:  "Shape",
		Name:  "Square",
		Index: 1,
		Value: &dynamic.Record{
			Type: "Box",
			Fields: []dynamic.Field{
				{Name: "label", Value: dynamic.Str("x")},
				{Name: "children", Value: dynamic.Seq{
					&dynamic.Variant{Type: "Shape", Name: "Circle", Index: 0, Value: dynamic.I32(1)},
					&dynamic.Variant{Type: "Shape", Name: "Empty", Index: 2},
				}},
				{Name: "weight", Value: dynamic.Option{Value: dynamic.I32(2)}},
			},
		},
	}
}

var squareBCS = []byte{1, 1, 'x', 2, 0, 1, 0, 0, 0, 2, 1, 2, 0, 0, 0}

const squareJSON = `{"variant":"Square","index":1,"value":{"label":"x","children":[{"variant":"Circle","index":0,"value":1},{"variant":"Empty","index":2}],"weight":2}}`

func decode(c *dynamic.Codec, name string, f encoding.Format, b []byte) (dynamic.Value, error) {
	d := wire.NewDecoder(encoding.NewReader(b, f), 0)
	v, err := c.Decode(name, d)
	if err != nil {
		return nil, err
	}
	return v, d.Finish()
}

func encode(c *dynamic.Codec, name string, f encoding.Format, v dynamic.Value) ([]byte, error) {
	w := encoding.NewWriter(f)
	err := c.Encode(name, v, wire.NewEncoder(w))
	return w.Bytes(), err
}

func TestDecode(t *testing.T) {
	c := shapes(t)

	v, err := decode(c, "Shape", encoding.BCS, squareBCS)
	assert.NoError(t, err)
	require.Empty(t, cmp.Diff(square(), v))

	v, err = decode(c, "Shape", encoding.BCS, []byte{2})
	assert.NoError(t, err)
	require.Equal(t, &dynamic.Variant{Type: "Shape", Name: "Empty", Index: 2}, v)

	_, err = decode(c, "Shape", encoding.BCS, []byte{3})
	assert.Fault(t, err, wire.ErrInvalidVariant, "Shape")

	_, err = decode(c, "Shape", encoding.BCS, squareBCS[:len(squareBCS)-1])
	require.ErrorIs(t, err, encoding.ErrTruncated)

	_, err = decode(c, "Circle", encoding.BCS, squareBCS)
	require.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestEncode(t *testing.T) {
	c := shapes(t)

	b, err := encode(c, "Shape", encoding.BCS, square())
	assert.NoError(t, err)
	require.Equal(t, squareBCS, b)
}

func TestEncodeMismatch(t *testing.T) {
	c := shapes(t)

	box := func(fields ...dynamic.Field) dynamic.Value {
		return &dynamic.Variant{Type: "Shape", Name: "Square", Index: 1, Value: &dynamic.Record{Fields: fields}}
	}
	children := dynamic.Field{Name: "children", Value: dynamic.Seq{}}
	weight := dynamic.Field{Name: "weight", Value: dynamic.Option{}}

	tests := []struct {
		name   string
		v      dynamic.Value
		target error
	}{
		{"record for union", &dynamic.Record{Type: "Box"}, dynamic.ErrTypeMismatch},
		{"unknown variant", &dynamic.Variant{Name: "Triangle"}, wire.ErrInvalidVariant},
		{"wrong index", &dynamic.Variant{Name: "Empty", Index: 1}, dynamic.ErrTypeMismatch},
		{"marker with value", &dynamic.Variant{Name: "Empty", Index: 2, Value: dynamic.I32(1)}, dynamic.ErrTypeMismatch},
		{"wrong payload", &dynamic.Variant{Name: "Circle", Value: dynamic.Str("1")}, dynamic.ErrTypeMismatch},
		{"missing payload", &dynamic.Variant{Name: "Circle"}, dynamic.ErrTypeMismatch},
		{"missing field", box(children, weight), dynamic.ErrTypeMismatch},
		{"renamed field", box(dynamic.Field{Name: "name", Value: dynamic.Str("")}, children, weight), dynamic.ErrTypeMismatch},
		{"option not wrapped", box(dynamic.Field{Name: "label", Value: dynamic.Str("")}, children, dynamic.Field{Name: "weight", Value: dynamic.I32(1)}), dynamic.ErrTypeMismatch},
		{"nil child", box(dynamic.Field{Name: "label", Value: dynamic.Str("")}, dynamic.Field{Name: "children", Value: dynamic.Seq{nil}}, weight), dynamic.ErrTypeMismatch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := encode(c, "Shape", encoding.BCS, test.v)
			require.ErrorIs(t, err, test.target)
		})
	}

	t.Run("located", func(t *testing.T) {
		v := box(dynamic.Field{Name: "label", Value: dynamic.I32(0)}, children, weight)
		_, err := encode(c, "Shape", encoding.BCS, v)
		assert.Fault(t, err, dynamic.ErrTypeMismatch, "Shape.Square.label")
	})
}

func TestJSON(t *testing.T) {
	c := shapes(t)

	data, err := json.Marshal(square())
	require.NoError(t, err)
	require.JSONEq(t, squareJSON, string(data))

	v, err := c.ParseJSON("Shape", []byte(squareJSON))
	assert.NoError(t, err)
	require.Empty(t, cmp.Diff(square(), v))

	// index is optional when parsing.
	v, err = c.ParseJSON("Shape", []byte(`{"variant": "Empty"}`))
	assert.NoError(t, err)
	require.Equal(t, &dynamic.Variant{Type: "Shape", Name: "Empty", Index: 2}, v)
}

func TestRecordFieldOrder(t *testing.T) {
	r := &dynamic.Record{Fields: []dynamic.Field{
		{Name: "z", Value: dynamic.Bool(true)},
		{Name: "a", Value: dynamic.Str("say \"hi\"")},
		{Name: "m", Value: dynamic.Seq{}},
	}}

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"z":true,"a":"say \"hi\"","m":[]}`, string(data))
}

func TestParseJSONErrors(t *testing.T) {
	c := shapes(t)

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"array for union", `[]`},
		{"missing variant", `{"index": 0, "value": 1}`},
		{"unknown variant", `{"variant": "Triangle"}`},
		{"index mismatch", `{"variant": "Empty", "index": 0}`},
		{"marker with value", `{"variant": "Empty", "value": 1}`},
		{"missing value", `{"variant": "Circle"}`},
		{"i32 overflow", `{"variant": "Circle", "value": 2147483648}`},
		{"float", `{"variant": "Circle", "value": 1.5}`},
		{"string for i32", `{"variant": "Circle", "value": "1"}`},
		{"missing field", `{"variant": "Square", "value": {"label": "", "children": []}}`},
		{"unknown field", `{"variant": "Square", "value": {"label": "", "children": [], "weight": null, "color": 1}}`},
		{"bad child", `{"variant": "Square", "value": {"label": "", "children": [{"variant": "Square", "value": 1}], "weight": null}}`},
		{"object for seq", `{"variant": "Square", "value": {"label": "", "children": {}, "weight": null}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := c.ParseJSON("Shape", []byte(test.data))
			require.ErrorIs(t, err, dynamic.ErrInvalidJSON)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := dynamic.New(schema.New().DefineRecord("A", schema.F("b", schema.Ref("B"))))
	require.ErrorIs(t, err, schema.ErrInvalidSchema)
}

// The registry of the ast package describes exactly what its codec
// writes: a generic pass over the bytes reproduces them, directly and
// through JSON.
func TestASTSchema(t *testing.T) {
	c, err := dynamic.New(ast.Schema())
	require.NoError(t, err)

	for _, f := range testutil.Formats {
		t.Run(f.String(), func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				b := testutil.Encode(t, f, testutil.NewGen(seed).Code())

				v, err := decode(c, "Code", f, b)
				assert.NoError(t, err)

				got, err := encode(c, "Code", f, v)
				assert.NoError(t, err)
				require.Equal(t, b, got)

				data, err := json.Marshal(v)
				require.NoError(t, err)

				parsed, err := c.ParseJSON("Code", data)
				assert.NoError(t, err)
				got, err = encode(c, "Code", f, parsed)
				assert.NoError(t, err)
				require.Equal(t, b, got)
			}
		})
	}
}
