package astwire

import (
	"sync"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/dynamic"
	"github.com/astwire/astwire/internal/encoding"
	json "github.com/goccy/go-json"
)

var schemaCodec = sync.OnceValues(func() (*dynamic.Codec, error) {
	return dynamic.New(ast.Schema())
})

// Inspect decodes b as a tree of the type called name, like "Code" or
// "Expr", and renders it as JSON. Records become objects with their fields
// in declaration order and sum types become
//
//	{"variant": "If", "index": 3, "value": {...}}
//
// b must hold exactly one tree.
func Inspect(name string, b []byte, opts *Options) ([]byte, error) {
	c, err := schemaCodec()
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	d := opts.newDecoder(encoding.NewReader(b, opts.Format))

	v, err := c.Decode(name, d)
	if err == nil {
		err = d.Finish()
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// Assemble is the inverse of Inspect: it encodes the JSON rendering of a
// tree of the type called name.
func Assemble(name string, data []byte, opts *Options) ([]byte, error) {
	c, err := schemaCodec()
	if err != nil {
		return nil, err
	}

	v, err := c.ParseJSON(name, data)
	if err != nil {
		return nil, err
	}

	e, w := opts.withDefaults().newEncoder()
	if err := c.Encode(name, v, e); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
