package dynamic

import (
	"github.com/astwire/astwire/internal/schema"
	"github.com/astwire/astwire/internal/wire"
	"github.com/cockroachdb/errors"
)

// A Codec encodes and decodes values of the types of a registry.
type Codec struct {
	reg    *schema.Registry
	unions map[string]*wire.Union[Value]
}

// New returns a codec for reg, which must be valid.
func New(reg *schema.Registry) (*Codec, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	c := Codec{
		reg:    reg,
		unions: make(map[string]*wire.Union[Value]),
	}

	for _, d := range reg.Definitions() {
		if d.Kind != schema.Union {
			continue
		}

		cases := make([]wire.Case[Value], len(d.Variants))
		for i, v := range d.Variants {
			cases[i] = c.variantCase(d.Name, uint32(i), v)
		}
		c.unions[d.Name] = wire.NewUnion(d.Name, cases...)
	}

	return &c, nil
}

func (c *Codec) variantCase(typ string, idx uint32, v schema.Variant) wire.Case[Value] {
	return wire.Case[Value]{
		Name: v.Name,
		Decode: func(d *wire.Decoder) (Value, error) {
			x := Variant{Type: typ, Name: v.Name, Index: idx}
			if v.Payload != nil {
				p, err := c.decodeType(*v.Payload, d)
				if err != nil {
					return nil, err
				}
				x.Value = p
			}
			return &x, nil
		},
	}
}

// Decode reads a value of the type called name.
func (c *Codec) Decode(name string, d *wire.Decoder) (Value, error) {
	return c.decodeType(schema.Ref(name), d)
}

func (c *Codec) decodeType(t schema.Type, d *wire.Decoder) (Value, error) {
	switch t.Kind {
	case schema.KindI32:
		x, err := d.ReadI32()
		return I32(x), err
	case schema.KindBool:
		x, err := d.ReadBool()
		return Bool(x), err
	case schema.KindStr:
		x, err := d.ReadStr()
		return Str(x), err
	case schema.KindSeq:
		xs, err := wire.DecodeSeq(d, func(d *wire.Decoder) (Value, error) {
			return c.decodeType(*t.Elem, d)
		})
		if err != nil {
			return nil, err
		}
		return Seq(xs), nil
	case schema.KindOption:
		x, err := wire.DecodeOption(d, func(d *wire.Decoder) (Value, error) {
			return c.decodeType(*t.Elem, d)
		})
		if err != nil {
			return nil, err
		}
		if x == nil {
			return Option{}, nil
		}
		return Option{Value: *x}, nil
	case schema.KindRef:
		def, err := c.reg.Lookup(t.Name)
		if err != nil {
			return nil, err
		}
		if def.Kind == schema.Union {
			return c.unions[def.Name].Decode(d)
		}
		return c.decodeRecord(def, d)
	}

	return nil, errors.Newf("invalid schema type %s", t)
}

func (c *Codec) decodeRecord(def *schema.Definition, d *wire.Decoder) (Value, error) {
	r := Record{
		Type:   def.Name,
		Fields: make([]Field, len(def.Fields)),
	}

	rec := d.Record(def.Name)
	for i, f := range def.Fields {
		r.Fields[i] = Field{
			Name: f.Name,
			Value: wire.Get(rec, f.Name, func(d *wire.Decoder) (Value, error) {
				return c.decodeType(f.Type, d)
			}),
		}
	}
	if err := rec.Close(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Encode writes v as a value of the type called name.
func (c *Codec) Encode(name string, v Value, e *wire.Encoder) error {
	return c.encodeType(schema.Ref(name), v, e)
}

func (c *Codec) encodeType(t schema.Type, v Value, e *wire.Encoder) error {
	switch t.Kind {
	case schema.KindI32:
		x, ok := v.(I32)
		if !ok {
			return mismatch("i32", v)
		}
		return wire.PutI32(e, int32(x))
	case schema.KindBool:
		x, ok := v.(Bool)
		if !ok {
			return mismatch("bool", v)
		}
		return wire.PutBool(e, bool(x))
	case schema.KindStr:
		x, ok := v.(Str)
		if !ok {
			return mismatch("str", v)
		}
		return wire.PutStr(e, string(x))
	case schema.KindSeq:
		xs, ok := v.(Seq)
		if !ok {
			return mismatch(t.String(), v)
		}
		return wire.EncodeSeq(e, []Value(xs), func(e *wire.Encoder, x Value) error {
			return c.encodeType(*t.Elem, x, e)
		})
	case schema.KindOption:
		x, ok := v.(Option)
		if !ok {
			return mismatch(t.String(), v)
		}
		var p *Value
		if x.Value != nil {
			p = &x.Value
		}
		return wire.EncodeOption(e, p, func(e *wire.Encoder, x Value) error {
			return c.encodeType(*t.Elem, x, e)
		})
	case schema.KindRef:
		def, err := c.reg.Lookup(t.Name)
		if err != nil {
			return err
		}
		if def.Kind == schema.Union {
			return c.encodeVariant(def, v, e)
		}
		return c.encodeRecord(def, v, e)
	}

	return errors.Newf("invalid schema type %s", t)
}

func (c *Codec) encodeRecord(def *schema.Definition, v Value, e *wire.Encoder) error {
	r, ok := v.(*Record)
	if !ok || r == nil {
		return mismatch("record "+def.Name, v)
	}
	if r.Type != "" && r.Type != def.Name {
		return errors.Wrapf(ErrTypeMismatch, "expected record %s, got %s", def.Name, r.Type)
	}
	if len(r.Fields) != len(def.Fields) {
		return errors.Wrapf(ErrTypeMismatch, "%s has %d fields, got %d", def.Name, len(def.Fields), len(r.Fields))
	}

	rec := e.Record(def.Name)
	for i, f := range def.Fields {
		wire.Put(rec, f.Name, r.Fields[i], func(e *wire.Encoder, x Field) error {
			if x.Name != f.Name {
				return errors.Wrapf(ErrTypeMismatch, "unexpected field %q", x.Name)
			}
			return c.encodeType(f.Type, x.Value, e)
		})
	}
	return rec.Close()
}

func (c *Codec) encodeVariant(def *schema.Definition, v Value, e *wire.Encoder) error {
	x, ok := v.(*Variant)
	if !ok || x == nil {
		return mismatch("union "+def.Name, v)
	}

	idx, ok := def.VariantIndex(x.Name)
	if !ok {
		return errors.Wrapf(wire.ErrInvalidVariant, "%s has no variant %q", def.Name, x.Name)
	}
	if idx != x.Index {
		return errors.Wrapf(ErrTypeMismatch, "%s.%s has index %d, got %d", def.Name, x.Name, idx, x.Index)
	}

	payload := def.Variants[idx].Payload
	if payload == nil {
		if x.Value != nil {
			return errors.Wrapf(ErrTypeMismatch, "%s.%s carries no value", def.Name, x.Name)
		}
		return c.unions[def.Name].Encode(e, idx, nil)
	}

	return c.unions[def.Name].Encode(e, idx, func(e *wire.Encoder) error {
		return c.encodeType(*payload, x.Value, e)
	})
}
