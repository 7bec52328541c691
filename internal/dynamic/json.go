package dynamic

import (
	"math"
	"strconv"

	"github.com/astwire/astwire/internal/schema"
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// ParseJSON parses the JSON rendering of a value of the type called name,
// as produced by the MarshalJSON methods of Value.
func (c *Codec) ParseJSON(name string, data []byte) (Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidJSON, err.Error())
	}

	return c.parseJSON(schema.Ref(name), name, dataType, value)
}

func invalidJSON(path string, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidJSON, "%s: "+format, append([]interface{}{path}, args...)...)
}

func expect(path string, want, got jsonparser.ValueType) error {
	if want == got {
		return nil
	}
	return invalidJSON(path, "expected %s, got %s", want, got)
}

func (c *Codec) parseJSON(t schema.Type, path string, dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch t.Kind {
	case schema.KindI32:
		if err := expect(path, jsonparser.Number, dataType); err != nil {
			return nil, err
		}
		i, err := jsonparser.ParseInt(data)
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return nil, invalidJSON(path, "%s is not an i32", data)
		}
		return I32(i), nil
	case schema.KindBool:
		if err := expect(path, jsonparser.Boolean, dataType); err != nil {
			return nil, err
		}
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, invalidJSON(path, "%v", err)
		}
		return Bool(b), nil
	case schema.KindStr:
		if err := expect(path, jsonparser.String, dataType); err != nil {
			return nil, err
		}
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, invalidJSON(path, "%v", err)
		}
		return Str(s), nil
	case schema.KindSeq:
		return c.parseSeq(t, path, dataType, data)
	case schema.KindOption:
		if dataType == jsonparser.Null {
			return Option{}, nil
		}
		v, err := c.parseJSON(*t.Elem, path, dataType, data)
		if err != nil {
			return nil, err
		}
		return Option{Value: v}, nil
	case schema.KindRef:
		def, err := c.reg.Lookup(t.Name)
		if err != nil {
			return nil, err
		}
		if err := expect(path, jsonparser.Object, dataType); err != nil {
			return nil, err
		}
		if def.Kind == schema.Union {
			return c.parseVariant(def, path, data)
		}
		return c.parseRecord(def, path, data)
	}

	return nil, errors.Newf("invalid schema type %s", t)
}

func (c *Codec) parseSeq(t schema.Type, path string, dataType jsonparser.ValueType, data []byte) (Value, error) {
	if err := expect(path, jsonparser.Array, dataType); err != nil {
		return nil, err
	}

	xs := Seq{}
	var perr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if perr != nil {
			return
		}
		if err != nil {
			perr = err
			return
		}

		v, err := c.parseJSON(*t.Elem, path+"["+strconv.Itoa(len(xs))+"]", dataType, value)
		if err != nil {
			perr = err
			return
		}
		xs = append(xs, v)
	})
	if perr != nil {
		return nil, perr
	}
	if err != nil {
		return nil, invalidJSON(path, "%v", err)
	}

	return xs, nil
}

func (c *Codec) parseRecord(def *schema.Definition, path string, data []byte) (Value, error) {
	known := make(map[string]struct{}, len(def.Fields))
	r := Record{
		Type:   def.Name,
		Fields: make([]Field, len(def.Fields)),
	}

	for i, f := range def.Fields {
		known[f.Name] = struct{}{}

		value, dataType, _, err := jsonparser.Get(data, f.Name)
		if dataType == jsonparser.NotExist {
			return nil, invalidJSON(path, "missing field %q", f.Name)
		}
		if err != nil {
			return nil, invalidJSON(path, "%v", err)
		}

		v, err := c.parseJSON(f.Type, path+"."+f.Name, dataType, value)
		if err != nil {
			return nil, err
		}
		r.Fields[i] = Field{Name: f.Name, Value: v}
	}

	err := jsonparser.ObjectEach(data, func(key, _ []byte, _ jsonparser.ValueType, _ int) error {
		if _, ok := known[string(key)]; !ok {
			return invalidJSON(path, "unknown field %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Codec) parseVariant(def *schema.Definition, path string, data []byte) (Value, error) {
	name, err := jsonparser.GetString(data, "variant")
	if err != nil {
		return nil, invalidJSON(path, "missing variant name")
	}

	idx, ok := def.VariantIndex(name)
	if !ok {
		return nil, invalidJSON(path, "%s has no variant %q", def.Name, name)
	}

	if i, err := jsonparser.GetInt(data, "index"); err == nil && i != int64(idx) {
		return nil, invalidJSON(path, "%s.%s has index %d, got %d", def.Name, name, idx, i)
	}

	x := Variant{Type: def.Name, Name: name, Index: idx}

	value, dataType, _, err := jsonparser.Get(data, "value")
	payload := def.Variants[idx].Payload
	switch {
	case payload == nil && dataType != jsonparser.NotExist:
		return nil, invalidJSON(path, "%s.%s carries no value", def.Name, name)
	case payload == nil:
		return &x, nil
	case dataType == jsonparser.NotExist:
		return nil, invalidJSON(path, "%s.%s requires a value", def.Name, name)
	case err != nil:
		return nil, invalidJSON(path, "%v", err)
	}

	v, err := c.parseJSON(*payload, path+"."+name, dataType, value)
	if err != nil {
		return nil, err
	}
	x.Value = v

	return &x, nil
}
