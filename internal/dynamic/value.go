// Package dynamic encodes and decodes trees described only by a schema
// registry, without a Go type per node. Decoded trees can be rendered to
// JSON and parsed back, which makes encoded trees inspectable.
package dynamic

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// A Value is a node of a dynamic tree: I32, Bool, Str, *Record, *Variant,
// Seq or Option.
type Value interface {
	json.Marshaler
	isValue()
}

type I32 int32

type Bool bool

type Str string

// A Record holds the fields of a record in declaration order.
type Record struct {
	Type   string
	Fields []Field
}

type Field struct {
	Name  string
	Value Value
}

// Get returns the value of the field called name, or nil.
func (r *Record) Get(name string) Value {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// A Variant is one alternative of a sum type. Value is nil for variants
// without payload.
type Variant struct {
	Type  string
	Name  string
	Index uint32
	Value Value
}

type Seq []Value

// An Option holds an optional value, absent when Value is nil.
type Option struct {
	Value Value
}

func (I32) isValue()      {}
func (Bool) isValue()     {}
func (Str) isValue()      {}
func (*Record) isValue()  {}
func (*Variant) isValue() {}
func (Seq) isValue()      {}
func (Option) isValue()   {}

func (v I32) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

func (v Bool) MarshalJSON() ([]byte, error) {
	return strconv.AppendBool(nil, bool(v)), nil
}

func (v Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// MarshalJSON encodes the record as an object whose keys are in field
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		if err := writeValue(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

type variantJSON struct {
	Variant string `json:"variant"`
	Index   uint32 `json:"index"`
	Value   Value  `json:"value,omitempty"`
}

// MarshalJSON encodes the variant as {"variant": name, "index": n,
// "value": payload}, without "value" when there is no payload.
func (v *Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(variantJSON{
		Variant: v.Name,
		Index:   v.Index,
		Value:   v.Value,
	})
}

func (s Seq) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// MarshalJSON encodes an absent value as null and a present one as
// itself.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return o.Value.MarshalJSON()
}

func writeValue(buf *bytes.Buffer, v Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
