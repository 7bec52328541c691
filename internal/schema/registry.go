// Package schema describes the closed catalogue of record and sum types
// that make up a tree schema. The codec of every type can be derived from
// its definition: records are their fields in order, sum types are a
// discriminant equal to the position of the variant followed by its
// payload.
package schema

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownType is returned when looking up a name that is not defined.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidSchema is returned by Validate.
	ErrInvalidSchema = errors.New("invalid schema")
)

// DefinitionKind tells records and sum types apart.
type DefinitionKind uint8

const (
	Record DefinitionKind = iota + 1
	Union
)

func (k DefinitionKind) String() string {
	switch k {
	case Record:
		return "record"
	case Union:
		return "union"
	}
	return "invalid"
}

// A Definition is a named record or sum type.
type Definition struct {
	Name     string
	Kind     DefinitionKind
	Fields   []Field
	Variants []Variant
}

// Variant returns the variant with discriminant idx.
func (d *Definition) Variant(idx uint32) (Variant, bool) {
	if d.Kind != Union || int64(idx) >= int64(len(d.Variants)) {
		return Variant{}, false
	}
	return d.Variants[idx], true
}

// VariantIndex returns the discriminant of the variant called name.
func (d *Definition) VariantIndex(name string) (uint32, bool) {
	for i, v := range d.Variants {
		if v.Name == name {
			return uint32(i), true
		}
	}
	return 0, false
}

// String returns a one-line description, e.g.
// record GetExpr(expr Expr, property_expr Expr).
func (d *Definition) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s", d.Kind, d.Name)
	switch d.Kind {
	case Record:
		sb.WriteByte('(')
		for i, f := range d.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s %s", f.Name, f.Type)
		}
		sb.WriteByte(')')
	case Union:
		sb.WriteString(" = ")
		for i, v := range d.Variants {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(v.Name)
			if v.Payload != nil {
				fmt.Fprintf(&sb, "(%s)", v.Payload)
			}
		}
	}

	return sb.String()
}

// A Registry holds definitions in declaration order.
type Registry struct {
	defs   []*Definition
	byName map[string]*Definition
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*Definition),
	}
}

func (r *Registry) add(d *Definition) *Registry {
	r.defs = append(r.defs, d)
	if _, ok := r.byName[d.Name]; !ok {
		r.byName[d.Name] = d
	}
	return r
}

// DefineRecord adds a record whose wire order is the order of fields.
func (r *Registry) DefineRecord(name string, fields ...Field) *Registry {
	return r.add(&Definition{Name: name, Kind: Record, Fields: fields})
}

// DefineUnion adds a sum type. The discriminant of each variant is its
// position in variants.
func (r *Registry) DefineUnion(name string, variants ...Variant) *Registry {
	return r.add(&Definition{Name: name, Kind: Union, Variants: variants})
}

// Lookup returns the definition called name.
func (r *Registry) Lookup(name string) (*Definition, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", name)
	}
	return d, nil
}

// Definitions returns every definition in declaration order.
func (r *Registry) Definitions() []*Definition {
	return r.defs
}

// Names returns the name of every definition in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Validate checks that the registry is closed and unambiguous: names are
// unique, every reference resolves, records have uniquely named fields and
// sum types have at least one uniquely named variant.
func (r *Registry) Validate() error {
	var errs error

	seen := make(map[string]struct{}, len(r.defs))
	for _, d := range r.defs {
		if _, ok := seen[d.Name]; ok {
			errs = errors.CombineErrors(errs, errors.Wrapf(ErrInvalidSchema, "%s defined twice", d.Name))
		}
		seen[d.Name] = struct{}{}

		switch d.Kind {
		case Record:
			names := make(map[string]struct{}, len(d.Fields))
			for _, f := range d.Fields {
				if _, ok := names[f.Name]; ok {
					errs = errors.CombineErrors(errs, errors.Wrapf(ErrInvalidSchema, "%s: duplicate field %s", d.Name, f.Name))
				}
				names[f.Name] = struct{}{}
				errs = errors.CombineErrors(errs, r.checkType(d.Name+"."+f.Name, f.Type))
			}
		case Union:
			if len(d.Variants) == 0 {
				errs = errors.CombineErrors(errs, errors.Wrapf(ErrInvalidSchema, "%s has no variant", d.Name))
			}
			names := make(map[string]struct{}, len(d.Variants))
			for _, v := range d.Variants {
				if _, ok := names[v.Name]; ok {
					errs = errors.CombineErrors(errs, errors.Wrapf(ErrInvalidSchema, "%s: duplicate variant %s", d.Name, v.Name))
				}
				names[v.Name] = struct{}{}
				if v.Payload != nil {
					errs = errors.CombineErrors(errs, r.checkType(d.Name+"."+v.Name, *v.Payload))
				}
			}
		default:
			errs = errors.CombineErrors(errs, errors.Wrapf(ErrInvalidSchema, "%s has no kind", d.Name))
		}
	}

	return errs
}

func (r *Registry) checkType(where string, t Type) error {
	switch t.Kind {
	case KindI32, KindBool, KindStr:
		return nil
	case KindRef:
		if _, ok := r.byName[t.Name]; !ok {
			return errors.Wrapf(ErrInvalidSchema, "%s: undefined type %s", where, t.Name)
		}
		return nil
	case KindSeq, KindOption:
		if t.Elem == nil {
			return errors.Wrapf(ErrInvalidSchema, "%s: %s without element type", where, t)
		}
		return r.checkType(where, *t.Elem)
	}

	return errors.Wrapf(ErrInvalidSchema, "%s: invalid type", where)
}
