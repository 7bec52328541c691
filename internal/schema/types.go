package schema

// Kind identifies the shape of a field or payload type.
type Kind uint8

const (
	KindI32 Kind = iota + 1
	KindBool
	KindStr
	KindRef
	KindSeq
	KindOption
)

// A Type is the type of a record field or variant payload: a primitive,
// a reference to a definition of the registry, or a sequence or option of
// another type.
type Type struct {
	Kind Kind
	// Name of the referenced definition, for KindRef.
	Name string
	// Element type, for KindSeq and KindOption.
	Elem *Type
}

var (
	I32  = Type{Kind: KindI32}
	Bool = Type{Kind: KindBool}
	Str  = Type{Kind: KindStr}
)

// Ref returns a reference to the definition called name.
func Ref(name string) Type {
	return Type{Kind: KindRef, Name: name}
}

// Seq returns the type of an ordered sequence of elem.
func Seq(elem Type) Type {
	return Type{Kind: KindSeq, Elem: &elem}
}

// Option returns the type of an optional elem.
func Option(elem Type) Type {
	return Type{Kind: KindOption, Elem: &elem}
}

func (t Type) String() string {
	switch t.Kind {
	case KindI32:
		return "i32"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindRef:
		return t.Name
	case KindSeq:
		return "seq<" + t.Elem.elemString() + ">"
	case KindOption:
		return "option<" + t.Elem.elemString() + ">"
	}

	return "invalid"
}

// A Field is a named, typed member of a record.
type Field struct {
	Name string
	Type Type
}

// F returns a field.
func F(name string, t Type) Field {
	return Field{Name: name, Type: t}
}

// A Variant is an alternative of a sum type. Payload is nil for variants
// that carry no field.
type Variant struct {
	Name    string
	Payload *Type
}

// Marker returns a variant without payload.
func Marker(name string) Variant {
	return Variant{Name: name}
}

// V returns a variant carrying a payload of type t.
func V(name string, t Type) Variant {
	return Variant{Name: name, Payload: &t}
}

func (t *Type) elemString() string {
	if t == nil {
		return "?"
	}
	return t.String()
}
