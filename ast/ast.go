// Package ast defines the nodes of a JavaScript/TypeScript syntax tree and
// their binary encoding.
//
// Records are Go structs whose fields are encoded in declaration order.
// Sum types are sealed interfaces: each implementation reports its
// discriminant through Kind, and the same Kind constants index the decode
// tables. Operator enums are plain integers.
//
// Sequences carry no nil marker: a nil slice encodes like an empty one, and
// decoded slices are never nil. Optional fields are pointers, nil when
// absent.
//
// Encode and Decode handle any schema type, the static type argument
// selecting between a record and the sum type that wraps it. Most callers
// go through the astwire package instead.
package ast

import (
	"github.com/astwire/astwire/internal/wire"
)

// An Identifier is a name usable in source code. Use NewIdentifier to
// build one from an arbitrary word.
type Identifier string

// CodeType selects the output language of a Code.
type CodeType uint8

const (
	JavaScript CodeType = iota
	TypeScript
)

func (c CodeType) String() string {
	return codeTypeUnion.CaseName(uint32(c))
}

// Code is the root of a module.
type Code struct {
	ExportDefinitionList []ExportDefinition
	StatementList        []Statement
}

// ExportDefinitionKind is the discriminant of an ExportDefinition.
type ExportDefinitionKind uint32

const (
	ExportTypeAlias ExportDefinitionKind = iota
	ExportFunction
	ExportVariable
)

func (k ExportDefinitionKind) String() string {
	return exportDefinitionUnion.CaseName(uint32(k))
}

// An ExportDefinition is a top-level exported declaration: *TypeAlias,
// *Function or *Variable.
type ExportDefinition interface {
	Kind() ExportDefinitionKind
	encodePayload(e *wire.Encoder) error
}

// TypeAlias declares `export type Name<T> = Type`.
type TypeAlias struct {
	Name              Identifier
	TypeParameterList []Identifier
	Document          string
	Type              Type
}

func (*TypeAlias) Kind() ExportDefinitionKind { return ExportTypeAlias }

func (x *TypeAlias) encodePayload(e *wire.Encoder) error {
	return encodeTypeAlias(e, x)
}

// Function declares an exported function.
type Function struct {
	Name              Identifier
	Document          string
	TypeParameterList []Identifier
	ParameterList     []ParameterWithDocument
	ReturnType        Type
	StatementList     []Statement
}

func (*Function) Kind() ExportDefinitionKind { return ExportFunction }

func (x *Function) encodePayload(e *wire.Encoder) error {
	return encodeFunction(e, x)
}

// ParameterWithDocument is a documented function parameter.
type ParameterWithDocument struct {
	Name     Identifier
	Document string
	Type     Type
}

// Parameter is a lambda parameter.
type Parameter struct {
	Name Identifier
	Type Type
}

// Variable declares an exported constant.
type Variable struct {
	Name     Identifier
	Document string
	Type     Type
	Expr     Expr
}

func (*Variable) Kind() ExportDefinitionKind { return ExportVariable }

func (x *Variable) encodePayload(e *wire.Encoder) error {
	return encodeVariable(e, x)
}
