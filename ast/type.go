package ast

import (
	"github.com/astwire/astwire/internal/wire"
	"github.com/cockroachdb/errors"
)

// TypeKind is the discriminant of a Type.
type TypeKind uint32

const (
	TypeNumber TypeKind = iota
	TypeString
	TypeBoolean
	TypeUndefined
	TypeNull
	TypeNever
	TypeVoid
	TypeObject
	TypeFunction
	TypeWithParameter
	TypeUnion
	TypeIntersection
	TypeImported
	TypeScopeInFile
	TypeScopeInGlobal
	TypeStringLiteral
)

func (k TypeKind) String() string {
	return typeUnion.CaseName(uint32(k))
}

// A Type is a TypeScript type.
type Type interface {
	Kind() TypeKind
	encodePayload(e *wire.Encoder) error
}

// BasicType is one of the types without payload. Its value is its
// discriminant.
type BasicType uint8

const (
	NumberType BasicType = iota
	StringType
	BooleanType
	UndefinedType
	NullType
	NeverType
	VoidType
)

func (b BasicType) Kind() TypeKind { return TypeKind(b) }

func (b BasicType) String() string {
	return TypeKind(b).String()
}

func (b BasicType) encodePayload(*wire.Encoder) error {
	if b > VoidType {
		return errors.Wrapf(wire.ErrInvalidVariant, "basic type %d", uint8(b))
	}
	return nil
}

// ObjectType is `{ name: Type }`.
type ObjectType []MemberType

func (ObjectType) Kind() TypeKind { return TypeObject }

func (x ObjectType) encodePayload(e *wire.Encoder) error {
	return wire.EncodeSeq(e, []MemberType(x), byValue(encodeMemberType))
}

// MemberType is a property of an ObjectType, optional (`name?:`) unless
// Required is set.
type MemberType struct {
	Name     string
	Required bool
	Type     Type
	Document string
}

// FunctionType is `<T>(a: A) => R`.
type FunctionType struct {
	TypeParameterList []Identifier
	ParameterList     []Type
	ReturnType        Type
}

func (*FunctionType) Kind() TypeKind { return TypeFunction }

func (x *FunctionType) encodePayload(e *wire.Encoder) error {
	return encodeFunctionType(e, x)
}

// TypeWithTypeParameter is `Type<A, B>`.
type TypeWithTypeParameter struct {
	Type              Type
	TypeParameterList []Type
}

func (*TypeWithTypeParameter) Kind() TypeKind { return TypeWithParameter }

func (x *TypeWithTypeParameter) encodePayload(e *wire.Encoder) error {
	return encodeTypeWithTypeParameter(e, x)
}

// UnionType is `A | B`.
type UnionType []Type

func (UnionType) Kind() TypeKind { return TypeUnion }

func (x UnionType) encodePayload(e *wire.Encoder) error {
	return wire.EncodeSeq(e, []Type(x), encodeType)
}

// IntersectionType is `Left & Right`.
type IntersectionType struct {
	Left  Type
	Right Type
}

func (*IntersectionType) Kind() TypeKind { return TypeIntersection }

func (x *IntersectionType) encodePayload(e *wire.Encoder) error {
	return encodeIntersectionType(e, x)
}

// ImportedType refers to a type exported by another module.
type ImportedType struct {
	ModuleName string
	Name       Identifier
}

func (*ImportedType) Kind() TypeKind { return TypeImported }

func (x *ImportedType) encodePayload(e *wire.Encoder) error {
	return encodeImportedType(e, x)
}

// ScopeInFile refers to a type defined in the same module.
type ScopeInFile Identifier

func (ScopeInFile) Kind() TypeKind { return TypeScopeInFile }

func (x ScopeInFile) encodePayload(e *wire.Encoder) error {
	return encodeIdentifier(e, Identifier(x))
}

// ScopeInGlobal refers to a global type such as Date.
type ScopeInGlobal Identifier

func (ScopeInGlobal) Kind() TypeKind { return TypeScopeInGlobal }

func (x ScopeInGlobal) encodePayload(e *wire.Encoder) error {
	return encodeIdentifier(e, Identifier(x))
}

// StringLiteralType is a string literal type such as "ok".
type StringLiteralType string

func (StringLiteralType) Kind() TypeKind { return TypeStringLiteral }

func (x StringLiteralType) encodePayload(e *wire.Encoder) error {
	return wire.PutStr(e, string(x))
}
