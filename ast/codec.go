package ast

import (
	"github.com/astwire/astwire/internal/wire"
)

// Decode tables, indexed by discriminant. They are built in init because
// the decoders of recursive types refer back to them.
var (
	unaryOperatorUnion    *wire.Union[UnaryOperator]
	binaryOperatorUnion   *wire.Union[BinaryOperator]
	codeTypeUnion         *wire.Union[CodeType]
	exportDefinitionUnion *wire.Union[ExportDefinition]
	exprUnion             *wire.Union[Expr]
	memberUnion           *wire.Union[Member]
	statementUnion        *wire.Union[Statement]
	typeUnion             *wire.Union[Type]
)

func init() {
	unaryOperatorUnion = enumUnion[UnaryOperator]("UnaryOperator",
		"Minus", "BitwiseNot", "LogicalNot")

	binaryOperatorUnion = enumUnion[BinaryOperator]("BinaryOperator",
		"Exponentiation", "Multiplication", "Division", "Remainder",
		"Addition", "Subtraction", "LeftShift", "SignedRightShift",
		"UnsignedRightShift", "LessThan", "LessThanOrEqual", "Equal",
		"NotEqual", "BitwiseAnd", "BitwiseXOr", "BitwiseOr",
		"LogicalAnd", "LogicalOr")

	codeTypeUnion = enumUnion[CodeType]("CodeType",
		"JavaScript", "TypeScript")

	exportDefinitionUnion = wire.NewUnion("ExportDefinition", []wire.Case[ExportDefinition]{
		ExportTypeAlias: variant[ExportDefinition]("TypeAlias", decodeTypeAlias),
		ExportFunction:  variant[ExportDefinition]("Function", decodeFunction),
		ExportVariable:  variant[ExportDefinition]("Variable", decodeVariable),
	}...)

	exprUnion = wire.NewUnion("Expr", []wire.Case[Expr]{
		ExprNumberLiteral: variant[Expr]("NumberLiteral", func(d *wire.Decoder) (NumberLiteral, error) {
			x, err := d.ReadI32()
			return NumberLiteral(x), err
		}),
		ExprStringLiteral: variant[Expr]("StringLiteral", func(d *wire.Decoder) (StringLiteral, error) {
			x, err := d.ReadStr()
			return StringLiteral(x), err
		}),
		ExprBooleanLiteral: variant[Expr]("BooleanLiteral", func(d *wire.Decoder) (BooleanLiteral, error) {
			x, err := d.ReadBool()
			return BooleanLiteral(x), err
		}),
		ExprNullLiteral:         wire.Unit[Expr]("NullLiteral", NullLiteral{}),
		ExprUndefinedLiteral:    wire.Unit[Expr]("UndefinedLiteral", UndefinedLiteral{}),
		ExprUnaryOperator:       variant[Expr]("UnaryOperator", decodeUnaryOperatorExpr),
		ExprBinaryOperator:      variant[Expr]("BinaryOperator", decodeBinaryOperatorExpr),
		ExprConditionalOperator: variant[Expr]("ConditionalOperator", decodeConditionalOperatorExpr),
		ExprArrayLiteral: variant[Expr]("ArrayLiteral", func(d *wire.Decoder) (ArrayLiteral, error) {
			xs, err := wire.DecodeSeq(d, byRef(decodeArrayItem))
			return ArrayLiteral(xs), err
		}),
		ExprObjectLiteral: variant[Expr]("ObjectLiteral", func(d *wire.Decoder) (ObjectLiteral, error) {
			xs, err := wire.DecodeSeq(d, decodeMember)
			return ObjectLiteral(xs), err
		}),
		ExprLambda: variant[Expr]("Lambda", decodeLambdaExpr),
		ExprVariable: variant[Expr]("Variable", func(d *wire.Decoder) (VariableExpr, error) {
			x, err := decodeIdentifier(d)
			return VariableExpr(x), err
		}),
		ExprGlobalObjects: variant[Expr]("GlobalObjects", func(d *wire.Decoder) (GlobalObjectExpr, error) {
			x, err := decodeIdentifier(d)
			return GlobalObjectExpr(x), err
		}),
		ExprImportedVariable: variant[Expr]("ImportedVariable", decodeImportedVariable),
		ExprGet:              variant[Expr]("Get", decodeGetExpr),
		ExprCall:             variant[Expr]("Call", decodeCallExpr),
		ExprNew: variant[Expr]("New", func(d *wire.Decoder) (*NewExpr, error) {
			x, err := decodeCallExpr(d)
			return (*NewExpr)(x), err
		}),
		ExprTypeAssertion: variant[Expr]("TypeAssertion", decodeTypeAssertion),
	}...)

	memberUnion = wire.NewUnion("Member", []wire.Case[Member]{
		MemberSpread: variant[Member]("Spread", func(d *wire.Decoder) (Spread, error) {
			x, err := decodeExpr(d)
			return Spread{Expr: x}, err
		}),
		MemberKeyValue: variant[Member]("KeyValue", decodeKeyValue),
	}...)

	statementUnion = wire.NewUnion("Statement", []wire.Case[Statement]{
		StatementEvaluateExpr: variant[Statement]("EvaluateExpr", func(d *wire.Decoder) (EvaluateExpr, error) {
			x, err := decodeExpr(d)
			return EvaluateExpr{Expr: x}, err
		}),
		StatementSet: variant[Statement]("Set", decodeSetStatement),
		StatementIf:  variant[Statement]("If", decodeIfStatement),
		StatementThrowError: variant[Statement]("ThrowError", func(d *wire.Decoder) (ThrowError, error) {
			x, err := decodeExpr(d)
			return ThrowError{Expr: x}, err
		}),
		StatementReturn: variant[Statement]("Return", func(d *wire.Decoder) (Return, error) {
			x, err := decodeExpr(d)
			return Return{Expr: x}, err
		}),
		StatementReturnVoid:         wire.Unit[Statement]("ReturnVoid", ReturnVoid{}),
		StatementContinue:           wire.Unit[Statement]("Continue", Continue{}),
		StatementVariableDefinition: variant[Statement]("VariableDefinition", decodeVariableDefinitionStatement),
		StatementFunctionDefinition: variant[Statement]("FunctionDefinition", decodeFunctionDefinitionStatement),
		StatementFor:                variant[Statement]("For", decodeForStatement),
		StatementForOf:              variant[Statement]("ForOf", decodeForOfStatement),
		StatementWhileTrue: variant[Statement]("WhileTrue", func(d *wire.Decoder) (WhileTrue, error) {
			xs, err := wire.DecodeSeq(d, decodeStatement)
			return WhileTrue(xs), err
		}),
		StatementBreak:  wire.Unit[Statement]("Break", Break{}),
		StatementSwitch: variant[Statement]("Switch", decodeSwitchStatement),
	}...)

	typeUnion = wire.NewUnion("Type", []wire.Case[Type]{
		TypeNumber:    wire.Unit[Type]("Number", NumberType),
		TypeString:    wire.Unit[Type]("String", StringType),
		TypeBoolean:   wire.Unit[Type]("Boolean", BooleanType),
		TypeUndefined: wire.Unit[Type]("Undefined", UndefinedType),
		TypeNull:      wire.Unit[Type]("Null", NullType),
		TypeNever:     wire.Unit[Type]("Never", NeverType),
		TypeVoid:      wire.Unit[Type]("Void", VoidType),
		TypeObject: variant[Type]("Object", func(d *wire.Decoder) (ObjectType, error) {
			xs, err := wire.DecodeSeq(d, byRef(decodeMemberType))
			return ObjectType(xs), err
		}),
		TypeFunction:      variant[Type]("Function", decodeFunctionType),
		TypeWithParameter: variant[Type]("WithTypeParameter", decodeTypeWithTypeParameter),
		TypeUnion: variant[Type]("Union", func(d *wire.Decoder) (UnionType, error) {
			xs, err := wire.DecodeSeq(d, decodeType)
			return UnionType(xs), err
		}),
		TypeIntersection: variant[Type]("Intersection", decodeIntersectionType),
		TypeImported:     variant[Type]("ImportedType", decodeImportedType),
		TypeScopeInFile: variant[Type]("ScopeInFile", func(d *wire.Decoder) (ScopeInFile, error) {
			x, err := decodeIdentifier(d)
			return ScopeInFile(x), err
		}),
		TypeScopeInGlobal: variant[Type]("ScopeInGlobal", func(d *wire.Decoder) (ScopeInGlobal, error) {
			x, err := decodeIdentifier(d)
			return ScopeInGlobal(x), err
		}),
		TypeStringLiteral: variant[Type]("StringLiteral", func(d *wire.Decoder) (StringLiteralType, error) {
			x, err := d.ReadStr()
			return StringLiteralType(x), err
		}),
	}...)
}

// enumUnion returns the table of an enum whose variants carry no payload
// and whose values are their discriminants.
func enumUnion[T ~uint8](name string, variants ...string) *wire.Union[T] {
	cases := make([]wire.Case[T], len(variants))
	for i, v := range variants {
		cases[i] = wire.Unit(v, T(i))
	}
	return wire.NewUnion(name, cases...)
}

// variant returns the case of a variant whose payload decodes to V, a type
// implementing the sum type T.
func variant[T, V any](name string, fn func(*wire.Decoder) (V, error)) wire.Case[T] {
	return wire.Case[T]{
		Name: name,
		Decode: func(d *wire.Decoder) (T, error) {
			v, err := fn(d)
			if err != nil {
				var zero T
				return zero, err
			}
			return any(v).(T), nil
		},
	}
}

// byValue and byRef adapt record codecs to records stored by value.

func byValue[T any](fn func(*wire.Encoder, *T) error) func(*wire.Encoder, T) error {
	return func(e *wire.Encoder, x T) error {
		return fn(e, &x)
	}
}

func byRef[T any](fn func(*wire.Decoder) (*T, error)) func(*wire.Decoder) (T, error) {
	return func(d *wire.Decoder) (T, error) {
		x, err := fn(d)
		if err != nil {
			var zero T
			return zero, err
		}
		return *x, nil
	}
}

func encodeUnaryOperator(e *wire.Encoder, x UnaryOperator) error {
	return unaryOperatorUnion.Encode(e, uint32(x), nil)
}

func decodeUnaryOperator(d *wire.Decoder) (UnaryOperator, error) {
	return unaryOperatorUnion.Decode(d)
}

func encodeBinaryOperator(e *wire.Encoder, x BinaryOperator) error {
	return binaryOperatorUnion.Encode(e, uint32(x), nil)
}

func decodeBinaryOperator(d *wire.Decoder) (BinaryOperator, error) {
	return binaryOperatorUnion.Decode(d)
}

func encodeCodeType(e *wire.Encoder, x CodeType) error {
	return codeTypeUnion.Encode(e, uint32(x), nil)
}

func decodeCodeType(d *wire.Decoder) (CodeType, error) {
	return codeTypeUnion.Decode(d)
}

func encodeExportDefinition(e *wire.Encoder, x ExportDefinition) error {
	if x == nil {
		return e.Nil("ExportDefinition")
	}
	return exportDefinitionUnion.Encode(e, uint32(x.Kind()), x.encodePayload)
}

func decodeExportDefinition(d *wire.Decoder) (ExportDefinition, error) {
	return exportDefinitionUnion.Decode(d)
}

func encodeExpr(e *wire.Encoder, x Expr) error {
	if x == nil {
		return e.Nil("Expr")
	}
	return exprUnion.Encode(e, uint32(x.Kind()), x.encodePayload)
}

func decodeExpr(d *wire.Decoder) (Expr, error) {
	return exprUnion.Decode(d)
}

func encodeMember(e *wire.Encoder, x Member) error {
	if x == nil {
		return e.Nil("Member")
	}
	return memberUnion.Encode(e, uint32(x.Kind()), x.encodePayload)
}

func decodeMember(d *wire.Decoder) (Member, error) {
	return memberUnion.Decode(d)
}

func encodeStatement(e *wire.Encoder, x Statement) error {
	if x == nil {
		return e.Nil("Statement")
	}
	return statementUnion.Encode(e, uint32(x.Kind()), x.encodePayload)
}

func decodeStatement(d *wire.Decoder) (Statement, error) {
	return statementUnion.Decode(d)
}

func encodeType(e *wire.Encoder, x Type) error {
	if x == nil {
		return e.Nil("Type")
	}
	return typeUnion.Encode(e, uint32(x.Kind()), x.encodePayload)
}

func decodeType(d *wire.Decoder) (Type, error) {
	return typeUnion.Decode(d)
}
