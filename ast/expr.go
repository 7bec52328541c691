package ast

import (
	"github.com/astwire/astwire/internal/wire"
)

// ExprKind is the discriminant of an Expr.
type ExprKind uint32

const (
	ExprNumberLiteral ExprKind = iota
	ExprStringLiteral
	ExprBooleanLiteral
	ExprNullLiteral
	ExprUndefinedLiteral
	ExprUnaryOperator
	ExprBinaryOperator
	ExprConditionalOperator
	ExprArrayLiteral
	ExprObjectLiteral
	ExprLambda
	ExprVariable
	ExprGlobalObjects
	ExprImportedVariable
	ExprGet
	ExprCall
	ExprNew
	ExprTypeAssertion
)

func (k ExprKind) String() string {
	return exprUnion.CaseName(uint32(k))
}

// An Expr is an expression.
type Expr interface {
	Kind() ExprKind
	encodePayload(e *wire.Encoder) error
}

// NumberLiteral is a 32-bit integer literal.
type NumberLiteral int32

func (NumberLiteral) Kind() ExprKind { return ExprNumberLiteral }

func (x NumberLiteral) encodePayload(e *wire.Encoder) error {
	return wire.PutI32(e, int32(x))
}

// StringLiteral is a string literal.
type StringLiteral string

func (StringLiteral) Kind() ExprKind { return ExprStringLiteral }

func (x StringLiteral) encodePayload(e *wire.Encoder) error {
	return wire.PutStr(e, string(x))
}

// BooleanLiteral is true or false.
type BooleanLiteral bool

func (BooleanLiteral) Kind() ExprKind { return ExprBooleanLiteral }

func (x BooleanLiteral) encodePayload(e *wire.Encoder) error {
	return wire.PutBool(e, bool(x))
}

// NullLiteral is null.
type NullLiteral struct{}

func (NullLiteral) Kind() ExprKind { return ExprNullLiteral }

func (NullLiteral) encodePayload(*wire.Encoder) error { return nil }

// UndefinedLiteral is undefined.
type UndefinedLiteral struct{}

func (UndefinedLiteral) Kind() ExprKind { return ExprUndefinedLiteral }

func (UndefinedLiteral) encodePayload(*wire.Encoder) error { return nil }

// UnaryOperator is the operator of a UnaryOperatorExpr.
type UnaryOperator uint8

const (
	// -a
	Minus UnaryOperator = iota
	// ~a
	BitwiseNot
	// !a
	LogicalNot
)

func (op UnaryOperator) String() string {
	return unaryOperatorUnion.CaseName(uint32(op))
}

// UnaryOperatorExpr applies a prefix operator.
type UnaryOperatorExpr struct {
	Operator UnaryOperator
	Expr     Expr
}

func (*UnaryOperatorExpr) Kind() ExprKind { return ExprUnaryOperator }

func (x *UnaryOperatorExpr) encodePayload(e *wire.Encoder) error {
	return encodeUnaryOperatorExpr(e, x)
}

// BinaryOperator is the operator of a BinaryOperatorExpr, or the compound
// operator of a SetStatement.
type BinaryOperator uint8

const (
	Exponentiation     BinaryOperator = iota // **
	Multiplication                           // *
	Division                                 // /
	Remainder                                // %
	Addition                                 // +
	Subtraction                              // -
	LeftShift                                // <<
	SignedRightShift                         // >>
	UnsignedRightShift                       // >>>
	LessThan                                 // <
	LessThanOrEqual                          // <=
	Equal                                    // ===
	NotEqual                                 // !==
	BitwiseAnd                               // &
	BitwiseXOr                               // ^
	BitwiseOr                                // |
	LogicalAnd                               // &&
	LogicalOr                                // ||
)

func (op BinaryOperator) String() string {
	return binaryOperatorUnion.CaseName(uint32(op))
}

// BinaryOperatorExpr applies an infix operator.
type BinaryOperatorExpr struct {
	Operator BinaryOperator
	Left     Expr
	Right    Expr
}

func (*BinaryOperatorExpr) Kind() ExprKind { return ExprBinaryOperator }

func (x *BinaryOperatorExpr) encodePayload(e *wire.Encoder) error {
	return encodeBinaryOperatorExpr(e, x)
}

// ConditionalOperatorExpr is `condition ? thenExpr : elseExpr`.
type ConditionalOperatorExpr struct {
	Condition Expr
	ThenExpr  Expr
	ElseExpr  Expr
}

func (*ConditionalOperatorExpr) Kind() ExprKind { return ExprConditionalOperator }

func (x *ConditionalOperatorExpr) encodePayload(e *wire.Encoder) error {
	return encodeConditionalOperatorExpr(e, x)
}

// ArrayLiteral is `[a, ...b]`.
type ArrayLiteral []ArrayItem

func (ArrayLiteral) Kind() ExprKind { return ExprArrayLiteral }

func (x ArrayLiteral) encodePayload(e *wire.Encoder) error {
	return wire.EncodeSeq(e, []ArrayItem(x), byValue(encodeArrayItem))
}

// ArrayItem is an element of an ArrayLiteral, spread with `...` if Spread
// is set.
type ArrayItem struct {
	Expr   Expr
	Spread bool
}

// ObjectLiteral is `{ key: value, ...spread }`.
type ObjectLiteral []Member

func (ObjectLiteral) Kind() ExprKind { return ExprObjectLiteral }

func (x ObjectLiteral) encodePayload(e *wire.Encoder) error {
	return wire.EncodeSeq(e, []Member(x), encodeMember)
}

// MemberKind is the discriminant of a Member.
type MemberKind uint32

const (
	MemberSpread MemberKind = iota
	MemberKeyValue
)

func (k MemberKind) String() string {
	return memberUnion.CaseName(uint32(k))
}

// A Member is an entry of an ObjectLiteral: Spread or *KeyValue.
type Member interface {
	Kind() MemberKind
	encodePayload(e *wire.Encoder) error
}

// Spread is `...expr` inside an object literal.
type Spread struct {
	Expr Expr
}

func (Spread) Kind() MemberKind { return MemberSpread }

func (x Spread) encodePayload(e *wire.Encoder) error {
	return encodeExpr(e, x.Expr)
}

// KeyValue is `key: value`.
type KeyValue struct {
	Key   string
	Value Expr
}

func (*KeyValue) Kind() MemberKind { return MemberKeyValue }

func (x *KeyValue) encodePayload(e *wire.Encoder) error {
	return encodeKeyValue(e, x)
}

// LambdaExpr is an arrow function.
type LambdaExpr struct {
	ParameterList     []Parameter
	TypeParameterList []Identifier
	ReturnType        Type
	StatementList     []Statement
}

func (*LambdaExpr) Kind() ExprKind { return ExprLambda }

func (x *LambdaExpr) encodePayload(e *wire.Encoder) error {
	return encodeLambdaExpr(e, x)
}

// VariableExpr refers to a variable in scope.
type VariableExpr Identifier

func (VariableExpr) Kind() ExprKind { return ExprVariable }

func (x VariableExpr) encodePayload(e *wire.Encoder) error {
	return encodeIdentifier(e, Identifier(x))
}

// GlobalObjectExpr refers to a global object such as Math or console.
type GlobalObjectExpr Identifier

func (GlobalObjectExpr) Kind() ExprKind { return ExprGlobalObjects }

func (x GlobalObjectExpr) encodePayload(e *wire.Encoder) error {
	return encodeIdentifier(e, Identifier(x))
}

// ImportedVariable refers to a variable exported by another module.
type ImportedVariable struct {
	ModuleName string
	Name       Identifier
}

func (*ImportedVariable) Kind() ExprKind { return ExprImportedVariable }

func (x *ImportedVariable) encodePayload(e *wire.Encoder) error {
	return encodeImportedVariable(e, x)
}

// GetExpr is `expr[propertyExpr]`.
type GetExpr struct {
	Expr         Expr
	PropertyExpr Expr
}

func (*GetExpr) Kind() ExprKind { return ExprGet }

func (x *GetExpr) encodePayload(e *wire.Encoder) error {
	return encodeGetExpr(e, x)
}

// CallExpr is `expr(parameters...)`.
type CallExpr struct {
	Expr          Expr
	ParameterList []Expr
}

func (*CallExpr) Kind() ExprKind { return ExprCall }

func (x *CallExpr) encodePayload(e *wire.Encoder) error {
	return encodeCallExpr(e, x)
}

// NewExpr is `new expr(parameters...)`. Its payload is a CallExpr record.
type NewExpr CallExpr

func (*NewExpr) Kind() ExprKind { return ExprNew }

func (x *NewExpr) encodePayload(e *wire.Encoder) error {
	return encodeCallExpr(e, (*CallExpr)(x))
}

// TypeAssertion is `expr as Type`.
type TypeAssertion struct {
	Expr Expr
	Type Type
}

func (*TypeAssertion) Kind() ExprKind { return ExprTypeAssertion }

func (x *TypeAssertion) encodePayload(e *wire.Encoder) error {
	return encodeTypeAssertion(e, x)
}
