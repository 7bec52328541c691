package ast

import (
	"github.com/astwire/astwire/internal/wire"
)

// StatementKind is the discriminant of a Statement.
type StatementKind uint32

const (
	StatementEvaluateExpr StatementKind = iota
	StatementSet
	StatementIf
	StatementThrowError
	StatementReturn
	StatementReturnVoid
	StatementContinue
	StatementVariableDefinition
	StatementFunctionDefinition
	StatementFor
	StatementForOf
	StatementWhileTrue
	StatementBreak
	StatementSwitch
)

func (k StatementKind) String() string {
	return statementUnion.CaseName(uint32(k))
}

// A Statement is a statement of a function body or of a module.
type Statement interface {
	Kind() StatementKind
	encodePayload(e *wire.Encoder) error
}

// EvaluateExpr evaluates an expression for its side effects.
type EvaluateExpr struct {
	Expr Expr
}

func (EvaluateExpr) Kind() StatementKind { return StatementEvaluateExpr }

func (x EvaluateExpr) encodePayload(e *wire.Encoder) error {
	return encodeExpr(e, x.Expr)
}

// SetStatement is `target = expr`, or `target op= expr` when Operator is
// set.
type SetStatement struct {
	Target   Expr
	Operator *BinaryOperator
	Expr     Expr
}

func (*SetStatement) Kind() StatementKind { return StatementSet }

func (x *SetStatement) encodePayload(e *wire.Encoder) error {
	return encodeSetStatement(e, x)
}

// IfStatement is `if (condition) { ... }`.
type IfStatement struct {
	Condition         Expr
	ThenStatementList []Statement
}

func (*IfStatement) Kind() StatementKind { return StatementIf }

func (x *IfStatement) encodePayload(e *wire.Encoder) error {
	return encodeIfStatement(e, x)
}

// ThrowError is `throw new Error(expr)`.
type ThrowError struct {
	Expr Expr
}

func (ThrowError) Kind() StatementKind { return StatementThrowError }

func (x ThrowError) encodePayload(e *wire.Encoder) error {
	return encodeExpr(e, x.Expr)
}

// Return is `return expr`.
type Return struct {
	Expr Expr
}

func (Return) Kind() StatementKind { return StatementReturn }

func (x Return) encodePayload(e *wire.Encoder) error {
	return encodeExpr(e, x.Expr)
}

// ReturnVoid is a bare `return`.
type ReturnVoid struct{}

func (ReturnVoid) Kind() StatementKind { return StatementReturnVoid }

func (ReturnVoid) encodePayload(*wire.Encoder) error { return nil }

// Continue is `continue`.
type Continue struct{}

func (Continue) Kind() StatementKind { return StatementContinue }

func (Continue) encodePayload(*wire.Encoder) error { return nil }

// VariableDefinitionStatement is `const name: Type = expr`, or `let` when
// IsConst is false.
type VariableDefinitionStatement struct {
	Name    Identifier
	Type    Type
	Expr    Expr
	IsConst bool
}

func (*VariableDefinitionStatement) Kind() StatementKind { return StatementVariableDefinition }

func (x *VariableDefinitionStatement) encodePayload(e *wire.Encoder) error {
	return encodeVariableDefinitionStatement(e, x)
}

// FunctionDefinitionStatement defines a local function.
type FunctionDefinitionStatement struct {
	Name              Identifier
	TypeParameterList []Identifier
	ParameterList     []ParameterWithDocument
	ReturnType        Type
	StatementList     []Statement
}

func (*FunctionDefinitionStatement) Kind() StatementKind { return StatementFunctionDefinition }

func (x *FunctionDefinitionStatement) encodePayload(e *wire.Encoder) error {
	return encodeFunctionDefinitionStatement(e, x)
}

// ForStatement is `for (let counter = 0; counter < untilExpr; counter += 1)`.
type ForStatement struct {
	CounterVariableName Identifier
	UntilExpr           Expr
	StatementList       []Statement
}

func (*ForStatement) Kind() StatementKind { return StatementFor }

func (x *ForStatement) encodePayload(e *wire.Encoder) error {
	return encodeForStatement(e, x)
}

// ForOfStatement is `for (const element of iterableExpr)`.
type ForOfStatement struct {
	ElementVariableName Identifier
	IterableExpr        Expr
	StatementList       []Statement
}

func (*ForOfStatement) Kind() StatementKind { return StatementForOf }

func (x *ForOfStatement) encodePayload(e *wire.Encoder) error {
	return encodeForOfStatement(e, x)
}

// WhileTrue is `while (true) { ... }`.
type WhileTrue []Statement

func (WhileTrue) Kind() StatementKind { return StatementWhileTrue }

func (x WhileTrue) encodePayload(e *wire.Encoder) error {
	return wire.EncodeSeq(e, []Statement(x), encodeStatement)
}

// Break is `break`.
type Break struct{}

func (Break) Kind() StatementKind { return StatementBreak }

func (Break) encodePayload(*wire.Encoder) error { return nil }

// SwitchStatement is `switch (expr) { case ...: }`.
type SwitchStatement struct {
	Expr        Expr
	PatternList []Pattern
}

func (*SwitchStatement) Kind() StatementKind { return StatementSwitch }

func (x *SwitchStatement) encodePayload(e *wire.Encoder) error {
	return encodeSwitchStatement(e, x)
}

// Pattern is one `case "caseString":` clause of a SwitchStatement.
type Pattern struct {
	CaseString    string
	StatementList []Statement
}
