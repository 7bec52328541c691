// Package testutil provides helpers shared by the tests of the codec
// packages.
package testutil

import (
	"math/rand"

	"github.com/astwire/astwire/ast"
)

// Gen builds random well-formed trees. Two generators created with the
// same seed build the same trees. Sequences are never nil, matching what
// the decoder produces.
type Gen struct {
	r *rand.Rand

	// MaxDepth bounds the nesting of expressions, statements and types.
	MaxDepth int
	// MaxLen bounds the length of sequences.
	MaxLen int

	depth int
}

// NewGen returns a generator seeded with seed.
func NewGen(seed int64) *Gen {
	return &Gen{
		r:        rand.New(rand.NewSource(seed)),
		MaxDepth: 4,
		MaxLen:   3,
	}
}

const alphabet = "abcxyzABC019 _$\"\\\n\tあ€😀"

// Text returns a short string drawn from a mix of ASCII and multi-byte
// characters.
func (g *Gen) Text() string {
	runes := []rune(alphabet)
	out := make([]rune, g.r.Intn(8))
	for i := range out {
		out[i] = runes[g.r.Intn(len(runes))]
	}
	return string(out)
}

func (g *Gen) Bool() bool {
	return g.r.Intn(2) == 1
}

func (g *Gen) Int32() int32 {
	return int32(g.r.Uint32())
}

func (g *Gen) Identifier() ast.Identifier {
	return ast.NewIdentifier(g.Text())
}

func (g *Gen) enter() bool {
	g.depth++
	return g.depth < g.MaxDepth
}

func (g *Gen) leave() {
	g.depth--
}

func seq[T any](g *Gen, fn func() T) []T {
	n := 0
	if g.depth < g.MaxDepth {
		n = g.r.Intn(g.MaxLen + 1)
	}

	xs := make([]T, n)
	for i := range xs {
		xs[i] = fn()
	}
	return xs
}

func values[T any](g *Gen, fn func() *T) []T {
	return seq(g, func() T { return *fn() })
}

func (g *Gen) UnaryOperator() ast.UnaryOperator {
	return ast.UnaryOperator(g.r.Intn(3))
}

func (g *Gen) BinaryOperator() ast.BinaryOperator {
	return ast.BinaryOperator(g.r.Intn(18))
}

func (g *Gen) CodeType() ast.CodeType {
	return ast.CodeType(g.r.Intn(2))
}

func (g *Gen) Code() *ast.Code {
	return &ast.Code{
		ExportDefinitionList: seq(g, g.ExportDefinition),
		StatementList:        seq(g, g.Statement),
	}
}

func (g *Gen) ExportDefinition() ast.ExportDefinition {
	switch ast.ExportDefinitionKind(g.r.Intn(3)) {
	case ast.ExportTypeAlias:
		return g.TypeAlias()
	case ast.ExportFunction:
		return g.Function()
	}
	return g.Variable()
}

func (g *Gen) TypeAlias() *ast.TypeAlias {
	return &ast.TypeAlias{
		Name:              g.Identifier(),
		TypeParameterList: seq(g, g.Identifier),
		Document:          g.Text(),
		Type:              g.Type(),
	}
}

func (g *Gen) Function() *ast.Function {
	return &ast.Function{
		Name:              g.Identifier(),
		Document:          g.Text(),
		TypeParameterList: seq(g, g.Identifier),
		ParameterList:     values(g, g.ParameterWithDocument),
		ReturnType:        g.Type(),
		StatementList:     seq(g, g.Statement),
	}
}

func (g *Gen) ParameterWithDocument() *ast.ParameterWithDocument {
	return &ast.ParameterWithDocument{
		Name:     g.Identifier(),
		Document: g.Text(),
		Type:     g.Type(),
	}
}

func (g *Gen) Parameter() *ast.Parameter {
	return &ast.Parameter{
		Name: g.Identifier(),
		Type: g.Type(),
	}
}

func (g *Gen) Variable() *ast.Variable {
	return &ast.Variable{
		Name:     g.Identifier(),
		Document: g.Text(),
		Type:     g.Type(),
		Expr:     g.Expr(),
	}
}

// Expr returns a random expression. Past MaxDepth only leaves are built.
func (g *Gen) Expr() ast.Expr {
	defer g.leave()
	if !g.enter() {
		switch g.r.Intn(7) {
		case 0:
			return ast.NumberLiteral(g.Int32())
		case 1:
			return ast.StringLiteral(g.Text())
		case 2:
			return ast.BooleanLiteral(g.Bool())
		case 3:
			return ast.NullLiteral{}
		case 4:
			return ast.UndefinedLiteral{}
		case 5:
			return ast.VariableExpr(g.Identifier())
		}
		return ast.GlobalObjectExpr(g.Identifier())
	}

	switch ast.ExprKind(g.r.Intn(18)) {
	case ast.ExprNumberLiteral:
		return ast.NumberLiteral(g.Int32())
	case ast.ExprStringLiteral:
		return ast.StringLiteral(g.Text())
	case ast.ExprBooleanLiteral:
		return ast.BooleanLiteral(g.Bool())
	case ast.ExprNullLiteral:
		return ast.NullLiteral{}
	case ast.ExprUndefinedLiteral:
		return ast.UndefinedLiteral{}
	case ast.ExprUnaryOperator:
		return g.UnaryOperatorExpr()
	case ast.ExprBinaryOperator:
		return g.BinaryOperatorExpr()
	case ast.ExprConditionalOperator:
		return g.ConditionalOperatorExpr()
	case ast.ExprArrayLiteral:
		return ast.ArrayLiteral(values(g, g.ArrayItem))
	case ast.ExprObjectLiteral:
		return ast.ObjectLiteral(seq(g, g.Member))
	case ast.ExprLambda:
		return g.LambdaExpr()
	case ast.ExprVariable:
		return ast.VariableExpr(g.Identifier())
	case ast.ExprGlobalObjects:
		return ast.GlobalObjectExpr(g.Identifier())
	case ast.ExprImportedVariable:
		return g.ImportedVariable()
	case ast.ExprGet:
		return g.GetExpr()
	case ast.ExprCall:
		return g.CallExpr()
	case ast.ExprNew:
		return (*ast.NewExpr)(g.CallExpr())
	}
	return g.TypeAssertion()
}

func (g *Gen) UnaryOperatorExpr() *ast.UnaryOperatorExpr {
	return &ast.UnaryOperatorExpr{
		Operator: g.UnaryOperator(),
		Expr:     g.Expr(),
	}
}

func (g *Gen) BinaryOperatorExpr() *ast.BinaryOperatorExpr {
	return &ast.BinaryOperatorExpr{
		Operator: g.BinaryOperator(),
		Left:     g.Expr(),
		Right:    g.Expr(),
	}
}

func (g *Gen) ConditionalOperatorExpr() *ast.ConditionalOperatorExpr {
	return &ast.ConditionalOperatorExpr{
		Condition: g.Expr(),
		ThenExpr:  g.Expr(),
		ElseExpr:  g.Expr(),
	}
}

func (g *Gen) ArrayItem() *ast.ArrayItem {
	return &ast.ArrayItem{
		Expr:   g.Expr(),
		Spread: g.Bool(),
	}
}

func (g *Gen) Member() ast.Member {
	if g.Bool() {
		return ast.Spread{Expr: g.Expr()}
	}
	return g.KeyValue()
}

func (g *Gen) KeyValue() *ast.KeyValue {
	return &ast.KeyValue{
		Key:   g.Text(),
		Value: g.Expr(),
	}
}

func (g *Gen) LambdaExpr() *ast.LambdaExpr {
	return &ast.LambdaExpr{
		ParameterList:     values(g, g.Parameter),
		TypeParameterList: seq(g, g.Identifier),
		ReturnType:        g.Type(),
		StatementList:     seq(g, g.Statement),
	}
}

func (g *Gen) ImportedVariable() *ast.ImportedVariable {
	return &ast.ImportedVariable{
		ModuleName: g.Text(),
		Name:       g.Identifier(),
	}
}

func (g *Gen) GetExpr() *ast.GetExpr {
	return &ast.GetExpr{
		Expr:         g.Expr(),
		PropertyExpr: g.Expr(),
	}
}

func (g *Gen) CallExpr() *ast.CallExpr {
	return &ast.CallExpr{
		Expr:          g.Expr(),
		ParameterList: seq(g, g.Expr),
	}
}

func (g *Gen) TypeAssertion() *ast.TypeAssertion {
	return &ast.TypeAssertion{
		Expr: g.Expr(),
		Type: g.Type(),
	}
}

// Statement returns a random statement. Past MaxDepth only statements
// without payload are built.
func (g *Gen) Statement() ast.Statement {
	defer g.leave()
	if !g.enter() {
		switch g.r.Intn(3) {
		case 0:
			return ast.ReturnVoid{}
		case 1:
			return ast.Continue{}
		}
		return ast.Break{}
	}

	switch ast.StatementKind(g.r.Intn(14)) {
	case ast.StatementEvaluateExpr:
		return ast.EvaluateExpr{Expr: g.Expr()}
	case ast.StatementSet:
		return g.SetStatement()
	case ast.StatementIf:
		return g.IfStatement()
	case ast.StatementThrowError:
		return ast.ThrowError{Expr: g.Expr()}
	case ast.StatementReturn:
		return ast.Return{Expr: g.Expr()}
	case ast.StatementReturnVoid:
		return ast.ReturnVoid{}
	case ast.StatementContinue:
		return ast.Continue{}
	case ast.StatementVariableDefinition:
		return g.VariableDefinitionStatement()
	case ast.StatementFunctionDefinition:
		return g.FunctionDefinitionStatement()
	case ast.StatementFor:
		return g.ForStatement()
	case ast.StatementForOf:
		return g.ForOfStatement()
	case ast.StatementWhileTrue:
		return ast.WhileTrue(seq(g, g.Statement))
	case ast.StatementBreak:
		return ast.Break{}
	}
	return g.SwitchStatement()
}

func (g *Gen) SetStatement() *ast.SetStatement {
	s := ast.SetStatement{
		Target: g.Expr(),
		Expr:   g.Expr(),
	}
	if g.Bool() {
		op := g.BinaryOperator()
		s.Operator = &op
	}
	return &s
}

func (g *Gen) IfStatement() *ast.IfStatement {
	return &ast.IfStatement{
		Condition:         g.Expr(),
		ThenStatementList: seq(g, g.Statement),
	}
}

func (g *Gen) VariableDefinitionStatement() *ast.VariableDefinitionStatement {
	return &ast.VariableDefinitionStatement{
		Name:    g.Identifier(),
		Type:    g.Type(),
		Expr:    g.Expr(),
		IsConst: g.Bool(),
	}
}

func (g *Gen) FunctionDefinitionStatement() *ast.FunctionDefinitionStatement {
	return &ast.FunctionDefinitionStatement{
		Name:              g.Identifier(),
		TypeParameterList: seq(g, g.Identifier),
		ParameterList:     values(g, g.ParameterWithDocument),
		ReturnType:        g.Type(),
		StatementList:     seq(g, g.Statement),
	}
}

func (g *Gen) ForStatement() *ast.ForStatement {
	return &ast.ForStatement{
		CounterVariableName: g.Identifier(),
		UntilExpr:           g.Expr(),
		StatementList:       seq(g, g.Statement),
	}
}

func (g *Gen) ForOfStatement() *ast.ForOfStatement {
	return &ast.ForOfStatement{
		ElementVariableName: g.Identifier(),
		IterableExpr:        g.Expr(),
		StatementList:       seq(g, g.Statement),
	}
}

func (g *Gen) SwitchStatement() *ast.SwitchStatement {
	return &ast.SwitchStatement{
		Expr:        g.Expr(),
		PatternList: values(g, g.Pattern),
	}
}

func (g *Gen) Pattern() *ast.Pattern {
	return &ast.Pattern{
		CaseString:    g.Text(),
		StatementList: seq(g, g.Statement),
	}
}

// Type returns a random type. Past MaxDepth only leaves are built.
func (g *Gen) Type() ast.Type {
	defer g.leave()
	if !g.enter() {
		switch g.r.Intn(3) {
		case 0:
			return ast.BasicType(g.r.Intn(7))
		case 1:
			return ast.StringLiteralType(g.Text())
		}
		return ast.ScopeInGlobal(g.Identifier())
	}

	kind := ast.TypeKind(g.r.Intn(16))
	switch kind {
	case ast.TypeObject:
		return ast.ObjectType(values(g, g.MemberType))
	case ast.TypeFunction:
		return g.FunctionType()
	case ast.TypeWithParameter:
		return g.TypeWithTypeParameter()
	case ast.TypeUnion:
		return ast.UnionType(seq(g, g.Type))
	case ast.TypeIntersection:
		return g.IntersectionType()
	case ast.TypeImported:
		return g.ImportedType()
	case ast.TypeScopeInFile:
		return ast.ScopeInFile(g.Identifier())
	case ast.TypeScopeInGlobal:
		return ast.ScopeInGlobal(g.Identifier())
	case ast.TypeStringLiteral:
		return ast.StringLiteralType(g.Text())
	}
	return ast.BasicType(kind)
}

func (g *Gen) MemberType() *ast.MemberType {
	return &ast.MemberType{
		Name:     g.Text(),
		Required: g.Bool(),
		Type:     g.Type(),
		Document: g.Text(),
	}
}

func (g *Gen) FunctionType() *ast.FunctionType {
	return &ast.FunctionType{
		TypeParameterList: seq(g, g.Identifier),
		ParameterList:     seq(g, g.Type),
		ReturnType:        g.Type(),
	}
}

func (g *Gen) TypeWithTypeParameter() *ast.TypeWithTypeParameter {
	return &ast.TypeWithTypeParameter{
		Type:              g.Type(),
		TypeParameterList: seq(g, g.Type),
	}
}

func (g *Gen) IntersectionType() *ast.IntersectionType {
	return &ast.IntersectionType{
		Left:  g.Type(),
		Right: g.Type(),
	}
}

func (g *Gen) ImportedType() *ast.ImportedType {
	return &ast.ImportedType{
		ModuleName: g.Text(),
		Name:       g.Identifier(),
	}
}
