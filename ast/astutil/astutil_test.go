package astutil_test

import (
	"testing"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/ast/astutil"
	"github.com/astwire/astwire/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBinaryOperators(t *testing.T) {
	a, b := ast.VariableExpr("a"), ast.VariableExpr("b")

	tests := []struct {
		build func(left, right ast.Expr) ast.Expr
		want  ast.BinaryOperator
	}{
		{astutil.Exponentiation, ast.Exponentiation},
		{astutil.Multiplication, ast.Multiplication},
		{astutil.Division, ast.Division},
		{astutil.Remainder, ast.Remainder},
		{astutil.Addition, ast.Addition},
		{astutil.Subtraction, ast.Subtraction},
		{astutil.LeftShift, ast.LeftShift},
		{astutil.SignedRightShift, ast.SignedRightShift},
		{astutil.UnsignedRightShift, ast.UnsignedRightShift},
		{astutil.LessThan, ast.LessThan},
		{astutil.LessThanOrEqual, ast.LessThanOrEqual},
		{astutil.Equal, ast.Equal},
		{astutil.NotEqual, ast.NotEqual},
		{astutil.BitwiseAnd, ast.BitwiseAnd},
		{astutil.BitwiseXOr, ast.BitwiseXOr},
		{astutil.BitwiseOr, ast.BitwiseOr},
		{astutil.LogicalAnd, ast.LogicalAnd},
		{astutil.LogicalOr, ast.LogicalOr},
	}

	for _, test := range tests {
		t.Run(test.want.String(), func(t *testing.T) {
			want := &ast.BinaryOperatorExpr{Operator: test.want, Left: a, Right: b}
			require.Empty(t, cmp.Diff(ast.Expr(want), test.build(a, b)))
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	x := ast.NumberLiteral(3)

	require.Equal(t, ast.Expr(&ast.UnaryOperatorExpr{Operator: ast.Minus, Expr: x}), astutil.Minus(x))
	require.Equal(t, ast.Expr(&ast.UnaryOperatorExpr{Operator: ast.BitwiseNot, Expr: x}), astutil.BitwiseNot(x))
	require.Equal(t, ast.Expr(&ast.UnaryOperatorExpr{Operator: ast.LogicalNot, Expr: x}), astutil.LogicalNot(x))
}

func TestCalls(t *testing.T) {
	got := astutil.ConsoleLog(ast.StringLiteral("hi"))

	want := ast.Statement(ast.EvaluateExpr{
		Expr: &ast.CallExpr{
			Expr: &ast.GetExpr{
				Expr:         ast.GlobalObjectExpr("console"),
				PropertyExpr: ast.StringLiteral("log"),
			},
			ParameterList: []ast.Expr{ast.StringLiteral("hi")},
		},
	})
	require.Empty(t, cmp.Diff(want, got))

	floor := astutil.CallMathMethod("floor", ast.NumberLiteral(1))
	require.Equal(t, ast.GlobalObjectExpr("Math"), floor.(*ast.CallExpr).Expr.(*ast.GetExpr).Expr)

	isNaN := astutil.CallNumberMethod("isNaN")
	require.NotNil(t, isNaN.(*ast.CallExpr).ParameterList)
	require.Empty(t, isNaN.(*ast.CallExpr).ParameterList)

	date := astutil.NewDate()
	require.Equal(t, ast.ExprNew, date.Kind())
	require.Equal(t, ast.GlobalObjectExpr("Date"), date.(*ast.NewExpr).Expr)
	require.NotNil(t, date.(*ast.NewExpr).ParameterList)

	m := astutil.NewMap(ast.ArrayLiteral{})
	require.Len(t, m.(*ast.NewExpr).ParameterList, 1)
}

func TestTypes(t *testing.T) {
	got := astutil.ReadonlyMapType(ast.StringType, astutil.ArrayType(ast.NumberType))

	want := ast.Type(&ast.TypeWithTypeParameter{
		Type: ast.ScopeInGlobal("ReadonlyMap"),
		TypeParameterList: []ast.Type{
			ast.StringType,
			&ast.TypeWithTypeParameter{
				Type:              ast.ScopeInGlobal("Array"),
				TypeParameterList: []ast.Type{ast.NumberType},
			},
		},
	})
	require.Empty(t, cmp.Diff(want, got))

	require.Equal(t, ast.Type(ast.ScopeInGlobal("Date")), astutil.DateType())
	require.Equal(t, ast.Type(ast.ScopeInGlobal("Uint8Array")), astutil.Uint8ArrayType())
}

// Built trees are complete and encode without error.
func TestBuiltTreesEncode(t *testing.T) {
	code := &ast.Code{
		ExportDefinitionList: []ast.ExportDefinition{
			&ast.TypeAlias{
				Name:              "Cache",
				TypeParameterList: []ast.Identifier{},
				Type:              astutil.MapType(ast.StringType, astutil.PromiseType(astutil.Uint8ArrayType())),
			},
		},
		StatementList: []ast.Statement{
			astutil.ConsoleLog(astutil.Addition(astutil.CallMathMethod("sqrt", ast.NumberLiteral(2)), astutil.Minus(ast.NumberLiteral(1)))),
			ast.EvaluateExpr{Expr: astutil.NewSet(astutil.NewUint8Array(ast.NumberLiteral(8)))},
		},
	}

	for _, f := range testutil.Formats {
		b := testutil.Encode(t, f, code)
		got, err := testutil.Decode[*ast.Code](f, b)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(code, got))
	}
}
