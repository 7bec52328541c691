// Package astutil builds frequently used expressions, statements and
// types.
package astutil

import (
	"github.com/astwire/astwire/ast"
)

// Get returns `expr.propertyName`.
func Get(expr ast.Expr, propertyName string) ast.Expr {
	return &ast.GetExpr{
		Expr:         expr,
		PropertyExpr: ast.StringLiteral(propertyName),
	}
}

// CallMethod returns `expr.methodName(parameters...)`.
func CallMethod(expr ast.Expr, methodName string, parameters ...ast.Expr) ast.Expr {
	return &ast.CallExpr{
		Expr:          Get(expr, methodName),
		ParameterList: list(parameters),
	}
}

func list(xs []ast.Expr) []ast.Expr {
	if xs == nil {
		return []ast.Expr{}
	}
	return xs
}

func global(name string) ast.Expr {
	return ast.GlobalObjectExpr(ast.NewIdentifier(name))
}

func unary(op ast.UnaryOperator, expr ast.Expr) ast.Expr {
	return &ast.UnaryOperatorExpr{Operator: op, Expr: expr}
}

// Minus returns `-expr`.
func Minus(expr ast.Expr) ast.Expr {
	return unary(ast.Minus, expr)
}

// BitwiseNot returns `~expr`.
func BitwiseNot(expr ast.Expr) ast.Expr {
	return unary(ast.BitwiseNot, expr)
}

// LogicalNot returns `!expr`.
func LogicalNot(expr ast.Expr) ast.Expr {
	return unary(ast.LogicalNot, expr)
}

func binary(op ast.BinaryOperator, left, right ast.Expr) ast.Expr {
	return &ast.BinaryOperatorExpr{Operator: op, Left: left, Right: right}
}

// Exponentiation returns `left ** right`.
func Exponentiation(left, right ast.Expr) ast.Expr {
	return binary(ast.Exponentiation, left, right)
}

// Multiplication returns `left * right`.
func Multiplication(left, right ast.Expr) ast.Expr {
	return binary(ast.Multiplication, left, right)
}

// Division returns `left / right`.
func Division(left, right ast.Expr) ast.Expr {
	return binary(ast.Division, left, right)
}

// Remainder returns `left % right`.
func Remainder(left, right ast.Expr) ast.Expr {
	return binary(ast.Remainder, left, right)
}

// Addition returns `left + right`.
func Addition(left, right ast.Expr) ast.Expr {
	return binary(ast.Addition, left, right)
}

// Subtraction returns `left - right`.
func Subtraction(left, right ast.Expr) ast.Expr {
	return binary(ast.Subtraction, left, right)
}

// LeftShift returns `left << right`.
func LeftShift(left, right ast.Expr) ast.Expr {
	return binary(ast.LeftShift, left, right)
}

// SignedRightShift returns `left >> right`.
func SignedRightShift(left, right ast.Expr) ast.Expr {
	return binary(ast.SignedRightShift, left, right)
}

// UnsignedRightShift returns `left >>> right`.
func UnsignedRightShift(left, right ast.Expr) ast.Expr {
	return binary(ast.UnsignedRightShift, left, right)
}

// LessThan returns `left < right`.
func LessThan(left, right ast.Expr) ast.Expr {
	return binary(ast.LessThan, left, right)
}

// LessThanOrEqual returns `left <= right`.
func LessThanOrEqual(left, right ast.Expr) ast.Expr {
	return binary(ast.LessThanOrEqual, left, right)
}

// Equal returns `left === right`.
func Equal(left, right ast.Expr) ast.Expr {
	return binary(ast.Equal, left, right)
}

// NotEqual returns `left !== right`.
func NotEqual(left, right ast.Expr) ast.Expr {
	return binary(ast.NotEqual, left, right)
}

// BitwiseAnd returns `left & right`.
func BitwiseAnd(left, right ast.Expr) ast.Expr {
	return binary(ast.BitwiseAnd, left, right)
}

// BitwiseXOr returns `left ^ right`.
func BitwiseXOr(left, right ast.Expr) ast.Expr {
	return binary(ast.BitwiseXOr, left, right)
}

// BitwiseOr returns `left | right`.
func BitwiseOr(left, right ast.Expr) ast.Expr {
	return binary(ast.BitwiseOr, left, right)
}

// LogicalAnd returns `left && right`.
func LogicalAnd(left, right ast.Expr) ast.Expr {
	return binary(ast.LogicalAnd, left, right)
}

// LogicalOr returns `left || right`.
func LogicalOr(left, right ast.Expr) ast.Expr {
	return binary(ast.LogicalOr, left, right)
}

// CallNumberMethod returns `Number.methodName(parameters...)`.
func CallNumberMethod(methodName string, parameters ...ast.Expr) ast.Expr {
	return CallMethod(global("Number"), methodName, parameters...)
}

// CallMathMethod returns `Math.methodName(parameters...)`.
func CallMathMethod(methodName string, parameters ...ast.Expr) ast.Expr {
	return CallMethod(global("Math"), methodName, parameters...)
}

func newGlobal(name string, parameters ...ast.Expr) ast.Expr {
	return &ast.NewExpr{
		Expr:          global(name),
		ParameterList: list(parameters),
	}
}

// NewDate returns `new Date()`.
func NewDate() ast.Expr {
	return newGlobal("Date")
}

// NewUint8Array returns `new Uint8Array(lengthOrIterable)`.
func NewUint8Array(lengthOrIterable ast.Expr) ast.Expr {
	return newGlobal("Uint8Array", lengthOrIterable)
}

// NewMap returns `new Map(initKeyValueList)`.
func NewMap(initKeyValueList ast.Expr) ast.Expr {
	return newGlobal("Map", initKeyValueList)
}

// NewSet returns `new Set(initValueList)`.
func NewSet(initValueList ast.Expr) ast.Expr {
	return newGlobal("Set", initValueList)
}

// ConsoleLog returns the statement `console.log(expr)`.
func ConsoleLog(expr ast.Expr) ast.Statement {
	return ast.EvaluateExpr{
		Expr: CallMethod(global("console"), "log", expr),
	}
}

func generic(name string, parameters ...ast.Type) ast.Type {
	return &ast.TypeWithTypeParameter{
		Type:              ast.ScopeInGlobal(ast.NewIdentifier(name)),
		TypeParameterList: parameters,
	}
}

// ArrayType returns `Array<elementType>`.
func ArrayType(elementType ast.Type) ast.Type {
	return generic("Array", elementType)
}

// ReadonlyArrayType returns `ReadonlyArray<elementType>`.
func ReadonlyArrayType(elementType ast.Type) ast.Type {
	return generic("ReadonlyArray", elementType)
}

// Uint8ArrayType returns `Uint8Array`.
func Uint8ArrayType() ast.Type {
	return ast.ScopeInGlobal(ast.NewIdentifier("Uint8Array"))
}

// PromiseType returns `Promise<returnType>`.
func PromiseType(returnType ast.Type) ast.Type {
	return generic("Promise", returnType)
}

// DateType returns `Date`.
func DateType() ast.Type {
	return ast.ScopeInGlobal(ast.NewIdentifier("Date"))
}

// MapType returns `Map<keyType, valueType>`.
func MapType(keyType, valueType ast.Type) ast.Type {
	return generic("Map", keyType, valueType)
}

// ReadonlyMapType returns `ReadonlyMap<keyType, valueType>`.
func ReadonlyMapType(keyType, valueType ast.Type) ast.Type {
	return generic("ReadonlyMap", keyType, valueType)
}

// SetType returns `Set<elementType>`.
func SetType(elementType ast.Type) ast.Type {
	return generic("Set", elementType)
}

// ReadonlySetType returns `ReadonlySet<elementType>`.
func ReadonlySetType(elementType ast.Type) ast.Type {
	return generic("ReadonlySet", elementType)
}
