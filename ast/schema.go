package ast

import (
	"sync"

	"github.com/astwire/astwire/internal/schema"
)

// Schema returns the catalogue of every node type. The registry is shared
// and must not be modified.
func Schema() *schema.Registry {
	return loadSchema()
}

var loadSchema = sync.OnceValue(func() *schema.Registry {
	reg := schema.New()

	reg.DefineUnion("UnaryOperator",
		schema.Marker("Minus"),
		schema.Marker("BitwiseNot"),
		schema.Marker("LogicalNot"),
	)

	reg.DefineUnion("BinaryOperator",
		schema.Marker("Exponentiation"),
		schema.Marker("Multiplication"),
		schema.Marker("Division"),
		schema.Marker("Remainder"),
		schema.Marker("Addition"),
		schema.Marker("Subtraction"),
		schema.Marker("LeftShift"),
		schema.Marker("SignedRightShift"),
		schema.Marker("UnsignedRightShift"),
		schema.Marker("LessThan"),
		schema.Marker("LessThanOrEqual"),
		schema.Marker("Equal"),
		schema.Marker("NotEqual"),
		schema.Marker("BitwiseAnd"),
		schema.Marker("BitwiseXOr"),
		schema.Marker("BitwiseOr"),
		schema.Marker("LogicalAnd"),
		schema.Marker("LogicalOr"),
	)

	reg.DefineUnion("CodeType",
		schema.Marker("JavaScript"),
		schema.Marker("TypeScript"),
	)

	reg.DefineUnion("ExportDefinition",
		schema.V("TypeAlias", schema.Ref("TypeAlias")),
		schema.V("Function", schema.Ref("Function")),
		schema.V("Variable", schema.Ref("Variable")),
	)

	reg.DefineUnion("Expr",
		schema.V("NumberLiteral", schema.I32),
		schema.V("StringLiteral", schema.Str),
		schema.V("BooleanLiteral", schema.Bool),
		schema.Marker("NullLiteral"),
		schema.Marker("UndefinedLiteral"),
		schema.V("UnaryOperator", schema.Ref("UnaryOperatorExpr")),
		schema.V("BinaryOperator", schema.Ref("BinaryOperatorExpr")),
		schema.V("ConditionalOperator", schema.Ref("ConditionalOperatorExpr")),
		schema.V("ArrayLiteral", schema.Seq(schema.Ref("ArrayItem"))),
		schema.V("ObjectLiteral", schema.Seq(schema.Ref("Member"))),
		schema.V("Lambda", schema.Ref("LambdaExpr")),
		schema.V("Variable", schema.Ref("Identifier")),
		schema.V("GlobalObjects", schema.Ref("Identifier")),
		schema.V("ImportedVariable", schema.Ref("ImportedVariable")),
		schema.V("Get", schema.Ref("GetExpr")),
		schema.V("Call", schema.Ref("CallExpr")),
		schema.V("New", schema.Ref("CallExpr")),
		schema.V("TypeAssertion", schema.Ref("TypeAssertion")),
	)

	reg.DefineUnion("Member",
		schema.V("Spread", schema.Ref("Expr")),
		schema.V("KeyValue", schema.Ref("KeyValue")),
	)

	reg.DefineUnion("Statement",
		schema.V("EvaluateExpr", schema.Ref("Expr")),
		schema.V("Set", schema.Ref("SetStatement")),
		schema.V("If", schema.Ref("IfStatement")),
		schema.V("ThrowError", schema.Ref("Expr")),
		schema.V("Return", schema.Ref("Expr")),
		schema.Marker("ReturnVoid"),
		schema.Marker("Continue"),
		schema.V("VariableDefinition", schema.Ref("VariableDefinitionStatement")),
		schema.V("FunctionDefinition", schema.Ref("FunctionDefinitionStatement")),
		schema.V("For", schema.Ref("ForStatement")),
		schema.V("ForOf", schema.Ref("ForOfStatement")),
		schema.V("WhileTrue", schema.Seq(schema.Ref("Statement"))),
		schema.Marker("Break"),
		schema.V("Switch", schema.Ref("SwitchStatement")),
	)

	reg.DefineUnion("Type",
		schema.Marker("Number"),
		schema.Marker("String"),
		schema.Marker("Boolean"),
		schema.Marker("Undefined"),
		schema.Marker("Null"),
		schema.Marker("Never"),
		schema.Marker("Void"),
		schema.V("Object", schema.Seq(schema.Ref("MemberType"))),
		schema.V("Function", schema.Ref("FunctionType")),
		schema.V("WithTypeParameter", schema.Ref("TypeWithTypeParameter")),
		schema.V("Union", schema.Seq(schema.Ref("Type"))),
		schema.V("Intersection", schema.Ref("IntersectionType")),
		schema.V("ImportedType", schema.Ref("ImportedType")),
		schema.V("ScopeInFile", schema.Ref("Identifier")),
		schema.V("ScopeInGlobal", schema.Ref("Identifier")),
		schema.V("StringLiteral", schema.Str),
	)

	reg.DefineRecord("Identifier",
		schema.F("value", schema.Str),
	)

	reg.DefineRecord("Code",
		schema.F("export_definition_list", schema.Seq(schema.Ref("ExportDefinition"))),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("TypeAlias",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Identifier"))),
		schema.F("document", schema.Str),
		schema.F("type", schema.Ref("Type")),
	)

	reg.DefineRecord("Function",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("document", schema.Str),
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Identifier"))),
		schema.F("parameter_list", schema.Seq(schema.Ref("ParameterWithDocument"))),
		schema.F("return_type", schema.Ref("Type")),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("ParameterWithDocument",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("document", schema.Str),
		schema.F("type", schema.Ref("Type")),
	)

	reg.DefineRecord("Parameter",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("type", schema.Ref("Type")),
	)

	reg.DefineRecord("Variable",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("document", schema.Str),
		schema.F("type", schema.Ref("Type")),
		schema.F("expr", schema.Ref("Expr")),
	)

	reg.DefineRecord("UnaryOperatorExpr",
		schema.F("operator", schema.Ref("UnaryOperator")),
		schema.F("expr", schema.Ref("Expr")),
	)

	reg.DefineRecord("BinaryOperatorExpr",
		schema.F("operator", schema.Ref("BinaryOperator")),
		schema.F("left", schema.Ref("Expr")),
		schema.F("right", schema.Ref("Expr")),
	)

	reg.DefineRecord("ConditionalOperatorExpr",
		schema.F("condition", schema.Ref("Expr")),
		schema.F("then_expr", schema.Ref("Expr")),
		schema.F("else_expr", schema.Ref("Expr")),
	)

	reg.DefineRecord("ArrayItem",
		schema.F("expr", schema.Ref("Expr")),
		schema.F("spread", schema.Bool),
	)

	reg.DefineRecord("KeyValue",
		schema.F("key", schema.Str),
		schema.F("value", schema.Ref("Expr")),
	)

	reg.DefineRecord("LambdaExpr",
		schema.F("parameter_list", schema.Seq(schema.Ref("Parameter"))),
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Identifier"))),
		schema.F("return_type", schema.Ref("Type")),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("ImportedVariable",
		schema.F("module_name", schema.Str),
		schema.F("name", schema.Ref("Identifier")),
	)

	reg.DefineRecord("GetExpr",
		schema.F("expr", schema.Ref("Expr")),
		schema.F("property_expr", schema.Ref("Expr")),
	)

	reg.DefineRecord("CallExpr",
		schema.F("expr", schema.Ref("Expr")),
		schema.F("parameter_list", schema.Seq(schema.Ref("Expr"))),
	)

	reg.DefineRecord("TypeAssertion",
		schema.F("expr", schema.Ref("Expr")),
		schema.F("type", schema.Ref("Type")),
	)

	reg.DefineRecord("SetStatement",
		schema.F("target", schema.Ref("Expr")),
		schema.F("operator_maybe", schema.Option(schema.Ref("BinaryOperator"))),
		schema.F("expr", schema.Ref("Expr")),
	)

	reg.DefineRecord("IfStatement",
		schema.F("condition", schema.Ref("Expr")),
		schema.F("then_statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("VariableDefinitionStatement",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("type", schema.Ref("Type")),
		schema.F("expr", schema.Ref("Expr")),
		schema.F("is_const", schema.Bool),
	)

	reg.DefineRecord("FunctionDefinitionStatement",
		schema.F("name", schema.Ref("Identifier")),
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Identifier"))),
		schema.F("parameter_list", schema.Seq(schema.Ref("ParameterWithDocument"))),
		schema.F("return_type", schema.Ref("Type")),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("ForStatement",
		schema.F("counter_variable_name", schema.Ref("Identifier")),
		schema.F("until_expr", schema.Ref("Expr")),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("ForOfStatement",
		schema.F("element_variable_name", schema.Ref("Identifier")),
		schema.F("iterable_expr", schema.Ref("Expr")),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("SwitchStatement",
		schema.F("expr", schema.Ref("Expr")),
		schema.F("pattern_list", schema.Seq(schema.Ref("Pattern"))),
	)

	reg.DefineRecord("Pattern",
		schema.F("case_string", schema.Str),
		schema.F("statement_list", schema.Seq(schema.Ref("Statement"))),
	)

	reg.DefineRecord("MemberType",
		schema.F("name", schema.Str),
		schema.F("required", schema.Bool),
		schema.F("type", schema.Ref("Type")),
		schema.F("document", schema.Str),
	)

	reg.DefineRecord("FunctionType",
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Identifier"))),
		schema.F("parameter_list", schema.Seq(schema.Ref("Type"))),
		schema.F("return_type", schema.Ref("Type")),
	)

	reg.DefineRecord("TypeWithTypeParameter",
		schema.F("type", schema.Ref("Type")),
		schema.F("type_parameter_list", schema.Seq(schema.Ref("Type"))),
	)

	reg.DefineRecord("IntersectionType",
		schema.F("left", schema.Ref("Type")),
		schema.F("right", schema.Ref("Type")),
	)

	reg.DefineRecord("ImportedType",
		schema.F("module_name", schema.Str),
		schema.F("name", schema.Ref("Identifier")),
	)

	return reg
})
