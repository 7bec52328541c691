package ast

import (
	"github.com/astwire/astwire/internal/wire"
)

func encodeIdentifier(e *wire.Encoder, x Identifier) error {
	rec := e.Record("Identifier")
	wire.Put(rec, "value", string(x), wire.PutStr)
	return rec.Close()
}

func decodeIdentifier(d *wire.Decoder) (Identifier, error) {
	rec := d.Record("Identifier")
	x := wire.Get(rec, "value", wire.Str)
	if err := rec.Close(); err != nil {
		return "", err
	}
	return Identifier(x), nil
}

func encodeCode(e *wire.Encoder, x *Code) error {
	if x == nil {
		return e.Nil("Code")
	}

	rec := e.Record("Code")
	wire.Put(rec, "export_definition_list", x.ExportDefinitionList, wire.PutSeqOf(encodeExportDefinition))
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeCode(d *wire.Decoder) (*Code, error) {
	var x Code

	rec := d.Record("Code")
	x.ExportDefinitionList = wire.Get(rec, "export_definition_list", wire.SeqOf(decodeExportDefinition))
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeTypeAlias(e *wire.Encoder, x *TypeAlias) error {
	if x == nil {
		return e.Nil("TypeAlias")
	}

	rec := e.Record("TypeAlias")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeIdentifier))
	wire.Put(rec, "document", x.Document, wire.PutStr)
	wire.Put(rec, "type", x.Type, encodeType)
	return rec.Close()
}

func decodeTypeAlias(d *wire.Decoder) (*TypeAlias, error) {
	var x TypeAlias

	rec := d.Record("TypeAlias")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeIdentifier))
	x.Document = wire.Get(rec, "document", wire.Str)
	x.Type = wire.Get(rec, "type", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeFunction(e *wire.Encoder, x *Function) error {
	if x == nil {
		return e.Nil("Function")
	}

	rec := e.Record("Function")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "document", x.Document, wire.PutStr)
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeIdentifier))
	wire.Put(rec, "parameter_list", x.ParameterList, wire.PutSeqOf(byValue(encodeParameterWithDocument)))
	wire.Put(rec, "return_type", x.ReturnType, encodeType)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeFunction(d *wire.Decoder) (*Function, error) {
	var x Function

	rec := d.Record("Function")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.Document = wire.Get(rec, "document", wire.Str)
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeIdentifier))
	x.ParameterList = wire.Get(rec, "parameter_list", wire.SeqOf(byRef(decodeParameterWithDocument)))
	x.ReturnType = wire.Get(rec, "return_type", decodeType)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeParameterWithDocument(e *wire.Encoder, x *ParameterWithDocument) error {
	if x == nil {
		return e.Nil("ParameterWithDocument")
	}

	rec := e.Record("ParameterWithDocument")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "document", x.Document, wire.PutStr)
	wire.Put(rec, "type", x.Type, encodeType)
	return rec.Close()
}

func decodeParameterWithDocument(d *wire.Decoder) (*ParameterWithDocument, error) {
	var x ParameterWithDocument

	rec := d.Record("ParameterWithDocument")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.Document = wire.Get(rec, "document", wire.Str)
	x.Type = wire.Get(rec, "type", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeParameter(e *wire.Encoder, x *Parameter) error {
	if x == nil {
		return e.Nil("Parameter")
	}

	rec := e.Record("Parameter")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "type", x.Type, encodeType)
	return rec.Close()
}

func decodeParameter(d *wire.Decoder) (*Parameter, error) {
	var x Parameter

	rec := d.Record("Parameter")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.Type = wire.Get(rec, "type", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeVariable(e *wire.Encoder, x *Variable) error {
	if x == nil {
		return e.Nil("Variable")
	}

	rec := e.Record("Variable")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "document", x.Document, wire.PutStr)
	wire.Put(rec, "type", x.Type, encodeType)
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	return rec.Close()
}

func decodeVariable(d *wire.Decoder) (*Variable, error) {
	var x Variable

	rec := d.Record("Variable")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.Document = wire.Get(rec, "document", wire.Str)
	x.Type = wire.Get(rec, "type", decodeType)
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeUnaryOperatorExpr(e *wire.Encoder, x *UnaryOperatorExpr) error {
	if x == nil {
		return e.Nil("UnaryOperatorExpr")
	}

	rec := e.Record("UnaryOperatorExpr")
	wire.Put(rec, "operator", x.Operator, encodeUnaryOperator)
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	return rec.Close()
}

func decodeUnaryOperatorExpr(d *wire.Decoder) (*UnaryOperatorExpr, error) {
	var x UnaryOperatorExpr

	rec := d.Record("UnaryOperatorExpr")
	x.Operator = wire.Get(rec, "operator", decodeUnaryOperator)
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeBinaryOperatorExpr(e *wire.Encoder, x *BinaryOperatorExpr) error {
	if x == nil {
		return e.Nil("BinaryOperatorExpr")
	}

	rec := e.Record("BinaryOperatorExpr")
	wire.Put(rec, "operator", x.Operator, encodeBinaryOperator)
	wire.Put(rec, "left", x.Left, encodeExpr)
	wire.Put(rec, "right", x.Right, encodeExpr)
	return rec.Close()
}

func decodeBinaryOperatorExpr(d *wire.Decoder) (*BinaryOperatorExpr, error) {
	var x BinaryOperatorExpr

	rec := d.Record("BinaryOperatorExpr")
	x.Operator = wire.Get(rec, "operator", decodeBinaryOperator)
	x.Left = wire.Get(rec, "left", decodeExpr)
	x.Right = wire.Get(rec, "right", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeConditionalOperatorExpr(e *wire.Encoder, x *ConditionalOperatorExpr) error {
	if x == nil {
		return e.Nil("ConditionalOperatorExpr")
	}

	rec := e.Record("ConditionalOperatorExpr")
	wire.Put(rec, "condition", x.Condition, encodeExpr)
	wire.Put(rec, "then_expr", x.ThenExpr, encodeExpr)
	wire.Put(rec, "else_expr", x.ElseExpr, encodeExpr)
	return rec.Close()
}

func decodeConditionalOperatorExpr(d *wire.Decoder) (*ConditionalOperatorExpr, error) {
	var x ConditionalOperatorExpr

	rec := d.Record("ConditionalOperatorExpr")
	x.Condition = wire.Get(rec, "condition", decodeExpr)
	x.ThenExpr = wire.Get(rec, "then_expr", decodeExpr)
	x.ElseExpr = wire.Get(rec, "else_expr", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeArrayItem(e *wire.Encoder, x *ArrayItem) error {
	if x == nil {
		return e.Nil("ArrayItem")
	}

	rec := e.Record("ArrayItem")
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "spread", x.Spread, wire.PutBool)
	return rec.Close()
}

func decodeArrayItem(d *wire.Decoder) (*ArrayItem, error) {
	var x ArrayItem

	rec := d.Record("ArrayItem")
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.Spread = wire.Get(rec, "spread", wire.Bool)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeKeyValue(e *wire.Encoder, x *KeyValue) error {
	if x == nil {
		return e.Nil("KeyValue")
	}

	rec := e.Record("KeyValue")
	wire.Put(rec, "key", x.Key, wire.PutStr)
	wire.Put(rec, "value", x.Value, encodeExpr)
	return rec.Close()
}

func decodeKeyValue(d *wire.Decoder) (*KeyValue, error) {
	var x KeyValue

	rec := d.Record("KeyValue")
	x.Key = wire.Get(rec, "key", wire.Str)
	x.Value = wire.Get(rec, "value", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeLambdaExpr(e *wire.Encoder, x *LambdaExpr) error {
	if x == nil {
		return e.Nil("LambdaExpr")
	}

	rec := e.Record("LambdaExpr")
	wire.Put(rec, "parameter_list", x.ParameterList, wire.PutSeqOf(byValue(encodeParameter)))
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeIdentifier))
	wire.Put(rec, "return_type", x.ReturnType, encodeType)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeLambdaExpr(d *wire.Decoder) (*LambdaExpr, error) {
	var x LambdaExpr

	rec := d.Record("LambdaExpr")
	x.ParameterList = wire.Get(rec, "parameter_list", wire.SeqOf(byRef(decodeParameter)))
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeIdentifier))
	x.ReturnType = wire.Get(rec, "return_type", decodeType)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeImportedVariable(e *wire.Encoder, x *ImportedVariable) error {
	if x == nil {
		return e.Nil("ImportedVariable")
	}

	rec := e.Record("ImportedVariable")
	wire.Put(rec, "module_name", x.ModuleName, wire.PutStr)
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	return rec.Close()
}

func decodeImportedVariable(d *wire.Decoder) (*ImportedVariable, error) {
	var x ImportedVariable

	rec := d.Record("ImportedVariable")
	x.ModuleName = wire.Get(rec, "module_name", wire.Str)
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeGetExpr(e *wire.Encoder, x *GetExpr) error {
	if x == nil {
		return e.Nil("GetExpr")
	}

	rec := e.Record("GetExpr")
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "property_expr", x.PropertyExpr, encodeExpr)
	return rec.Close()
}

func decodeGetExpr(d *wire.Decoder) (*GetExpr, error) {
	var x GetExpr

	rec := d.Record("GetExpr")
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.PropertyExpr = wire.Get(rec, "property_expr", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeCallExpr(e *wire.Encoder, x *CallExpr) error {
	if x == nil {
		return e.Nil("CallExpr")
	}

	rec := e.Record("CallExpr")
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "parameter_list", x.ParameterList, wire.PutSeqOf(encodeExpr))
	return rec.Close()
}

func decodeCallExpr(d *wire.Decoder) (*CallExpr, error) {
	var x CallExpr

	rec := d.Record("CallExpr")
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.ParameterList = wire.Get(rec, "parameter_list", wire.SeqOf(decodeExpr))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeTypeAssertion(e *wire.Encoder, x *TypeAssertion) error {
	if x == nil {
		return e.Nil("TypeAssertion")
	}

	rec := e.Record("TypeAssertion")
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "type", x.Type, encodeType)
	return rec.Close()
}

func decodeTypeAssertion(d *wire.Decoder) (*TypeAssertion, error) {
	var x TypeAssertion

	rec := d.Record("TypeAssertion")
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.Type = wire.Get(rec, "type", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeSetStatement(e *wire.Encoder, x *SetStatement) error {
	if x == nil {
		return e.Nil("SetStatement")
	}

	rec := e.Record("SetStatement")
	wire.Put(rec, "target", x.Target, encodeExpr)
	wire.Put(rec, "operator_maybe", x.Operator, wire.PutOptionOf(encodeBinaryOperator))
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	return rec.Close()
}

func decodeSetStatement(d *wire.Decoder) (*SetStatement, error) {
	var x SetStatement

	rec := d.Record("SetStatement")
	x.Target = wire.Get(rec, "target", decodeExpr)
	x.Operator = wire.Get(rec, "operator_maybe", wire.OptionOf(decodeBinaryOperator))
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeIfStatement(e *wire.Encoder, x *IfStatement) error {
	if x == nil {
		return e.Nil("IfStatement")
	}

	rec := e.Record("IfStatement")
	wire.Put(rec, "condition", x.Condition, encodeExpr)
	wire.Put(rec, "then_statement_list", x.ThenStatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeIfStatement(d *wire.Decoder) (*IfStatement, error) {
	var x IfStatement

	rec := d.Record("IfStatement")
	x.Condition = wire.Get(rec, "condition", decodeExpr)
	x.ThenStatementList = wire.Get(rec, "then_statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeVariableDefinitionStatement(e *wire.Encoder, x *VariableDefinitionStatement) error {
	if x == nil {
		return e.Nil("VariableDefinitionStatement")
	}

	rec := e.Record("VariableDefinitionStatement")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "type", x.Type, encodeType)
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "is_const", x.IsConst, wire.PutBool)
	return rec.Close()
}

func decodeVariableDefinitionStatement(d *wire.Decoder) (*VariableDefinitionStatement, error) {
	var x VariableDefinitionStatement

	rec := d.Record("VariableDefinitionStatement")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.Type = wire.Get(rec, "type", decodeType)
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.IsConst = wire.Get(rec, "is_const", wire.Bool)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeFunctionDefinitionStatement(e *wire.Encoder, x *FunctionDefinitionStatement) error {
	if x == nil {
		return e.Nil("FunctionDefinitionStatement")
	}

	rec := e.Record("FunctionDefinitionStatement")
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeIdentifier))
	wire.Put(rec, "parameter_list", x.ParameterList, wire.PutSeqOf(byValue(encodeParameterWithDocument)))
	wire.Put(rec, "return_type", x.ReturnType, encodeType)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeFunctionDefinitionStatement(d *wire.Decoder) (*FunctionDefinitionStatement, error) {
	var x FunctionDefinitionStatement

	rec := d.Record("FunctionDefinitionStatement")
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeIdentifier))
	x.ParameterList = wire.Get(rec, "parameter_list", wire.SeqOf(byRef(decodeParameterWithDocument)))
	x.ReturnType = wire.Get(rec, "return_type", decodeType)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeForStatement(e *wire.Encoder, x *ForStatement) error {
	if x == nil {
		return e.Nil("ForStatement")
	}

	rec := e.Record("ForStatement")
	wire.Put(rec, "counter_variable_name", x.CounterVariableName, encodeIdentifier)
	wire.Put(rec, "until_expr", x.UntilExpr, encodeExpr)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeForStatement(d *wire.Decoder) (*ForStatement, error) {
	var x ForStatement

	rec := d.Record("ForStatement")
	x.CounterVariableName = wire.Get(rec, "counter_variable_name", decodeIdentifier)
	x.UntilExpr = wire.Get(rec, "until_expr", decodeExpr)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeForOfStatement(e *wire.Encoder, x *ForOfStatement) error {
	if x == nil {
		return e.Nil("ForOfStatement")
	}

	rec := e.Record("ForOfStatement")
	wire.Put(rec, "element_variable_name", x.ElementVariableName, encodeIdentifier)
	wire.Put(rec, "iterable_expr", x.IterableExpr, encodeExpr)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodeForOfStatement(d *wire.Decoder) (*ForOfStatement, error) {
	var x ForOfStatement

	rec := d.Record("ForOfStatement")
	x.ElementVariableName = wire.Get(rec, "element_variable_name", decodeIdentifier)
	x.IterableExpr = wire.Get(rec, "iterable_expr", decodeExpr)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeSwitchStatement(e *wire.Encoder, x *SwitchStatement) error {
	if x == nil {
		return e.Nil("SwitchStatement")
	}

	rec := e.Record("SwitchStatement")
	wire.Put(rec, "expr", x.Expr, encodeExpr)
	wire.Put(rec, "pattern_list", x.PatternList, wire.PutSeqOf(byValue(encodePattern)))
	return rec.Close()
}

func decodeSwitchStatement(d *wire.Decoder) (*SwitchStatement, error) {
	var x SwitchStatement

	rec := d.Record("SwitchStatement")
	x.Expr = wire.Get(rec, "expr", decodeExpr)
	x.PatternList = wire.Get(rec, "pattern_list", wire.SeqOf(byRef(decodePattern)))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodePattern(e *wire.Encoder, x *Pattern) error {
	if x == nil {
		return e.Nil("Pattern")
	}

	rec := e.Record("Pattern")
	wire.Put(rec, "case_string", x.CaseString, wire.PutStr)
	wire.Put(rec, "statement_list", x.StatementList, wire.PutSeqOf(encodeStatement))
	return rec.Close()
}

func decodePattern(d *wire.Decoder) (*Pattern, error) {
	var x Pattern

	rec := d.Record("Pattern")
	x.CaseString = wire.Get(rec, "case_string", wire.Str)
	x.StatementList = wire.Get(rec, "statement_list", wire.SeqOf(decodeStatement))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeMemberType(e *wire.Encoder, x *MemberType) error {
	if x == nil {
		return e.Nil("MemberType")
	}

	rec := e.Record("MemberType")
	wire.Put(rec, "name", x.Name, wire.PutStr)
	wire.Put(rec, "required", x.Required, wire.PutBool)
	wire.Put(rec, "type", x.Type, encodeType)
	wire.Put(rec, "document", x.Document, wire.PutStr)
	return rec.Close()
}

func decodeMemberType(d *wire.Decoder) (*MemberType, error) {
	var x MemberType

	rec := d.Record("MemberType")
	x.Name = wire.Get(rec, "name", wire.Str)
	x.Required = wire.Get(rec, "required", wire.Bool)
	x.Type = wire.Get(rec, "type", decodeType)
	x.Document = wire.Get(rec, "document", wire.Str)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeFunctionType(e *wire.Encoder, x *FunctionType) error {
	if x == nil {
		return e.Nil("FunctionType")
	}

	rec := e.Record("FunctionType")
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeIdentifier))
	wire.Put(rec, "parameter_list", x.ParameterList, wire.PutSeqOf(encodeType))
	wire.Put(rec, "return_type", x.ReturnType, encodeType)
	return rec.Close()
}

func decodeFunctionType(d *wire.Decoder) (*FunctionType, error) {
	var x FunctionType

	rec := d.Record("FunctionType")
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeIdentifier))
	x.ParameterList = wire.Get(rec, "parameter_list", wire.SeqOf(decodeType))
	x.ReturnType = wire.Get(rec, "return_type", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeTypeWithTypeParameter(e *wire.Encoder, x *TypeWithTypeParameter) error {
	if x == nil {
		return e.Nil("TypeWithTypeParameter")
	}

	rec := e.Record("TypeWithTypeParameter")
	wire.Put(rec, "type", x.Type, encodeType)
	wire.Put(rec, "type_parameter_list", x.TypeParameterList, wire.PutSeqOf(encodeType))
	return rec.Close()
}

func decodeTypeWithTypeParameter(d *wire.Decoder) (*TypeWithTypeParameter, error) {
	var x TypeWithTypeParameter

	rec := d.Record("TypeWithTypeParameter")
	x.Type = wire.Get(rec, "type", decodeType)
	x.TypeParameterList = wire.Get(rec, "type_parameter_list", wire.SeqOf(decodeType))
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeIntersectionType(e *wire.Encoder, x *IntersectionType) error {
	if x == nil {
		return e.Nil("IntersectionType")
	}

	rec := e.Record("IntersectionType")
	wire.Put(rec, "left", x.Left, encodeType)
	wire.Put(rec, "right", x.Right, encodeType)
	return rec.Close()
}

func decodeIntersectionType(d *wire.Decoder) (*IntersectionType, error) {
	var x IntersectionType

	rec := d.Record("IntersectionType")
	x.Left = wire.Get(rec, "left", decodeType)
	x.Right = wire.Get(rec, "right", decodeType)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}

func encodeImportedType(e *wire.Encoder, x *ImportedType) error {
	if x == nil {
		return e.Nil("ImportedType")
	}

	rec := e.Record("ImportedType")
	wire.Put(rec, "module_name", x.ModuleName, wire.PutStr)
	wire.Put(rec, "name", x.Name, encodeIdentifier)
	return rec.Close()
}

func decodeImportedType(d *wire.Decoder) (*ImportedType, error) {
	var x ImportedType

	rec := d.Record("ImportedType")
	x.ModuleName = wire.Get(rec, "module_name", wire.Str)
	x.Name = wire.Get(rec, "name", decodeIdentifier)
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return &x, nil
}
