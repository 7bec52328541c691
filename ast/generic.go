package ast

import (
	"github.com/astwire/astwire/internal/wire"
	"github.com/cockroachdb/errors"
)

// ErrUnsupportedType is returned by Encode, Decode and TypeName when the
// type argument is not a schema type.
var ErrUnsupportedType = errors.New("unsupported type")

// Encode writes v as the schema type T. Records may be passed by value or
// by pointer; sum types must be passed as their interface type, so that
// Encode[Expr] writes a discriminant while Encode[*CallExpr] writes the
// bare record.
func Encode[T any](e *wire.Encoder, v T) error {
	switch p := any(&v).(type) {
	case *Identifier:
		return encodeIdentifier(e, *p)
	case *UnaryOperator:
		return encodeUnaryOperator(e, *p)
	case *BinaryOperator:
		return encodeBinaryOperator(e, *p)
	case *CodeType:
		return encodeCodeType(e, *p)
	case *ExportDefinition:
		return encodeExportDefinition(e, *p)
	case *Expr:
		return encodeExpr(e, *p)
	case *Member:
		return encodeMember(e, *p)
	case *Statement:
		return encodeStatement(e, *p)
	case *Type:
		return encodeType(e, *p)
	case *Code:
		return encodeCode(e, p)
	case **Code:
		return encodeCode(e, *p)
	case *TypeAlias:
		return encodeTypeAlias(e, p)
	case **TypeAlias:
		return encodeTypeAlias(e, *p)
	case *Function:
		return encodeFunction(e, p)
	case **Function:
		return encodeFunction(e, *p)
	case *ParameterWithDocument:
		return encodeParameterWithDocument(e, p)
	case **ParameterWithDocument:
		return encodeParameterWithDocument(e, *p)
	case *Parameter:
		return encodeParameter(e, p)
	case **Parameter:
		return encodeParameter(e, *p)
	case *Variable:
		return encodeVariable(e, p)
	case **Variable:
		return encodeVariable(e, *p)
	case *UnaryOperatorExpr:
		return encodeUnaryOperatorExpr(e, p)
	case **UnaryOperatorExpr:
		return encodeUnaryOperatorExpr(e, *p)
	case *BinaryOperatorExpr:
		return encodeBinaryOperatorExpr(e, p)
	case **BinaryOperatorExpr:
		return encodeBinaryOperatorExpr(e, *p)
	case *ConditionalOperatorExpr:
		return encodeConditionalOperatorExpr(e, p)
	case **ConditionalOperatorExpr:
		return encodeConditionalOperatorExpr(e, *p)
	case *ArrayItem:
		return encodeArrayItem(e, p)
	case **ArrayItem:
		return encodeArrayItem(e, *p)
	case *KeyValue:
		return encodeKeyValue(e, p)
	case **KeyValue:
		return encodeKeyValue(e, *p)
	case *LambdaExpr:
		return encodeLambdaExpr(e, p)
	case **LambdaExpr:
		return encodeLambdaExpr(e, *p)
	case *ImportedVariable:
		return encodeImportedVariable(e, p)
	case **ImportedVariable:
		return encodeImportedVariable(e, *p)
	case *GetExpr:
		return encodeGetExpr(e, p)
	case **GetExpr:
		return encodeGetExpr(e, *p)
	case *CallExpr:
		return encodeCallExpr(e, p)
	case **CallExpr:
		return encodeCallExpr(e, *p)
	case *TypeAssertion:
		return encodeTypeAssertion(e, p)
	case **TypeAssertion:
		return encodeTypeAssertion(e, *p)
	case *SetStatement:
		return encodeSetStatement(e, p)
	case **SetStatement:
		return encodeSetStatement(e, *p)
	case *IfStatement:
		return encodeIfStatement(e, p)
	case **IfStatement:
		return encodeIfStatement(e, *p)
	case *VariableDefinitionStatement:
		return encodeVariableDefinitionStatement(e, p)
	case **VariableDefinitionStatement:
		return encodeVariableDefinitionStatement(e, *p)
	case *FunctionDefinitionStatement:
		return encodeFunctionDefinitionStatement(e, p)
	case **FunctionDefinitionStatement:
		return encodeFunctionDefinitionStatement(e, *p)
	case *ForStatement:
		return encodeForStatement(e, p)
	case **ForStatement:
		return encodeForStatement(e, *p)
	case *ForOfStatement:
		return encodeForOfStatement(e, p)
	case **ForOfStatement:
		return encodeForOfStatement(e, *p)
	case *SwitchStatement:
		return encodeSwitchStatement(e, p)
	case **SwitchStatement:
		return encodeSwitchStatement(e, *p)
	case *Pattern:
		return encodePattern(e, p)
	case **Pattern:
		return encodePattern(e, *p)
	case *MemberType:
		return encodeMemberType(e, p)
	case **MemberType:
		return encodeMemberType(e, *p)
	case *FunctionType:
		return encodeFunctionType(e, p)
	case **FunctionType:
		return encodeFunctionType(e, *p)
	case *TypeWithTypeParameter:
		return encodeTypeWithTypeParameter(e, p)
	case **TypeWithTypeParameter:
		return encodeTypeWithTypeParameter(e, *p)
	case *IntersectionType:
		return encodeIntersectionType(e, p)
	case **IntersectionType:
		return encodeIntersectionType(e, *p)
	case *ImportedType:
		return encodeImportedType(e, p)
	case **ImportedType:
		return encodeImportedType(e, *p)
	}

	return errors.Wrapf(ErrUnsupportedType, "%T", v)
}

// Decode reads a value of the schema type T. See Encode for how T selects
// the encoding.
func Decode[T any](d *wire.Decoder) (T, error) {
	var v T
	var err error

	switch p := any(&v).(type) {
	case *Identifier:
		*p, err = decodeIdentifier(d)
	case *UnaryOperator:
		*p, err = decodeUnaryOperator(d)
	case *BinaryOperator:
		*p, err = decodeBinaryOperator(d)
	case *CodeType:
		*p, err = decodeCodeType(d)
	case *ExportDefinition:
		*p, err = decodeExportDefinition(d)
	case *Expr:
		*p, err = decodeExpr(d)
	case *Member:
		*p, err = decodeMember(d)
	case *Statement:
		*p, err = decodeStatement(d)
	case *Type:
		*p, err = decodeType(d)
	case *Code:
		err = decodeInto(d, p, decodeCode)
	case **Code:
		*p, err = decodeCode(d)
	case *TypeAlias:
		err = decodeInto(d, p, decodeTypeAlias)
	case **TypeAlias:
		*p, err = decodeTypeAlias(d)
	case *Function:
		err = decodeInto(d, p, decodeFunction)
	case **Function:
		*p, err = decodeFunction(d)
	case *ParameterWithDocument:
		err = decodeInto(d, p, decodeParameterWithDocument)
	case **ParameterWithDocument:
		*p, err = decodeParameterWithDocument(d)
	case *Parameter:
		err = decodeInto(d, p, decodeParameter)
	case **Parameter:
		*p, err = decodeParameter(d)
	case *Variable:
		err = decodeInto(d, p, decodeVariable)
	case **Variable:
		*p, err = decodeVariable(d)
	case *UnaryOperatorExpr:
		err = decodeInto(d, p, decodeUnaryOperatorExpr)
	case **UnaryOperatorExpr:
		*p, err = decodeUnaryOperatorExpr(d)
	case *BinaryOperatorExpr:
		err = decodeInto(d, p, decodeBinaryOperatorExpr)
	case **BinaryOperatorExpr:
		*p, err = decodeBinaryOperatorExpr(d)
	case *ConditionalOperatorExpr:
		err = decodeInto(d, p, decodeConditionalOperatorExpr)
	case **ConditionalOperatorExpr:
		*p, err = decodeConditionalOperatorExpr(d)
	case *ArrayItem:
		err = decodeInto(d, p, decodeArrayItem)
	case **ArrayItem:
		*p, err = decodeArrayItem(d)
	case *KeyValue:
		err = decodeInto(d, p, decodeKeyValue)
	case **KeyValue:
		*p, err = decodeKeyValue(d)
	case *LambdaExpr:
		err = decodeInto(d, p, decodeLambdaExpr)
	case **LambdaExpr:
		*p, err = decodeLambdaExpr(d)
	case *ImportedVariable:
		err = decodeInto(d, p, decodeImportedVariable)
	case **ImportedVariable:
		*p, err = decodeImportedVariable(d)
	case *GetExpr:
		err = decodeInto(d, p, decodeGetExpr)
	case **GetExpr:
		*p, err = decodeGetExpr(d)
	case *CallExpr:
		err = decodeInto(d, p, decodeCallExpr)
	case **CallExpr:
		*p, err = decodeCallExpr(d)
	case *TypeAssertion:
		err = decodeInto(d, p, decodeTypeAssertion)
	case **TypeAssertion:
		*p, err = decodeTypeAssertion(d)
	case *SetStatement:
		err = decodeInto(d, p, decodeSetStatement)
	case **SetStatement:
		*p, err = decodeSetStatement(d)
	case *IfStatement:
		err = decodeInto(d, p, decodeIfStatement)
	case **IfStatement:
		*p, err = decodeIfStatement(d)
	case *VariableDefinitionStatement:
		err = decodeInto(d, p, decodeVariableDefinitionStatement)
	case **VariableDefinitionStatement:
		*p, err = decodeVariableDefinitionStatement(d)
	case *FunctionDefinitionStatement:
		err = decodeInto(d, p, decodeFunctionDefinitionStatement)
	case **FunctionDefinitionStatement:
		*p, err = decodeFunctionDefinitionStatement(d)
	case *ForStatement:
		err = decodeInto(d, p, decodeForStatement)
	case **ForStatement:
		*p, err = decodeForStatement(d)
	case *ForOfStatement:
		err = decodeInto(d, p, decodeForOfStatement)
	case **ForOfStatement:
		*p, err = decodeForOfStatement(d)
	case *SwitchStatement:
		err = decodeInto(d, p, decodeSwitchStatement)
	case **SwitchStatement:
		*p, err = decodeSwitchStatement(d)
	case *Pattern:
		err = decodeInto(d, p, decodePattern)
	case **Pattern:
		*p, err = decodePattern(d)
	case *MemberType:
		err = decodeInto(d, p, decodeMemberType)
	case **MemberType:
		*p, err = decodeMemberType(d)
	case *FunctionType:
		err = decodeInto(d, p, decodeFunctionType)
	case **FunctionType:
		*p, err = decodeFunctionType(d)
	case *TypeWithTypeParameter:
		err = decodeInto(d, p, decodeTypeWithTypeParameter)
	case **TypeWithTypeParameter:
		*p, err = decodeTypeWithTypeParameter(d)
	case *IntersectionType:
		err = decodeInto(d, p, decodeIntersectionType)
	case **IntersectionType:
		*p, err = decodeIntersectionType(d)
	case *ImportedType:
		err = decodeInto(d, p, decodeImportedType)
	case **ImportedType:
		*p, err = decodeImportedType(d)
	default:
		err = errors.Wrapf(ErrUnsupportedType, "%T", p)
	}

	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeInto[T any](d *wire.Decoder, p *T, fn func(*wire.Decoder) (*T, error)) error {
	x, err := fn(d)
	if err != nil {
		return err
	}
	*p = *x
	return nil
}

// TypeName returns the schema name of T.
func TypeName[T any]() (string, error) {
	var v T

	switch any(&v).(type) {
	case *Identifier:
		return "Identifier", nil
	case *UnaryOperator:
		return "UnaryOperator", nil
	case *BinaryOperator:
		return "BinaryOperator", nil
	case *CodeType:
		return "CodeType", nil
	case *ExportDefinition:
		return "ExportDefinition", nil
	case *Expr:
		return "Expr", nil
	case *Member:
		return "Member", nil
	case *Statement:
		return "Statement", nil
	case *Type:
		return "Type", nil
	case *Code, **Code:
		return "Code", nil
	case *TypeAlias, **TypeAlias:
		return "TypeAlias", nil
	case *Function, **Function:
		return "Function", nil
	case *ParameterWithDocument, **ParameterWithDocument:
		return "ParameterWithDocument", nil
	case *Parameter, **Parameter:
		return "Parameter", nil
	case *Variable, **Variable:
		return "Variable", nil
	case *UnaryOperatorExpr, **UnaryOperatorExpr:
		return "UnaryOperatorExpr", nil
	case *BinaryOperatorExpr, **BinaryOperatorExpr:
		return "BinaryOperatorExpr", nil
	case *ConditionalOperatorExpr, **ConditionalOperatorExpr:
		return "ConditionalOperatorExpr", nil
	case *ArrayItem, **ArrayItem:
		return "ArrayItem", nil
	case *KeyValue, **KeyValue:
		return "KeyValue", nil
	case *LambdaExpr, **LambdaExpr:
		return "LambdaExpr", nil
	case *ImportedVariable, **ImportedVariable:
		return "ImportedVariable", nil
	case *GetExpr, **GetExpr:
		return "GetExpr", nil
	case *CallExpr, **CallExpr:
		return "CallExpr", nil
	case *TypeAssertion, **TypeAssertion:
		return "TypeAssertion", nil
	case *SetStatement, **SetStatement:
		return "SetStatement", nil
	case *IfStatement, **IfStatement:
		return "IfStatement", nil
	case *VariableDefinitionStatement, **VariableDefinitionStatement:
		return "VariableDefinitionStatement", nil
	case *FunctionDefinitionStatement, **FunctionDefinitionStatement:
		return "FunctionDefinitionStatement", nil
	case *ForStatement, **ForStatement:
		return "ForStatement", nil
	case *ForOfStatement, **ForOfStatement:
		return "ForOfStatement", nil
	case *SwitchStatement, **SwitchStatement:
		return "SwitchStatement", nil
	case *Pattern, **Pattern:
		return "Pattern", nil
	case *MemberType, **MemberType:
		return "MemberType", nil
	case *FunctionType, **FunctionType:
		return "FunctionType", nil
	case *TypeWithTypeParameter, **TypeWithTypeParameter:
		return "TypeWithTypeParameter", nil
	case *IntersectionType, **IntersectionType:
		return "IntersectionType", nil
	case *ImportedType, **ImportedType:
		return "ImportedType", nil
	}

	return "", errors.Wrapf(ErrUnsupportedType, "%T", &v)
}
