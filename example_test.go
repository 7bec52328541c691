package astwire_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/astwire/astwire"
	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/ast/astutil"
)

func Example() {
	// console.log("hello")
	code := &ast.Code{
		StatementList: []ast.Statement{
			astutil.ConsoleLog(ast.StringLiteral("hello")),
		},
	}

	b, err := astwire.Marshal(code)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := astwire.Unmarshal[*ast.Code](b)
	if err != nil {
		log.Fatal(err)
	}

	call := decoded.StatementList[0].(ast.EvaluateExpr).Expr.(*ast.CallExpr)
	fmt.Println(call.ParameterList[0])
	// Output: hello
}

func ExampleMarshalWith() {
	b, err := astwire.MarshalWith(astutil.Addition(ast.NumberLiteral(1), ast.NumberLiteral(2)), &astwire.Options{
		Format: astwire.BCS,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(b)
	// Output: [6 4 0 1 0 0 0 0 2 0 0 0]
}

func ExampleInspect() {
	b, err := astwire.Marshal(astutil.Minus(ast.NumberLiteral(1)))
	if err != nil {
		log.Fatal(err)
	}

	data, err := astwire.Inspect("Expr", b, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
	// Output: {"variant":"UnaryOperator","index":5,"value":{"operator":{"variant":"Minus","index":0},"expr":{"variant":"NumberLiteral","index":0,"value":1}}}
}

func ExampleDecodeNext() {
	var buf bytes.Buffer
	for _, s := range []string{"a", "b", "c"} {
		if err := astwire.EncodeTo(&buf, ast.Expr(ast.StringLiteral(s)), nil); err != nil {
			log.Fatal(err)
		}
	}

	dec := astwire.NewDecoder(&buf, nil)
	for {
		e, err := astwire.DecodeNext[ast.Expr](dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(e)
	}
	// Output:
	// a
	// b
	// c
}
