/*
Package astwire encodes JavaScript and TypeScript syntax trees into a compact
binary form and decodes them back, so that a code generator written in one
language can hand a program to an emitter written in another.

# Trees

The node types live in the ast package. A program is an *ast.Code: a list of
export definitions followed by a list of statements. Sum types such as
ast.Expr, ast.Statement and ast.Type are interfaces implemented by a fixed set
of node types; records such as *ast.CallExpr are plain structs.

The ast/astutil package provides shorthands for common constructions, like
method calls, binary operations and generic type references.

# Wire format

Trees are encoded depth-first. A record is the concatenation of its fields in
declaration order. A sum type is a variant index followed by the payload of
that variant. Sequences are a length followed by their elements and optional
values a one byte tag followed by the value when present. Integers are
little-endian i32, booleans one byte, strings length-prefixed UTF-8.

Two formats share this layout and differ in how lengths and variant indexes
are written:

	Bincode  lengths as u64, variant indexes as u32, both little-endian
	BCS      lengths and variant indexes as ULEB128 u32

Bincode is the default. The format is not self-describing: the reader must
know the type of the root.

# Encoding and decoding

	b, err := astwire.Marshal(code)
	...
	code, err := astwire.Unmarshal[*ast.Code](b)

Unmarshal rejects input that continues after the tree. To read several trees
written back to back, use a Decoder.

Malformed input never panics. Every failure wraps one of the sentinel errors
of this package and most are located by an *Error carrying the byte offset
and the path of the faulty node:

	invalid variant index at Code.statement_list[0].If.condition (offset 3)

# Inspecting encoded trees

Inspect renders an encoded tree as JSON using only the schema returned by
ast.Schema, and Assemble turns such JSON back into bytes.
*/
package astwire
