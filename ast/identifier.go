package ast

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// reservedWords cannot be used as identifiers in generated code.
var reservedWords = func() map[string]struct{} {
	words := strings.Fields(`
		await break case catch class const continue debugger default delete
		do else export extends finally for function if import in instanceof
		new return super switch this throw try typeof var void while with
		yield let static enum implements package protected interface private
		public null true false any boolean constructor declare get module
		require number set string symbol type from of as unknown Infinity NaN
		undefined top closed self
	`)

	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '$' || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r >= '0' && r <= '9'
}

// NewIdentifier turns word into a valid identifier. Characters that cannot
// appear in an identifier are written as $ followed by their code point in
// hexadecimal, and reserved words get a trailing underscore.
//
//	NewIdentifier("this") == "this_"
//	NewIdentifier("あ") == "$3042"
func NewIdentifier(word string) Identifier {
	if word == "" {
		return "$00"
	}

	var sb strings.Builder
	for i, r := range word {
		if i == 0 && isIdentStart(r) || i > 0 && isIdentPart(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte('$')
		sb.WriteString(strconv.FormatInt(int64(r), 16))
	}

	s := sb.String()
	if _, ok := reservedWords[s]; ok {
		s += "_"
	}
	return Identifier(s)
}

// IsSafePropertyName reports whether word can be used as a property name
// without quoting, as in `a.word`. Unlike identifiers, property names may
// be reserved words.
func IsSafePropertyName(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || !isIdentStart(r) {
		return false
	}

	for _, r := range word[size:] {
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
