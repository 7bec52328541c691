package ast_test

import (
	"testing"

	"github.com/astwire/astwire/ast"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifier(t *testing.T) {
	tests := []struct {
		word string
		want ast.Identifier
	}{
		{"a", "a"},
		{"camelCase_$1", "camelCase_$1"},
		{"", "$00"},
		{"this", "this_"},
		{"self", "self_"},
		{"Infinity", "Infinity_"},
		{"1st", "$31st"},
		{"a-b", "a$2db"},
		{"あ", "$3042"},
		{"x y", "x$20y"},
	}

	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			require.Equal(t, test.want, ast.NewIdentifier(test.word))
		})
	}
}

func TestIsSafePropertyName(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"await", true},
		{"$x_1", true},
		{"A", true},
		{"", false},
		{"1a", false},
		{"a b", false},
		{"café", false},
	}

	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			require.Equal(t, test.want, ast.IsSafePropertyName(test.word))
		})
	}
}
