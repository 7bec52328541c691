package ast

import (
	"testing"

	"github.com/astwire/astwire/internal/schema"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	reg := Schema()
	require.NoError(t, reg.Validate())
	require.Len(t, reg.Names(), 38)

	var records, unions int
	for _, d := range reg.Definitions() {
		switch d.Kind {
		case schema.Record:
			records++
		case schema.Union:
			unions++
		}
	}
	require.Equal(t, 30, records)
	require.Equal(t, 8, unions)

	require.Same(t, reg, Schema())
}

type table interface {
	Name() string
	Len() int
	CaseName(uint32) string
}

// The registry and the decode tables must agree on every discriminant.
func TestSchemaMatchesTables(t *testing.T) {
	reg := Schema()

	tables := []table{
		unaryOperatorUnion,
		binaryOperatorUnion,
		codeTypeUnion,
		exportDefinitionUnion,
		exprUnion,
		memberUnion,
		statementUnion,
		typeUnion,
	}

	for _, tb := range tables {
		t.Run(tb.Name(), func(t *testing.T) {
			d, err := reg.Lookup(tb.Name())
			require.NoError(t, err)
			require.Equal(t, schema.Union, d.Kind)
			require.Len(t, d.Variants, tb.Len())

			for i, v := range d.Variants {
				require.NotEmpty(t, tb.CaseName(uint32(i)), "gap at discriminant %d", i)
				require.Equal(t, v.Name, tb.CaseName(uint32(i)))
			}
		})
	}
}
