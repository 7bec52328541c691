package astwire_test

import (
	"context"
	"testing"

	"github.com/astwire/astwire"
	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/testutil"
	"github.com/astwire/astwire/internal/testutil/assert"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	codes := make([]*ast.Code, 40)
	for i := range codes {
		codes[i] = testutil.NewGen(int64(i)).Code()
	}
	opts := &astwire.Options{Format: astwire.BCS, Concurrency: 3}

	bs, err := astwire.MarshalAll(context.Background(), codes, opts)
	assert.NoError(t, err)
	require.Len(t, bs, len(codes))
	for i, b := range bs {
		want, err := astwire.MarshalWith(codes[i], opts)
		assert.NoError(t, err)
		require.Equal(t, want, b)
	}

	got, err := astwire.UnmarshalAll[*ast.Code](context.Background(), bs, opts)
	assert.NoError(t, err)
	require.Empty(t, cmp.Diff(codes, got))
}

func TestBatchErrors(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		codes := []*ast.Code{{}, {StatementList: []ast.Statement{&ast.IfStatement{}}}, {}}
		_, err := astwire.MarshalAll(context.Background(), codes, nil)
		assert.Fault(t, err, astwire.ErrNilNode, "Code.statement_list[0].If.condition")
		require.Contains(t, err.Error(), "tree 1")
	})

	t.Run("unmarshal", func(t *testing.T) {
		bs := [][]byte{{0, 0}, {0, 1}}
		_, err := astwire.UnmarshalAll[*ast.Code](context.Background(), bs, &astwire.Options{Format: astwire.BCS})
		require.ErrorIs(t, err, astwire.ErrTruncated)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := astwire.MarshalAll(ctx, []*ast.Code{{}}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := astwire.UnmarshalAll[*ast.Code](context.Background(), nil, nil)
		assert.NoError(t, err)
		require.Empty(t, got)
	})
}
