package astwire

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// MarshalAll encodes each tree of vs independently, up to
// opts.Concurrency at a time. The result is in the order of vs. The first
// failure cancels the trees not yet started and is returned annotated with
// the index of its tree.
func MarshalAll[T any](ctx context.Context, vs []T, opts *Options) ([][]byte, error) {
	opts = opts.withDefaults()
	out := make([][]byte, len(vs))

	err := forEach(ctx, len(vs), opts.Concurrency, func(i int) (err error) {
		out[i], err = MarshalWith(vs[i], opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalAll decodes each buffer of bs as one tree of type T, up to
// opts.Concurrency at a time. It fails like MarshalAll.
func UnmarshalAll[T any](ctx context.Context, bs [][]byte, opts *Options) ([]T, error) {
	opts = opts.withDefaults()
	out := make([]T, len(bs))

	err := forEach(ctx, len(bs), opts.Concurrency, func(i int) (err error) {
		out[i], err = UnmarshalWith[T](bs[i], opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func forEach(ctx context.Context, n, limit int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n && gctx.Err() == nil; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return errors.Wrapf(err, "tree %d", i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
