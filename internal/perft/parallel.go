package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// CountParallel is Count with the root moves spread over goroutines. Each
// worker gets its own clone of pos, which is never modified. It returns
// ctx's error if cancelled before finishing.
func CountParallel(ctx context.Context, pos *board.Position, depth int, opts ...Option) (uint64, error) {
	results, err := DivideParallel(ctx, pos, depth, opts...)
	if err != nil {
		return 0, err
	}
	if depth == 0 {
		return 1, nil
	}
	return Total(results), nil
}

// DivideParallel is Divide computed concurrently; results keep generation order.
func DivideParallel(ctx context.Context, pos *board.Position, depth int, opts ...Option) ([]Result, error) {
	if depth < 1 {
		return nil, ctx.Err()
	}
	cfg := newConfig(opts)
	moves := pos.GenerateLegalMoves()
	results := make([]Result, moves.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.Get(i)
		g.Go(func() error {
			local := pos.Clone()
			local.Apply(m)
			w := &walker{ctx: ctx, cache: cfg.cache}
			n, err := w.count(local, depth-1)
			if err != nil {
				return err
			}
			results[i] = Result{Move: m, Nodes: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
