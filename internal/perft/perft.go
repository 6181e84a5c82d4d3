// Package perft counts the leaf nodes of the legal move tree, the standard
// check of a move generator against published totals.
package perft

import (
	"context"

	"github.com/hailam/chesscore/internal/board"
)

// minCacheDepth is the shallowest subtree worth a cache lookup.
const minCacheDepth = 2

// Count returns the number of leaf positions depth plies below pos, or 0
// for a negative depth. The position is restored before returning.
func Count(pos *board.Position, depth int, opts ...Option) uint64 {
	if depth < 0 {
		return 0
	}
	cfg := newConfig(opts)
	n, _ := (&walker{ctx: context.Background(), cache: cfg.cache}).count(pos, depth)
	return n
}

// Result is the subtree size below one root move.
type Result struct {
	Move  board.Move
	Nodes uint64
}

// Divide returns Count for each legal root move, in generation order.
func Divide(pos *board.Position, depth int, opts ...Option) []Result {
	if depth < 1 {
		return nil
	}
	cfg := newConfig(opts)
	w := &walker{ctx: context.Background(), cache: cfg.cache}
	moves := pos.GenerateLegalMoves()
	results := make([]Result, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.Apply(m)
		n, _ := w.count(pos, depth-1)
		pos.Unapply(m, undo)
		results = append(results, Result{Move: m, Nodes: n})
	}
	return results
}

// Total sums the node counts of a Divide result.
func Total(results []Result) uint64 {
	var n uint64
	for _, r := range results {
		n += r.Nodes
	}
	return n
}

type walker struct {
	ctx   context.Context
	cache Cache
}

// count walks the tree, checking for cancellation between moves.
func (w *walker) count(pos *board.Position, depth int) (uint64, error) {
	if depth < 0 {
		return 0, nil
	}
	if depth == 0 {
		return 1, nil
	}
	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len()), nil
	}

	useCache := w.cache != nil && depth >= minCacheDepth
	if useCache {
		if n, ok := w.cache.Get(pos.Hash(), depth); ok {
			return n, nil
		}
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		if err := w.ctx.Err(); err != nil {
			return nodes, err
		}
		m := moves.Get(i)
		undo := pos.Apply(m)
		n, err := w.count(pos, depth-1)
		pos.Unapply(m, undo)
		if err != nil {
			return nodes, err
		}
		nodes += n
	}

	if useCache {
		w.cache.Put(pos.Hash(), depth, nodes)
	}
	return nodes, nil
}
