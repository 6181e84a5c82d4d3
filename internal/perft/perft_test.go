package perft_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/testutil"
)

var cases = []struct {
	name  string
	fen   string
	depth int
	want  uint64
}{
	{"start", testutil.StartFEN, 3, 8902},
	{"kiwipete", testutil.KiwipeteFEN, 2, 2039},
	{"position3", testutil.Position3FEN, 4, 43238},
	{"position4", testutil.Position4FEN, 3, 9467},
	{"position5", testutil.Position5FEN, 3, 62379},
}

func TestCount(t *testing.T) {
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tc.fen)
			before := pos.Clone()
			if got := perft.Count(pos, tc.depth); got != tc.want {
				t.Errorf("Count(%d) = %d, want %d", tc.depth, got, tc.want)
			}
			testutil.AssertSamePositionf(t, pos, before, "Count left the position changed")
		})
	}
	if got := perft.Count(board.NewPosition(), 0); got != 1 {
		t.Errorf("Count(0) = %d, want 1", got)
	}
	if got := perft.Count(board.NewPosition(), -1); got != 0 {
		t.Errorf("Count(-1) = %d, want 0", got)
	}
	if got, err := perft.CountParallel(context.Background(), board.NewPosition(), -1); err != nil || got != 0 {
		t.Errorf("CountParallel(-1) = %d, %v; want 0", got, err)
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	results := perft.Divide(pos, 3)
	if len(results) != 20 {
		t.Fatalf("Divide returned %d root moves", len(results))
	}
	if total := perft.Total(results); total != 8902 {
		t.Errorf("Divide total = %d, want 8902", total)
	}
	for _, r := range results {
		if r.Move.String() == "e2e4" && r.Nodes != 600 {
			t.Errorf("e2e4 subtree = %d, want 600", r.Nodes)
		}
		if r.Move.String() == "g1f3" && r.Nodes != 440 {
			t.Errorf("g1f3 subtree = %d, want 440", r.Nodes)
		}
	}
}

func TestCountParallelMatchesSerial(t *testing.T) {
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tc.fen)
			before := pos.Clone()
			got, err := perft.CountParallel(context.Background(), pos, tc.depth, perft.WithWorkers(4))
			testutil.AssertNoError(t, err)
			if got != tc.want {
				t.Errorf("CountParallel(%d) = %d, want %d", tc.depth, got, tc.want)
			}
			testutil.AssertSamePositionf(t, pos, before, "CountParallel touched the caller's position")
		})
	}
}

func TestDivideParallelKeepsOrder(t *testing.T) {
	pos := testutil.MustFEN(t, testutil.KiwipeteFEN)
	serial := perft.Divide(pos, 2)
	parallel, err := perft.DivideParallel(context.Background(), pos, 2, perft.WithWorkers(3))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, parallel, serial)
}

func TestCountParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := perft.CountParallel(ctx, board.NewPosition(), 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCachedCountMatchesUncached(t *testing.T) {
	cache := perft.NewMemoryCache(1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tc.fen)
			if got := perft.Count(pos, tc.depth, perft.WithCache(cache)); got != tc.want {
				t.Errorf("cold cache: %d, want %d", got, tc.want)
			}
			if got := perft.Count(pos, tc.depth, perft.WithCache(cache)); got != tc.want {
				t.Errorf("warm cache: %d, want %d", got, tc.want)
			}
			got, err := perft.CountParallel(context.Background(), pos, tc.depth, perft.WithCache(cache))
			testutil.AssertNoError(t, err)
			if got != tc.want {
				t.Errorf("parallel with cache: %d, want %d", got, tc.want)
			}
		})
	}
	if cache.HitRate() == 0 {
		t.Error("second run should hit the cache")
	}
}

func TestMemoryCache(t *testing.T) {
	cache := perft.NewMemoryCache(1)
	cache.Put(0xDEADBEEF, 3, 1234)
	if n, ok := cache.Get(0xDEADBEEF, 3); !ok || n != 1234 {
		t.Errorf("Get = %d, %v", n, ok)
	}
	if _, ok := cache.Get(0xDEADBEEF, 4); ok {
		t.Error("different depth must miss")
	}
	cache.Clear()
	if _, ok := cache.Get(0xDEADBEEF, 3); ok {
		t.Error("Clear kept an entry")
	}
}

func BenchmarkCountParallel(b *testing.B) {
	pos := board.NewPosition()
	for i := 0; i < b.N; i++ {
		if _, err := perft.CountParallel(context.Background(), pos, 4); err != nil {
			b.Fatal(err)
		}
	}
}
