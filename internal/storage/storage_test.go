package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
	"github.com/hailam/chesscore/internal/testutil"
)

func openStore(t *testing.T) *storage.PerftStore {
	t.Helper()
	s, err := storage.Open(t.TempDir())
	testutil.AssertNoErrorf(t, err, "open store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPerftStore(t *testing.T) {
	s := openStore(t)

	t.Run("MissingKey", func(t *testing.T) {
		_, ok, err := s.Lookup(42, 3)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("empty store reported a record")
		}
	})

	t.Run("SaveAndLookup", func(t *testing.T) {
		testutil.AssertNoError(t, s.Save(42, 3, 8902))
		rec, ok, err := s.Lookup(42, 3)
		testutil.AssertNoError(t, err)
		if !ok || rec.Nodes != 8902 || rec.Depth != 3 || rec.Hash != 42 {
			t.Errorf("Lookup = %+v, %v", rec, ok)
		}
		if _, ok, _ := s.Lookup(42, 4); ok {
			t.Error("other depth must miss")
		}
	})

	t.Run("CacheInterface", func(t *testing.T) {
		var c perft.Cache = s
		c.Put(7, 2, 400)
		if n, ok := c.Get(7, 2); !ok || n != 400 {
			t.Errorf("Get = %d, %v", n, ok)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		testutil.AssertNoError(t, s.Clear())
		n, err := s.Len()
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("Len after Clear = %d", n)
		}
	})
}

func TestPerftStoreBacksPerft(t *testing.T) {
	dir := t.TempDir()
	pos := testutil.MustFEN(t, testutil.KiwipeteFEN)

	s, err := storage.Open(dir)
	testutil.AssertNoError(t, err)
	got, err := perft.CountParallel(context.Background(), pos, 3, perft.WithCache(s))
	testutil.AssertNoError(t, err)
	if got != 97862 {
		t.Fatalf("cold run = %d, want 97862", got)
	}
	n, err := s.Len()
	testutil.AssertNoError(t, err)
	if n == 0 {
		t.Fatal("nothing was stored")
	}
	testutil.AssertNoError(t, s.Close())

	// Reopen: the counts must come back from disk.
	s, err = storage.Open(dir)
	testutil.AssertNoError(t, err)
	defer s.Close()
	if got := perft.Count(pos, 3, perft.WithCache(s)); got != 97862 {
		t.Errorf("warm run = %d, want 97862", got)
	}
}

func TestDataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv(storage.DataDirEnv, dir)

	got, err := storage.DataDir()
	testutil.AssertNoError(t, err)
	if got != dir {
		t.Errorf("DataDir = %q, want %q", got, dir)
	}
	db, err := storage.DatabaseDir()
	testutil.AssertNoError(t, err)
	if _, err := os.Stat(db); err != nil {
		t.Errorf("database dir not created: %v", err)
	}

	s, err := storage.Open("")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Save(1, 2, 3))
	testutil.AssertNoError(t, s.Close())
	if filepath.Dir(db) != dir {
		t.Errorf("DatabaseDir = %q, want it under %q", db, dir)
	}
}
