package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const perftPrefix = "perft/"

// PerftRecord is one stored subtree count.
type PerftRecord struct {
	Hash   uint64    `json:"hash"`
	Depth  int       `json:"depth"`
	Nodes  uint64    `json:"nodes"`
	Stored time.Time `json:"stored"`
}

// PerftStore wraps BadgerDB as a persistent perft cache. It is safe for
// concurrent use.
type PerftStore struct {
	db *badger.DB
}

// Open opens (or creates) the store in dir. An empty dir selects
// DatabaseDir.
func Open(dir string) (*PerftStore, error) {
	if dir == "" {
		var err error
		if dir, err = DatabaseDir(); err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open perft store: %w", err)
	}
	return &PerftStore{db: db}, nil
}

// Close closes the database.
func (s *PerftStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func perftKey(hash uint64, depth int) []byte {
	return []byte(fmt.Sprintf("%s%016x/%02d", perftPrefix, hash, depth))
}

// Lookup returns the record for hash at depth, if any.
func (s *PerftStore) Lookup(hash uint64, depth int) (PerftRecord, bool, error) {
	var rec PerftRecord
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(hash, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return PerftRecord{}, false, err
	}
	return rec, found, nil
}

// Save stores a count, replacing any earlier one.
func (s *PerftStore) Save(hash uint64, depth int, nodes uint64) error {
	data, err := json.Marshal(PerftRecord{
		Hash:   hash,
		Depth:  depth,
		Nodes:  nodes,
		Stored: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(hash, depth), data)
	})
}

// Get implements perft.Cache. Read errors are logged and count as a miss.
func (s *PerftStore) Get(hash uint64, depth int) (uint64, bool) {
	rec, ok, err := s.Lookup(hash, depth)
	if err != nil {
		log.Printf("storage: lookup %016x/%d: %v", hash, depth, err)
		return 0, false
	}
	return rec.Nodes, ok
}

// Put implements perft.Cache. Write errors are logged and dropped.
func (s *PerftStore) Put(hash uint64, depth int, nodes uint64) {
	if err := s.Save(hash, depth, nodes); err != nil {
		log.Printf("storage: save %016x/%d: %v", hash, depth, err)
	}
}

// Len returns the number of stored records.
func (s *PerftStore) Len() (int, error) {
	n := 0
	prefix := []byte(perftPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Clear deletes every stored record.
func (s *PerftStore) Clear() error {
	return s.db.DropPrefix([]byte(perftPrefix))
}
