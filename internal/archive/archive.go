// ABOUTME: Raw payload archive backed by Badger, keyed by sync run and endpoint.
// ABOUTME: Lets a bad normalization be replayed against the exact API responses.
package archive

import (
	"fmt"
	"os"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
)

// Store is an append-only archive of raw API response bodies.
type Store struct {
	db  *badger.DB
	seq int
}

// Open opens or creates an archive at the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one raw response body under the given run. Multiple bodies
// per endpoint (pagination) get sequential keys within the run.
func (s *Store) Record(runID, endpoint string, payload []byte) error {
	key := fmt.Sprintf("%s|%s|%04d", runID, endpoint, s.seq)
	s.seq++
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	})
	if err != nil {
		return fmt.Errorf("failed to archive payload: %w", err)
	}
	return nil
}

// Keys lists every archived payload key for a run, in insertion order.
// An empty runID lists all keys.
func (s *Store) Keys(runID string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(runID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list archive keys: %w", err)
	}
	return keys, nil
}

// Get returns one archived payload by key.
func (s *Store) Get(key string) ([]byte, error) {
	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read archived payload: %w", err)
	}
	return payload, nil
}

// Runs returns the distinct run IDs present in the archive.
func (s *Store) Runs() ([]string, error) {
	keys, err := s.Keys("")
	if err != nil {
		return nil, err
	}
	var runs []string
	seen := make(map[string]bool)
	for _, key := range keys {
		runID, _, ok := strings.Cut(key, "|")
		if !ok || seen[runID] {
			continue
		}
		seen[runID] = true
		runs = append(runs, runID)
	}
	return runs, nil
}
