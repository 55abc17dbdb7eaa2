// Package badger persists zoo records in an embedded BadgerDB key-value
// store. Records are stored as JSON values under per-kind key prefixes, so
// loading a kind is a single prefix scan.
package badger

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Config holds configuration for the embedded store
type Config struct {
	// Path is the directory for the database files. Ignored in memory mode.
	Path string

	// InMemory disables disk persistence. Used by tests.
	InMemory bool

	// SyncWrites forces every write to hit disk before returning.
	SyncWrites bool
}

// DefaultConfig returns the production configuration for the given directory
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration suitable for tests
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store wraps an open BadgerDB handle shared by the repositories
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// badgerLogger adapts zap to BadgerDB's logger interface
type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.logger.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.logger.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.logger.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.logger.Debugf(format, args...) }

// Open opens the database, creating the directory when needed
func Open(cfg Config, logger *zap.Logger) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithLogger(&badgerLogger{logger: logger.Named("badger").Sugar()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// set writes one JSON value under a key
func (s *Store) set(key []byte, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// get reads one value; found is false when the key does not exist
func (s *Store) get(key []byte) (value []byte, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, found, err
}

// remove deletes a key; deleting an absent key is not an error
func (s *Store) remove(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// scan walks every value under a prefix
func (s *Store) scan(prefix []byte, fn func(value []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}
