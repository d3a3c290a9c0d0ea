package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/varmodel/catdomain/domain"
)

var (
	// ErrSnapshotNotFound indicates no snapshot exists under the name.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrEmptyName indicates a snapshot name was empty.
	ErrEmptyName = errors.New("snapshot name must not be empty")
)

const snapshotPrefix = "snapshot/"

// Config holds configuration for a snapshot store.
type Config struct {
	// Path is the directory for BadgerDB files.
	// Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives store operation logs. Badger's own logging is
	// disabled either way. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// Store persists counted string vocabularies between the counting pass and
// the reload pass of the count, trim, reload protocol.
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// snapshot is the stored payload for one domain. Indices in the restored
// registry equal positions in Values.
type snapshot struct {
	Values     []string `json:"values"`
	Counts     []uint64 `json:"counts"`
	Generation uint64   `json:"generation"`
}

// Open opens a snapshot store with the given configuration.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot persists the registry's values, counts and generation under
// name, replacing any previous snapshot with that name.
func (s *Store) SaveSnapshot(name string, reg *domain.CountingRegistry[string]) error {
	if name == "" {
		return ErrEmptyName
	}

	snap := snapshot{
		Values:     reg.Values(),
		Counts:     reg.Counts(),
		Generation: reg.Generation(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", name, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotPrefix+name), data)
	})
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}

	s.logger.Info("saved vocabulary snapshot",
		zap.String("name", name),
		zap.Int("values", len(snap.Values)),
		zap.Uint64("generation", snap.Generation))
	return nil
}

// LoadSnapshot rebuilds a counting registry from the snapshot stored under
// name. The restored registry assigns indices in snapshot order, so they
// match the registry the snapshot was taken from.
func (s *Store) LoadSnapshot(name string) (*domain.CountingRegistry[string], error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotPrefix + name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("load snapshot %q: %w", name, ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", name, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", name, err)
	}

	reg, err := domain.RestoreCountingRegistry(snap.Values, snap.Counts)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %q: %w", name, err)
	}

	s.logger.Info("loaded vocabulary snapshot",
		zap.String("name", name),
		zap.Int("values", len(snap.Values)))
	return reg, nil
}

// DeleteSnapshot removes the snapshot stored under name. Deleting a
// missing snapshot is not an error.
func (s *Store) DeleteSnapshot(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(snapshotPrefix + name))
	})
	if err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	return nil
}

// ListSnapshots returns the names of all stored snapshots.
func (s *Store) ListSnapshots() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(snapshotPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, snapshotPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return names, nil
}
