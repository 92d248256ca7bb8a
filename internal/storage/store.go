// Package storage provides the run store for GravSweep.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
	telemetry "github.com/gravsweep/gravsweep-go/internal/telemetry/metric"
)

// Key layout.
const runKeyPrefix = "run:"

// Default configuration values.
const (
	DefaultGCInterval  = 10 * time.Minute
	DefaultGCThreshold = 0.5
)

// Config configures the run store.
type Config struct {
	// Dir is the Badger data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps all data in memory (tests, ephemeral runs).
	InMemory bool

	// SyncWrites forces fsync on every write.
	SyncWrites bool

	// GCInterval is the value-log GC cadence.
	GCInterval time.Duration

	// GCThreshold is the value-log rewrite ratio passed to Badger.
	GCThreshold float64
}

// DefaultConfig returns the default store configuration.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		GCInterval:  DefaultGCInterval,
		GCThreshold: DefaultGCThreshold,
	}
}

// Store is the Badger-backed run store. It implements eval.RunStore.
type Store struct {
	db      *badger.DB
	cfg     Config
	log     logger.Logger
	metrics *telemetry.Registry

	stopCh chan struct{}
	doneCh chan struct{}
}

// New opens the run store.
func New(cfg Config, log logger.Logger, metrics *telemetry.Registry) (*Store, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, metric.ErrInvalidArgument.WithDetails("storage dir is required")
	}
	if cfg.GCInterval <= 0 {
		cfg.GCInterval = DefaultGCInterval
	}
	if cfg.GCThreshold <= 0 {
		cfg.GCThreshold = DefaultGCThreshold
	}
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = telemetry.NewNopRegistry()
	}

	opts := badger.DefaultOptions(cfg.Dir).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(badgerLogger{log: log})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, metric.ErrStorage.WithDetails("open run store").WithCause(err)
	}

	s := &Store{
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go s.gcLoop()

	log.Info("run store opened",
		"dir", cfg.Dir,
		"in_memory", cfg.InMemory,
		"gc_interval", cfg.GCInterval)

	return s, nil
}

// Put persists a run. Implements eval.RunStore.
func (s *Store) Put(ctx context.Context, run *eval.Run) error {
	if run == nil || run.ID == "" {
		return metric.ErrInvalidArgument.WithDetails("run id is required")
	}

	value, err := json.Marshal(run)
	if err != nil {
		return metric.ErrStorage.WithDetails("encode run").WithCause(err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(run.ID), value)
	})
	if err != nil {
		return metric.ErrStorage.WithDetails("put run").WithCause(err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (*eval.Run, error) {
	var run eval.Run

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(runKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return metric.ErrRunNotFound.WithDetails(id)
			}
			return metric.ErrStorage.WithCause(err)
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &run)
		})
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns up to limit runs, newest first. limit <= 0 means all.
//
// Run IDs embed a ULID, so lexicographic key order is creation order.
func (s *Store) List(ctx context.Context, limit int) ([]*eval.Run, error) {
	var runs []*eval.Run

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var run eval.Run
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &run)
			})
			if err != nil {
				return metric.ErrStorage.WithDetails("decode run").WithCause(err)
			}
			runs = append(runs, &run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Delete removes a run. Deleting a missing run is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(runKey(id))
	})
	if err != nil {
		return metric.ErrStorage.WithDetails("delete run").WithCause(err)
	}
	return nil
}

// Count returns the number of stored runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close stops background work and closes the database.
func (s *Store) Close() error {
	close(s.stopCh)
	<-s.doneCh
	return s.db.Close()
}

// gcLoop periodically runs value-log GC and refreshes the size gauge.
func (s *Store) gcLoop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.cfg.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			for {
				if err := s.db.RunValueLogGC(s.cfg.GCThreshold); err != nil {
					if !errors.Is(err, badger.ErrNoRewrite) {
						s.log.Warn("value log gc", "error", err)
					}
					break
				}
			}
			lsm, vlog := s.db.Size()
			s.metrics.StoreSize.Set(float64(lsm + vlog))
		}
	}
}

func runKey(id string) []byte {
	return []byte(runKeyPrefix + id)
}

// badgerLogger adapts the application logger to badger.Logger.
// Badger's info-level chatter is demoted to debug.
type badgerLogger struct {
	log logger.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf("badger: "+format, args...))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(fmt.Sprintf("badger: "+format, args...))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf("badger: "+format, args...))
}
