// ABOUTME: Synchronous local snapshot store on Badger.
// ABOUTME: Persists AppState, the sync queue, and the flush flag.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
)

const (
	stateKey    = "state"
	queueKey    = "sync-queue"
	flushingKey = "sync-in-progress"
)

// Store is the durable local snapshot. All operations complete without
// suspension so the UI can bootstrap before any network call resolves.
// Durability here is best-effort: the in-memory copy stays
// authoritative, so write failures are logged and swallowed.
type Store struct {
	db     *badger.DB
	logger *log.Logger
}

// Open opens or creates the local store at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create local store directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	return &Store{
		db:     db,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "localstore"}),
	}, nil
}

// DefaultDir returns the default data directory following XDG spec.
func DefaultDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ironlog")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted snapshot. Missing or malformed data
// yields the documented default state; Load never fails.
func (s *Store) Load() models.AppState {
	data, err := s.get(stateKey)
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.logger.Warn("failed to load snapshot, using defaults", "err", err)
		}
		return models.DefaultState()
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("malformed snapshot, using defaults", "err", err)
		return models.DefaultState()
	}
	// Older snapshots may predate some settings fields. Default only
	// the missing ones; everything persisted stays as written.
	if state.Settings.Units == "" {
		state.Settings.Units = models.UnitsKg
	}
	if state.Settings.StepGoal == 0 {
		state.Settings.StepGoal = 10000
	}
	if state.Settings.CycleStartDay == 0 {
		state.Settings.CycleStartDay = 1
	}
	return state
}

// Save persists the snapshot. Failure is logged, never propagated.
func (s *Store) Save(state models.AppState) {
	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn("failed to encode snapshot", "err", err)
		return
	}
	if err := s.set(stateKey, data); err != nil {
		s.logger.Warn("failed to persist snapshot", "err", err)
	}
}

// LoadQueue returns the persisted sync queue in enqueue order.
func (s *Store) LoadQueue() []remote.Operation {
	data, err := s.get(queueKey)
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.logger.Warn("failed to load sync queue", "err", err)
		}
		return nil
	}

	var ops []remote.Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		s.logger.Warn("malformed sync queue, dropping", "err", err)
		return nil
	}
	return ops
}

// SaveQueue persists the sync queue. Failure is logged, never propagated.
func (s *Store) SaveQueue(ops []remote.Operation) {
	if ops == nil {
		ops = []remote.Operation{}
	}
	data, err := json.Marshal(ops)
	if err != nil {
		s.logger.Warn("failed to encode sync queue", "err", err)
		return
	}
	if err := s.set(queueKey, data); err != nil {
		s.logger.Warn("failed to persist sync queue", "err", err)
	}
}

// SetFlushing records the advisory flush-in-progress flag. The flag is
// only meaningful under the single-active-process assumption.
func (s *Store) SetFlushing(flushing bool) {
	var err error
	if flushing {
		err = s.set(flushingKey, []byte("true"))
	} else {
		err = s.delete(flushingKey)
	}
	if err != nil {
		s.logger.Warn("failed to update flush flag", "err", err)
	}
}

// IsFlushing reports the advisory flush flag.
func (s *Store) IsFlushing() bool {
	data, err := s.get(flushingKey)
	if err != nil {
		return false
	}
	return string(data) == "true"
}

func (s *Store) get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

func (s *Store) set(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
