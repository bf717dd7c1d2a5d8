// Package sqlite implements the SQLite storage backend for tower.
// JSONL files in the data directory are the source of truth; SQLite is the
// query engine, rebuilt from the JSONL files on every Attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/l"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// dbFileName is the SQLite file created inside DataDir.
const dbFileName = "tower.db"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
	logger   l.Wrapper
}

// NewBackend creates a new SQLite backend instance. A nil logger discards
// log output. The backend is not attached; call Attach with a Config.
func NewBackend(logger l.Wrapper) *Backend {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Backend{
		tables: make(map[string]types.Table),
		logger: logger.WithFields(l.StringField(l.ClsKey, "sqliteBackend")),
	}
}

// GetTable returns the Table for the given name.
// Returns ErrStoreDetached if the backend is not attached and
// ErrTableNotFound if the name is not a standard table.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach creates DataDir if needed, recreates the SQLite database, applies
// the schema and loads every JSONL file. Returns ErrAlreadyAttached if the
// backend is already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.DataDir == "" {
		config.DataDir = "."
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is a cache of the JSONL files; start from a fresh file.
	dbPath := filepath.Join(config.DataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps PRAGMA state and serialises writers.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}
	if err := ensureJSONLFiles(config.DataDir); err != nil {
		db.Close()
		return err
	}
	loaded, err := loadAllJSONL(db, config.DataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.tables[types.TableFlights] = &flightsTable{backend: b}
	b.tables[types.TablePassengers] = &passengersTable{backend: b}
	b.tables[types.TableTransits] = &transitsTable{backend: b}

	b.logger.WithFields(
		l.StringField("dataDir", config.DataDir),
		l.IntField("records", loaded),
	).Debug("attached")
	return nil
}

// Detach closes the SQLite connection. Idempotent. After Detach, all table
// operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.tables = make(map[string]types.Table)

	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			b.logger.WithFields(l.ErrorField(err)).Error("close database")
			return err
		}
	}
	b.logger.Debug("detached")
	return nil
}

// DataDir returns the directory the backend is attached to.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DataDir
}

// checkAttached must be called with b.mu held.
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrStoreDetached
	}
	return nil
}
