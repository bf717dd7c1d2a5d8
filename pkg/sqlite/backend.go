// Package sqlite exposes the SQLite record store to other modules while
// keeping the implementation internal.
package sqlite

import (
	"github.com/sgostarter/i/l"

	"github.com/mesh-intelligence/tower/internal/sqlite"
	"github.com/mesh-intelligence/tower/pkg/types"
)

// NewBackend creates a new SQLite backend instance. A nil logger discards
// log output. The backend is not attached; call Attach with a Config.
//
// Example:
//
//	store := sqlite.NewBackend(nil)
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".tower-db",
//	})
//	defer store.Detach()
func NewBackend(logger l.Wrapper) types.Store {
	return sqlite.NewBackend(logger)
}
