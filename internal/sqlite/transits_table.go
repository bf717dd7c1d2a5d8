// This file implements the transits table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Compile-time interface check: transitsTable must implement Table.
var _ types.Table = (*transitsTable)(nil)

const selectTransits = "SELECT transit_id, date, airport, num_passengers FROM transits"

// transitsTable implements the Table interface for *types.Transit.
type transitsTable struct {
	backend *Backend
}

func (tt *transitsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	b := tt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	tr, err := hydrateTransit(b.db.QueryRow(selectTransits+" WHERE transit_id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting transit %d: %w", id, err)
	}
	return tr, nil
}

func (tt *transitsTable) Set(id int64, data any) (int64, error) {
	tr, ok := data.(*types.Transit)
	if !ok || tr == nil {
		return 0, types.ErrInvalidData
	}
	if id < 0 {
		return 0, types.ErrInvalidID
	}
	tr.Normalize()
	if err := tr.Validate(); err != nil {
		return 0, err
	}

	b := tt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return 0, err
	}

	date := tr.Date.Format(types.DateLayout)
	if id == 0 {
		res, err := b.db.Exec(
			"INSERT INTO transits (date, airport, num_passengers) VALUES (?, ?, ?)",
			date, tr.Airport, tr.Passengers,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting transit: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("reading transit id: %w", err)
		}
	} else {
		_, err := b.db.Exec(
			`INSERT INTO transits (transit_id, date, airport, num_passengers)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(transit_id) DO UPDATE SET
			   date = excluded.date, airport = excluded.airport, num_passengers = excluded.num_passengers`,
			id, date, tr.Airport, tr.Passengers,
		)
		if err != nil {
			return 0, fmt.Errorf("persisting transit %d: %w", id, err)
		}
	}
	tr.TransitID = id

	if err := persistTable(b.db, b.config.DataDir, transitsSpec); err != nil {
		return 0, fmt.Errorf("persisting %s: %w", transitsJSONL, err)
	}
	return id, nil
}

func (tt *transitsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	b := tt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return err
	}

	res, err := b.db.Exec("DELETE FROM transits WHERE transit_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting transit %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	if err := persistTable(b.db, b.config.DataDir, transitsSpec); err != nil {
		return fmt.Errorf("persisting %s: %w", transitsJSONL, err)
	}
	return nil
}

// Fetch returns transit records, newest first.
// Keys: airport, date_from, date_to, limit, offset.
func (tt *transitsTable) Fetch(filter types.Filter) ([]any, error) {
	wc, err := parseFilter(filter, transitFilters)
	if err != nil {
		return nil, err
	}
	b := tt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(wc.build(selectTransits, "date DESC, transit_id DESC"), wc.args...)
	if err != nil {
		return nil, fmt.Errorf("fetching transits: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		tr, err := hydrateTransit(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating transit: %w", err)
		}
		results = append(results, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transits: %w", err)
	}
	return results, nil
}
