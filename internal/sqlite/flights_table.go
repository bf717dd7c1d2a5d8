// This file implements the flights table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Compile-time interface check: flightsTable must implement Table.
var _ types.Table = (*flightsTable)(nil)

const selectFlights = "SELECT flight_id, date, origin, destination, num_passengers, status FROM flights"

// flightsTable implements the Table interface for *types.Flight. Every
// mutation rewrites flights.jsonl, and deletes also rewrite passengers.jsonl.
type flightsTable struct {
	backend *Backend
}

// Get retrieves a flight by ID.
func (ft *flightsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	b := ft.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	flight, err := hydrateFlight(b.db.QueryRow(selectFlights+" WHERE flight_id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting flight %d: %w", id, err)
	}
	return flight, nil
}

// Set creates the flight when id is 0 and otherwise writes it under id,
// inserting the row if none exists. data must be a *types.Flight; it is
// normalized in place and its FlightID is set to the returned ID.
func (ft *flightsTable) Set(id int64, data any) (int64, error) {
	flight, ok := data.(*types.Flight)
	if !ok || flight == nil {
		return 0, types.ErrInvalidData
	}
	if id < 0 {
		return 0, types.ErrInvalidID
	}
	flight.Normalize()
	if err := flight.Validate(); err != nil {
		return 0, err
	}

	b := ft.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return 0, err
	}

	date := flight.Date.Format(types.DateLayout)
	if id == 0 {
		res, err := b.db.Exec(
			"INSERT INTO flights (date, origin, destination, num_passengers, status) VALUES (?, ?, ?, ?, ?)",
			date, flight.Origin, flight.Destination, flight.Passengers, flight.Status,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting flight: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("reading flight id: %w", err)
		}
	} else {
		_, err := b.db.Exec(
			`INSERT INTO flights (flight_id, date, origin, destination, num_passengers, status)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(flight_id) DO UPDATE SET
			   date = excluded.date, origin = excluded.origin, destination = excluded.destination,
			   num_passengers = excluded.num_passengers, status = excluded.status`,
			id, date, flight.Origin, flight.Destination, flight.Passengers, flight.Status,
		)
		if err != nil {
			return 0, fmt.Errorf("persisting flight %d: %w", id, err)
		}
	}
	flight.FlightID = id

	if err := persistTable(b.db, b.config.DataDir, flightsSpec); err != nil {
		return 0, fmt.Errorf("persisting %s: %w", flightsJSONL, err)
	}
	b.logger.WithFields(l.StringField("table", types.TableFlights), l.IntField("id", int(id))).Debug("set")
	return id, nil
}

// Delete removes a flight and the passengers booked on it.
func (ft *flightsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	b := ft.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM passengers WHERE flight_id = ?", id); err != nil {
		return fmt.Errorf("deleting passengers of flight %d: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM flights WHERE flight_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting flight %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing flight deletion: %w", err)
	}

	if err := persistTable(b.db, b.config.DataDir, flightsSpec); err != nil {
		return fmt.Errorf("persisting %s: %w", flightsJSONL, err)
	}
	if err := persistTable(b.db, b.config.DataDir, passengersSpec); err != nil {
		return fmt.Errorf("persisting %s: %w", passengersJSONL, err)
	}
	b.logger.WithFields(l.StringField("table", types.TableFlights), l.IntField("id", int(id))).Debug("delete")
	return nil
}

// Fetch returns flights matching the filter, newest first.
// Keys: origin, destination, status, date_from, date_to, limit, offset.
func (ft *flightsTable) Fetch(filter types.Filter) ([]any, error) {
	wc, err := parseFilter(filter, flightFilters)
	if err != nil {
		return nil, err
	}
	b := ft.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(wc.build(selectFlights, "date DESC, flight_id DESC"), wc.args...)
	if err != nil {
		return nil, fmt.Errorf("fetching flights: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		flight, err := hydrateFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating flight: %w", err)
		}
		results = append(results, flight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating flights: %w", err)
	}
	return results, nil
}
