// This file implements the passengers table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sgostarter/i/l"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Compile-time interface check: passengersTable must implement Table.
var _ types.Table = (*passengersTable)(nil)

const selectPassengers = "SELECT passenger_id, flight_id, ticket, name, age FROM passengers"

// passengersTable implements the Table interface for *types.Passenger.
type passengersTable struct {
	backend *Backend
}

// Get retrieves a passenger by ID.
func (pt *passengersTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	b := pt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	p, err := hydratePassenger(b.db.QueryRow(selectPassengers+" WHERE passenger_id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting passenger %d: %w", id, err)
	}
	return p, nil
}

// Set creates or updates a passenger. The referenced flight must exist.
// An empty ticket is replaced by a generated one.
func (pt *passengersTable) Set(id int64, data any) (int64, error) {
	p, ok := data.(*types.Passenger)
	if !ok || p == nil {
		return 0, types.ErrInvalidData
	}
	if id < 0 {
		return 0, types.ErrInvalidID
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Ticket = strings.TrimSpace(p.Ticket)
	if err := p.Validate(); err != nil {
		return 0, err
	}

	b := pt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return 0, err
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM flights WHERE flight_id = ?", p.FlightID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, types.ErrUnknownFlight
	}
	if err != nil {
		return 0, fmt.Errorf("checking flight %d: %w", p.FlightID, err)
	}

	if p.Ticket == "" {
		ticket, err := newTicket()
		if err != nil {
			return 0, err
		}
		p.Ticket = ticket
	}

	if id == 0 {
		res, err := b.db.Exec(
			"INSERT INTO passengers (flight_id, ticket, name, age) VALUES (?, ?, ?, ?)",
			p.FlightID, p.Ticket, p.Name, p.Age,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting passenger: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("reading passenger id: %w", err)
		}
	} else {
		_, err := b.db.Exec(
			`INSERT INTO passengers (passenger_id, flight_id, ticket, name, age)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(passenger_id) DO UPDATE SET
			   flight_id = excluded.flight_id, ticket = excluded.ticket,
			   name = excluded.name, age = excluded.age`,
			id, p.FlightID, p.Ticket, p.Name, p.Age,
		)
		if err != nil {
			return 0, fmt.Errorf("persisting passenger %d: %w", id, err)
		}
	}
	p.PassengerID = id

	if err := persistTable(b.db, b.config.DataDir, passengersSpec); err != nil {
		return 0, fmt.Errorf("persisting %s: %w", passengersJSONL, err)
	}
	b.logger.WithFields(l.StringField("table", types.TablePassengers), l.IntField("id", int(id))).Debug("set")
	return id, nil
}

// Delete removes a passenger.
func (pt *passengersTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	b := pt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return err
	}

	res, err := b.db.Exec("DELETE FROM passengers WHERE passenger_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting passenger %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	if err := persistTable(b.db, b.config.DataDir, passengersSpec); err != nil {
		return fmt.Errorf("persisting %s: %w", passengersJSONL, err)
	}
	return nil
}

// Fetch returns passengers matching the filter in ID order.
// Keys: flight_id, min_age, max_age, name, limit, offset.
func (pt *passengersTable) Fetch(filter types.Filter) ([]any, error) {
	wc, err := parseFilter(filter, passengerFilters)
	if err != nil {
		return nil, err
	}
	b := pt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(wc.build(selectPassengers, "passenger_id ASC"), wc.args...)
	if err != nil {
		return nil, fmt.Errorf("fetching passengers: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		p, err := hydratePassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating passenger: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating passengers: %w", err)
	}
	return results, nil
}

// newTicket issues a ticket code from a UUID v7, whose leading bits are a
// millisecond timestamp.
func newTicket() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return "TCK-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12]), nil
}
