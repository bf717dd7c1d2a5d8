// This file converts SQLite rows into entity structs.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateFlight(row rowScanner) (*types.Flight, error) {
	var (
		f    types.Flight
		date string
	)
	if err := row.Scan(&f.FlightID, &date, &f.Origin, &f.Destination, &f.Passengers, &f.Status); err != nil {
		return nil, err
	}
	t, err := parseStoredDate(date)
	if err != nil {
		return nil, err
	}
	f.Date = t
	return &f, nil
}

func hydratePassenger(row rowScanner) (*types.Passenger, error) {
	var p types.Passenger
	if err := row.Scan(&p.PassengerID, &p.FlightID, &p.Ticket, &p.Name, &p.Age); err != nil {
		return nil, err
	}
	return &p, nil
}

func hydrateTransit(row rowScanner) (*types.Transit, error) {
	var (
		tr   types.Transit
		date string
	)
	if err := row.Scan(&tr.TransitID, &date, &tr.Airport, &tr.Passengers); err != nil {
		return nil, err
	}
	t, err := parseStoredDate(date)
	if err != nil {
		return nil, err
	}
	tr.Date = t
	return &tr, nil
}

// parseStoredDate accepts the DateLayout form written by the backend and
// RFC 3339 timestamps found in hand-edited JSONL files.
func parseStoredDate(s string) (time.Time, error) {
	if t, err := time.Parse(types.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, types.ErrInvalidDate)
	}
	return types.TruncateDay(t.UTC()), nil
}
