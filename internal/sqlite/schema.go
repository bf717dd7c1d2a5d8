package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL for all tables. Identifiers are SQLite auto-increment keys;
// dates are stored as YYYY-MM-DD text.
const (
	createFlights = `CREATE TABLE flights (
    flight_id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    origin TEXT NOT NULL,
    destination TEXT NOT NULL,
    num_passengers INTEGER NOT NULL,
    status TEXT NOT NULL
);`

	createTransits = `CREATE TABLE transits (
    transit_id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    airport TEXT NOT NULL,
    num_passengers INTEGER NOT NULL
);`

	createPassengers = `CREATE TABLE passengers (
    passenger_id INTEGER PRIMARY KEY AUTOINCREMENT,
    flight_id INTEGER NOT NULL,
    ticket TEXT NOT NULL,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    FOREIGN KEY (flight_id) REFERENCES flights(flight_id)
);`
)

// Index DDL for the dashboard and filter queries.
const (
	idxFlightsDate        = `CREATE INDEX idx_flights_date ON flights(date);`
	idxFlightsOrigin      = `CREATE INDEX idx_flights_origin ON flights(origin);`
	idxFlightsDestination = `CREATE INDEX idx_flights_destination ON flights(destination);`
	idxTransitsAirport    = `CREATE INDEX idx_transits_airport ON transits(airport);`
	idxPassengersFlight   = `CREATE INDEX idx_passengers_flight ON passengers(flight_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFlights,
	createTransits,
	createPassengers,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxFlightsDate,
	idxFlightsOrigin,
	idxFlightsDestination,
	idxTransitsAirport,
	idxPassengersFlight,
}

// applySchema creates every table and index on a fresh database.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
