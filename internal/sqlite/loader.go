// This file implements JSONL loading for startup.
package sqlite

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// tableSpec ties a SQLite table to its JSONL file and column list.
type tableSpec struct {
	table   string
	file    string
	key     string
	columns []string
	// check rebuilds the entity from column values, validates it and
	// returns the canonical values to insert.
	check func(args []any) ([]any, error)
}

// Load order matters: passengers reference flights.
var (
	flightsSpec = tableSpec{
		table:   types.TableFlights,
		file:    flightsJSONL,
		key:     "flight_id",
		columns: []string{"flight_id", "date", "origin", "destination", "num_passengers", "status"},
		check:   checkFlightRecord,
	}
	transitsSpec = tableSpec{
		table:   types.TableTransits,
		file:    transitsJSONL,
		key:     "transit_id",
		columns: []string{"transit_id", "date", "airport", "num_passengers"},
		check:   checkTransitRecord,
	}
	passengersSpec = tableSpec{
		table:   types.TablePassengers,
		file:    passengersJSONL,
		key:     "passenger_id",
		columns: []string{"passenger_id", "flight_id", "ticket", "name", "age"},
		check:   checkPassengerRecord,
	}

	tableSpecs = []tableSpec{flightsSpec, transitsSpec, passengersSpec}
)

// loadAllJSONL reads each JSONL file from dataDir and inserts its records in
// a single transaction. Malformed lines, records missing columns and records
// that violate constraints are skipped; unknown fields are ignored. Returns
// the number of rows loaded.
func loadAllJSONL(db *sql.DB, dataDir string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	total := 0
	for _, spec := range tableSpecs {
		records, err := readJSONL(filepath.Join(dataDir, spec.file))
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", spec.file, err)
		}
		if len(records) == 0 {
			continue
		}
		n, err := insertRecords(tx, spec, records)
		if err != nil {
			return 0, fmt.Errorf("loading %s into %s: %w", spec.file, spec.table, err)
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return total, nil
}

// insertRecords inserts decoded records into spec.table and returns how many
// rows were accepted. Numbers are decoded with UseNumber so integer keys keep
// their integer type.
func insertRecords(tx *sql.Tx, spec tableSpec, records []json.RawMessage) (int, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(spec.columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		spec.table, strings.Join(spec.columns, ", "), placeholders,
	))
	if err != nil {
		return 0, fmt.Errorf("preparing insert for %s: %w", spec.table, err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		args, ok := decodeRecord(rec, spec.columns)
		if !ok {
			continue
		}
		if spec.check != nil {
			if args, err = spec.check(args); err != nil {
				continue
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
		inserted++
	}
	return inserted, nil
}

// decodeRecord extracts the values of columns from a JSON object. It reports
// false when the record is not an object or lacks a column.
func decodeRecord(rec json.RawMessage, columns []string) ([]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(rec))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, false
	}

	args := make([]any, len(columns))
	for i, col := range columns {
		val, ok := obj[col]
		if !ok || val == nil {
			return nil, false
		}
		if n, isNum := val.(json.Number); isNum {
			if iv, err := n.Int64(); err == nil {
				val = iv
			} else if fv, err := n.Float64(); err == nil {
				val = fv
			} else {
				return nil, false
			}
		}
		args[i] = val
	}
	return args, true
}

// checkFlightRecord validates decoded flights.jsonl values.
func checkFlightRecord(args []any) ([]any, error) {
	id, err := recordID(args[0])
	if err != nil {
		return nil, err
	}
	date, err := recordDate(args[1])
	if err != nil {
		return nil, err
	}
	passengers, err := cast.ToIntE(args[4])
	if err != nil {
		return nil, types.ErrInvalidCount
	}
	f := types.Flight{
		FlightID:    id,
		Date:        date,
		Origin:      cast.ToString(args[2]),
		Destination: cast.ToString(args[3]),
		Passengers:  passengers,
		Status:      cast.ToString(args[5]),
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []any{f.FlightID, f.Date.Format(types.DateLayout), f.Origin, f.Destination, f.Passengers, f.Status}, nil
}

// checkTransitRecord validates decoded transits.jsonl values.
func checkTransitRecord(args []any) ([]any, error) {
	id, err := recordID(args[0])
	if err != nil {
		return nil, err
	}
	date, err := recordDate(args[1])
	if err != nil {
		return nil, err
	}
	passengers, err := cast.ToIntE(args[3])
	if err != nil {
		return nil, types.ErrInvalidCount
	}
	tr := types.Transit{
		TransitID:  id,
		Date:       date,
		Airport:    cast.ToString(args[2]),
		Passengers: passengers,
	}
	tr.Normalize()
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return []any{tr.TransitID, tr.Date.Format(types.DateLayout), tr.Airport, tr.Passengers}, nil
}

// checkPassengerRecord validates decoded passengers.jsonl values. Flight
// existence is left to the foreign key.
func checkPassengerRecord(args []any) ([]any, error) {
	id, err := recordID(args[0])
	if err != nil {
		return nil, err
	}
	flightID, err := cast.ToInt64E(args[1])
	if err != nil {
		return nil, types.ErrUnknownFlight
	}
	age, err := cast.ToIntE(args[4])
	if err != nil {
		return nil, types.ErrInvalidAge
	}
	p := types.Passenger{
		PassengerID: id,
		FlightID:    flightID,
		Ticket:      cast.ToString(args[2]),
		Name:        cast.ToString(args[3]),
		Age:         age,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []any{p.PassengerID, p.FlightID, p.Ticket, p.Name, p.Age}, nil
}

func recordID(v any) (int64, error) {
	id, err := cast.ToInt64E(v)
	if err != nil || id <= 0 {
		return 0, types.ErrInvalidID
	}
	return id, nil
}

func recordDate(v any) (time.Time, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return time.Time{}, types.ErrInvalidDate
	}
	return parseStoredDate(s)
}
