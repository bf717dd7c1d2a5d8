// This file implements the sample data generator used by `tower seed`.
package sqlite

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sgostarter/i/l"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Sample data sizes and ranges.
const (
	seedFlights    = 100
	seedTransits   = 40
	seedPassengers = 100
	seedDays       = 30

	seedMinFlightPassengers  = 50
	seedMaxFlightPassengers  = 300
	seedMinTransitPassengers = 100
	seedMaxTransitPassengers = 1000
	seedMinAge               = 18
	seedMaxAge               = 70
	seedMinTicket            = 10000
	seedMaxTicket            = 99999
)

var (
	sampleAirports   = []string{"MEX", "BOG", "JFK", "LAX", "MAD", "CDG", "GRU", "SCL", "LIM", "PTY"}
	sampleFirstNames = []string{
		"Juan", "María", "Carlos", "Ana", "Luis", "Fernanda", "Jorge", "Sofía", "Andrés", "Elena",
		"Roberto", "Valeria", "Pedro", "Camila", "Ricardo", "Daniela", "Pablo", "Laura", "Miguel", "Isabel",
	}
	sampleSurnames = []string{"García", "Pérez", "López", "Martínez", "Hernández"}
)

// SeedReport counts the rows created by SeedSampleData.
type SeedReport struct {
	Flights    int `json:"flights"`
	Transits   int `json:"transits"`
	Passengers int `json:"passengers"`
}

// SeedSampleData fills every empty table with random sample rows drawn from
// rng. Flights and transits fall within the seedDays days ending on today.
// Tables that already hold rows are left alone; passengers are only created
// when at least one flight exists.
func (b *Backend) SeedSampleData(rng *rand.Rand, today time.Time) (SeedReport, error) {
	var report SeedReport
	if rng == nil {
		return report, fmt.Errorf("seed: nil random source")
	}
	today = types.TruncateDay(today)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkAttached(); err != nil {
		return report, err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return report, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	empty := func(table string) (bool, error) {
		var n int
		if err := tx.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return false, fmt.Errorf("counting %s: %w", table, err)
		}
		return n == 0, nil
	}
	randomDay := func() string {
		return today.AddDate(0, 0, -rng.Intn(seedDays)).Format(types.DateLayout)
	}
	between := func(lo, hi int) int {
		return lo + rng.Intn(hi-lo+1)
	}

	if ok, err := empty(types.TableFlights); err != nil {
		return report, err
	} else if ok {
		for i := 0; i < seedFlights; i++ {
			o := rng.Intn(len(sampleAirports))
			d := rng.Intn(len(sampleAirports) - 1)
			if d >= o {
				d++
			}
			_, err := tx.Exec(
				"INSERT INTO flights (date, origin, destination, num_passengers, status) VALUES (?, ?, ?, ?, ?)",
				randomDay(), sampleAirports[o], sampleAirports[d],
				between(seedMinFlightPassengers, seedMaxFlightPassengers),
				types.FlightStatuses[rng.Intn(len(types.FlightStatuses))],
			)
			if err != nil {
				return report, fmt.Errorf("seeding flight: %w", err)
			}
		}
		report.Flights = seedFlights
	}

	if ok, err := empty(types.TableTransits); err != nil {
		return report, err
	} else if ok {
		for i := 0; i < seedTransits; i++ {
			_, err := tx.Exec(
				"INSERT INTO transits (date, airport, num_passengers) VALUES (?, ?, ?)",
				randomDay(), sampleAirports[rng.Intn(len(sampleAirports))],
				between(seedMinTransitPassengers, seedMaxTransitPassengers),
			)
			if err != nil {
				return report, fmt.Errorf("seeding transit: %w", err)
			}
		}
		report.Transits = seedTransits
	}

	if ok, err := empty(types.TablePassengers); err != nil {
		return report, err
	} else if ok {
		flightIDs, err := seedFlightIDs(tx)
		if err != nil {
			return report, err
		}
		if len(flightIDs) > 0 {
			for i := 0; i < seedPassengers; i++ {
				name := sampleFirstNames[rng.Intn(len(sampleFirstNames))] + " " +
					sampleSurnames[rng.Intn(len(sampleSurnames))]
				_, err := tx.Exec(
					"INSERT INTO passengers (flight_id, ticket, name, age) VALUES (?, ?, ?, ?)",
					flightIDs[rng.Intn(len(flightIDs))],
					fmt.Sprintf("TCK-%05d", between(seedMinTicket, seedMaxTicket)),
					name,
					between(seedMinAge, seedMaxAge),
				)
				if err != nil {
					return report, fmt.Errorf("seeding passenger: %w", err)
				}
			}
			report.Passengers = seedPassengers
		}
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("committing seed transaction: %w", err)
	}

	for _, spec := range tableSpecs {
		if err := persistTable(b.db, b.config.DataDir, spec); err != nil {
			return report, fmt.Errorf("persisting %s: %w", spec.file, err)
		}
	}

	b.logger.WithFields(
		l.IntField("flights", report.Flights),
		l.IntField("transits", report.Transits),
		l.IntField("passengers", report.Passengers),
	).Info("seeded sample data")
	return report, nil
}

func seedFlightIDs(q querier) ([]int64, error) {
	rows, err := q.Query("SELECT flight_id FROM flights ORDER BY flight_id")
	if err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning flight id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
