// This file implements the aggregate queries behind the dashboard.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Totals returns the number of flights, the number of passengers and the
// summed transit passengers.
func (b *Backend) Totals() (types.Totals, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return types.Totals{}, err
	}

	var totals types.Totals
	err := b.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM flights),
		(SELECT COUNT(*) FROM passengers),
		(SELECT COALESCE(SUM(num_passengers), 0) FROM transits)`,
	).Scan(&totals.Flights, &totals.Passengers, &totals.TransitPassengers)
	if err != nil {
		return types.Totals{}, fmt.Errorf("computing totals: %w", err)
	}
	return totals, nil
}

// dimensionColumns maps grouping dimensions to flight columns.
var dimensionColumns = map[string]string{
	types.DimensionOrigin:      "origin",
	types.DimensionDestination: "destination",
	types.DimensionStatus:      "status",
}

// FlightsBy counts flights grouped by dimension (origin, destination or
// status), ordered by key.
func (b *Backend) FlightsBy(dimension string) ([]types.Count, error) {
	column, ok := dimensionColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("%w: unknown dimension %q", types.ErrInvalidFilter, dimension)
	}
	return b.groupCounts(fmt.Sprintf(
		"SELECT %[1]s, COUNT(*) FROM flights GROUP BY %[1]s ORDER BY %[1]s", column))
}

// FlightsPerDay counts flights per calendar day in chronological order.
func (b *Backend) FlightsPerDay() ([]types.Count, error) {
	return b.groupCounts("SELECT date, COUNT(*) FROM flights GROUP BY date ORDER BY date")
}

// FlightsPerMonth counts flights per YYYY-MM month in chronological order.
func (b *Backend) FlightsPerMonth() ([]types.Count, error) {
	return b.groupCounts(`SELECT substr(date, 1, 7) AS month, COUNT(*) FROM flights
		GROUP BY month ORDER BY month`)
}

// TransitByAirport sums transit passengers per airport, ordered by airport.
func (b *Backend) TransitByAirport() ([]types.Count, error) {
	return b.groupCounts(`SELECT airport, SUM(num_passengers) FROM transits
		GROUP BY airport ORDER BY airport`)
}

// groupCounts runs a two-column (key, count) query.
func (b *Backend) groupCounts(query string) ([]types.Count, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("aggregating: %w", err)
	}
	defer rows.Close()

	counts := []types.Count{}
	for rows.Next() {
		var c types.Count
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning aggregate: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aggregate: %w", err)
	}
	return counts, nil
}
