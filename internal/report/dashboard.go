package report

import (
	"fmt"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Source supplies the aggregates a dashboard is built from.
// *sqlite.Backend implements it.
type Source interface {
	Totals() (types.Totals, error)
	FlightsBy(dimension string) ([]types.Count, error)
	FlightsPerDay() ([]types.Count, error)
	FlightsPerMonth() ([]types.Count, error)
	TransitByAirport() ([]types.Count, error)
}

// Dashboard is the summary view: headline totals and per-airport counts.
type Dashboard struct {
	Totals           types.Totals  `json:"totals"`
	ByOrigin         []types.Count `json:"flights_by_origin"`
	ByDestination    []types.Count `json:"flights_by_destination"`
	ByStatus         []types.Count `json:"flights_by_status"`
	TransitByAirport []types.Count `json:"transit_by_airport"`
}

// BuildDashboard collects the dashboard aggregates from src.
func BuildDashboard(src Source) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.Totals, err = src.Totals(); err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}
	if d.ByOrigin, err = src.FlightsBy(types.DimensionOrigin); err != nil {
		return nil, fmt.Errorf("flights by origin: %w", err)
	}
	if d.ByDestination, err = src.FlightsBy(types.DimensionDestination); err != nil {
		return nil, fmt.Errorf("flights by destination: %w", err)
	}
	if d.ByStatus, err = src.FlightsBy(types.DimensionStatus); err != nil {
		return nil, fmt.Errorf("flights by status: %w", err)
	}
	if d.TransitByAirport, err = src.TransitByAirport(); err != nil {
		return nil, fmt.Errorf("transit by airport: %w", err)
	}
	return &d, nil
}

// History holds flight counts over time.
type History struct {
	Daily   []types.Count `json:"daily"`
	Monthly []types.Count `json:"monthly"`
}

// BuildHistory collects daily and monthly flight counts from src.
func BuildHistory(src Source) (*History, error) {
	daily, err := src.FlightsPerDay()
	if err != nil {
		return nil, fmt.Errorf("flights per day: %w", err)
	}
	monthly, err := src.FlightsPerMonth()
	if err != nil {
		return nil, fmt.Errorf("flights per month: %w", err)
	}
	return &History{Daily: daily, Monthly: monthly}, nil
}
