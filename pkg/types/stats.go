package types

// Count is one bucket of a grouped aggregate (airport, status, day, month).
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Totals summarises the three tables for the dashboard header.
type Totals struct {
	Flights           int `json:"flights"`
	Passengers        int `json:"passengers"`
	TransitPassengers int `json:"transit_passengers"`
}

// Flight grouping dimensions accepted by aggregate queries.
const (
	DimensionOrigin      = "origin"
	DimensionDestination = "destination"
	DimensionStatus      = "status"
)
