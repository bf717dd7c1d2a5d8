package types

import "time"

// Transit records how many passengers passed through an airport on a day.
type Transit struct {
	TransitID  int64     `json:"transit_id"`     // Auto-increment, assigned on creation.
	Date       time.Time `json:"date"`           // Calendar day (UTC midnight).
	Airport    string    `json:"airport"`        // Airport code, upper case.
	Passengers int       `json:"num_passengers"` // Passengers in transit.
}

// Normalize upper-cases the airport code and truncates the date.
func (tr *Transit) Normalize() {
	tr.Airport = NormalizeAirport(tr.Airport)
	tr.Date = TruncateDay(tr.Date)
}

// Validate checks the transit fields. Call Normalize first.
func (tr *Transit) Validate() error {
	if tr.Date.IsZero() {
		return ErrInvalidDate
	}
	if tr.Airport == "" {
		return ErrInvalidAirport
	}
	if tr.Passengers < 0 {
		return ErrInvalidCount
	}
	return nil
}
