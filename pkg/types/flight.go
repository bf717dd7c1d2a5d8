package types

import (
	"strings"
	"time"
)

// Flight statuses.
const (
	FlightInProgress = "in_progress"
	FlightCompleted  = "completed"
	FlightCancelled  = "cancelled"
)

// FlightStatuses lists the recognized statuses in display order.
var FlightStatuses = []string{FlightInProgress, FlightCompleted, FlightCancelled}

// DateLayout is the calendar-day format used in storage and on the CLI.
const DateLayout = "2006-01-02"

// Flight is a single scheduled or flown leg between two airports.
type Flight struct {
	FlightID    int64     `json:"flight_id"`      // Auto-increment, assigned on creation.
	Date        time.Time `json:"date"`           // Calendar day (UTC midnight).
	Origin      string    `json:"origin"`         // Airport code, upper case.
	Destination string    `json:"destination"`    // Airport code, upper case.
	Passengers  int       `json:"num_passengers"` // Passengers on board.
	Status      string    `json:"status"`         // One of the Flight* statuses.
}

// Normalize upper-cases airport codes, trims whitespace and truncates the
// date to the calendar day.
func (f *Flight) Normalize() {
	f.Origin = NormalizeAirport(f.Origin)
	f.Destination = NormalizeAirport(f.Destination)
	f.Date = TruncateDay(f.Date)
	if f.Status == "" {
		f.Status = FlightInProgress
	}
}

// Validate checks the flight fields. Call Normalize first.
func (f *Flight) Validate() error {
	if f.Date.IsZero() {
		return ErrInvalidDate
	}
	if f.Origin == "" || f.Destination == "" {
		return ErrInvalidAirport
	}
	if f.Passengers < 0 {
		return ErrInvalidCount
	}
	if !ValidFlightStatus(f.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// ValidFlightStatus reports whether s is a recognized status.
func ValidFlightStatus(s string) bool {
	for _, st := range FlightStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// NormalizeAirport trims and upper-cases an airport code.
func NormalizeAirport(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// TruncateDay returns t at UTC midnight of its calendar day.
func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a DateLayout string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
