package types

import "strings"

// Passenger age bounds accepted by Validate.
const (
	MinPassengerAge = 0
	MaxPassengerAge = 100
)

// Passenger is a ticketed traveller assigned to a flight.
type Passenger struct {
	PassengerID int64  `json:"passenger_id"` // Auto-increment, assigned on creation.
	FlightID    int64  `json:"flight_id"`    // Must reference an existing flight.
	Ticket      string `json:"ticket"`       // Issued on creation when empty.
	Name        string `json:"name"`         // Full name (required).
	Age         int    `json:"age"`          // Years, MinPassengerAge..MaxPassengerAge.
}

// Validate checks the passenger fields. Flight existence is checked by the
// backend.
func (p *Passenger) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if p.Age < MinPassengerAge || p.Age > MaxPassengerAge {
		return ErrInvalidAge
	}
	if p.FlightID <= 0 {
		return ErrUnknownFlight
	}
	return nil
}
