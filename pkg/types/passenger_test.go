package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassengerValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Passenger
		wantErr error
	}{
		{name: "valid", p: Passenger{FlightID: 1, Name: "Ana López", Age: 34}},
		{name: "newborn", p: Passenger{FlightID: 1, Name: "Bebé", Age: 0}},
		{name: "upper bound", p: Passenger{FlightID: 1, Name: "Elena", Age: MaxPassengerAge}},
		{name: "blank name", p: Passenger{FlightID: 1, Name: "  ", Age: 20}, wantErr: ErrInvalidName},
		{name: "negative age", p: Passenger{FlightID: 1, Name: "Luis", Age: -1}, wantErr: ErrInvalidAge},
		{name: "age too high", p: Passenger{FlightID: 1, Name: "Luis", Age: 101}, wantErr: ErrInvalidAge},
		{name: "no flight", p: Passenger{Name: "Luis", Age: 30}, wantErr: ErrUnknownFlight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
