package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitNormalizeAndValidate(t *testing.T) {
	tr := &Transit{
		Date:       time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
		Airport:    "pty",
		Passengers: 450,
	}
	tr.Normalize()
	assert.Equal(t, "PTY", tr.Airport)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), tr.Date)
	assert.NoError(t, tr.Validate())

	tr.Passengers = -3
	assert.ErrorIs(t, tr.Validate(), ErrInvalidCount)

	tr.Passengers = 3
	tr.Airport = ""
	assert.ErrorIs(t, tr.Validate(), ErrInvalidAirport)

	tr.Airport = "LIM"
	tr.Date = time.Time{}
	assert.ErrorIs(t, tr.Validate(), ErrInvalidDate)
}
