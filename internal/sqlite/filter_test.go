package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tower/pkg/types"
)

func TestParseFilterBuildsStableSQL(t *testing.T) {
	wc, err := parseFilter(types.Filter{
		"status":    "completed",
		"origin":    " mex",
		"date_from": "2026-10-01",
		"limit":     "5",
	}, flightFilters)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT x FROM flights WHERE date >= ? AND origin = ? AND status = ? ORDER BY date DESC LIMIT 5",
		wc.build("SELECT x FROM flights", "date DESC"))
	assert.Equal(t, []any{"2026-10-01", "MEX", "completed"}, wc.args)
}

func TestParseFilterContains(t *testing.T) {
	wc, err := parseFilter(types.Filter{"name": "50%"}, passengerFilters)
	require.NoError(t, err)
	assert.Equal(t, []string{`name LIKE ? ESCAPE '\'`}, wc.conditions)
	assert.Equal(t, []any{`%50\%%`}, wc.args)
}

func TestParseFilterErrors(t *testing.T) {
	tests := []struct {
		name   string
		filter types.Filter
	}{
		{"unknown key", types.Filter{"gate": "A1"}},
		{"negative limit", types.Filter{"limit": -2}},
		{"non numeric id", types.Filter{"flight_id": "abc"}},
		{"slice value", types.Filter{"name": []string{"a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFilter(tt.filter, passengerFilters)
			assert.ErrorIs(t, err, types.ErrInvalidFilter)
		})
	}
}

func TestWhereClauseOffsetWithoutLimit(t *testing.T) {
	wc := &whereClause{offset: 10}
	assert.Equal(t, "SELECT 1 ORDER BY id LIMIT -1 OFFSET 10", wc.build("SELECT 1", "id"))
}
