package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tower/pkg/types"
)

func TestFlightsSet(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		wantErr error
	}{
		{"wrong type", &types.Transit{}, types.ErrInvalidData},
		{"nil flight", (*types.Flight)(nil), types.ErrInvalidData},
		{"missing date", &types.Flight{Origin: "MEX", Destination: "BOG"}, types.ErrInvalidDate},
		{"missing origin", &types.Flight{Date: day(2026, 1, 1), Destination: "BOG"}, types.ErrInvalidAirport},
		{"negative passengers", &types.Flight{Date: day(2026, 1, 1), Origin: "MEX", Destination: "BOG", Passengers: -1}, types.ErrInvalidCount},
		{"bad status", &types.Flight{Date: day(2026, 1, 1), Origin: "MEX", Destination: "BOG", Status: "boarding"}, types.ErrInvalidStatus},
	}
	b := setupBackend(t)
	flights := table(t, b, types.TableFlights)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := flights.Set(0, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFlightsCreateAndUpdate(t *testing.T) {
	b := setupBackend(t)
	flights := table(t, b, types.TableFlights)

	f := &types.Flight{Date: day(2026, 10, 5), Origin: " mex ", Destination: "jfk", Passengers: 210}
	id, err := flights.Set(0, f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, f.FlightID)

	f.Status = types.FlightCancelled
	f.Passengers = 0
	updated, err := flights.Set(id, f)
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	got, err := flights.Get(id)
	require.NoError(t, err)
	assert.Equal(t, &types.Flight{
		FlightID: id, Date: day(2026, 10, 5), Origin: "MEX", Destination: "JFK",
		Passengers: 0, Status: types.FlightCancelled,
	}, got)

	all, err := flights.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFlightsGetErrors(t *testing.T) {
	flights := table(t, setupBackend(t), types.TableFlights)
	_, err := flights.Get(0)
	assert.ErrorIs(t, err, types.ErrInvalidID)
	_, err = flights.Get(12)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFlightsDeleteCascadesToPassengers(t *testing.T) {
	b := setupBackend(t)
	kept := addFlight(t, b, day(2026, 10, 1), "MEX", "BOG")
	gone := addFlight(t, b, day(2026, 10, 2), "BOG", "MEX")
	passengers := table(t, b, types.TablePassengers)
	for _, fid := range []int64{kept, gone, gone} {
		_, err := passengers.Set(0, &types.Passenger{FlightID: fid, Name: "Pablo Hernández", Age: 51})
		require.NoError(t, err)
	}

	require.NoError(t, table(t, b, types.TableFlights).Delete(gone))

	rest, err := passengers.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, kept, rest[0].(*types.Passenger).FlightID)

	err = table(t, b, types.TableFlights).Delete(gone)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFlightsFetch(t *testing.T) {
	b := setupBackend(t)
	flights := table(t, b, types.TableFlights)
	seed := []types.Flight{
		{Date: day(2026, 10, 1), Origin: "MEX", Destination: "BOG", Status: types.FlightCompleted},
		{Date: day(2026, 10, 3), Origin: "MEX", Destination: "MAD", Status: types.FlightCancelled},
		{Date: day(2026, 10, 2), Origin: "LIM", Destination: "MEX", Status: types.FlightCompleted},
		{Date: day(2026, 10, 3), Origin: "GRU", Destination: "MEX", Status: types.FlightInProgress},
	}
	for i := range seed {
		_, err := flights.Set(0, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filter  types.Filter
		wantIDs []int64
	}{
		{"all newest first", nil, []int64{4, 2, 3, 1}},
		{"origin case-insensitive", types.Filter{"origin": "mex"}, []int64{2, 1}},
		{"destination", types.Filter{"destination": "MEX"}, []int64{4, 3}},
		{"status", types.Filter{"status": types.FlightCompleted}, []int64{3, 1}},
		{"date range strings", types.Filter{"date_from": "2026-10-02", "date_to": "2026-10-02"}, []int64{3}},
		{"date from time", types.Filter{"date_from": day(2026, 10, 3)}, []int64{4, 2}},
		{"limit", types.Filter{"limit": 2}, []int64{4, 2}},
		{"limit string and offset", types.Filter{"limit": "2", "offset": "1"}, []int64{2, 3}},
		{"offset only", types.Filter{"offset": 3}, []int64{1}},
		{"no match", types.Filter{"origin": "CDG"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := flights.Fetch(tt.filter)
			require.NoError(t, err)
			var ids []int64
			for _, r := range rows {
				ids = append(ids, r.(*types.Flight).FlightID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFlightsFetchInvalidFilter(t *testing.T) {
	flights := table(t, setupBackend(t), types.TableFlights)
	for _, filter := range []types.Filter{
		{"airport": "MEX"},
		{"date_from": "yesterday"},
		{"limit": "many"},
		{"offset": -1},
	} {
		_, err := flights.Fetch(filter)
		assert.ErrorIs(t, err, types.ErrInvalidFilter, "%v", filter)
	}
}
