package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tower/pkg/types"
)

func TestLoadJSONL(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		table    string
		wantRows int
	}{
		{
			name: "flights with unknown fields load",
			files: map[string]string{
				flightsJSONL: `{"flight_id":7,"date":"2026-10-01","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed","gate":"A4"}` + "\n",
			},
			table:    types.TableFlights,
			wantRows: 1,
		},
		{
			name: "malformed and incomplete records are skipped",
			files: map[string]string{
				transitsJSONL: `{"transit_id":1,"date":"2026-10-01","airport":"PTY","num_passengers":300}
{"transit_id":2,"date":"2026-10-02"}
garbage
{"transit_id":3,"date":"2026-10-03","airport":"SCL","num_passengers":120}
`,
			},
			table:    types.TableTransits,
			wantRows: 2,
		},
		{
			name: "flights failing validation are skipped",
			files: map[string]string{
				flightsJSONL: `{"flight_id":1,"date":"2026-10-01","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}
{"flight_id":2,"date":"not-a-date","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}
{"flight_id":3,"date":"2026-10-02","origin":"BOG","destination":"MEX","num_passengers":-7,"status":"completed"}
{"flight_id":4,"date":"2026-10-03","origin":"BOG","destination":"MEX","num_passengers":90,"status":"bogus"}
{"flight_id":5,"date":"2026-10-04","origin":"lim","destination":"bog","num_passengers":"60","status":"cancelled"}
`,
			},
			table:    types.TableFlights,
			wantRows: 2,
		},
		{
			name: "transits and passengers failing validation are skipped",
			files: map[string]string{
				flightsJSONL: `{"flight_id":1,"date":"2026-10-01","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}` + "\n",
				transitsJSONL: `{"transit_id":1,"date":"2026-13-40","airport":"PTY","num_passengers":300}
{"transit_id":2,"date":"2026-10-02","airport":"","num_passengers":120}
`,
				passengersJSONL: `{"passenger_id":1,"flight_id":1,"ticket":"TCK-10001","name":"Juan Pérez","age":140}
{"passenger_id":2,"flight_id":1,"ticket":"TCK-10002","name":"  ","age":22}
{"passenger_id":3,"flight_id":1,"ticket":"TCK-10003","name":"Laura García","age":22}
`,
			},
			table:    types.TablePassengers,
			wantRows: 1,
		},
		{
			name: "passengers of missing flights are skipped",
			files: map[string]string{
				flightsJSONL: `{"flight_id":1,"date":"2026-10-01","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}` + "\n",
				passengersJSONL: `{"passenger_id":1,"flight_id":1,"ticket":"TCK-10001","name":"Juan Pérez","age":40}
{"passenger_id":2,"flight_id":99,"ticket":"TCK-10002","name":"Laura García","age":22}
`,
			},
			table:    types.TablePassengers,
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
			}

			b := NewBackend(nil)
			require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
			defer b.Detach()

			rows, err := table(t, b, tt.table).Fetch(nil)
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestLoadJSONLKeepsIDs(t *testing.T) {
	dir := t.TempDir()
	content := `{"flight_id":42,"date":"2026-10-01","origin":"GRU","destination":"SCL","num_passengers":150,"status":"cancelled"}` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, flightsJSONL), []byte(content), 0o644))

	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	got, err := table(t, b, types.TableFlights).Get(42)
	require.NoError(t, err)
	f := got.(*types.Flight)
	assert.Equal(t, "GRU", f.Origin)
	assert.Equal(t, types.FlightCancelled, f.Status)
	assert.Equal(t, day(2026, 10, 1), f.Date)

	assert.Equal(t, int64(43), addFlight(t, b, day(2026, 10, 2), "SCL", "GRU"))
}

func TestLoadJSONLInvalidRowsDoNotBreakQueries(t *testing.T) {
	dir := t.TempDir()
	content := `{"flight_id":1,"date":"2026-10-01","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}
{"flight_id":2,"date":"not-a-date","origin":"MEX","destination":"LIM","num_passengers":80,"status":"completed"}
{"flight_id":3,"date":"2026-10-02","origin":"BOG","destination":"MEX","num_passengers":-7,"status":"bogus"}
{"flight_id":4,"date":"2026-10-03T15:04:05Z","origin":" gru ","destination":"scl","num_passengers":150,"status":"in_progress"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, flightsJSONL), []byte(content), 0o644))

	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	flights := table(t, b, types.TableFlights)
	rows, err := flights.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(4), rows[0].(*types.Flight).FlightID)
	assert.Equal(t, int64(1), rows[1].(*types.Flight).FlightID)

	_, err = flights.Get(3)
	assert.ErrorIs(t, err, types.ErrNotFound)

	got, err := flights.Get(4)
	require.NoError(t, err)
	f := got.(*types.Flight)
	assert.Equal(t, "GRU", f.Origin)
	assert.Equal(t, day(2026, 10, 3), f.Date)
}

func TestCheckFlightRecord(t *testing.T) {
	args, err := checkFlightRecord([]any{int64(9), "2026-10-05", "mex", "lim", int64(12), "completed"})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(9), "2026-10-05", "MEX", "LIM", 12, "completed"}, args)

	_, err = checkFlightRecord([]any{int64(9), "2026-10-05", "mex", "lim", int64(12), "bogus"})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
	_, err = checkFlightRecord([]any{int64(0), "2026-10-05", "mex", "lim", int64(12), "completed"})
	assert.ErrorIs(t, err, types.ErrInvalidID)
	_, err = checkFlightRecord([]any{int64(9), "yesterday", "mex", "lim", int64(12), "completed"})
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestDecodeRecord(t *testing.T) {
	args, ok := decodeRecord([]byte(`{"a":3,"b":"x","c":1.5}`), []string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, []any{int64(3), "x", 1.5}, args)

	_, ok = decodeRecord([]byte(`{"a":3}`), []string{"a", "b"})
	assert.False(t, ok)
	_, ok = decodeRecord([]byte(`[1,2]`), []string{"a"})
	assert.False(t, ok)
	_, ok = decodeRecord([]byte(`{"a":null}`), []string{"a"})
	assert.False(t, ok)
}
