package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tower/pkg/sqlite"
	"github.com/mesh-intelligence/tower/pkg/types"
)

func TestNewBackendRoundTrip(t *testing.T) {
	store := sqlite.NewBackend(nil)
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer store.Detach()

	flights, err := store.GetTable(types.TableFlights)
	require.NoError(t, err)

	id, err := flights.Set(0, &types.Flight{
		Date:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Origin:      "mex",
		Destination: "bog",
		Passengers:  120,
	})
	require.NoError(t, err)

	got, err := flights.Get(id)
	require.NoError(t, err)
	flight := got.(*types.Flight)
	assert.Equal(t, "MEX", flight.Origin)
	assert.Equal(t, types.FlightInProgress, flight.Status)
}
