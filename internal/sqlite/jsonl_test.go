package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tower/pkg/types"
)

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jsonl")
	content := `{"a":1}

not json
  {"b":2}  
{"c":
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"a":1}`, string(records[0]))
	assert.JSONEq(t, `{"b":2}`, string(records[1]))
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	records := []json.RawMessage{json.RawMessage(`{"a":1}`), json.RawMessage(`{"a":2}`)}
	require.NoError(t, writeJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n{\"a\":2}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestMutationsRewriteJSONL(t *testing.T) {
	b := setupBackend(t)
	id := addFlight(t, b, day(2026, 9, 30), "bog", "jfk")

	data, err := os.ReadFile(filepath.Join(b.DataDir(), flightsJSONL))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.JSONEq(t,
		`{"flight_id":1,"date":"2026-09-30","origin":"BOG","destination":"JFK","num_passengers":100,"status":"completed"}`,
		lines[0])

	require.NoError(t, table(t, b, types.TableFlights).Delete(id))
	data, err = os.ReadFile(filepath.Join(b.DataDir(), flightsJSONL))
	require.NoError(t, err)
	assert.Empty(t, data)
}
