// This file provides JSONL read/write helpers with atomic persistence.
package sqlite

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSONL file names inside DataDir, one per table.
const (
	flightsJSONL    = "flights.jsonl"
	transitsJSONL   = "transits.jsonl"
	passengersJSONL = "passengers.jsonl"
)

// readJSONL returns each non-empty, well-formed line of path as a
// json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		records = append(records, json.RawMessage(bytes.Clone(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL replaces path with records, one per line, through a temp file
// that is synced and renamed over the target.
func writeJSONL(path string, records []json.RawMessage) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err = w.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err = w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ensureJSONLFiles creates an empty JSONL file for every table that does not
// have one yet. Existing files are left untouched.
func ensureJSONLFiles(dataDir string) error {
	for _, spec := range tableSpecs {
		path := filepath.Join(dataDir, spec.file)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
		if err != nil {
			return fmt.Errorf("creating %s: %w", spec.file, err)
		}
		f.Close()
	}
	return nil
}

// persistTable dumps every row of spec.table, ordered by primary key, to its
// JSONL file. Column names become JSON keys, which is the shape the loader
// reads back.
func persistTable(q querier, dataDir string, spec tableSpec) error {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(spec.columns, ", "), spec.table, spec.key)
	rows, err := q.Query(query)
	if err != nil {
		return fmt.Errorf("querying %s: %w", spec.table, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	values := make([]any, len(spec.columns))
	ptrs := make([]any, len(spec.columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning %s: %w", spec.table, err)
		}
		obj := make(map[string]any, len(spec.columns))
		for i, col := range spec.columns {
			if raw, ok := values[i].([]byte); ok {
				obj[col] = string(raw)
				continue
			}
			obj[col] = values[i]
		}
		rec, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("encoding %s row: %w", spec.table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s: %w", spec.table, err)
	}
	return writeJSONL(filepath.Join(dataDir, spec.file), records)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}
