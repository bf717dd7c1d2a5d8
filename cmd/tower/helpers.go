// Shared helpers for tower CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/internal/catalog"
	"github.com/mesh-intelligence/tower/internal/report"
	"github.com/mesh-intelligence/tower/internal/sqlite"
	"github.com/mesh-intelligence/tower/pkg/types"
)

// validTableNamesStr lists the table names for error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// nowFunc supplies the current time; tests replace it.
var nowFunc = time.Now

// cliError attaches an exit code to an error.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error { return &cliError{code: exitUserError, err: err} }
func sysError(err error) error  { return &cliError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
// Errors without a code come from cobra (bad flags, unknown commands) and
// count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// userCaused lists store errors that stem from bad input.
var userCaused = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrInvalidData,
	types.ErrInvalidFilter,
	types.ErrInvalidDate,
	types.ErrInvalidAirport,
	types.ErrInvalidCount,
	types.ErrInvalidStatus,
	types.ErrInvalidName,
	types.ErrInvalidAge,
	types.ErrUnknownFlight,
	types.ErrTableNotFound,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
}

// storeError wraps err with context and classifies it as a user or system
// error.
func storeError(context string, err error) error {
	wrapped := fmt.Errorf("%s: %w", context, err)
	for _, target := range userCaused {
		if errors.Is(err, target) {
			return userError(wrapped)
		}
	}
	return sysError(wrapped)
}

// attachBackend resolves the data directory and attaches a SQLite backend.
// The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	backendName := types.BackendSQLite
	if config != nil {
		backendName = config.GetString(cfgKeyBackend)
	}

	backend := sqlite.NewBackend(newLogger())
	if err := backend.Attach(types.Config{Backend: backendName, DataDir: dataDir}); err != nil {
		return nil, storeError("attach backend", err)
	}
	return backend, nil
}

// getTable returns the named table, reporting unknown names as user errors.
func getTable(backend *sqlite.Backend, name string) (types.Table, error) {
	table, err := backend.GetTable(name)
	if errors.Is(err, types.ErrTableNotFound) {
		return nil, userError(fmt.Errorf("unknown table %q (valid: %s)", name, validTableNamesStr))
	}
	if err != nil {
		return nil, sysError(fmt.Errorf("get table: %w", err))
	}
	return table, nil
}

// newClassifier builds the age classifier from the configured brackets.
func newClassifier() (*report.AgeClassifier, error) {
	cat, err := catalog.Load(config)
	if err != nil {
		return nil, userError(fmt.Errorf("age brackets: %w", err))
	}
	c, err := report.NewAgeClassifier(cat, newLogger())
	if err != nil {
		return nil, sysError(err)
	}
	return c, nil
}

// parseID parses a positive decimal entity ID.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, userError(fmt.Errorf("invalid id %q", s))
	}
	return id, nil
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return types.TruncateDay(nowFunc().UTC()), nil
	}
	t, err := types.ParseDate(s)
	if err != nil {
		return time.Time{}, userError(fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s))
	}
	return t, nil
}

// parseFilterArgs turns key=value arguments into a filter. Values stay
// strings; the backend coerces them.
func parseFilterArgs(args []string) (types.Filter, error) {
	filter := types.Filter{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, userError(fmt.Errorf("invalid filter %q (expected key=value)", arg))
		}
		filter[key] = value
	}
	return filter, nil
}

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printTable writes an aligned table with a dashed rule under the header.
// Trailing padding is trimmed from every line.
func printTable(cmd *cobra.Command, header []string, rows [][]string) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	out := cmd.OutOrStdout()
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}

// printCounts prints key/count buckets under a title.
func printCounts(cmd *cobra.Command, title, keyHeader string, counts []types.Count) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", title)
	if len(counts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "  (no data)")
		return
	}
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Key, strconv.Itoa(c.Count)}
	}
	printTable(cmd, []string{keyHeader, "COUNT"}, rows)
}
