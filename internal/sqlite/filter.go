// This file translates types.Filter maps into SQL WHERE clauses.
package sqlite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/mesh-intelligence/tower/pkg/types"
)

// Filter keys shared by every table.
const (
	filterLimit  = "limit"
	filterOffset = "offset"
)

// fieldKind selects how a filter value is coerced.
type fieldKind int

const (
	kindText fieldKind = iota
	kindAirport
	kindInt
	kindDate
	kindContains
)

// filterField describes one accepted filter key.
type filterField struct {
	column string
	op     string
	kind   fieldKind
}

// Accepted filter keys per table.
var (
	flightFilters = map[string]filterField{
		"origin":      {column: "origin", op: "=", kind: kindAirport},
		"destination": {column: "destination", op: "=", kind: kindAirport},
		"status":      {column: "status", op: "=", kind: kindText},
		"date_from":   {column: "date", op: ">=", kind: kindDate},
		"date_to":     {column: "date", op: "<=", kind: kindDate},
	}
	passengerFilters = map[string]filterField{
		"flight_id": {column: "flight_id", op: "=", kind: kindInt},
		"min_age":   {column: "age", op: ">=", kind: kindInt},
		"max_age":   {column: "age", op: "<=", kind: kindInt},
		"name":      {column: "name", op: "LIKE", kind: kindContains},
	}
	transitFilters = map[string]filterField{
		"airport":   {column: "airport", op: "=", kind: kindAirport},
		"date_from": {column: "date", op: ">=", kind: kindDate},
		"date_to":   {column: "date", op: "<=", kind: kindDate},
	}
)

// whereClause is the parsed form of a filter.
type whereClause struct {
	conditions []string
	args       []any
	limit      int
	offset     int
}

// parseFilter validates filter against fields. Keys are processed in sorted
// order so the generated SQL is stable.
func parseFilter(filter types.Filter, fields map[string]filterField) (*whereClause, error) {
	wc := &whereClause{}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := filter[key]
		switch key {
		case filterLimit, filterOffset:
			n, err := cast.ToIntE(raw)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: %s must be a non-negative integer", types.ErrInvalidFilter, key)
			}
			if key == filterLimit {
				wc.limit = n
			} else {
				wc.offset = n
			}
			continue
		}

		field, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
		arg, err := coerceFilterValue(field.kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrInvalidFilter, key, err)
		}
		cond := fmt.Sprintf("%s %s ?", field.column, field.op)
		if field.kind == kindContains {
			cond += ` ESCAPE '\'`
		}
		wc.conditions = append(wc.conditions, cond)
		wc.args = append(wc.args, arg)
	}
	return wc, nil
}

func coerceFilterValue(kind fieldKind, raw any) (any, error) {
	switch kind {
	case kindInt:
		return cast.ToInt64E(raw)
	case kindDate:
		if t, ok := raw.(time.Time); ok {
			return types.TruncateDay(t).Format(types.DateLayout), nil
		}
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		t, err := types.ParseDate(s)
		if err != nil {
			return nil, err
		}
		return t.Format(types.DateLayout), nil
	case kindAirport:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		return types.NormalizeAirport(s), nil
	case kindContains:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		return "%" + escapeLike(s) + "%", nil
	default:
		return cast.ToStringE(raw)
	}
}

// escapeLike escapes LIKE wildcards; queries use ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// build appends the WHERE, ORDER BY, LIMIT and OFFSET clauses to base.
func (wc *whereClause) build(base, orderBy string) string {
	var sb strings.Builder
	sb.WriteString(base)
	if len(wc.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(wc.conditions, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	switch {
	case wc.limit > 0:
		fmt.Fprintf(&sb, " LIMIT %d", wc.limit)
	case wc.offset > 0:
		// SQLite requires LIMIT before OFFSET.
		sb.WriteString(" LIMIT -1")
	}
	if wc.offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", wc.offset)
	}
	return sb.String()
}
