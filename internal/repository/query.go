package repository

import (
	"fmt"
	"strings"
)

// appendTypeFilter appends an "event_type IN (...)" predicate for the given
// types, one positional placeholder per type in supplied order. Placeholders
// and bound values are appended together so the placeholder count always
// equals the number of appended args. Empty types leaves the query untouched
// (matches all types).
func appendTypeFilter(query string, args []interface{}, types []string) (string, []interface{}) {
	if len(types) == 0 {
		return query, args
	}

	placeholders := make([]string, 0, len(types))
	for _, t := range types {
		args = append(args, t)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query += fmt.Sprintf(" AND event_type IN (%s)", strings.Join(placeholders, ", "))
	return query, args
}
