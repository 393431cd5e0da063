// Package sqlutil provides small helpers shared by the repository layer and
// the query compiler: escaping for FTS5 string literals and LIKE patterns,
// plus generic scanning utilities for database/sql.
package sqlutil

import (
	"database/sql"
	"strings"
)

// EscapeFTSString escapes text for embedding inside a double-quoted FTS5
// string. Both quote characters are doubled since the surrounding quote
// style is chosen by the caller.
func EscapeFTSString(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\'':
			b.WriteString("''")
		case '"':
			b.WriteString(`""`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeLikePattern escapes text for use inside a LIKE pattern with the
// given ESCAPE character. The wildcards % and _ and the escape character
// itself are prefixed with escapeChar; single quotes are doubled so the
// result can be spliced into a single-quoted SQL literal.
func EscapeLikePattern(text string, escapeChar rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '%', '_', escapeChar:
			b.WriteRune(escapeChar)
			b.WriteRune(r)
		case '\'':
			b.WriteString("''")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InClauseArgs returns a comma-separated list of "?" placeholders and the
// corresponding args slice.
//
// If items is empty, it returns "NULL" and no args, so `IN (NULL)` matches nothing.
func InClauseArgs[T any](items []T) (placeholders string, args []any) {
	if len(items) == 0 {
		return "NULL", nil
	}
	ph := make([]string, len(items))
	args = make([]any, len(items))
	for i, item := range items {
		ph[i] = "?"
		args[i] = item
	}
	return strings.Join(ph, ", "), args
}

// ScanRows scans all rows into a slice using the provided scanner.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ScanColumn scans all rows of a single-column result into a slice.
func ScanColumn[T any](rows *sql.Rows) ([]T, error) {
	return ScanRows(rows, func(rows *sql.Rows) (T, error) {
		var v T
		err := rows.Scan(&v)
		return v, err
	})
}
