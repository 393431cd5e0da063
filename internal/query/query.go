package query

import "strings"

// ToSQL parses, compiles, and renders a search query in one step.
//
// A blank query returns "true" so callers can splice the result into a WHERE
// clause unconditionally.
func ToSQL(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "true", nil
	}
	expr, err := Parse(input)
	if err != nil {
		return "", err
	}
	clause, err := Compile(expr)
	if err != nil {
		return "", err
	}
	return SQL(clause), nil
}
