package query

import "fmt"

// SyntaxError reports input that could not be parsed at all.
type SyntaxError struct {
	Offset    int    // byte offset where parsing failed
	Remaining string // unparsed input from the failure point
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %q", e.Offset, e.Remaining)
}

// IncompleteParseError reports input with a valid prefix followed by
// trailing text the grammar cannot consume, typically an unbalanced ")".
// Partial holds the expression parsed from the prefix.
type IncompleteParseError struct {
	Remainder string
	Partial   Expr
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("unexpected trailing input: %q", e.Remainder)
}

// UnknownKeyError reports a key:value filter whose key is not recognized.
// It is produced during compilation, not parsing: the parser treats an
// unknown key as part of a plain tag.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown filter key %q", e.Key)
}
