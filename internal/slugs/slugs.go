// Package slugs normalizes user-entered tag names.
//
// Tags are stored space-separated, so a tag can never contain whitespace, and
// the query language reserves a handful of characters ("|", quotes, parens).
// Slugifying on entry keeps every stored tag queryable as a plain literal.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Tag converts a user-entered tag name to its stored form: lowercase,
// ASCII, with whitespace and punctuation collapsed to dashes. Returns ""
// for input with no usable characters.
func Tag(name string) string {
	slugged := goslug.Make(name)
	if slugged == "" {
		return strings.ToLower(strings.Join(strings.Fields(name), "-"))
	}
	return slugged
}

// Tags normalizes a list of tag names, dropping any that come out empty.
func Tags(names []string) []string {
	var out []string
	for _, name := range names {
		if t := Tag(name); t != "" {
			out = append(out, t)
		}
	}
	return out
}
