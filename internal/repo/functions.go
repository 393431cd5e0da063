package repo

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"

	"modernc.org/sqlite"
)

// The repository registers a few SQL functions so tag edits and path
/// filters run inside SQLite instead of round-tripping every row:
//
//	validate_tags(tags)         normalize a raw tag string
//	insert_tags(tags, t, ...)   add tags, keeping the list sorted and unique
//	remove_tags(tags, t, ...)   drop tags if present
//	dirname(path)               parent folder of a path ("" at the root)
//	extname(path)               file extension without the dot
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("validate_tags", 1, sqlValidateTags)
	sqlite.MustRegisterDeterministicScalarFunction("insert_tags", -1, sqlInsertTags)
	sqlite.MustRegisterDeterministicScalarFunction("remove_tags", -1, sqlRemoveTags)
	sqlite.MustRegisterDeterministicScalarFunction("dirname", 1, sqlDirname)
	sqlite.MustRegisterDeterministicScalarFunction("extname", 1, sqlExtname)
}

func argString(args []driver.Value, i int) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected text, got %T", i, args[i])
	}
	return s, nil
}

func sqlValidateTags(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	raw, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return strings.Join(ParseTags(raw), " "), nil
}

func sqlInsertTags(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("insert_tags: at least 2 arguments must be given")
	}
	raw, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	tags := ParseTags(raw)
	for i := 1; i < len(args); i++ {
		tag, err := argString(args, i)
		if err != nil {
			return nil, err
		}
		if tag == "" {
			continue
		}
		pos := sort.SearchStrings(tags, tag)
		if pos < len(tags) && tags[pos] == tag {
			continue
		}
		tags = append(tags, "")
		copy(tags[pos+1:], tags[pos:])
		tags[pos] = tag
	}
	return strings.Join(tags, " "), nil
}

func sqlRemoveTags(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("remove_tags: at least 2 arguments must be given")
	}
	raw, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	tags := ParseTags(raw)
	for i := 1; i < len(args); i++ {
		tag, err := argString(args, i)
		if err != nil {
			return nil, err
		}
		if tag == "" {
			continue
		}
		pos := sort.SearchStrings(tags, tag)
		if pos < len(tags) && tags[pos] == tag {
			tags = append(tags[:pos], tags[pos+1:]...)
		}
	}
	return strings.Join(tags, " "), nil
}

func sqlDirname(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	p, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return dirname(p), nil
}

func sqlExtname(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	p, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return extname(p), nil
}

// dirname returns the parent folder of a slash-separated relative path.
// Top-level paths return "".
func dirname(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i]
}

// extname returns the file extension without the leading dot. Dotfiles like
// ".gitignore" have no extension.
func extname(p string) string {
	name := p
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		name = p[i+1:]
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// ParseTags splits a raw whitespace-separated tag string into a sorted list.
func ParseTags(raw string) []string {
	tags := strings.Fields(raw)
	if len(tags) == 0 {
		return nil
	}
	sort.Strings(tags)
	return tags
}

// NormalizeTags returns a sorted copy of tags.
func NormalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	sort.Strings(out)
	return out
}

func joinTags(tags []string) string {
	return strings.Join(NormalizeTags(tags), " ")
}
