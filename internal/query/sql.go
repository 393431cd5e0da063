package query

import (
	"fmt"
	"strings"

	"github.com/jamesWalker55/tag-repo/internal/sqlutil"
)

// SQL renders a compiled clause as a boolean SQL fragment over the items
// table (aliased i) joined with the tag_query FTS5 table (aliased tq).
//
// At the root, a full-text clause uses the `tq.tag_query = '...'` match
// shorthand; SQLite allows that form only once per statement, so nested
// full-text clauses fall back to an `IN (SELECT id FROM tag_query('...'))`
// subquery.
func SQL(clause WhereClause) string {
	return sqlFragment(clause, true)
}

func sqlFragment(clause WhereClause, isRoot bool) string {
	switch c := clause.(type) {
	case FTSClause:
		matchQuery := MatchQuery(c.Part)
		if isRoot {
			return fmt.Sprintf("tq.tag_query = '%s'", matchQuery)
		}
		return fmt.Sprintf("i.id IN (SELECT id FROM tag_query('%s'))", matchQuery)
	case InDir:
		path := likeDirPrefix(c.Path)
		return fmt.Sprintf(`i.path LIKE '%s%%' ESCAPE '\'`, path)
	case HasExt:
		ext := sqlutil.EscapeLikePattern(c.Ext, '\\')
		return fmt.Sprintf(`extname(i.path) LIKE '%s' ESCAPE '\'`, ext)
	case InPath:
		// substring match, so the path keeps its separators as typed
		path := sqlutil.EscapeLikePattern(c.Path, '\\')
		return fmt.Sprintf(`i.path LIKE '%%%s%%' ESCAPE '\'`, path)
	case ChildrenOf:
		path := likeDirPrefix(c.Path)
		return fmt.Sprintf(`i.path LIKE '%s%%' ESCAPE '\' AND NOT i.path LIKE '%s%%/%%' ESCAPE '\'`, path, path)
	case LeadingPath:
		path := sqlutil.EscapeLikePattern(normalizeSeparators(c.Path), '\\')
		return fmt.Sprintf(`i.path LIKE '%s%%' ESCAPE '\'`, path)
	case AndClause:
		return fmt.Sprintf("(%s)", joinFragments(c.Children, " AND "))
	case OrClause:
		return fmt.Sprintf("(%s)", joinFragments(c.Children, " OR "))
	case NotClause:
		if fts, ok := c.Child.(FTSClause); ok {
			return sqlFragment(FTSClause{Part: FTSNot{Part: fts.Part}}, isRoot)
		}
		return fmt.Sprintf("NOT (%s)", sqlFragment(c.Child, false))
	default:
		panic(fmt.Sprintf("unhandled clause %T", clause))
	}
}

func joinFragments(clauses []WhereClause, sep string) string {
	rendered := make([]string, len(clauses))
	for i, c := range clauses {
		rendered[i] = sqlFragment(c, false)
	}
	return strings.Join(rendered, sep)
}

// normalizeSeparators converts backslashes to forward slashes. Paths are
// stored with "/" regardless of platform, so searches typed with "\" must
// match too.
func normalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// likeDirPrefix prepares a directory path for a LIKE prefix match: normalize
// separators, escape LIKE wildcards, and ensure a trailing slash.
func likeDirPrefix(path string) string {
	escaped := sqlutil.EscapeLikePattern(normalizeSeparators(path), '\\')
	if !strings.HasSuffix(escaped, "/") {
		escaped += "/"
	}
	return escaped
}
