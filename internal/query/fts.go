package query

import (
	"fmt"
	"strings"

	"github.com/jamesWalker55/tag-repo/internal/sqlutil"
)

// FTSPart is a node of the full-text portion of a compiled query. It renders
// to an FTS5 match expression over the tags column.
type FTSPart interface {
	ftsPart()
}

// FTSPhrase matches a single tag.
type FTSPhrase struct {
	Name string
}

func (FTSPhrase) ftsPart() {}

// FTSAnd requires every part to match.
type FTSAnd struct {
	Parts []FTSPart
}

func (FTSAnd) ftsPart() {}

// FTSOr requires at least one part to match.
type FTSOr struct {
	Parts []FTSPart
}

func (FTSOr) ftsPart() {}

// FTSNot inverts a part.
type FTSNot struct {
	Part FTSPart
}

func (FTSNot) ftsPart() {}

// combineFTSAnd merges parts into a single FTSAnd, splicing directly nested
// FTSAnds and unwrapping a singleton. parts must be non-empty.
func combineFTSAnd(parts []FTSPart) FTSPart {
	if len(parts) == 1 {
		return parts[0]
	}
	group := make([]FTSPart, 0, len(parts))
	for _, p := range parts {
		if inner, ok := p.(FTSAnd); ok {
			group = append(group, inner.Parts...)
		} else {
			group = append(group, p)
		}
	}
	return FTSAnd{Parts: group}
}

// combineFTSOr merges parts into a single FTSOr, splicing directly nested
// FTSOrs and unwrapping a singleton. parts must be non-empty.
func combineFTSOr(parts []FTSPart) FTSPart {
	if len(parts) == 1 {
		return parts[0]
	}
	group := make([]FTSPart, 0, len(parts))
	for _, p := range parts {
		if inner, ok := p.(FTSOr); ok {
			group = append(group, inner.Parts...)
		} else {
			group = append(group, p)
		}
	}
	return FTSOr{Parts: group}
}

// MatchQuery renders the part as an FTS5 match expression.
//
// FTS5 has no standalone NOT, so pure negations match against the
// meta_tags:"all" marker that every row carries, then subtract.
func MatchQuery(part FTSPart) string {
	switch p := part.(type) {
	case FTSPhrase:
		return `tags:"` + sqlutil.EscapeFTSString(p.Name) + `"`
	case FTSAnd:
		pos := make([]FTSPart, 0, len(p.Parts))
		neg := make([]FTSPart, 0)
		for _, part := range p.Parts {
			if n, ok := part.(FTSNot); ok {
				neg = append(neg, n.Part)
			} else {
				pos = append(pos, part)
			}
		}
		switch {
		case len(neg) == 0:
			return fmt.Sprintf("(%s)", joinMatchQueries(pos, " AND "))
		case len(pos) == 0:
			return fmt.Sprintf(`(meta_tags:"all" NOT %s)`, joinMatchQueries(neg, " NOT "))
		default:
			var b strings.Builder
			b.WriteByte('(')
			b.WriteString(joinMatchQueries(pos, " AND "))
			for _, n := range neg {
				b.WriteString(" NOT ")
				b.WriteString(MatchQuery(n))
			}
			b.WriteByte(')')
			return b.String()
		}
	case FTSOr:
		return fmt.Sprintf("(%s)", joinMatchQueries(p.Parts, " OR "))
	case FTSNot:
		return fmt.Sprintf(`(meta_tags:"all" NOT %s)`, MatchQuery(p.Part))
	default:
		panic(fmt.Sprintf("unhandled FTS part %T", part))
	}
}

func joinMatchQueries(parts []FTSPart, sep string) string {
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = MatchQuery(p)
	}
	return strings.Join(rendered, sep)
}
