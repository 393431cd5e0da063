package query

import "fmt"

// WhereClause is a compiled query fragment. The full-text portion of a query
// compiles to a single FTSClause; path filters compile to structural clauses
// combined with AndClause, OrClause, and NotClause.
type WhereClause interface {
	whereClause()
}

// FTSClause matches items through the tag_query FTS5 table.
type FTSClause struct {
	Part FTSPart
}

func (FTSClause) whereClause() {}

// InDir matches items anywhere under a directory.
type InDir struct {
	Path string
}

func (InDir) whereClause() {}

// HasExt matches items by file extension.
type HasExt struct {
	Ext string
}

func (HasExt) whereClause() {}

// InPath matches items whose path contains a substring.
type InPath struct {
	Path string
}

func (InPath) whereClause() {}

// ChildrenOf matches direct children of a directory, excluding items in
// nested subdirectories.
type ChildrenOf struct {
	Path string
}

func (ChildrenOf) whereClause() {}

// LeadingPath matches items whose path starts with a prefix. Unlike InDir it
// does not force a trailing slash, so it also matches partial names.
type LeadingPath struct {
	Path string
}

func (LeadingPath) whereClause() {}

// AndClause requires every child clause to hold.
type AndClause struct {
	Children []WhereClause
}

func (AndClause) whereClause() {}

// OrClause requires at least one child clause to hold.
type OrClause struct {
	Children []WhereClause
}

func (OrClause) whereClause() {}

// NotClause inverts a child clause.
type NotClause struct {
	Child WhereClause
}

func (NotClause) whereClause() {}

// Compile lowers an expression tree into a WhereClause.
//
// Within each And/Or group, full-text terms are merged into one FTSPart so
// the whole group hits the FTS index in a single match; structural clauses
// keep their position after the merged full-text clause.
func Compile(root Expr) (WhereClause, error) {
	switch e := root.(type) {
	case Tag:
		return FTSClause{Part: FTSPhrase{Name: e.Name}}, nil
	case KeyValue:
		switch e.Key {
		case KeyIn:
			return InDir{Path: e.Value}, nil
		case KeyExt:
			return HasExt{Ext: e.Value}, nil
		case KeyInPath:
			return InPath{Path: e.Value}, nil
		case KeyChildren:
			return ChildrenOf{Path: e.Value}, nil
		case KeyLeading:
			return LeadingPath{Path: e.Value}, nil
		default:
			return nil, &UnknownKeyError{Key: e.Key.String()}
		}
	case And:
		ftsParts, sqlClauses, err := compileGroup(e.Children)
		if err != nil {
			return nil, err
		}
		if len(ftsParts) > 0 {
			merged := FTSClause{Part: combineFTSAnd(ftsParts)}
			sqlClauses = append([]WhereClause{merged}, sqlClauses...)
		}
		if len(sqlClauses) == 1 {
			return sqlClauses[0], nil
		}
		return AndClause{Children: sqlClauses}, nil
	case Or:
		ftsParts, sqlClauses, err := compileGroup(e.Children)
		if err != nil {
			return nil, err
		}
		if len(ftsParts) > 0 {
			merged := FTSClause{Part: combineFTSOr(ftsParts)}
			sqlClauses = append([]WhereClause{merged}, sqlClauses...)
		}
		if len(sqlClauses) == 1 {
			return sqlClauses[0], nil
		}
		return OrClause{Children: sqlClauses}, nil
	case Not:
		clause, err := Compile(e.Child)
		if err != nil {
			return nil, err
		}
		// a pure full-text negation stays in the FTS tree so enclosing
		// groups can still merge it into one match expression
		if fts, ok := clause.(FTSClause); ok {
			return FTSClause{Part: FTSNot{Part: fts.Part}}, nil
		}
		return NotClause{Child: clause}, nil
	default:
		panic(fmt.Sprintf("unhandled expression %T", root))
	}
}

// compileGroup compiles each child of an And/Or group, splitting the results
// into full-text parts and structural clauses.
func compileGroup(children []Expr) ([]FTSPart, []WhereClause, error) {
	var ftsParts []FTSPart
	var sqlClauses []WhereClause
	for _, child := range children {
		clause, err := Compile(child)
		if err != nil {
			return nil, nil, err
		}
		if fts, ok := clause.(FTSClause); ok {
			ftsParts = append(ftsParts, fts.Part)
		} else {
			sqlClauses = append(sqlClauses, clause)
		}
	}
	return ftsParts, sqlClauses, nil
}
