// Package query implements the tag search language: a recursive-descent
// parser producing an expression tree, and a compiler that lowers the tree
// into an FTS5 match string plus a SQL boolean fragment over the items table.
package query

// Key identifies a recognized key:value filter.
type Key int

const (
	KeyIn Key = iota
	KeyExt
	KeyInPath
	KeyChildren
	KeyLeading
)

func (k Key) String() string {
	switch k {
	case KeyExt:
		return "ext"
	case KeyInPath:
		return "inpath"
	case KeyChildren:
		return "children"
	case KeyLeading:
		return "leading"
	default:
		return "in"
	}
}

// keyNames maps each key's spelling to its Key. Longer names are matched
// before shorter ones so "inpath:" is never half-consumed as "in:".
var keyNames = []struct {
	name string
	key  Key
}{
	{"children", KeyChildren},
	{"inpath", KeyInPath},
	{"leading", KeyLeading},
	{"ext", KeyExt},
	{"in", KeyIn},
}

// Expr is a node in the parsed expression tree.
type Expr interface {
	exprNode()
}

// Tag matches items whose tag list contains the given tag.
type Tag struct {
	Name string
}

func (Tag) exprNode() {}

// KeyValue is a key:value filter such as in:samples/ or ext:wav.
type KeyValue struct {
	Key   Key
	Value string
}

func (KeyValue) exprNode() {}

// And requires every child to match. Adjacent terms parse as And.
type And struct {
	Children []Expr
}

func (And) exprNode() {}

// Or requires at least one child to match.
type Or struct {
	Children []Expr
}

func (Or) exprNode() {}

// Not inverts its child.
type Not struct {
	Child Expr
}

func (Not) exprNode() {}

// newAnd flattens directly nested Ands one level and unwraps singletons.
func newAnd(children []Expr) Expr {
	if len(children) == 1 {
		return children[0]
	}
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		if inner, ok := c.(And); ok {
			out = append(out, inner.Children...)
		} else {
			out = append(out, c)
		}
	}
	return And{Children: out}
}

// newOr flattens directly nested Ors one level and unwraps singletons.
func newOr(children []Expr) Expr {
	if len(children) == 1 {
		return children[0]
	}
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		if inner, ok := c.(Or); ok {
			out = append(out, inner.Children...)
		} else {
			out = append(out, c)
		}
	}
	return Or{Children: out}
}
