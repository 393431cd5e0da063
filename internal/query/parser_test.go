package query

import (
	"errors"
	"reflect"
	"testing"
)

func tg(name string) Expr       { return Tag{Name: name} }
func kv(k Key, v string) Expr   { return KeyValue{Key: k, Value: v} }
func and(children ...Expr) Expr { return And{Children: children} }
func or(children ...Expr) Expr  { return Or{Children: children} }
func not(child Expr) Expr       { return Not{Child: child} }

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{"double quoted", `"c ( 'a' b )"`, tg("c ( 'a' b )")},
		{"doubled double quote", `"aaa"""`, tg(`aaa"`)},
		{"doubled single quote", `'aaa''sss'`, tg("aaa'sss")},
		{"only a quote", `"""""`, tg(`"`)},
		{"empty string", `""`, tg("")},
		{"mixed quotes", `'aaa""''"'`, tg(`aaa""'"`)},
		{"padded", ` as `, tg("as")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{"single word", "a", tg("a")},
		{"word", "abc", tg("abc")},
		{"colon without key", ":sd", tg(":sd")},
		{"unknown key", "size:3", tg("size:3")},
		{"embedded quote", "m'lady", tg("m'lady")},
		{"embedded minus", "a-b", tg("a-b")},
		{"embedded pipe", "a|b", tg("a|b")},
		{"ampersands", "a&b&c", tg("a&b&c")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{"in", "in:src/", kv(KeyIn, "src/")},
		{"in quoted", `in:"D:/Audio Samples/"`, kv(KeyIn, "D:/Audio Samples/")},
		{"in quoted with quote", `in:"quote in path"""`, kv(KeyIn, `quote in path"`)},
		{"ext", "ext:wav", kv(KeyExt, "wav")},
		{"inpath", "inpath:drums", kv(KeyInPath, "drums")},
		{"children", "children:samples/", kv(KeyChildren, "samples/")},
		{"leading", "leading:sam", kv(KeyLeading, "sam")},
		{"dangling colon is a tag", "in:", tg("in:")},
		{"unterminated value is a tag", "in:'abc", tg("in:'abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{"implicit and", "a b c", and(tg("a"), tg("b"), tg("c"))},
		{"ampersand is a tag", "a & b c", and(tg("a"), tg("&"), tg("b"), tg("c"))},
		{"attached ampersands", "a &b & c", and(tg("a"), tg("&b"), tg("&"), tg("c"))},
		{"or", "a | b | c", or(tg("a"), tg("b"), tg("c"))},
		{"pipe prefix tag", "a | |b | c", or(tg("a"), tg("|b"), tg("c"))},
		{"pipe without spaces", "a|b | c", or(tg("a|b"), tg("c"))},
		{"pipe suffix tag", "a| b | c", or(and(tg("a|"), tg("b")), tg("c"))},
		{
			"and binds tighter",
			"a b | c | d e f",
			or(and(tg("a"), tg("b")), tg("c"), and(tg("d"), tg("e"), tg("f"))),
		},
		{"negated tag", "a -b", and(tg("a"), not(tg("b")))},
		{"negation with space", "- b", not(tg("b"))},
		{"negated key value", "a -in:c", and(tg("a"), not(kv(KeyIn, "c")))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseParens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{"group before or", "(a b) | c", or(and(tg("a"), tg("b")), tg("c"))},
		{"group flattens into and", "(a b) c", and(tg("a"), tg("b"), tg("c"))},
		{"padded group", "( a b ) c", and(tg("a"), tg("b"), tg("c"))},
		{"group after term", "c ( a b )", and(tg("c"), tg("a"), tg("b"))},
		{"adjacent groups", "a(b)", and(tg("a"), tg("b"))},
		{
			"nested groups flatten",
			"(((in:a in:b))) in:c",
			and(kv(KeyIn, "a"), kv(KeyIn, "b"), kv(KeyIn, "c")),
		},
		{
			"negated group",
			"a -(b e in:1) | -d e in:0",
			or(
				and(tg("a"), not(and(tg("b"), tg("e"), kv(KeyIn, "1")))),
				and(not(tg("d")), tg("e"), kv(KeyIn, "0")),
			),
		},
		{
			"or inside and",
			"kick drum (black_octopus | in:'black octopus' | in:'black-octopus')",
			and(
				tg("kick"), tg("drum"),
				or(tg("black_octopus"), kv(KeyIn, "black octopus"), kv(KeyIn, "black-octopus")),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("unbalanced close paren", func(t *testing.T) {
		_, err := Parse("a b)")
		var incomplete *IncompleteParseError
		if !errors.As(err, &incomplete) {
			t.Fatalf("Parse: %v, want IncompleteParseError", err)
		}
		if incomplete.Remainder != ")" {
			t.Errorf("Remainder = %q, want %q", incomplete.Remainder, ")")
		}
		if !reflect.DeepEqual(incomplete.Partial, and(tg("a"), tg("b"))) {
			t.Errorf("Partial = %#v", incomplete.Partial)
		}
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, err := Parse("  )a")
		var syntax *SyntaxError
		if !errors.As(err, &syntax) {
			t.Fatalf("Parse: %v, want SyntaxError", err)
		}
		if syntax.Offset != 2 {
			t.Errorf("Offset = %d, want 2", syntax.Offset)
		}
	})

	t.Run("lone minus", func(t *testing.T) {
		if _, err := Parse("-"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, err := Parse(""); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
