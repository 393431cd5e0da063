package query

import "testing"

func TestToSQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "true"},
		{"blank", "  \t ", "true"},
		{"tags", "a b", `tq.tag_query = '(tags:"a" AND tags:"b")'`},
		{
			"negated group",
			"-(a b)",
			`tq.tag_query = '(meta_tags:"all" NOT (tags:"a" AND tags:"b"))'`,
		},
		{
			"quote in tag",
			"'mc''donalds' b",
			`tq.tag_query = '(tags:"mc''donalds" AND tags:"b")'`,
		},
		{"dir", "in:asd", `i.path LIKE 'asd/%' ESCAPE '\'`},
		{
			"dir with backslashes",
			`in:'c:\program files\'`,
			`i.path LIKE 'c:/program files/%' ESCAPE '\'`,
		},
		{
			"dir with quotes",
			`in:'path''/wi''th/q""uotes/'`,
			`i.path LIKE 'path''/wi''th/q""uotes/%' ESCAPE '\'`,
		},
		{"negated dir", "-in:asd", `NOT (i.path LIKE 'asd/%' ESCAPE '\')`},
		{
			"dir and negated dir",
			"in:a -in:b",
			`(i.path LIKE 'a/%' ESCAPE '\' AND NOT (i.path LIKE 'b/%' ESCAPE '\'))`,
		},
		{
			"dir with wildcards",
			"in:100%_done",
			`i.path LIKE '100\%\_done/%' ESCAPE '\'`,
		},
		{"ext", "ext:wav", `extname(i.path) LIKE 'wav' ESCAPE '\'`},
		{"inpath", "inpath:drum", `i.path LIKE '%drum%' ESCAPE '\'`},
		{
			"inpath keeps backslashes",
			`inpath:'a\b'`,
			`i.path LIKE '%a\\b%' ESCAPE '\'`,
		},
		{
			"children",
			"children:samples",
			`i.path LIKE 'samples/%' ESCAPE '\' AND NOT i.path LIKE 'samples/%/%' ESCAPE '\'`,
		},
		{"leading", "leading:sam", `i.path LIKE 'sam%' ESCAPE '\'`},
		{
			"tags with dir",
			"kick -snare in:'Drum Collection\\'",
			`(i.id IN (SELECT id FROM tag_query('(tags:"kick" NOT tags:"snare")')) AND i.path LIKE 'Drum Collection/%' ESCAPE '\')`,
		},
		{
			"whitespace insensitive",
			"  kick    -snare \t in:'Drum Collection\\'  ",
			`(i.id IN (SELECT id FROM tag_query('(tags:"kick" NOT tags:"snare")')) AND i.path LIKE 'Drum Collection/%' ESCAPE '\')`,
		},
		{
			"nested fts in or",
			"a | -in:b",
			`(i.id IN (SELECT id FROM tag_query('tags:"a"')) OR NOT (i.path LIKE 'b/%' ESCAPE '\'))`,
		},
		{
			"negated fts below root",
			"-a in:b",
			`(i.id IN (SELECT id FROM tag_query('(meta_tags:"all" NOT tags:"a")')) AND i.path LIKE 'b/%' ESCAPE '\')`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToSQL(tt.input)
			if err != nil {
				t.Fatalf("ToSQL(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToSQL(%q)\n got  %s\n want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestToSQLErrors(t *testing.T) {
	for _, input := range []string{")", "a b)", "-"} {
		if _, err := ToSQL(input); err == nil {
			t.Errorf("ToSQL(%q): expected error, got nil", input)
		}
	}
}
