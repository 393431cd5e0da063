package diff

import (
	"reflect"
	"sort"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a/b/c", "a/b/c", 3},
		{"a/b/cvghsacvsgha", "a/b/c", 2},
		{"a/b/cvghsacvsgha/c", "a/b/c", 3},
		{"a/b/cvghsacvsgha/d/e", "a/b/q/w/e", 3},
		{"a", "b", 0},
	}
	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("similarity(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func assertDiff(t *testing.T, before, after []string, want Diff) {
	t.Helper()
	got := Paths(before, after)

	sort.Strings(got.Created)
	sort.Strings(got.Deleted)
	sort.Slice(got.Renamed, func(i, j int) bool { return got.Renamed[i].From < got.Renamed[j].From })
	sort.Strings(want.Created)
	sort.Strings(want.Deleted)
	sort.Slice(want.Renamed, func(i, j int) bool { return want.Renamed[i].From < want.Renamed[j].From })

	if !reflect.DeepEqual(normalize(got), normalize(want)) {
		t.Errorf("Paths(%v, %v) = %+v, want %+v", before, after, got, want)
	}
}

// normalize maps empty slices and nil to the same value for DeepEqual.
func normalize(d Diff) Diff {
	if len(d.Created) == 0 {
		d.Created = nil
	}
	if len(d.Deleted) == 0 {
		d.Deleted = nil
	}
	if len(d.Renamed) == 0 {
		d.Renamed = nil
	}
	return d
}

func TestDiffPaths(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		assertDiff(t,
			[]string{"a", "b", "c", "d"},
			[]string{"a", "b", "c", "d"},
			Diff{})
	})

	t.Run("created", func(t *testing.T) {
		assertDiff(t,
			[]string{"a", "b", "c"},
			[]string{"a", "b", "c", "d"},
			Diff{Created: []string{"d"}})
	})

	t.Run("deleted", func(t *testing.T) {
		assertDiff(t,
			[]string{"a", "b", "c", "d"},
			[]string{"a", "b", "c"},
			Diff{Deleted: []string{"d"}})
	})

	t.Run("moved file is a rename", func(t *testing.T) {
		assertDiff(t,
			[]string{"a", "b", "c", "d"},
			[]string{"a", "b", "c", "qwe/d"},
			Diff{Renamed: []Rename{{From: "d", To: "qwe/d"}}})
	})

	t.Run("mixed changes", func(t *testing.T) {
		assertDiff(t,
			[]string{
				"zebra.txt",
				"a/ant.txt", "a/bee.txt",
				"b/cat.txt", "b/dog.txt",
				"c/egg.txt", "c/fish.txt", "c/goat.txt",
			},
			[]string{
				"unicorn.txt",
				"a/ant.txt", "bee.txt",
				"b/cat.txt", "c/dog.txt",
				"a/egg.txt", "fish.txt", "a/goat.txt",
			},
			Diff{
				Created: []string{"unicorn.txt"},
				Deleted: []string{"zebra.txt"},
				Renamed: []Rename{
					{From: "a/bee.txt", To: "bee.txt"},
					{From: "b/dog.txt", To: "c/dog.txt"},
					{From: "c/egg.txt", To: "a/egg.txt"},
					{From: "c/fish.txt", To: "fish.txt"},
					{From: "c/goat.txt", To: "a/goat.txt"},
				},
			})
	})

	t.Run("same name in several folders", func(t *testing.T) {
		assertDiff(t,
			[]string{"a/ant.txt", "b/ant.txt", "c/ant.txt"},
			[]string{"a/ant.txt", "a/b/ant.txt", "a/c/ant.txt"},
			Diff{Renamed: []Rename{
				{From: "b/ant.txt", To: "a/b/ant.txt"},
				{From: "c/ant.txt", To: "a/c/ant.txt"},
			}})
	})

	t.Run("more deletes than creates", func(t *testing.T) {
		assertDiff(t,
			[]string{"a/x.txt", "b/x.txt"},
			[]string{"c/x.txt"},
			Diff{
				Deleted: []string{"b/x.txt"},
				Renamed: []Rename{{From: "a/x.txt", To: "c/x.txt"}},
			})
	})
}
