package slugs

import (
	"reflect"
	"testing"
)

func TestTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"drums", "drums"},
		{"Drum Kit", "drum-kit"},
		{"808  Kick", "808-kick"},
		{"snare|loud", "snare-loud"},
		{"Café au lait", "cafe-au-lait"},
		{"", ""},
	}
	for _, test := range tests {
		if got := Tag(test.input); got != test.want {
			t.Errorf("Tag(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{"Drum Kit", "", "loud!"})
	want := []string{"drum-kit", "loud"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}
