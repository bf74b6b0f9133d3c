package naming

import (
	"reflect"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "Wake",
			want: "wake",
		},
		{
			name: "strips colon and exclamation",
			in:   "Seven Second Delay: Live!",
			want: "seven second delay live",
		},
		{
			name: "strips double quotes",
			in:   `The "Best" Show`,
			want: "the best show",
		},
		{
			name: "keeps apostrophes",
			in:   "Clay Pigeon's Show",
			want: "clay pigeon's show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.in); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleSynonyms(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "possessive show title",
			title: "Clay Pigeon's Show",
			want:  []string{"clay pigeon's show", "clay pigeon"},
		},
		{
			name:  "radio programme title",
			title: "The Glen Jones Radio Programme",
			want:  []string{"the glen jones radio programme", "glen jones"},
		},
		{
			name:  "plain title has no synonyms",
			title: "Wake",
			want:  []string{"wake"},
		},
		{
			name:  "canonical key is always first",
			title: "Techtonic",
			want:  []string{"techtonic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleSynonyms(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TitleSynonyms(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}
