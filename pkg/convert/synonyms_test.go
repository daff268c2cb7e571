package convert

import (
	"strings"
	"testing"

	"github.com/japaniel/vok2vok/pkg/vok2"
	"github.com/stretchr/testify/assert"
)

func TestMapRecord(t *testing.T) {
	got := MapRecord(vok2.RawRecord{Lesson: "L1", Lang1: "cat", Lang2: "gato", Synonym: "kitty", Comment: "pet"})
	assert.Equal(t, MappedRecord{Lesson: "L1", Language1: "cat", Language2: "gato", Synonyms1: "kitty", Comment: "pet"}, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   MappedRecord
		want NormalizedRecord
	}{
		{
			name: "embedded alternative moves to synonyms",
			in:   MappedRecord{Language1: "cat; gato", Language2: "dog"},
			want: NormalizedRecord{Language1: "cat", Synonyms1: "gato", Language2: "dog"},
		},
		{
			name: "embedded alternatives precede existing synonyms",
			in:   MappedRecord{Language1: "a;b ; c", Synonyms1: "d; e;"},
			want: NormalizedRecord{Language1: "a", Synonyms1: "b; c; d; e"},
		},
		{
			name: "second language uses its own synonym field",
			in:   MappedRecord{Language1: "house", Synonyms1: "home", Language2: "casa; hogar"},
			want: NormalizedRecord{Language1: "house", Synonyms1: "home", Language2: "casa", Synonyms2: "hogar"},
		},
		{
			name: "no separator leaves the record untouched",
			in:   MappedRecord{Lesson: "L", Language1: " spaced ", Synonyms1: "x;;y", Language2: "b", Comment: "c"},
			want: NormalizedRecord{Lesson: "L", Language1: " spaced ", Synonyms1: "x;;y", Language2: "b", Comment: "c"},
		},
		{
			name: "empty leading alternative is dropped",
			in:   MappedRecord{Language1: "; cat", Synonyms1: "kitty"},
			want: NormalizedRecord{Language1: "cat", Synonyms1: "kitty"},
		},
		{
			name: "separator only",
			in:   MappedRecord{Language1: " ; "},
			want: NormalizedRecord{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []MappedRecord{
		{Language1: "cat; gato", Language2: "dog"},
		{Language1: "a;b;c", Synonyms1: "d", Language2: "x;y"},
		{Language1: "plain", Synonyms1: "s1; s2"},
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, once.normalized())
	}
}

func TestNormalizeOrderProperty(t *testing.T) {
	in := MappedRecord{Language1: "one; two;three", Synonyms1: "four;five"}
	got := Normalize(in)

	assert.NotContains(t, got.Language1, Separator)
	assert.Equal(t, "one", got.Language1)
	assert.Equal(t, []string{"two", "three", "four", "five"}, strings.Split(got.Synonyms1, "; "))
}
