// Package convert turns parsed vok2 documents into vok5 books.
package convert

import "github.com/japaniel/vok2vok/pkg/vok2"

// MappedRecord is a vok2 record under vok5 field names. vok2 has a single
// synonym field and it always belongs to the first language.
type MappedRecord struct {
	Lesson    string
	Language1 string
	Language2 string
	Synonyms1 string
	Comment   string
}

// MapRecord renames the fields of r to their vok5 names.
func MapRecord(r vok2.RawRecord) MappedRecord {
	return MappedRecord{
		Lesson:    r.Lesson,
		Language1: r.Lang1,
		Language2: r.Lang2,
		Synonyms1: r.Synonym,
		Comment:   r.Comment,
	}
}
