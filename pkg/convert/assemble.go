package convert

import (
	"fmt"

	"github.com/japaniel/vok2vok/pkg/db"
	"github.com/japaniel/vok2vok/pkg/vok2"
)

// lastDirection is the quiz direction a fresh vok5 file starts with.
const lastDirection = "1"

// Convert runs the full vok2 → vok5 transformation for one document.
func Convert(doc *vok2.Document, boxes vok2.Boxes) (db.Book, error) {
	records := make([]NormalizedRecord, len(doc.Records))
	for i, r := range doc.Records {
		records[i] = Normalize(MapRecord(r))
	}
	return Assemble(doc.Header, records, boxes)
}

// Assemble builds the vok5 tables from normalized records. Vocabulary ids
// follow record order; both review directions start in the record's box.
func Assemble(header vok2.Header, records []NormalizedRecord, boxes vok2.Boxes) (db.Book, error) {
	perRecord, err := boxes.Expand(len(records))
	if err != nil {
		return db.Book{}, err
	}

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Lesson
	}
	lessons := IndexLessons(names)

	vocab := make([]db.Vocabulary, len(records))
	for i, r := range records {
		lessonID, ok := lessons.ID(r.Lesson)
		if !ok {
			return db.Book{}, fmt.Errorf("lesson %q missing from index", r.Lesson)
		}
		vocab[i] = db.Vocabulary{
			VocabularyID: int64(i + 1),
			LessonsID:    lessonID,
			Language1:    r.Language1,
			Language2:    r.Language2,
			Synonyms1:    r.Synonyms1,
			Synonyms2:    r.Synonyms2,
			Comment:      r.Comment,
			Box12:        perRecord[i],
			Box21:        perRecord[i],
		}
	}

	return db.Book{
		Lessons:    lessons.Lessons(),
		Settings:   Settings(header),
		Vocabulary: vocab,
	}, nil
}

// Settings returns the five vok5 settings derived from the header.
func Settings(h vok2.Header) []db.Setting {
	return []db.Setting{
		{SettingsID: 1, Name: db.SettingTitle, Value: h.Title},
		{SettingsID: 2, Name: db.SettingDescriptionLanguage1, Value: h.Lang1},
		{SettingsID: 3, Name: db.SettingDescriptionLanguage2, Value: h.Lang2},
		{SettingsID: 4, Name: db.SettingLastDirection, Value: lastDirection},
		{SettingsID: 5, Name: db.SettingSeparator, Value: Separator},
	}
}
