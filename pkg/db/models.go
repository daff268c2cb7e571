package db

// Lesson is one row of the Lessons table.
type Lesson struct {
	LessonsID int64  `db:"LessonsID"`
	Name      string `db:"Name"`
}

// Setting is one row of the Settings table.
type Setting struct {
	SettingsID int64  `db:"SettingsID"`
	Name       string `db:"Name"`
	Value      string `db:"Value"`
}

// Setting names in SettingsID order.
const (
	SettingTitle                = "Title"
	SettingDescriptionLanguage1 = "DescriptionLanguage1"
	SettingDescriptionLanguage2 = "DescriptionLanguage2"
	SettingLastDirection        = "LastDirection"
	SettingSeparator            = "Separator"
)

// Vocabulary is one row of the Vocabulary table. The 12 suffix is the
// language 1 → language 2 direction, 21 the reverse.
type Vocabulary struct {
	VocabularyID           int64  `db:"VocabularyID"`
	LessonsID              int64  `db:"LessonsID"`
	Language1              string `db:"Language1"`
	Language2              string `db:"Language2"`
	Synonyms1              string `db:"Synonyms1"`
	Synonyms2              string `db:"Synonyms2"`
	Pronunciation1         string `db:"Pronunciation1"`
	Pronunciation2         string `db:"Pronunciation2"`
	Comment                string `db:"Comment"`
	ImageFilename          string `db:"ImageFilename"`
	PronunciationFilename1 string `db:"PronunciationFilename1"`
	PronunciationFilename2 string `db:"PronunciationFilename2"`
	Box12                  int    `db:"Box12"`
	Box21                  int    `db:"Box21"`
	LastLearned12          string `db:"LastLearned12"`
	LastLearned21          string `db:"LastLearned21"`
	Counter12              int    `db:"Counter12"`
	Counter21              int    `db:"Counter21"`
}

// values returns the row in vocabularyColumns order.
func (v Vocabulary) values() []interface{} {
	return []interface{}{
		v.VocabularyID, v.LessonsID, v.Language1, v.Language2, v.Synonyms1,
		v.Synonyms2, v.Pronunciation1, v.Pronunciation2, v.Comment,
		v.ImageFilename, v.PronunciationFilename1, v.PronunciationFilename2,
		v.Box12, v.Box21, v.LastLearned12, v.LastLearned21, v.Counter12,
		v.Counter21,
	}
}

var vocabularyColumns = []string{
	"VocabularyID", "LessonsID", "Language1", "Language2", "Synonyms1",
	"Synonyms2", "Pronunciation1", "Pronunciation2", "Comment",
	"ImageFilename", "PronunciationFilename1", "PronunciationFilename2",
	"Box12", "Box21", "LastLearned12", "LastLearned21", "Counter12",
	"Counter21",
}

// Statistic is one row of the Statistics table, a finished quiz session
// recorded by the trainer. Conversion always leaves the table empty.
type Statistic struct {
	StatisticsID   int64  `db:"StatisticsID"`
	LessonsID      int64  `db:"LessonsID"`
	Datetime       string `db:"Datetime"`
	Duration       int    `db:"Duration"`
	NumberTotal    int    `db:"NumberTotal"`
	NumberCorrect  int    `db:"NumberCorrect"`
	NumberWrong    int    `db:"NumberWrong"`
	NumberAccepted int    `db:"NumberAccepted"`
	Method         int    `db:"Method"`
	Type           int    `db:"Type"`
	QueryType      int    `db:"QueryType"`
	Direction      int    `db:"Direction"`
}

// Book is the content of one vok5 file. The Statistics table is always
// created empty and has no counterpart here.
type Book struct {
	Lessons    []Lesson
	Settings   []Setting
	Vocabulary []Vocabulary
}
