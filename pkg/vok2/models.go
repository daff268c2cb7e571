package vok2

// RawRecord is one vocabulary entry exactly as stored in a vok2 file.
// Missing elements are read as empty strings.
type RawRecord struct {
	Lesson  string `xml:"lektion"`
	Lang1   string `xml:"spreins"`
	Lang2   string `xml:"sprzwei"`
	Synonym string `xml:"synonym"`
	Comment string `xml:"bemerkung"`
}

// Fields returns the record in vok2 column order.
func (r RawRecord) Fields() []string {
	return []string{r.Lesson, r.Lang1, r.Lang2, r.Synonym, r.Comment}
}

// Header holds the document title and the two language display names.
type Header struct {
	Title string `xml:"titel"`
	Lang1 string `xml:"spreins"`
	Lang2 string `xml:"sprzwei"`
}

// Document is a parsed vok2 file.
type Document struct {
	Header  Header
	Records []RawRecord
}

// FieldNames lists the vok2 record elements in column order.
var FieldNames = []string{"lektion", "spreins", "sprzwei", "synonym", "bemerkung"}
