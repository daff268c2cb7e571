package convert

import "strings"

const (
	// Separator divides alternatives inside one field.
	Separator = ";"
	// synonymJoin is how redistributed alternatives are written back.
	synonymJoin = "; "
)

// NormalizedRecord is a MappedRecord whose language fields hold exactly one
// answer each, with any alternatives moved into the synonym fields.
type NormalizedRecord struct {
	Lesson    string
	Language1 string
	Language2 string
	Synonyms1 string
	Synonyms2 string
	Comment   string
}

// Normalize moves separator-delimited alternatives out of Language1 and
// Language2 into Synonyms1 and Synonyms2. The vok5 trainer compares an
// answer against the whole language field, so it must be a single string.
func Normalize(m MappedRecord) NormalizedRecord {
	n := NormalizedRecord{
		Lesson:    m.Lesson,
		Language1: m.Language1,
		Language2: m.Language2,
		Synonyms1: m.Synonyms1,
		Comment:   m.Comment,
	}
	return n.normalized()
}

func (n NormalizedRecord) normalized() NormalizedRecord {
	n.Language1, n.Synonyms1 = splitAlternatives(n.Language1, n.Synonyms1)
	n.Language2, n.Synonyms2 = splitAlternatives(n.Language2, n.Synonyms2)
	return n
}

// splitAlternatives keeps the first alternative of lang as the answer and
// prepends the rest to synonyms. Fields without a separator are returned as is.
func splitAlternatives(lang, synonyms string) (string, string) {
	if !strings.Contains(lang, Separator) {
		return lang, synonyms
	}
	parts := append(splitList(lang), splitList(synonyms)...)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], synonymJoin)
}

// splitList splits s on the separator, trimming parts and dropping empty ones.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, Separator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
