package convert

import (
	"sort"

	"github.com/japaniel/vok2vok/pkg/db"
)

// LessonIndex encodes lesson names as dense 1-based ids assigned in sorted
// name order, not in order of appearance.
type LessonIndex struct {
	ids     map[string]int64
	lessons []db.Lesson
}

// IndexLessons builds the index over the lesson name of every record.
func IndexLessons(names []string) *LessonIndex {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		distinct = append(distinct, n)
	}
	sort.Strings(distinct)

	idx := &LessonIndex{
		ids:     make(map[string]int64, len(distinct)),
		lessons: make([]db.Lesson, len(distinct)),
	}
	for i, n := range distinct {
		id := int64(i + 1)
		idx.ids[n] = id
		idx.lessons[i] = db.Lesson{LessonsID: id, Name: n}
	}
	return idx
}

// ID returns the id of name and whether it was indexed.
func (x *LessonIndex) ID(name string) (int64, bool) {
	id, ok := x.ids[name]
	return id, ok
}

// Lessons returns the lesson table in id order.
func (x *LessonIndex) Lessons() []db.Lesson {
	out := make([]db.Lesson, len(x.lessons))
	copy(out, x.lessons)
	return out
}
