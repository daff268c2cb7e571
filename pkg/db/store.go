package db

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// DBExecutor is satisfied by both *sqlx.DB and *sqlx.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// insertChunk caps rows per INSERT statement well below sqlite's bound
// parameter limit (18 columns per vocabulary row).
const insertChunk = 500

func execInsert(ctx context.Context, db DBExecutor, b sq.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = db.ExecContext(ctx, query, args...)
	return err
}

// InsertLessons writes lessons with their explicit ids.
func InsertLessons(ctx context.Context, db DBExecutor, lessons []Lesson) error {
	for start := 0; start < len(lessons); start += insertChunk {
		end := min(start+insertChunk, len(lessons))
		b := sq.Insert("Lessons").Columns("LessonsID", "Name")
		for _, l := range lessons[start:end] {
			b = b.Values(l.LessonsID, l.Name)
		}
		if err := execInsert(ctx, db, b); err != nil {
			return fmt.Errorf("insert lessons: %w", err)
		}
	}
	return nil
}

// InsertSettings writes settings with their explicit ids.
func InsertSettings(ctx context.Context, db DBExecutor, settings []Setting) error {
	if len(settings) == 0 {
		return nil
	}
	b := sq.Insert("Settings").Columns("SettingsID", "Name", "Value")
	for _, s := range settings {
		b = b.Values(s.SettingsID, s.Name, s.Value)
	}
	if err := execInsert(ctx, db, b); err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// InsertVocabulary writes vocabulary rows with their explicit ids.
func InsertVocabulary(ctx context.Context, db DBExecutor, rows []Vocabulary) error {
	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		b := sq.Insert("Vocabulary").Columns(vocabularyColumns...)
		for _, v := range rows[start:end] {
			b = b.Values(v.values()...)
		}
		if err := execInsert(ctx, db, b); err != nil {
			return fmt.Errorf("insert vocabulary rows %d-%d: %w", start+1, end, err)
		}
	}
	return nil
}

// WriteBook creates the vok5 schema and writes book in a single transaction.
func WriteBook(ctx context.Context, db TxBeginner, book Book) error {
	return RunInTx(ctx, db,
		func(ctx context.Context, tx DBExecutor) error { return InitDB(ctx, tx) },
		func(ctx context.Context, tx DBExecutor) error { return InsertLessons(ctx, tx, book.Lessons) },
		func(ctx context.Context, tx DBExecutor) error { return InsertSettings(ctx, tx, book.Settings) },
		func(ctx context.Context, tx DBExecutor) error { return InsertVocabulary(ctx, tx, book.Vocabulary) },
	)
}

// ReadBook loads lessons, settings and vocabulary ordered by id.
func ReadBook(ctx context.Context, db DBExecutor) (Book, error) {
	var book Book
	if err := db.SelectContext(ctx, &book.Lessons,
		`SELECT LessonsID, Name FROM Lessons ORDER BY LessonsID`); err != nil {
		return Book{}, fmt.Errorf("read lessons: %w", err)
	}
	if err := db.SelectContext(ctx, &book.Settings,
		`SELECT SettingsID, Name, Value FROM Settings ORDER BY SettingsID`); err != nil {
		return Book{}, fmt.Errorf("read settings: %w", err)
	}
	query, _, err := sq.Select(vocabularyColumns...).From("Vocabulary").OrderBy("VocabularyID").ToSql()
	if err != nil {
		return Book{}, fmt.Errorf("build select: %w", err)
	}
	if err := db.SelectContext(ctx, &book.Vocabulary, query); err != nil {
		return Book{}, fmt.Errorf("read vocabulary: %w", err)
	}
	return book, nil
}

// ReadStatistics loads the Statistics table ordered by id.
func ReadStatistics(ctx context.Context, db DBExecutor) ([]Statistic, error) {
	query, _, err := sq.Select("*").From("Statistics").OrderBy("StatisticsID").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	var stats []Statistic
	if err := db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("read statistics: %w", err)
	}
	return stats, nil
}

// TableNames returns the user tables in the database, sorted by name.
func TableNames(ctx context.Context, db DBExecutor) ([]string, error) {
	var names []string
	err := db.SelectContext(ctx, &names,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}
