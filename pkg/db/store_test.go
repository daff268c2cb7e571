package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sampleBook() Book {
	return Book{
		Lessons: []Lesson{{LessonsID: 1, Name: "Unit A"}, {LessonsID: 2, Name: "Unit B"}},
		Settings: []Setting{
			{SettingsID: 1, Name: SettingTitle, Value: "Animals"},
			{SettingsID: 2, Name: SettingDescriptionLanguage1, Value: "English"},
			{SettingsID: 3, Name: SettingDescriptionLanguage2, Value: "Spanish"},
			{SettingsID: 4, Name: SettingLastDirection, Value: "1"},
			{SettingsID: 5, Name: SettingSeparator, Value: ";"},
		},
		Vocabulary: []Vocabulary{
			{VocabularyID: 1, LessonsID: 2, Language1: "cat", Language2: "gato", Synonyms1: "kitty", Box12: 3, Box21: 3},
			{VocabularyID: 2, LessonsID: 1, Language1: "dog", Language2: "perro", Comment: "pet", Box12: 1, Box21: 1},
		},
	}
}

// columnTypes returns column name → declared type, in table order.
func columnTypes(t *testing.T, conn *sqlx.DB, table string) ([]string, map[string]string, map[string]bool) {
	t.Helper()
	rows, err := conn.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	require.NoError(t, err)
	defer rows.Close()

	var order []string
	types := map[string]string{}
	pks := map[string]bool{}
	for rows.Next() {
		var cid, notnull, pk int
		var name, ctype string
		var dflt interface{}
		require.NoError(t, rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk))
		order = append(order, name)
		types[name] = ctype
		pks[name] = pk == 1
	}
	require.NoError(t, rows.Err())
	return order, types, pks
}

func TestInitDBCreatesVok5Schema(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)
	require.NoError(t, InitDB(ctx, conn))

	names, err := TableNames(ctx, conn)
	require.NoError(t, err)
	assert.ElementsMatch(t, Tables, names)

	order, types, pks := columnTypes(t, conn, "Vocabulary")
	assert.Equal(t, vocabularyColumns, order)
	assert.True(t, pks["VocabularyID"])
	assert.Equal(t, "INTEGER", types["VocabularyID"])
	assert.Equal(t, "INTEGER", types["Box12"])
	assert.Equal(t, "TEXT", types["Language1"])

	for table, id := range map[string]string{"Lessons": "LessonsID", "Settings": "SettingsID", "Statistics": "StatisticsID"} {
		_, types, pks := columnTypes(t, conn, table)
		assert.True(t, pks[id], "%s.%s should be the primary key", table, id)
		assert.Equal(t, "INTEGER", types[id])
	}

	order, _, _ = columnTypes(t, conn, "Statistics")
	assert.Equal(t, []string{
		"StatisticsID", "LessonsID", "Datetime", "Duration", "NumberTotal",
		"NumberCorrect", "NumberWrong", "NumberAccepted", "Method", "Type",
		"QueryType", "Direction",
	}, order)

	var sql string
	require.NoError(t, conn.QueryRow(`SELECT sql FROM sqlite_master WHERE name = 'Lessons'`).Scan(&sql))
	assert.Contains(t, sql, "AUTOINCREMENT")
}

func TestWriteAndReadBook(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)
	book := sampleBook()

	require.NoError(t, WriteBook(ctx, conn, book))

	got, err := ReadBook(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, book, got)

	stats, err := ReadStatistics(ctx, conn)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestWriteBookChunksLargeInserts(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	book := Book{Lessons: []Lesson{{LessonsID: 1, Name: "all"}}}
	for i := 1; i <= 3*insertChunk+7; i++ {
		book.Vocabulary = append(book.Vocabulary, Vocabulary{VocabularyID: int64(i), LessonsID: 1, Language1: fmt.Sprint(i), Box12: 5, Box21: 5})
	}
	require.NoError(t, WriteBook(ctx, conn, book))

	got, err := ReadBook(ctx, conn)
	require.NoError(t, err)
	require.Len(t, got.Vocabulary, len(book.Vocabulary))
	assert.Equal(t, int64(len(book.Vocabulary)), got.Vocabulary[len(got.Vocabulary)-1].VocabularyID)
}

func TestRunInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)
	require.NoError(t, InitDB(ctx, conn))

	boom := errors.New("boom")
	err := RunInTx(ctx, conn,
		func(ctx context.Context, tx DBExecutor) error {
			return InsertLessons(ctx, tx, []Lesson{{LessonsID: 1, Name: "x"}})
		},
		func(ctx context.Context, tx DBExecutor) error { return boom },
	)
	assert.ErrorIs(t, err, boom)

	got, err := ReadBook(ctx, conn)
	require.NoError(t, err)
	assert.Empty(t, got.Lessons)
}

func TestWriteBookTwiceFails(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.vok5")
	conn, err := Open(ctx, path)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, WriteBook(ctx, conn, sampleBook()))
	assert.Error(t, WriteBook(ctx, conn, sampleBook()), "schema creation must not merge into an existing file")
}
