package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Tables lists the user tables of a vok5 file.
var Tables = []string{"Lessons", "Settings", "Vocabulary", "Statistics"}

const schemaSQL = `
CREATE TABLE "Lessons" (
	"LessonsID" INTEGER PRIMARY KEY AUTOINCREMENT,
	"Name" TEXT
);
CREATE TABLE "Settings" (
	"SettingsID" INTEGER PRIMARY KEY AUTOINCREMENT,
	"Name" TEXT,
	"Value" TEXT
);
CREATE TABLE "Vocabulary" (
	"VocabularyID" INTEGER PRIMARY KEY AUTOINCREMENT,
	"LessonsID" INTEGER,
	"Language1" TEXT,
	"Language2" TEXT,
	"Synonyms1" TEXT,
	"Synonyms2" TEXT,
	"Pronunciation1" TEXT,
	"Pronunciation2" TEXT,
	"Comment" TEXT,
	"ImageFilename" TEXT,
	"PronunciationFilename1" TEXT,
	"PronunciationFilename2" TEXT,
	"Box12" INTEGER,
	"Box21" INTEGER,
	"LastLearned12" TEXT,
	"LastLearned21" TEXT,
	"Counter12" INTEGER,
	"Counter21" INTEGER
);
CREATE TABLE "Statistics" (
	"StatisticsID" INTEGER PRIMARY KEY AUTOINCREMENT,
	"LessonsID" INTEGER,
	"Datetime" TEXT,
	"Duration" INTEGER,
	"NumberTotal" INTEGER,
	"NumberCorrect" INTEGER,
	"NumberWrong" INTEGER,
	"NumberAccepted" INTEGER,
	"Method" INTEGER,
	"Type" INTEGER,
	"QueryType" INTEGER,
	"Direction" INTEGER
);
`

// Open opens (creating if needed) the sqlite file at path.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	conn, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer, and a single connection keeps ":memory:" databases shared.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return conn, nil
}

// InitDB creates the four vok5 tables. It fails if any of them already exists.
func InitDB(ctx context.Context, db DBExecutor) error {
	stmts := strings.Split(schemaSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
