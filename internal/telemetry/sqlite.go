package telemetry

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/napolitain/autoresolve/internal/models"
)

// SQLiteSink stores telemetry rows in the battles table of a SQLite database
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database and its battles table
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(createTable()); err != nil {
		db.Close()
		return nil, fmt.Errorf("create battles table: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

func createTable() string {
	defs := make([]string, len(Columns))
	for i, c := range Columns {
		defs[i] = c + " " + columnType(c)
	}
	defs[0] += " PRIMARY KEY"
	return "CREATE TABLE IF NOT EXISTS battles (\n\t" + strings.Join(defs, ",\n\t") + "\n)"
}

func columnType(col string) string {
	switch {
	case col == "id", col == "battle_type", col == "outcome", col == "walls", col == "monster",
		strings.HasSuffix(col, "_general"), strings.HasSuffix(col, "_faction"):
		return "TEXT"
	case col == "score":
		return "REAL"
	case strings.HasSuffix(col, "_reward"):
		return "BOOLEAN"
	}
	return "INTEGER"
}

// Write inserts one row per result in a single transaction
func (s *SQLiteSink) Write(results []*models.BattleResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(Columns)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO battles (%s) VALUES (%s)",
		strings.Join(Columns, ", "), placeholders))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		row := Row(r)
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert battle %s: %w", r.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Count returns the number of stored battles
func (s *SQLiteSink) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM battles").Scan(&n); err != nil {
		return 0, fmt.Errorf("count battles: %w", err)
	}
	return n, nil
}

// Close closes the database
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
