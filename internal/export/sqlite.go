package export

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"goasterix/internal/asterix"
)

// DB wraps a SQLite database holding flattened rows, one table per
// category.
type DB struct {
	db     *sql.DB
	logger *logrus.Logger
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string, logger *logrus.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps readers unblocked while a store is in progress.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func tableFor(cat asterix.Category) string {
	if cat == asterix.Cat021 {
		return "cat021_reports"
	}
	return "cat048_reports"
}

// sqlName converts a canonical column name to a SQL identifier.
func sqlName(col string) string {
	return strings.ToLower(strings.ReplaceAll(col, "/", ""))
}

func createSchema(db *sql.DB) error {
	for _, cat := range []asterix.Category{asterix.Cat048, asterix.Cat021} {
		cols := make([]string, 0, len(Columns(cat)))
		for _, col := range Columns(cat) {
			cols = append(cols, sqlName(col)+" TEXT")
		}
		schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			%[2]s
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_ta ON %[1]s(ta);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_time ON %[1]s(time);
		`, tableFor(cat), strings.Join(cols, ",\n\t\t\t"))
		if _, err := db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// Store inserts rows in one transaction. Absent cells store as NULL.
func (d *DB) Store(rows []*Row) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stmts := make(map[asterix.Category]*sql.Stmt)
	defer func() {
		for _, stmt := range stmts {
			_ = stmt.Close()
		}
	}()

	for _, row := range rows {
		cols := Columns(row.Category)
		if cols == nil {
			continue
		}
		stmt, ok := stmts[row.Category]
		if !ok {
			stmt, err = tx.Prepare(insertSQL(row.Category))
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("prepare insert: %w", err)
			}
			stmts[row.Category] = stmt
		}
		args := make([]any, len(cols))
		for i, col := range cols {
			if v, ok := row.Cells[col]; ok {
				args[i] = v
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	d.logger.WithField("rows", len(rows)).Debug("Stored rows in SQLite")
	return nil
}

func insertSQL(cat asterix.Category) string {
	cols := Columns(cat)
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		names[i] = sqlName(col)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableFor(cat), strings.Join(names, ", "), strings.Join(marks, ", "))
}

// Count returns the number of stored rows for a category.
func (d *DB) Count(cat asterix.Category) (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM " + tableFor(cat)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}
