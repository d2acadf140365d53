package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads the catalog from a read-only sqlite mirror of the
// CSV. The commands table uses the unaccented column names sqlite is
// comfortable with; the schema is otherwise the same row shape.
func LoadSQLite(path string) ([]Entry, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat catalog db: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1) // sqlite

	rows, err := db.Query(`
		SELECT comando, descricao, ordem_importancia, como_pode_ser_usado
		FROM commands
	`)
	if err != nil {
		// A missing table or column means the mirror was built wrong,
		// which is the sqlite shape of an invalid schema.
		return nil, &SchemaError{Missing: []string{"commands"}}
	}
	defer rows.Close()

	var out []Entry
	line := 0
	for rows.Next() {
		line++
		var name, desc, usage string
		var rank int
		if err := rows.Scan(&name, &desc, &rank, &usage); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		if rank < 1 {
			return nil, &ParseError{Line: line, Field: colRank, Err: fmt.Errorf("rank %d out of range", rank)}
		}
		out = append(out, Entry{
			Name:        name,
			Description: desc,
			Rank:        rank,
			Usage:       splitUsage(usage),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog db: %w", err)
	}

	sortByRank(out)
	return out, nil
}
