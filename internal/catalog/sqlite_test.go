package catalog

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func writeCatalogDB(t *testing.T, rows [][4]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comandos.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE commands (
			comando TEXT NOT NULL,
			descricao TEXT NOT NULL,
			ordem_importancia INTEGER NOT NULL,
			como_pode_ser_usado TEXT NOT NULL
		)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, row := range rows {
		_, err := db.Exec(
			`INSERT INTO commands (comando, descricao, ordem_importancia, como_pode_ser_usado) VALUES (?, ?, ?, ?)`,
			row[0], row[1], row[2], row[3],
		)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestLoadSQLiteSortsByRank(t *testing.T) {
	path := writeCatalogDB(t, [][4]any{
		{"git rebase", "Reaplica commits", 50, "git rebase main"},
		{"git init", "Inicializa", 1, "git init"},
		{"git commit", "Grava alterações", 5, "git commit -m msg, git commit --amend"},
	})

	entries, err := LoadSQLite(path)
	if err != nil {
		t.Fatalf("LoadSQLite: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Rank != 1 || entries[1].Rank != 5 || entries[2].Rank != 50 {
		t.Fatalf("ranks = %v", filterRanks(entries))
	}
	if len(entries[1].Usage) != 2 {
		t.Fatalf("usage = %v, want 2 examples", entries[1].Usage)
	}
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, err := LoadSQLite(filepath.Join(t.TempDir(), "nope.db"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE other (x INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	db.Close()

	_, err = LoadSQLite(path)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err = %v, want SchemaError", err)
	}
}

func TestLoadSQLiteBadRank(t *testing.T) {
	path := writeCatalogDB(t, [][4]any{
		{"git init", "Inicializa", 0, "git init"},
	})
	_, err := LoadSQLite(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}
