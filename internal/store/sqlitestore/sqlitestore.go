package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/labeler/internal/model"
	"github.com/idilsaglam/labeler/internal/store/lockfile"
)

const schema = `CREATE TABLE items (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	grp      TEXT NOT NULL
)`

// Store dumps records into a single sqlite table. Each export replaces the
// previous contents.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

func (s *Store) Write(ctx context.Context, records []model.Record) (model.Receipt, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return model.Receipt{}, fmt.Errorf("mkdir: %w", err)
	}
	unlock, err := lockfile.Acquire(ctx, s.path)
	if err != nil {
		return model.Receipt{}, err
	}
	defer unlock()

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS items`); err != nil {
		return model.Receipt{}, fmt.Errorf("drop table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return model.Receipt{}, fmt.Errorf("create table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (position, name, grp) VALUES (?, ?, ?)`)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i, r.Name, r.Group); err != nil {
			return model.Receipt{}, fmt.Errorf("insert %q: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Receipt{}, fmt.Errorf("commit: %w", err)
	}

	var size int64
	if fi, err := os.Stat(s.path); err == nil {
		size = fi.Size()
	}
	return model.Receipt{Location: s.path, Bytes: size}, nil
}

// ReadAll returns the stored records in position order.
func ReadAll(ctx context.Context, path string) ([]model.Record, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, `SELECT name, grp FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	var out []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.Name, &r.Group); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
