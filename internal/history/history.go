// Package history persists generation runs to SQLite so past prompts and
// outputs can be reviewed.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Generation is one recorded run.
type Generation struct {
	ID        int64
	Reference string
	Template  string
	Model     string
	Prompt    string
	Output    string
	CreatedAt time.Time
}

// Store is the SQLite data access layer for generation history.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database at dbPath with WAL mode enabled.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the generations table. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS generations (
  id          INTEGER PRIMARY KEY,
  reference   TEXT NOT NULL,
  template    TEXT NOT NULL,
  model       TEXT,
  prompt      TEXT,
  output      TEXT,
  created_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
`

// Insert records one generation run and returns its id.
func (s *Store) Insert(g *Generation) (int64, error) {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO generations (reference, template, model, prompt, output, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		g.Reference, g.Template, g.Model, g.Prompt, g.Output, g.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert generation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert generation id: %w", err)
	}
	g.ID = id
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]*Generation, error) {
	rows, err := s.db.Query(
		`SELECT id, reference, template, model, prompt, output, created_at
		 FROM generations ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent generations: %w", err)
	}
	defer rows.Close()

	var out []*Generation
	for rows.Next() {
		g := &Generation{}
		if err := rows.Scan(&g.ID, &g.Reference, &g.Template, &g.Model,
			&g.Prompt, &g.Output, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
