package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps records in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at dbPath and creates the schema.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// every new connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS content (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content_type TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		slug TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'published',
		modified_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_content_type_modified ON content(content_type, modified_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Insert stores r and returns its new ID.
func (s *SQLiteStore) Insert(ctx context.Context, r Record) (int64, error) {
	if r.ContentType == "" {
		return 0, errors.New("record without content type")
	}
	if r.Status == "" {
		r.Status = StatusPublished
	}
	if r.ModifiedAt.IsZero() {
		r.ModifiedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO content (content_type, title, slug, icon, status, modified_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.ContentType, r.Title, r.Slug, r.Icon, string(r.Status), r.ModifiedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read record id: %w", err)
	}

	return id, nil
}

// Latest returns at most limit records of contentType, most recently modified first.
func (s *SQLiteStore) Latest(ctx context.Context, contentType string, limit int) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content_type, title, slug, icon, status, modified_at
		FROM content WHERE content_type = ?
		ORDER BY modified_at DESC, id DESC LIMIT ?`,
		contentType, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			r        Record
			status   string
			modified int64
		)
		if err := rows.Scan(&r.ID, &r.ContentType, &r.Title, &r.Slug, &r.Icon, &status, &modified); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Status = Status(status)
		r.ModifiedAt = time.Unix(0, modified)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Ready reports whether the database answers.
func (s *SQLiteStore) Ready(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadFixtures inserts the records listed in a YAML file and returns how many were stored.
func LoadFixtures(ctx context.Context, s *SQLiteStore, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read fixtures %s: %w", path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse fixtures %s: %w", path, err)
	}

	for i, r := range records {
		if _, err := s.Insert(ctx, r); err != nil {
			return i, fmt.Errorf("fixture %d: %w", i, err)
		}
	}

	return len(records), nil
}
