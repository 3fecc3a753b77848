package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '{}',
		UNIQUE (collection, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection, seq)`,
}

// SQLiteStore keeps every collection in one documents table with JSON text
// bodies. It is meant for single-node deployments and local development.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("SQLITE_PATH is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create sqlite schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Name() string { return "sqlite" }

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	where, args, err := sqliteWhere(collection, filter)
	if err != nil {
		return nil, err
	}

	var id, body string
	err = s.db.QueryRowContext(ctx,
		`SELECT id, body FROM documents WHERE `+where+` ORDER BY seq LIMIT 1`, args...,
	).Scan(&id, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return decodeBody(id, []byte(body))
}

func (s *SQLiteStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	where, args, err := sqliteWhere(collection, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE `+where+` ORDER BY seq`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", collection, err)
		}
		doc, err := decodeBody(id, []byte(body))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	where, args, err := sqliteWhere(collection, filter)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *SQLiteStore) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	id, body := splitID(doc)
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		collection, id, string(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return withID(id, body), nil
}

func (s *SQLiteStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert many: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, doc := range docs {
		id, body := splitID(doc)
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", collection, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`,
			collection, id, string(raw),
		); err != nil {
			return fmt.Errorf("insert many into %s: %w", collection, err)
		}
	}
	return tx.Commit()
}

// UpdateFields sets each field with json_set, so null values are stored
// rather than removing the key as json_patch would.
func (s *SQLiteStore) UpdateFields(ctx context.Context, collection, id string, fields Document) error {
	_, body := splitID(fields)
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := "body"
	args := []any{}
	if len(keys) > 0 {
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			raw, err := json.Marshal(body[k])
			if err != nil {
				return fmt.Errorf("encode %s field %s: %w", collection, k, err)
			}
			pairs = append(pairs, "?, json(?)")
			args = append(args, sqlitePath(k), string(raw))
		}
		expr = "json_set(body, " + strings.Join(pairs, ", ") + ")"
	}
	args = append(args, collection, id)

	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET body = `+expr+` WHERE collection = ? AND id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

func sqliteWhere(collection string, filter Filter) (string, []any, error) {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clauses := []string{"collection = ?"}
	args := []any{collection}
	for _, k := range keys {
		v := filter[k]
		if k == IDField {
			clauses = append(clauses, "id = ?")
			args = append(args, fmt.Sprint(v))
			continue
		}

		path := sqlitePath(k)
		switch t := v.(type) {
		case nil:
			clauses = append(clauses, "json_type(body, ?) = 'null'")
			args = append(args, path)
		case bool:
			clauses = append(clauses, "json_extract(body, ?) = ?")
			if t {
				args = append(args, path, 1)
			} else {
				args = append(args, path, 0)
			}
		case string, int, int32, int64, float64:
			clauses = append(clauses, "json_extract(body, ?) = ?")
			args = append(args, path, t)
		default:
			raw, err := json.Marshal(t)
			if err != nil {
				return "", nil, fmt.Errorf("encode filter value for %s: %w", k, err)
			}
			clauses = append(clauses, "json_extract(body, ?) = json(?)")
			args = append(args, path, string(raw))
		}
	}
	return strings.Join(clauses, " AND "), args, nil
}

func sqlitePath(field string) string {
	return `$."` + strings.ReplaceAll(field, `"`, `\"`) + `"`
}
