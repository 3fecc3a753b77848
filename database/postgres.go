package database

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migration/*.sql
var migrationFS embed.FS

// PostgresStore keeps every collection in one JSONB documents table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn, applies pending migrations and returns the
// store. Serverless deployments get a small pool with short lifetimes.
func OpenPostgres(ctx context.Context, dsn string, serverless bool) (*PostgresStore, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	if serverless {
		config.MaxConns = 5
		config.MinConns = 0
		config.MaxConnLifetime = 5 * time.Minute
		config.MaxConnIdleTime = 1 * time.Minute
		config.HealthCheckPeriod = 1 * time.Minute
	} else {
		config.MaxConns = 25
		config.MinConns = 5
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := runMigrations(dsn); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migration")
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("database migrations applied (or already up to date)")
	return nil
}

func (s *PostgresStore) Name() string { return "postgres" }

func (s *PostgresStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	where, id, err := jsonFilter(filter)
	if err != nil {
		return nil, err
	}

	var (
		docID string
		body  []byte
	)
	err = s.pool.QueryRow(ctx,
		`SELECT id, body FROM documents WHERE collection = $1 AND body @> $2::jsonb AND ($3::text = '' OR id = $3::text) ORDER BY seq LIMIT 1`,
		collection, where, id,
	).Scan(&docID, &body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return decodeBody(docID, body)
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	where, id, err := jsonFilter(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, body FROM documents WHERE collection = $1 AND body @> $2::jsonb AND ($3::text = '' OR id = $3::text) ORDER BY seq`,
		collection, where, id,
	)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var (
			docID string
			body  []byte
		)
		if err := rows.Scan(&docID, &body); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", collection, err)
		}
		doc, err := decodeBody(docID, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	where, id, err := jsonFilter(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1 AND body @> $2::jsonb AND ($3::text = '' OR id = $3::text)`,
		collection, where, id,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	id, body := splitID(doc)
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)`,
		collection, id, string(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return withID(id, body), nil
}

func (s *PostgresStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	batch := &pgx.Batch{}
	for _, doc := range docs {
		id, body := splitID(doc)
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", collection, err)
		}
		batch.Queue(
			`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)`,
			collection, id, string(raw),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range docs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert many into %s: %w", collection, err)
		}
	}
	return nil
}

func (s *PostgresStore) UpdateFields(ctx context.Context, collection, id string, fields Document) error {
	_, body := splitID(fields)
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s changes: %w", collection, err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET body = body || $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2`,
		collection, id, string(raw),
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// jsonFilter splits an optional id match from the field matches, which are
// returned as a JSONB containment document.
func jsonFilter(filter Filter) (string, string, error) {
	fields := Filter{}
	id := ""
	for k, v := range filter {
		if k == IDField {
			id = fmt.Sprint(v)
			continue
		}
		fields[k] = v
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", "", fmt.Errorf("encode filter: %w", err)
	}
	return string(raw), id, nil
}

func decodeBody(id string, body []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return withID(id, Document(normalize(m).(map[string]any))), nil
}
