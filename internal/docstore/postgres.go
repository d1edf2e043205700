package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lucsky/cuid"
	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/config"
)

// Postgres keeps every aggregate in a single documents table with a jsonb
// payload, one row per (collection, id). A bigserial column preserves
// insertion order for List.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database and applies pending migrations.
// The returned handle is built once at process start and injected into
// every component; it is never a package global.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("docstore: failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("docstore: failed to connect to database: %w", err)
	}

	if err := applyMigrations(pool, cfg); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info().Str("db", cfg.DBName).Msg("docstore: connected to PostgreSQL")
	return &Postgres{pool: pool}, nil
}

func applyMigrations(pool *pgxpool.Pool, cfg config.PostgresConfig) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("docstore: failed to ping database for migrations: %w", err)
	}

	poolCfg := pool.Config()
	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		poolCfg.ConnConfig.User,
		poolCfg.ConnConfig.Password,
		poolCfg.ConnConfig.Host,
		poolCfg.ConnConfig.Port,
		poolCfg.ConnConfig.Database,
		cfg.SSLMode,
	)

	m, err := migrate.New("file://"+cfg.MigrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("docstore: failed to initialize migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("docstore: no new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("docstore: failed to apply migrations: %w", err)
	}
	log.Info().Msg("docstore: migrations applied")
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
	log.Info().Msg("docstore: database connection closed")
}

func (p *Postgres) Get(ctx context.Context, collection, id string, out any) error {
	query := `SELECT doc FROM documents WHERE collection = $1 AND id = $2`

	var raw []byte
	err := p.pool.QueryRow(ctx, query, collection, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("docstore: failed to select %s/%s: %w", collection, id, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("docstore: failed to decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (p *Postgres) Set(ctx context.Context, collection, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: failed to encode %s/%s: %w", collection, id, err)
	}

	query := `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc
	`
	if _, err := p.pool.Exec(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("docstore: failed to upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	cmdTag, err := p.pool.Exec(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("docstore: failed to delete %s/%s: %w", collection, id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) List(ctx context.Context, collection string, out any) error {
	query := `SELECT doc FROM documents WHERE collection = $1 ORDER BY seq`

	rows, err := p.pool.Query(ctx, query, collection)
	if err != nil {
		return fmt.Errorf("docstore: failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("docstore: failed to scan document in %s: %w", collection, err)
		}
		docs = append(docs, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("docstore: error iterating collection %s: %w", collection, err)
	}

	return decodeSlice(collection, docs, out)
}

func (p *Postgres) NewID() string {
	return cuid.New()
}

// decodeSlice re-assembles the raw documents into one JSON array and
// decodes it into the caller's slice in a single pass.
func decodeSlice(collection string, docs []json.RawMessage, out any) error {
	arr, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("docstore: failed to assemble collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(arr, out); err != nil {
		return fmt.Errorf("docstore: failed to decode collection %s: %w", collection, err)
	}
	return nil
}
