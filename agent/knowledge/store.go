// Package knowledge implements the knowledge store port over a pgvector
// index of support passages.
package knowledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

type Config struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" split_words:"true" required:"true"`
	EmbedModel  string        `envconfig:"EMBED_MODEL" split_words:"true" default:"text-embedding-3-small"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// Connect opens a pgx pool with pgvector types registered on every
// connection.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse knowledge database url: %w", err)
	}

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create knowledge pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping knowledge database: %w", err)
	}
	return pool, nil
}

// PgvectorStore ranks passages by cosine distance to the query embedding.
// The pool and embedder are shared, read-mostly resources.
type PgvectorStore struct {
	pool  *pgxpool.Pool
	embed Embedder
}

var _ contractx.KnowledgeStore = (*PgvectorStore)(nil)

func NewPgvectorStore(pool *pgxpool.Pool, embed Embedder) (*PgvectorStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("knowledge pool is required")
	}
	if embed == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	return &PgvectorStore{pool: pool, embed: embed}, nil
}

func (s *PgvectorStore) Search(ctx context.Context, query string, k int) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: search query is empty", contractx.ErrValidation)
	}
	if k <= 0 {
		k = 1
	}

	vec, err := s.embed(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT content FROM passages ORDER BY embedding <=> $1 LIMIT $2`,
		pgvector.NewVector(vec), k,
	)
	if err != nil {
		return nil, fmt.Errorf("search passages: %w", err)
	}
	defer rows.Close()

	var passages []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}
		passages = append(passages, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passages: %w", err)
	}
	return passages, nil
}

func (s *PgvectorStore) Close() {
	s.pool.Close()
}
