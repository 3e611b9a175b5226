package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"carbon-edu/internal/domain"
)

// KnowledgeRepository da acceso a la tabla climate_knowledge.
type KnowledgeRepository interface {
	Create(ctx context.Context, entry domain.KnowledgeEntry) error
	// Import inserta todas las filas en una sola transaccion: o entran todas o ninguna.
	Import(ctx context.Context, entries []domain.KnowledgeEntry) error
	// ListAll devuelve todas las filas, sin filtro ni ranking.
	ListAll(ctx context.Context) ([]domain.KnowledgeEntry, error)
}

// pgxDB es el subconjunto de *pgxpool.Pool que usa el repositorio.
type pgxDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PgKnowledgeRepository struct {
	pool pgxDB
}

func NewPgKnowledgeRepository(pool pgxDB) *PgKnowledgeRepository {
	return &PgKnowledgeRepository{pool: pool}
}

const insertKnowledgeSQL = `
	INSERT INTO climate_knowledge (id, category, topic, content, created_at)
	VALUES ($1, $2, $3, $4, $5)
`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertKnowledge(ctx context.Context, db execer, entry domain.KnowledgeEntry) error {
	_, err := db.Exec(ctx, insertKnowledgeSQL,
		entry.ID,
		entry.Category,
		entry.Topic,
		entry.Content,
		entry.CreatedAt,
	)
	return err
}

func (r *PgKnowledgeRepository) Create(ctx context.Context, entry domain.KnowledgeEntry) error {
	return insertKnowledge(ctx, r.pool, entry)
}

func (r *PgKnowledgeRepository) Import(ctx context.Context, entries []domain.KnowledgeEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	// Tras Commit, Rollback devuelve ErrTxClosed y se ignora.
	defer func() { _ = tx.Rollback(ctx) }()

	for _, e := range entries {
		if err := insertKnowledge(ctx, tx, e); err != nil {
			return fmt.Errorf("insert knowledge %q: %w", e.Topic, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (r *PgKnowledgeRepository) ListAll(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	const query = `
		SELECT id, category, topic, content, created_at
		FROM climate_knowledge
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanKnowledge(rows)
}

func scanKnowledge(rows pgxRows) ([]domain.KnowledgeEntry, error) {
	var entries []domain.KnowledgeEntry
	for rows.Next() {
		var e domain.KnowledgeEntry
		if err := rows.Scan(
			&e.ID,
			&e.Category,
			&e.Topic,
			&e.Content,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// pgxRows is a minimal interface to allow scanning from pgx rows and simplify testing.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
