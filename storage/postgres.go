package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"stardefender/config"
	"stardefender/game"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS high_scores (
	key        TEXT PRIMARY KEY,
	score      INTEGER NOT NULL,
	writer_id  UUID NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectScore = `SELECT score FROM high_scores WHERE key = $1`

	// Keeps the larger score if another writer got there first
	upsertScore = `INSERT INTO high_scores (key, score, writer_id, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (key) DO UPDATE
SET score = GREATEST(high_scores.score, EXCLUDED.score),
    writer_id = EXCLUDED.writer_id,
    updated_at = now()`
)

// PostgresStore keeps the high score in a single-row-per-key table
type PostgresStore struct {
	db       *sql.DB
	key      string
	writerID uuid.UUID
}

// NewPostgresStore connects, pings and creates the table if needed
func NewPostgresStore(ctx context.Context, cfg config.DatabaseConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("storage: open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: postgres ping: %w", err)
	}
	if _, err := db.ExecContext(pingCtx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create table: %w", err)
	}

	return &PostgresStore{db: db, key: game.HighScoreKey, writerID: uuid.New()}, nil
}

func (p *PostgresStore) Load(ctx context.Context) (int, error) {
	var score int
	err := p.db.QueryRowContext(ctx, selectScore, p.key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: select score: %w", err)
	}
	return score, nil
}

func (p *PostgresStore) Save(ctx context.Context, score int) error {
	if _, err := p.db.ExecContext(ctx, upsertScore, p.key, score, p.writerID); err != nil {
		return fmt.Errorf("storage: upsert score: %w", err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
