// Package postgres backs the talker collection with PostgreSQL for
// deployments that outgrow a local file. The contract stays the one the
// service expects: Load and Save move the whole collection, every time.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"talkerbase/internal/config"
	"talkerbase/internal/domain/talker"
	"talkerbase/internal/infrastructure/migration"
)

type Store struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), cfg.Store.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.New(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		pool: pool,
		log:  log.With("component", "postgres_store"),
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]talker.Talker, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, age, watched_at, rate
		FROM talkers
		ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("select talkers: %w", err)
	}
	defer rows.Close()

	talkers := []talker.Talker{}
	for rows.Next() {
		var t talker.Talker
		if err := rows.Scan(&t.ID, &t.Name, &t.Age, &t.Talk.WatchedAt, &t.Talk.Rate); err != nil {
			return nil, fmt.Errorf("scan talker: %w", err)
		}
		talkers = append(talkers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate talkers: %w", err)
	}

	return talkers, nil
}

func (s *Store) Save(ctx context.Context, talkers []talker.Talker) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM talkers"); err != nil {
		return fmt.Errorf("clear talkers: %w", err)
	}

	for _, t := range talkers {
		_, err := tx.Exec(ctx, `
			INSERT INTO talkers (id, name, age, watched_at, rate)
			VALUES ($1, $2, $3, $4, $5)
		`, t.ID, t.Name, t.Age, t.Talk.WatchedAt, t.Talk.Rate)
		if err != nil {
			return fmt.Errorf("insert talker %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	s.log.Debug("collection persisted", "count", len(talkers))
	return nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
