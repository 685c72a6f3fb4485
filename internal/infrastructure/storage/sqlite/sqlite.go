// Package sqlite offers the same whole-collection Load/Save contract as the
// file backend, on an embedded database. Each Save replaces the full
// snapshot inside one transaction; the pos column keeps insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/talker"
)

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &Store{
		db:  db,
		log: log.With("component", "sqlite_store", "path", path),
	}

	if err := store.initTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return store, nil
}

func (s *Store) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS talkers (
			pos        INTEGER PRIMARY KEY AUTOINCREMENT,
			id         INTEGER NOT NULL,
			name       TEXT NOT NULL,
			age        INTEGER NOT NULL,
			watched_at TEXT NOT NULL,
			rate       INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_talkers_id ON talkers(id);
	`)
	return err
}

func (s *Store) Load(ctx context.Context) ([]talker.Talker, error) {
	rows, err := s.db.QueryContext(ctx, `
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
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM talkers"); err != nil {
		return fmt.Errorf("clear talkers: %w", err)
	}

	for _, t := range talkers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO talkers (id, name, age, watched_at, rate)
			VALUES (?, ?, ?, ?, ?)
		`, t.ID, t.Name, t.Age, t.Talk.WatchedAt, t.Talk.Rate)
		if err != nil {
			return fmt.Errorf("insert talker %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	s.log.Debug("collection persisted", "count", len(talkers))
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
