// Package store persists finished snake games in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roboshep/game/manager"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed manager.RecordStore.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens the score database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		score INTEGER NOT NULL,
		length INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		cause TEXT NOT NULL,
		won INTEGER NOT NULL DEFAULT 0,
		started_at INTEGER NOT NULL,
		ended_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRecord inserts one finished game.
func (s *Store) SaveRecord(ctx context.Context, r manager.Record) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (session, score, length, ticks, cause, won, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Session, r.Score, r.Length, r.Ticks, r.Cause, won,
		r.StartTime.UnixMilli(), r.EndTime.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// HighScore returns the best score on record, or 0 for an empty table.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var high sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM games`).Scan(&high); err != nil {
		return 0, fmt.Errorf("failed to query high score: %w", err)
	}
	return int(high.Int64), nil
}

// Top returns up to n games ordered by score, earliest first on ties.
func (s *Store) Top(ctx context.Context, n int) ([]manager.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session, score, length, ticks, cause, won, started_at, ended_at
		 FROM games ORDER BY score DESC, ended_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var records []manager.Record
	for rows.Next() {
		var (
			r              manager.Record
			won            int
			started, ended int64
		)
		if err := rows.Scan(&r.Session, &r.Score, &r.Length, &r.Ticks, &r.Cause, &won, &started, &ended); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		r.Won = won != 0
		r.StartTime = time.UnixMilli(started)
		r.EndTime = time.UnixMilli(ended)
		records = append(records, r)
	}
	return records, rows.Err()
}
