package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// TokenKey is the fixed key the bearer token is stored under, matching the
// key the web client used in browser storage.
const TokenKey = "__twitter_token"

// Store holds the application's bearer token in a local SQLite database.
// It is the durable analogue of the browser's local storage: the token is
// written once on login, read fresh on every outgoing request, and deleted
// on logout.
type Store struct{ sql *sql.DB }

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	s := &Store{sql: d}
	if err := s.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.sql.Close() }

func (s *Store) migrate() error {
	_, err := s.sql.Exec(`
	CREATE TABLE IF NOT EXISTS credentials (
	  key TEXT PRIMARY KEY,
	  value TEXT NOT NULL,
	  updated_at INTEGER NOT NULL
	);
	`)
	return err
}

// Set stores the bearer token, replacing any previous one.
func (s *Store) Set(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	_, err := s.sql.ExecContext(ctx,
		`INSERT INTO credentials(key, value, updated_at) VALUES(?,?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		TokenKey, token, time.Now().UTC().Unix())
	return err
}

// Token returns the stored bearer token, or "" when none is stored.
// Requests made without a token go out unauthenticated; the server decides
// per operation whether that is permitted.
func (s *Store) Token(ctx context.Context) (string, error) {
	row := s.sql.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key=?`, TokenKey)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.sql.ExecContext(ctx, `DELETE FROM credentials WHERE key=?`, TokenKey)
	return err
}
