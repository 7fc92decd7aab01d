// Package clientstore persists the CLI session between invocations.
//
// The client caches the bearer token returned by register/login in a small
// SQLite database so follow-up commands (whoami, habits ...) can run without
// re-authenticating. The database holds at most one session row.
package clientstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
)

// ErrSessionNotFound is returned by [SessionStore.Load] when no session has
// been saved yet or the cache has been cleared.
var ErrSessionNotFound = errors.New("local session not found")

// Session is the cached login state of the CLI client.
type Session struct {
	Token   string
	BaseURL string
	SavedAt time.Time
}

// SessionStore saves, loads and clears the single cached CLI session.
type SessionStore interface {
	Save(ctx context.Context, session Session) error
	Load(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
	Close() error
}

type sqliteSessionStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSessionStore opens (and creates, if missing) the SQLite session cache at
// dbPath and ensures its schema exists. An empty dbPath selects an in-memory
// database, which lives only for the duration of the process.
func NewSessionStore(ctx context.Context, dbPath string, log *logger.Logger) (SessionStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	if dbPath != ":memory:" {
		if err := createLocalDBFileIfNotExists(dbPath); err != nil {
			log.Err(err).Str("func", "NewSessionStore").Msg("error creating session database file")
			return nil, fmt.Errorf("error creating session database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error connecting session database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session schema")
		return nil, fmt.Errorf("error creating session schema: %w", err)
	}

	return &sqliteSessionStore{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Save stores session as the single cached row, replacing any previous one.
func (s *sqliteSessionStore) Save(ctx context.Context, session Session) error {
	log := logger.FromContext(ctx)

	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, saveSession, session.Token, session.BaseURL, savedAt)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSessionStore.Save").
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Load returns the cached session, or [ErrSessionNotFound] if none exists.
func (s *sqliteSessionStore) Load(ctx context.Context) (Session, error) {
	log := logger.FromContext(ctx)

	var session Session
	row := s.db.QueryRowContext(ctx, getSession)

	scanErr := row.Scan(&session.Token, &session.BaseURL, &session.SavedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sqliteSessionStore.Load").
			Msg("failed to scan session row")
		return Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

// Clear removes the cached session. Clearing an empty cache is not an error.
func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.db.ExecContext(ctx, deleteSession)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSessionStore.Clear").
			Msg("failed to execute delete for session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
