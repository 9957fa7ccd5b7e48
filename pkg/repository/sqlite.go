package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/types"

	_ "modernc.org/sqlite"
)

// SQLite is the durable repository. Histories are stored as one JSON blob per
// session and overwritten wholesale, matching the adapter contract: two slots,
// last-write-wins, no transactional semantics.
type SQLite struct {
	db *sql.DB
}

var _ interfaces.Repository = &SQLite{}

func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.T(errs.TagDatabase), goerr.V("path", dbPath))
		}
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.T(errs.TagDatabase), goerr.V("path", dbPath))
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, goerr.Wrap(err, "failed to ping database", goerr.T(errs.TagDatabase))
	}

	r := &SQLite{db: db}
	if err := r.initSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SQLite) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS current_session (
		slot INTEGER PRIMARY KEY CHECK (slot = 1),
		id TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS histories (
		session_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := r.db.Exec(query); err != nil {
		return goerr.Wrap(err, "failed to create schema", goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}

func (r *SQLite) GetSession(ctx context.Context) (*chat.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, updated_at FROM current_session WHERE slot = 1`)

	var session chat.Session
	var createdAt, updatedAt int64
	err := row.Scan(&session.ID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan session row", goerr.T(errs.TagDatabase))
	}

	session.CreatedAt = time.Unix(createdAt, 0)
	session.UpdatedAt = time.Unix(updatedAt, 0)
	return &session, nil
}

func (r *SQLite) PutSession(ctx context.Context, session *chat.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO current_session (slot, id, created_at, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			id = excluded.id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		session.ID.String(), session.CreatedAt.Unix(), session.UpdatedAt.Unix())
	if err != nil {
		return goerr.Wrap(err, "failed to put session", goerr.T(errs.TagDatabase), goerr.V("session_id", session.ID))
	}
	return nil
}

func (r *SQLite) GetHistory(ctx context.Context, sessionID types.SessionID) (chat.History, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT payload FROM histories WHERE session_id = ?`, sessionID.String())

	var payload string
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan history row", goerr.T(errs.TagDatabase), goerr.V("session_id", sessionID))
	}

	var history chat.History
	if err := json.Unmarshal([]byte(payload), &history); err != nil {
		return nil, goerr.Wrap(err, "failed to decode history payload", goerr.T(errs.TagDatabase), goerr.V("session_id", sessionID))
	}
	return history, nil
}

func (r *SQLite) PutHistory(ctx context.Context, sessionID types.SessionID, history chat.History) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return goerr.Wrap(err, "failed to encode history", goerr.T(errs.TagDatabase), goerr.V("session_id", sessionID))
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO histories (session_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		sessionID.String(), string(payload), time.Now().Unix())
	if err != nil {
		return goerr.Wrap(err, "failed to put history", goerr.T(errs.TagDatabase), goerr.V("session_id", sessionID))
	}
	return nil
}

func (r *SQLite) DeleteHistory(ctx context.Context, sessionID types.SessionID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM histories WHERE session_id = ?`, sessionID.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete history", goerr.T(errs.TagDatabase), goerr.V("session_id", sessionID))
	}
	return nil
}
