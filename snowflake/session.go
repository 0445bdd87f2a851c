package snowflake

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sprocketship/sprocketship/errors"
)

// Executor executes SQL statements against a warehouse. Session implements
// it; tests substitute a recorder.
type Executor interface {
	ExecContext(ctx context.Context, query string) error
}

// Session is a live warehouse session.
type Session struct {
	db      *sql.DB
	account string
}

// SessionOption configures Open.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	queryTag string
}

// WithQueryTag tags every statement of the session with the given
// QUERY_TAG, making deploy runs traceable in query history.
func WithQueryTag(tag string) SessionOption {
	return func(o *sessionOptions) { o.queryTag = tag }
}

// Open connects to the warehouse and verifies the connection. Connection
// failures come back as CLIErrors with guidance.
func Open(ctx context.Context, cfg *ConnectionConfig, opts ...SessionOption) (*Session, error) {
	var options sessionOptions
	for _, opt := range opts {
		opt(&options)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, errors.WrapConnectionError(err, cfg.Account)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.WrapConnectionError(err, cfg.Account)
	}

	session := &Session{db: db, account: cfg.Account}
	if options.queryTag != "" {
		stmt := fmt.Sprintf("ALTER SESSION SET QUERY_TAG = '%s'", EscapeString(options.queryTag))
		if err := session.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	return session, nil
}

// ExecContext implements Executor.
func (s *Session) ExecContext(ctx context.Context, query string) error {
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute statement: %w", err)
	}
	return nil
}

// Close releases the session.
func (s *Session) Close() error {
	return s.db.Close()
}
