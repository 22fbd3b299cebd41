package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db    *sql.DB
	clock clockwork.Clock
}

type Option func(*SQLite)

// WithClock sets the clock used to stamp rows
func WithClock(clock clockwork.Clock) Option {
	return func(s *SQLite) {
		s.clock = clock
	}
}

// New creates a new sqlite database given a path to the database file.
// Foreign keys are enforced and the pool is limited to a single connection so writers never contend.
func New(ctx context.Context, filePath string, opts ...Option) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dsn(filePath))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{
		db:    db,
		clock: clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func dsn(filePath string) string {
	sep := "?"
	if strings.Contains(filePath, "?") {
		sep = "&"
	}

	return filePath + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// RunMigrations applies any pending schema migrations
func (s *SQLite) RunMigrations(ctx context.Context) error {
	return runMigrations(ctx, s.db)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

// handleQuery runs a statement that returns rows, such as an upsert with RETURNING, in its own transaction
func (s *SQLite) handleQuery(ctx context.Context, stmt sqlite.Statement, dest any) error {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", zap.Error(err))
		return err
	}

	err = stmt.QueryContext(ctx, tx, dest)
	if err != nil {
		log.Debugw("failed to execute query", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// affected reports whether a statement changed at least one row
func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
