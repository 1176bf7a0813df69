package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteDialect stores one table per database file.
type sqliteDialect struct {
	path string
	dsn  string
}

func newSQLiteDialect(dir, file string, busyTimeout time.Duration) (*sqliteDialect, error) {
	if dir == "" {
		dir = "."
	}
	if file == "" {
		return nil, errors.New("sqlite table has no file name")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dir, file)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeout.Milliseconds())
	return &sqliteDialect{path: path, dsn: dsn}, nil
}

func (d *sqliteDialect) connect(ctx context.Context) (session, error) {
	db, err := sql.Open("sqlite", d.dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return sqlSession{db: db}, nil
}

func (d *sqliteDialect) placeholder(int) string { return "?" }

func (d *sqliteDialect) columnType(spec core.FieldSpec) string {
	var t string
	switch spec.Type {
	case core.FieldInteger:
		t = "INTEGER"
	case core.FieldReal:
		t = "REAL"
	default:
		t = "TEXT"
	}
	if spec.PrimaryKey {
		t += " PRIMARY KEY"
	}
	return t
}

func (d *sqliteDialect) isDuplicate(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	// Primary result code only: fall back to the message.
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(strings.ToLower(se.Error()), "unique constraint failed")
}

func (d *sqliteDialect) isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// sqlSession adapts a single-connection *sql.DB to session.
type sqlSession struct {
	db *sql.DB
}

func (s sqlSession) Exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s sqlSession) QueryRow(ctx context.Context, query string, args ...any) rowScanner {
	return s.db.QueryRowContext(ctx, query, args...)
}

func (s sqlSession) Close(context.Context) error {
	return s.db.Close()
}
