package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// postgresDialect stores every table in one PostgreSQL database.
type postgresDialect struct {
	url         string
	busyTimeout time.Duration
}

func newPostgresDialect(url string, busyTimeout time.Duration) *postgresDialect {
	return &postgresDialect{url: url, busyTimeout: busyTimeout}
}

func (d *postgresDialect) connect(ctx context.Context) (session, error) {
	cfg, err := pgx.ParseConfig(d.url)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	cfg.ConnectTimeout = d.busyTimeout
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	cfg.RuntimeParams["lock_timeout"] = strconv.FormatInt(d.busyTimeout.Milliseconds(), 10)

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pgSession{conn: conn}, nil
}

func (d *postgresDialect) placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (d *postgresDialect) columnType(spec core.FieldSpec) string {
	var t string
	switch spec.Type {
	case core.FieldInteger:
		t = "BIGINT"
	case core.FieldReal:
		t = "DOUBLE PRECISION"
	default:
		t = "TEXT"
	}
	if spec.PrimaryKey {
		t += " PRIMARY KEY"
	}
	return t
}

func (d *postgresDialect) isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (d *postgresDialect) isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// pgSession adapts a single *pgx.Conn to session.
type pgSession struct {
	conn *pgx.Conn
}

func (s pgSession) Exec(ctx context.Context, query string, args ...any) error {
	_, err := s.conn.Exec(ctx, query, args...)
	return err
}

func (s pgSession) QueryRow(ctx context.Context, query string, args ...any) rowScanner {
	return s.conn.QueryRow(ctx, query, args...)
}

func (s pgSession) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}
