// Package storage provides the per-table persistent stores behind the seeding
// pipeline. Each Table opens a fresh connection for every operation and closes
// it before returning; there is no connection pool.
//
// Two dialects are supported: SQLite (the default, one database file per
// table) and PostgreSQL (one table per kind in a shared database).
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
)

// Driver identifies a concrete storage implementation.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file per table
	DriverPostgres Driver = "postgres" // PostgreSQL server
)

// DefaultBusyTimeout bounds how long a connection waits on a locked table.
const DefaultBusyTimeout = 5 * time.Second

// Options selects and configures a storage backend.
type Options struct {
	Driver      Driver
	DataDir     string        // SQLite: directory holding one file per table
	DatabaseURL string        // Postgres: connection string
	BusyTimeout time.Duration // Bounded wait for locks and connects
}

// Validate checks that the options name a usable backend.
func (o Options) Validate() error {
	switch o.Driver {
	case DriverSQLite, "":
		return nil
	case DriverPostgres:
		if o.DatabaseURL == "" {
			return errors.New("postgres driver requires a database URL")
		}
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", o.Driver)
	}
}

func (o Options) busyTimeout() time.Duration {
	if o.BusyTimeout <= 0 {
		return DefaultBusyTimeout
	}
	return o.BusyTimeout
}

// session is one open connection, closed after a single store operation.
type session interface {
	Exec(ctx context.Context, query string, args ...any) error
	QueryRow(ctx context.Context, query string, args ...any) rowScanner
	Close(ctx context.Context) error
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dialect hides the differences between database engines.
type dialect interface {
	connect(ctx context.Context) (session, error)
	placeholder(n int) string
	columnType(spec core.FieldSpec) string
	isDuplicate(err error) bool
	isNoRows(err error) bool
}

// Table is the store for one entity kind. It implements core.Store.
type Table struct {
	def     core.TableDefinition
	dialect dialect
	stmts   statements
}

var _ core.Store = (*Table)(nil)

// Open creates the store for def using opts.
// No connection is made until the first operation.
func Open(opts Options, def core.TableDefinition) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var d dialect
	switch opts.Driver {
	case DriverPostgres:
		d = newPostgresDialect(opts.DatabaseURL, opts.busyTimeout())
	default:
		sd, err := newSQLiteDialect(opts.DataDir, def.Info.File, opts.busyTimeout())
		if err != nil {
			return nil, err
		}
		d = sd
	}

	return &Table{def: def, dialect: d, stmts: buildStatements(def, d)}, nil
}

// OpenAll creates one store per definition, keyed by kind.
func OpenAll(opts Options, defs []core.TableDefinition) (map[core.Kind]core.Store, error) {
	stores := make(map[core.Kind]core.Store, len(defs))
	for _, def := range defs {
		t, err := Open(opts, def)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", def.Info.Key, err)
		}
		stores[def.Info.Kind] = t
	}
	return stores, nil
}

// Table returns the table name.
func (t *Table) Table() string {
	return t.def.Info.Key
}

// Definition returns the table definition backing the store.
func (t *Table) Definition() core.TableDefinition {
	return t.def
}

// withSession opens a connection, runs fn, and always closes the connection.
func (t *Table) withSession(ctx context.Context, op string, fn func(s session) error) (err error) {
	s, err := t.dialect.connect(ctx)
	if err != nil {
		return core.NewStoreError(t.Table(), "connect", err)
	}
	defer func() {
		if cerr := s.Close(ctx); cerr != nil && err == nil {
			err = core.NewStoreError(t.Table(), "close", cerr)
		}
	}()

	return core.NewStoreError(t.Table(), op, fn(s))
}

// Reset drops and recreates the table. Calling it repeatedly is safe.
func (t *Table) Reset(ctx context.Context) error {
	return t.withSession(ctx, "reset", func(s session) error {
		if err := s.Exec(ctx, t.stmts.drop); err != nil {
			return fmt.Errorf("drop: %w", err)
		}
		if err := s.Exec(ctx, t.stmts.create); err != nil {
			return fmt.Errorf("create: %w", err)
		}
		return nil
	})
}

// Insert adds a single row for rec.
// A uniqueness violation returns an error wrapping core.ErrDuplicateID; any
// other failure returns a *core.StoreError.
func (t *Table) Insert(ctx context.Context, rec core.Record) error {
	if rec.Kind() != t.def.Info.Kind {
		return core.NewStoreError(t.Table(), "insert",
			fmt.Errorf("record kind %s does not belong in this table", rec.Kind()))
	}
	values, err := t.def.Values(rec)
	if err != nil {
		return core.NewStoreError(t.Table(), "encode", err)
	}

	return t.withSession(ctx, "insert", func(s session) error {
		if err := s.Exec(ctx, t.stmts.insert, values...); err != nil {
			if t.dialect.isDuplicate(err) {
				return fmt.Errorf("%s id %d: %w", t.Table(), rec.RecordID(), core.ErrDuplicateID)
			}
			return err
		}
		return nil
	})
}

// Get returns the stored record with the given id, or core.ErrNotFound.
func (t *Table) Get(ctx context.Context, id int64) (core.Record, error) {
	var rec core.Record
	err := t.withSession(ctx, "get", func(s session) error {
		r, err := t.def.Scan(s.QueryRow(ctx, t.stmts.get, id).Scan)
		if err != nil {
			if t.dialect.isNoRows(err) {
				return nil
			}
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s id %d: %w", t.Table(), id, core.ErrNotFound)
	}
	return rec, nil
}

// Count returns the number of rows in the table.
func (t *Table) Count(ctx context.Context) (int, error) {
	var n int
	err := t.withSession(ctx, "count", func(s session) error {
		return s.QueryRow(ctx, t.stmts.count).Scan(&n)
	})
	return n, err
}
