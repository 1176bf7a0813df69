package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "duplicate key maps correctly",
			err:         errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey"`),
			wantCode:    "DB001",
			wantMessage: "A record with this ID already exists",
		},
		{
			name:        "sqlite unique constraint maps correctly",
			err:         errors.New("constraint failed: UNIQUE constraint failed: users.id (1555)"),
			wantCode:    "DB002",
			wantMessage: "This value must be unique but already exists",
		},
		{
			name:        "sqlite busy maps to lock",
			err:         errors.New("database is locked (5) (SQLITE_BUSY)"),
			wantCode:    "DB003",
			wantMessage: "Database was busy with conflicting operations",
		},
		{
			name:        "postgres lock timeout maps to lock",
			err:         errors.New("ERROR: canceling statement due to lock timeout (SQLSTATE 55P03)"),
			wantCode:    "DB003",
			wantMessage: "Database was busy with conflicting operations",
		},
		{
			name:        "cancelled context",
			err:         context.Canceled,
			wantCode:    "RUN001",
			wantMessage: "Run was cancelled",
		},
		{
			name:        "deadline before generic timeout",
			err:         context.DeadlineExceeded,
			wantCode:    "RUN002",
			wantMessage: "Run deadline passed",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp: connection refused"),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "unable to open sqlite file",
			err:         errors.New("unable to open database file: out of memory (14)"),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("i/o timeout"),
			wantCode:    "DB006",
			wantMessage: "Operation timed out",
		},
		{
			name:        "missing sqlite table",
			err:         errors.New("SQL logic error: no such table: users (1)"),
			wantCode:    "TBL001",
			wantMessage: "Table has not been created",
		},
		{
			name:        "missing postgres relation",
			err:         errors.New(`ERROR: relation "users" does not exist (SQLSTATE 42P01)`),
			wantCode:    "TBL001",
			wantMessage: "Table has not been created",
		},
		{
			name:        "wrapped error still matches",
			err:         fmt.Errorf("insert users: %w", errors.New("database is locked")),
			wantCode:    "DB003",
			wantMessage: "Database was busy with conflicting operations",
		},
		{
			name:        "unknown error uses fallback",
			err:         errors.New("something strange happened"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected storage error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"lock", errors.New("database is locked"), "Database was busy with conflicting operations (Code: DB003)"},
		{"unknown", errors.New("boom"), "An unexpected storage error occurred (Code: ERR000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStoreError(tt.err); got != tt.want {
				t.Errorf("FormatStoreError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKnownError(t *testing.T) {
	if IsKnownError(nil) {
		t.Error("IsKnownError(nil) = true")
	}
	if !IsKnownError(errors.New("connection reset by peer")) {
		t.Error("connection reset should be known")
	}
	if IsKnownError(errors.New("unrecognised")) {
		t.Error("unrecognised error should not be known")
	}
}

func TestNewStoreError(t *testing.T) {
	if NewStoreError("users", "insert", nil) != nil {
		t.Error("NewStoreError(nil) should be nil")
	}

	dup := fmt.Errorf("users id 1: %w", ErrDuplicateID)
	if got := NewStoreError("users", "insert", dup); got != dup {
		t.Errorf("duplicate error was wrapped: %v", got)
	}

	inner := NewStoreError("users", "insert", errors.New("database is locked"))
	if got := NewStoreError("users", "connect", inner); got != inner {
		t.Errorf("existing StoreError was rewrapped: %v", got)
	}

	var se *StoreError
	if !errors.As(inner, &se) {
		t.Fatalf("NewStoreError() = %T, want *StoreError", inner)
	}
	if want := "insert users: database is locked"; se.Error() != want {
		t.Errorf("Error() = %q, want %q", se.Error(), want)
	}
}
