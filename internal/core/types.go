package core

import (
	"context"
	"fmt"
	"time"
)

// Kind identifies an entity kind. Its value is the label used in outcome strings.
type Kind string

const (
	KindUser    Kind = "User"
	KindProduct Kind = "Product"
	KindOrder   Kind = "Order"
)

// Record is a single demo record of some entity kind.
type Record interface {
	Kind() Kind
	RecordID() int64
}

// Store is the persistent table backing one entity kind.
// Implementations open a fresh connection per call.
type Store interface {
	// Reset drops and recreates the table with its fixed column set.
	Reset(ctx context.Context) error
	// Insert adds a single row keyed by the record ID.
	// Returns an error wrapping ErrDuplicateID if the ID already exists.
	Insert(ctx context.Context, rec Record) error
	// Get returns the stored row for id, or ErrNotFound.
	Get(ctx context.Context, id int64) (Record, error)
	// Count returns the number of stored rows.
	Count(ctx context.Context) (int, error)
	// Table returns the table name.
	Table() string
}

// FieldType represents the storage type of a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldReal
)

// FieldSpec defines a single table column.
type FieldSpec struct {
	Name       string    // Column name
	Type       FieldType // Storage type
	PrimaryKey bool      // Column is the unique key
}

// TableInfo contains descriptive information about a table.
type TableInfo struct {
	Kind     Kind   // Entity kind stored in the table
	Key      string // Table name: "users"
	File     string // SQLite file name: "users.db"
	Position int    // Submission and reset order
}

// ValuesFunc converts a validated record into column values, in FieldSpecs order.
type ValuesFunc func(rec Record) ([]any, error)

// ScanFunc builds a record from a stored row. scan has the signature of Row.Scan.
type ScanFunc func(scan func(dest ...any) error) (Record, error)

// ConfirmFunc returns the success confirmation for an inserted record.
type ConfirmFunc func(rec Record) string

// TableDefinition contains everything needed to persist and report one entity kind.
type TableDefinition struct {
	Info       TableInfo
	FieldSpecs []FieldSpec
	Values     ValuesFunc
	Scan       ScanFunc
	Confirm    ConfirmFunc
}

// Columns returns the column names in FieldSpecs order.
func (t TableDefinition) Columns() []string {
	cols := make([]string, len(t.FieldSpecs))
	for i, spec := range t.FieldSpecs {
		cols[i] = spec.Name
	}
	return cols
}

// Status is the result class of processing one record.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
	StatusError   Status = "Error"
)

// Outcome is the per-record result produced by the insertion worker.
type Outcome struct {
	Kind    Kind
	ID      int64
	Status  Status
	Message string
}

// String renders the outcome as "[<Kind> ID <id>] <Status>: <message>".
func (o Outcome) String() string {
	return fmt.Sprintf("[%s ID %d] %s: %s", o.Kind, o.ID, o.Status, o.Message)
}

// Dataset is the injected list of records, one sequence per entity kind.
type Dataset struct {
	Users    []User
	Products []Product
	Orders   []Order
}

// Records returns all records in submission order: users, then products, then orders.
func (d Dataset) Records() []Record {
	out := make([]Record, 0, len(d.Users)+len(d.Products)+len(d.Orders))
	for _, u := range d.Users {
		out = append(out, u)
	}
	for _, p := range d.Products {
		out = append(out, p)
	}
	for _, o := range d.Orders {
		out = append(out, o)
	}
	return out
}

// KindSummary counts outcomes for one entity kind.
type KindSummary struct {
	Kind    Kind
	Success int
	Failed  int
	Error   int
}

// Total returns the number of outcomes counted.
func (s KindSummary) Total() int {
	return s.Success + s.Failed + s.Error
}

// Report contains the final result of a seeding run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Outcomes  []Outcome
}

// Lines returns the outcome strings in submission order.
func (r Report) Lines() []string {
	lines := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		lines[i] = o.String()
	}
	return lines
}

// Summary returns per-kind counts, ordered by first appearance in the report.
func (r Report) Summary() []KindSummary {
	var order []Kind
	counts := make(map[Kind]*KindSummary)
	for _, o := range r.Outcomes {
		s, ok := counts[o.Kind]
		if !ok {
			s = &KindSummary{Kind: o.Kind}
			counts[o.Kind] = s
			order = append(order, o.Kind)
		}
		switch o.Status {
		case StatusSuccess:
			s.Success++
		case StatusFailed:
			s.Failed++
		default:
			s.Error++
		}
	}

	result := make([]KindSummary, len(order))
	for i, k := range order {
		result[i] = *counts[k]
	}
	return result
}
