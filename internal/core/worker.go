package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/seeder/internal/logging"
)

// ReasonDuplicateID is the outcome message for a uniqueness violation.
const ReasonDuplicateID = "ID already exists"

// Process validates rec and, if valid, inserts it into its kind's store.
// Every result, including a panic, is captured in the returned Outcome.
func (s *Service) Process(ctx context.Context, rec Record) (out Outcome) {
	start := time.Now()
	out = Outcome{Kind: rec.Kind(), ID: rec.RecordID()}
	logger := logging.WithFields(ctx, "kind", out.Kind, "id", out.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("record processing panicked", "panic", r)
			out.Status = StatusError
			out.Message = fmt.Sprintf("internal error: %v", r)
		}
		s.metrics.ObserveOutcome(out.Kind, out.Status, time.Since(start))
	}()

	if err := Validate(rec); err != nil {
		var ve ValidationError
		if errors.As(err, &ve) {
			out.Status = StatusFailed
			out.Message = ve.Message
			logger.Debug("record rejected", "field", ve.Field, "reason", ve.Message)
			return out
		}
		out.Status = StatusError
		out.Message = err.Error()
		return out
	}

	def, ok := Get(out.Kind)
	store, hasStore := s.stores[out.Kind]
	if !ok || !hasStore {
		out.Status = StatusError
		out.Message = fmt.Sprintf("No table registered for %s", out.Kind)
		return out
	}

	err := store.Insert(ctx, rec)
	switch {
	case err == nil:
		out.Status = StatusSuccess
		out.Message = def.Confirm(rec)
		logger.Debug("record inserted", "table", store.Table())
	case errors.Is(err, ErrDuplicateID):
		out.Status = StatusFailed
		out.Message = ReasonDuplicateID
		logger.Debug("duplicate record", "table", store.Table())
	default:
		out.Status = StatusError
		out.Message = FormatStoreError(err)
		if IsKnownError(err) {
			logger.Warn("insert failed", "table", store.Table(), "error", err)
		} else {
			logger.Error("insert failed with unrecognised error", "table", store.Table(), "error", err)
		}
	}
	return out
}
