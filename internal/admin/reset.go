// Package admin provides administrative operations for database management.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/seeder/internal/core"
	"github.com/JonMunkholm/seeder/internal/logging"
)

// ResetTimeout is the default maximum duration for database reset operations.
const ResetTimeout = 30 * time.Second

// ResetDbs handles database reset operations.
type ResetDbs struct {
	Stores  map[core.Kind]core.Store
	Timeout time.Duration
}

type dbResetFn func(ctx context.Context) error

// ResetAll drops and recreates every registered table, in registry order.
// This is a destructive operation - use with caution.
func (r *ResetDbs) ResetAll(ctx context.Context) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = ResetTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger := logging.FromContext(ctx)

	var resets []dbResetFn
	for _, def := range core.All() {
		store, ok := r.Stores[def.Info.Kind]
		if !ok {
			return fmt.Errorf("reset %s: no store configured", def.Info.Key)
		}
		cols := strings.Join(def.Columns(), ", ")
		resets = append(resets, func(ctx context.Context) error {
			if err := store.Reset(ctx); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("%s created with fields (%s)", store.Table(), cols),
				"table", store.Table())
			return nil
		})
	}

	return r.runResets(ctx, resets)
}

func (r *ResetDbs) runResets(ctx context.Context, resets []dbResetFn) error {
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}
	return nil
}
