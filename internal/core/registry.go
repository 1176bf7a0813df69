package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[Kind]TableDefinition)
	registryMu sync.RWMutex
)

// Register adds a table definition to the registry.
// Panics if a table for the same kind is already registered.
func Register(def TableDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Kind]; exists {
		panic(fmt.Sprintf("table already registered: %s", def.Info.Kind))
	}
	if def.Info.File == "" && def.Info.Key != "" {
		def.Info.File = def.Info.Key + ".db"
	}

	registry[def.Info.Kind] = def
}

// Get returns the table definition for a kind.
// Returns false if not found.
func Get(kind Kind) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[kind]
	return def, ok
}

// All returns all registered table definitions.
// Sorted by position then by key for consistent ordering.
func All() []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TableDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Position != result[j].Info.Position {
			return result[i].Info.Position < result[j].Info.Position
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// TableCount returns the number of registered tables.
func TableCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered tables.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[Kind]TableDefinition)
}
