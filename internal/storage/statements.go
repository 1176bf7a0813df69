package storage

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/seeder/internal/core"
)

// statements holds the SQL for one table, rendered once per dialect.
type statements struct {
	drop   string
	create string
	insert string
	get    string
	count  string
}

func buildStatements(def core.TableDefinition, d dialect) statements {
	table := def.Info.Key
	cols := def.Columns()

	defs := make([]string, len(def.FieldSpecs))
	placeholders := make([]string, len(def.FieldSpecs))
	key := "id"
	for i, spec := range def.FieldSpecs {
		defs[i] = spec.Name + " " + d.columnType(spec)
		placeholders[i] = d.placeholder(i + 1)
		if spec.PrimaryKey {
			key = spec.Name
		}
	}

	return statements{
		drop:   fmt.Sprintf("DROP TABLE IF EXISTS %s", table),
		create: fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", ")),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(cols, ", "), strings.Join(placeholders, ", ")),
		get: fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
			strings.Join(cols, ", "), table, key, d.placeholder(1)),
		count: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}
}
