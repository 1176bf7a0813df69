package tables

import (
	"fmt"

	"github.com/JonMunkholm/seeder/internal/core"
)

func init() {
	registerUsers()
}

func registerUsers() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Kind:     core.KindUser,
			Key:      "users",
			File:     "users.db",
			Position: 1,
		},
		FieldSpecs: []core.FieldSpec{
			{Name: "id", Type: core.FieldInteger, PrimaryKey: true},
			{Name: "name", Type: core.FieldText},
			{Name: "email", Type: core.FieldText},
		},
		Values: func(rec core.Record) ([]any, error) {
			u, err := asUser(rec)
			if err != nil {
				return nil, err
			}
			return []any{u.ID, u.Name, u.Email}, nil
		},
		Scan: func(scan func(dest ...any) error) (core.Record, error) {
			var u core.User
			if err := scan(&u.ID, &u.Name, &u.Email); err != nil {
				return nil, err
			}
			return u, nil
		},
		Confirm: func(rec core.Record) string {
			u, _ := asUser(rec)
			return "Inserted user " + u.Name
		},
	})
}

func asUser(rec core.Record) (core.User, error) {
	u, ok := rec.(core.User)
	if !ok {
		return core.User{}, fmt.Errorf("users: unexpected record type %T", rec)
	}
	return u, nil
}
