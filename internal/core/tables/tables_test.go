package tables

import (
	"testing"

	"github.com/JonMunkholm/seeder/internal/core"
)

func TestTablesRegistered(t *testing.T) {
	tests := []struct {
		kind    core.Kind
		key     string
		file    string
		columns []string
	}{
		{core.KindUser, "users", "users.db", []string{"id", "name", "email"}},
		{core.KindProduct, "products", "products.db", []string{"id", "name", "price"}},
		{core.KindOrder, "orders", "orders.db", []string{"id", "user_id", "product_id", "quantity"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			def, ok := core.Get(tt.kind)
			if !ok {
				t.Fatalf("%s not registered", tt.kind)
			}
			if def.Info.Key != tt.key || def.Info.File != tt.file {
				t.Errorf("Info = %+v, want key %q file %q", def.Info, tt.key, tt.file)
			}
			cols := def.Columns()
			if len(cols) != len(tt.columns) {
				t.Fatalf("Columns() = %v, want %v", cols, tt.columns)
			}
			for i := range cols {
				if cols[i] != tt.columns[i] {
					t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], tt.columns[i])
				}
			}
			if !def.FieldSpecs[0].PrimaryKey {
				t.Error("id is not the primary key")
			}
		})
	}
}

func TestValues(t *testing.T) {
	prod, _ := core.Get(core.KindProduct)
	vals, err := prod.Values(core.Product{ID: 2, Name: " Smartphone ", Price: core.Supplied("700.00")})
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if vals[0] != int64(2) || vals[1] != " Smartphone " || vals[2] != 700.0 {
		t.Errorf("Values() = %#v", vals)
	}

	ord, _ := core.Get(core.KindOrder)
	vals, err = ord.Values(core.Order{ID: 1, UserID: 1, ProductID: 3, Quantity: core.Supplied("5")})
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if vals[3] != int64(5) {
		t.Errorf("quantity value = %#v, want int64(5)", vals[3])
	}

	if _, err := ord.Values(core.User{ID: 1}); err == nil {
		t.Error("orders Values accepted a user record")
	}
}

func TestScanRoundTrip(t *testing.T) {
	prod, _ := core.Get(core.KindProduct)
	rec, err := prod.Scan(func(dest ...any) error {
		*dest[0].(*int64) = 4
		*dest[1].(*string) = "Monitor"
		*dest[2].(*float64) = 300
		return nil
	})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := core.Product{ID: 4, Name: "Monitor", Price: core.Supplied("300")}
	if rec != want {
		t.Errorf("Scan() = %+v, want %+v", rec, want)
	}
}
