package tables

import (
	"fmt"

	"github.com/JonMunkholm/seeder/internal/core"
)

func init() {
	registerProducts()
}

func registerProducts() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Kind:     core.KindProduct,
			Key:      "products",
			File:     "products.db",
			Position: 2,
		},
		FieldSpecs: []core.FieldSpec{
			{Name: "id", Type: core.FieldInteger, PrimaryKey: true},
			{Name: "name", Type: core.FieldText},
			{Name: "price", Type: core.FieldReal},
		},
		Values: func(rec core.Record) ([]any, error) {
			p, err := asProduct(rec)
			if err != nil {
				return nil, err
			}
			price, err := core.DecimalOrZero(p.Price)
			if err != nil {
				return nil, fmt.Errorf("products: price %q: %w", p.Price.String, err)
			}
			return []any{p.ID, p.Name, price}, nil
		},
		Scan: func(scan func(dest ...any) error) (core.Record, error) {
			var (
				p     core.Product
				price float64
			)
			if err := scan(&p.ID, &p.Name, &price); err != nil {
				return nil, err
			}
			p.Price = core.Supplied(core.FormatDecimal(price))
			return p, nil
		},
		Confirm: func(rec core.Record) string {
			p, _ := asProduct(rec)
			return "Inserted product " + p.Name
		},
	})
}

func asProduct(rec core.Record) (core.Product, error) {
	p, ok := rec.(core.Product)
	if !ok {
		return core.Product{}, fmt.Errorf("products: unexpected record type %T", rec)
	}
	return p, nil
}
