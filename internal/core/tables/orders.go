package tables

import (
	"fmt"
	"strconv"

	"github.com/JonMunkholm/seeder/internal/core"
)

func init() {
	registerOrders()
}

// user_id and product_id are stored as plain integers; nothing checks that
// the referenced user or product exists.
func registerOrders() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Kind:     core.KindOrder,
			Key:      "orders",
			File:     "orders.db",
			Position: 3,
		},
		FieldSpecs: []core.FieldSpec{
			{Name: "id", Type: core.FieldInteger, PrimaryKey: true},
			{Name: "user_id", Type: core.FieldInteger},
			{Name: "product_id", Type: core.FieldInteger},
			{Name: "quantity", Type: core.FieldInteger},
		},
		Values: func(rec core.Record) ([]any, error) {
			o, err := asOrder(rec)
			if err != nil {
				return nil, err
			}
			qty, err := core.IntegerOrZero(o.Quantity)
			if err != nil {
				return nil, fmt.Errorf("orders: quantity %q: %w", o.Quantity.String, err)
			}
			return []any{o.ID, o.UserID, o.ProductID, qty}, nil
		},
		Scan: func(scan func(dest ...any) error) (core.Record, error) {
			var (
				o   core.Order
				qty int64
			)
			if err := scan(&o.ID, &o.UserID, &o.ProductID, &qty); err != nil {
				return nil, err
			}
			o.Quantity = core.Supplied(strconv.FormatInt(qty, 10))
			return o, nil
		},
		Confirm: func(rec core.Record) string {
			o, _ := asOrder(rec)
			return fmt.Sprintf("Inserted order for User ID %d", o.UserID)
		},
	})
}

func asOrder(rec core.Record) (core.Order, error) {
	o, ok := rec.(core.Order)
	if !ok {
		return core.Order{}, fmt.Errorf("orders: unexpected record type %T", rec)
	}
	return o, nil
}
