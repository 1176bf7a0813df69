// Package demo holds the fixed demo dataset seeded by the CLI.
package demo

import "github.com/JonMunkholm/seeder/internal/core"

// Dataset returns the demo records. It includes deliberately invalid records
// (a user without a name, a negative price, non-positive quantities) and an
// order for a user that does not exist.
func Dataset() core.Dataset {
	return core.Dataset{
		Users: []core.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
			{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
			{ID: 4, Name: "David", Email: "david@example.com"},
			{ID: 5, Name: "Eve", Email: "eve@example.com"},
			{ID: 6, Name: "Frank", Email: "frank@example.com"},
			{ID: 7, Name: "Grace", Email: "grace@example.com"},
			{ID: 8, Name: "Alice", Email: "alice@example.com"},
			{ID: 9, Name: "Henry", Email: "henry@example.com"},
			{ID: 10, Name: "", Email: "jane@example.com"},
		},
		Products: []core.Product{
			{ID: 1, Name: "Laptop", Price: core.Supplied("1000.00")},
			{ID: 2, Name: "Smartphone", Price: core.Supplied("700.00")},
			{ID: 3, Name: "Headphones", Price: core.Supplied("150.00")},
			{ID: 4, Name: "Monitor", Price: core.Supplied("300.00")},
			{ID: 5, Name: "Keyboard", Price: core.Supplied("50.00")},
			{ID: 6, Name: "Mouse", Price: core.Supplied("30.00")},
			{ID: 7, Name: "Laptop", Price: core.Supplied("1200.00")},
			{ID: 8, Name: "Smartwatch", Price: core.Supplied("250.00")},
			{ID: 9, Name: "Gaming Chair", Price: core.Supplied("500.00")},
			{ID: 10, Name: "Earbuds", Price: core.Supplied("-50.00")},
		},
		Orders: []core.Order{
			{ID: 1, UserID: 1, ProductID: 1, Quantity: core.Supplied("2")},
			{ID: 2, UserID: 2, ProductID: 2, Quantity: core.Supplied("1")},
			{ID: 3, UserID: 3, ProductID: 3, Quantity: core.Supplied("5")},
			{ID: 4, UserID: 4, ProductID: 4, Quantity: core.Supplied("1")},
			{ID: 5, UserID: 5, ProductID: 5, Quantity: core.Supplied("3")},
			{ID: 6, UserID: 6, ProductID: 6, Quantity: core.Supplied("4")},
			{ID: 7, UserID: 7, ProductID: 7, Quantity: core.Supplied("2")},
			{ID: 8, UserID: 8, ProductID: 8, Quantity: core.Supplied("0")},
			{ID: 9, UserID: 9, ProductID: 1, Quantity: core.Supplied("-1")},
			{ID: 10, UserID: 11, ProductID: 2, Quantity: core.Supplied("2")},
		},
	}
}
