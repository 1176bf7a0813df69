package core

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		rec        Record
		wantReason string // "" means valid
		wantField  string
	}{
		// Users
		{name: "valid user", rec: User{ID: 1, Name: "Alice", Email: "alice@example.com"}},
		{name: "user missing name", rec: User{ID: 10, Email: "jane@example.com"}, wantReason: ReasonMissingNameOrEmail, wantField: "name"},
		{name: "user name of spaces is present", rec: User{ID: 11, Name: "   ", Email: "x@example.com"}},
		{name: "user quote-only name is present", rec: User{ID: 13, Name: "''", Email: "q@example.com"}},
		{name: "user missing email", rec: User{ID: 12, Name: "Bob"}, wantReason: ReasonMissingNameOrEmail, wantField: "email"},

		// Products
		{name: "valid product", rec: Product{ID: 1, Name: "Laptop", Price: Supplied("1000.00")}},
		{name: "zero price", rec: Product{ID: 2, Name: "Free", Price: Supplied("0")}},
		{name: "absent price is zero", rec: Product{ID: 3, Name: "Sample"}},
		{name: "negative price", rec: Product{ID: 10, Name: "Earbuds", Price: Supplied("-50.00")}, wantReason: ReasonNegativePrice, wantField: "price"},
		{name: "unparseable price", rec: Product{ID: 4, Name: "Odd", Price: Supplied("ten")}, wantReason: ReasonInvalidPrice, wantField: "price"},
		{name: "NaN price", rec: Product{ID: 5, Name: "Odd", Price: Supplied("NaN")}, wantReason: ReasonInvalidPrice, wantField: "price"},
		{name: "quoted price", rec: Product{ID: 6, Name: "Odd", Price: Supplied("'5'")}, wantReason: ReasonInvalidPrice, wantField: "price"},
		{name: "supplied empty price", rec: Product{ID: 7, Name: "Odd", Price: Supplied("")}, wantReason: ReasonInvalidPrice, wantField: "price"},

		// Orders
		{name: "valid order", rec: Order{ID: 1, UserID: 1, ProductID: 1, Quantity: Supplied("2")}},
		{name: "order to unknown user is still valid", rec: Order{ID: 10, UserID: 11, ProductID: 2, Quantity: Supplied("2")}},
		{name: "zero quantity", rec: Order{ID: 8, UserID: 8, ProductID: 8, Quantity: Supplied("0")}, wantReason: ReasonNonPositiveQty, wantField: "quantity"},
		{name: "negative quantity", rec: Order{ID: 9, UserID: 9, ProductID: 1, Quantity: Supplied("-1")}, wantReason: ReasonNonPositiveQty, wantField: "quantity"},
		{name: "absent quantity", rec: Order{ID: 11, UserID: 1, ProductID: 1}, wantReason: ReasonNonPositiveQty, wantField: "quantity"},
		{name: "fractional quantity", rec: Order{ID: 12, UserID: 1, ProductID: 1, Quantity: Supplied("1.5")}, wantReason: ReasonInvalidQuantity, wantField: "quantity"},
		{name: "quoted quantity", rec: Order{ID: 13, UserID: 1, ProductID: 1, Quantity: Supplied(`"3"`)}, wantReason: ReasonInvalidQuantity, wantField: "quantity"},
		{name: "supplied empty quantity", rec: Order{ID: 14, UserID: 1, ProductID: 1, Quantity: Supplied("")}, wantReason: ReasonInvalidQuantity, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			if tt.wantReason == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if ve.Message != tt.wantReason {
				t.Errorf("reason = %q, want %q", ve.Message, tt.wantReason)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

type unknownRecord struct{}

func (unknownRecord) Kind() Kind      { return "Widget" }
func (unknownRecord) RecordID() int64 { return 1 }

func TestValidate_UnknownType(t *testing.T) {
	err := Validate(unknownRecord{})
	if err == nil {
		t.Fatal("Validate() accepted an unknown record type")
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		t.Errorf("unknown type reported as a validation failure: %v", err)
	}
}
