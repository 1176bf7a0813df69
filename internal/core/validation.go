package core

// validation.go provides record-level validation before insertion.
//
// Each entity kind has a single rule set. A record either passes or fails with
// the first rule it breaks; the failure message is the reason reported in the
// outcome string. Validation never touches storage.

import "fmt"

// Validation failure reasons.
const (
	ReasonMissingNameOrEmail = "Missing name or email"
	ReasonInvalidPrice       = "Invalid price format"
	ReasonNegativePrice      = "Price cannot be negative"
	ReasonInvalidQuantity    = "Invalid quantity format"
	ReasonNonPositiveQty     = "Quantity must be positive"
)

// ValidationError represents a record that broke a domain rule.
type ValidationError struct {
	Field   string // Field name
	Value   string // The invalid value
	Message string // Human-readable reason
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidateUser requires a non-empty name and email. Values are not trimmed:
// a name of spaces is non-empty.
func ValidateUser(u User) error {
	if u.Name == "" {
		return ValidationError{Field: "name", Value: u.Name, Message: ReasonMissingNameOrEmail}
	}
	if u.Email == "" {
		return ValidationError{Field: "email", Value: u.Email, Message: ReasonMissingNameOrEmail}
	}
	return nil
}

// ValidateProduct requires a parseable, non-negative price. An absent price is 0.
func ValidateProduct(p Product) error {
	price, err := DecimalOrZero(p.Price)
	if err != nil {
		return ValidationError{Field: "price", Value: p.Price.String, Message: ReasonInvalidPrice}
	}
	if price < 0 {
		return ValidationError{Field: "price", Value: p.Price.String, Message: ReasonNegativePrice}
	}
	return nil
}

// ValidateOrder requires a parseable, positive integer quantity. An absent quantity is 0.
func ValidateOrder(o Order) error {
	qty, err := IntegerOrZero(o.Quantity)
	if err != nil {
		return ValidationError{Field: "quantity", Value: o.Quantity.String, Message: ReasonInvalidQuantity}
	}
	if qty <= 0 {
		return ValidationError{Field: "quantity", Value: o.Quantity.String, Message: ReasonNonPositiveQty}
	}
	return nil
}

// Validate checks rec against the rules of its kind.
// Returns nil if valid, a ValidationError if a rule is broken, or a plain
// error if the record type is not one of the known entity kinds.
func Validate(rec Record) error {
	switch r := rec.(type) {
	case User:
		return ValidateUser(r)
	case Product:
		return ValidateProduct(r)
	case Order:
		return ValidateOrder(r)
	default:
		return fmt.Errorf("unknown record type %T", rec)
	}
}
