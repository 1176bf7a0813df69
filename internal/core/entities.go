package core

import "database/sql"

// User is a demo user record.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Kind implements Record.
func (User) Kind() Kind { return KindUser }

// RecordID implements Record.
func (u User) RecordID() int64 { return u.ID }

// Product is a demo product record.
// Price holds the value as supplied; an invalid NullString means absent.
type Product struct {
	ID    int64
	Name  string
	Price sql.NullString
}

// Kind implements Record.
func (Product) Kind() Kind { return KindProduct }

// RecordID implements Record.
func (p Product) RecordID() int64 { return p.ID }

// Order is a demo order record. UserID and ProductID are not checked
// against the users and products tables.
// Quantity holds the value as supplied; an invalid NullString means absent.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  sql.NullString
}

// Kind implements Record.
func (Order) Kind() Kind { return KindOrder }

// RecordID implements Record.
func (o Order) RecordID() int64 { return o.ID }

// Supplied returns a present optional value holding s exactly as given.
func Supplied(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
