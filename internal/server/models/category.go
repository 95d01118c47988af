package models

import "github.com/google/uuid"

// Type discriminates incomes from expenses. The wire values are the
// Portuguese labels the product has always used.
type Type string

const (
	TypeIncome  Type = "receita"
	TypeExpense Type = "despesa"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is per-user reference data. Transactions point at it by name
// only, so renaming or removing a category never breaks history.
// (Name, Type, UserID) is unique per user.
type Category struct {
	ID     int64
	Name   string
	Type   Type
	UserID uuid.UUID
}
