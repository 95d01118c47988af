package models

import "github.com/google/uuid"

// Transaction is a single income or expense record. Category is free text,
// not a foreign key; by convention it names a category of the same Type.
type Transaction struct {
	ID          int64
	Description *string
	Amount      float64
	Type        Type
	Date        Date
	Category    string
	UserID      uuid.UUID
}
