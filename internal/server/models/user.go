package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. PasswordHash stores the bcrypt hash, never the
// plaintext. Deleting a user cascades to its categories and transactions.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
