package users

import (
	"context"

	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
