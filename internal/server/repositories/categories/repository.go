package categories

import (
	"context"

	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	ListByUserAndType(ctx context.Context, userID uuid.UUID, tipo models.Type) ([]*models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Exists(ctx context.Context, userID uuid.UUID, name string, tipo models.Type) (bool, error)
	Ensure(ctx context.Context, userID uuid.UUID, name string, tipo models.Type) error
}
