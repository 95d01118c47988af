package transactions

import (
	"context"

	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
}
