package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/dimaum1001/financas-web/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CategoryService exposes per-user category listing and explicit creation.
// Implicit creation from transaction entry goes through TransactionService.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

// List returns the user's categories of the given type, name-ascending.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, tipo models.Type) ([]*models.Category, error) {
	if !tipo.Valid() {
		return nil, common.ErrorValidation
	}
	result, err := s.repomanager.Categories(s.db).ListByUserAndType(ctx, userID, tipo)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return result, nil
}

// Create adds a category for the user. Existing (name, type) pairs fail
// with common.ErrorAlreadyExists, whether caught by the pre-check or by
// the unique index when two creates race.
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name string, tipo models.Type) (*models.Category, error) {
	if name == "" || !tipo.Valid() {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Categories(s.db)
	exists, err := repo.Exists(ctx, userID, name, tipo)
	if err != nil {
		return nil, fmt.Errorf("error checking category: %w", err)
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	category := &models.Category{Name: name, Type: tipo, UserID: userID}
	created, err := repo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	return created, nil
}
