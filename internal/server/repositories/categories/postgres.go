// Package categories provides the PostgreSQL-backed category repository.
// Categories are per-user reference data keyed by (usuario_id, nome, tipo).
package categories

import (
	"context"
	"fmt"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements category storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUserAndType returns the user's categories of the given type,
// ordered by name.
func (r *PostgresRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, tipo models.Type) ([]*models.Category, error) {
	query :=
		`SELECT id, nome, tipo, usuario_id FROM categorias
		 WHERE usuario_id = $1 AND tipo = $2
		 ORDER BY nome
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, tipo)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		var item models.Category
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the category and fills its generated id. A concurrent
// duplicate surfaces as common.ErrorAlreadyExists via the unique index.
func (r *PostgresRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	query :=
		`INSERT INTO categorias (nome, tipo, usuario_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		category.Name, category.Type, category.UserID).Scan(&category.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

// Exists reports whether the user already has a category with this name
// and type.
func (r *PostgresRepository) Exists(ctx context.Context, userID uuid.UUID, name string, tipo models.Type) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM categorias
		   WHERE usuario_id = $1 AND nome = $2 AND tipo = $3
		 )
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, name, tipo).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Ensure inserts the category if absent. A duplicate, including one lost
// to a concurrent insert, is a no-op, never an error.
func (r *PostgresRepository) Ensure(ctx context.Context, userID uuid.UUID, name string, tipo models.Type) error {
	query :=
		`INSERT INTO categorias (nome, tipo, usuario_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (usuario_id, nome, tipo) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, name, tipo, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
