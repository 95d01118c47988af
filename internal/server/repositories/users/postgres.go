// Package users provides the PostgreSQL-backed user repository. Email
// lookups are case-sensitive, matching how the address was stored.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements user storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user row. The caller supplies the UUID; the database
// fills criado_em. Duplicate emails map to common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO usuarios (id, nome, email, senha)
		 VALUES ($1, $2, $3, $4)
		 RETURNING criado_em
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash).Scan(&user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByEmail returns the user with the exact email or common.ErrorNotFound.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, nome, email, senha, criado_em FROM usuarios
		 WHERE email = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID returns the user with the given id or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query :=
		`SELECT id, nome, email, senha, criado_em FROM usuarios
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
