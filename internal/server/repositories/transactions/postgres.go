// Package transactions provides the PostgreSQL-backed transaction
// repository. Every query is scoped by the owning user id.
package transactions

import (
	"context"
	"fmt"

	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements transaction storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the transaction and fills its generated id.
func (r *PostgresRepository) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query :=
		`INSERT INTO transacoes (descricao, valor, tipo, data, categoria, usuario_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		transaction.Description, transaction.Amount, transaction.Type,
		transaction.Date, transaction.Category, transaction.UserID).Scan(&transaction.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transaction, nil
}

// ListByUser returns all of the user's transactions, most recent date first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query :=
		`SELECT id, descricao, valor, tipo, data, categoria, usuario_id FROM transacoes
		 WHERE usuario_id = $1
		 ORDER BY data DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.Description, &item.Amount, &item.Type,
			&item.Date, &item.Category, &item.UserID,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
