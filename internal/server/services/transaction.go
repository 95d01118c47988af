package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/dimaum1001/financas-web/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TransactionInput carries the fields of a new transaction before it is
// bound to a user.
type TransactionInput struct {
	Type        models.Type
	Category    string
	Amount      float64
	Date        models.Date
	Description *string
}

// TransactionService records and lists income/expense transactions.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTransactionService constructs a TransactionService.
func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager) *TransactionService {
	return &TransactionService{db: db, repomanager: m}
}

// Create records a transaction for the user. If the category label is new
// for (user, type) it is created on the fly, insert-or-ignore style, in
// the same transaction as the row itself, so a failed insert leaves no
// orphan category behind.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if !input.Type.Valid() || input.Category == "" {
		return nil, common.ErrorValidation
	}
	if input.Date.IsZero() {
		return nil, common.ErrorValidation
	}

	transaction := &models.Transaction{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		Category:    input.Category,
		UserID:      userID,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		catRepoTx := s.repomanager.Categories(tx)
		if err := catRepoTx.Ensure(ctx, userID, input.Category, input.Type); err != nil {
			return fmt.Errorf("error ensuring category: %w", err)
		}

		txRepoTx := s.repomanager.Transactions(tx)
		if _, err := txRepoTx.Create(ctx, transaction); err != nil {
			return fmt.Errorf("error creating transaction: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return transaction, nil
}

// List returns the user's transactions, most recent date first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	result, err := s.repomanager.Transactions(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return result, nil
}
