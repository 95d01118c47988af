package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
)

func TestTransactionCreate_EnsuresCategoryAndInserts(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewTransactionService(db, rm)

	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	desc := "mercado do mês"
	got, err := svc.Create(context.Background(), userID, TransactionInput{
		Type:        models.TypeExpense,
		Category:    "Alimentação",
		Amount:      321.90,
		Date:        models.NewDate(2024, time.July, 3),
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.UserID != userID {
		t.Fatal("transaction must be scoped to the calling user")
	}
	if got.ID == 0 {
		t.Fatal("expected generated id")
	}

	if len(rm.categories.ensured) != 1 || rm.categories.ensured[0] != "Alimentação" {
		t.Fatalf("expected one category ensure, got %v", rm.categories.ensured)
	}
	if len(rm.transactions.created) != 1 {
		t.Fatalf("expected one transaction insert, got %d", len(rm.transactions.created))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction expectations: %v", err)
	}
}

func TestTransactionCreate_SameLabelEnsuredEachTime(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewTransactionService(db, rm)

	userID := uuid.New()
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Create(context.Background(), userID, TransactionInput{
			Type:     models.TypeExpense,
			Category: "Lazer",
			Amount:   10,
			Date:     models.NewDate(2024, time.July, 4),
		})
		if err != nil {
			t.Fatalf("Create #%d error: %v", i+1, err)
		}
	}

	// Ensure is insert-or-ignore, so repeating the label is harmless and
	// both transaction rows land.
	if len(rm.transactions.created) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(rm.transactions.created))
	}
}

func TestTransactionCreate_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.transactions.createErr = errors.New("insert failed")
	svc := NewTransactionService(db, rm)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.New(), TransactionInput{
		Type:     models.TypeIncome,
		Category: "Salário",
		Amount:   5000,
		Date:     models.NewDate(2024, time.July, 5),
	})
	if err == nil {
		t.Fatal("expected error when the row insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected rollback so no orphan category survives: %v", err)
	}
}

func TestTransactionCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewTransactionService(db, rm)

	userID := uuid.New()
	cases := []TransactionInput{
		{Type: "poupança", Category: "X", Amount: 1, Date: models.NewDate(2024, time.July, 6)},
		{Type: models.TypeExpense, Category: "", Amount: 1, Date: models.NewDate(2024, time.July, 6)},
		{Type: models.TypeExpense, Category: "X", Amount: 1},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), userID, input); !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("case %d: want common.ErrorValidation, got %v", i, err)
		}
	}
	if len(rm.categories.ensured) != 0 || len(rm.transactions.created) != 0 {
		t.Fatal("invalid input must not reach the repositories")
	}
}

func TestTransactionList_PassesThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	userID := uuid.New()
	rm.transactions.listOut = []*models.Transaction{
		{ID: 2, Amount: 10, Type: models.TypeExpense, Category: "Lazer", UserID: userID},
		{ID: 1, Amount: 20, Type: models.TypeExpense, Category: "Moradia", UserID: userID},
	}
	svc := NewTransactionService(db, rm)

	got, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestTransactionList_WrapsError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.transactions.listErr = errors.New("db down")
	svc := NewTransactionService(db, rm)

	_, err := svc.List(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error")
	}
}
