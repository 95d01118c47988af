package categories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const listQ = `(?s)^SELECT\s+id,\s*nome,\s*tipo,\s*usuario_id\s+FROM\s+categorias\s+WHERE\s+usuario_id\s*=\s*\$1\s+AND\s+tipo\s*=\s*\$2\s+ORDER\s+BY\s+nome\s*$`
const insertQ = `(?s)^INSERT\s+INTO\s+categorias\s*\(nome,\s*tipo,\s*usuario_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`
const existsQ = `(?s)^SELECT\s+EXISTS\s*\(.*FROM\s+categorias.*\)\s*$`
const ensureQ = `(?s)^INSERT\s+INTO\s+categorias\s*\(nome,\s*tipo,\s*usuario_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(usuario_id,\s*nome,\s*tipo\)\s*DO\s+NOTHING\s*$`

func TestListByUserAndType(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "nome", "tipo", "usuario_id"}).
		AddRow(int64(1), "Alimentação", "despesa", userID).
		AddRow(int64(2), "Transporte", "despesa", userID)
	mock.ExpectQuery(listQ).
		WithArgs(userID, models.TypeExpense).
		WillReturnRows(rows)

	got, err := repo.ListByUserAndType(context.Background(), userID, models.TypeExpense)
	if err != nil {
		t.Fatalf("ListByUserAndType error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Alimentação" || got[1].Name != "Transporte" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestListByUserAndType_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(listQ).
		WithArgs(userID, models.TypeIncome).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "tipo", "usuario_id"}))

	got, err := repo.ListByUserAndType(context.Background(), userID, models.TypeIncome)
	if err != nil {
		t.Fatalf("ListByUserAndType error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no categories, got %+v", got)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(insertQ).
		WithArgs("Pets", models.TypeExpense, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	c := &models.Category{Name: "Pets", Type: models.TypeExpense, UserID: userID}
	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(insertQ).
		WithArgs("Pets", models.TypeExpense, userID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Category{Name: "Pets", Type: models.TypeExpense, UserID: userID})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(existsQ).
		WithArgs(userID, "Salário", models.TypeIncome).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), userID, "Salário", models.TypeIncome)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !ok {
		t.Fatal("expected exists=true")
	}
}

func TestEnsure_InsertsOrIgnores(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()

	// Fresh label: one row inserted.
	mock.ExpectExec(ensureQ).
		WithArgs("Viagens", models.TypeExpense, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Ensure(context.Background(), userID, "Viagens", models.TypeExpense); err != nil {
		t.Fatalf("Ensure error: %v", err)
	}

	// Duplicate (possibly a concurrent insert): zero rows, still no error.
	mock.ExpectExec(ensureQ).
		WithArgs("Viagens", models.TypeExpense, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Ensure(context.Background(), userID, "Viagens", models.TypeExpense); err != nil {
		t.Fatalf("Ensure on duplicate must be a no-op, got %v", err)
	}
}

func TestEnsure_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectExec(ensureQ).
		WithArgs("Viagens", models.TypeExpense, userID).
		WillReturnError(errors.New("db down"))

	err := repo.Ensure(context.Background(), userID, "Viagens", models.TypeExpense)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
