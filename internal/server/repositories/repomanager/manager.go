package repomanager

import (
	"context"
	"database/sql"

	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/repositories/categories"
	"github.com/dimaum1001/financas-web/internal/server/repositories/transactions"
	"github.com/dimaum1001/financas-web/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Transactions(db dbx.DBTX) transactions.Repository
}
