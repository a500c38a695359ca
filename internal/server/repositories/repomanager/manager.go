package repomanager

import (
	"context"
	"database/sql"

	"github.com/haeli05/mintvault/internal/dbx"
	"github.com/haeli05/mintvault/internal/ledger"
	"github.com/haeli05/mintvault/internal/server/repositories/accounts"
	"github.com/haeli05/mintvault/internal/server/repositories/admins"
	"github.com/haeli05/mintvault/internal/server/repositories/assets"
	"github.com/haeli05/mintvault/internal/server/repositories/vaults"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Admins(db dbx.DBTX) admins.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Assets(db dbx.DBTX) assets.Repository
	Vaults(db dbx.DBTX) vaults.Repository
	Ledger(db dbx.DBTX) ledger.Ledger
}
