package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophpass/internal/dbx"
	"github.com/dmitrijs2005/gophpass/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	RollbackMigration(context.Context, *sql.DB) error
	MigrationStatus(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
