// Package repomanager constructs the concrete repositories over a shared
// database handle and owns schema migration.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/chineye-ai/chatserver/internal/dbx"
	"github.com/chineye-ai/chatserver/internal/server/repositories/chats"
	"github.com/chineye-ai/chatserver/internal/server/repositories/subscribers"
	"github.com/chineye-ai/chatserver/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to db, which may be either
// the shared *sql.DB or a transaction from dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Chats(db dbx.DBTX) chats.Repository
	Subscribers(db dbx.DBTX) subscribers.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
