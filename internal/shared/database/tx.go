package database

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx. Services own the
// *sql.Tx so several repositories can share one unit of work.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	// a non-nil Context forces gorm to clone the Statement, so the shared
	// root handle keeps its own pool.
	session := db.Session(&gorm.Session{
		NewDB:                  true,
		SkipDefaultTransaction: true,
		Context:                context.Background(),
	})
	session.Statement.ConnPool = tx
	return session
}
