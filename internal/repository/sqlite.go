package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	sqlite "modernc.org/sqlite"

	"github.com/slabworks/cardscan/gen/ent"
)

var registerSQLite sync.Once

// openSQLite opens a cgo-free SQLite database for local development and tests.
// modernc registers itself as "sqlite"; ent expects the "sqlite3" name.
func openSQLite(dsn string, logger *slog.Logger) (*ent.Client, error) {
	registerSQLite.Do(func() {
		sql.Register("sqlite3", &sqlite.Driver{})
	})
	if dsn == "" {
		dsn = "file:cardscan.db"
	}
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn)

	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "dsn", dsn, "error", err)
		return nil, err
	}
	// SQLite works best with a single writer
	drv.DB().SetMaxOpenConns(1)

	logger.Info("opened sqlite database", "dsn", dsn)
	return ent.NewClient(ent.Driver(drv)), nil
}
