// Package db opens the database connection used by the lobby.
package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLiteFile is the database file created in the working directory
// when no DSN is supplied.
const DefaultSQLiteFile = "termninja.db"

// NewDBConnection opens a database connection for the given DSN.
// An empty DSN opens (or creates) a local SQLite file, postgres:// and postgresql:// DSNs
// connect to Postgres. Anything else is treated as a SQLite path.
func NewDBConnection(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	switch {
	case dsn == "":
		dialector = sqlite.Open(DefaultSQLiteFile)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	conn, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}
