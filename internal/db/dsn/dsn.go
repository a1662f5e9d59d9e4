// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/lensfolio/lensfolio/internal/config"
)

// MySQL builds the go-sql-driver style DSN.
func MySQL(db config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.Extras,
	)
}

// Postgres builds a postgres connection URI.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}

// SQLite returns the database file, defaulting to an in-memory database.
func SQLite(db config.DB) string {
	if db.File == "" {
		return ":memory:"
	}

	return db.File
}
