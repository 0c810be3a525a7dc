package sqldriver

import (
	"database/sql"
	"slices"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
)

// Driver names registered by the drivers linked into this package.
const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
	DriverPgx       = "pgx"
	DriverMySQL     = "mysql"
	DriverSQLite    = "sqlite3"
)

// Drivers returns the sorted names of every registered database/sql driver.
func Drivers() []string {
	return sql.Drivers()
}

// Registered reports whether name is a registered database/sql driver.
func Registered(name string) bool {
	return slices.Contains(sql.Drivers(), name)
}

// Rebind rewrites the "?" placeholders in query into the bind style of driver,
// e.g. "$1" for postgres and pgx or "@p1" for sqlserver. mysql, sqlite3 and
// unknown drivers keep "?".
//
// The rewrite is purely lexical: a "?" inside a string literal, quoted
// identifier or comment is rewritten too. Pass such text as a parameter instead
// of writing it into the statement.
func Rebind(driver, query string) string {
	return sqlx.Rebind(sqlx.BindType(driver), query)
}
