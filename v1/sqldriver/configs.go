package sqldriver

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config selects the database/sql driver used to open connections and how
// those connections handle transactions.
type Config struct {
	// Driver is the registered database/sql driver name, for example
	// "sqlserver", "postgres", "pgx", "mysql" or "sqlite3".
	Driver string `yaml:"driver" envconfig:"SQL_DRIVER" default:"sqlserver"`

	// Autocommit runs every statement in its own implicit transaction.
	// When false (the default) a transaction is opened by the first statement
	// on a connection and stays open until Commit or Rollback.
	Autocommit bool `yaml:"autocommit" envconfig:"SQL_AUTOCOMMIT"`

	// SkipPing disables the round trip that verifies a freshly opened connection.
	SkipPing bool `yaml:"skip_ping" envconfig:"SQL_SKIP_PING"`
}

// LoadConfigFromEnv reads Config from SQL_DRIVER, SQL_AUTOCOMMIT and SQL_SKIP_PING.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("sqldriver: load config: %w", err)
	}
	return cfg, nil
}
