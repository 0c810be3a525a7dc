package sqldriver

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// GormDialer opens PostgreSQL connections through GORM's postgres dialector
// (backed by pgx) and exposes the underlying session as a sqlcore.Connection.
// Use it where an application already configures its databases through GORM.
type GormDialer struct {
	autocommit bool
	logger     sqlcore.Logger
}

// NewGormDialer returns a GormDialer. Only cfg.Autocommit is used; the driver
// is always pgx.
func NewGormDialer(cfg Config, log sqlcore.Logger) *GormDialer {
	return &GormDialer{autocommit: cfg.Autocommit, logger: log}
}

// Connect opens target, a PostgreSQL DSN or URL.
func (d *GormDialer) Connect(ctx context.Context, target string) (sqlcore.Connection, error) {
	database, err := gorm.Open(postgres.Open(target), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgresSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgresSQL database instance: %w", err)
	}

	conn := newConnection(sqlx.NewDb(databaseInstance, DriverPgx), d.autocommit)
	if err := databaseInstance.PingContext(ctx); err != nil {
		_ = databaseInstance.Close()
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if d.logger != nil {
		d.logger.Debug("Opened database connection through GORM", nil, map[string]interface{}{
			"driver": DriverPgx,
		})
	}
	return conn, nil
}

var _ sqlcore.Dialer = (*GormDialer)(nil)
