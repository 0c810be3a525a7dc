package sqldriver

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// Dialer opens sqlcore connections through a registered database/sql driver.
// Every Connect yields its own single-connection handle, so a sqlcore.Pool of
// capacity N holds exactly N physical sessions.
//
// Statements are written with "?" placeholders and rebound for the driver; see
// Rebind for the limits of that rewrite.
type Dialer struct {
	cfg    Config
	logger sqlcore.Logger
}

// NewDialer validates cfg and returns a Dialer for cfg.Driver.
func NewDialer(cfg Config, log sqlcore.Logger) (*Dialer, error) {
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLServer
	}
	if !Registered(cfg.Driver) {
		return nil, unknownDriver(cfg.Driver)
	}
	return &Dialer{cfg: cfg, logger: log}, nil
}

// Connect opens a connection to target, the driver-specific data source name.
// Unless SkipPing is set the connection is verified before it is returned.
func (d *Dialer) Connect(ctx context.Context, target string) (sqlcore.Connection, error) {
	db, err := sqlx.Open(d.cfg.Driver, target)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", d.cfg.Driver, err)
	}

	conn := newConnection(db, d.cfg.Autocommit)
	if !d.cfg.SkipPing {
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("connect to %s: %w", d.cfg.Driver, err)
		}
	}

	if d.logger != nil {
		d.logger.Debug("Opened database connection", nil, map[string]interface{}{
			"driver":     d.cfg.Driver,
			"autocommit": d.cfg.Autocommit,
		})
	}
	return conn, nil
}

// Driver returns the database/sql driver name the Dialer opens connections with.
func (d *Dialer) Driver() string {
	return d.cfg.Driver
}

var _ sqlcore.Dialer = (*Dialer)(nil)
