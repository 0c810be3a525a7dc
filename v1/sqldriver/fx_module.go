package sqldriver

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// FXModule provides a *Dialer built from Config and exposes it as the
// sqlcore.Dialer consumed by sqlcore.FXModule.
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(loadSQLConfig, loadDriverConfig),
//	    sqldriver.FXModule,
//	    sqlcore.FXModule,
//	)
var FXModule = fx.Module("sqldriver",
	fx.Provide(
		NewDialerWithDI,
		func(d *Dialer) sqlcore.Dialer { return d },
	),
)

// DialerParams groups the dependencies of NewDialerWithDI.
type DialerParams struct {
	fx.In

	Config Config
	Logger *logger.LoggerClient `optional:"true"`
}

// NewDialerWithDI builds a Dialer for use with fx.
func NewDialerWithDI(params DialerParams) (*Dialer, error) {
	if params.Logger == nil {
		return NewDialer(params.Config, nil)
	}
	return NewDialer(params.Config, params.Logger)
}
