package sqldriver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDriver is returned when Config.Driver names a driver that is not
	// registered with database/sql.
	ErrUnknownDriver = errors.New("sqldriver: unknown driver")

	// ErrNoResultSet is returned by FetchAll when the last statement produced no rows.
	ErrNoResultSet = errors.New("sqldriver: no result set")

	// ErrCursorClosed is returned when a closed cursor is used.
	ErrCursorClosed = errors.New("sqldriver: cursor is closed")
)

func unknownDriver(name string) error {
	return fmt.Errorf("%w %q (registered: %v)", ErrUnknownDriver, name, Drivers())
}

// IsUnknownDriverError reports whether err was caused by an unregistered driver name.
func IsUnknownDriverError(err error) bool {
	return errors.Is(err, ErrUnknownDriver)
}
