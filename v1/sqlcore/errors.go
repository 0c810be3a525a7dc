package sqlcore

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of every construction-time configuration failure.
	ErrConfiguration = errors.New("sqlcore: configuration error")

	// ErrMissingConnectionString is returned when neither Config.ConnectionString
	// nor SQL_CONN_STRING provides a connection target.
	ErrMissingConnectionString = fmt.Errorf("%w: SQL connection string is not set", ErrConfiguration)

	// ErrInvalidPoolSize is returned for a negative pool size.
	ErrInvalidPoolSize = fmt.Errorf("%w: pool size must not be negative", ErrConfiguration)

	// ErrMissingDialer is returned when no Dialer is supplied.
	ErrMissingDialer = fmt.Errorf("%w: dialer is required", ErrConfiguration)

	// ErrPoolClosed is returned by Acquire once CloseAll has been called.
	ErrPoolClosed = errors.New("sqlcore: connection pool is closed")
)

// DriverError wraps a failure surfaced by the underlying driver.
type DriverError struct {
	// Op is the driver call that failed: connect, cursor, execute, fetchall,
	// commit, rollback or close.
	Op string

	// Statement is the SQL text being executed, if any.
	Statement string

	Err error
}

func (e *DriverError) Error() string {
	if e.Statement == "" {
		return fmt.Sprintf("sqlcore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sqlcore: %s %q: %v", e.Op, e.Statement, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

func driverError(op, statement string, err error) error {
	if err == nil {
		return nil
	}
	var de *DriverError
	if errors.As(err, &de) {
		return err
	}
	return &DriverError{Op: op, Statement: statement, Err: err}
}

// IsConfigurationError reports whether err is a construction-time configuration failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsDriverError reports whether err originated in the database driver.
func IsDriverError(err error) bool {
	var de *DriverError
	return errors.As(err, &de)
}

// IsPoolClosedError reports whether err was caused by acquiring from a closed pool.
func IsPoolClosedError(err error) bool {
	return errors.Is(err, ErrPoolClosed)
}
