package sqlcore

import "context"

// Dialer opens new driver connections for a connection target.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=sqlcore
type Dialer interface {
	Connect(ctx context.Context, target string) (Connection, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, target string) (Connection, error)

// Connect calls f(ctx, target).
func (f DialerFunc) Connect(ctx context.Context, target string) (Connection, error) {
	return f(ctx, target)
}

// Connection is a single live driver connection. A Connection is owned by at most
// one caller at a time; the pool never hands the same Connection out twice
// without an intervening release.
type Connection interface {
	// Cursor creates a statement handle bound to this connection.
	Cursor(ctx context.Context) (Cursor, error)

	// Commit commits the work done since the last commit or rollback.
	Commit(ctx context.Context) error

	// Rollback discards the work done since the last commit or rollback.
	Rollback(ctx context.Context) error

	// Close closes the connection.
	Close() error
}

// Cursor executes statements and exposes the rows they produce.
type Cursor interface {
	// Execute runs query with positional arguments bound to its ? placeholders.
	Execute(ctx context.Context, query string, args ...any) error

	// Description describes the result columns of the last executed statement.
	// It is empty when the statement produced no result set.
	Description() []ColumnDescriptor

	// FetchAll returns every remaining row, each positionally aligned with Description.
	FetchAll(ctx context.Context) ([][]any, error)

	// Close releases the cursor's resources.
	Close() error
}

// ColumnDescriptor describes one result column.
type ColumnDescriptor struct {
	Name         string
	DatabaseType string
}

// Logger is the logging contract used by the pool and the executors.
// *logger.LoggerClient satisfies it.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Executor is the synchronous execution surface implemented by *Connector.
type Executor interface {
	// ExecuteQuery runs query and returns its rows, or nil when it produced none.
	// Driver failures are logged and yield a nil result and nil error.
	ExecuteQuery(ctx context.Context, query string, params ...any) (ResultSet, error)

	// ExecuteStoredProcedure runs EXEC name with args and commits.
	// Driver failures are logged, rolled back and returned.
	ExecuteStoredProcedure(ctx context.Context, name string, args ...any) error

	// ExecuteAndReturnStoredProcedure runs EXEC name with args and returns its rows.
	// Driver failures are logged, rolled back and returned.
	ExecuteAndReturnStoredProcedure(ctx context.Context, name string, args ...any) (ResultSet, error)

	// ExecuteTableValuedFunction selects every row of name(params...).
	// Driver failures are logged and yield a nil result and nil error.
	ExecuteTableValuedFunction(ctx context.Context, name string, params ...any) (ResultSet, error)

	// Close closes every idle pooled connection.
	Close() error
}

// AsyncExecutor is the non-blocking counterpart of Executor implemented by
// *AsyncConnector. Every method returns immediately; the outcome is delivered
// through the returned Future with the same semantics as the Executor method
// of the same name.
type AsyncExecutor interface {
	ExecuteQuery(ctx context.Context, query string, params ...any) *Future[ResultSet]
	ExecuteStoredProcedure(ctx context.Context, name string, args ...any) *Future[struct{}]
	ExecuteAndReturnStoredProcedure(ctx context.Context, name string, args ...any) *Future[ResultSet]
	ExecuteTableValuedFunction(ctx context.Context, name string, params ...any) *Future[ResultSet]
	Close() error
}
