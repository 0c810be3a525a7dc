package sqlcore

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
	"github.com/Aleph-Alpha/sqlcore/v1/observability"
)

const (
	modeSync  = "sync"
	modeAsync = "async"
)

// dispatcher runs one driver call and waits for it. The synchronous path runs
// the call inline; the asynchronous path hands it to the worker pool.
type dispatcher func(ctx context.Context, fn func(ctx context.Context) error) error

func inline(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// executor implements the acquire/execute/release envelope shared by Connector
// and AsyncConnector. Every driver call goes through dispatch, one call at a time.
type executor struct {
	pool           *Pool
	logger         Logger
	observer       observability.Observer
	tracerProvider trace.TracerProvider
	dispatch       dispatcher
	mode           string
}

func defaultLogger() Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "sqlcore"})
}

func (e *executor) executeQuery(ctx context.Context, query string, params []any) (ResultSet, error) {
	c := e.begin(ctx, OpExecuteQuery, query)
	defer c.end()

	conn, err := e.acquire(c.ctx)
	if err != nil {
		return nil, c.fail(err)
	}

	var cur Cursor
	defer e.cleanup(c.ctx, conn, &cur)

	result, err := e.run(c.ctx, conn, &cur, query, params, true)
	if err != nil {
		e.logger.ErrorWithContext(c.ctx, "Error executing query", c.fail(err), map[string]interface{}{
			"statement": query,
		})
		return nil, nil
	}

	c.rows = len(result)
	return result, nil
}

func (e *executor) executeStoredProcedure(ctx context.Context, name string, args []any, returnRows bool) (ResultSet, error) {
	op := OpExecuteStoredProcedure
	if returnRows {
		op = OpExecuteAndReturnStoredProcedure
	}
	statement := StoredProcedureStatement(name, len(args))

	c := e.begin(ctx, op, name)
	defer c.end()

	conn, err := e.acquire(c.ctx)
	if err != nil {
		return nil, c.fail(err)
	}

	var cur Cursor
	defer e.cleanup(c.ctx, conn, &cur)

	var result ResultSet
	if returnRows {
		result, err = e.run(c.ctx, conn, &cur, statement, args, true)
	} else {
		err = e.runAndCommit(c.ctx, conn, &cur, statement, args)
	}
	if err != nil {
		e.logger.ErrorWithContext(c.ctx, "Error executing stored procedure", c.fail(err), map[string]interface{}{
			"procedure": name,
			"statement": statement,
		})
		e.rollback(c.ctx, conn)
		return nil, err
	}

	c.rows = len(result)
	return result, nil
}

func (e *executor) executeTableValuedFunction(ctx context.Context, name string, params []any) (ResultSet, error) {
	statement := TableValuedFunctionStatement(name, len(params))

	c := e.begin(ctx, OpExecuteTableValuedFunction, name)
	defer c.end()

	conn, err := e.acquire(c.ctx)
	if err != nil {
		return nil, c.fail(err)
	}

	var cur Cursor
	defer e.cleanup(c.ctx, conn, &cur)

	result, err := e.run(c.ctx, conn, &cur, statement, params, false)
	if err != nil {
		e.logger.ErrorWithContext(c.ctx, "Error executing table-valued function", c.fail(err), map[string]interface{}{
			"function":  name,
			"statement": statement,
		})
		return nil, nil
	}

	c.rows = len(result)
	return result, nil
}

// run opens a cursor, executes statement and materializes its rows. When the
// statement has no result set it commits if commitWithoutRows is set.
// The cursor is stored in *cur as soon as it exists so the caller can close it.
func (e *executor) run(ctx context.Context, conn Connection, cur *Cursor, statement string, args []any, commitWithoutRows bool) (ResultSet, error) {
	if err := e.execute(ctx, conn, cur, statement, args); err != nil {
		return nil, err
	}

	if len((*cur).Description()) == 0 {
		if commitWithoutRows {
			return nil, e.commit(ctx, conn)
		}
		return nil, nil
	}

	var result ResultSet
	err := e.dispatch(ctx, func(ctx context.Context) error {
		var err error
		result, err = Materialize(ctx, *cur)
		return err
	})
	if err != nil {
		return nil, driverError(opFetchAll, statement, err)
	}
	return result.orNil(), nil
}

func (e *executor) runAndCommit(ctx context.Context, conn Connection, cur *Cursor, statement string, args []any) error {
	if err := e.execute(ctx, conn, cur, statement, args); err != nil {
		return err
	}
	return e.commit(ctx, conn)
}

func (e *executor) execute(ctx context.Context, conn Connection, cur *Cursor, statement string, args []any) error {
	err := e.dispatch(ctx, func(ctx context.Context) error {
		c, err := conn.Cursor(ctx)
		*cur = c
		return err
	})
	if err != nil {
		return driverError(opCursor, statement, err)
	}

	err = e.dispatch(ctx, func(ctx context.Context) error {
		return (*cur).Execute(ctx, statement, args...)
	})
	return driverError(opExecute, statement, err)
}

func (e *executor) commit(ctx context.Context, conn Connection) error {
	return driverError(opCommit, "", e.dispatch(ctx, conn.Commit))
}

// rollback is best-effort: a failure is logged and never replaces the error
// that triggered it.
func (e *executor) rollback(ctx context.Context, conn Connection) {
	err := e.dispatch(context.WithoutCancel(ctx), conn.Rollback)
	if err != nil {
		e.logger.WarnWithContext(ctx, "Rollback failed", driverError(opRollback, "", err), nil)
	}
}

func (e *executor) acquire(ctx context.Context) (Connection, error) {
	return e.pool.acquire(ctx, func(ctx context.Context, target string) (Connection, error) {
		var conn Connection
		err := e.dispatch(ctx, func(ctx context.Context) error {
			var err error
			conn, err = e.pool.dialer.Connect(ctx, target)
			return err
		})
		return conn, err
	})
}

// cleanup closes the cursor, if one was created, and releases conn. It runs on
// every exit path; failures are logged and swallowed.
func (e *executor) cleanup(ctx context.Context, conn Connection, cur *Cursor) {
	ctx = context.WithoutCancel(ctx)

	if *cur != nil {
		err := e.dispatch(ctx, func(context.Context) error {
			return (*cur).Close()
		})
		if err != nil {
			e.logger.WarnWithContext(ctx, "Failed to close cursor", driverError(opClose, "", err), nil)
		}
	}

	if err := e.release(ctx, conn); err != nil {
		e.logger.WarnWithContext(ctx, "Failed to release connection", err, nil)
	}
}

func (e *executor) release(ctx context.Context, conn Connection) error {
	return e.pool.release(conn, e.closer(ctx))
}

func (e *executor) closeAll() error {
	return e.pool.closeAll(e.closer(context.Background()))
}

func (e *executor) closer(ctx context.Context) func(Connection) error {
	return func(conn Connection) error {
		return e.dispatch(ctx, func(context.Context) error {
			return conn.Close()
		})
	}
}
