package sqlcore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
)

var errInjected = errors.New("injected driver failure")

// fakeResult is what a fake cursor reports after executing a statement.
type fakeResult struct {
	description []ColumnDescriptor
	rows        [][]any
}

type executed struct {
	query string
	args  []any
}

// fakeDriver is an in-memory Dialer recording every driver call.
// failures maps a driver call name (connect, cursor, execute, fetchall, commit,
// rollback, cursor_close, close) to the error it returns.
type fakeDriver struct {
	mu       sync.Mutex
	result   fakeResult
	failures map[string]error
	conns    []*fakeConn
	dials    int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{failures: map[string]error{}}
}

func (d *fakeDriver) withResult(columns []string, rows ...[]any) *fakeDriver {
	desc := make([]ColumnDescriptor, len(columns))
	for i, c := range columns {
		desc[i] = ColumnDescriptor{Name: c}
	}
	d.result = fakeResult{description: desc, rows: rows}
	return d
}

func (d *fakeDriver) fail(call string, err error) *fakeDriver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures[call] = err
	return d
}

func (d *fakeDriver) failure(call string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failures[call]
}

func (d *fakeDriver) Connect(_ context.Context, target string) (Connection, error) {
	if err := d.failure(opConnect); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	conn := &fakeConn{driver: d, id: d.dials, target: target}
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDriver) connections() []*fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeConn(nil), d.conns...)
}

func (d *fakeDriver) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}

// statements returns every statement executed on any connection, in order per connection.
func (d *fakeDriver) statements() []executed {
	var out []executed
	for _, c := range d.connections() {
		for _, cur := range c.cursorList() {
			out = append(out, cur.executedList()...)
		}
	}
	return out
}

func (d *fakeDriver) totals() (commits, rollbacks, closes, cursorCloses int) {
	for _, c := range d.connections() {
		c.mu.Lock()
		commits += c.commits
		rollbacks += c.rollbacks
		closes += c.closes
		for _, cur := range c.cursors {
			cur.mu.Lock()
			cursorCloses += cur.closes
			cur.mu.Unlock()
		}
		c.mu.Unlock()
	}
	return
}

type fakeConn struct {
	driver *fakeDriver
	id     int
	target string

	mu        sync.Mutex
	cursors   []*fakeCursor
	commits   int
	rollbacks int
	closes    int
}

func (c *fakeConn) String() string {
	return fmt.Sprintf("conn-%d", c.id)
}

func (c *fakeConn) Cursor(context.Context) (Cursor, error) {
	if err := c.driver.failure(opCursor); err != nil {
		return nil, err
	}
	cur := &fakeCursor{conn: c}
	c.mu.Lock()
	c.cursors = append(c.cursors, cur)
	c.mu.Unlock()
	return cur, nil
}

func (c *fakeConn) Commit(context.Context) error {
	c.mu.Lock()
	c.commits++
	c.mu.Unlock()
	return c.driver.failure(opCommit)
}

func (c *fakeConn) Rollback(context.Context) error {
	c.mu.Lock()
	c.rollbacks++
	c.mu.Unlock()
	return c.driver.failure(opRollback)
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closes++
	c.mu.Unlock()
	return c.driver.failure(opClose)
}

func (c *fakeConn) closeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}

func (c *fakeConn) cursorList() []*fakeCursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*fakeCursor(nil), c.cursors...)
}

type fakeCursor struct {
	conn *fakeConn

	mu          sync.Mutex
	executed    []executed
	description []ColumnDescriptor
	rows        [][]any
	closes      int
}

func (c *fakeCursor) Execute(_ context.Context, query string, args ...any) error {
	c.mu.Lock()
	c.executed = append(c.executed, executed{query: query, args: args})
	c.mu.Unlock()

	if err := c.conn.driver.failure(opExecute); err != nil {
		return err
	}

	c.conn.driver.mu.Lock()
	result := c.conn.driver.result
	c.conn.driver.mu.Unlock()

	c.mu.Lock()
	c.description = result.description
	c.rows = result.rows
	c.mu.Unlock()
	return nil
}

func (c *fakeCursor) Description() []ColumnDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.description
}

func (c *fakeCursor) FetchAll(context.Context) ([][]any, error) {
	if err := c.conn.driver.failure(opFetchAll); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, nil
}

func (c *fakeCursor) Close() error {
	c.mu.Lock()
	c.closes++
	c.mu.Unlock()
	return c.conn.driver.failure("cursor_close")
}

func (c *fakeCursor) executedList() []executed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]executed(nil), c.executed...)
}

// newTestLogger returns a LoggerClient whose entries are captured.
func newTestLogger() (*logger.LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core), false), logs
}

// asyncExecutor adapts an AsyncConnector to Executor by waiting on every Future,
// so the same tests can run against both paths.
type asyncExecutor struct {
	*AsyncConnector
}

func (a asyncExecutor) ExecuteQuery(ctx context.Context, query string, params ...any) (ResultSet, error) {
	return a.AsyncConnector.ExecuteQuery(ctx, query, params...).Wait()
}

func (a asyncExecutor) ExecuteStoredProcedure(ctx context.Context, name string, args ...any) error {
	_, err := a.AsyncConnector.ExecuteStoredProcedure(ctx, name, args...).Wait()
	return err
}

func (a asyncExecutor) ExecuteAndReturnStoredProcedure(ctx context.Context, name string, args ...any) (ResultSet, error) {
	return a.AsyncConnector.ExecuteAndReturnStoredProcedure(ctx, name, args...).Wait()
}

func (a asyncExecutor) ExecuteTableValuedFunction(ctx context.Context, name string, params ...any) (ResultSet, error) {
	return a.AsyncConnector.ExecuteTableValuedFunction(ctx, name, params...).Wait()
}

// executorMode describes one way of building an executor under test.
type executorMode struct {
	name     string
	poolSize int
	build    func(pool *Pool, log Logger) Executor
}

var executorModes = []executorMode{
	{
		name:     "sync/bounded",
		poolSize: 2,
		build: func(pool *Pool, log Logger) Executor {
			return NewConnectorFromPool(pool, log)
		},
	},
	{
		name:     "sync/unbounded",
		poolSize: 0,
		build: func(pool *Pool, log Logger) Executor {
			return NewConnectorFromPool(pool, log)
		},
	},
	{
		name:     "async/bounded",
		poolSize: 2,
		build: func(pool *Pool, log Logger) Executor {
			return asyncExecutor{NewAsyncConnectorFromPool(pool, 4, log)}
		},
	},
	{
		name:     "async/unbounded",
		poolSize: 0,
		build: func(pool *Pool, log Logger) Executor {
			return asyncExecutor{NewAsyncConnectorFromPool(pool, 4, log)}
		},
	},
}

// newExecutor builds the pool and executor for mode on top of driver.
func newExecutor(t *testing.T, mode executorMode, driver *fakeDriver) (Executor, *Pool, *observer.ObservedLogs) {
	t.Helper()
	log, logs := newTestLogger()
	pool, err := NewPool(context.Background(), Config{
		ConnectionString: "fake://db",
		PoolSize:         mode.poolSize,
	}, driver, log)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	return mode.build(pool, log), pool, logs
}

// assertReleased checks that every checked-out connection came back exactly once.
func assertReleased(t *testing.T, pool *Pool, driver *fakeDriver) {
	t.Helper()
	stats := pool.Stats()
	if stats.InUse != 0 || stats.Acquired != stats.Released {
		t.Fatalf("connections not released: %+v", stats)
	}
	if pool.Unbounded() {
		for _, c := range driver.connections() {
			if got := c.closeCount(); got != 1 {
				t.Fatalf("%s closed %d times, want 1", c, got)
			}
		}
		return
	}
	if stats.Idle != pool.Capacity() {
		t.Fatalf("idle = %d, want %d", stats.Idle, pool.Capacity())
	}
	for _, c := range driver.connections() {
		if got := c.closeCount(); got != 0 {
			t.Fatalf("%s closed %d times by a bounded pool", c, got)
		}
	}
}
