package sqldriver

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

func newSQLiteConnector(t *testing.T, cfg Config, poolSize int) *sqlcore.Connector {
	t.Helper()
	cfg.Driver = DriverSQLite
	log := logger.NewFromZap(zap.NewNop(), false)

	dialer, err := NewDialer(cfg, log)
	require.NoError(t, err)

	connector, err := sqlcore.NewConnector(context.Background(), sqlcore.Config{
		ConnectionString: filepath.Join(t.TempDir(), "test.db"),
		PoolSize:         poolSize,
	}, dialer, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = connector.Close() })
	return connector
}

func TestSQLiteQueryLifecycle(t *testing.T) {
	ctx := context.Background()
	connector := newSQLiteConnector(t, Config{}, 1)

	result, err := connector.ExecuteQuery(ctx, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER)")
	require.NoError(t, err)
	assert.Nil(t, result)

	for _, u := range []struct {
		name string
		age  int
	}{{"Alice", 30}, {"Bob", 25}} {
		_, err := connector.ExecuteQuery(ctx, "INSERT INTO users (name, age) VALUES (?, ?)", u.name, u.age)
		require.NoError(t, err)
	}

	result, err = connector.ExecuteQuery(ctx, "SELECT id, name, age FROM users WHERE age > ? ORDER BY id", 20)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"id": int64(1), "name": "Alice", "age": int64(30)},
		{"id": int64(2), "name": "Bob", "age": int64(25)},
	}, result.Maps())
	assert.Equal(t, []string{"id", "name", "age"}, result[0].Columns())

	result, err = connector.ExecuteQuery(ctx, "SELECT id FROM users WHERE age > ?", 99)
	require.NoError(t, err)
	assert.Nil(t, result)

	stats := connector.Pool().Stats()
	assert.EqualValues(t, 0, stats.InUse)
	assert.Equal(t, 1, stats.Idle)
}

func TestSQLiteQueryFailureIsSwallowed(t *testing.T) {
	connector := newSQLiteConnector(t, Config{}, 1)

	result, err := connector.ExecuteQuery(context.Background(), "SELECT * FROM missing_table")

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.EqualValues(t, 0, connector.Pool().Stats().InUse)
}

func TestSQLiteStoredProcedureFailureIsReturned(t *testing.T) {
	connector := newSQLiteConnector(t, Config{}, 1)

	// SQLite has no EXEC statement, so the driver rejects it.
	err := connector.ExecuteStoredProcedure(context.Background(), "UpdateBalance", 1, 2)

	require.Error(t, err)
	assert.True(t, sqlcore.IsDriverError(err))
	assert.Contains(t, err.Error(), "EXEC UpdateBalance ?, ?")
	assert.EqualValues(t, 0, connector.Pool().Stats().InUse)

	// The connection is still usable after the rollback.
	result, err := connector.ExecuteQuery(context.Background(), "SELECT 1 AS one")
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"one": int64(1)}}, result.Maps())
}

func TestSQLiteReadDoesNotHoldConnectionTransaction(t *testing.T) {
	ctx := context.Background()
	connector := newSQLiteConnector(t, Config{}, 2)

	_, err := connector.ExecuteQuery(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	result, err := connector.ExecuteQuery(ctx, "SELECT 1 AS one FROM sqlite_master")
	require.NoError(t, err)
	require.Len(t, result, 1)

	// The insert lands on the other pooled connection and must not wait on a
	// read lock left behind by the select.
	start := time.Now()
	_, err = connector.ExecuteQuery(ctx, "INSERT INTO t (n) VALUES (?)", 7)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	for i := 0; i < 3; i++ {
		result, err := connector.ExecuteQuery(ctx, "SELECT COUNT(*) AS c FROM t")
		require.NoError(t, err)
		assert.Equal(t, []map[string]any{{"c": int64(1)}}, result.Maps())
	}
}

func TestSQLiteQueryFailureKeepsConnectionUsable(t *testing.T) {
	ctx := context.Background()
	connector := newSQLiteConnector(t, Config{}, 1)

	_, err := connector.ExecuteQuery(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	result, err := connector.ExecuteQuery(ctx, "SELECT * FROM missing_table")
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = connector.ExecuteQuery(ctx, "INSERT INTO t (n) VALUES (?)", 1)
	require.NoError(t, err)
	result, err = connector.ExecuteQuery(ctx, "SELECT COUNT(*) AS c FROM t")
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"c": int64(1)}}, result.Maps())
}

func TestSQLiteTableValuedFunction(t *testing.T) {
	connector := newSQLiteConnector(t, Config{}, 1)

	result, err := connector.ExecuteTableValuedFunction(context.Background(), "json_each", `[10, 20, 30]`)

	require.NoError(t, err)
	require.Len(t, result, 3)
	for i, want := range []int64{10, 20, 30} {
		v, ok := result[i].Get("value")
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestSQLiteUnboundedPool(t *testing.T) {
	ctx := context.Background()
	connector := newSQLiteConnector(t, Config{}, 0)

	_, err := connector.ExecuteQuery(ctx, "CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)")
	require.NoError(t, err)
	_, err = connector.ExecuteQuery(ctx, "INSERT INTO kv (k, v) VALUES (?, ?)", "a", "1")
	require.NoError(t, err)

	// Each call ran on a fresh connection, so the insert must have been committed.
	result, err := connector.ExecuteQuery(ctx, "SELECT k, v FROM kv")
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"k": "a", "v": "1"}}, result.Maps())
	assert.Equal(t, sqlcore.Stats{Acquired: 3, Released: 3}, connector.Pool().Stats())
}

func TestSQLiteAsyncConnector(t *testing.T) {
	ctx := context.Background()
	log := logger.NewFromZap(zap.NewNop(), false)
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, log)
	require.NoError(t, err)

	async, err := sqlcore.NewAsyncConnector(ctx, sqlcore.Config{
		ConnectionString: filepath.Join(t.TempDir(), "async.db"),
		PoolSize:         1,
		AsyncWorkers:     2,
	}, dialer, log)
	require.NoError(t, err)
	defer func() { require.NoError(t, async.Close()) }()

	_, err = async.ExecuteQuery(ctx, "CREATE TABLE t (n INTEGER)").Await(ctx)
	require.NoError(t, err)

	futures := make([]*sqlcore.Future[sqlcore.ResultSet], 5)
	for i := range futures {
		futures[i] = async.ExecuteQuery(ctx, "INSERT INTO t (n) VALUES (?)", i)
	}
	for _, f := range futures {
		_, err := f.Await(ctx)
		require.NoError(t, err)
	}

	result, err := async.ExecuteQuery(ctx, "SELECT COUNT(*) AS c FROM t").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"c": int64(5)}}, result.Maps())
}

func TestConnectionRollbackDiscardsUncommittedWork(t *testing.T) {
	ctx := context.Background()
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tx.db")

	conn, err := dialer.Connect(ctx, path)
	require.NoError(t, err)
	defer conn.Close()

	exec := func(query string, args ...any) sqlcore.Cursor {
		t.Helper()
		cur, err := conn.Cursor(ctx)
		require.NoError(t, err)
		require.NoError(t, cur.Execute(ctx, query, args...))
		return cur
	}

	exec("CREATE TABLE items (name TEXT)").Close()
	require.NoError(t, conn.Commit(ctx))

	exec("INSERT INTO items (name) VALUES (?)", "discarded").Close()
	require.NoError(t, conn.Rollback(ctx))

	cur := exec("SELECT COUNT(*) AS c FROM items")
	defer cur.Close()
	require.Len(t, cur.Description(), 1)
	assert.Equal(t, "c", cur.Description()[0].Name)
	rows, err := cur.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(0)}}, rows)
}

func TestCursorExecuteFailureRollsBackTransaction(t *testing.T) {
	ctx := context.Background()
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, nil)
	require.NoError(t, err)

	conn, err := dialer.Connect(ctx, filepath.Join(t.TempDir(), "abort.db"))
	require.NoError(t, err)
	defer conn.Close()

	cur, err := conn.Cursor(ctx)
	require.NoError(t, err)
	require.NoError(t, cur.Execute(ctx, "CREATE TABLE items (name TEXT)"))
	require.NoError(t, conn.Commit(ctx))

	require.NoError(t, cur.Execute(ctx, "INSERT INTO items (name) VALUES (?)", "pending"))
	assert.Error(t, cur.Execute(ctx, "SELECT * FROM missing_table"))
	require.NoError(t, cur.Close())

	// Nothing is left to commit.
	require.NoError(t, conn.Commit(ctx))

	cur, err = conn.Cursor(ctx)
	require.NoError(t, err)
	defer cur.Close()
	require.NoError(t, cur.Execute(ctx, "SELECT COUNT(*) AS c FROM items"))
	rows, err := cur.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(0)}}, rows)
}

func TestCursorCloseEndsReadTransaction(t *testing.T) {
	ctx := context.Background()
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "read.db")

	reader, err := dialer.Connect(ctx, path)
	require.NoError(t, err)
	defer reader.Close()
	writer, err := dialer.Connect(ctx, path)
	require.NoError(t, err)
	defer writer.Close()

	query := func(conn sqlcore.Connection, statement string, args ...any) [][]any {
		t.Helper()
		cur, err := conn.Cursor(ctx)
		require.NoError(t, err)
		defer func() { require.NoError(t, cur.Close()) }()
		require.NoError(t, cur.Execute(ctx, statement, args...))
		if len(cur.Description()) == 0 {
			require.NoError(t, conn.Commit(ctx))
			return nil
		}
		rows, err := cur.FetchAll(ctx)
		require.NoError(t, err)
		return rows
	}

	query(writer, "CREATE TABLE items (name TEXT)")
	assert.Equal(t, [][]any{{int64(0)}}, query(reader, "SELECT COUNT(*) FROM items"))

	start := time.Now()
	query(writer, "INSERT INTO items (name) VALUES (?)", "fresh")
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, [][]any{{int64(1)}}, query(reader, "SELECT COUNT(*) FROM items"))
}

func TestConnectionAutocommit(t *testing.T) {
	ctx := context.Background()
	dialer, err := NewDialer(Config{Driver: DriverSQLite, Autocommit: true}, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "auto.db")

	conn, err := dialer.Connect(ctx, path)
	require.NoError(t, err)

	cur, err := conn.Cursor(ctx)
	require.NoError(t, err)
	require.NoError(t, cur.Execute(ctx, "CREATE TABLE items (name TEXT)"))
	require.NoError(t, cur.Execute(ctx, "INSERT INTO items (name) VALUES (?)", "kept"))
	require.NoError(t, conn.Rollback(ctx))
	require.NoError(t, cur.Close())
	require.NoError(t, conn.Close())

	other, err := dialer.Connect(ctx, path)
	require.NoError(t, err)
	defer other.Close()

	cur, err = other.Cursor(ctx)
	require.NoError(t, err)
	require.NoError(t, cur.Execute(ctx, "SELECT name FROM items"))
	rows, err := cur.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"kept"}}, rows)
}

func TestCursorStates(t *testing.T) {
	ctx := context.Background()
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, nil)
	require.NoError(t, err)
	conn, err := dialer.Connect(ctx, filepath.Join(t.TempDir(), "cursor.db"))
	require.NoError(t, err)
	defer conn.Close()

	cur, err := conn.Cursor(ctx)
	require.NoError(t, err)

	_, err = cur.FetchAll(ctx)
	assert.ErrorIs(t, err, ErrNoResultSet)

	require.NoError(t, cur.Execute(ctx, "CREATE TABLE t (b BLOB, s TEXT)"))
	assert.Empty(t, cur.Description())

	require.NoError(t, cur.Execute(ctx, "INSERT INTO t (b, s) VALUES (?, ?)", []byte{0x01, 0x02}, "text"))
	require.NoError(t, cur.Execute(ctx, "SELECT b, s FROM t"))
	rows, err := cur.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{[]byte{0x01, 0x02}, "text"}}, rows)

	require.NoError(t, cur.Close())
	require.NoError(t, cur.Close())
	assert.ErrorIs(t, cur.Execute(ctx, "SELECT 1"), ErrCursorClosed)
}

func TestConnectReportsUnreachableTarget(t *testing.T) {
	dialer, err := NewDialer(Config{Driver: DriverSQLite}, nil)
	require.NoError(t, err)

	_, err = dialer.Connect(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite"))

	assert.Error(t, err)
}
