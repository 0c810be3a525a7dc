package sqldriver

import (
	"context"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"

	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// connection adapts one dedicated *sqlx.DB to sqlcore.Connection.
//
// The handle is limited to a single physical connection so that the lazily
// opened transaction and every cursor see the same session.
type connection struct {
	db         *sqlx.DB
	autocommit bool

	mu sync.Mutex
	tx *sqlx.Tx
}

func newConnection(db *sqlx.DB, autocommit bool) *connection {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &connection{db: db, autocommit: autocommit}
}

func (c *connection) Cursor(context.Context) (sqlcore.Cursor, error) {
	return &cursor{conn: c}, nil
}

// queryer returns the handle statements run on, opening the connection's
// transaction on first use when autocommit is off. The second result is the
// transaction started by this call, nil when an open one was joined.
func (c *connection) queryer(ctx context.Context) (sqlx.QueryerContext, *sqlx.Tx, error) {
	if c.autocommit {
		return c.db, nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx != nil {
		return c.tx, nil, nil
	}

	// The transaction outlives the call that opened it.
	tx, err := c.db.BeginTxx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return nil, nil, err
	}
	c.tx = tx
	return tx, tx, nil
}

// takeTx detaches the open transaction, if any.
func (c *connection) takeTx() *sqlx.Tx {
	c.mu.Lock()
	defer c.mu.Unlock()
	tx := c.tx
	c.tx = nil
	return tx
}

// finish commits tx if it is still the connection's open transaction.
func (c *connection) finish(tx *sqlx.Tx) error {
	c.mu.Lock()
	if c.tx != tx {
		c.mu.Unlock()
		return nil
	}
	c.tx = nil
	c.mu.Unlock()
	return tx.Commit()
}

func (c *connection) Commit(context.Context) error {
	if tx := c.takeTx(); tx != nil {
		return tx.Commit()
	}
	return nil
}

func (c *connection) Rollback(context.Context) error {
	if tx := c.takeTx(); tx != nil {
		return tx.Rollback()
	}
	return nil
}

// Close rolls back any open transaction and closes the underlying handle.
func (c *connection) Close() error {
	var err error
	if tx := c.takeTx(); tx != nil {
		err = tx.Rollback()
	}
	return multierr.Append(err, c.db.Close())
}

func (c *connection) driverName() string {
	return c.db.DriverName()
}

type cursor struct {
	conn *connection

	// tx is the transaction this cursor opened. rowsOnly stays set while every
	// statement run in it returned a result set; Close then ends it so no
	// read locks or snapshots survive the cursor.
	tx       *sqlx.Tx
	rowsOnly bool

	rows        *sqlx.Rows
	description []sqlcore.ColumnDescriptor
	closed      bool
}

// Execute runs query with args. Statements without a result set are run to
// completion immediately; otherwise the rows stay open for FetchAll.
// A failed statement rolls back the connection's open transaction.
func (c *cursor) Execute(ctx context.Context, query string, args ...any) error {
	if c.closed {
		return ErrCursorClosed
	}
	c.description = nil
	if err := c.closeRows(); err != nil {
		return err
	}

	q, opened, err := c.conn.queryer(ctx)
	if err != nil {
		return err
	}
	if opened != nil {
		c.tx = opened
		c.rowsOnly = true
	}

	rows, err := q.QueryxContext(ctx, Rebind(c.conn.driverName(), query), args...)
	if err != nil {
		return c.abort(err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return c.abort(multierr.Append(err, rows.Close()))
	}

	if len(types) == 0 {
		// Some drivers only run the statement once the rows are stepped.
		for rows.Next() {
			continue
		}
		if err := multierr.Append(rows.Err(), rows.Close()); err != nil {
			return c.abort(err)
		}
		c.rowsOnly = false
		return nil
	}

	c.rows = rows
	c.description = make([]sqlcore.ColumnDescriptor, len(types))
	for i, ct := range types {
		c.description[i] = sqlcore.ColumnDescriptor{
			Name:         ct.Name(),
			DatabaseType: ct.DatabaseTypeName(),
		}
	}
	return nil
}

// abort rolls back the connection's open transaction after err.
func (c *cursor) abort(err error) error {
	c.tx = nil
	return multierr.Append(err, c.conn.Rollback(context.Background()))
}

func (c *cursor) Description() []sqlcore.ColumnDescriptor {
	return c.description
}

// FetchAll reads every remaining row and closes the result set.
func (c *cursor) FetchAll(context.Context) ([][]any, error) {
	if c.closed {
		return nil, ErrCursorClosed
	}
	if c.rows == nil {
		return nil, ErrNoResultSet
	}

	var out [][]any
	for c.rows.Next() {
		row, err := c.rows.SliceScan()
		if err != nil {
			return nil, c.abort(multierr.Append(err, c.closeRows()))
		}
		for i, v := range row {
			row[i] = normalizeValue(c.description[i].DatabaseType, v)
		}
		out = append(out, row)
	}
	if err := c.rows.Err(); err != nil {
		return nil, c.abort(multierr.Append(err, c.closeRows()))
	}
	return out, c.closeRows()
}

func (c *cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.closeRows()
	if c.tx != nil && c.rowsOnly {
		err = multierr.Append(err, c.conn.finish(c.tx))
	}
	c.tx = nil
	return err
}

func (c *cursor) closeRows() error {
	if c.rows == nil {
		return nil
	}
	rows := c.rows
	c.rows = nil
	return rows.Close()
}

// normalizeValue turns driver byte slices into strings unless the column is binary.
func normalizeValue(databaseType string, v any) any {
	b, ok := v.([]byte)
	if !ok || isBinaryType(databaseType) {
		return v
	}
	return string(b)
}

func isBinaryType(databaseType string) bool {
	t := strings.ToUpper(databaseType)
	return strings.Contains(t, "BLOB") ||
		strings.Contains(t, "BINARY") ||
		t == "BYTEA" ||
		t == "IMAGE"
}
