package sqlcore

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// Pool hands out driver connections to one caller at a time.
//
// In bounded mode (capacity > 0) the pool opens capacity connections up front and
// keeps them in a buffered channel. Acquire blocks while every connection is
// checked out; Release puts the connection back and wakes one waiter. The number
// of connections in circulation never exceeds capacity.
//
// In unbounded mode (capacity == 0) nothing is kept: Acquire dials a new
// connection and Release closes it.
//
// A Pool is safe for concurrent use. The synchronous Connector and the
// AsyncConnector can share one Pool.
type Pool struct {
	target   string
	dialer   Dialer
	capacity int
	logger   Logger

	idle    chan Connection
	closing chan struct{}

	// mu orders Release against CloseAll so that nothing is put back into the
	// idle buffer once teardown has started.
	mu     sync.Mutex
	closed bool

	inUse    atomic.Int64
	acquired atomic.Uint64
	released atomic.Uint64
}

// Stats is a point-in-time snapshot of pool usage.
type Stats struct {
	// Capacity is the configured bound; zero in unbounded mode.
	Capacity int

	// Idle is the number of connections waiting in the pool.
	Idle int

	// InUse is the number of connections currently checked out.
	InUse int64

	// Acquired and Released count checkouts and returns since creation.
	Acquired uint64
	Released uint64
}

// NewPool validates cfg and creates a pool. In bounded mode every connection is
// dialed before NewPool returns; if any dial fails the connections opened so far
// are closed and the error is returned.
func NewPool(ctx context.Context, cfg Config, dialer Dialer, log Logger) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	target, err := cfg.connectionTarget()
	if err != nil {
		return nil, err
	}
	if dialer == nil {
		return nil, ErrMissingDialer
	}
	if log == nil {
		log = defaultLogger()
	}

	p := &Pool{
		target:   target,
		dialer:   dialer,
		capacity: cfg.PoolSize,
		logger:   log,
		closing:  make(chan struct{}),
	}

	if p.capacity == 0 {
		log.Info("Connection pool created in unbounded mode", nil, nil)
		return p, nil
	}

	p.idle = make(chan Connection, p.capacity)
	for i := 0; i < p.capacity; i++ {
		conn, err := dialer.Connect(ctx, target)
		if err != nil {
			closeErr := p.drain(closeConnection)
			return nil, multierr.Append(
				fmt.Errorf("failed to open pooled connection %d of %d: %w", i+1, p.capacity, driverError(opConnect, "", err)),
				closeErr,
			)
		}
		p.idle <- conn
	}

	log.Info("Connection pool created", nil, map[string]interface{}{
		"capacity": p.capacity,
	})
	return p, nil
}

// Capacity returns the configured bound, or zero in unbounded mode.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Unbounded reports whether the pool dials a connection per Acquire.
func (p *Pool) Unbounded() bool {
	return p.capacity == 0
}

// Acquire checks out a connection. In bounded mode it blocks until one is idle,
// the pool is closed, or ctx is done. There is no acquisition timeout beyond the
// one carried by ctx.
func (p *Pool) Acquire(ctx context.Context) (Connection, error) {
	return p.acquire(ctx, p.dialer.Connect)
}

// Release returns conn to the pool. In unbounded mode, or once the pool is closed,
// the connection is closed instead and the close error, if any, is returned.
// Callers treat that error as best-effort cleanup.
func (p *Pool) Release(conn Connection) error {
	return p.release(conn, closeConnection)
}

// CloseAll closes every idle connection exactly once and marks the pool closed.
// Checked-out connections are left alone; they are closed when released.
// Calling CloseAll more than once is safe.
func (p *Pool) CloseAll() error {
	return p.closeAll(closeConnection)
}

// Stats returns a snapshot of pool usage.
func (p *Pool) Stats() Stats {
	return Stats{
		Capacity: p.capacity,
		Idle:     len(p.idle),
		InUse:    p.inUse.Load(),
		Acquired: p.acquired.Load(),
		Released: p.released.Load(),
	}
}

func (p *Pool) acquire(ctx context.Context, dial func(ctx context.Context, target string) (Connection, error)) (Connection, error) {
	if p.Unbounded() {
		if p.isClosed() {
			return nil, ErrPoolClosed
		}
		conn, err := dial(ctx, p.target)
		if err != nil {
			return nil, driverError(opConnect, "", err)
		}
		p.checkout()
		return conn, nil
	}

	// A closed pool has nothing idle, so checking closing first is only a fast path.
	select {
	case <-p.closing:
		return nil, ErrPoolClosed
	default:
	}

	select {
	case conn := <-p.idle:
		p.checkout()
		return conn, nil
	case <-p.closing:
		return nil, ErrPoolClosed
	case <-ctx.Done():
		return nil, fmt.Errorf("acquire connection: %w", ctx.Err())
	}
}

func (p *Pool) release(conn Connection, closeFn func(Connection) error) error {
	if conn == nil {
		return nil
	}
	p.checkin()

	if p.Unbounded() {
		return driverError(opClose, "", closeFn(conn))
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return driverError(opClose, "", closeFn(conn))
	}
	select {
	case p.idle <- conn:
		p.mu.Unlock()
		return nil
	default:
		// The buffer only fills up if conn was never checked out from this pool.
		p.mu.Unlock()
		return driverError(opClose, "", closeFn(conn))
	}
}

func (p *Pool) closeAll(closeFn func(Connection) error) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.closing)
	}
	p.mu.Unlock()

	err := p.drain(closeFn)
	if p.capacity > 0 {
		p.logger.Info("Connection pool closed", err, map[string]interface{}{
			"in_use": p.inUse.Load(),
		})
	}
	return err
}

// drain closes idle connections until the buffer is empty.
func (p *Pool) drain(closeFn func(Connection) error) error {
	var errs error
	for {
		select {
		case conn := <-p.idle:
			errs = multierr.Append(errs, driverError(opClose, "", closeFn(conn)))
		default:
			return errs
		}
	}
}

func (p *Pool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Pool) checkout() {
	p.inUse.Add(1)
	p.acquired.Add(1)
}

func (p *Pool) checkin() {
	p.inUse.Add(-1)
	p.released.Add(1)
}

func closeConnection(conn Connection) error {
	return conn.Close()
}
