package sqlcore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncMatchesSync(t *testing.T) {
	scenarios := []struct {
		name    string
		driver  func() *fakeDriver
		commits int
	}{
		{
			name: "two rows",
			driver: func() *fakeDriver {
				return newFakeDriver().withResult([]string{"id", "name"}, []any{1, "Alice"}, []any{2, "Bob"})
			},
		},
		{
			name: "zero rows",
			driver: func() *fakeDriver {
				return newFakeDriver().withResult([]string{"id"})
			},
		},
		{
			name:    "no result set",
			driver:  newFakeDriver,
			commits: 1,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			syncDriver, asyncDriver := sc.driver(), sc.driver()
			log, _ := newTestLogger()
			cfg := Config{ConnectionString: "fake://db", PoolSize: 1, AsyncWorkers: 2}

			connector, err := NewConnector(context.Background(), cfg, syncDriver, log)
			require.NoError(t, err)
			async, err := NewAsyncConnector(context.Background(), cfg, asyncDriver, log)
			require.NoError(t, err)

			want, err := connector.ExecuteQuery(context.Background(), "SELECT * FROM users WHERE id = ?", 1)
			require.NoError(t, err)
			got, err := async.ExecuteQuery(context.Background(), "SELECT * FROM users WHERE id = ?", 1).Await(context.Background())
			require.NoError(t, err)

			assert.Equal(t, want, got)
			assert.Equal(t, syncDriver.statements(), asyncDriver.statements())

			syncCommits, _, _, _ := syncDriver.totals()
			asyncCommits, _, _, _ := asyncDriver.totals()
			assert.Equal(t, sc.commits, syncCommits)
			assert.Equal(t, sc.commits, asyncCommits)

			assertReleased(t, connector.Pool(), syncDriver)
			assertReleased(t, async.Pool(), asyncDriver)
		})
	}
}

func TestAsyncStoredProcedureFuture(t *testing.T) {
	driver := newFakeDriver().fail(opExecute, errInjected)
	log, _ := newTestLogger()
	async, err := NewAsyncConnector(context.Background(), Config{ConnectionString: "fake://db", PoolSize: 1}, driver, log)
	require.NoError(t, err)

	_, err = async.ExecuteStoredProcedure(context.Background(), "P", 1, 2).Await(context.Background())

	assert.ErrorIs(t, err, errInjected)
	_, rollbacks, _, _ := driver.totals()
	assert.Equal(t, 1, rollbacks)
	assertReleased(t, async.Pool(), driver)
}

func TestAsyncAbandonedAwaitStillReleases(t *testing.T) {
	driver := newFakeDriver().withResult([]string{"id"}, []any{1})
	log, _ := newTestLogger()
	async, err := NewAsyncConnector(context.Background(), Config{ConnectionString: "fake://db", PoolSize: 1}, driver, log)
	require.NoError(t, err)

	// Hold the only connection so the operation parks in acquire.
	held, err := async.Pool().Acquire(context.Background())
	require.NoError(t, err)

	future := async.ExecuteQuery(context.Background(), "SELECT id FROM users")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := future.Await(ctx)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, async.Pool().Release(held))

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("operation did not complete after the connection was released")
	}

	result, err = future.Wait()
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assertReleased(t, async.Pool(), driver)
}

func TestAsyncCancelledCallerContextDoesNotSkipCleanup(t *testing.T) {
	driver := newFakeDriver().fail(opCommit, errInjected)
	log, _ := newTestLogger()
	async, err := NewAsyncConnector(context.Background(), Config{ConnectionString: "fake://db"}, driver, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	future := async.ExecuteStoredProcedure(ctx, "P")
	cancel()

	<-future.Done()
	_, rollbacks, _, _ := driver.totals()
	assert.Equal(t, 1, rollbacks)
	assertReleased(t, async.Pool(), driver)
}

func TestAsyncConcurrentOperationsRespectPoolBound(t *testing.T) {
	driver := newFakeDriver().withResult([]string{"id"}, []any{1})
	log, _ := newTestLogger()
	async, err := NewAsyncConnector(context.Background(), Config{ConnectionString: "fake://db", PoolSize: 2, AsyncWorkers: 3}, driver, log)
	require.NoError(t, err)

	futures := make([]*Future[ResultSet], 20)
	for i := range futures {
		futures[i] = async.ExecuteTableValuedFunction(context.Background(), "F", i)
	}
	for _, f := range futures {
		result, err := f.Wait()
		require.NoError(t, err)
		assert.Len(t, result, 1)
	}

	assert.Equal(t, 2, driver.dialCount())
	assert.Len(t, driver.statements(), 20)
	assertReleased(t, async.Pool(), driver)
}

func TestWorkerPoolBoundsConcurrentDriverCalls(t *testing.T) {
	const workers = 2
	pool := newWorkerPool(workers)

	var (
		current atomic.Int32
		peak    atomic.Int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pool.dispatch(context.Background(), func(context.Context) error {
				n := current.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				current.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Positive(t, peak.Load())
}

func TestWorkerPoolReturnsCallError(t *testing.T) {
	pool := newWorkerPool(1)

	err := pool.dispatch(context.Background(), func(context.Context) error {
		return errInjected
	})

	assert.ErrorIs(t, err, errInjected)
}

func TestWorkerPoolRecoversPanics(t *testing.T) {
	pool := newWorkerPool(1)

	err := pool.dispatch(context.Background(), func(context.Context) error {
		panic("driver exploded")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver exploded")

	// The slot was returned.
	assert.NoError(t, pool.dispatch(context.Background(), func(context.Context) error { return nil }))
}

func TestAsyncDriverPanicBecomesError(t *testing.T) {
	dialer := DialerFunc(func(context.Context, string) (Connection, error) {
		panic("dial exploded")
	})
	log, _ := newTestLogger()
	async, err := NewAsyncConnector(context.Background(), Config{ConnectionString: "fake://db"}, dialer, log)
	require.NoError(t, err)

	_, err = async.ExecuteQuery(context.Background(), "SELECT 1").Wait()

	require.Error(t, err)
	assert.True(t, IsDriverError(err))
	assert.Contains(t, err.Error(), "dial exploded")
	assert.Equal(t, Stats{}, async.Pool().Stats())
}

func TestFutureAwait(t *testing.T) {
	release := make(chan struct{})
	f := goFuture(func() (int, error) {
		<-release
		return 42, nil
	})

	select {
	case <-f.Done():
		t.Fatal("future completed early")
	default:
	}

	close(release)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFutureAwaitError(t *testing.T) {
	f := goFuture(func() (string, error) {
		return "", errors.New("boom")
	})

	_, err := f.Wait()
	assert.EqualError(t, err, "boom")
}
