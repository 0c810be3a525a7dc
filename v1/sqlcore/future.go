package sqlcore

import "context"

// Future is the pending outcome of an AsyncConnector operation.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func goFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Done is closed when the operation has finished, connection released.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the operation and returns its outcome. If ctx ends first Await
// returns ctx.Err(); the operation keeps running and still releases its connection.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait blocks until the operation has finished and returns its outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}
