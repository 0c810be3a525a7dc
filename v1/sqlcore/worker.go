package sqlcore

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// workerPool runs driver calls on separate goroutines, at most size at once.
type workerPool struct {
	sem *semaphore.Weighted
}

func newWorkerPool(size int) *workerPool {
	return &workerPool{sem: semaphore.NewWeighted(int64(size))}
}

// dispatch runs fn on a worker and waits for it to finish. Waiting for a free
// worker ignores ctx cancellation so cleanup calls always run; fn itself receives
// ctx unchanged.
func (w *workerPool) dispatch(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := w.sem.Acquire(context.WithoutCancel(ctx), 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer w.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("sqlcore: driver call panicked: %v", r)
			}
		}()
		done <- fn(ctx)
	}()
	return <-done
}
