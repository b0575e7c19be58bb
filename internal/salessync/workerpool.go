package salessync

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPool struct {
	pool  chan Task
	wg    sync.WaitGroup
	close sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{pool: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("sales sync task failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish. No
// AddTask may run concurrently with it.
func (wp *WorkerPool) Close() {
	wp.close.Do(func() {
		close(wp.pool)
	})
	wp.wg.Wait()
}
