package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

var ErrPoolClosed = errors.New("worker pool closed")

// WorkerPool runs tasks on a fixed number of goroutines fed by a bounded queue.
type WorkerPool struct {
	tasks  chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue < workers {
		queue = workers
	}
	wp := &WorkerPool{tasks: make(chan Task, queue)}
	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task(context.Background()); err != nil {
			zap.L().Error("notification task failed", zap.Error(err))
		}
	}
}

// TryAdd queues the task without blocking. It returns false when the queue is full or the pool
// is closed.
func (wp *WorkerPool) TryAdd(task Task) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return false
	}
	select {
	case wp.tasks <- task:
		return true
	default:
		return false
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.tasks)
	}
	wp.mu.Unlock()
	wp.wg.Wait()
}
