// Package loop runs submitted work one task at a time on a single
// goroutine. Every read of the session graph and the relay registry goes
// through it, so no task ever observes a half-applied mutation.
package loop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned when the loop is not running anymore.
var ErrStopped = errors.New("event loop stopped")

type task struct {
	fn   func()
	done chan struct{}
}

// Loop is a serial task executor.
type Loop struct {
	tasks   chan task
	stopped chan struct{}
	once    sync.Once
}

// New builds a loop with the given task queue length.
func New(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		tasks:   make(chan task, buffer),
		stopped: make(chan struct{}),
	}
}

// Run executes tasks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer l.once.Do(func() { close(l.stopped) })
	for {
		select {
		case t := <-l.tasks:
			t.fn()
			close(t.done)
		case <-ctx.Done():
			return
		}
	}
}

// Do runs fn on the loop and waits for it to finish. It returns ctx.Err()
// when ctx ends first and ErrStopped once the loop has exited. If ctx ends
// after fn was queued, fn may still run later.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	t := task{fn: fn, done: make(chan struct{})}
	select {
	case l.tasks <- t:
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-t.done:
		return nil
	case <-l.stopped:
		// Run may have finished fn right before exiting.
		select {
		case <-t.done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped is closed once Run has returned.
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}
