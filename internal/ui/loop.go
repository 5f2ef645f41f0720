// Package ui implements the terminal display surface: a single-threaded
// event loop that owns the screen state, a renderer, and an interactive session.
package ui

import (
	"context"
	"sync"
)

// Loop is the single UI execution context. Closures posted to it run one at a
// time on the goroutine that called Run.
type Loop struct {
	events    chan func()
	done      chan struct{}
	pending   sync.WaitGroup
	afterEach func()
}

// NewLoop creates a Loop. afterEach, if not nil, runs on the loop after every
// event, typically to redraw the screen.
func NewLoop(afterEach func()) *Loop {
	return &Loop{
		events:    make(chan func(), 16),
		done:      make(chan struct{}),
		afterEach: afterEach,
	}
}

// Post enqueues fn to run on the loop. It must not be called from the loop itself.
func (l *Loop) Post(fn func()) {
	l.pending.Add(1)
	l.send(fn)
}

// Async runs work on its own goroutine and posts the completion it returns.
// It is safe to call from the loop.
func (l *Loop) Async(work func() func()) {
	l.pending.Add(1)
	go func() {
		l.send(work())
	}()
}

func (l *Loop) send(fn func()) {
	select {
	case l.events <- fn:
	case <-l.done:
		l.pending.Done()
	}
}

// Run drains events until ctx is cancelled. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.events:
			l.dispatch(fn)
		}
	}
}

func (l *Loop) dispatch(fn func()) {
	defer l.pending.Done()
	if fn != nil {
		fn()
	}
	if l.afterEach != nil {
		l.afterEach()
	}
}

// Wait blocks until every posted event and every Async completion has run.
func (l *Loop) Wait() {
	l.pending.Wait()
}
