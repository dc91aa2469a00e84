// Package runloop provides the single cooperative queue that stands in for the
// host UI thread. Tasks run one at a time, in the order they were posted, and
// delayed tasks re-enter the same queue when their timer fires.
package runloop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	"go.uber.org/atomic"

	"instabug_bridge/internal/logging"
)

type Loop struct {
	mu    sync.Mutex
	tasks *queue.Queue

	// runMu serializes task execution between Run and Drain.
	runMu sync.Mutex

	wake    chan struct{}
	clock   Clock
	running atomic.Bool
}

// New creates a Loop whose delayed tasks are timed by clock. A nil clock
// means the system clock.
func New(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock()
	}
	return &Loop{
		tasks: queue.New(),
		wake:  make(chan struct{}, 1),
		clock: clock,
	}
}

// Clock returns the clock used for delayed tasks.
func (l *Loop) Clock() Clock {
	return l.clock
}

// Post enqueues fn to run on the loop. It never blocks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks.Add(fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// After posts fn to the loop once d has elapsed on the loop's clock.
func (l *Loop) After(d time.Duration, fn func()) Timer {
	return l.clock.AfterFunc(d, func() {
		l.Post(fn)
	})
}

// Pending reports the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tasks.Length()
}

// Drain runs queued tasks, including tasks they post, until the queue is
// empty, and returns how many ran.
func (l *Loop) Drain() int {
	l.runMu.Lock()
	defer l.runMu.Unlock()

	ran := 0
	for {
		fn, ok := l.next()
		if !ok {
			return ran
		}
		l.execute(fn)
		ran++
	}
}

// Run drains the queue whenever tasks are posted until ctx is done.
// Only one Run may be active per loop.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("runloop: already running")
	}
	defer l.running.Store(false)

	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tasks.Length() == 0 {
		return nil, false
	}
	return l.tasks.Remove().(func()), true
}

// execute runs a single task; a panicking task is logged and does not stop
// the loop.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.GetLogger().Error("runloop task panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
