// Package mainloop serializes board work onto one goroutine. Registry,
// surfaces and the annotation engine are not safe for concurrent use, so
// every touch, key and frame tick goes through a Loop.
package mainloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/whiteboard/internal/logging"
)

// ErrStopped is returned when work is submitted to a loop that has exited.
var ErrStopped = errors.New("main loop stopped")

// DefaultFrameInterval drives animations at roughly 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Options configure a Loop.
type Options struct {
	// FrameInterval is the tick period. Zero means DefaultFrameInterval.
	FrameInterval time.Duration
	// OnFrame runs on the loop goroutine once per tick.
	OnFrame func(now time.Time)
	// QueueSize bounds pending tasks. Zero means 256.
	QueueSize int
}

// Loop is a single-goroutine task queue with a frame ticker.
type Loop struct {
	ctx     context.Context
	tasks   chan func()
	frame   time.Duration
	onFrame func(time.Time)

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// New creates a loop. Call Run to start processing.
func New(ctx context.Context, opts Options) *Loop {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	return &Loop{
		ctx:     logging.WithComponent(ctx, "mainloop"),
		tasks:   make(chan func(), opts.QueueSize),
		frame:   opts.FrameInterval,
		onFrame: opts.OnFrame,
		done:    make(chan struct{}),
	}
}

// Post queues fn and reports whether it was accepted.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	select {
	case l.tasks <- fn:
		return true
	default:
		logging.FromContext(l.ctx).Warn().Msg("task queue full, dropping task")
		return false
	}
}

// Call runs fn on the loop and waits for its result.
func (l *Loop) Call(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)
	if !l.Post(func() { result <- fn() }) {
		return ErrStopped
	}
	select {
	case err := <-result:
		return err
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run processes tasks and frame ticks until ctx is cancelled. Tasks still
// queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(l.ctx)
	ticker := time.NewTicker(l.frame)
	defer func() {
		ticker.Stop()
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()
		close(l.done)
		log.Debug().Msg("main loop exited")
	}()

	log.Debug().Dur("frame", l.frame).Msg("main loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			l.run(fn)
		case now := <-ticker.C:
			if l.onFrame != nil {
				l.run(func() { l.onFrame(now) })
			}
		}
	}
}

func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.LogPanic(l.ctx, "mainloop task", r)
		}
	}()
	fn()
}
