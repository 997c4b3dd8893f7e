package mainloop

import (
	"sync"
	"time"
)

// Coalescer merges bursts of same-key tasks into a single run of the latest
// callback. With a non-zero delay the run is posted once the burst has been
// quiet for that long, which is how autosave avoids writing on every drag
// frame.
type Coalescer struct {
	mu        sync.Mutex
	entries   map[string]*coalesced
	post      func(func()) bool
	delay     time.Duration
	destroyed bool
}

type coalesced struct {
	fn    func()
	timer *time.Timer
}

// NewCoalescer creates a coalescer posting through post, usually Loop.Post.
func NewCoalescer(post func(func()) bool, delay time.Duration) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		entries: make(map[string]*coalesced),
		post:    post,
		delay:   delay,
	}
}

// Post records fn as the latest task for key and schedules it if it is not
// already pending. Later posts before the run replace fn.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}

	if e, ok := c.entries[key]; ok {
		e.fn = fn
		if e.timer != nil {
			e.timer.Reset(c.delay)
		}
		return
	}

	e := &coalesced{fn: fn}
	c.entries[key] = e
	if c.delay <= 0 {
		c.schedule(key)
		return
	}
	e.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.destroyed || c.entries[key] != e {
			return
		}
		c.schedule(key)
	})
}

// schedule hands the run for key to post. Callers hold c.mu.
func (c *Coalescer) schedule(key string) {
	if !c.post(func() { c.fire(key) }) {
		delete(c.entries, key)
	}
}

func (c *Coalescer) fire(key string) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	e, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if ok && e.fn != nil {
		e.fn()
	}
}

// Pending reports whether a run for key is scheduled.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Flush runs every pending task immediately on the calling goroutine.
func (c *Coalescer) Flush() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	fns := make([]func(), 0, len(c.entries))
	for key, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		fns = append(fns, e.fn)
		delete(c.entries, key)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Destroy drops all pending work. Later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	c.destroyed = true
	c.entries = map[string]*coalesced{}
}
