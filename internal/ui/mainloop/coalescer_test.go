package mainloop

import (
	"sync"
	"testing"
	"time"
)

type fakeQueue struct {
	mu    sync.Mutex
	tasks []func()
	full  bool
}

func (q *fakeQueue) post(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		return false
	}
	q.tasks = append(q.tasks, fn)
	return true
}

func (q *fakeQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *fakeQueue) runAll() {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	for _, fn := range tasks {
		fn()
	}
}

func TestCoalescerMergesBurstIntoSingleRun(t *testing.T) {
	q := &fakeQueue{}
	c := NewCoalescer(q.post, 0)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("autosave", func() { value = v })
	}

	if q.len() != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", q.len())
	}
	q.runAll()

	if value != 5 {
		t.Fatalf("expected latest callback to run, got %d", value)
	}
	if c.Pending("autosave") {
		t.Fatalf("expected key to be cleared after run")
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	q := &fakeQueue{}
	c := NewCoalescer(q.post, 0)

	c.Post("autosave", func() {})
	c.Post("status", func() {})

	if q.len() != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", q.len())
	}
}

func TestCoalescerDelayWaitsForQuiet(t *testing.T) {
	q := &fakeQueue{}
	c := NewCoalescer(q.post, 20*time.Millisecond)
	defer c.Destroy()

	ran := 0
	c.Post("autosave", func() { ran++ })
	if q.len() != 0 {
		t.Fatalf("expected nothing scheduled before the delay")
	}
	if !c.Pending("autosave") {
		t.Fatalf("expected key to be pending")
	}

	deadline := time.Now().Add(2 * time.Second)
	for q.len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	q.runAll()

	if ran != 1 {
		t.Fatalf("expected one run after the delay, got %d", ran)
	}
}

func TestCoalescerFlushRunsPendingNow(t *testing.T) {
	q := &fakeQueue{}
	c := NewCoalescer(q.post, time.Hour)
	defer c.Destroy()

	ran := false
	c.Post("autosave", func() { ran = true })
	c.Flush()

	if !ran {
		t.Fatalf("expected flush to run pending work")
	}
	if c.Pending("autosave") {
		t.Fatalf("expected nothing pending after flush")
	}
}

func TestCoalescerRejectedPostIsNotPending(t *testing.T) {
	q := &fakeQueue{full: true}
	c := NewCoalescer(q.post, 0)

	c.Post("autosave", func() {})

	if c.Pending("autosave") {
		t.Fatalf("expected rejected task to be forgotten")
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	q := &fakeQueue{}
	c := NewCoalescer(q.post, 0)

	ran := false
	c.Post("autosave", func() { ran = true })
	c.Destroy()

	if q.len() != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", q.len())
	}
	q.runAll()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("autosave", func() { ran = true })
	if q.len() != 0 {
		t.Fatalf("expected no new callback after destroy, got %d", q.len())
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer(nil, 0)
}
