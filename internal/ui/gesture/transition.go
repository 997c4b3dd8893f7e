package gesture

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// transition linearly interpolates a 2D value. The clock starts at the
// first step so callers never need to inject a start time.
type transition struct {
	from, to r2.Vec
	duration time.Duration
	start    time.Time
	started  bool
}

func newTransition(from, to r2.Vec, d time.Duration) *transition {
	return &transition{from: from, to: to, duration: d}
}

// step returns the value at now and whether the transition has finished.
func (t *transition) step(now time.Time) (r2.Vec, bool) {
	if !t.started {
		t.start = now
		t.started = true
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.duration || t.duration <= 0 {
		return t.to, true
	}
	frac := float64(elapsed) / float64(t.duration)
	return r2.Add(t.from, r2.Scale(frac, r2.Sub(t.to, t.from))), false
}
