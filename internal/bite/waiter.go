package bite

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// Waiter rolls the dead time between casting the line and a bite. The
// delay is jittered so casts don't feel metronomic, and it grows a
// little on empty cycles: a fish that didn't bite is "circling".
type Waiter struct {
	min     time.Duration
	max     time.Duration
	stretch time.Duration
	rng     *mrand.Rand
}

func NewWaiter(min, max time.Duration) *Waiter {
	if max < min {
		max = min
	}

	seed := func() int64 {
		var b [8]byte
		if _, err := rand.Read(b[:]); err == nil {
			return int64(binary.LittleEndian.Uint64(b[:]))
		}
		return time.Now().UnixNano()
	}()

	return &Waiter{
		min: min,
		max: max,
		rng: mrand.New(mrand.NewSource(seed)),
	}
}

// Next rolls the delay for one wait cycle.
func (w *Waiter) Next() time.Duration {
	d := w.min
	if span := w.max - w.min; span > 0 {
		d += time.Duration(w.rng.Int63n(int64(span)))
	}
	return d + w.stretch
}

// NoBite records an empty cycle; the next delay stretches up to one
// extra min interval so streaks of nothing feel deliberate.
func (w *Waiter) NoBite() {
	if w.stretch < w.min {
		w.stretch += w.min / 4
	}
}

// Bit resets the stretch after a successful bite.
func (w *Waiter) Bit() {
	w.stretch = 0
}

// Wait blocks for one rolled delay, honoring cancellation.
func (w *Waiter) Wait(ctx context.Context) error {
	t := time.NewTimer(w.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
