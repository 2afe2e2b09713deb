package dom

import (
	"context"
	"sort"
	"time"
)

// Loop is a single-threaded timer queue. Time only moves through Advance or
// Drain, so tests can step it without sleeping.
type Loop struct {
	now    time.Duration
	seq    int
	timers []pendingTimer
}

type pendingTimer struct {
	due time.Duration
	seq int
	fn  func()
}

// SetTimeout schedules fn to run d after the loop's current time.
func (l *Loop) SetTimeout(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	l.seq++
	l.timers = append(l.timers, pendingTimer{due: l.now + d, seq: l.seq, fn: fn})
	sort.SliceStable(l.timers, func(i, j int) bool {
		if l.timers[i].due == l.timers[j].due {
			return l.timers[i].seq < l.timers[j].seq
		}
		return l.timers[i].due < l.timers[j].due
	})
}

// Pending is the number of timers not yet fired.
func (l *Loop) Pending() int { return len(l.timers) }

// Advance moves virtual time forward by d, firing due timers in order.
func (l *Loop) Advance(d time.Duration) {
	target := l.now + d
	for len(l.timers) > 0 && l.timers[0].due <= target {
		t := l.timers[0]
		l.timers = l.timers[1:]
		l.now = t.due
		t.fn()
	}
	l.now = target
}

// Drain waits in real time until every pending timer has fired.
func (l *Loop) Drain(ctx context.Context) error {
	for len(l.timers) > 0 {
		wait := l.timers[0].due - l.now
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		l.Advance(wait)
	}
	return nil
}
