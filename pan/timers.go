// SPDX-License-Identifier: Unlicense OR MIT

package pan

import "time"

// The engine is single threaded and cooperative: all scheduled work
// runs from Advance, on whatever goroutine the host drives the area
// from. timerQueue replaces the GLib timeout sources of the original
// widget with explicit deadlines against the host's monotonic clock.

type timerID int

type timer struct {
	id       timerID
	when     time.Duration
	interval time.Duration
	repeat   bool
	// f is the timer callback. A repeating timer is rescheduled
	// while f returns true.
	f func() bool
}

type timerQueue struct {
	seq    timerID
	timers []timer
}

// after schedules f to run once at now+d.
func (q *timerQueue) after(now, d time.Duration, f func() bool) timerID {
	q.seq++
	q.timers = append(q.timers, timer{id: q.seq, when: now + d, f: f})
	return q.seq
}

// every schedules f to run at now+d and then every d while it
// returns true.
func (q *timerQueue) every(now, d time.Duration, f func() bool) timerID {
	q.seq++
	q.timers = append(q.timers, timer{id: q.seq, when: now + d, interval: d, repeat: true, f: f})
	return q.seq
}

// remove unregisters a timer. Removing an id that already fired or
// was removed is a no-op, so state reset paths can remove
// unconditionally.
func (q *timerQueue) remove(id timerID) {
	for i := range q.timers {
		if q.timers[i].id == id {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return
		}
	}
}

// next returns the earliest pending deadline.
func (q *timerQueue) next() (time.Duration, bool) {
	if len(q.timers) == 0 {
		return 0, false
	}
	min := q.timers[0].when
	for _, t := range q.timers[1:] {
		if t.when < min {
			min = t.when
		}
	}
	return min, true
}

// advance runs every timer due at or before now, in deadline order.
// Callbacks may add and remove timers; a timer is taken off the queue
// before its callback runs, so a callback removing its own id is
// harmless.
func (q *timerQueue) advance(now time.Duration) {
	for {
		idx := -1
		for i := range q.timers {
			if q.timers[i].when > now {
				continue
			}
			if idx == -1 || q.timers[i].when < q.timers[idx].when {
				idx = i
			}
		}
		if idx == -1 {
			return
		}
		t := q.timers[idx]
		q.timers = append(q.timers[:idx], q.timers[idx+1:]...)
		again := t.f()
		if t.repeat && again {
			t.when += t.interval
			if t.when <= now {
				// Missed ticks are dropped rather than
				// replayed.
				t.when = now + t.interval
			}
			q.timers = append(q.timers, t)
		}
	}
}

// clear unregisters everything.
func (q *timerQueue) clear() {
	q.timers = q.timers[:0]
}
