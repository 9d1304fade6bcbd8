package viewer

import (
	"sort"
	"time"
)

type deferred struct {
	due time.Time
	seq uint64
	fn  func()
}

// Queue holds callbacks deferred by a fixed delay. It never starts goroutines:
// callbacks only run inside RunDue, on the caller's goroutine.
type Queue struct {
	now     func() time.Time
	seq     uint64
	pending []deferred
}

// NewQueue creates a queue that reads the current time from now.
// A nil now falls back to time.Now.
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// After schedules fn to run once d has elapsed. Callbacks sharing a due time
// run in the order they were scheduled.
func (q *Queue) After(d time.Duration, fn func()) {
	q.seq++
	q.pending = append(q.pending, deferred{due: q.now().Add(d), seq: q.seq, fn: fn})
}

// RunDue runs every callback due at or before now and returns how many ran.
// Callbacks scheduled while running are kept for a later call.
func (q *Queue) RunDue(now time.Time) int {
	var due, rest []deferred
	for _, d := range q.pending {
		if d.due.After(now) {
			rest = append(rest, d)
		} else {
			due = append(due, d)
		}
	}
	q.pending = rest

	sort.Slice(due, func(i, j int) bool {
		if !due[i].due.Equal(due[j].due) {
			return due[i].due.Before(due[j].due)
		}
		return due[i].seq < due[j].seq
	})

	for _, d := range due {
		d.fn()
	}
	return len(due)
}

// Next returns when the earliest pending callback is due
func (q *Queue) Next() (time.Time, bool) {
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	next := q.pending[0].due
	for _, d := range q.pending[1:] {
		if d.due.Before(next) {
			next = d.due
		}
	}
	return next, true
}

// Len returns the number of pending callbacks
func (q *Queue) Len() int {
	return len(q.pending)
}
