// Package clock provides the cooperative scheduler that drives a round.
//
// All callbacks run on the goroutine that calls Advance. Post is the only
// method safe to call from other goroutines.
package clock

import (
	"container/heap"
	"sync"
	"time"
)

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler runs callbacks against a virtual monotonic clock.
// Callbacks due at the same instant run in registration order.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	timers  timerHeap
	stopped bool

	mu    sync.Mutex
	inbox []func()
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed. Negative delays are
// treated as zero. Ignored after Stop.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if s.stopped {
		return
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.timers, &timer{due: s.now + d, seq: s.seq, fn: fn})
}

// Post queues fn to run on the scheduling goroutine at the next Advance.
// Safe for concurrent use.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.inbox = append(s.inbox, fn)
	s.mu.Unlock()
}

// Advance moves the clock forward by d, running everything that becomes due.
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the clock to t, running posted callbacks first and then
// every timer due at or before t in (due, registration) order. Each timer
// observes Now equal to its own due time.
func (s *Scheduler) AdvanceTo(t time.Duration) {
	s.drain()
	for !s.stopped && len(s.timers) > 0 && s.timers[0].due <= t {
		next := heap.Pop(&s.timers).(*timer)
		s.now = next.due
		next.fn()
		s.drain()
	}
	if t > s.now {
		s.now = t
	}
}

// drain runs the callbacks posted so far. Callbacks posted while draining
// wait for the next drain.
func (s *Scheduler) drain() {
	s.mu.Lock()
	pending := s.inbox
	s.inbox = nil
	s.mu.Unlock()

	for _, fn := range pending {
		if s.stopped {
			return
		}
		fn()
	}
}

// Stop discards every pending timer and posted callback. Later
// registrations are ignored. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.stopped = true
	s.timers = nil
	s.mu.Lock()
	s.inbox = nil
	s.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
