package sim

// Ticks is a duration measured in host ticks (60 per second in the arcade).
type Ticks int

// TimerID identifies a scheduled callback. The zero value is never issued,
// so it doubles as "no timer".
type TimerID int

// Scheduler runs callbacks after a delay or periodically.
// Callbacks never run concurrently with each other or with the caller.
type Scheduler interface {
	// Every runs fn every interval ticks, first after one interval.
	Every(interval Ticks, fn func()) TimerID

	// After runs fn once, delay ticks from now.
	After(delay Ticks, fn func()) TimerID

	// Cancel stops a timer. Unknown or already finished timers are ignored.
	Cancel(id TimerID)
}

type timer struct {
	id       TimerID
	due      uint64
	interval Ticks // 0 for one-shot timers
	fn       func()
	stopped  bool
}

// TickScheduler is a deterministic Scheduler driven by explicit Advance calls.
// The arcade advances it once per frame; tests advance it directly instead of
// waiting on a wall clock.
type TickScheduler struct {
	now    uint64
	lastID TimerID
	timers []*timer // creation order
}

var _ Scheduler = (*TickScheduler)(nil)

// NewTickScheduler creates a scheduler at tick 0.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Now returns the number of ticks advanced so far.
func (s *TickScheduler) Now() uint64 {
	return s.now
}

// Pending returns the number of live timers.
func (s *TickScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Active reports whether the timer is still scheduled.
func (s *TickScheduler) Active(id TimerID) bool {
	for _, t := range s.timers {
		if t.id == id {
			return !t.stopped
		}
	}
	return false
}

// Every implements Scheduler.
func (s *TickScheduler) Every(interval Ticks, fn func()) TimerID {
	interval = max(interval, 1)
	return s.add(interval, interval, fn)
}

// After implements Scheduler.
func (s *TickScheduler) After(delay Ticks, fn func()) TimerID {
	return s.add(max(delay, 1), 0, fn)
}

func (s *TickScheduler) add(delay, interval Ticks, fn func()) TimerID {
	s.lastID++
	s.timers = append(s.timers, &timer{
		id:       s.lastID,
		due:      s.now + uint64(delay),
		interval: interval,
		fn:       fn,
	})
	return s.lastID
}

// Cancel implements Scheduler. Safe to call from inside a callback.
func (s *TickScheduler) Cancel(id TimerID) {
	for _, t := range s.timers {
		if t.id == id {
			t.stopped = true
			return
		}
	}
}

// Advance moves time forward n ticks, running due callbacks after each tick.
// Callbacks due on the same tick run in creation order. A timer cancelled by
// an earlier callback in the same tick does not run.
func (s *TickScheduler) Advance(n int) {
	for range n {
		s.now++

		var due []*timer
		for _, t := range s.timers {
			if !t.stopped && t.due <= s.now {
				due = append(due, t)
			}
		}

		for _, t := range due {
			if t.stopped {
				continue
			}
			if t.interval > 0 {
				t.due += uint64(t.interval)
			} else {
				t.stopped = true
			}
			t.fn()
		}

		s.compact()
	}
}

// compact drops stopped timers.
func (s *TickScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
