package game

// scheduledEvent is a deferred mutation pinned to a generation
type scheduledEvent struct {
	at         float64
	generation uint64
	fn         func()
}

// Scheduler runs deferred callbacks against the session clock.
// Invalidate bumps the generation so events queued before a reset never fire.
type Scheduler struct {
	events     []scheduledEvent
	generation uint64
}

// After queues fn to run once the clock reaches now+delay
func (s *Scheduler) After(now, delay float64, fn func()) {
	s.events = append(s.events, scheduledEvent{
		at:         now + delay,
		generation: s.generation,
		fn:         fn,
	})
}

// Drain runs every due event in the order they were queued and drops stale ones
func (s *Scheduler) Drain(now float64) {
	if len(s.events) == 0 {
		return
	}

	due := make([]scheduledEvent, 0, len(s.events))
	remaining := s.events[:0]
	for _, ev := range s.events {
		switch {
		case ev.generation != s.generation:
			// stale
		case ev.at <= now:
			due = append(due, ev)
		default:
			remaining = append(remaining, ev)
		}
	}
	s.events = remaining

	for _, ev := range due {
		// An earlier callback may have invalidated the queue
		if ev.generation != s.generation {
			continue
		}
		ev.fn()
	}
}

// Invalidate discards all pending events
func (s *Scheduler) Invalidate() {
	s.generation++
	s.events = s.events[:0]
}

// Pending returns the number of queued events
func (s *Scheduler) Pending() int {
	return len(s.events)
}
