package game

import "testing"

func TestSchedulerRunsDueEventsInOrder(t *testing.T) {
	var s Scheduler
	var got []string

	s.After(0, 1, func() { got = append(got, "late") })
	s.After(0, 0.5, func() { got = append(got, "early") })
	s.After(0, 0.5, func() { got = append(got, "early2") })

	s.Drain(0.4)
	if len(got) != 0 {
		t.Fatalf("ran %v before they were due", got)
	}

	s.Drain(0.6)
	if len(got) != 2 || got[0] != "early" || got[1] != "early2" {
		t.Fatalf("got %v, want [early early2]", got)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	s.Drain(1)
	if len(got) != 3 || got[2] != "late" {
		t.Errorf("got %v", got)
	}
}

func TestSchedulerInvalidateDropsStaleEvents(t *testing.T) {
	var s Scheduler
	fired := false

	s.After(0, 1, func() { fired = true })
	s.Invalidate()
	s.Drain(5)

	if fired {
		t.Errorf("stale event fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerCallbackCanScheduleAndInvalidate(t *testing.T) {
	var s Scheduler
	var got []string

	s.After(0, 1, func() {
		got = append(got, "first")
		s.After(1, 1, func() { got = append(got, "chained") })
	})
	s.Drain(1)
	s.Drain(2)
	if len(got) != 2 || got[1] != "chained" {
		t.Fatalf("got %v, want [first chained]", got)
	}

	got = nil
	s.After(0, 0, func() {
		got = append(got, "stop")
		s.Invalidate()
	})
	s.After(0, 0, func() { got = append(got, "dropped") })
	s.Drain(3)
	if len(got) != 1 {
		t.Errorf("got %v, want only the invalidating event", got)
	}
}
