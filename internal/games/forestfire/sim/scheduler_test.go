package sim

import "testing"

func TestTickSchedulerAfter(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.After(3, func() { fired++ })

	s.Advance(2)
	if fired != 0 {
		t.Fatal("fired early")
	}
	s.Advance(1)
	if fired != 1 {
		t.Fatalf("fired = %d, expected 1", fired)
	}
	s.Advance(10)
	if fired != 1 {
		t.Errorf("one-shot fired again: %d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, expected 0", s.Pending())
	}
}

func TestTickSchedulerEvery(t *testing.T) {
	s := NewTickScheduler()
	var at []uint64
	s.Every(4, func() { at = append(at, s.Now()) })

	s.Advance(13)
	expected := []uint64{4, 8, 12}
	if len(at) != len(expected) {
		t.Fatalf("fired at %v, expected %v", at, expected)
	}
	for i := range expected {
		if at[i] != expected[i] {
			t.Errorf("fire %d at tick %d, expected %d", i, at[i], expected[i])
		}
	}
}

func TestTickSchedulerOrderAndCancel(t *testing.T) {
	s := NewTickScheduler()
	var order []string

	var second TimerID
	s.After(5, func() {
		order = append(order, "first")
		s.Cancel(second)
	})
	second = s.After(5, func() { order = append(order, "second") })
	s.After(5, func() { order = append(order, "third") })

	s.Advance(5)
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("order = %v, expected [first third]", order)
	}
	if s.Active(second) {
		t.Error("cancelled timer should not be active")
	}
}

func TestTickSchedulerCancelUnknown(t *testing.T) {
	s := NewTickScheduler()
	s.Cancel(0)
	s.Cancel(99)

	id := s.Every(1, func() {})
	s.Cancel(id)
	s.Cancel(id)
	s.Advance(3)
	if s.Pending() != 0 {
		t.Errorf("pending = %d, expected 0", s.Pending())
	}
}

func TestTickSchedulerScheduleFromCallback(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.After(1, func() {
		s.After(2, func() { fired++ })
	})

	s.Advance(2)
	if fired != 0 {
		t.Fatal("nested timer fired early")
	}
	s.Advance(1)
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
}

func TestTickSchedulerZeroDelay(t *testing.T) {
	s := NewTickScheduler()
	fired := false
	s.After(0, func() { fired = true })
	s.Advance(1)
	if !fired {
		t.Error("zero delay should fire on the next tick")
	}
}
