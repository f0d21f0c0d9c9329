package clock

import (
	"sync"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	s := New()
	var got []string

	s.After(20*time.Millisecond, func() { got = append(got, "b") })
	s.After(10*time.Millisecond, func() { got = append(got, "a") })
	s.After(20*time.Millisecond, func() { got = append(got, "c") })
	s.After(30*time.Millisecond, func() { got = append(got, "d") })

	s.Advance(25 * time.Millisecond)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
	if s.Now() != 25*time.Millisecond {
		t.Errorf("Expected now 25ms, got %v", s.Now())
	}
	if s.Pending() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", s.Pending())
	}
}

func TestSchedulerCallbackSeesDueTime(t *testing.T) {
	s := New()
	var seen []time.Duration

	var tick func()
	tick = func() {
		seen = append(seen, s.Now())
		if len(seen) < 4 {
			s.After(8*time.Millisecond, tick)
		}
	}
	s.After(0, tick)
	s.Advance(100 * time.Millisecond)

	want := []time.Duration{0, 8 * time.Millisecond, 16 * time.Millisecond, 24 * time.Millisecond}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d ticks, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Tick %d: expected %v, got %v", i, want[i], seen[i])
		}
	}
}

func TestSchedulerPostFromGoroutine(t *testing.T) {
	s := New()
	ran := 0

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() { ran++ })
		}()
	}
	wg.Wait()

	if ran != 0 {
		t.Fatalf("Expected posted callbacks to wait for Advance, got %d", ran)
	}
	s.Advance(0)
	if ran != 10 {
		t.Errorf("Expected 10 posted callbacks, got %d", ran)
	}
}

func TestSchedulerStop(t *testing.T) {
	s := New()
	ran := 0

	s.After(10*time.Millisecond, func() {
		ran++
		s.Stop()
	})
	s.After(10*time.Millisecond, func() { ran++ })
	s.Post(func() {})

	s.Advance(time.Second)
	if ran != 1 {
		t.Errorf("Expected only the stopping callback to run, got %d", ran)
	}
	if !s.Stopped() {
		t.Error("Expected scheduler to be stopped")
	}

	s.After(0, func() { ran++ })
	s.Post(func() { ran++ })
	s.Advance(time.Second)
	if ran != 1 {
		t.Errorf("Expected callbacks after Stop to be ignored, got %d", ran)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}
