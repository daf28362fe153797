package schedule

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestManualRunsInDeadlineOrder(t *testing.T) {
	m := NewManual(epoch)
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	if ran := m.Advance(20 * time.Millisecond); ran != 2 {
		t.Fatalf("expected 2 callbacks, got %d", ran)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order: %v", got)
	}
	if !m.Now().Equal(epoch.Add(20 * time.Millisecond)) {
		t.Fatalf("unexpected virtual time: %v", m.Now())
	}

	m.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("expected c to run last, got %v", got)
	}
}

func TestManualRunsChainedTasksInsideWindow(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		m.AfterFunc(10*time.Millisecond, tick)
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(55 * time.Millisecond)
	if count != 5 {
		t.Fatalf("expected 5 ticks, got %d", count)
	}
	if m.Pending() != 1 {
		t.Fatalf("expected the sixth tick to stay queued, got %d pending", m.Pending())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	task := m.AfterFunc(time.Millisecond, func() { fired = true })

	if !task.Cancel() {
		t.Fatal("first Cancel should report true")
	}
	if task.Cancel() {
		t.Fatal("second Cancel should report false")
	}
	m.Advance(time.Second)
	if fired {
		t.Fatal("cancelled task ran")
	}
}

func TestGroupCancelAll(t *testing.T) {
	m := NewManual(epoch)
	g := NewGroup(m)
	fired := 0
	g.AfterFunc(10*time.Millisecond, func() { fired++ })
	g.AfterFunc(20*time.Millisecond, func() { fired++ })
	kept := g.AfterFunc(5*time.Millisecond, func() { fired++ })

	m.Advance(5 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 callback, got %d", fired)
	}
	if kept.Cancel() {
		t.Fatal("Cancel after firing should report false")
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 outstanding tasks, got %d", g.Len())
	}

	if n := g.CancelAll(); n != 2 {
		t.Fatalf("expected CancelAll to drop 2 tasks, got %d", n)
	}
	m.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("cancelled tasks ran, fired=%d", fired)
	}
	if g.CancelAll() != 0 {
		t.Fatal("second CancelAll should be a no-op")
	}
}

func TestClockAfterFunc(t *testing.T) {
	c := NewClock()
	done := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	stopped := c.AfterFunc(time.Hour, func() {})
	if !stopped.Cancel() {
		t.Fatal("expected pending timer to be stopped")
	}
}
