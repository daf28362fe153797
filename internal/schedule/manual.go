package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a virtual-time Scheduler. Nothing runs until Advance or RunUntilIdle
// is called, and callbacks run on the caller's goroutine in deadline order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTask struct {
	m   *Manual
	at  time.Time
	seq uint64
	f   func()
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	return t.m.remove(t)
}

// AfterFunc queues f to run once virtual time reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Task {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{m: m, at: m.now.Add(d), seq: m.seq, f: f}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending reports how many tasks are queued.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves virtual time forward by d and runs every task that falls due,
// including tasks scheduled by callbacks inside the window. It returns the
// number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	end := m.now.Add(d)
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		t := m.next()
		if t == nil || t.at.After(end) {
			m.now = end
			m.mu.Unlock()
			return ran
		}
		m.remove(t)
		if t.at.After(m.now) {
			m.now = t.at
		}
		m.mu.Unlock()

		t.f()
		ran++
	}
}

// RunUntilIdle keeps jumping to the next deadline until the queue is empty or
// limit callbacks have run. It returns the number of callbacks run.
func (m *Manual) RunUntilIdle(limit int) int {
	ran := 0
	for ran < limit {
		m.mu.Lock()
		t := m.next()
		if t == nil {
			m.mu.Unlock()
			return ran
		}
		m.remove(t)
		if t.at.After(m.now) {
			m.now = t.at
		}
		m.mu.Unlock()

		t.f()
		ran++
	}
	return ran
}

// next returns the earliest queued task. Caller holds m.mu.
func (m *Manual) next() *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at.Equal(m.tasks[j].at) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].at.Before(m.tasks[j].at)
	})
	return m.tasks[0]
}

// remove drops t from the queue. Caller holds m.mu.
func (m *Manual) remove(t *manualTask) bool {
	for i, queued := range m.tasks {
		if queued == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
