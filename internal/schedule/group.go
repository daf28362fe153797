package schedule

import (
	"sync"
	"time"
)

// Group tracks the outstanding tasks of one owner so they can be cancelled together.
type Group struct {
	sched Scheduler

	mu    sync.Mutex
	tasks map[*groupTask]struct{}
}

// NewGroup creates an empty group on top of sched.
func NewGroup(sched Scheduler) *Group {
	return &Group{
		sched: sched,
		tasks: make(map[*groupTask]struct{}),
	}
}

type groupTask struct {
	g     *Group
	inner Task
}

func (t *groupTask) Cancel() bool {
	t.g.mu.Lock()
	_, pending := t.g.tasks[t]
	delete(t.g.tasks, t)
	inner := t.inner
	t.g.mu.Unlock()

	if !pending || inner == nil {
		return false
	}
	return inner.Cancel()
}

// AfterFunc schedules f and tracks it until it runs or is cancelled.
func (g *Group) AfterFunc(d time.Duration, f func()) Task {
	t := &groupTask{g: g}

	g.mu.Lock()
	g.tasks[t] = struct{}{}
	g.mu.Unlock()

	inner := g.sched.AfterFunc(d, func() {
		g.mu.Lock()
		_, pending := g.tasks[t]
		delete(g.tasks, t)
		g.mu.Unlock()
		if pending {
			f()
		}
	})

	g.mu.Lock()
	t.inner = inner
	g.mu.Unlock()
	return t
}

// CancelAll cancels every outstanding task and returns how many were dropped.
func (g *Group) CancelAll() int {
	g.mu.Lock()
	n := len(g.tasks)
	inners := make([]Task, 0, n)
	for t := range g.tasks {
		if t.inner != nil {
			inners = append(inners, t.inner)
		}
	}
	g.tasks = make(map[*groupTask]struct{})
	g.mu.Unlock()

	// A task whose timer has not been attached yet is already gone from the
	// map, so its callback turns into a no-op when it fires.
	for _, inner := range inners {
		inner.Cancel()
	}
	return n
}

// Len reports the number of outstanding tasks.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}

// Now returns the underlying scheduler's time.
func (g *Group) Now() time.Time {
	return g.sched.Now()
}
