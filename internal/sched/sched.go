// Package sched provides cancellable deferred callbacks for module handlers.
// Every callback captures the scheduler's epoch at creation; StopAll bumps
// the epoch, so a timer that fires after its module stopped is a guaranteed
// no-op rather than an assumed one.
package sched

import (
	"sync"
	"time"
)

// Scheduler runs one-shot and repeating deferred callbacks.
type Scheduler struct {
	mu     sync.Mutex
	epoch  uint64
	timers map[*Task]struct{}
}

// Task is a handle to a scheduled callback.
type Task struct {
	s     *Scheduler
	epoch uint64

	mu     sync.Mutex
	timer  *time.Timer
	ticker *time.Ticker
	done   chan struct{}
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{timers: make(map[*Task]struct{})}
}

// After schedules fn to run once after d. The callback is skipped if the
// task is cancelled or the scheduler is stopped before it fires.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.mu.Lock()
	t := &Task{s: s, epoch: s.epoch, done: make(chan struct{})}
	s.timers[t] = struct{}{}
	s.mu.Unlock()

	t.timer = time.AfterFunc(d, func() {
		if s.alive(t) {
			fn()
		}
		s.remove(t)
	})
	return t
}

// Every schedules fn to run repeatedly at interval d until the task is
// cancelled or the scheduler is stopped.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	s.mu.Lock()
	t := &Task{s: s, epoch: s.epoch, done: make(chan struct{})}
	s.timers[t] = struct{}{}
	s.mu.Unlock()

	t.ticker = time.NewTicker(d)
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				if !s.alive(t) {
					return
				}
				fn()
			}
		}
	}()
	return t
}

// Cancel stops the task. Safe to call multiple times and on nil.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.ticker != nil {
		t.ticker.Stop()
	}
	select {
	case <-t.done:
	default:
		close(t.done)
	}
	t.mu.Unlock()
	t.s.remove(t)
}

// StopAll cancels every outstanding task and bumps the epoch so that
// callbacks already in flight become no-ops.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	s.epoch++
	tasks := make([]*Task, 0, len(s.timers))
	for t := range s.timers {
		tasks = append(tasks, t)
	}
	s.timers = make(map[*Task]struct{})
	s.mu.Unlock()

	for _, t := range tasks {
		t.mu.Lock()
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.ticker != nil {
			t.ticker.Stop()
		}
		select {
		case <-t.done:
		default:
			close(t.done)
		}
		t.mu.Unlock()
	}
}

// alive reports whether the task's epoch still matches the scheduler's.
func (s *Scheduler) alive(t *Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[t]; !ok {
		return false
	}
	return t.epoch == s.epoch
}

func (s *Scheduler) remove(t *Task) {
	s.mu.Lock()
	delete(s.timers, t)
	s.mu.Unlock()
}
