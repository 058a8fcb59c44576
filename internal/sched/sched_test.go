package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAfterFires(t *testing.T) {
	s := New()
	var fired atomic.Int32

	s.After(10*time.Millisecond, func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected 1 firing, got %d", got)
	}
}

func TestAfterCancelled(t *testing.T) {
	s := New()
	var fired atomic.Int32

	task := s.After(20*time.Millisecond, func() { fired.Add(1) })
	task.Cancel()

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("cancelled task fired %d times", got)
	}
}

func TestEveryRepeats(t *testing.T) {
	s := New()
	var ticks atomic.Int32

	task := s.Every(10*time.Millisecond, func() { ticks.Add(1) })
	time.Sleep(55 * time.Millisecond)
	task.Cancel()

	got := ticks.Load()
	if got < 2 {
		t.Errorf("expected at least 2 ticks, got %d", got)
	}

	// No further ticks after cancel.
	time.Sleep(30 * time.Millisecond)
	if after := ticks.Load(); after != got {
		t.Errorf("ticker kept firing after cancel: %d -> %d", got, after)
	}
}

func TestStopAllInvalidatesPendingCallbacks(t *testing.T) {
	s := New()
	var fired atomic.Int32

	s.After(20*time.Millisecond, func() { fired.Add(1) })
	s.After(25*time.Millisecond, func() { fired.Add(1) })
	s.StopAll()

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("stale callbacks fired %d times after StopAll", got)
	}
}

func TestSchedulerUsableAfterStopAll(t *testing.T) {
	s := New()
	var fired atomic.Int32

	s.StopAll()
	s.After(10*time.Millisecond, func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("task scheduled after StopAll fired %d times, want 1", got)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New()
	task := s.After(10*time.Millisecond, func() {})
	task.Cancel()
	task.Cancel()

	var nilTask *Task
	nilTask.Cancel()
}
