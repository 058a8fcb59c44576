package server

import (
	"testing"
	"time"

	"github.com/dbmrq/spoons/internal/model"
	"github.com/dbmrq/spoons/internal/platform"
)

type countingWindows struct {
	calls   int
	windows []model.Window
}

func (c *countingWindows) FocusedWindow() (model.Window, bool) { return model.Window{}, false }

func (c *countingWindows) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	c.calls++
	return c.windows, nil
}

func (c *countingWindows) Frame(id model.WindowID) (model.Rect, bool) { return model.Rect{}, false }
func (c *countingWindows) SetFrame(id model.WindowID, frame model.Rect) error {
	return nil
}
func (c *countingWindows) Raise(id model.WindowID) error { return nil }

func TestCacheHitWithinTTL(t *testing.T) {
	wm := &countingWindows{windows: []model.Window{{ID: 1, App: "Safari"}}}
	cache := NewWindowCache(time.Minute)

	opts := platform.ListOptions{App: "Safari"}
	for i := 0; i < 3; i++ {
		windows, err := cache.ListWindows(wm, opts)
		if err != nil {
			t.Fatalf("ListWindows: %v", err)
		}
		if len(windows) != 1 {
			t.Fatalf("got %d windows", len(windows))
		}
	}
	if wm.calls != 1 {
		t.Errorf("backend called %d times, want 1", wm.calls)
	}
}

func TestDistinctScopesMissSeparately(t *testing.T) {
	wm := &countingWindows{}
	cache := NewWindowCache(time.Minute)

	cache.ListWindows(wm, platform.ListOptions{App: "Safari"})
	cache.ListWindows(wm, platform.ListOptions{App: "Notes"})
	if wm.calls != 2 {
		t.Errorf("backend called %d times, want 2", wm.calls)
	}
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	wm := &countingWindows{}
	cache := NewWindowCache(0)

	cache.ListWindows(wm, platform.ListOptions{})
	cache.ListWindows(wm, platform.ListOptions{})
	if wm.calls != 2 {
		t.Errorf("backend called %d times, want 2", wm.calls)
	}
}

func TestInvalidateAllForcesRefresh(t *testing.T) {
	wm := &countingWindows{}
	cache := NewWindowCache(time.Minute)

	cache.ListWindows(wm, platform.ListOptions{})
	cache.InvalidateAll()
	cache.ListWindows(wm, platform.ListOptions{})
	if wm.calls != 2 {
		t.Errorf("backend called %d times, want 2", wm.calls)
	}
}
