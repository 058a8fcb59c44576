package clipboard

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray publishes the history into the menu bar via systray. systray cannot
// remove menu items once added, so a fixed pool of slots is allocated up
// front and Rebuild retitles, shows, and hides them.
type Tray struct {
	maxSlots int

	mu       sync.Mutex
	slots    []*systray.MenuItem
	handlers []func()
	ready    bool
	pending  []MenuItem
	done     chan struct{}
}

// NewTray creates a tray with room for maxSlots menu entries. OnReady must
// run inside systray.Run's ready callback before the tray displays anything.
func NewTray(maxSlots int) *Tray {
	return &Tray{maxSlots: maxSlots, done: make(chan struct{})}
}

// OnReady allocates the menu. Call from the systray ready callback.
func (t *Tray) OnReady() {
	systray.SetTitle("✂")
	systray.SetTooltip("Clipboard history")

	t.mu.Lock()
	t.slots = make([]*systray.MenuItem, t.maxSlots)
	t.handlers = make([]func(), t.maxSlots)
	for i := range t.slots {
		t.slots[i] = systray.AddMenuItem("", "")
		t.slots[i].Hide()
		go t.clickLoop(i)
	}
	t.ready = true
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	if pending != nil {
		t.Rebuild(pending)
	}
}

// Stop ends the click dispatchers. The systray lifecycle itself belongs to
// the caller running systray.Run.
func (t *Tray) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}

func (t *Tray) clickLoop(i int) {
	t.mu.Lock()
	item := t.slots[i]
	t.mu.Unlock()
	for {
		select {
		case <-t.done:
			return
		case <-item.ClickedCh:
			t.mu.Lock()
			handler := t.handlers[i]
			t.mu.Unlock()
			if handler != nil {
				handler()
			}
		}
	}
}

// Rebuild implements Menu. Items beyond the slot pool are dropped.
func (t *Tray) Rebuild(items []MenuItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		t.pending = items
		return
	}

	for i, slot := range t.slots {
		if i < len(items) {
			slot.SetTitle(items[i].Title)
			t.handlers[i] = items[i].OnSelect
			slot.Show()
		} else {
			t.handlers[i] = nil
			slot.Hide()
		}
	}
}
