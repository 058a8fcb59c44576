//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>

extern void go_modifier_flags_changed(uintptr_t handle, uint64_t flags);

static CGEventRef mod_tap_callback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo) {
    if (type == kCGEventFlagsChanged) {
        go_modifier_flags_changed((uintptr_t)userInfo, (uint64_t)CGEventGetFlags(event));
    }
    return event;
}

// mod_tap_start installs a listen-only tap for flagsChanged events and runs
// the current thread's run loop until mod_tap_stop. Returns 0 on failure.
static CFRunLoopSourceRef mod_tap_start(uintptr_t handle, CFMachPortRef *tapOut) {
    CFMachPortRef tap = CGEventTapCreate(kCGSessionEventTap,
                                         kCGHeadInsertEventTap,
                                         kCGEventTapOptionListenOnly,
                                         CGEventMaskBit(kCGEventFlagsChanged),
                                         mod_tap_callback,
                                         (void *)handle);
    if (tap == NULL) return NULL;
    CGEventTapEnable(tap, true);
    CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
    *tapOut = tap;
    return source;
}

static CFRunLoopRef mod_tap_current_loop(void) { return CFRunLoopGetCurrent(); }

static void mod_tap_run(CFRunLoopRef loop, CFRunLoopSourceRef source) {
    CFRunLoopAddSource(loop, source, kCFRunLoopCommonModes);
    CFRunLoopRun();
}

static void mod_tap_stop(CFRunLoopRef loop) { CFRunLoopStop(loop); }
*/
import "C"

import (
	"fmt"
	"runtime"
	"runtime/cgo"
	"sync"
)

// CGEventFlags bits for the device-independent modifier masks.
const (
	flagShift = 1 << 17
	flagCtrl  = 1 << 18
	flagAlt   = 1 << 19
	flagCmd   = 1 << 20
	flagFn    = 1 << 23
)

// ModifierTap implements platform.ModifierTap with a listen-only CGEvent
// tap for flagsChanged events.
type ModifierTap struct {
	mu       sync.Mutex
	onChange func(mods []string)
	loop     C.CFRunLoopRef
	running  bool
	stopped  chan struct{}
}

// NewModifierTap creates a stopped modifier tap.
func NewModifierTap() *ModifierTap {
	return &ModifierTap{}
}

// Start installs the tap on a dedicated OS thread. The callback runs on
// that thread for every modifier-flag change.
func (t *ModifierTap) Start(onChange func(mods []string)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return fmt.Errorf("modifier tap already running")
	}

	started := make(chan error, 1)
	t.stopped = make(chan struct{})
	t.onChange = onChange

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		handle := cgo.NewHandle(t)
		defer handle.Delete()

		var tap C.CFMachPortRef
		source := C.mod_tap_start(C.uintptr_t(handle), &tap)
		if source == 0 {
			started <- fmt.Errorf("create flagsChanged event tap (accessibility permission?)")
			return
		}
		defer C.CFRelease(C.CFTypeRef(source))
		defer C.CFRelease(C.CFTypeRef(tap))

		loop := C.mod_tap_current_loop()
		t.mu.Lock()
		t.loop = loop
		t.mu.Unlock()

		started <- nil
		C.mod_tap_run(loop, source)
		close(t.stopped)
	}()

	if err := <-started; err != nil {
		return err
	}
	t.running = true
	return nil
}

// Stop removes the tap and waits for its thread to exit. Idempotent.
func (t *ModifierTap) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	loop := t.loop
	stopped := t.stopped
	t.mu.Unlock()

	C.mod_tap_stop(loop)
	<-stopped
}

func (t *ModifierTap) flagsChanged(flags uint64) {
	t.mu.Lock()
	cb := t.onChange
	running := t.running
	t.mu.Unlock()
	if !running || cb == nil {
		return
	}

	var mods []string
	if flags&flagCmd != 0 {
		mods = append(mods, "cmd")
	}
	if flags&flagCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if flags&flagAlt != 0 {
		mods = append(mods, "alt")
	}
	if flags&flagShift != 0 {
		mods = append(mods, "shift")
	}
	if flags&flagFn != 0 {
		mods = append(mods, "fn")
	}
	cb(mods)
}

//export go_modifier_flags_changed
func go_modifier_flags_changed(handle C.uintptr_t, flags C.uint64_t) {
	h := cgo.Handle(handle)
	if t, ok := h.Value().(*ModifierTap); ok {
		t.flagsChanged(uint64(flags))
	}
}
