//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework ApplicationServices -framework CoreFoundation -framework CoreGraphics -framework Foundation
#include <AppKit/AppKit.h>
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

// Private but long-stable: maps an AXUIElement window to its CGWindowID.
extern AXError _AXUIElementGetWindow(AXUIElementRef element, CGWindowID *out);

typedef struct {
    int windowID;
    int pid;
    int layer;
    char *appName;
    char *title;
    float x, y, w, h;
} CGWindowInfo;

// cg_list_windows enumerates on-screen windows via CGWindowListCopyWindowInfo.
// Caller frees with cg_free_windows.
static int cg_list_windows(CGWindowInfo **out, int *count) {
    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
        kCGNullWindowID);
    if (list == NULL) return -1;

    CFIndex n = CFArrayGetCount(list);
    CGWindowInfo *infos = calloc(n, sizeof(CGWindowInfo));
    int filled = 0;

    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef dict = CFArrayGetValueAtIndex(list, i);
        CGWindowInfo *w = &infos[filled];

        CFNumberRef num;
        if ((num = CFDictionaryGetValue(dict, kCGWindowNumber)))
            CFNumberGetValue(num, kCFNumberIntType, &w->windowID);
        if ((num = CFDictionaryGetValue(dict, kCGWindowOwnerPID)))
            CFNumberGetValue(num, kCFNumberIntType, &w->pid);
        if ((num = CFDictionaryGetValue(dict, kCGWindowLayer)))
            CFNumberGetValue(num, kCFNumberIntType, &w->layer);

        CFStringRef s;
        if ((s = CFDictionaryGetValue(dict, kCGWindowOwnerName))) {
            CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
            w->appName = malloc(len);
            if (!CFStringGetCString(s, w->appName, len, kCFStringEncodingUTF8)) w->appName[0] = '\0';
        } else {
            w->appName = strdup("");
        }
        if ((s = CFDictionaryGetValue(dict, kCGWindowName))) {
            CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
            w->title = malloc(len);
            if (!CFStringGetCString(s, w->title, len, kCFStringEncodingUTF8)) w->title[0] = '\0';
        } else {
            w->title = strdup("");
        }

        CFDictionaryRef boundsDict = CFDictionaryGetValue(dict, kCGWindowBounds);
        if (boundsDict) {
            CGRect r;
            CGRectMakeWithDictionaryRepresentation(boundsDict, &r);
            w->x = r.origin.x;
            w->y = r.origin.y;
            w->w = r.size.width;
            w->h = r.size.height;
        }
        filled++;
    }
    CFRelease(list);
    *out = infos;
    *count = filled;
    return 0;
}

static void cg_free_windows(CGWindowInfo *infos, int count) {
    for (int i = 0; i < count; i++) {
        free(infos[i].appName);
        free(infos[i].title);
    }
    free(infos);
}

static int cg_frontmost_pid(void) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (app == nil) return 0;
    return (int)app.processIdentifier;
}

// ax_window_by_id walks the AX window list of pid looking for the window
// whose CGWindowID matches wid. Returns NULL when not found; caller releases.
static AXUIElementRef ax_window_by_id(pid_t pid, int wid) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app == NULL) return NULL;

    CFArrayRef windows = NULL;
    AXError err = AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows);
    CFRelease(app);
    if (err != kAXErrorSuccess || windows == NULL) return NULL;

    AXUIElementRef found = NULL;
    CFIndex n = CFArrayGetCount(windows);
    for (CFIndex i = 0; i < n; i++) {
        AXUIElementRef w = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);
        CGWindowID id = 0;
        if (_AXUIElementGetWindow(w, &id) == kAXErrorSuccess && (int)id == wid) {
            found = (AXUIElementRef)CFRetain(w);
            break;
        }
    }
    CFRelease(windows);
    return found;
}

static int ax_get_frame(pid_t pid, int wid, float *x, float *y, float *w, float *h) {
    AXUIElementRef win = ax_window_by_id(pid, wid);
    if (win == NULL) return -1;

    AXValueRef posValue = NULL, sizeValue = NULL;
    CGPoint pos;
    CGSize size;
    int rc = -1;
    if (AXUIElementCopyAttributeValue(win, kAXPositionAttribute, (CFTypeRef *)&posValue) == kAXErrorSuccess &&
        AXUIElementCopyAttributeValue(win, kAXSizeAttribute, (CFTypeRef *)&sizeValue) == kAXErrorSuccess &&
        AXValueGetValue(posValue, kAXValueCGPointType, &pos) &&
        AXValueGetValue(sizeValue, kAXValueCGSizeType, &size)) {
        *x = pos.x;
        *y = pos.y;
        *w = size.width;
        *h = size.height;
        rc = 0;
    }
    if (posValue) CFRelease(posValue);
    if (sizeValue) CFRelease(sizeValue);
    CFRelease(win);
    return rc;
}

static int ax_set_frame(pid_t pid, int wid, float x, float y, float w, float h) {
    AXUIElementRef win = ax_window_by_id(pid, wid);
    if (win == NULL) return -1;

    CGPoint pos = CGPointMake(x, y);
    CGSize size = CGSizeMake(w, h);
    AXValueRef posValue = AXValueCreate(kAXValueCGPointType, &pos);
    AXValueRef sizeValue = AXValueCreate(kAXValueCGSizeType, &size);

    // Position first, then size, then position again: some apps clamp the
    // position while the old size still hangs over a screen edge.
    int rc = 0;
    if (AXUIElementSetAttributeValue(win, kAXPositionAttribute, posValue) != kAXErrorSuccess) rc = -1;
    if (AXUIElementSetAttributeValue(win, kAXSizeAttribute, sizeValue) != kAXErrorSuccess) rc = -1;
    AXUIElementSetAttributeValue(win, kAXPositionAttribute, posValue);

    CFRelease(posValue);
    CFRelease(sizeValue);
    CFRelease(win);
    return rc;
}

static int ax_raise(pid_t pid, int wid) {
    AXUIElementRef win = ax_window_by_id(pid, wid);
    if (win == NULL) return -1;
    int rc = AXUIElementPerformAction(win, kAXRaiseAction) == kAXErrorSuccess ? 0 : -1;
    CFRelease(win);
    return rc;
}

// ax_focused_window_id resolves the CGWindowID of pid's focused AX window.
static int ax_focused_window_id(pid_t pid) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app == NULL) return 0;

    AXUIElementRef win = NULL;
    AXError err = AXUIElementCopyAttributeValue(app, kAXFocusedWindowAttribute, (CFTypeRef *)&win);
    CFRelease(app);
    if (err != kAXErrorSuccess || win == NULL) return 0;

    CGWindowID id = 0;
    _AXUIElementGetWindow(win, &id);
    CFRelease(win);
    return (int)id;
}
*/
import "C"
import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/dbmrq/spoons/internal/model"
	"github.com/dbmrq/spoons/internal/platform"
)

// WindowManager implements platform.WindowManager for macOS. Enumeration
// uses CGWindowList; geometry changes go through the Accessibility API.
type WindowManager struct {
	screens *ScreenList
}

// NewWindowManager creates a new macOS window manager.
func NewWindowManager(screens *ScreenList) *WindowManager {
	return &WindowManager{screens: screens}
}

func (wm *WindowManager) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	var cWindows *C.CGWindowInfo
	var cCount C.int

	if C.cg_list_windows(&cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.cg_free_windows(cWindows, cCount)

	count := int(cCount)
	if count == 0 {
		return []model.Window{}, nil
	}

	frontPID := int(C.cg_frontmost_pid())
	focusedID := 0
	if frontPID != 0 {
		focusedID = int(C.ax_focused_window_id(C.pid_t(frontPID)))
	}

	cSlice := unsafe.Slice(cWindows, count)

	var windows []model.Window
	for i := 0; i < count; i++ {
		cw := cSlice[i]

		// Layer 0 only: skips the menu bar, dock and other shell chrome.
		if int(cw.layer) != 0 {
			continue
		}

		w := model.Window{
			ID:    model.WindowID(cw.windowID),
			App:   C.GoString(cw.appName),
			PID:   int(cw.pid),
			Title: C.GoString(cw.title),
			Frame: model.Rect{
				X:      int(cw.x),
				Y:      int(cw.y),
				Width:  int(cw.w),
				Height: int(cw.h),
			},
		}

		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		if opts.App != "" && !strings.EqualFold(w.App, opts.App) {
			continue
		}
		if opts.ScreenID != 0 && wm.screens != nil {
			if s, ok := wm.screens.ScreenOf(w.Frame); !ok || s.ID != opts.ScreenID {
				continue
			}
		}

		w.Focused = int(w.ID) == focusedID && focusedID != 0
		windows = append(windows, w)
	}
	return windows, nil
}

func (wm *WindowManager) FocusedWindow() (model.Window, bool) {
	frontPID := int(C.cg_frontmost_pid())
	if frontPID == 0 {
		return model.Window{}, false
	}
	focusedID := int(C.ax_focused_window_id(C.pid_t(frontPID)))
	if focusedID == 0 {
		return model.Window{}, false
	}

	windows, err := wm.ListWindows(platform.ListOptions{PID: frontPID})
	if err != nil {
		return model.Window{}, false
	}
	for _, w := range windows {
		if int(w.ID) == focusedID {
			w.Focused = true
			return w, true
		}
	}
	return model.Window{}, false
}

func (wm *WindowManager) Frame(id model.WindowID) (model.Rect, bool) {
	pid, ok := wm.pidOf(id)
	if !ok {
		return model.Rect{}, false
	}
	var x, y, w, h C.float
	if C.ax_get_frame(C.pid_t(pid), C.int(id), &x, &y, &w, &h) != 0 {
		return model.Rect{}, false
	}
	return model.Rect{X: int(x), Y: int(y), Width: int(w), Height: int(h)}, true
}

func (wm *WindowManager) SetFrame(id model.WindowID, frame model.Rect) error {
	pid, ok := wm.pidOf(id)
	if !ok {
		return fmt.Errorf("window %d not found", id)
	}
	if C.ax_set_frame(C.pid_t(pid), C.int(id),
		C.float(frame.X), C.float(frame.Y),
		C.float(frame.Width), C.float(frame.Height)) != 0 {
		return fmt.Errorf("failed to set frame of window %d", id)
	}
	return nil
}

func (wm *WindowManager) Raise(id model.WindowID) error {
	pid, ok := wm.pidOf(id)
	if !ok {
		return fmt.Errorf("window %d not found", id)
	}
	if C.ax_raise(C.pid_t(pid), C.int(id)) != 0 {
		return fmt.Errorf("failed to raise window %d", id)
	}
	return nil
}

// pidOf resolves the owning pid of a window via enumeration. Window IDs are
// not dense, so a fresh listing is the only reliable lookup.
func (wm *WindowManager) pidOf(id model.WindowID) (int, bool) {
	windows, err := wm.ListWindows(platform.ListOptions{})
	if err != nil {
		return 0, false
	}
	for _, w := range windows {
		if w.ID == id {
			return w.PID, true
		}
	}
	return 0, false
}
