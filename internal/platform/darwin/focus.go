//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

// ax_focused_role copies the accessibility role of the system-wide focused
// element into a malloc'd string, or returns NULL when nothing has focus.
static char *ax_focused_role(void) {
    AXUIElementRef systemWide = AXUIElementCreateSystemWide();
    if (systemWide == NULL) return NULL;

    AXUIElementRef focused = NULL;
    AXError err = AXUIElementCopyAttributeValue(systemWide, kAXFocusedUIElementAttribute, (CFTypeRef *)&focused);
    CFRelease(systemWide);
    if (err != kAXErrorSuccess || focused == NULL) return NULL;

    CFStringRef role = NULL;
    err = AXUIElementCopyAttributeValue(focused, kAXRoleAttribute, (CFTypeRef *)&role);
    CFRelease(focused);
    if (err != kAXErrorSuccess || role == NULL) return NULL;

    CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(role), kCFStringEncodingUTF8) + 1;
    char *out = malloc(len);
    if (!CFStringGetCString(role, out, len, kCFStringEncodingUTF8)) {
        free(out);
        out = NULL;
    }
    CFRelease(role);
    return out;
}
*/
import "C"
import "unsafe"

// Focus implements platform.FocusInfo for macOS.
type Focus struct{}

// NewFocus creates a new macOS focus inspector.
func NewFocus() *Focus {
	return &Focus{}
}

// FocusedRole returns the AX role of the focused element, or "".
func (f *Focus) FocusedRole() string {
	cRole := C.ax_focused_role()
	if cRole == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cRole))
	return C.GoString(cRole)
}
