//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

static int ns_get_frontmost_app(char **name, pid_t *pid) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (app == nil) return -1;
    const char *n = [app.localizedName UTF8String];
    *name = strdup(n ? n : "");
    *pid = app.processIdentifier;
    return 0;
}

static int ns_force_terminate(pid_t pid) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (app == nil) return -1;
    return [app forceTerminate] ? 0 : -1;
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// AppControl implements platform.AppControl for macOS via NSWorkspace.
type AppControl struct{}

// NewAppControl creates a new macOS application controller.
func NewAppControl() *AppControl {
	return &AppControl{}
}

func (a *AppControl) FrontmostApp() (string, int, error) {
	var cName *C.char
	var cPid C.pid_t

	if C.ns_get_frontmost_app(&cName, &cPid) != 0 {
		return "", 0, fmt.Errorf("failed to get frontmost app")
	}
	defer C.free(unsafe.Pointer(cName))

	return C.GoString(cName), int(cPid), nil
}

func (a *AppControl) Terminate(pid int) error {
	if C.ns_force_terminate(C.pid_t(pid)) != 0 {
		return fmt.Errorf("failed to terminate pid %d", pid)
	}
	return nil
}
