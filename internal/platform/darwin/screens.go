//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    int id;
    char *name;
    float x, y, w, h;
} ScreenInfo;

// ns_list_screens returns every display's visible frame (menu bar and dock
// excluded) converted to the CoreGraphics coordinate space: origin at the
// top-left of the primary display, y growing downward. AppKit reports frames
// bottom-left-up, so we flip against the primary screen's height.
static int ns_list_screens(ScreenInfo **out, int *count) {
    NSArray<NSScreen *> *screens = [NSScreen screens];
    if (screens == nil || screens.count == 0) return -1;

    CGFloat primaryH = [screens objectAtIndex:0].frame.size.height;

    ScreenInfo *infos = calloc(screens.count, sizeof(ScreenInfo));
    int i = 0;
    for (NSScreen *s in screens) {
        NSRect v = s.visibleFrame;
        infos[i].id = i + 1;
        infos[i].name = strdup([s.localizedName UTF8String]);
        infos[i].x = v.origin.x;
        infos[i].y = primaryH - v.origin.y - v.size.height;
        infos[i].w = v.size.width;
        infos[i].h = v.size.height;
        i++;
    }
    *out = infos;
    *count = i;
    return 0;
}

static void ns_free_screens(ScreenInfo *infos, int count) {
    for (int i = 0; i < count; i++) free(infos[i].name);
    free(infos);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/dbmrq/spoons/internal/model"
)

// ScreenList implements platform.Screens for macOS via NSScreen.
type ScreenList struct{}

// NewScreenList creates a new macOS screen resolver.
func NewScreenList() *ScreenList {
	return &ScreenList{}
}

func (sl *ScreenList) ListScreens() ([]model.Screen, error) {
	var cScreens *C.ScreenInfo
	var cCount C.int

	if C.ns_list_screens(&cScreens, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate screens")
	}
	defer C.ns_free_screens(cScreens, cCount)

	count := int(cCount)
	cSlice := unsafe.Slice(cScreens, count)

	screens := make([]model.Screen, 0, count)
	for i := 0; i < count; i++ {
		cs := cSlice[i]
		screens = append(screens, model.Screen{
			ID:   int(cs.id),
			Name: C.GoString(cs.name),
			Frame: model.Rect{
				X:      int(cs.x),
				Y:      int(cs.y),
				Width:  int(cs.w),
				Height: int(cs.h),
			},
		})
	}
	return screens, nil
}

func (sl *ScreenList) ScreenOf(frame model.Rect) (model.Screen, bool) {
	screens, err := sl.ListScreens()
	if err != nil {
		return model.Screen{}, false
	}
	return model.ScreenOf(screens, frame)
}
