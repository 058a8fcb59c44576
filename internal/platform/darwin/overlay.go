//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

static NSPanel *overlayPanel = nil;

// overlay_show displays an RGBA bitmap in a borderless floating panel at
// screen point (x, y) in CoreGraphics (top-left origin) coordinates. Must
// run on the main thread; callers dispatch here.
static void overlay_show(const unsigned char *pix, int w, int h, int x, int y) {
    dispatch_async(dispatch_get_main_queue(), ^{
        NSBitmapImageRep *rep = [[NSBitmapImageRep alloc]
            initWithBitmapDataPlanes:NULL
                          pixelsWide:w
                          pixelsHigh:h
                       bitsPerSample:8
                     samplesPerPixel:4
                            hasAlpha:YES
                            isPlanar:NO
                      colorSpaceName:NSDeviceRGBColorSpace
                         bytesPerRow:w * 4
                        bitsPerPixel:32];
        memcpy([rep bitmapData], pix, (size_t)(w * h * 4));

        NSImage *image = [[NSImage alloc] initWithSize:NSMakeSize(w, h)];
        [image addRepresentation:rep];

        CGFloat primaryH = [[NSScreen screens] objectAtIndex:0].frame.size.height;
        NSRect frame = NSMakeRect(x, primaryH - y - h, w, h);

        if (overlayPanel == nil) {
            overlayPanel = [[NSPanel alloc] initWithContentRect:frame
                                                      styleMask:NSWindowStyleMaskBorderless | NSWindowStyleMaskNonactivatingPanel
                                                        backing:NSBackingStoreBuffered
                                                          defer:NO];
            overlayPanel.level = NSStatusWindowLevel;
            overlayPanel.opaque = NO;
            overlayPanel.backgroundColor = [NSColor clearColor];
            overlayPanel.ignoresMouseEvents = YES;
            overlayPanel.collectionBehavior = NSWindowCollectionBehaviorCanJoinAllSpaces;
            overlayPanel.contentView = [[NSImageView alloc] initWithFrame:NSMakeRect(0, 0, w, h)];
        }
        [overlayPanel setFrame:frame display:YES];
        ((NSImageView *)overlayPanel.contentView).image = image;
        [overlayPanel orderFrontRegardless];
    });
}

static void overlay_hide(void) {
    dispatch_async(dispatch_get_main_queue(), ^{
        if (overlayPanel != nil) {
            [overlayPanel orderOut:nil];
        }
    });
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/dbmrq/spoons/internal/platform"
)

// Overlay implements platform.OverlaySurface with a borderless NSPanel.
type Overlay struct{}

// NewOverlay creates a new macOS overlay surface.
func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Show(img platform.ImageRGBA, x, y int) error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid overlay image %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) < img.Width*img.Height*4 {
		return fmt.Errorf("overlay pixel buffer too small: %d bytes for %dx%d", len(img.Pix), img.Width, img.Height)
	}
	C.overlay_show(
		(*C.uchar)(unsafe.Pointer(&img.Pix[0])),
		C.int(img.Width), C.int(img.Height),
		C.int(x), C.int(y))
	return nil
}

func (o *Overlay) Hide() {
	C.overlay_hide()
}
