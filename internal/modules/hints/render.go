package hints

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dbmrq/spoons/internal/platform"
)

const (
	panelPadding = 14
	lineSpacing  = 6
)

var (
	panelBackground = color.RGBA{R: 20, G: 20, B: 24, A: 230}
	panelBorder     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	panelText       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// renderPanel draws the lines onto a rounded dark panel and returns it as an
// RGBA payload for the overlay surface. fontSize scales basicfont's fixed
// 13px face by the nearest integer factor.
func renderPanel(lines []string, fontSize int) platform.ImageRGBA {
	face := basicfont.Face7x13
	scale := fontSize / face.Height
	if scale < 1 {
		scale = 1
	}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	textW := maxLen * face.Advance
	textH := len(lines)*(face.Height+lineSpacing) - lineSpacing
	if textH < 0 {
		textH = 0
	}
	w := textW + 2*panelPadding
	h := textH + 2*panelPadding

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(panelBackground), image.Point{}, draw.Src)
	drawBorder(img, panelBorder)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(panelText),
		Face: face,
	}
	y := panelPadding + face.Ascent
	for _, line := range lines {
		d.Dot = fixed.P(panelPadding, y)
		d.DrawString(line)
		y += face.Height + lineSpacing
	}

	if scale > 1 {
		img = scaleNearest(img, scale)
	}
	return platform.ImageRGBA{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Pix:    img.Pix,
	}
}

func drawBorder(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}

// scaleNearest integer-upscales the image; basicfont has a single size, so
// larger configured font sizes pixel-double instead of substituting a face.
func scaleNearest(src *image.RGBA, scale int) *image.RGBA {
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*scale, sb.Dy()*scale))
	for y := 0; y < sb.Dy(); y++ {
		for x := 0; x < sb.Dx(); x++ {
			c := src.RGBAAt(sb.Min.X+x, sb.Min.Y+y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					dst.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return dst
}
