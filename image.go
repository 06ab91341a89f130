package vecdraw

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ScaleMode controls how an image is fitted into its destination rectangle.
type ScaleMode int

const (
	// ScaleStretch stretches the image to fill the destination exactly.
	ScaleStretch ScaleMode = iota
	// ScaleAspectFit scales the image uniformly so it is fully visible,
	// centered, possibly leaving uncovered margins.
	ScaleAspectFit
	// ScaleAspectFill scales the image uniformly so it covers the whole
	// destination, centered, cropping the overflow.
	ScaleAspectFill
)

// DrawImage draws an image into the destination rectangle with bilinear
// resampling, composited source-over and honoring the canvas clip and
// translation. A nil or empty image, or an empty destination, is a no-op.
func (c *Canvas) DrawImage(img image.Image, dst Rect, mode ScaleMode) {
	if img == nil || dst.IsEmpty() {
		return
	}
	srcBounds := img.Bounds()
	if srcBounds.Dx() == 0 || srcBounds.Dy() == 0 {
		return
	}

	device := dst.Offset(c.tx, c.ty)
	dstR := image.Rect(
		int(math.Round(device.X)), int(math.Round(device.Y)),
		int(math.Round(device.Right())), int(math.Round(device.Bottom())),
	)

	clip := c.clipBounds()
	visible := dstR.Intersect(image.Rect(clip.x0, clip.y0, clip.x1, clip.y1))
	if visible.Empty() {
		return
	}

	// Scale into a staging buffer covering the destination rectangle; the
	// buffer's bounds crop whatever the placement overflows (aspect-fill),
	// and uncovered margins stay transparent (aspect-fit).
	staging := image.NewNRGBA(dstR)
	xdraw.BiLinear.Scale(staging, placementRect(dstR, srcBounds, mode), img, srcBounds, xdraw.Src, nil)

	xdraw.Draw(c.pixmap, visible, staging, visible.Min, xdraw.Over)
}

// placementRect computes where the scaled image lands in device pixels for
// the given scale mode.
func placementRect(dst image.Rectangle, src image.Rectangle, mode ScaleMode) image.Rectangle {
	if mode == ScaleStretch {
		return dst
	}

	dw, dh := float64(dst.Dx()), float64(dst.Dy())
	sw, sh := float64(src.Dx()), float64(src.Dy())

	var scale float64
	if mode == ScaleAspectFit {
		scale = math.Min(dw/sw, dh/sh)
	} else {
		scale = math.Max(dw/sw, dh/sh)
	}

	w := sw * scale
	h := sh * scale
	x := float64(dst.Min.X) + (dw-w)/2
	y := float64(dst.Min.Y) + (dh-h)/2
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
}
