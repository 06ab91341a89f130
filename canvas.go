package vecdraw

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when a canvas is created with non-positive
// dimensions.
var ErrInvalidSize = errors.New("vecdraw: canvas dimensions must be positive")

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background *Color
	tolerance  float64
}

// WithBackground clears the canvas to the given color at creation. Without
// this option the canvas starts fully transparent.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = &c
	}
}

// WithTolerance overrides the curve flattening tolerance, in device pixel
// units. Smaller values trace curves more closely at higher cost.
func WithTolerance(tolerance float64) CanvasOption {
	return func(o *canvasOptions) {
		o.tolerance = tolerance
	}
}

// canvasState is the saveable part of the canvas: clip and translation.
type canvasState struct {
	clip   *Rect
	tx, ty float64
}

// Canvas owns an RGBA8 pixel buffer and orchestrates draw calls. Dimensions
// are fixed for the canvas's lifetime; every draw and clear mutates the
// buffer in place and completes before returning, so the buffer is
// consistent at every call boundary.
//
// A Canvas is not safe for concurrent mutation.
type Canvas struct {
	pixmap   *Pixmap
	renderer *SoftwareRenderer

	clip   *Rect // device-space clip rectangle, nil when unset
	tx, ty float64
	stack  []canvasState
}

// NewCanvas creates a canvas with the given dimensions.
// Zero or negative dimensions fail with ErrInvalidSize.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		pixmap:   NewPixmap(width, height),
		renderer: NewSoftwareRenderer(width, height),
	}
	if o.tolerance > 0 {
		c.renderer.SetTolerance(o.tolerance)
	}
	if o.background != nil {
		c.pixmap.Clear(*o.background)
	}
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Pixmap returns the canvas's pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Pixels returns the raw RGBA8 pixel data. The slice aliases the canvas's
// storage.
func (c *Canvas) Pixels() []uint8 { return c.pixmap.Data() }

// ReadPixels copies the raw RGBA8 pixel data into dst and returns the
// number of bytes written; see Pixmap.ReadPixels.
func (c *Canvas) ReadPixels(dst []byte) (int, error) {
	return c.pixmap.ReadPixels(dst)
}

// Clear sets every pixel to the given color, fully overwriting alpha.
// Clear ignores the clip rectangle and translation.
func (c *Canvas) Clear(color Color) {
	c.pixmap.Clear(color)
}

// Save pushes the current clip rectangle and translation onto the state
// stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{clip: c.clip, tx: c.tx, ty: c.ty})
}

// Restore pops the most recently saved state. Restoring with an empty stack
// is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.clip = s.clip
	c.tx = s.tx
	c.ty = s.ty
}

// Translate shifts the coordinate system by (dx, dy) for subsequent draw
// and clip calls.
func (c *Canvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

// ClipRect restricts subsequent draws to the given rectangle, expressed in
// the current (translated) coordinate system. Successive clips intersect.
func (c *Canvas) ClipRect(r Rect) {
	device := r.Offset(c.tx, c.ty)
	if c.clip != nil {
		device = c.clip.Intersect(device)
	}
	c.clip = &device
}

// ResetClip removes the clip rectangle.
func (c *Canvas) ResetClip() {
	c.clip = nil
}

// clipBounds resolves the active clip into device pixel bounds.
func (c *Canvas) clipBounds() clipBox {
	box := clipBox{x0: 0, y0: 0, x1: c.pixmap.Width(), y1: c.pixmap.Height()}
	if c.clip == nil {
		return box
	}
	box.x0 = max(box.x0, int(math.Floor(c.clip.X)))
	box.y0 = max(box.y0, int(math.Floor(c.clip.Y)))
	box.x1 = min(box.x1, int(math.Ceil(c.clip.Right())))
	box.y1 = min(box.y1, int(math.Ceil(c.clip.Bottom())))
	return box
}

// DrawRect draws a rectangle with the given paint.
func (c *Canvas) DrawRect(r Rect, paint *Paint) {
	p := NewPath()
	p.AddRect(r.X, r.Y, r.W, r.H)
	c.DrawPath(p, paint)
}

// DrawCircle draws a circle centered at (cx, cy) with the given paint.
func (c *Canvas) DrawCircle(cx, cy, radius float64, paint *Paint) {
	if radius <= 0 {
		return
	}
	p := NewPath()
	p.AddCircle(cx, cy, radius)
	c.DrawPath(p, paint)
}

// DrawLine draws a line segment stroked with the paint's stroke width.
// The paint's fill component is meaningless for a line and ignored; a
// non-positive stroke width draws nothing. With anti-aliasing disabled the
// line is drawn as a 1-pixel Bresenham hairline.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, paint *Paint) {
	if !paint.Antialias {
		c.renderer.StrokeHairline(c.pixmap,
			int(x0+c.tx), int(y0+c.ty), int(x1+c.tx), int(y1+c.ty),
			paint.Color, c.clipBounds())
		return
	}

	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	c.renderer.Stroke(c.pixmap, p, c.tx, c.ty, paint.Style.Width(), paint, c.clipBounds())
}

// DrawPath draws a path with the given paint. The path is read, never
// mutated: it may be reused across draw calls. Fill and stroke passes of a
// FillAndStroke style are two independent composite operations, stroke over
// fill.
func (c *Canvas) DrawPath(p *Path, paint *Paint) {
	if p == nil || p.IsEmpty() {
		return
	}
	clip := c.clipBounds()
	if paint.Style.HasFill() {
		c.renderer.Fill(c.pixmap, p, c.tx, c.ty, paint, clip)
	}
	if paint.Style.HasStroke() {
		c.renderer.Stroke(c.pixmap, p, c.tx, c.ty, paint.Style.Width(), paint, clip)
	}
}
