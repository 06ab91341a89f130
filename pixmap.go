package vecdraw

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/vecdraw/vecdraw/internal/blend"
)

// ErrBufferTooSmall is returned by ReadPixels when the destination buffer
// cannot hold the full pixel data.
var ErrBufferTooSmall = errors.New("vecdraw: destination buffer too small")

// Pixmap is a rectangular RGBA8 pixel buffer: row-major, top-left origin,
// stride width*4 bytes, straight (non-premultiplied) alpha.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap with the given dimensions. Dimensions must be
// positive; the buffer length is always width*height*4.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA order). The slice aliases the
// pixmap's storage; writes through it are visible to subsequent draws.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// ReadPixels copies the raw RGBA8 pixel data into dst and returns the
// number of bytes written. If dst is shorter than width*height*4 bytes it
// returns ErrBufferTooSmall wrapped with the required length, without
// writing anything.
func (p *Pixmap) ReadPixels(dst []byte) (int, error) {
	need := len(p.data)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, len(dst))
	}
	return copy(dst, p.data), nil
}

// SetPixel sets a single pixel, fully overwriting it (no blending).
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns a single pixel. Out-of-bounds coordinates read as
// transparent.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// BlendPixel composites the color over the pixel with the given rasterizer
// coverage (0-255) using source-over blending. Full coverage with a fully
// opaque color sets the pixel to exactly the paint color.
func (p *Pixmap) BlendPixel(x, y int, c Color, coverage uint8) {
	if coverage == 0 || c.A == 0 {
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}

	a := blend.ApplyCoverage(c.A, coverage)
	i := (y*p.width + x) * 4
	if a == 255 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
		return
	}

	r, g, b, outA := blend.SourceOver(
		c.R, c.G, c.B, a,
		p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3],
	)
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = outA
}

// Clear fills the entire pixmap with a color, overwriting alpha.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no storage with
// the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Set implements the draw.Image interface, overwriting the pixel.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
