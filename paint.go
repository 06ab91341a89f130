package vecdraw

// styleKind discriminates the Style variants.
type styleKind uint8

const (
	styleFill styleKind = iota
	styleStroke
	styleFillStroke
)

// Style is a closed variant describing how a primitive is painted: filled,
// stroked, or both. Stroke-bearing variants carry their stroke width, so a
// stroke style with an unspecified width cannot be constructed.
type Style struct {
	kind  styleKind
	width float64
}

// Fill paints the primitive's interior only.
func Fill() Style {
	return Style{kind: styleFill}
}

// Stroke paints the primitive's outline with the given width.
// A width of zero or less produces no visible pixels.
func Stroke(width float64) Style {
	return Style{kind: styleStroke, width: width}
}

// FillAndStroke fills the interior, then strokes the outline over it with
// the given width.
func FillAndStroke(width float64) Style {
	return Style{kind: styleFillStroke, width: width}
}

// HasFill reports whether the style includes a fill pass.
func (s Style) HasFill() bool {
	return s.kind == styleFill || s.kind == styleFillStroke
}

// HasStroke reports whether the style includes a stroke pass.
func (s Style) HasStroke() bool {
	return s.kind == styleStroke || s.kind == styleFillStroke
}

// Width returns the stroke width, or 0 for a pure fill.
func (s Style) Width() float64 {
	if s.kind == styleFill {
		return 0
	}
	return s.width
}

// Paint carries the styling for a draw call: color, fill/stroke style, and
// whether edges are anti-aliased.
type Paint struct {
	// Color is the paint color, straight alpha.
	Color Color

	// Style selects fill, stroke, or both (with stroke width).
	Style Style

	// Antialias enables anti-aliased edges. On by default.
	Antialias bool
}

// NewPaint creates a Paint with default values: opaque black fill,
// anti-aliasing on.
func NewPaint() *Paint {
	return &Paint{
		Color:     Black,
		Style:     Fill(),
		Antialias: true,
	}
}

// WithColor returns a copy of the paint with the given color.
func (p Paint) WithColor(c Color) Paint {
	p.Color = c
	return p
}

// WithStyle returns a copy of the paint with the given style.
func (p Paint) WithStyle(s Style) Paint {
	p.Style = s
	return p
}

// WithAntialias returns a copy of the paint with anti-aliasing toggled.
func (p Paint) WithAntialias(aa bool) Paint {
	p.Antialias = aa
	return p
}
