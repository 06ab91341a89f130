package vecdraw

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// pathState tracks the subpath state machine.
type pathState int

const (
	// pathEmpty: no subpath started yet.
	pathEmpty pathState = iota
	// pathInSubpath: a subpath is open and accepting segments.
	pathInSubpath
	// pathClosed: the last subpath was closed; no subpath is open.
	pathClosed
)

// Path is an ordered, append-only sequence of drawing commands describing
// one or more subpaths. A Path is a standalone value: it is never mutated
// by draw calls and may be reused across any number of them.
//
// Subpath state machine: a path starts Empty; MoveTo opens a subpath;
// drawing commands extend it; Close closes it. A drawing command issued
// while no subpath is open does NOT fail: in the Empty state it auto-inserts
// an implicit MoveTo to that command's endpoint (so the segment itself is
// degenerate and draws nothing, but later commands chain from it), and after
// a Close it reopens a subpath at the closed subpath's start point. This
// permissive policy keeps every drawing call total.
type Path struct {
	elements []PathElement
	state    pathState
	start    Point // start of the current (or last closed) subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.state = pathInSubpath
	p.start = pt
	p.current = pt
}

// ensureSubpath applies the implicit-move policy before a drawing command
// whose endpoint is end.
func (p *Path) ensureSubpath(end Point) {
	switch p.state {
	case pathEmpty:
		p.MoveTo(end.X, end.Y)
	case pathClosed:
		p.MoveTo(p.start.X, p.start.Y)
	case pathInSubpath:
	}
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.ensureSubpath(pt)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve with control point (cx, cy) to
// (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.ensureSubpath(pt)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.ensureSubpath(pt)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by connecting back to its start point.
// Closing with no open subpath is a no-op.
func (p *Path) Close() {
	if p.state != pathInSubpath {
		return
	}
	p.elements = append(p.elements, Close{})
	p.state = pathClosed
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.state = pathEmpty
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.state = p.state
	result.start = p.start
	result.current = p.current
	return result
}

// bezierCircleK is the control-handle ratio that makes a cubic Bezier
// approximate a quarter circle: 4/3 * (sqrt(2) - 1). Deviation from the
// true arc stays sub-pixel for typical radii.
const bezierCircleK = 0.5522847498307936

// AddRect adds an axis-aligned rectangle as a closed subpath.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddRoundRect adds a rounded rectangle as a closed subpath: four straight
// edges and four corner arcs, each corner approximated by a single cubic
// Bezier. The radius is clamped to half of min(w, h) so the geometry never
// self-intersects; radius zero degenerates to a plain rectangle.
func (p *Path) AddRoundRect(x, y, w, h, radius float64) {
	r := radius
	if maxR := min(w, h) / 2; r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}
	k := bezierCircleK * r

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
}

// AddOval adds an axis-aligned ellipse centered at (cx, cy) with radii rx
// and ry, built from four cubic Bezier quarter-arcs.
func (p *Path) AddOval(cx, cy, rx, ry float64) {
	kx := bezierCircleK * rx
	ky := bezierCircleK * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// AddCircle adds a circle: an oval with rx = ry.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddOval(cx, cy, r, r)
}

// AddArc adds a circular arc around (cx, cy) from angle1 to angle2, in
// radians, sweeping in the positive angle direction. The arc is split into
// cubic Bezier segments of at most 90 degrees each. If a subpath is open
// the arc's start point is connected with a line; otherwise a new subpath
// starts there.
func (p *Path) AddArc(cx, cy, r, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}

	segments := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	if segments == 0 {
		segments = 1
	}
	step := (angle2 - angle1) / float64(segments)

	start := Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	if p.state == pathInSubpath {
		p.LineTo(start.X, start.Y)
	} else {
		p.MoveTo(start.X, start.Y)
	}

	for i := 0; i < segments; i++ {
		p.arcSegment(cx, cy, r, angle1+float64(i)*step, angle1+float64(i+1)*step)
	}
}

// arcSegment appends one cubic Bezier approximating an arc of at most 90
// degrees, assuming the current point is already at the segment start.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p.CubicTo(
		cx+r*cos1-alpha*r*sin1, cy+r*sin1+alpha*r*cos1,
		cx+r*cos2+alpha*r*sin2, cy+r*sin2-alpha*r*cos2,
		cx+r*cos2, cy+r*sin2,
	)
}
