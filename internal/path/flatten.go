// Package path provides internal path processing utilities.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum deviation from the true curve when flattening,
// in device pixel units.
const Tolerance = 0.25

// maxDepth caps curve subdivision so that flattening always terminates,
// even for adversarial control points.
const maxDepth = 16

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Contour is one flattened subpath: an ordered point sequence plus an
// explicit closed/open flag. The closing edge of a closed contour is not
// stored; consumers add it from the last point back to the first.
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements into polyline contours, one per subpath.
// Curved segments are subdivided until they deviate from their chord by at
// most tolerance. Subpaths never share edges: each MoveTo starts a fresh
// contour.
//
// A drawing element that arrives before any MoveTo starts a contour at that
// element's endpoint, mirroring the implicit-move policy of the public Path
// type. An element after a Close reopens a contour at the closed subpath's
// start point.
func Flatten(elements []PathElement, tolerance float64) []Contour {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var contours []Contour
	var cur []Point
	var start Point
	afterClose := false

	flush := func(closed bool) {
		if len(cur) > 0 {
			contours = append(contours, Contour{Points: cur, Closed: closed})
			cur = nil
		}
	}

	// open makes sure a contour is in progress before a drawing element.
	// After a Close the new contour continues from the closed subpath's
	// start point; otherwise it starts at the element's own endpoint.
	open := func(fallback Point) Point {
		if len(cur) == 0 {
			if !afterClose {
				start = fallback
			}
			afterClose = false
			cur = append(cur, start)
		}
		return cur[len(cur)-1]
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			afterClose = false
			start = e.Point
			cur = append(cur, e.Point)

		case LineTo:
			p0 := open(e.Point)
			if p0 != e.Point {
				cur = append(cur, e.Point)
			}

		case QuadTo:
			p0 := open(e.Point)
			flattenQuadratic(p0, e.Control, e.Point, tolerance, 0, &cur)

		case CubicTo:
			p0 := open(e.Point)
			flattenCubic(p0, e.Control1, e.Control2, e.Point, tolerance, 0, &cur)

		case Close:
			if len(cur) > 0 {
				flush(true)
				afterClose = true
			}
		}
	}
	flush(false)

	return contours
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve,
// appending points to out. The start point p0 is assumed already emitted.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, depth int, out *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}

	// De Casteljau split at t=0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, mid, tolerance, depth+1, out)
	flattenQuadratic(mid, q1, p2, tolerance, depth+1, out)
}

// flattenCubic recursively subdivides a cubic Bezier curve, appending
// points to out. The start point p0 is assumed already emitted.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) < tolerance {
		*out = append(*out, p3)
		return
	}

	// De Casteljau split at t=0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, mid, tolerance, depth+1, out)
	flattenCubic(mid, r1, q2, p3, tolerance, depth+1, out)
}

// distanceToLine calculates the perpendicular distance from point p to the
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)

	if abLenSq < 1e-20 {
		// Segment is a point.
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}
