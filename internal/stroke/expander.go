// Package stroke converts stroked polylines into filled outline polygons.
//
// A stroke is rendered as a FILL of a closed polygon where:
//   - the offset path on one side goes forward
//   - the offset path on the other side is reversed
//   - butt caps connect the endpoints of open polylines
//   - bevel segments connect consecutive offset segments at joins
//
// Bevel joins and butt caps are used throughout: they stay robust under
// degenerate angles and keep the outline free of unbounded miter spikes.
// The resulting polygons must be filled with the nonzero winding rule so
// that self-touching outlines still fill correctly.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the negated point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Perp returns the perpendicular vector (rotated 90 degrees).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Outline expands a flattened polyline into closed outline polygons for the
// stroked band of the given width.
//
// An open polyline yields a single closed polygon: the forward offset side,
// a butt cap, the reversed backward offset side, and the closing butt cap
// edge. A closed polyline yields two polygons, the outer and inner offset
// rings; filled together under the nonzero rule they form the stroked band.
//
// Degenerate input (fewer than 2 distinct points, or width <= 0) yields no
// polygons: the draw is a no-op, not an error.
func Outline(points []Point, closed bool, width float64) [][]Point {
	if width <= 0 || len(points) < 2 {
		return nil
	}

	// Drop consecutive duplicate points; they carry no direction.
	pts := dedupe(points, closed)
	if len(pts) < 2 {
		return nil
	}

	radius := width / 2
	var forward, backward []Point

	segment := func(p0, p1 Point) {
		tangent := p1.Sub(p0)
		norm := tangent.Perp().Scale(radius / tangent.Length())

		if len(forward) == 0 {
			forward = append(forward, p0.Add(norm.Neg()))
			backward = append(backward, p0.Add(norm))
		} else {
			// Bevel join: connect the previous segment's offset end to
			// this segment's offset start on both sides.
			forward = append(forward, p0.Add(norm.Neg()))
			backward = append(backward, p0.Add(norm))
		}
		forward = append(forward, p1.Add(norm.Neg()))
		backward = append(backward, p1.Add(norm))
	}

	for i := 0; i+1 < len(pts); i++ {
		segment(pts[i], pts[i+1])
	}

	if closed {
		// Close the band back to the start and emit the two offset rings.
		segment(pts[len(pts)-1], pts[0])

		// Bevel the join at the start point: the rings begin and end with
		// the first and last segments' offsets of the same vertex, so
		// closing each ring supplies the bevel edge.
		inner := make([]Point, len(backward))
		for i, p := range backward {
			inner[len(backward)-1-i] = p
		}
		return [][]Point{forward, inner}
	}

	// Open polyline: one polygon, walked forward then backward. Closing
	// edges between the two sides form the butt caps.
	outline := make([]Point, 0, len(forward)+len(backward))
	outline = append(outline, forward...)
	for i := len(backward) - 1; i >= 0; i-- {
		outline = append(outline, backward[i])
	}
	return [][]Point{outline}
}

// dedupe removes consecutive duplicate points. For closed polylines the
// wrap-around duplicate (last == first) is removed as well.
func dedupe(points []Point, closed bool) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
