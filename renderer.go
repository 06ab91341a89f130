package vecdraw

import (
	"github.com/vecdraw/vecdraw/internal/path"
	"github.com/vecdraw/vecdraw/internal/raster"
	"github.com/vecdraw/vecdraw/internal/stroke"
)

// SoftwareRenderer is a CPU scanline rasterizer bound to fixed canvas
// dimensions. It drives the pipeline: flatten -> (stroke) -> rasterize ->
// composite.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
	tolerance  float64
}

// NewSoftwareRenderer creates a renderer for the given dimensions.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
		tolerance:  path.Tolerance,
	}
}

// SetTolerance overrides the curve flattening tolerance.
func (r *SoftwareRenderer) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		r.tolerance = tolerance
	}
}

// clipBox is a device-pixel clipping rectangle, half-open on the right and
// bottom. An empty box rejects every span.
type clipBox struct {
	x0, y0, x1, y1 int
}

func (c clipBox) isEmpty() bool {
	return c.x1 <= c.x0 || c.y1 <= c.y0
}

// spanBlitter composites rasterizer coverage spans onto a pixmap with a
// fixed paint color, clipped to a device rectangle.
type spanBlitter struct {
	pm    *Pixmap
	color Color
	clip  clipBox
}

// BlitSpan implements raster.Blitter.
func (b *spanBlitter) BlitSpan(x, y, width int, alpha uint8) {
	if y < b.clip.y0 || y >= b.clip.y1 {
		return
	}
	if x < b.clip.x0 {
		width -= b.clip.x0 - x
		x = b.clip.x0
	}
	if x+width > b.clip.x1 {
		width = b.clip.x1 - x
	}
	for i := 0; i < width; i++ {
		b.pm.BlendPixel(x+i, y, b.color, alpha)
	}
}

// Fill rasterizes the path's interior onto the pixmap with the nonzero
// winding rule. Open subpaths are implicitly closed for filling.
func (r *SoftwareRenderer) Fill(pm *Pixmap, p *Path, tx, ty float64, paint *Paint, clip clipBox) {
	if clip.isEmpty() {
		return
	}

	contours := path.Flatten(convertElements(p, tx, ty), r.tolerance)
	if len(contours) == 0 {
		return
	}

	var edges []raster.Edge
	for _, c := range contours {
		edges = raster.AppendContourEdges(edges, rasterPoints(c.Points))
	}
	Logger().Debug("fill", "contours", len(contours), "edges", len(edges))

	b := &spanBlitter{pm: pm, color: paint.Color, clip: clip}
	if paint.Antialias {
		r.rasterizer.FillAA(b, edges, raster.FillRuleNonZero)
	} else {
		r.rasterizer.Fill(b, edges, raster.FillRuleNonZero)
	}
}

// Stroke expands the path's flattened subpaths into outline polygons of the
// given width and rasterizes them with the nonzero winding rule. A width of
// zero or less draws nothing.
func (r *SoftwareRenderer) Stroke(pm *Pixmap, p *Path, tx, ty float64, width float64, paint *Paint, clip clipBox) {
	if width <= 0 || clip.isEmpty() {
		return
	}

	contours := path.Flatten(convertElements(p, tx, ty), r.tolerance)
	if len(contours) == 0 {
		return
	}

	var edges []raster.Edge
	for _, c := range contours {
		for _, outline := range stroke.Outline(strokePoints(c.Points), c.Closed, width) {
			edges = raster.AppendContourEdges(edges, strokeToRaster(outline))
		}
	}
	if len(edges) == 0 {
		return
	}
	Logger().Debug("stroke", "contours", len(contours), "edges", len(edges), "width", width)

	b := &spanBlitter{pm: pm, color: paint.Color, clip: clip}
	if paint.Antialias {
		r.rasterizer.FillAA(b, edges, raster.FillRuleNonZero)
	} else {
		r.rasterizer.Fill(b, edges, raster.FillRuleNonZero)
	}
}

// StrokeHairline draws a 1-pixel aliased line with Bresenham's algorithm.
// Used for non-anti-aliased line drawing, where the stroke pipeline's
// coverage math would soften the ends.
func (r *SoftwareRenderer) StrokeHairline(pm *Pixmap, x0, y0, x1, y1 int, c Color, clip clipBox) {
	if clip.isEmpty() {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= clip.x0 && x0 < clip.x1 && y0 >= clip.y0 && y0 < clip.y1 {
			pm.BlendPixel(x0, y0, c, 255)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// convertElements converts public path elements to the internal flattener
// representation, applying the canvas translation.
func convertElements(p *Path, tx, ty float64) []path.PathElement {
	elements := make([]path.PathElement, 0, len(p.Elements()))
	pt := func(q Point) path.Point {
		return path.Point{X: q.X + tx, Y: q.Y + ty}
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: pt(e.Point)})
		case LineTo:
			elements = append(elements, path.LineTo{Point: pt(e.Point)})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: pt(e.Control),
				Point:   pt(e.Point),
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: pt(e.Control1),
				Control2: pt(e.Control2),
				Point:    pt(e.Point),
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// rasterPoints converts flattener points to rasterizer points.
func rasterPoints(pts []path.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

// strokePoints converts flattener points to stroker points.
func strokePoints(pts []path.Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

// strokeToRaster converts stroker outline points to rasterizer points.
func strokeToRaster(pts []stroke.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
