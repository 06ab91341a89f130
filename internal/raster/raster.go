// Package raster provides scanline rasterization for 2D polygons.
//
// The rasterizer scan-converts closed polygons into per-pixel coverage and
// hands the result to a Blitter as horizontal spans of uniform alpha. It has
// no color or clipping knowledge of its own beyond the canvas bounds; the
// caller's Blitter composites and clips.
package raster

import "math"

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Blitter receives horizontal coverage spans from the rasterizer.
// Pixels [x, x+width) on row y are covered with uniform alpha in 0..255.
type Blitter interface {
	BlitSpan(x, y, width int, alpha uint8)
}

// Rasterizer performs scanline rasterization within a fixed
// width x height pixel grid. It is not safe for concurrent use, but carries
// no cross-row state: distinct instances may rasterize disjoint row ranges
// of the same scene independently.
type Rasterizer struct {
	width  int
	height int
	aet    *ActiveEdgeTable
	cover  []uint16 // per-row coverage accumulator for AA fills
}

// NewRasterizer creates a rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
		cover:  make([]uint16, width),
	}
}

// Fill rasterizes the polygon edges without anti-aliasing: a pixel is
// covered iff its center is inside under the fill rule. Spans are emitted
// at full alpha.
func (r *Rasterizer) Fill(b Blitter, edges []Edge, rule FillRule) {
	if len(edges) == 0 {
		return
	}

	yMin, yMax, _, _ := r.bounds(edges)
	for y := yMin; y < yMax; y++ {
		scanY := float64(y) + 0.5
		r.buildActive(edges, scanY)
		r.walkSpans(rule, func(x1, x2 float64) {
			// Cover pixels whose centers lie in [x1, x2).
			start := int(math.Ceil(x1 - 0.5))
			end := int(math.Ceil(x2 - 0.5))
			if start < 0 {
				start = 0
			}
			if end > r.width {
				end = r.width
			}
			if end > start {
				b.BlitSpan(start, y, end-start, 255)
			}
		})
	}
}

// FillAA rasterizes the polygon edges with anti-aliasing. Coverage is
// computed with 4 vertical sub-scanlines per pixel row combined with exact
// horizontal fractional coverage per span, then averaged per pixel.
func (r *Rasterizer) FillAA(b Blitter, edges []Edge, rule FillRule) {
	if len(edges) == 0 {
		return
	}

	yMin, yMax, xMin, xMax := r.bounds(edges)
	if xMin >= xMax {
		return
	}

	for y := yMin; y < yMax; y++ {
		touched := false
		for sub := 0; sub < subSamples; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/subSamples
			r.buildActive(edges, scanY)
			if len(r.aet.Edges()) == 0 {
				continue
			}
			touched = true
			r.walkSpans(rule, r.accumulateSpan)
		}
		if !touched {
			continue
		}
		r.flushRow(b, y, xMin, xMax)
	}
}

// subSamples is the number of vertical sub-scanlines per pixel row.
const subSamples = 4

// subUnit is the coverage contribution of one fully covered pixel on one
// sub-scanline. Four sub-scanlines accumulate to 256, which flushRow maps
// to alpha 255.
const subUnit = 256 / subSamples

// bounds returns the integer pixel bounds of the edge set, clamped to the
// rasterizer's grid. y bounds are [yMin, yMax), x bounds [xMin, xMax).
func (r *Rasterizer) bounds(edges []Edge) (yMin, yMax, xMin, xMax int) {
	loY, hiY := math.MaxFloat64, -math.MaxFloat64
	loX, hiX := math.MaxFloat64, -math.MaxFloat64
	for i := range edges {
		e := &edges[i]
		loY = math.Min(loY, e.y0)
		hiY = math.Max(hiY, e.y1)
		loX = math.Min(loX, math.Min(e.x0, e.x1))
		hiX = math.Max(hiX, math.Max(e.x0, e.x1))
	}

	yMin = clampInt(int(math.Floor(loY)), 0, r.height)
	yMax = clampInt(int(math.Ceil(hiY)), 0, r.height)
	xMin = clampInt(int(math.Floor(loX)), 0, r.width)
	xMax = clampInt(int(math.Ceil(hiX)), 0, r.width)
	return
}

// buildActive fills the active edge table for one scanline and sorts it.
func (r *Rasterizer) buildActive(edges []Edge, scanY float64) {
	r.aet.Clear()
	for i := range edges {
		e := &edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.aet.AddAtY(e, scanY)
		}
	}
	r.aet.Sort()
}

// walkSpans walks the sorted active edges and reports the x intervals that
// are inside under the fill rule.
func (r *Rasterizer) walkSpans(rule FillRule, span func(x1, x2 float64)) {
	active := r.aet.Edges()
	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for i := range active {
			if winding == 0 {
				x1 = active[i].x
			}
			winding += active[i].dir
			if winding == 0 && active[i].x > x1 {
				span(x1, active[i].x)
			}
		}
		return
	}

	for i := 0; i+1 < len(active); i += 2 {
		if active[i+1].x > active[i].x {
			span(active[i].x, active[i+1].x)
		}
	}
}

// accumulateSpan adds one sub-scanline's exact horizontal coverage of
// [x1, x2) into the row accumulator.
func (r *Rasterizer) accumulateSpan(x1, x2 float64) {
	if x1 < 0 {
		x1 = 0
	}
	if x2 > float64(r.width) {
		x2 = float64(r.width)
	}
	if x2 <= x1 {
		return
	}

	ix1 := int(math.Floor(x1))
	ix2 := int(math.Ceil(x2))

	if ix2-ix1 == 1 {
		// Span starts and ends within one pixel.
		r.cover[ix1] += uint16((x2-x1)*subUnit + 0.5)
		return
	}

	r.cover[ix1] += uint16((float64(ix1+1)-x1)*subUnit + 0.5)
	for px := ix1 + 1; px < ix2-1; px++ {
		r.cover[px] += subUnit
	}
	r.cover[ix2-1] += uint16((x2-float64(ix2-1))*subUnit + 0.5)
}

// flushRow converts the accumulated row coverage into alpha spans, emits
// them to the blitter, and resets the accumulator window.
func (r *Rasterizer) flushRow(b Blitter, y, xMin, xMax int) {
	x := xMin
	for x < xMax {
		alpha := coverageToAlpha(r.cover[x])
		run := 1
		for x+run < xMax && coverageToAlpha(r.cover[x+run]) == alpha {
			run++
		}
		if alpha > 0 {
			b.BlitSpan(x, y, run, alpha)
		}
		x += run
	}

	for i := xMin; i < xMax; i++ {
		r.cover[i] = 0
	}
}

// coverageToAlpha maps accumulated coverage (0..256, possibly slightly over
// from rounding) to alpha 0..255. Full coverage of 256 maps to exactly 255
// so that opaque fills hit the compositor's exact-copy path.
func coverageToAlpha(c uint16) uint8 {
	if c >= 256 {
		return 255
	}
	return uint8(c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
