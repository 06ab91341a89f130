// Package vecdraw is a minimal software 2D vector-graphics rendering
// engine. Geometric primitives (rectangles, circles, ovals, rounded
// rectangles, arbitrary Bezier paths) and paint parameters (color,
// fill/stroke style, stroke width) are rendered into an anti-aliased RGBA8
// raster buffer that can be saved to standard image formats.
//
// The pipeline: paths are flattened into polylines within a bounded
// deviation tolerance, strokes are expanded into fillable outline polygons,
// polygons are scan-converted with the nonzero winding rule into per-pixel
// coverage (4x vertical supersampling with exact horizontal coverage), and
// coverage-weighted colors are composited source-over into the canvas.
//
// Basic usage:
//
//	canvas, err := vecdraw.NewCanvas(400, 300)
//	if err != nil {
//		log.Fatal(err)
//	}
//	canvas.Clear(vecdraw.White)
//
//	paint := vecdraw.NewPaint()
//	paint.Color = vecdraw.RGB(0x4A, 0x90, 0xD9)
//	canvas.DrawRect(vecdraw.R(20, 20, 100, 80), paint)
//
//	path := vecdraw.NewPath()
//	path.AddRoundRect(50, 180, 150, 80, 15)
//	canvas.DrawPath(path, paint)
//
//	if err := canvas.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// All drawing is synchronous and single-threaded: every draw call completes
// before returning and the pixel buffer is consistent at every call
// boundary. Canvas and Path values are not safe for concurrent mutation.
package vecdraw
