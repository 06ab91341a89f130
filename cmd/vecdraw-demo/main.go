// Command vecdraw-demo renders a sample scene with the vecdraw engine.
package main

import (
	"flag"
	"log"

	"github.com/vecdraw/vecdraw"
)

func main() {
	var (
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	canvas, err := vecdraw.NewCanvas(400, 300, vecdraw.WithBackground(vecdraw.White))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	// Filled blue rectangle.
	paint := vecdraw.NewPaint()
	paint.Color = vecdraw.RGB(0x4A, 0x90, 0xD9)
	canvas.DrawRect(vecdraw.R(20, 20, 100, 80), paint)

	// Stroked red rectangle.
	paint.Color = vecdraw.RGB(0xE7, 0x4C, 0x3C)
	paint.Style = vecdraw.Stroke(3)
	canvas.DrawRect(vecdraw.R(140, 20, 100, 80), paint)

	// Filled green circle.
	paint.Color = vecdraw.RGB(0x2E, 0xCC, 0x71)
	paint.Style = vecdraw.Fill()
	canvas.DrawCircle(320, 60, 40, paint)

	// Orange line.
	paint.Color = vecdraw.RGB(0xF3, 0x9C, 0x12)
	paint.Style = vecdraw.Stroke(2)
	canvas.DrawLine(20, 150, 380, 150, paint)

	// Purple rounded rectangle, filled and outlined.
	rounded := vecdraw.NewPath()
	rounded.AddRoundRect(50, 180, 150, 80, 15)
	paint.Color = vecdraw.RGB(0x9B, 0x59, 0xB6)
	paint.Style = vecdraw.FillAndStroke(2)
	canvas.DrawPath(rounded, paint)

	// Filled teal oval.
	oval := vecdraw.NewPath()
	oval.AddOval(300, 220, 60, 40)
	paint.Color = vecdraw.RGB(0x1A, 0xBC, 0x9C)
	paint.Style = vecdraw.Fill()
	canvas.DrawPath(oval, paint)

	// Dark arc over the oval.
	arc := vecdraw.NewPath()
	arc.AddArc(300, 220, 50, 3.4, 6.0)
	paint.Color = vecdraw.RGB(0x34, 0x49, 0x5E)
	paint.Style = vecdraw.Stroke(3)
	canvas.DrawPath(arc, paint)

	if err := canvas.SaveImage(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, canvas.Width(), canvas.Height())
}
