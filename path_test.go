package vecdraw

import (
	"math"
	"testing"
)

func TestPath_Build(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(10, 20)
	p.LineTo(30, 40)
	p.QuadTo(50, 60, 70, 80)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	elements := p.Elements()
	if len(elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elements))
	}
	if _, ok := elements[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", elements[0])
	}
	if _, ok := elements[4].(Close); !ok {
		t.Errorf("element 4 is %T, want Close", elements[4])
	}
	if p.CurrentPoint() != Pt(10, 20) {
		t.Errorf("after Close current point = %v, want subpath start", p.CurrentPoint())
	}
}

func TestPath_ImplicitMoveOnEmpty(t *testing.T) {
	// A drawing command on an empty path inserts a MoveTo to its endpoint.
	p := NewPath()
	p.LineTo(25, 35)

	elements := p.Elements()
	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	m, ok := elements[0].(MoveTo)
	if !ok {
		t.Fatalf("element 0 is %T, want MoveTo", elements[0])
	}
	if m.Point != Pt(25, 35) {
		t.Errorf("implicit MoveTo at %v, want (25,35)", m.Point)
	}
}

func TestPath_ImplicitMoveAfterClose(t *testing.T) {
	// A drawing command after Close reopens at the closed subpath's start.
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(50, 10)
	p.Close()
	p.LineTo(50, 50)

	elements := p.Elements()
	if len(elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elements))
	}
	m, ok := elements[3].(MoveTo)
	if !ok {
		t.Fatalf("element 3 is %T, want MoveTo", elements[3])
	}
	if m.Point != Pt(10, 10) {
		t.Errorf("reopening MoveTo at %v, want (10,10)", m.Point)
	}
}

func TestPath_CloseWithoutSubpath(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Error("Close on empty path should be a no-op")
	}

	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Close()
	p.Close() // second close: no open subpath
	if len(p.Elements()) != 3 {
		t.Errorf("double Close added an element: %d elements", len(p.Elements()))
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()

	if !p.IsEmpty() {
		t.Error("path not empty after Clear")
	}
	// After Clear the implicit-move policy starts fresh.
	p.LineTo(7, 8)
	if m := p.Elements()[0].(MoveTo); m.Point != Pt(7, 8) {
		t.Errorf("implicit MoveTo after Clear at %v, want (7,8)", m.Point)
	}
}

func TestPath_Clone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	clone := p.Clone()
	clone.LineTo(5, 6)
	clone.Close()

	if len(p.Elements()) != 2 {
		t.Errorf("mutating clone changed original: %d elements", len(p.Elements()))
	}
	if len(clone.Elements()) != 4 {
		t.Errorf("clone has %d elements, want 4", len(clone.Elements()))
	}
	if p.CurrentPoint() != Pt(3, 4) {
		t.Errorf("original current point = %v", p.CurrentPoint())
	}
}

func TestPath_AddRect(t *testing.T) {
	p := NewPath()
	p.AddRect(10, 20, 30, 40)

	elements := p.Elements()
	if len(elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elements))
	}
	if m := elements[0].(MoveTo); m.Point != Pt(10, 20) {
		t.Errorf("rect starts at %v", m.Point)
	}
	if l := elements[2].(LineTo); l.Point != Pt(40, 60) {
		t.Errorf("opposite corner at %v, want (40,60)", l.Point)
	}
	if _, ok := elements[4].(Close); !ok {
		t.Error("rect subpath not closed")
	}
}

func TestPath_AddRoundRect_ClampsRadius(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(0, 0, 40, 20, 100)

	// Radius clamps to min(w,h)/2 = 10: the first point is (r, 0).
	if m := p.Elements()[0].(MoveTo); m.Point != Pt(10, 0) {
		t.Errorf("start point %v, want (10,0) with clamped radius", m.Point)
	}
}

func TestPath_AddRoundRect_NegativeRadius(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(5, 5, 40, 20, -3)

	// Negative radius is treated as zero.
	if m := p.Elements()[0].(MoveTo); m.Point != Pt(5, 5) {
		t.Errorf("start point %v, want (5,5)", m.Point)
	}
}

func TestPath_AddOval(t *testing.T) {
	p := NewPath()
	p.AddOval(50, 50, 30, 20)

	elements := p.Elements()
	// MoveTo + 4 quarter arcs + Close.
	if len(elements) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(elements))
	}
	if m := elements[0].(MoveTo); m.Point != Pt(80, 50) {
		t.Errorf("oval starts at %v, want (80,50)", m.Point)
	}
	for i := 1; i <= 4; i++ {
		if _, ok := elements[i].(CubicTo); !ok {
			t.Errorf("element %d is %T, want CubicTo", i, elements[i])
		}
	}
}

func TestPath_AddArc(t *testing.T) {
	p := NewPath()
	p.AddArc(50, 50, 20, 0, math.Pi) // semicircle

	elements := p.Elements()
	// MoveTo to the start plus one cubic per <=90 degree segment.
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	if m := elements[0].(MoveTo); m.Point != Pt(70, 50) {
		t.Errorf("arc starts at %v, want (70,50)", m.Point)
	}

	// End point lands on the circle at angle pi.
	end := p.CurrentPoint()
	if math.Abs(end.X-30) > 1e-9 || math.Abs(end.Y-50) > 1e-9 {
		t.Errorf("arc ends at %v, want (30,50)", end)
	}
}

func TestPath_AddArc_ConnectsToOpenSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.AddArc(50, 50, 20, 0, math.Pi/2)

	// The open subpath is joined to the arc start with a line.
	l, ok := p.Elements()[1].(LineTo)
	if !ok {
		t.Fatalf("element 1 is %T, want LineTo", p.Elements()[1])
	}
	if l.Point != Pt(70, 50) {
		t.Errorf("connecting line to %v, want (70,50)", l.Point)
	}
}

func TestPath_AddArc_OnCircle(t *testing.T) {
	// Every cubic endpoint of a full-turn arc stays on the circle, and
	// sampled curve points stay close to it.
	p := NewPath()
	p.AddArc(0, 0, 100, 0, 2*math.Pi)

	for _, elem := range p.Elements() {
		c, ok := elem.(CubicTo)
		if !ok {
			continue
		}
		if d := math.Abs(c.Point.Length() - 100); d > 1e-9 {
			t.Errorf("segment endpoint %v off circle by %g", c.Point, d)
		}
	}
}

func TestPath_ReusableAcrossDraws(t *testing.T) {
	// A path is read-only for draw calls: drawing must not change it.
	p := NewPath()
	p.AddCircle(50, 50, 20)
	before := len(p.Elements())

	c, err := NewCanvas(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawPath(p, NewPaint())
	c.Translate(10, 10)
	c.DrawPath(p, NewPaint())

	if len(p.Elements()) != before {
		t.Errorf("draw calls mutated the path: %d elements, was %d", len(p.Elements()), before)
	}
}
