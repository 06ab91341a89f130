package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a non-horizontal line segment for scanline rasterization.
// Edges are stored with y0 < y1; dir records the original direction for the
// nonzero winding rule.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 if the segment pointed down, -1 if up
}

// NewEdge creates an edge from two points.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// EdgesFromContour builds edges from a polygon's point sequence, implicitly
// closing it from the last point back to the first. Horizontal and
// zero-length segments contribute no edges. Contours with fewer than 3
// points yield nil: they enclose no area.
func EdgesFromContour(points []Point) []Edge {
	if len(points) < 3 {
		return nil
	}

	edges := make([]Edge, 0, len(points))
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if p0.Y == p1.Y {
			continue
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	return edges
}

// AppendContourEdges appends the closed contour's edges to dst.
func AppendContourEdges(dst []Edge, points []Point) []Edge {
	return append(dst, EdgesFromContour(points)...)
}

// ActiveEdge is an edge crossing the current scanline.
type ActiveEdge struct {
	x   float64 // x position at the current scanline
	dir int     // winding direction
}

// ActiveEdgeTable holds the edges active at one scanline.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// NewActiveEdgeTable creates a new active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{
		edges: make([]ActiveEdge, 0, 32),
	}
}

// AddAtY adds an edge with its x position computed for the given y.
func (aet *ActiveEdgeTable) AddAtY(edge *Edge, y float64) {
	aet.edges = append(aet.edges, ActiveEdge{
		x:   edge.XAtY(y),
		dir: edge.dir,
	})
}

// Sort sorts edges by x coordinate (insertion sort; the table is small).
func (aet *ActiveEdgeTable) Sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].x > key.x {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}

// Edges returns the active edges.
func (aet *ActiveEdgeTable) Edges() []ActiveEdge {
	return aet.edges
}

// Clear clears the table.
func (aet *ActiveEdgeTable) Clear() {
	aet.edges = aet.edges[:0]
}
