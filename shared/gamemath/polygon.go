package gamemath

import "math"

// Centroid returns the area centroid of a simple polygon. Degenerate (zero
// area) input falls back to the vertex average.
func Centroid(points []Vec) Vec {
	if len(points) == 0 {
		return Vec{}
	}
	var area2, cx, cy float64
	for i := range points {
		p := points[i]
		q := points[(i+1)%len(points)]
		cross := p.X*q.Y - q.X*p.Y
		area2 += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if math.Abs(area2) < 1e-9 {
		return VertexAverage(points)
	}
	return Vec{X: cx / (3 * area2), Y: cy / (3 * area2)}
}

// VertexAverage returns the mean of the points.
func VertexAverage(points []Vec) Vec {
	if len(points) == 0 {
		return Vec{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Vec{X: sx / n, Y: sy / n}
}

// Recenter translates world-space vertices so they are relative to their
// centroid, and returns the centroid.
func Recenter(points []Vec) (Vec, []Vec) {
	c := Centroid(points)
	local := make([]Vec, len(points))
	for i, p := range points {
		local[i] = Vec{X: p.X - c.X, Y: p.Y - c.Y}
	}
	return c, local
}

// Drift returns the translation that moves actual back onto intended, and
// whether it exceeds tolerance on either axis.
func Drift(intended, actual Vec, tolerance float64) (Vec, bool) {
	d := Vec{X: intended.X - actual.X, Y: intended.Y - actual.Y}
	return d, math.Abs(d.X) > tolerance || math.Abs(d.Y) > tolerance
}

// EllipsePoints approximates an ellipse centred on c with radii rx, ry by a
// regular polygon of n vertices.
func EllipsePoints(c Vec, rx, ry float64, n int) []Vec {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of points.
func Bounds(points []Vec) (min, max Vec) {
	if len(points) == 0 {
		return
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return
}
