package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Distance returns the Euclidean distance between two points.
func Distance(p, q r2.Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Centroid calculates the centroid of a set of points.
func Centroid(points []r2.Point) r2.Point {
	if len(points) == 0 {
		return r2.Point{}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}

	return r2.Point{
		X: sumX / float64(len(points)),
		Y: sumY / float64(len(points)),
	}
}

// BoundingBox calculates the axis-aligned bounding box of a set of
// points. Returns the empty rect for an empty set.
func BoundingBox(points []r2.Point) r2.Rect {
	if len(points) == 0 {
		return r2.EmptyRect()
	}

	rect := r2.RectFromPoints(points[0])
	for _, p := range points[1:] {
		rect = rect.AddPoint(p)
	}
	return rect
}
