package engine

import (
	"errors"
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// ErrEmptyInput is returned by geometry helpers invoked on an empty point list.
var ErrEmptyInput = errors.New("empty point list")

// Rect is an axis-aligned bounding box in image coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Distance returns the Euclidean distance between two landmarks in the
// image plane. Z is ignored: gestures are classified in pixel space.
func Distance(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Center returns the arithmetic mean of the given points.
func Center(points []detector.Point3D) (detector.Point3D, error) {
	if len(points) == 0 {
		return detector.Point3D{}, ErrEmptyInput
	}

	var sx, sy, sz float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sz += p.Z
	}

	n := float64(len(points))
	return detector.Point3D{X: sx / n, Y: sy / n, Z: sz / n}, nil
}

// BoundingBox returns the smallest axis-aligned rectangle containing the
// given points in the image plane.
func BoundingBox(points []detector.Point3D) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrEmptyInput
	}

	r := Rect{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}

	return r, nil
}
