package engine

import (
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestDistance_345Triangle(t *testing.T) {
	d := Distance(detector.Point3D{X: 0, Y: 0}, detector.Point3D{X: 3, Y: 4})
	if d != 5.0 {
		t.Errorf("Distance((0,0),(3,4)) = %f, want exactly 5.0", d)
	}
}

func TestDistance_IgnoresZ(t *testing.T) {
	d := Distance(detector.Point3D{X: 0, Y: 0, Z: 10}, detector.Point3D{X: 3, Y: 4, Z: -10})
	if d != 5.0 {
		t.Errorf("Distance with differing Z = %f, want 5.0 (image-plane only)", d)
	}
}

func TestCenter_Square(t *testing.T) {
	points := []detector.Point3D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	c, err := Center(points)
	if err != nil {
		t.Fatalf("Center() error = %v", err)
	}

	if c.X != 5 || c.Y != 5 {
		t.Errorf("Center() = (%f, %f), want (5, 5)", c.X, c.Y)
	}
}

func TestCenter_Empty(t *testing.T) {
	_, err := Center(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Center(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestBoundingBox_Square(t *testing.T) {
	points := []detector.Point3D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	box, err := BoundingBox(points)
	if err != nil {
		t.Fatalf("BoundingBox() error = %v", err)
	}

	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if box != want {
		t.Errorf("BoundingBox() = %+v, want %+v", box, want)
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	_, err := BoundingBox([]detector.Point3D{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("BoundingBox(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestBoundingBox_SinglePoint(t *testing.T) {
	box, err := BoundingBox([]detector.Point3D{{X: 3, Y: 7}})
	if err != nil {
		t.Fatalf("BoundingBox() error = %v", err)
	}

	want := Rect{MinX: 3, MinY: 7, MaxX: 3, MaxY: 7}
	if box != want {
		t.Errorf("BoundingBox(single) = %+v, want %+v", box, want)
	}
}
