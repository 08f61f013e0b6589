// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom is a float32 implementation of package image's
Point and Rectangle, sized for layout arithmetic.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package geom

import "fmt"

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rect contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rect struct {
	Min, Max Point
}

// Add returns the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size returns r's width and height.
func (r Rect) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
