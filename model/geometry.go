package model

import "math"

// Length is a distance in English Metric Units (EMU), the native unit of
// Office Open XML drawing coordinates.
type Length int64

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint = 12700
)

// Inches converts inches to a Length, rounding to the nearest EMU.
func Inches(in float64) Length {
	return Length(math.Round(in * EMUPerInch))
}

// Points converts typographic points to a Length.
func Points(pt float64) Length {
	return Length(math.Round(pt * EMUPerPoint))
}

// EMU returns the length as a raw EMU count.
func (l Length) EMU() int64 {
	return int64(l)
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / EMUPerInch
}

// Point represents a 2D position on a slide
type Point struct {
	X, Y Length
}

// Rect is an axis-aligned rectangle positioned from the slide's top-left
// corner. Y grows downward.
type Rect struct {
	X      Length // Left
	Y      Length // Top
	Width  Length
	Height Length
}

// NewRect creates a rectangle from inch coordinates.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: Inches(x), Y: Inches(y), Width: Inches(width), Height: Inches(height)}
}

// Right returns the right edge X coordinate
func (r Rect) Right() Length {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() Length {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns the rectangle area in square EMUs.
func (r Rect) Area() float64 {
	return float64(r.Width) * float64(r.Height)
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Within reports whether r lies entirely inside bounds.
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// PageSize is the fixed slide geometry of a document.
type PageSize struct {
	Width  Length
	Height Length
}

// Widescreen is the 16:9 page used by default: 10in x 5.625in.
var Widescreen = PageSize{Width: Inches(10), Height: Inches(5.625)}

// Bounds returns the page as a rectangle anchored at the origin.
func (s PageSize) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// AspectRatio returns width divided by height.
func (s PageSize) AspectRatio() float64 {
	if s.Height == 0 {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}
